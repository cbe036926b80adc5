package visualizer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/visualizer"
)

var _ = Describe("RunState", func() {
	var idle visualizer.RunState

	BeforeEach(func() {
		idle = visualizer.NewRunState(algorithms.KindBubble, visualizer.DefaultSpeed)
	})

	DescribeTable("status transitions",
		func(cmds []visualizer.Command, want visualizer.Status) {
			s := idle
			for _, cmd := range cmds {
				s, _ = visualizer.Handle(s, cmd)
			}
			Expect(s.Status()).To(Equal(want))
		},
		Entry("starts idle", nil, visualizer.StatusIdle),
		Entry("space runs", []visualizer.Command{visualizer.CmdToggleRun}, visualizer.StatusRunning),
		Entry("space twice stops", []visualizer.Command{visualizer.CmdToggleRun, visualizer.CmdToggleRun}, visualizer.StatusIdle),
		Entry("pause while running", []visualizer.Command{visualizer.CmdToggleRun, visualizer.CmdTogglePause}, visualizer.StatusPaused),
		Entry("resume", []visualizer.Command{visualizer.CmdToggleRun, visualizer.CmdTogglePause, visualizer.CmdTogglePause}, visualizer.StatusRunning),
		Entry("pause before run", []visualizer.Command{visualizer.CmdTogglePause, visualizer.CmdToggleRun}, visualizer.StatusPaused),
		Entry("shuffle stops", []visualizer.Command{visualizer.CmdToggleRun, visualizer.CmdShuffleAndStop}, visualizer.StatusIdle),
		Entry("reset clears pause", []visualizer.Command{visualizer.CmdToggleRun, visualizer.CmdTogglePause, visualizer.CmdResetSorted}, visualizer.StatusIdle),
	)

	It("keeps finished terminal until a fresh transition", func() {
		s := idle.WithToggleRun().WithFinished()
		Expect(s.Status()).To(Equal(visualizer.StatusFinished))

		for _, cmd := range []visualizer.Command{visualizer.CmdToggleRun, visualizer.CmdTogglePause, visualizer.CmdSpeedUp} {
			s, _ = visualizer.Handle(s, cmd)
			Expect(s.Status()).To(Equal(visualizer.StatusFinished))
		}

		s, effect := visualizer.Handle(s, visualizer.CmdShuffleAndStop)
		Expect(effect).To(Equal(visualizer.EffectShuffle))
		Expect(s.Status()).To(Equal(visualizer.StatusIdle))
	})

	It("clamps speed to [1, 100]", func() {
		s := idle
		for i := 0; i < 50; i++ {
			s, _ = visualizer.Handle(s, visualizer.CmdSpeedUp)
		}
		Expect(s.Speed).To(Equal(visualizer.MinSpeed))

		for i := 0; i < 50; i++ {
			s, _ = visualizer.Handle(s, visualizer.CmdSlowDown)
		}
		Expect(s.Speed).To(Equal(visualizer.MaxSpeed))

		Expect(visualizer.NewRunState(algorithms.KindQuick, 500).Speed).To(Equal(visualizer.MaxSpeed))
	})

	It("cycles algorithms with wrap and asks for a shuffle", func() {
		s, effect := visualizer.Handle(idle, visualizer.CmdSwitchPrev)
		Expect(s.Algorithm).To(Equal(algorithms.KindQuick))
		Expect(effect).To(Equal(visualizer.EffectShuffle))

		s, _ = visualizer.Handle(s, visualizer.CmdSwitchNext)
		Expect(s.Algorithm).To(Equal(algorithms.KindBubble))
	})

	It("returns quit as a value", func() {
		s, effect := visualizer.Handle(idle.WithToggleRun(), visualizer.CmdQuit)
		Expect(effect).To(Equal(visualizer.EffectQuit))
		Expect(s.Running).To(BeTrue())
	})

	It("does not mutate the input state", func() {
		before := idle
		_, _ = visualizer.Handle(idle, visualizer.CmdToggleRun)
		Expect(idle).To(Equal(before))
	})
})
