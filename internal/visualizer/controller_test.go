package visualizer_test

import (
	"context"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/visualizer"
)

type fakeSurface struct {
	script [][]visualizer.Event
	frames []visualizer.Frame
	sleeps []time.Duration
}

func (f *fakeSurface) PollEvents() []visualizer.Event {
	if len(f.script) == 0 {
		return nil
	}
	evs := f.script[0]
	f.script = f.script[1:]
	return evs
}

func (f *fakeSurface) Render(fr visualizer.Frame) { f.frames = append(f.frames, fr) }

func (f *fakeSurface) Sleep(d time.Duration) { f.sleeps = append(f.sleeps, d) }

type recorder struct {
	steps    int
	finished []visualizer.Frame
}

func (r *recorder) OnStep(visualizer.Frame)     { r.steps++ }
func (r *recorder) OnFinish(f visualizer.Frame) { r.finished = append(r.finished, f) }

func newController(n int, kind algorithms.Kind) *visualizer.Controller {
	arr, err := bars.New(n, rand.New(rand.NewSource(5)))
	Expect(err).NotTo(HaveOccurred())
	return visualizer.New(arr, visualizer.Options{Algorithm: kind, Shuffle: true})
}

func runUntilFinished(c *visualizer.Controller) int {
	frames := 0
	for c.State().Status() != visualizer.StatusFinished {
		c.Frame()
		frames++
		Expect(frames).To(BeNumerically("<", 100000))
	}
	return frames
}

var _ = Describe("Controller", func() {
	It("does not step while idle and waits the idle delay", func() {
		c := newController(10, algorithms.KindBubble)
		before := c.Array().Values()

		Expect(c.Frame()).To(Equal(visualizer.DefaultIdleDelay))
		Expect(c.Array().Values()).To(Equal(before))
		Expect(c.Steps()).To(BeZero())
	})

	It("steps once per frame at the speed delay while running", func() {
		c := newController(10, algorithms.KindBubble)
		c.Apply(visualizer.CmdToggleRun)

		Expect(c.Frame()).To(Equal(time.Duration(visualizer.DefaultSpeed) * time.Millisecond))
		Expect(c.Steps()).To(Equal(1))
		Expect(c.Array().Counters().Comparisons).To(Equal(1))
	})

	It("does not step while paused", func() {
		c := newController(10, algorithms.KindBubble)
		c.Apply(visualizer.CmdToggleRun)
		c.Apply(visualizer.CmdTogglePause)

		Expect(c.Frame()).To(Equal(visualizer.DefaultIdleDelay))
		Expect(c.Steps()).To(BeZero())
	})

	for _, kind := range algorithms.Kinds() {
		kind := kind
		It("runs "+kind.String()+" to a sorted, finished array", func() {
			c := newController(40, kind)
			rec := &recorder{}
			c.AddObserver(rec)
			c.Apply(visualizer.CmdToggleRun)

			runUntilFinished(c)

			Expect(c.Array().IsSorted()).To(BeTrue())
			Expect(c.State().Running).To(BeFalse())
			for _, el := range c.Snapshot().Elements {
				Expect(el.Role).To(Equal(bars.Sorted))
			}
			Expect(rec.finished).To(HaveLen(1))
			Expect(rec.steps).To(Equal(c.Steps()))
		})
	}

	It("ignores toggle-run once finished", func() {
		c := newController(5, algorithms.KindMerge)
		c.Apply(visualizer.CmdToggleRun)
		runUntilFinished(c)

		c.Apply(visualizer.CmdToggleRun)
		Expect(c.State().Status()).To(Equal(visualizer.StatusFinished))
	})

	DescribeTable("fresh transitions clear flags and restart the engine",
		func(cmd visualizer.Command, wantSorted bool, wantKind algorithms.Kind) {
			c := newController(30, algorithms.KindInsertion)
			c.Apply(visualizer.CmdToggleRun)
			for i := 0; i < 5; i++ {
				c.Frame()
			}
			c.Apply(visualizer.CmdTogglePause)

			c.Apply(cmd)

			s := c.State()
			Expect(s.Running).To(BeFalse())
			Expect(s.Paused).To(BeFalse())
			Expect(s.Finished).To(BeFalse())
			Expect(s.Algorithm).To(Equal(wantKind))
			Expect(c.Steps()).To(BeZero())
			Expect(c.Engine().Kind()).To(Equal(wantKind))
			Expect(c.Array().IsPermutation()).To(BeTrue())
			Expect(c.Array().IsSorted()).To(Equal(wantSorted))
			Expect(c.Array().Counters()).To(Equal(bars.Counters{}))
			for _, el := range c.Snapshot().Elements {
				Expect(el.Role).To(Equal(bars.Idle))
			}
		},
		Entry("reset gives ascending order", visualizer.CmdResetSorted, true, algorithms.KindInsertion),
		Entry("shuffle gives a new permutation", visualizer.CmdShuffleAndStop, false, algorithms.KindInsertion),
		Entry("next algorithm reshuffles", visualizer.CmdSwitchNext, false, algorithms.KindMerge),
		Entry("previous algorithm reshuffles", visualizer.CmdSwitchPrev, false, algorithms.KindSelection),
	)

	It("reports quit without side effects", func() {
		c := newController(10, algorithms.KindQuick)
		before := c.Array().Values()
		Expect(c.Apply(visualizer.CmdQuit)).To(BeTrue())
		Expect(c.Array().Values()).To(Equal(before))
	})

	It("exposes the focus value of the current step", func() {
		arr, _ := bars.FromValues([]int{2, 1, 3}, nil)
		c := visualizer.New(arr, visualizer.Options{Algorithm: algorithms.KindBubble})
		c.Apply(visualizer.CmdToggleRun)
		c.Frame()

		v, ok := c.Snapshot().Focus()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(2))
	})
})

var _ = Describe("Run", func() {
	It("applies scripted keys, renders every frame, and stops on escape", func() {
		c := newController(8, algorithms.KindBubble)
		s := &fakeSurface{script: [][]visualizer.Event{
			{visualizer.KeyEvent(visualizer.KeySpace)},
			nil,
			{visualizer.KeyEvent(visualizer.KeyUp), visualizer.KeyEvent(visualizer.KeyUp)},
			{visualizer.KeyEvent(visualizer.KeyEscape)},
		}}

		err := visualizer.Run(context.Background(), c, s, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(s.frames).To(HaveLen(3))
		Expect(s.sleeps).To(Equal([]time.Duration{
			15 * time.Millisecond,
			15 * time.Millisecond,
			5 * time.Millisecond,
		}))
		Expect(s.frames[2].Step).To(Equal(3))
		Expect(s.frames[2].Speed).To(Equal(5))
	})

	It("quits on window close", func() {
		c := newController(8, algorithms.KindBubble)
		s := &fakeSurface{script: [][]visualizer.Event{{visualizer.QuitEvent()}}}

		Expect(visualizer.Run(context.Background(), c, s, nil)).To(Succeed())
		Expect(s.frames).To(BeEmpty())
	})

	It("returns the context error when cancelled", func() {
		c := newController(8, algorithms.KindBubble)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Expect(visualizer.Run(ctx, c, &fakeSurface{}, nil)).To(MatchError(context.Canceled))
	})

	It("ignores unmapped keys", func() {
		c := newController(8, algorithms.KindBubble)
		s := &fakeSurface{script: [][]visualizer.Event{
			{visualizer.KeyEvent(visualizer.KeyUnknown)},
			{visualizer.KeyEvent(visualizer.KeyEscape)},
		}}

		Expect(visualizer.Run(context.Background(), c, s, nil)).To(Succeed())
		Expect(s.frames).To(HaveLen(1))
		Expect(s.frames[0].Status).To(Equal(visualizer.StatusIdle))
	})
})
