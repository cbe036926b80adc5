package visualizer

import "github.com/san-kum/sortviz/internal/algorithms"

const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 15
	SpeedStep    = 5
)

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusPaused:
		return "PAUSED"
	case StatusFinished:
		return "SORTED"
	default:
		return "READY"
	}
}

// RunState holds the run parameters. It is never mutated in place; every
// transition returns a new value.
type RunState struct {
	Algorithm algorithms.Kind
	Speed     int
	Running   bool
	Paused    bool
	Finished  bool
}

func NewRunState(kind algorithms.Kind, speed int) RunState {
	return RunState{Algorithm: kind, Speed: clampSpeed(speed)}
}

func (s RunState) Status() Status {
	switch {
	case s.Finished:
		return StatusFinished
	case s.Running && s.Paused:
		return StatusPaused
	case s.Running:
		return StatusRunning
	default:
		return StatusIdle
	}
}

// Stepping reports whether the next frame advances the engine.
func (s RunState) Stepping() bool {
	return s.Status() == StatusRunning
}

func (s RunState) WithToggleRun() RunState {
	if s.Finished {
		return s
	}
	s.Running = !s.Running
	return s
}

func (s RunState) WithTogglePause() RunState {
	if s.Finished {
		return s
	}
	s.Paused = !s.Paused
	return s
}

func (s RunState) WithSpeedDelta(delta int) RunState {
	s.Speed = clampSpeed(s.Speed + delta)
	return s
}

// Fresh clears running, paused and finished.
func (s RunState) Fresh() RunState {
	s.Running, s.Paused, s.Finished = false, false, false
	return s
}

func (s RunState) WithAlgorithm(dir int) RunState {
	s.Algorithm = s.Algorithm.Cycle(dir)
	return s.Fresh()
}

func (s RunState) WithFinished() RunState {
	s.Finished, s.Running = true, false
	return s
}

func clampSpeed(v int) int {
	return max(MinSpeed, min(MaxSpeed, v))
}
