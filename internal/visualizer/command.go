package visualizer

type Command int

const (
	CmdNone Command = iota
	CmdToggleRun
	CmdResetSorted
	CmdShuffleAndStop
	CmdSwitchNext
	CmdSwitchPrev
	CmdSpeedUp
	CmdSlowDown
	CmdTogglePause
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdToggleRun:
		return "toggle-run"
	case CmdResetSorted:
		return "reset"
	case CmdShuffleAndStop:
		return "shuffle"
	case CmdSwitchNext:
		return "next-algorithm"
	case CmdSwitchPrev:
		return "prev-algorithm"
	case CmdSpeedUp:
		return "speed-up"
	case CmdSlowDown:
		return "slow-down"
	case CmdTogglePause:
		return "toggle-pause"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}

// Effect is the array-side work a command asks the controller to perform.
type Effect int

const (
	EffectNone Effect = iota
	EffectReinitialize
	EffectShuffle
	EffectQuit
)

// Handle is the pure transition function of the run state machine.
func Handle(s RunState, cmd Command) (RunState, Effect) {
	switch cmd {
	case CmdToggleRun:
		return s.WithToggleRun(), EffectNone
	case CmdResetSorted:
		return s.Fresh(), EffectReinitialize
	case CmdShuffleAndStop:
		return s.Fresh(), EffectShuffle
	case CmdSwitchNext:
		return s.WithAlgorithm(1), EffectShuffle
	case CmdSwitchPrev:
		return s.WithAlgorithm(-1), EffectShuffle
	case CmdSpeedUp:
		return s.WithSpeedDelta(-SpeedStep), EffectNone
	case CmdSlowDown:
		return s.WithSpeedDelta(SpeedStep), EffectNone
	case CmdTogglePause:
		return s.WithTogglePause(), EffectNone
	case CmdQuit:
		return s, EffectQuit
	}
	return s, EffectNone
}
