package visualizer

import (
	"time"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/bars"
)

type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyR
	KeyS
	KeyP
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
)

type EventType int

const (
	EventQuit EventType = iota
	EventKeyDown
)

type Event struct {
	Type EventType
	Key  Key
}

func QuitEvent() Event { return Event{Type: EventQuit} }

func KeyEvent(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// KeyMap binds keys to commands.
type KeyMap map[Key]Command

func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeySpace:  CmdToggleRun,
		KeyR:      CmdResetSorted,
		KeyS:      CmdShuffleAndStop,
		KeyLeft:   CmdSwitchPrev,
		KeyRight:  CmdSwitchNext,
		KeyUp:     CmdSpeedUp,
		KeyDown:   CmdSlowDown,
		KeyP:      CmdTogglePause,
		KeyEscape: CmdQuit,
	}
}

// Translate maps an event to a command. Window close always quits.
func (km KeyMap) Translate(ev Event) Command {
	if ev.Type == EventQuit {
		return CmdQuit
	}
	return km[ev.Key]
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Algorithm algorithms.Kind
	Status    Status
	Speed     int
	Step      int
	Counters  bars.Counters
	Elements  []bars.Element
}

// Focus returns the value of the most relevant highlighted bar: the last
// swapped one, else the last compared one. ok is false when nothing is lit.
func (f Frame) Focus() (value int, ok bool) {
	compare := -1
	for i := len(f.Elements) - 1; i >= 0; i-- {
		switch f.Elements[i].Role {
		case bars.Swapped:
			return f.Elements[i].Value, true
		case bars.Compare:
			if compare < 0 {
				compare = i
			}
		}
	}
	if compare >= 0 {
		return f.Elements[compare].Value, true
	}
	return 0, false
}

// Surface is the presentation adapter the frame loop renders to.
type Surface interface {
	// PollEvents drains pending input without blocking.
	PollEvents() []Event
	Render(f Frame)
	Sleep(d time.Duration)
}

// Observer is notified after every engine step and once when a run finishes.
type Observer interface {
	OnStep(f Frame)
	OnFinish(f Frame)
}
