package visualizer

import (
	"time"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/logging"
)

const DefaultIdleDelay = 10 * time.Millisecond

var logger = logging.GetLogger("visualizer")

type Options struct {
	Algorithm algorithms.Kind
	Speed     int
	IdleDelay time.Duration
	// Shuffle the array before the first frame.
	Shuffle bool
}

// Controller owns the array, the live engine and the run state. It is the
// only mutator of the array.
type Controller struct {
	arr       *bars.Array
	engine    algorithms.Engine
	state     RunState
	steps     int
	idleDelay time.Duration
	observers []Observer
}

func New(arr *bars.Array, opts Options) *Controller {
	if opts.IdleDelay <= 0 {
		opts.IdleDelay = DefaultIdleDelay
	}
	if opts.Speed == 0 {
		opts.Speed = DefaultSpeed
	}
	c := &Controller{
		arr:       arr,
		state:     NewRunState(opts.Algorithm, opts.Speed),
		idleDelay: opts.IdleDelay,
	}
	if opts.Shuffle {
		arr.Shuffle()
	}
	c.resetEngine()
	return c
}

func (c *Controller) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Controller) State() RunState { return c.state }

func (c *Controller) Array() *bars.Array { return c.arr }

func (c *Controller) Engine() algorithms.Engine { return c.engine }

func (c *Controller) Steps() int { return c.steps }

// Apply runs one command and reports whether it asked to quit.
func (c *Controller) Apply(cmd Command) (quit bool) {
	if cmd == CmdNone {
		return false
	}
	prev := c.state
	next, effect := Handle(c.state, cmd)
	c.state = next

	switch effect {
	case EffectQuit:
		return true
	case EffectReinitialize:
		c.arr.Reinitialize()
		c.resetEngine()
	case EffectShuffle:
		c.arr.Shuffle()
		c.resetEngine()
	}

	logger.WithField("command", cmd).
		WithField("status", next.Status()).
		WithField("algorithm", next.Algorithm.Slug()).
		Debugf("speed %d -> %d", prev.Speed, next.Speed)
	return false
}

// Frame advances the engine once if the run is active and returns how long
// to wait before the next frame.
func (c *Controller) Frame() time.Duration {
	if !c.state.Stepping() {
		return c.idleDelay
	}
	more := c.engine.Advance(c.arr)
	if more {
		c.steps++
		c.notify(false)
		return time.Duration(c.state.Speed) * time.Millisecond
	}
	c.state = c.state.WithFinished()
	logger.WithField("algorithm", c.state.Algorithm.Slug()).
		WithField("bars", c.arr.Len()).
		WithField("steps", c.steps).
		Info("sort finished")
	c.notify(true)
	return time.Duration(c.state.Speed) * time.Millisecond
}

func (c *Controller) Snapshot() Frame {
	return Frame{
		Algorithm: c.state.Algorithm,
		Status:    c.state.Status(),
		Speed:     c.state.Speed,
		Step:      c.steps,
		Counters:  c.arr.Counters(),
		Elements:  c.arr.Elements(),
	}
}

func (c *Controller) resetEngine() {
	c.engine = algorithms.New(c.state.Algorithm, c.arr.Len())
	c.steps = 0
}

func (c *Controller) notify(finished bool) {
	if len(c.observers) == 0 {
		return
	}
	f := c.Snapshot()
	for _, o := range c.observers {
		if finished {
			o.OnFinish(f)
		} else {
			o.OnStep(f)
		}
	}
}
