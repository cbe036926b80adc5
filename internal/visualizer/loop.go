package visualizer

import "context"

// Run drives the frame loop: poll, apply, step, render, wait. It returns nil
// when a quit command arrives and ctx.Err() when the context ends. Closing
// the surface is left to the caller.
func Run(ctx context.Context, c *Controller, s Surface, keys KeyMap) error {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, ev := range s.PollEvents() {
			if c.Apply(keys.Translate(ev)) {
				logger.Debug("quit requested")
				return nil
			}
		}
		delay := c.Frame()
		s.Render(c.Snapshot())
		s.Sleep(delay)
	}
}
