// Package gui is the raylib window adapter for the visualizer frame loop.
package gui

import (
	"errors"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/visualizer"
)

var ErrSurfaceUnavailable = errors.New("gui: window could not be created")

var logger = logging.GetLogger("gui")

var keyBindings = []struct {
	raylib int32
	key    visualizer.Key
}{
	{rl.KeySpace, visualizer.KeySpace},
	{rl.KeyR, visualizer.KeyR},
	{rl.KeyS, visualizer.KeyS},
	{rl.KeyP, visualizer.KeyP},
	{rl.KeyLeft, visualizer.KeyLeft},
	{rl.KeyRight, visualizer.KeyRight},
	{rl.KeyUp, visualizer.KeyUp},
	{rl.KeyDown, visualizer.KeyDown},
	{rl.KeyEscape, visualizer.KeyEscape},
}

// Window implements visualizer.Surface on a resizable raylib window.
type Window struct {
	headroom int
	showHUD  bool
}

// Open creates the window. Escape is left to the key map instead of
// raylib's built-in exit key.
func Open(cfg config.WindowConfig) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, ErrSurfaceUnavailable
	}
	rl.SetExitKey(0)

	logger.WithField("width", cfg.Width).
		WithField("height", cfg.Height).
		Debug("window opened")

	return &Window{headroom: cfg.Headroom, showHUD: true}, nil
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func (w *Window) PollEvents() []visualizer.Event {
	var events []visualizer.Event
	if rl.WindowShouldClose() {
		events = append(events, visualizer.QuitEvent())
	}
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.raylib) {
			events = append(events, visualizer.KeyEvent(b.key))
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		w.showHUD = !w.showHUD
	}
	return events
}

func (w *Window) Render(f visualizer.Frame) {
	width, height := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	n := len(f.Elements)
	for i, el := range f.Elements {
		r := visualizer.BarRect(i, el.Value, n, width, height, w.headroom)
		rl.DrawRectangle(r.X, r.Y, r.W, r.H, RoleColor(el.Role))
	}

	if w.showHUD {
		rl.DrawText(HUDLine(f), 10, 10, 20, ColText)
	}

	rl.EndDrawing()
}

func (w *Window) Sleep(d time.Duration) {
	time.Sleep(d)
}

// HUDLine is the status text drawn in the headroom strip.
func HUDLine(f visualizer.Frame) string {
	return fmt.Sprintf("%s  %s  %dms  step %d  cmp %d  swp %d  wr %d",
		f.Algorithm, f.Status, f.Speed, f.Step,
		f.Counters.Comparisons, f.Counters.Swaps, f.Counters.Writes)
}
