package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortviz/internal/bars"
)

var (
	ColBg      = rl.NewColor(30, 30, 30, 255)
	ColIdle    = rl.NewColor(0, 153, 255, 255)
	ColCompare = rl.NewColor(255, 153, 0, 255)
	ColSwapped = rl.NewColor(255, 51, 51, 255)
	ColSorted  = rl.NewColor(0, 255, 102, 255)
	ColText    = rl.NewColor(200, 200, 200, 255)
)

func RoleColor(r bars.Role) rl.Color {
	switch r {
	case bars.Compare:
		return ColCompare
	case bars.Swapped:
		return ColSwapped
	case bars.Sorted:
		return ColSorted
	default:
		return ColIdle
	}
}
