package ui

import (
	"color-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor = rl.Color{R: 18, G: 18, B: 22, A: 255}
	gridLineColor   = rl.Color{R: 34, G: 34, B: 40, A: 255}
	headColor       = rl.Color{R: 255, G: 128, B: 0, A: 255}
	bodyColor       = rl.Color{R: 77, G: 77, B: 0, A: 255}
	wallColor       = rl.RayWhite
	panelColor      = rl.Color{R: 40, G: 40, B: 48, A: 255}
)

// ColorFor maps a food color tag to its on-screen color.
func ColorFor(c types.Color) rl.Color {
	switch c {
	case types.Blue:
		return rl.Blue
	case types.Green:
		return rl.Green
	case types.Red:
		return rl.Red
	case types.Magenta:
		return rl.Magenta
	case types.Cyan:
		return rl.Color{R: 0, G: 255, B: 255, A: 255}
	default:
		return rl.White
	}
}
