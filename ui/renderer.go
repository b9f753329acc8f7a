package ui

import (
	"fmt"

	"color-snake/game"
	"color-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	hudHeight     = 40
)

// HUD carries the numbers the renderer shows that the game does not own.
type HUD struct {
	HighScore int64
	Autopilot bool
}

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// layout fits the grid into the window below the HUD strip.
func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - hudHeight - borderPadding*2

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = min(cellW, cellH)
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	totalWidth := r.cellSize * int32(grid.Width)
	r.offsetX = (r.screenWidth - totalWidth) / 2
	r.offsetY = hudHeight + borderPadding
}

func (r *Renderer) Draw(s game.Snapshot, hud HUD) {
	r.UpdateDimensions()
	r.layout(s.Grid)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(backgroundColor)

	totalWidth := r.cellSize * int32(s.Grid.Width)
	totalHeight := r.cellSize * int32(s.Grid.Height)
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, totalWidth+2, totalHeight+2, gridLineColor)
	rl.DrawRectangle(r.offsetX, r.offsetY, totalWidth, totalHeight, backgroundColor)

	for _, wall := range s.Walls {
		for _, p := range wall {
			r.fillCell(p, wallColor)
		}
	}

	for _, f := range s.Food {
		r.fillCell(f.Pos, ColorFor(f.Color))
	}

	for _, p := range s.Body {
		r.fillCell(p, bodyColor)
	}
	r.fillCell(s.Head, headColor)
	r.drawDirection(s.Head, s.Dir)

	r.drawHUD(s, hud)

	switch {
	case s.GameOver:
		r.drawBanner(fmt.Sprintf("Game over (%s) - R to restart", s.EndReason))
	case s.Paused:
		r.drawBanner("Paused - P to resume")
	}
}

func (r *Renderer) fillCell(p types.Point, c rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*r.cellSize,
		r.offsetY+int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, c)
}

// drawDirection puts a small triangle on the head pointing where it moves.
func (r *Renderer) drawDirection(head types.Point, dir types.Direction) {
	x := float32(r.offsetX + int32(head.X)*r.cellSize)
	y := float32(r.offsetY + int32(head.Y)*r.cellSize)
	size := float32(r.cellSize)
	half := size / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a, b, c = rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		a, b, c = rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a, b, c = rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x, Y: y + half}
	case types.Up:
		a, b, c = rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + size, Y: y + half}
	default:
		return
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawHUD(s game.Snapshot, hud HUD) {
	fontSize := int32(20)
	rl.DrawRectangle(0, 0, r.screenWidth, hudHeight, panelColor)

	x := int32(borderPadding)
	y := (hudHeight - fontSize) / 2

	text := fmt.Sprintf("Score: %d   Best: %d", s.Score, hud.HighScore)
	rl.DrawText(text, x, y, fontSize, rl.White)
	x += rl.MeasureText(text, fontSize) + 30

	label := "Allowed color"
	rl.DrawText(label, x, y, fontSize, ColorFor(s.Allowed))
	x += rl.MeasureText(label, fontSize) + 8
	rl.DrawRectangle(x, y, fontSize, fontSize, ColorFor(s.Allowed))

	if hud.Autopilot {
		ap := "AUTOPILOT"
		rl.DrawText(ap, r.screenWidth-rl.MeasureText(ap, fontSize)-borderPadding, y, fontSize, rl.Yellow)
	}
}

func (r *Renderer) drawBanner(text string) {
	fontSize := int32(28)
	width := rl.MeasureText(text, fontSize)
	x := (r.screenWidth - width) / 2
	y := r.screenHeight / 2
	rl.DrawRectangle(x-12, y-8, width+24, fontSize+16, rl.Fade(rl.Black, 0.75))
	rl.DrawText(text, x, y, fontSize, rl.White)
}

// WindowSize returns the window dimensions that show grid at cellSize.
func WindowSize(grid types.Grid, cellSize int) (int32, int32) {
	w := int32(grid.Width*cellSize) + borderPadding*2
	h := int32(grid.Height*cellSize) + hudHeight + borderPadding*2
	return w, h
}
