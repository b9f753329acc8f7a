package entity

import "color-snake/game/types"

type Food struct {
	Pos   types.Point
	Color types.Color
}

// NewFood places food at pos with the default color.
func NewFood(pos types.Point) Food {
	return Food{Pos: pos, Color: types.DefaultColor}
}

// RandomizeColor gives the food a new color from the weighted palette.
func (f *Food) RandomizeColor(src types.Intner) {
	f.Color = types.RandomColor(src)
}
