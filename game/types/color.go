package types

// Color is a food color tag. Display values are chosen by the renderer.
type Color int

const (
	Blue Color = iota
	Green
	Red
	Magenta
	Cyan
)

// DefaultColor is the color of fresh food and the initial allowed color.
const DefaultColor = Blue

var colorNames = [...]string{"blue", "green", "red", "magenta", "cyan"}

func (c Color) String() string {
	if c < Blue || c > Cyan {
		return "unknown"
	}
	return colorNames[c]
}

// colorTable is indexed by a uniform draw. Green appears twice, so it comes
// up with probability 2/6 while every other color gets 1/6.
var colorTable = [...]Color{Green, Blue, Green, Red, Magenta, Cyan}

// RandomColor draws a color from the weighted palette.
func RandomColor(src Intner) Color {
	return colorTable[src.Intn(len(colorTable))]
}
