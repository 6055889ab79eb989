package domain

// ColorKey is a display grouping tag for a workout day. It carries no
// semantics beyond picking the color a day is rendered with.
type ColorKey string

const (
	ColorRed     ColorKey = "red"
	ColorGreen   ColorKey = "green"
	ColorPurple  ColorKey = "purple"
	ColorOrange  ColorKey = "orange"
	ColorPink    ColorKey = "pink"
	ColorTeal    ColorKey = "teal"
	ColorAmber   ColorKey = "amber"
	ColorRose    ColorKey = "rose"
	ColorEmerald ColorKey = "emerald"
	ColorGray    ColorKey = "gray"
)

// ColorOptions lists every valid ColorKey, in display order.
var ColorOptions = []ColorKey{
	ColorRed,
	ColorGreen,
	ColorPurple,
	ColorOrange,
	ColorPink,
	ColorTeal,
	ColorAmber,
	ColorRose,
	ColorEmerald,
	ColorGray,
}

// IsValid reports whether c is one of the known color keys.
func (c ColorKey) IsValid() bool {
	for _, option := range ColorOptions {
		if c == option {
			return true
		}
	}
	return false
}

// OrGray returns c if it is a known color key, and gray otherwise.
// Unknown or empty colors always render as gray.
func (c ColorKey) OrGray() ColorKey {
	if c.IsValid() {
		return c
	}
	return ColorGray
}
