package imgproxy

// PaddingSpec is one of the accepted padding shapes: UniformPadding,
// SymmetricPadding or Padding. Every shape normalizes to a four-sided
// Padding.
type PaddingSpec interface {
	sides() Padding
}

// UniformPadding applies the same padding to all four sides.
type UniformPadding int

func (p UniformPadding) sides() Padding {
	v := int(p)

	return Padding{Top: v, Left: v, Right: v, Bottom: v}
}

// SymmetricPadding applies TopBottom to the top and bottom sides and
// LeftRight to the left and right sides.
type SymmetricPadding struct {
	TopBottom int
	LeftRight int
}

func (p SymmetricPadding) sides() Padding {
	return Padding{Top: p.TopBottom, Left: p.LeftRight, Right: p.LeftRight, Bottom: p.TopBottom}
}

// Padding is the normalized four-sided padding record. It is also accepted
// directly as a PaddingSpec for explicit per-side values.
type Padding struct {
	Top    int
	Left   int
	Right  int
	Bottom int
}

func (p Padding) sides() Padding { return p }

// BackgroundColor is either a HexColor or an RGBColor.
type BackgroundColor interface {
	values() []string
}

// HexColor is a background color in hex notation without the leading '#'.
type HexColor string

func (c HexColor) values() []string {
	if c == "" {
		return nil
	}

	return []string{string(c)}
}

// RGBColor is a background color given as three components. Components are
// passed through verbatim, so decimal and percentage forms both work.
type RGBColor struct {
	R string
	G string
	B string
}

func (c RGBColor) values() []string {
	return []string{c.R, c.G, c.B}
}

// NewBackgroundColor picks the color form from its arguments: when r, g and
// b are all non-empty the result is an RGBColor, otherwise r is taken as a
// hex color.
func NewBackgroundColor(r, g, b string) BackgroundColor {
	if r != "" && g != "" && b != "" {
		return RGBColor{R: r, G: g, B: b}
	}

	return HexColor(r)
}
