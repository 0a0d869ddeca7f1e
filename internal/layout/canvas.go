package layout

// canvas accumulates the operations of one page.
type canvas struct {
	m   Measurer
	ops []Op
}

func newCanvas(m Measurer) *canvas {
	return &canvas{m: m}
}

func (c *canvas) add(ops ...Op) {
	c.ops = append(c.ops, ops...)
}

// text draws composed text starting at x and returns its width.
func (c *canvas) text(x, y float64, s string, style TextStyle) float64 {
	ops, w := Compose(c.m, x, y, s, style)
	c.add(ops...)
	return w
}

// textRight draws composed text ending at right.
func (c *canvas) textRight(right, y float64, s string, style TextStyle) {
	c.text(right-ComposedWidth(c.m, s, style), y, s, style)
}

// textCenter draws composed text centered on cx.
func (c *canvas) textCenter(cx, y float64, s string, style TextStyle) {
	c.text(cx-ComposedWidth(c.m, s, style)/2, y, s, style)
}

// paragraph wraps s to width and returns the y below the last line.
func (c *canvas) paragraph(x, y, width, leading float64, s string, style TextStyle) float64 {
	for _, line := range Wrap(c.m, s, style, width) {
		c.text(x, y, line, style)
		y += leading
	}
	return y
}

func (c *canvas) rule(x1, x2, y float64) {
	c.add(Line{X1: x1, Y1: y, X2: x2, Y2: y, Color: ColorRule, Width: 0.5})
}

func (c *canvas) fillRect(x, y, w, h, radius float64, color Color) {
	c.add(Rect{X: x, Y: y, W: w, H: h, Radius: radius, Paint: Fill, FillColor: color})
}

// style returns an opaque, unrotated text style.
func style(family string, fs FontStyle, size float64, color Color) TextStyle {
	return TextStyle{
		Font:    Font{Family: family, Style: fs},
		Size:    size,
		Color:   color,
		Opacity: 1,
	}
}

func sans(size float64) TextStyle {
	return style(FamilySans, Regular, size, ColorText)
}

func sansBold(size float64) TextStyle {
	return style(FamilySans, Bold, size, ColorText)
}

func muted(size float64) TextStyle {
	return style(FamilySans, Regular, size, ColorMuted)
}

func withColor(s TextStyle, c Color) TextStyle {
	s.Color = c
	return s
}
