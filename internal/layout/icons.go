package layout

// Legend geometry.
const (
	legendBlockHeight    = 58.0
	legendBlockGap       = 12.0
	legendBlockRadius    = 6.0
	legendPadding        = 12.0
	equivalenceRowHeight = 62.0
	iconSize             = 32.0
)

// legendBlock draws a colored rounded block with a bold title, a
// description line and the scope value.
func legendBlock(c *canvas, x, y, w float64, color Color, s scopeInfo) {
	c.fillRect(x, y, w, legendBlockHeight, legendBlockRadius, color)

	title := withColor(sansBold(11), ColorWhite)
	desc := withColor(sans(9), ColorWhite)

	c.text(x+legendPadding, y+20, s.title, title)
	c.textRight(x+w-legendPadding, y+20, formatKgCO2e(s.value), title)
	c.paragraph(x+legendPadding, y+38, w-2*legendPadding, 11, s.description, desc)
}

// iconFunc draws an icon into the square at (x, y) with side s.
type iconFunc func(c *canvas, x, y, s float64)

// legendRow is one equivalence line: icon, bold figure and explanation.
type legendRow struct {
	icon  iconFunc
	title string
	text  string
}

func equivalenceRow(c *canvas, x, y, w float64, row legendRow) {
	row.icon(c, x, y, iconSize)
	textX := x + iconSize + 16
	c.text(textX, y+12, row.title, withColor(sansBold(12), ColorAccent))
	c.paragraph(textX, y+28, w-(textX-x), 11, row.text, sans(9))
}

// treeIcon draws a triangular crown on a rectangular trunk.
func treeIcon(c *canvas, x, y, s float64) {
	c.add(
		Polygon{
			Points:    []Point{{X: x + s/2, Y: y}, {X: x + s, Y: y + 0.7*s}, {X: x, Y: y + 0.7*s}},
			Paint:     Fill,
			FillColor: ColorTreeCrown,
		},
		Rect{X: x + 0.4*s, Y: y + 0.7*s, W: 0.2 * s, H: 0.3 * s, Paint: Fill, FillColor: ColorTreeTrunk},
	)
}

// stadiumIcon draws a rounded pitch with a center line.
func stadiumIcon(c *canvas, x, y, s float64) {
	c.add(
		Rect{
			X: x, Y: y + 0.2*s, W: s, H: 0.6 * s,
			Radius:      0.15 * s,
			Paint:       FillStroke,
			FillColor:   ColorPitch,
			StrokeColor: ColorAccent,
			LineWidth:   1,
		},
		Line{X1: x + s/2, Y1: y + 0.2*s, X2: x + s/2, Y2: y + 0.8*s, Color: ColorWhite, Width: 1},
	)
}

// towerIcon draws a shaft, a sphere and an antenna.
func towerIcon(c *canvas, x, y, s float64) {
	cx := x + s/2
	c.add(
		Rect{X: cx - 0.08*s, Y: y + 0.35*s, W: 0.16 * s, H: 0.65 * s, Paint: Fill, FillColor: ColorTower},
		Circle{X: cx, Y: y + 0.38*s, R: 0.14 * s, Paint: Fill, FillColor: ColorTower},
		Polygon{
			Points:    []Point{{X: cx, Y: y}, {X: cx + 0.04*s, Y: y + 0.24*s}, {X: cx - 0.04*s, Y: y + 0.24*s}},
			Paint:     Fill,
			FillColor: ColorTower,
		},
	)
}
