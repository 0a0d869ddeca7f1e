// Package layout turns a computed report into fixed-size pages of vector
// draw operations.
//
// Pages use PDF points with the origin at the top-left corner and y growing
// downwards. Text positions are baselines. Nothing here knows about a
// concrete output format; a document writer replays the operations.
package layout

// Point is a position on the page.
type Point struct {
	X, Y float64
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// FontStyle selects a face within a family.
type FontStyle string

// Font styles understood by the document writer.
const (
	Regular FontStyle = ""
	Bold    FontStyle = "B"
	Italic  FontStyle = "I"
)

// Font identifies a font face.
type Font struct {
	Family string
	Style  FontStyle
}

// PaintStyle selects how a shape is painted.
type PaintStyle string

// Paint styles.
const (
	Fill       PaintStyle = "F"
	Stroke     PaintStyle = "D"
	FillStroke PaintStyle = "FD"
)

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	Font    Font
	Size    float64
	Color   Color
	Opacity float64

	// Rotation is in degrees, counter-clockwise, around Pivot.
	Rotation float64
	Pivot    Point
}

// Op is a single draw operation.
type Op interface {
	isOp()
}

// Text draws a run of text with its baseline starting at (X, Y).
type Text struct {
	X, Y    float64
	Content string
	Style   TextStyle
}

// Rect draws a rectangle, rounded when Radius is positive.
type Rect struct {
	X, Y, W, H  float64
	Radius      float64
	Paint       PaintStyle
	FillColor   Color
	StrokeColor Color
	LineWidth   float64
}

// Line draws a straight line.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Width          float64
}

// Circle draws a circle centered at (X, Y).
type Circle struct {
	X, Y, R     float64
	Paint       PaintStyle
	FillColor   Color
	StrokeColor Color
}

// Polygon draws a closed polygon.
type Polygon struct {
	Points      []Point
	Paint       PaintStyle
	FillColor   Color
	StrokeColor Color
}

func (Text) isOp()    {}
func (Rect) isOp()    {}
func (Line) isOp()    {}
func (Circle) isOp()  {}
func (Polygon) isOp() {}

// Page is one laid-out page. Index is 1-based.
type Page struct {
	Index int
	Total int
	Title string
	Ops   []Op
}
