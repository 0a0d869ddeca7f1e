package layout

import "math"

// ISO A4 portrait in points.
const (
	A4Width  = 595.0
	A4Height = 842.0
)

// Subscript synthesis parameters, as fractions of the base font size.
const (
	SubscriptScale = 0.7
	BaselineShift  = 0.25
)

// CO2 is the formula as written in source text. Every occurrence is drawn as
// "CO" followed by a synthesized subscript "2".
const CO2 = "CO₂"

// Default presentation values.
const (
	DefaultMargin           = 40.0
	DefaultWatermarkOpacity = 0.04
	DefaultTitle            = "CO₂-Bilanz"
	DefaultReportKind       = "Testbericht"
	DefaultLicenseLine      = "Methodik: GHG Protocol Corporate Standard · Lizenz: CC BY 4.0"
	watermarkWidthShare     = 0.75
)

// Font families. The document writer maps these to its core fonts.
const (
	FamilySans = "Helvetica"
	FamilyMono = "Courier"
)

// Fixed presentation colors.
//
//nolint:gochecknoglobals // Palette constants.
var (
	ColorText      = Color{R: 33, G: 33, B: 33}
	ColorMuted     = Color{R: 117, G: 117, B: 117}
	ColorRule      = Color{R: 200, G: 200, B: 200}
	ColorWhite     = Color{R: 255, G: 255, B: 255}
	ColorAccent    = Color{R: 27, G: 94, B: 32}
	ColorTint      = Color{R: 232, G: 245, B: 233}
	ColorWatermark = Color{R: 27, G: 94, B: 32}
	ColorTreeCrown = Color{R: 56, G: 142, B: 60}
	ColorTreeTrunk = Color{R: 121, G: 85, B: 72}
	ColorPitch     = Color{R: 102, G: 187, B: 106}
	ColorTower     = Color{R: 96, G: 125, B: 139}

	// ScopeColors are indexed by scope number minus one.
	ScopeColors = [3]Color{
		{R: 46, G: 125, B: 50},
		{R: 21, G: 101, B: 192},
		{R: 239, G: 108, B: 0},
	}
)

// Options controls page geometry and presentation constants.
type Options struct {
	PageWidth        float64
	PageHeight       float64
	Margin           float64
	WatermarkOpacity float64
	Title            string
	ReportKind       string
	LicenseLine      string
}

// DefaultOptions returns A4 portrait with the default presentation.
func DefaultOptions() Options {
	return Options{
		PageWidth:        A4Width,
		PageHeight:       A4Height,
		Margin:           DefaultMargin,
		WatermarkOpacity: DefaultWatermarkOpacity,
		Title:            DefaultTitle,
		ReportKind:       DefaultReportKind,
		LicenseLine:      DefaultLicenseLine,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PageWidth <= 0 || o.PageHeight <= 0 {
		o.PageWidth, o.PageHeight = d.PageWidth, d.PageHeight
	}
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	if o.WatermarkOpacity <= 0 || o.WatermarkOpacity > 1 {
		o.WatermarkOpacity = d.WatermarkOpacity
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.ReportKind == "" {
		o.ReportKind = d.ReportKind
	}
	if o.LicenseLine == "" {
		o.LicenseLine = d.LicenseLine
	}
	return o
}

// WatermarkAngle returns the rotation that lays text along the page
// diagonal from bottom-left to top-right, in degrees.
func (o Options) WatermarkAngle() float64 {
	return math.Atan2(o.PageHeight, o.PageWidth) * 180 / math.Pi
}

// contentWidth is the usable width between the margins.
func (o Options) contentWidth() float64 {
	return o.PageWidth - 2*o.Margin
}

// right is the x coordinate of the right margin.
func (o Options) right() float64 {
	return o.PageWidth - o.Margin
}
