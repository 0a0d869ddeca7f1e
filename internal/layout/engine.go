package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/rshade/footprint/internal/report"
)

// ErrUnverified is returned for a report without a verification token.
// Every footer prints the token, so no page can be laid out without it.
var ErrUnverified = errors.New("report has no verification token")

// Vertical positions shared by all pages.
const (
	headerBaseline   = 45.0
	headerGap        = 24.0
	headerSubline    = 58.0
	headerRuleY      = 66.0
	pageTitleY       = 92.0
	footerRuleOffset = 50.0
	footerLineGap    = 11.0
)

// Engine lays out reports. It holds no per-report state; one Engine may
// lay out many reports, also concurrently, as long as its Measurer allows.
type Engine struct {
	opts Options
	m    Measurer
}

// New returns an Engine. Zero option fields take their defaults.
func New(opts Options, m Measurer) *Engine {
	return &Engine{opts: opts.withDefaults(), m: m}
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// pageBuilder draws the body of one page.
type pageBuilder struct {
	title string
	body  func(c *canvas, r *report.Report)
}

// Layout produces the complete page sequence for r: a cover page, a page
// with the scope legend and bar chart, and a compensation page.
func (e *Engine) Layout(r *report.Report) ([]Page, error) {
	if r == nil {
		return nil, errors.New("nil report")
	}
	if r.Token == "" {
		return nil, fmt.Errorf("laying out report for %q: %w", r.EntityName, ErrUnverified)
	}

	builders := []pageBuilder{
		{title: "", body: e.cover},
		{title: "Emissionen nach Scopes", body: e.scopes},
		{title: "Kompensation und Vergleichsgrößen", body: e.compensation},
	}

	pages := make([]Page, 0, len(builders))
	for i, b := range builders {
		index := i + 1
		c := newCanvas(e.m)
		e.watermark(c)
		if index > 1 {
			e.header(c, r, b.title)
		}
		b.body(c, r)
		e.footer(c, r, index, len(builders))
		pages = append(pages, Page{Index: index, Total: len(builders), Title: b.title, Ops: c.ops})
	}
	return pages, nil
}

// watermarkText is the composed text drawn across every page.
func (e *Engine) watermarkText() string {
	return e.opts.Title + " " + e.opts.ReportKind
}

// watermark draws the title along the page diagonal, centered, at very low
// opacity. Its size is chosen so that it spans a fixed share of the diagonal.
func (e *Engine) watermark(c *canvas) {
	text := e.watermarkText()
	cx, cy := e.opts.PageWidth/2, e.opts.PageHeight/2

	st := style(FamilySans, Bold, 1, ColorWatermark)
	unit := ComposedWidth(e.m, text, st)
	if unit <= 0 {
		return
	}
	diagonal := math.Hypot(e.opts.PageWidth, e.opts.PageHeight)
	st.Size = diagonal * watermarkWidthShare / unit
	st.Opacity = e.opts.WatermarkOpacity
	st.Rotation = e.opts.WatermarkAngle()
	st.Pivot = Point{X: cx, Y: cy}

	const capHeightShare = 0.35
	width := unit * st.Size
	c.text(cx-width/2, cy+st.Size*capHeightShare, text, st)
}

// header repeats the report identity on every page after the cover.
func (e *Engine) header(c *canvas, r *report.Report, title string) {
	left, right := e.opts.Margin, e.opts.right()

	titleWidth := c.text(left, headerBaseline, e.opts.Title, withColor(sansBold(11), ColorAccent))
	entity := sansBold(10)
	c.textRight(right, headerBaseline,
		Truncate(e.m, r.EntityName, entity, right-left-titleWidth-headerGap), entity)
	c.textRight(right, headerSubline, "Stichtag: "+r.AuditDate, muted(9))
	c.rule(left, right, headerRuleY)
	c.textCenter(e.opts.PageWidth/2, pageTitleY, title, sansBold(16))
}

// footer prints the disclosure line, the verification token and the page
// marker.
func (e *Engine) footer(c *canvas, r *report.Report, index, total int) {
	left, right := e.opts.Margin, e.opts.right()
	ruleY := e.opts.PageHeight - footerRuleOffset
	first := ruleY + footerLineGap
	second := first + footerLineGap

	c.rule(left, right, ruleY)
	disclosure := e.opts.LicenseLine
	if r.FactorVersion != "" {
		disclosure += " · Faktorensatz " + r.FactorVersion
	}
	c.text(left, first, disclosure, muted(7))
	c.text(left, second, "Prüf-ID: "+r.Token, style(FamilyMono, Regular, 6.5, ColorMuted))
	c.textRight(right, second, fmt.Sprintf("Seite %d von %d", index, total), muted(8))
}
