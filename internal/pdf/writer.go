package pdf

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rshade/footprint/internal/layout"
	"github.com/rshade/footprint/internal/report"
)

// Creator is written into the document information dictionary.
const Creator = "footprint"

const (
	allCorners  = "1234"
	blendNormal = "Normal"
)

// ErrNoPages is returned when there is nothing to write.
var ErrNoPages = errors.New("no pages to write")

// Metadata fills the document information dictionary.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Created  time.Time
}

// MetadataFor derives the document information for r.
func MetadataFor(r *report.Report, opts layout.Options) Metadata {
	return Metadata{
		Title:    fmt.Sprintf("%s %s: %s", opts.Title, opts.ReportKind, r.EntityName),
		Author:   r.EntityName,
		Subject:  "Stichtag " + r.AuditDate,
		Keywords: fmt.Sprintf("GHG Protocol; Prüf-ID %s; Lauf %s", r.Token, r.RunID),
		Created:  r.GeneratedAt,
	}
}

// Write replays pages onto a new document of the size given by opts and
// writes it to w.
func Write(w io.Writer, opts layout.Options, pages []layout.Page, meta Metadata) error {
	if len(pages) == 0 {
		return ErrNoPages
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: portrait,
		UnitStr:        unit,
		Size:           fpdf.SizeType{Wd: opts.PageWidth, Ht: opts.PageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)
	doc.SetTitle(meta.Title, true)
	doc.SetAuthor(meta.Author, true)
	doc.SetSubject(meta.Subject, true)
	doc.SetKeywords(meta.Keywords, true)
	doc.SetCreator(Creator, true)
	if !meta.Created.IsZero() {
		doc.SetCreationDate(meta.Created)
		doc.SetModificationDate(meta.Created)
	}

	p := painter{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor(codePage)}
	for _, page := range pages {
		doc.AddPage()
		for _, op := range page.Ops {
			p.draw(op)
		}
		if err := doc.Error(); err != nil {
			return fmt.Errorf("drawing page %d: %w", page.Index, err)
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Render lays out r with opts and writes the resulting document to w.
func Render(w io.Writer, r *report.Report, opts layout.Options) error {
	engine := layout.New(opts, NewMeasurer())
	pages, err := engine.Layout(r)
	if err != nil {
		return err
	}
	effective := engine.Options()
	return Write(w, effective, pages, MetadataFor(r, effective))
}

// painter translates layout operations into fpdf calls.
type painter struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

func (p painter) draw(op layout.Op) {
	switch o := op.(type) {
	case layout.Text:
		p.text(o)
	case layout.Rect:
		p.setColors(o.FillColor, o.StrokeColor)
		if o.LineWidth > 0 {
			p.doc.SetLineWidth(o.LineWidth)
		}
		if o.Radius > 0 {
			p.doc.RoundedRect(o.X, o.Y, o.W, o.H, o.Radius, allCorners, string(o.Paint))
			return
		}
		p.doc.Rect(o.X, o.Y, o.W, o.H, string(o.Paint))
	case layout.Line:
		p.doc.SetDrawColor(rgb(o.Color))
		p.doc.SetLineWidth(o.Width)
		p.doc.Line(o.X1, o.Y1, o.X2, o.Y2)
	case layout.Circle:
		p.setColors(o.FillColor, o.StrokeColor)
		p.doc.Circle(o.X, o.Y, o.R, string(o.Paint))
	case layout.Polygon:
		p.setColors(o.FillColor, o.StrokeColor)
		points := make([]fpdf.PointType, len(o.Points))
		for i, pt := range o.Points {
			points[i] = fpdf.PointType{X: pt.X, Y: pt.Y}
		}
		p.doc.Polygon(points, string(o.Paint))
	}
}

func (p painter) text(t layout.Text) {
	s := t.Style
	p.doc.SetFont(s.Font.Family, string(s.Font.Style), s.Size)
	p.doc.SetTextColor(rgb(s.Color))

	translucent := s.Opacity > 0 && s.Opacity < 1
	if translucent {
		p.doc.SetAlpha(s.Opacity, blendNormal)
	}
	if s.Rotation != 0 {
		p.doc.TransformBegin()
		p.doc.TransformRotate(s.Rotation, s.Pivot.X, s.Pivot.Y)
	}

	p.doc.Text(t.X, t.Y, p.tr(t.Content))

	if s.Rotation != 0 {
		p.doc.TransformEnd()
	}
	if translucent {
		p.doc.SetAlpha(1, blendNormal)
	}
}

func (p painter) setColors(fill, stroke layout.Color) {
	p.doc.SetFillColor(rgb(fill))
	p.doc.SetDrawColor(rgb(stroke))
}

func rgb(c layout.Color) (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}
