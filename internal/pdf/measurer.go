// Package pdf replays laid-out pages onto an fpdf document and writes the
// result to a stream or a file.
package pdf

import (
	"sync"

	"github.com/go-pdf/fpdf"

	"github.com/rshade/footprint/internal/layout"
)

// Document settings shared by the measurer and the writer.
const (
	unit      = "pt"
	pageSize  = "A4"
	portrait  = "P"
	codePage  = "cp1252"
	noFontDir = ""
)

// Measurer reports string widths using the metrics of the PDF core fonts,
// so that layout and rendering agree on every advance.
type Measurer struct {
	mu  sync.Mutex
	doc *fpdf.Fpdf
	tr  func(string) string
}

// NewMeasurer returns a Measurer backed by a scratch document.
func NewMeasurer() *Measurer {
	doc := fpdf.New(portrait, unit, pageSize, noFontDir)
	return &Measurer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor(codePage)}
}

// StringWidth implements layout.Measurer.
func (m *Measurer) StringWidth(text string, font layout.Font, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc.SetFont(font.Family, string(font.Style), size)
	return m.doc.GetStringWidth(m.tr(text))
}
