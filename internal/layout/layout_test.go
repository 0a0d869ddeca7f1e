package layout

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/input"
	"github.com/rshade/footprint/internal/report"
)

// fixedMeasurer treats every rune as half an em wide.
type fixedMeasurer struct{}

func (fixedMeasurer) StringWidth(text string, _ Font, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * 0.5
}

func buildReport(t *testing.T, values map[string]string) *report.Report {
	t.Helper()
	b := report.NewBuilder(factors.Default(), nil).
		WithClock(func() time.Time { return time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC) })
	r, err := b.Build(context.Background(), report.Request{
		EntityName: "Muster GmbH",
		AuditDate:  "2026-03-31",
		Snapshot:   input.New(values),
	})
	require.NoError(t, err)
	return r
}

func texts(p Page) []Text {
	var out []Text
	for _, op := range p.Ops {
		if t, ok := op.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}

func joined(p Page) string {
	var sb strings.Builder
	for _, t := range texts(p) {
		sb.WriteString(t.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestComposeSubscript(t *testing.T) {
	st := sans(10)

	ops, width := Compose(fixedMeasurer{}, 100, 200, CO2, st)

	sub := st
	sub.Size = 7
	want := []Op{
		Text{X: 100, Y: 200, Content: "CO", Style: st},
		Text{X: 110, Y: 202.5, Content: "2", Style: sub},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("Compose mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 13.5, width, 1e-9)
}

func TestComposeContinuesAfterSubscript(t *testing.T) {
	st := sans(10)

	ops, width := Compose(fixedMeasurer{}, 0, 50, "in t CO₂e pro Jahr", st)

	require.Len(t, ops, 3)
	first := ops[0].(Text)
	digit := ops[1].(Text)
	rest := ops[2].(Text)

	assert.Equal(t, "in t CO", first.Content)
	assert.Equal(t, "2", digit.Content)
	assert.InDelta(t, 10*SubscriptScale, digit.Style.Size, 1e-9)
	assert.InDelta(t, 50+10*BaselineShift, digit.Y, 1e-9)
	assert.InDelta(t, 35.0, digit.X, 1e-9)
	assert.Equal(t, "e pro Jahr", rest.Content)
	assert.InDelta(t, 50.0, rest.Y, 1e-9)
	assert.InDelta(t, 38.5, rest.X, 1e-9, "resumes after the measured subscript")
	assert.InDelta(t, 38.5+50, width, 1e-9)
}

func TestComposeMultipleAndNone(t *testing.T) {
	st := sans(10)

	ops, _ := Compose(fixedMeasurer{}, 0, 0, "CO₂ und CO₂", st)
	require.Len(t, ops, 4)
	assert.Equal(t, "CO", ops[0].(Text).Content)
	assert.Equal(t, "2", ops[1].(Text).Content)
	assert.Equal(t, " und CO", ops[2].(Text).Content)
	assert.Equal(t, "2", ops[3].(Text).Content)

	ops, width := Compose(fixedMeasurer{}, 5, 5, "Gesamt", st)
	require.Len(t, ops, 1)
	assert.InDelta(t, 30.0, width, 1e-9)

	ops, width = Compose(fixedMeasurer{}, 5, 5, "", st)
	assert.Empty(t, ops)
	assert.Zero(t, width)
}

func TestComposeKeepsRotation(t *testing.T) {
	st := sans(40)
	st.Rotation = 30
	st.Pivot = Point{X: 10, Y: 20}
	st.Opacity = 0.05

	ops, _ := Compose(fixedMeasurer{}, 0, 0, "CO₂-Bilanz", st)
	for _, op := range ops {
		txt := op.(Text)
		assert.InDelta(t, 30.0, txt.Style.Rotation, 1e-9)
		assert.Equal(t, Point{X: 10, Y: 20}, txt.Style.Pivot)
		assert.InDelta(t, 0.05, txt.Style.Opacity, 1e-9)
	}
}

func TestWrap(t *testing.T) {
	st := sans(10) // 5pt per rune

	lines := Wrap(fixedMeasurer{}, "eins zwei drei vier", st, 50)
	assert.Equal(t, []string{"eins zwei", "drei vier"}, lines)

	lines = Wrap(fixedMeasurer{}, "Donaudampfschifffahrt kurz", st, 20)
	assert.Equal(t, []string{"Donaudampfschifffahrt", "kurz"}, lines)

	assert.Nil(t, Wrap(fixedMeasurer{}, "   ", st, 50))
}

func TestBarHeights(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{name: "all zero", values: []float64{0, 0, 0}, want: []float64{0, 0, 0}},
		{name: "proportional to max", values: []float64{1700, 850, 0}, want: []float64{200, 100, 0}},
		{name: "floor of one kg", values: []float64{0.5, 0.25, 0}, want: []float64{100, 50, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BarHeights(tt.values, 200)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestLayoutRequiresToken(t *testing.T) {
	e := New(DefaultOptions(), fixedMeasurer{})

	_, err := e.Layout(nil)
	require.Error(t, err)

	r := buildReport(t, nil)
	r.Token = ""
	_, err = e.Layout(r)
	assert.ErrorIs(t, err, ErrUnverified)
}

func TestLayoutPages(t *testing.T) {
	r := buildReport(t, map[string]string{
		input.FieldKmTotal:        "10000",
		input.FieldVehiclesDiesel: "1",
	})
	e := New(DefaultOptions(), fixedMeasurer{})

	pages, err := e.Layout(r)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for i, p := range pages {
		assert.Equal(t, i+1, p.Index)
		assert.Equal(t, 3, p.Total)

		all := joined(p)
		assert.Contains(t, all, fmt.Sprintf("Seite %d von 3", i+1))
		assert.Contains(t, all, "Prüf-ID: "+r.Token)
		assert.Contains(t, all, DefaultLicenseLine)
		assert.Contains(t, all, "Faktorensatz "+factors.DefaultVersion)

		if i > 0 {
			assert.Contains(t, all, "Muster GmbH")
			assert.Contains(t, all, "Stichtag: 2026-03-31")
			assert.Contains(t, all, p.Title)
		}
	}

	cover := joined(pages[0])
	assert.Contains(t, cover, "1.700 kg CO")
	assert.Contains(t, cover, "1,70 t CO")
	assert.Contains(t, cover, "136 Bäume")
	assert.Contains(t, cover, "31.03.2026")
}

func TestLayoutPageMarkerIsRightAligned(t *testing.T) {
	r := buildReport(t, nil)
	e := New(DefaultOptions(), fixedMeasurer{})

	pages, err := e.Layout(r)
	require.NoError(t, err)

	for _, p := range pages {
		marker := fmt.Sprintf("Seite %d von 3", p.Index)
		var found bool
		for _, txt := range texts(p) {
			if txt.Content != marker {
				continue
			}
			found = true
			end := txt.X + fixedMeasurer{}.StringWidth(txt.Content, txt.Style.Font, txt.Style.Size)
			assert.InDelta(t, A4Width-DefaultMargin, end, 1e-9)
		}
		assert.True(t, found, "page %d has no marker", p.Index)
	}
}

func TestWatermark(t *testing.T) {
	r := buildReport(t, nil)
	e := New(DefaultOptions(), fixedMeasurer{})

	pages, err := e.Layout(r)
	require.NoError(t, err)

	for _, p := range pages {
		var rotated []Text
		for _, txt := range texts(p) {
			if txt.Style.Rotation != 0 {
				rotated = append(rotated, txt)
			}
		}
		require.NotEmpty(t, rotated, "page %d has no watermark", p.Index)

		first := rotated[0]
		assert.Equal(t, p.Ops[0], first, "watermark is drawn beneath the content")
		assert.InDelta(t, e.Options().WatermarkAngle(), first.Style.Rotation, 1e-9)
		assert.Greater(t, first.Style.Rotation, 0.0)
		assert.InDelta(t, DefaultWatermarkOpacity, first.Style.Opacity, 1e-9)
		assert.Equal(t, Point{X: A4Width / 2, Y: A4Height / 2}, first.Style.Pivot)
		assert.Equal(t, "CO", first.Content)

		// The subscript is composed in the rotated frame too.
		require.GreaterOrEqual(t, len(rotated), 3)
		digit := rotated[1]
		assert.Equal(t, "2", digit.Content)
		assert.InDelta(t, first.Style.Size*SubscriptScale, digit.Style.Size, 1e-9)
		assert.InDelta(t, first.Y+first.Style.Size*BaselineShift, digit.Y, 1e-9)

		// Centered horizontally around the pivot.
		last := rotated[len(rotated)-1]
		end := last.X + fixedMeasurer{}.StringWidth(last.Content, last.Style.Font, last.Style.Size)
		assert.InDelta(t, A4Width/2, (first.X+end)/2, 1e-6)
	}
}

func TestWatermarkAngle(t *testing.T) {
	angle := DefaultOptions().WatermarkAngle()
	assert.InDelta(t, 54.75, angle, 0.01)
}

func TestScopeBlocksAndChart(t *testing.T) {
	r := buildReport(t, map[string]string{
		input.FieldKmTotal:        "10000",
		input.FieldVehiclesDiesel: "1",
		input.FieldElectricityKWh: "2236.842105263158", // 850 kg at the grid factor
	})
	e := New(DefaultOptions(), fixedMeasurer{})

	pages, err := e.Layout(r)
	require.NoError(t, err)
	page := pages[1]

	var blocks, bars []Rect
	for _, op := range page.Ops {
		rect, ok := op.(Rect)
		if !ok {
			continue
		}
		for _, c := range ScopeColors {
			if rect.FillColor != c {
				continue
			}
			if rect.Radius > 0 && rect.H == legendBlockHeight {
				blocks = append(blocks, rect)
			} else if rect.Radius == 0 {
				bars = append(bars, rect)
			}
		}
	}
	require.Len(t, blocks, 3)
	for i, b := range blocks {
		assert.Equal(t, ScopeColors[i], b.FillColor)
	}

	require.Len(t, bars, 3)
	assert.InDelta(t, bars[0].H/2, bars[1].H, 1e-6)
	assert.Zero(t, bars[2].H)
	// Bars share a baseline.
	assert.InDelta(t, bars[0].Y+bars[0].H, bars[1].Y+bars[1].H, 1e-9)

	all := joined(page)
	assert.Contains(t, all, "1,70\n")
	assert.Contains(t, all, "0,85\n")
	assert.Contains(t, all, "0,00\n")
	assert.Contains(t, all, "Emissionen je Scope in t CO\n2\ne")

	var lines int
	for _, op := range page.Ops {
		if l, ok := op.(Line); ok && l.Width == chartLineWidth {
			lines++
		}
	}
	assert.Equal(t, 2, lines, "baseline and left axis")
}

func TestChartWithAllZeroScopes(t *testing.T) {
	r := buildReport(t, nil)
	e := New(DefaultOptions(), fixedMeasurer{})

	pages, err := e.Layout(r)
	require.NoError(t, err)

	for _, op := range pages[1].Ops {
		if rect, ok := op.(Rect); ok && rect.Radius == 0 {
			for _, c := range ScopeColors {
				if rect.FillColor == c {
					assert.Zero(t, rect.H)
				}
			}
		}
	}
}

func TestCompensationIconsAreVector(t *testing.T) {
	r := buildReport(t, map[string]string{input.FieldPrintedSheets: "1000"})
	e := New(DefaultOptions(), fixedMeasurer{})

	pages, err := e.Layout(r)
	require.NoError(t, err)
	page := pages[2]

	var polygons, circles int
	for _, op := range page.Ops {
		switch op.(type) {
		case Polygon:
			polygons++
		case Circle:
			circles++
		}
	}
	assert.Equal(t, 2, polygons, "tree crown and tower antenna")
	assert.Equal(t, 1, circles, "tower sphere")

	all := joined(page)
	assert.Contains(t, all, "1 Bäume")
	assert.Contains(t, all, r.Equivalences.Results[1].FormattedValue+" hohe Säule")
	assert.Contains(t, all, "Berliner Fernsehturm")
	assert.Contains(t, all, r.Token[:32])
	assert.Contains(t, all, r.Token[32:])
}

func TestTruncate(t *testing.T) {
	m := fixedMeasurer{}
	st := sans(10)

	assert.Equal(t, "Muster GmbH", Truncate(m, "Muster GmbH", st, 100))
	// 10 runes at 5pt each.
	got := Truncate(m, "Muster GmbH & Co. KG", st, 50)
	assert.Equal(t, "Muster Gm…", got)
	assert.LessOrEqual(t, ComposedWidth(m, got, st), 50.0)
	assert.Empty(t, Truncate(m, "Muster", st, 4))
}

func TestLongEntityNameStaysInsideMargins(t *testing.T) {
	r := buildReport(t, nil)
	r.EntityName = strings.Repeat("Verband der Bäckereien und Konditoreien ", 4) + "e.V."
	opts := DefaultOptions()
	e := New(opts, fixedMeasurer{})

	pages, err := e.Layout(r)
	require.NoError(t, err)

	right := opts.PageWidth - opts.Margin
	width := func(txt Text) float64 {
		return fixedMeasurer{}.StringWidth(txt.Content, txt.Style.Font, txt.Style.Size)
	}

	var coverLines int
	for _, txt := range texts(pages[0]) {
		if strings.Contains(txt.Content, "Verband") || strings.Contains(txt.Content, "Bäckereien") {
			coverLines++
			assert.LessOrEqual(t, txt.X+width(txt), right+1e-9)
		}
	}
	assert.Equal(t, identityMaxLines, coverLines)

	titleWidth := ComposedWidth(fixedMeasurer{}, opts.Title, sansBold(11))
	for _, p := range pages[1:] {
		var found bool
		for _, txt := range texts(p) {
			if txt.Y != headerBaseline || !strings.HasPrefix(txt.Content, "Verband") {
				continue
			}
			found = true
			assert.True(t, strings.HasSuffix(txt.Content, ellipsis))
			assert.GreaterOrEqual(t, txt.X, opts.Margin+titleWidth+headerGap-1e-9)
			assert.InDelta(t, right, txt.X+width(txt), 1e-9)
		}
		assert.True(t, found, "page %d has no entity in its header", p.Index)
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	r := buildReport(t, map[string]string{input.FieldCommuteCarKm: "12345"})
	e := New(DefaultOptions(), fixedMeasurer{})

	a, err := e.Layout(r)
	require.NoError(t, err)
	b, err := e.Layout(r)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("layout differs between runs:\n%s", diff)
	}
}

func TestOptionsDefaults(t *testing.T) {
	e := New(Options{WatermarkOpacity: 3}, fixedMeasurer{})
	assert.Equal(t, DefaultOptions(), e.Options())

	custom := New(Options{Title: "Klimabilanz", WatermarkOpacity: 0.1}, fixedMeasurer{}).Options()
	assert.Equal(t, "Klimabilanz", custom.Title)
	assert.InDelta(t, 0.1, custom.WatermarkOpacity, 1e-12)
	assert.InDelta(t, A4Width, custom.PageWidth, 1e-12)
}
