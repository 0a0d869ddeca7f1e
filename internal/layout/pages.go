package layout

import (
	"fmt"
	"strings"

	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/report"
)

// scopeInfo describes one scope for the legend blocks and summaries.
type scopeInfo struct {
	title       string
	description string
	value       float64
}

func scopeInfos(r *report.Report) [3]scopeInfo {
	return [3]scopeInfo{
		{
			title:       "Scope 1: Direkte Emissionen",
			description: "Eigener Fuhrpark mit Diesel-, Benzin-, Wasserstoff- und Elektrofahrzeugen.",
			value:       r.Emissions.Scope1,
		},
		{
			title: "Scope 2: Eingekaufte Energie",
			description: fmt.Sprintf("Strom und Kühlung mit %s kg CO₂e/kWh bei %s %% Ökostrom.",
				greenops.FormatFloat(r.ElectricityFactor, 3),
				greenops.FormatFloat(r.GreenSharePercent, greenops.PercentPrecision)),
			value: r.Emissions.Scope2,
		},
		{
			title:       "Scope 3: Weitere indirekte Emissionen",
			description: "Servicefahrten, Cloud-Nutzung, Arbeitswege der Mitarbeitenden und Druck.",
			value:       r.Emissions.Scope3,
		},
	}
}

// Cover identity block geometry.
const (
	identityValueOffset = 110.0
	identityMaxLines    = 2
)

// identityLines wraps an identity value to width, keeping at most
// identityMaxLines lines; the last one is truncated when more text remains.
func identityLines(m Measurer, value string, st TextStyle, width float64) []string {
	lines := Wrap(m, value, st, width)
	if len(lines) == 0 {
		return []string{""}
	}
	if len(lines) > identityMaxLines {
		rest := strings.Join(lines[identityMaxLines-1:], " ")
		lines = append(lines[:identityMaxLines-1], rest)
	}
	for i, line := range lines {
		lines[i] = Truncate(m, line, st, width)
	}
	return lines
}

// cover draws page 1: identity, total, scope summary and equivalences.
func (e *Engine) cover(c *canvas, r *report.Report) {
	left, right := e.opts.Margin, e.opts.right()
	width := e.opts.contentWidth()

	c.fillRect(0, 0, e.opts.PageWidth, 8, 0, ColorAccent)
	c.text(left, 110, e.opts.Title, withColor(sansBold(30), ColorAccent))
	c.text(left, 134, e.opts.ReportKind+" nach GHG Protocol", muted(12))

	identity := []struct{ label, value string }{
		{"Organisation", r.EntityName},
		{"Stichtag", r.AuditDate},
		{"Erstellt am", r.GeneratedAt.Format("02.01.2006")},
	}
	y := 180.0
	valueX := left + identityValueOffset
	for _, row := range identity {
		c.text(left, y, row.label+":", sansBold(11))
		for _, line := range identityLines(c.m, row.value, sans(11), right-valueX) {
			c.text(valueX, y, line, sans(11))
			y += 14
		}
		y += 4
	}

	// Total box.
	const boxTop, boxHeight = 250.0, 80.0
	c.fillRect(left, boxTop, width, boxHeight, 8, ColorTint)
	c.text(left+16, boxTop+26, "Gesamtemissionen pro Jahr", sansBold(12))
	c.text(left+16, boxTop+62, greenops.FormatKg(r.Emissions.Total)+" CO₂e", withColor(sansBold(26), ColorAccent))
	c.textRight(right-16, boxTop+62, greenops.FormatTonnes(r.Emissions.Total)+" CO₂e", sansBold(14))

	// Scope summary.
	y = 370
	c.text(left, y, "Bereich", sansBold(10))
	c.textRight(right, y, "Emissionen in kg CO₂e", sansBold(10))
	y += 8
	c.rule(left, right, y)
	for i, s := range scopeInfos(r) {
		y += 20
		c.fillRect(left, y-9, 10, 10, 2, ScopeColors[i])
		c.text(left+18, y, s.title, sans(10))
		c.textRight(right, y, greenops.FormatFloat(s.value, greenops.MassPrecision), sans(10))
		c.rule(left, right, y+7)
	}
	y += 22
	c.text(left+18, y, "Gesamt", sansBold(10))
	c.textRight(right, y, greenops.FormatFloat(r.Emissions.Total, greenops.MassPrecision), sansBold(10))

	// Equivalence summary.
	y += 50
	c.text(left, y, "Zum Vergleich", sansBold(12))
	eq := r.Equivalences
	lines := []string{
		greenops.FormatNumber(eq.TreeYears) + " Bäume müssten ein Jahr lang wachsen, um diese Menge zu binden.",
		greenops.FormatFloat(eq.VolumeCubicMeters, greenops.VolumePrecision) + " m³ CO₂-Gas bei Umgebungsbedingungen.",
		"Auf einem Fußballfeld gestapelt ergibt das eine " +
			greenops.FormatFloat(eq.ColumnHeightMeters, greenops.HeightPrecision) + " m hohe Säule.",
	}
	y += 8
	for _, line := range lines {
		y = c.paragraph(left, y+14, width, 14, line, sans(10)) - 14
	}
}

// scopes draws page 2: legend blocks, Scope 3 breakdown and the bar chart.
func (e *Engine) scopes(c *canvas, r *report.Report) {
	left, right := e.opts.Margin, e.opts.right()
	width := e.opts.contentWidth()

	y := 115.0
	for i, s := range scopeInfos(r) {
		legendBlock(c, left, y, width, ScopeColors[i], s)
		y += legendBlockHeight + legendBlockGap
	}

	y += 6
	c.text(left, y, "Zusammensetzung Scope 3", sansBold(11))
	breakdown := []struct {
		label string
		value float64
	}{
		{"Servicefahrten (abzüglich gebündelter Termine)", r.Scope3.ServiceTrips},
		{"Cloud-Nutzung", r.Scope3.Cloud},
		{"Arbeitswege", r.Scope3.Commuting},
		{"Ausdrucke", r.Scope3.Printing},
	}
	for _, b := range breakdown {
		y += 15
		c.text(left+12, y, b.label, sans(9))
		c.textRight(right, y, greenops.FormatKg(b.value), sans(9))
	}

	e.barChart(c, r, chartArea{
		left:   left + 40,
		top:    y + 75,
		width:  width - 80,
		height: e.opts.PageHeight - footerRuleOffset - 60 - (y + 75),
	})
}

// compensation draws page 3: equivalence legend, methodology and the
// verification note.
func (e *Engine) compensation(c *canvas, r *report.Report) {
	left := e.opts.Margin
	width := e.opts.contentWidth()
	eq := r.Equivalences

	rows := make([]legendRow, 0, len(eq.Results))
	for _, res := range eq.Results {
		row := legendRow{title: res.FormattedValue + " " + res.Label}
		switch res.Type {
		case greenops.EquivalencyTreeYears:
			row.icon = treeIcon
			row.text = "So viele Bäume müssten ein Jahr lang wachsen, um die Emissionen als CO₂ aufzunehmen."
		case greenops.EquivalencyColumnHeight:
			row.icon = stadiumIcon
			row.text = "Das Gasvolumen von " + greenops.FormatFloat(eq.VolumeCubicMeters, greenops.VolumePrecision) +
				" m³ CO₂, gleichmäßig auf einem Fußballfeld gestapelt."
		case greenops.EquivalencyTowerPercent:
			row.icon = towerIcon
			row.text = "So hoch reicht diese Säule im Vergleich zum Bauwerk " + eq.TowerName + "."
		default:
			continue
		}
		rows = append(rows, row)
	}

	y := 120.0
	for _, row := range rows {
		equivalenceRow(c, left, y, width, row)
		y += equivalenceRowHeight
	}

	y += 20
	c.text(left, y, "Methodik", sansBold(12))
	method := []string{
		"Scope 1 verteilt die Gesamtkilometer des Fuhrparks anteilig nach Fahrzeugzahl auf die Antriebsarten.",
		"Strom wird mit einem Mischfaktor aus Netzstrom und Ökostrom bewertet (" +
			greenops.FormatFloat(r.ElectricityFactor, 3) + " kg CO₂e/kWh); er gilt auch für Elektrofahrzeuge " +
			"und elektrische Arbeitswege.",
		"Servicefahrten zählen nur, soweit sie nicht durch gebündelte Termine vermieden wurden.",
		"Pkw-Arbeitswege werden konservativ mit dem Dieselfaktor bewertet, Fahrradwege verursachen keine Emissionen.",
		"Die Baumanzahl wird stets aufgerundet, damit die Kompensation den gesamten Fußabdruck abdeckt.",
	}
	y += 6
	for _, line := range method {
		y = c.paragraph(left, y+14, width, 12, "• "+line, sans(9)) - 12
	}

	y += 34
	c.text(left, y, "Verifikation", sansBold(12))
	y = c.paragraph(left, y+16, width, 12,
		"Die Prüf-ID ist ein SHA-256-Hash über Organisation und Stichtag. Zwei Berichte mit gleicher "+
			"Prüf-ID beziehen sich auf dieselbe Erhebung. Sie ist ein Integritätshinweis und keine "+
			"digitale Signatur.", sans(9))
	mono := style(FamilyMono, Regular, 9, ColorText)
	half := len(r.Token) / 2
	c.text(left, y+6, r.Token[:half], mono)
	c.text(left, y+18, r.Token[half:], mono)
}

func formatKgCO2e(kg float64) string {
	return greenops.FormatKg(kg) + " CO₂e"
}
