package layout

import "strings"

// Measurer reports the advance width of text in points.
type Measurer interface {
	StringWidth(text string, font Font, size float64) float64
}

// subscriptBase is the part of CO2 drawn at base size.
const subscriptBase = "CO"

// subscriptDigit is the synthesized subscript glyph.
const subscriptDigit = "2"

// Compose lays out text with its baseline starting at (x, y) and returns the
// draw operations and the total advance width.
//
// Fonts are not assumed to carry a subscript-two glyph: each CO₂ is drawn as
// "CO" at the base size followed by "2" at SubscriptScale of the base size,
// shifted down by BaselineShift of the base size. Text after it resumes on
// the base line at the measured end of the subscript.
func Compose(m Measurer, x, y float64, text string, style TextStyle) ([]Op, float64) {
	parts := strings.Split(text, CO2)
	ops := make([]Op, 0, 2*len(parts))
	cursor := x

	sub := style
	sub.Size = style.Size * SubscriptScale

	for i, part := range parts {
		last := i == len(parts)-1
		run := part
		if !last {
			run += subscriptBase
		}
		if run != "" {
			ops = append(ops, Text{X: cursor, Y: y, Content: run, Style: style})
			cursor += m.StringWidth(run, style.Font, style.Size)
		}
		if last {
			break
		}
		ops = append(ops, Text{
			X:       cursor,
			Y:       y + style.Size*BaselineShift,
			Content: subscriptDigit,
			Style:   sub,
		})
		cursor += m.StringWidth(subscriptDigit, sub.Font, sub.Size)
	}

	return ops, cursor - x
}

// ComposedWidth returns the width Compose would advance for text.
func ComposedWidth(m Measurer, text string, style TextStyle) float64 {
	_, w := Compose(m, 0, 0, text, style)
	return w
}

// Wrap breaks text into lines no wider than maxWidth, splitting on spaces.
// A single word wider than maxWidth gets a line of its own.
func Wrap(m Measurer, text string, style TextStyle, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if ComposedWidth(m, candidate, style) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}

// ellipsis marks text shortened by Truncate.
const ellipsis = "…"

// Truncate shortens text rune by rune until it fits maxWidth, marking the
// cut with an ellipsis. Text that already fits is returned unchanged.
func Truncate(m Measurer, text string, style TextStyle, maxWidth float64) string {
	if ComposedWidth(m, text, style) <= maxWidth {
		return text
	}
	runes := []rune(strings.TrimSpace(text))
	for n := len(runes) - 1; n > 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + ellipsis
		if ComposedWidth(m, candidate, style) <= maxWidth {
			return candidate
		}
	}
	return ""
}
