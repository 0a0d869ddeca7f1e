package report

import (
	"strings"
	"unicode"
)

// fileNameSuffix ends every report file name.
const fileNameSuffix = "_Testbericht.pdf"

// DefaultKind is the report kind used in file names when none is configured.
const DefaultKind = "CO2-Bilanz"

// FileName returns "<Subject>_<ReportKind>_Testbericht.pdf". Whitespace and
// path separators inside the parts are replaced with "-".
func FileName(subject, kind string) string {
	return sanitize(subject) + "_" + sanitize(kind) + fileNameSuffix
}

func sanitize(part string) string {
	part = strings.TrimSpace(part)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':':
			return '-'
		case unicode.IsSpace(r):
			return '-'
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, part)
}
