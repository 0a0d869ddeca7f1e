package report

import (
	"errors"
	"fmt"
	"time"
)

// AuditDateLayout is the format of audit dates.
const AuditDateLayout = "2006-01-02"

// ErrInvalidAuditDate is returned for an audit date not in AuditDateLayout.
var ErrInvalidAuditDate = errors.New("invalid audit date")

// ResolveAuditDate returns date when it is a valid YYYY-MM-DD date, or the
// date of now when date is empty.
func ResolveAuditDate(date string, now time.Time) (string, error) {
	if date == "" {
		return now.Format(AuditDateLayout), nil
	}
	if _, err := time.Parse(AuditDateLayout, date); err != nil {
		return "", fmt.Errorf("%w %q: want YYYY-MM-DD", ErrInvalidAuditDate, date)
	}
	return date, nil
}
