package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/report"
)

// ErrEmptyManifest is returned for a manifest without report entries.
var ErrEmptyManifest = errors.New("manifest lists no reports")

// Entry describes one report of a batch.
type Entry struct {
	Entity    string `yaml:"entity"`
	AuditDate string `yaml:"audit_date,omitempty"`
	// Input is a snapshot file; relative paths resolve against the manifest.
	Input string `yaml:"input,omitempty"`
	// Set overrides snapshot fields, like repeated --set flags.
	Set map[string]string `yaml:"set,omitempty"`
}

// Manifest lists the reports of one batch run.
//
//	audit_date: "2026-12-31"
//	reports:
//	  - entity: Bäckerei Müller
//	    input: mueller.yaml
//	  - entity: Schreinerei Holz
//	    set:
//	      km_total: 12000
type Manifest struct {
	// AuditDate applies to every entry that does not name its own.
	AuditDate string  `yaml:"audit_date,omitempty"`
	Reports   []Entry `yaml:"reports"`
}

// LoadManifest reads a manifest, resolves entry inputs relative to its
// directory and fills in the default audit date. Entries without any audit
// date get today's date; malformed dates are rejected.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err = yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", filepath.Base(path), err)
	}
	if len(m.Reports) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrEmptyManifest)
	}

	if m.AuditDate, err = report.ResolveAuditDate(m.AuditDate, time.Now()); err != nil {
		return nil, fmt.Errorf("%s: audit_date: %w", filepath.Base(path), err)
	}

	base := filepath.Dir(path)
	for i := range m.Reports {
		e := &m.Reports[i]
		e.Entity = strings.TrimSpace(e.Entity)
		if e.AuditDate == "" {
			e.AuditDate = m.AuditDate
		} else if _, err = report.ResolveAuditDate(e.AuditDate, time.Now()); err != nil {
			return nil, fmt.Errorf("%s: report %d (%s): %w", filepath.Base(path), i+1, e.Entity, err)
		}
		if e.Input != "" && !filepath.IsAbs(e.Input) {
			e.Input = filepath.Join(base, e.Input)
		}
	}
	return &m, nil
}
