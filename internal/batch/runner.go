package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rshade/footprint/internal/input"
	"github.com/rshade/footprint/internal/layout"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/pdf"
	"github.com/rshade/footprint/internal/report"
)

// ErrDuplicateOutput is returned when two entries would write the same file.
var ErrDuplicateOutput = errors.New("entries share an output file")

// Runner renders the entries of a batch into OutDir.
type Runner struct {
	Builder *report.Builder
	Layout  layout.Options
	OutDir  string
	// Kind is the report kind used in file names.
	Kind       string
	Parallel   int
	OnProgress ProgressCallback
}

// Result is the outcome of one entry.
type Result struct {
	Entity  string
	Path    string
	Token   string
	TotalKg float64
	Err     error
}

// Run renders every entry. Results are returned in entry order, with Err
// set on failed entries. The error joins all entry failures.
func (r *Runner) Run(ctx context.Context, entries []Entry) ([]Result, error) {
	if r.Builder == nil {
		return nil, errors.New("batch runner has no report builder")
	}
	kind := r.Kind
	if kind == "" {
		kind = report.DefaultKind
	}
	if err := checkOutputs(entries, kind); err != nil {
		return nil, err
	}

	parallel := r.Parallel
	if parallel <= 0 {
		parallel = DefaultParallel
	}
	proc, err := NewProcessor[Entry](min(parallel, MaxParallel))
	if err != nil {
		return nil, err
	}
	proc.WithProgressCallback(r.OnProgress)

	logger := logging.ComponentLogger(*logging.FromContext(ctx), "batch")
	logger.Debug().Int("entries", len(entries)).Int("parallel", proc.Parallel()).Msg("starting batch")

	results := make([]Result, len(entries))
	started := make([]bool, len(entries))
	runErr := proc.Process(ctx, entries, func(ctx context.Context, e Entry, i int) error {
		started[i] = true
		res := r.render(ctx, e, kind)
		results[i] = res
		if res.Err != nil {
			logger.Debug().Int("index", i).Err(res.Err).Msg("entry failed")
			return fmt.Errorf("%s: %w", e.Entity, res.Err)
		}
		return nil
	})

	// Entries skipped after cancellation never reached render.
	for i := range results {
		if !started[i] {
			results[i] = Result{Entity: entries[i].Entity, Err: ctx.Err()}
		}
	}
	return results, runErr
}

func (r *Runner) render(ctx context.Context, e Entry, kind string) Result {
	res := Result{Entity: e.Entity}

	snap, err := loadSnapshot(e)
	if err != nil {
		res.Err = err
		return res
	}

	rep, err := r.Builder.Build(ctx, report.Request{
		EntityName: e.Entity,
		AuditDate:  e.AuditDate,
		Snapshot:   snap,
	})
	if err != nil {
		res.Err = err
		return res
	}
	res.Token = rep.Token
	res.TotalKg = rep.Emissions.Total

	res.Path, res.Err = pdf.SaveFile(r.OutDir, report.FileName(e.Entity, kind), func(w io.Writer) error {
		return pdf.Render(w, rep, r.Layout)
	})
	return res
}

func loadSnapshot(e Entry) (input.Snapshot, error) {
	snap := input.New(nil)
	if e.Input != "" {
		loaded, err := input.LoadFile(e.Input)
		if err != nil {
			return input.Snapshot{}, err
		}
		snap = loaded
	}
	return snap.With(e.Set), nil
}

// checkOutputs rejects entries that would overwrite each other's files.
func checkOutputs(entries []Entry, kind string) error {
	seen := make(map[string]string, len(entries))
	var dups []string
	for _, e := range entries {
		name := report.FileName(e.Entity, kind)
		if first, ok := seen[name]; ok {
			dups = append(dups, fmt.Sprintf("%q and %q -> %s", first, e.Entity, name))
			continue
		}
		seen[name] = e.Entity
	}
	if len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateOutput, strings.Join(dups, "; "))
	}
	return nil
}
