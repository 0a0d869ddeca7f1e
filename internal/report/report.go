// Package report assembles a fully computed footprint report: emissions,
// equivalences and the verification token for one entity and audit date.
//
// A Report is built fresh for every render call and carries no geometry;
// the layout package turns it into pages.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/input"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/verify"
)

// Request is everything the collecting layer supplies for one report.
type Request struct {
	EntityName string
	AuditDate  string
	Snapshot   input.Snapshot
}

// Report is the computed content of one footprint report.
type Report struct {
	EntityName string `json:"entity_name"`
	AuditDate  string `json:"audit_date"`

	Emissions emissions.Result    `json:"emissions"`
	Scope3    emissions.Breakdown `json:"scope3_breakdown"`

	// ElectricityFactor is the blended kg CO2e/kWh used in this run.
	ElectricityFactor float64 `json:"electricity_factor"`
	// GreenSharePercent is the clamped green-electricity share in percent.
	GreenSharePercent float64 `json:"green_share_percent"`

	Equivalences greenops.Equivalences `json:"equivalences"`

	// Token is the verification token; see package verify.
	Token string `json:"verification_token"`

	// RunID identifies the render for log correlation. It is never hashed.
	RunID         string    `json:"run_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	FactorVersion string    `json:"factor_version"`
}

// Builder computes reports against one factor table.
type Builder struct {
	table    *factors.Table
	digester verify.Digester
	now      func() time.Time
}

// NewBuilder returns a Builder. A nil digester uses SHA-256.
func NewBuilder(table *factors.Table, digester verify.Digester) *Builder {
	if digester == nil {
		digester = verify.SHA256{}
	}
	return &Builder{table: table, digester: digester, now: time.Now}
}

// WithClock overrides the time source, for reproducible output.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Calculate runs the aggregator and the equivalence calculator only. It is
// what a preview shows; it never touches the digest.
func (b *Builder) Calculate(snap input.Snapshot) (emissions.Result, greenops.Equivalences) {
	result := emissions.Compute(snap, b.table)
	return result, greenops.Calculate(result.Total, b.table.Compensation())
}

// Build recomputes everything from req and waits for the verification token.
// It fails only when the token cannot be derived; such a report must not be
// rendered.
func (b *Builder) Build(ctx context.Context, req Request) (*Report, error) {
	logger := logging.FromContext(ctx).With().Str("component", "report").Logger()

	if strings.TrimSpace(req.EntityName) == "" || strings.TrimSpace(req.AuditDate) == "" {
		logger.Warn().
			Bool("entity_missing", strings.TrimSpace(req.EntityName) == "").
			Bool("audit_date_missing", strings.TrimSpace(req.AuditDate) == "").
			Msg("report identity is incomplete")
	}
	if unknown := req.Snapshot.UnknownFields(); len(unknown) > 0 {
		logger.Debug().Strs("fields", unknown).Msg("ignoring unknown input fields")
	}

	greenInput := req.Snapshot.Number(input.FieldGreenShare)
	electricity := emissions.ElectricityFactor(greenInput, b.table)
	result, eq := b.Calculate(req.Snapshot)

	token, err := verify.Token(ctx, b.digester, req.EntityName, req.AuditDate)
	if err != nil {
		return nil, fmt.Errorf("building report for %q: %w", req.EntityName, err)
	}

	now := b.now()
	r := &Report{
		EntityName:        req.EntityName,
		AuditDate:         req.AuditDate,
		Emissions:         result,
		Scope3:            emissions.Scope3Breakdown(req.Snapshot, b.table, electricity),
		ElectricityFactor: electricity,
		GreenSharePercent: emissions.GreenShare(greenInput) * 100,
		Equivalences:      eq,
		Token:             token,
		RunID:             ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		GeneratedAt:       now,
		FactorVersion:     b.table.Version(),
	}

	logger.Debug().
		Str("run_id", r.RunID).
		Float64("total_kg", result.Total).
		Str("token", verify.Short(token, 12)).
		Msg("report built")

	return r, nil
}
