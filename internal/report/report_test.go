package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/input"
	"github.com/rshade/footprint/internal/verify"
)

var fixedNow = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

func dieselRequest() Request {
	return Request{
		EntityName: "Muster GmbH",
		AuditDate:  "2026-03-31",
		Snapshot: input.New(map[string]string{
			input.FieldKmTotal:        "10000",
			input.FieldVehiclesDiesel: "1",
		}),
	}
}

func TestBuild(t *testing.T) {
	b := NewBuilder(factors.Default(), nil).WithClock(func() time.Time { return fixedNow })

	r, err := b.Build(context.Background(), dieselRequest())
	require.NoError(t, err)

	assert.Equal(t, "Muster GmbH", r.EntityName)
	assert.Equal(t, "2026-03-31", r.AuditDate)
	assert.InDelta(t, 1700.0, r.Emissions.Scope1, 1e-9)
	assert.InDelta(t, 1700.0, r.Emissions.Total, 1e-9)
	assert.Equal(t, int64(136), r.Equivalences.TreeYears)
	assert.InDelta(t, 0.380, r.ElectricityFactor, 1e-12)
	assert.Zero(t, r.GreenSharePercent)
	assert.Equal(t, factors.DefaultVersion, r.FactorVersion)
	assert.Equal(t, fixedNow, r.GeneratedAt)

	want, err := verify.Token(context.Background(), nil, "Muster GmbH", "2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, want, r.Token)

	id, err := ulid.Parse(r.RunID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(fixedNow), id.Time())
}

func TestBuildRecomputesEveryCall(t *testing.T) {
	b := NewBuilder(factors.Default(), nil)
	req := dieselRequest()

	first, err := b.Build(context.Background(), req)
	require.NoError(t, err)

	req.Snapshot = req.Snapshot.With(map[string]string{input.FieldKmTotal: "20000"})
	second, err := b.Build(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 1700.0, first.Emissions.Total, 1e-9)
	assert.InDelta(t, 3400.0, second.Emissions.Total, 1e-9)
	assert.Equal(t, first.Token, second.Token, "token only depends on identity")
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestBuildGreenShareIsClamped(t *testing.T) {
	b := NewBuilder(factors.Default(), nil)
	req := dieselRequest()
	req.Snapshot = req.Snapshot.With(map[string]string{input.FieldGreenShare: "150"})

	r, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, r.GreenSharePercent, 1e-12)
	assert.InDelta(t, 0.030, r.ElectricityFactor, 1e-12)
}

func TestBuildVerificationUnavailable(t *testing.T) {
	failing := verify.DigesterFunc(func(context.Context, []byte) ([]byte, error) {
		return nil, errors.New("no digest")
	})
	b := NewBuilder(factors.Default(), failing)

	r, err := b.Build(context.Background(), dieselRequest())
	require.Error(t, err)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, verify.ErrVerificationUnavailable)
}

func TestBuildWarnsOnIncompleteIdentity(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	req := dieselRequest()
	req.EntityName = "  "

	r, err := NewBuilder(factors.Default(), nil).Build(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, r.Token)
	assert.Contains(t, buf.String(), "report identity is incomplete")
}

func TestCalculateMatchesBuild(t *testing.T) {
	b := NewBuilder(factors.Default(), nil)
	req := dieselRequest()

	result, eq := b.Calculate(req.Snapshot)
	r, err := b.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, result, r.Emissions)
	assert.Equal(t, eq, r.Equivalences)
	assert.Equal(t, NewSummary(result, eq), r.Summary())
}

func TestSummaryFields(t *testing.T) {
	b := NewBuilder(factors.Default(), nil)
	result, eq := b.Calculate(dieselRequest().Snapshot)

	s := NewSummary(result, eq)
	assert.Equal(t, int64(136), s.TreeYears)
	assert.Equal(t, eq.Results, s.Equivalences)
	assert.Contains(t, s.DisplayText, "136 Bäumen")

	fields := s.Fields()
	require.Len(t, fields, 8)
	assert.Equal(t, Field{Label: "Scope 1", Value: "1.700 kg"}, fields[0])
	assert.Equal(t, Field{Label: "Gesamt", Value: "1.700 kg"}, fields[3])
	assert.Equal(t, Field{Label: "Bäume (1 Jahr)", Value: "136"}, fields[4])
	assert.Equal(t, Field{Label: "Säulenhöhe", Value: "0,12 m"}, fields[6])
}

func TestFileName(t *testing.T) {
	tests := []struct {
		subject, kind, want string
	}{
		{"Muster GmbH", "CO2-Bilanz", "Muster-GmbH_CO2-Bilanz_Testbericht.pdf"},
		{"  A/B  ", "Kind", "A-B_Kind_Testbericht.pdf"},
		{"Bäckerei", "Bilanz 2026", "Bäckerei_Bilanz-2026_Testbericht.pdf"},
		{"C:\\x", "k\x00", "C--x_k_Testbericht.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.subject, tt.kind))
		})
	}
}

func TestResolveAuditDate(t *testing.T) {
	got, err := ResolveAuditDate("", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-31", got)

	got, err = ResolveAuditDate("2026-12-31", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", got)

	for _, bad := range []string{"31.12.2026", "2026-13-01", "2026-12-31T00:00:00Z", " "} {
		_, err = ResolveAuditDate(bad, fixedNow)
		assert.ErrorIs(t, err, ErrInvalidAuditDate, bad)
	}
}
