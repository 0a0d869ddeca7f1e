package factors

import (
	"fmt"
	"math"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SupportedVersions is the semver constraint a table version must satisfy.
const SupportedVersions = "^1.0.0"

// Table is an immutable, validated set of emission coefficients.
// All accessors return copies; a Table is safe for concurrent reads.
type Table struct {
	version      *semver.Version
	coefficients map[Scope]map[Activity]float64
	compensation Compensation
}

// New validates doc and builds a Table from a deep copy of it.
//
// Returns ErrUnsupportedVersion when the version does not satisfy
// SupportedVersions, ErrMissingFactor when a required coefficient is absent,
// and ErrInvalidFactor for negative or non-finite coefficients and for
// non-positive compensation divisors.
func New(doc Document) (*Table, error) {
	version, err := checkVersion(doc.Version)
	if err != nil {
		return nil, err
	}

	coefficients := make(map[Scope]map[Activity]float64, len(requiredActivities))
	for _, scope := range []Scope{ScopeOne, ScopeTwo, ScopeThree} {
		section := doc.section(scope)
		copied := make(map[Activity]float64, len(section))
		for key, value := range section {
			if !isValidCoefficient(value) {
				return nil, fmt.Errorf("%w: %s.%s = %v", ErrInvalidFactor, scope, key, value)
			}
			copied[Activity(key)] = value
		}
		for _, activity := range requiredActivities[scope] {
			if _, ok := copied[activity]; !ok {
				return nil, fmt.Errorf("%w: %s.%s", ErrMissingFactor, scope, activity)
			}
		}
		coefficients[scope] = copied
	}

	if err = validateCompensation(doc.Compensation); err != nil {
		return nil, err
	}

	return &Table{
		version:      version,
		coefficients: coefficients,
		compensation: doc.Compensation,
	}, nil
}

// Parse decodes a YAML table document and validates it.
func Parse(data []byte) (*Table, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing factor table: %w", err)
	}
	return New(doc)
}

// LoadFile reads and validates a YAML table document from path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading factor table %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading factor table %s: %w", path, err)
	}
	return t, nil
}

// Coefficient returns the coefficient for activity within scope, or 0 when
// the table does not define it.
func (t *Table) Coefficient(scope Scope, activity Activity) float64 {
	return t.coefficients[scope][activity]
}

// Compensation returns the equivalence constants.
func (t *Table) Compensation() Compensation {
	return t.compensation
}

// Version returns the table version string.
func (t *Table) Version() string {
	return t.version.String()
}

// Document returns a deep copy of the table in its serialized form.
func (t *Table) Document() Document {
	doc := Document{
		Version:      t.version.String(),
		Compensation: t.compensation,
	}
	doc.Scope1 = toStringKeys(t.coefficients[ScopeOne])
	doc.Scope2 = toStringKeys(t.coefficients[ScopeTwo])
	doc.Scope3 = toStringKeys(t.coefficients[ScopeThree])
	return doc
}

// MarshalYAML renders the table as its document form.
func (t *Table) MarshalYAML() (interface{}, error) {
	return t.Document(), nil
}

func toStringKeys(in map[Activity]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func checkVersion(raw string) (*semver.Version, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: version is empty", ErrUnsupportedVersion)
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, raw, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", SupportedVersions, err)
	}
	if !constraint.Check(v) {
		return nil, fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return v, nil
}

func isValidCoefficient(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// validateCompensation rejects constants that are used as divisors when
// they are not strictly positive.
func validateCompensation(c Compensation) error {
	divisors := []struct {
		name  string
		value float64
	}{
		{"tree_kg_per_year", c.TreeKgPerYear},
		{"co2_density_kg_m3", c.CO2DensityKgM3},
		{"reference_area_m2", c.ReferenceAreaM2},
		{"reference_tower_m", c.ReferenceTowerM},
	}
	for _, d := range divisors {
		if !isValidCoefficient(d.value) || d.value == 0 {
			return fmt.Errorf("%w: compensation.%s = %v", ErrInvalidFactor, d.name, d.value)
		}
	}
	return nil
}
