package input

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snapshot is an immutable flat mapping of field name to raw value.
type Snapshot struct {
	values map[string]string
}

// New builds a Snapshot from a copy of values.
func New(values map[string]string) Snapshot {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[strings.TrimSpace(k)] = v
	}
	return Snapshot{values: copied}
}

// Number returns the numeric value of field. Missing, unparseable,
// non-finite and negative values read as 0.
func (s Snapshot) Number(field string) float64 {
	raw, ok := s.values[field]
	if !ok {
		return 0
	}
	return ParseNumber(raw)
}

// Enum returns the enumerated value of field, or its sentinel when the field
// is absent or blank.
func (s Snapshot) Enum(field string) string {
	if raw, ok := s.values[field]; ok {
		if v := strings.TrimSpace(raw); v != "" {
			return v
		}
	}
	return enumDefaults[field]
}

// Raw returns the unparsed value of field.
func (s Snapshot) Raw(field string) (string, bool) {
	v, ok := s.values[field]
	return v, ok
}

// Values returns a copy of the underlying map.
func (s Snapshot) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// UnknownFields returns the sorted names the aggregator does not read.
func (s Snapshot) UnknownFields() []string {
	known := KnownFields()
	var unknown []string
	for k := range s.values {
		if !slices.Contains(known, k) {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// With returns a new Snapshot with overrides applied on top of s.
func (s Snapshot) With(overrides map[string]string) Snapshot {
	merged := s.Values()
	for k, v := range overrides {
		merged[strings.TrimSpace(k)] = v
	}
	return Snapshot{values: merged}
}

// ParseNumber converts a raw form value to a non-negative finite float.
// A lone decimal comma is accepted ("1,5" reads as 1.5). Anything that
// does not parse reads as 0.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseAssignments parses "key=value" pairs as given on the command line.
func ParseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected key=value", pair)
		}
		out[key] = value
	}
	return out, nil
}

// LoadFile reads a flat YAML or JSON mapping from path. Scalar values of
// any type are kept in their textual form; nested values are rejected.
func LoadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading input %s: %w", path, err)
	}
	values, err := decodeFlat(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parsing input %s: %w", filepath.Base(path), err)
	}
	return New(values), nil
}

// decodeFlat decodes a YAML (and therefore JSON) document into a flat
// string map.
func decodeFlat(data []byte) (map[string]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	if len(root.Content) == 0 {
		return out, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at top level, got %s", nodeKind(doc))
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("field %q: expected a scalar, got %s", key.Value, nodeKind(value))
		}
		out[key.Value] = value.Value
	}
	return out, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}
