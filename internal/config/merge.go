package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyLogging = "logging"
	keyReport  = "report"
	keyFactors = "factors"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyLogging: true,
	keyReport:  true,
	keyFactors: true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. Keys present in the overlay replace entire sections in target;
// absent keys leave target unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection decodes node into a fresh zero value of the section
// named key, so that the overlay replaces the section completely.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyReport:
		var v ReportConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Report = v
	case keyFactors:
		var v FactorsConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Factors = v
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
