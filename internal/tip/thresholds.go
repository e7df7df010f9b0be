package tip

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/guitarkeep/hub/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed thresholds.yaml
var defaultThresholds []byte

// Range is an acceptable value range, both bounds inclusive
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Table maps a data type identifier to its acceptable range
type Table map[string]Range

type tableFile struct {
	Thresholds Table `yaml:"thresholds"`
}

// DefaultTable returns the built-in threshold table
func DefaultTable() Table {
	t, err := ParseTable(defaultThresholds)
	if err != nil {
		panic(fmt.Sprintf("built-in threshold table is invalid: %v", err))
	}
	return t
}

// LoadTable reads a threshold table from path, or returns the built-in one
// when path is empty.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to read threshold table", err)
	}
	return ParseTable(data)
}

// ParseTable decodes and validates a yaml threshold table
func ParseTable(data []byte) (Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.NewConfigurationError("failed to parse threshold table", err)
	}
	if len(f.Thresholds) == 0 {
		return nil, errors.NewConfigurationError("threshold table is empty", nil)
	}
	for id, r := range f.Thresholds {
		if id == "" {
			return nil, errors.NewConfigurationError("threshold table has an empty data type", nil)
		}
		if r.Min > r.Max {
			return nil, errors.NewConfigurationError(
				fmt.Sprintf("threshold for %q has min %v above max %v", id, r.Min, r.Max), nil)
		}
	}
	return f.Thresholds, nil
}

// Lookup returns the range for a data type identifier
func (t Table) Lookup(dataType string) (Range, bool) {
	r, ok := t[dataType]
	return r, ok
}
