package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an options file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported options file %s: expected .yaml, .yml or .toml", path)
	}
}

// LoadFile loads and parses an options file from the given path.
func LoadFile(path string) (*Options, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	o, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return o, nil
}

// Parse parses options data, applies defaults and validates the result.
func Parse(data []byte, format Format) (*Options, error) {
	var o Options

	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &o)
	case FormatTOML:
		err = toml.Unmarshal(data, &o)
	default:
		return nil, fmt.Errorf("unsupported options format %v", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse options %s: %w", format, err)
	}

	applyDefaults(&o)

	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return &o, nil
}

// Marshal serializes options in the given format.
func Marshal(o *Options, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(o)
	case FormatTOML:
		return toml.Marshal(o)
	default:
		return nil, fmt.Errorf("unsupported options format %v", format)
	}
}

// WriteFile writes options to the given path, in the format implied by its
// extension.
func WriteFile(o *Options, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(o, format)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write options file %s: %w", path, err)
	}

	return nil
}
