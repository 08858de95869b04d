package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// maxFileSize caps config files at 1 MiB.
const maxFileSize = 1 << 20

// File is the on-disk layout: two optional sections.
type File struct {
	Field *FieldConfig `json:"field,omitempty" toml:"field,omitempty"`
	Robot *RobotConfig `json:"robot,omitempty" toml:"robot,omitempty"`
}

// decoders maps accepted file extensions to their unmarshal function.
var decoders = map[string]func([]byte, any) error{
	".json": json.Unmarshal,
	".toml": toml.Unmarshal,
}

// Load reads a JSON or TOML config file (chosen by extension) and overlays it
// onto the defaults. Keys that are absent keep their default value, so partial
// files are safe. Both sections are validated before returning.
func Load(path string) (FieldConfig, RobotConfig, error) {
	fc, rc := DefaultField(), DefaultRobot()

	clean := filepath.Clean(path)
	ext := filepath.Ext(clean)
	decode, ok := decoders[ext]
	if !ok {
		return fc, rc, fmt.Errorf("%w: must have .json or .toml extension, got %q", ErrConfigFile, ext)
	}
	info, err := os.Stat(clean)
	if err != nil {
		return fc, rc, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return fc, rc, fmt.Errorf("%w: too large: %d bytes (max %d)", ErrConfigFile, info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return fc, rc, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decoding into pre-populated structs keeps defaults for missing keys.
	file := File{Field: &fc, Robot: &rc}
	if err = decode(data, &file); err != nil {
		return DefaultField(), DefaultRobot(), fmt.Errorf("failed to parse config %s: %w", ext[1:], err)
	}
	if err = fc.Validate(); err != nil {
		return fc, rc, fmt.Errorf("invalid field configuration: %w", err)
	}
	if err = rc.Validate(); err != nil {
		return fc, rc, fmt.Errorf("invalid robot configuration: %w", err)
	}

	return fc, rc, nil
}
