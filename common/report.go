package common

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteReport writes v to path as indented JSON or as YAML.
func WriteReport(path, format string, v any) error {
	var (
		txt []byte
		err error
	)
	switch strings.ToLower(format) {
	case "", "json":
		txt, err = json.MarshalIndent(v, "", "  ")
	case "yaml", "yml":
		txt, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("%w: unknown report format %q", ErrInvalidConfig, format)
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, txt, 0o666); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
