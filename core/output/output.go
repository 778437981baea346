// Package output renders engine configurations for humans and tools.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/kilianp07/vehicleinfo/core/engineconfig"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// SupportedFormats lists the accepted format names.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// ParseFormat converts a name into a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, s, strings.Join(SupportedFormats(), ", "))
	}
}

// Write renders cfg to w.
func Write(w io.Writer, cfg *engineconfig.Configuration, f Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = cfg.JSONIndent()
		data = append(data, '\n')
	case FormatYAML:
		data, err = cfg.YAML()
	case FormatTable:
		data = table(cfg)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("serialize to %s: %w", f, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func table(cfg *engineconfig.Configuration) []byte {
	leaves := cfg.Leaves()
	if len(leaves) == 0 {
		return []byte("<empty>\n")
	}
	t := uitable.New()
	t.MaxColWidth = 80
	t.AddRow("KEY", "VALUE")
	for _, l := range leaves {
		t.AddRow(l.Path, l.Value)
	}
	return []byte(t.String() + "\n")
}
