package config

import (
	"fmt"

	"github.com/kilianp07/vehicleinfo/core/output"
)

// OutputConfig controls how the generated configuration is printed.
type OutputConfig struct {
	Format string `json:"format"`
}

func (c *OutputConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = string(output.FormatJSON)
	}
}

func (c OutputConfig) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
