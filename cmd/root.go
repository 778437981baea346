package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/vehicleinfo/config"
	"github.com/kilianp07/vehicleinfo/core/output"
	"github.com/kilianp07/vehicleinfo/core/vehicle"
	"github.com/kilianp07/vehicleinfo/infra/logger"
)

type rootOptions struct {
	cfgPath string
	format  string
	sets    []string
	kinds   map[vehicle.PropertyKind]*string
}

// NewRootCmd returns the vehicleinfo command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{kinds: make(map[vehicle.PropertyKind]*string)}
	cmd := &cobra.Command{
		Use:   "vehicleinfo",
		Short: "Generate the vehicle info engine configuration",
		Long: `Builds the "vehicle.info" configuration block from a config file,
VI_* environment variables and command line flags, each overriding the previous.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}
	flags := cmd.Flags()
	cmd.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	flags.StringVarP(&opts.format, "format", "o", "", "output format: json, yaml or table")
	flags.StringArrayVar(&opts.sets, "set", nil, "kind=value pair, repeatable; applied last, the last occurrence wins")
	for _, k := range vehicle.Kinds() {
		opts.kinds[k] = flags.String(k.Key(), "", k.Description()+"; an explicit empty value is kept")
	}
	cmd.AddCommand(newKeysCmd())
	return cmd
}

// Execute runs the CLI.
func Execute() error { return NewRootCmd().Execute() }

func (o *rootOptions) run(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.FromConfig("vehicleinfo", cfg.Logging.Level, cfg.Logging.Format,
		logger.Options{Out: cmd.ErrOrStderr()})

	// Flags and --set values are passed through verbatim, empty ones included.
	props := cfg.Vehicle.Properties()
	base := len(props)
	for _, k := range vehicle.Kinds() {
		if cmd.Flags().Changed(k.Key()) {
			props = append(props, vehicle.NewProperty(k, *o.kinds[k]))
		}
	}
	for _, s := range o.sets {
		p, err := vehicle.ParseProperty(s)
		if err != nil {
			return fmt.Errorf("--set: %w", err)
		}
		props = append(props, p)
	}
	seen := make(map[vehicle.PropertyKind]bool)
	for _, p := range props[base:] {
		if seen[p.Kind] {
			log.Warnf("%s given more than once on the command line, using the last value", p.Kind.Key())
		}
		seen[p.Kind] = true
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = o.format
	}
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	vc := vehicle.CreateVehicleInfoConfig(props...)
	log.Debugw("vehicle info configuration built", map[string]any{
		"properties": len(props),
		"keys":       len(vc.Leaves()),
		"format":     string(format),
	})
	return output.Write(cmd.OutOrStdout(), vc, format)
}
