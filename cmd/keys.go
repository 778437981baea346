package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/kilianp07/vehicleinfo/core/vehicle"
	"github.com/kilianp07/vehicleinfo/infra/logger"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List vehicle property kinds and their configuration keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := vehicle.Kinds()
			logger.New("keys").Debugf("listing %d property kinds", len(kinds))
			t := uitable.New()
			t.AddRow("KIND", "KEY", "DESCRIPTION")
			for _, k := range kinds {
				t.AddRow(k.String(), k.Key(), k.Description())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t)
			return err
		},
	}
}
