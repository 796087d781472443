package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweeptools/memsweep/internal/config"
	"github.com/sweeptools/memsweep/internal/output"
	"github.com/sweeptools/memsweep/internal/proc"
)

func newListCmd(cfgPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one snapshot of processes ranked by memory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}

			snap, err := proc.Sample()
			if err != nil {
				return err
			}

			g := cfg.Guard()
			if asJSON {
				out, err := output.ToJSON(snap, g)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			output.RenderTable(cmd.OutOrStdout(), snap, g)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
