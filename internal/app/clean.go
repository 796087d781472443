package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweeptools/memsweep/internal/config"
	"github.com/sweeptools/memsweep/internal/proc"
	"github.com/sweeptools/memsweep/internal/reconcile"
	"github.com/sweeptools/memsweep/internal/sweep"
)

// nopSink satisfies the reconciler for headless use, where there is no
// display surface to mutate.
type nopSink struct{}

func (nopSink) InsertRow(int, *reconcile.Row) {}
func (nopSink) UpdateRow(int, *reconcile.Row) {}
func (nopSink) RemoveRow(int)                 {}
func (nopSink) MoveRow(int, int)              {}
func (nopSink) SelectRow(int)                 {}
func (nopSink) ClearSelection()               {}
func (nopSink) ScrollFraction() float64       { return 0 }
func (nopSink) SetScrollFraction(float64)     {}
func (nopSink) EnsureVisible(int)             {}

func newCleanCmd(cfgPath *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Terminate every non-essential process without the TUI",
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
			state := reconcile.NewState()
			state.Apply(nopSink{}, snap.Procs, g.Essential)
			rows := state.Rows()

			if dryRun {
				candidates := 0
				for _, row := range rows {
					if !row.Essential {
						candidates++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"would send terminate signal to %d of %d processes\n", candidates, len(rows))
				return nil
			}

			sum := sweep.New(g).Clean(rows)
			fmt.Fprintf(cmd.OutOrStdout(), "sent terminate signal to %d processes", sum.Sent)
			if sum.Denied > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), ", %d denied", sum.Denied)
			}
			if sum.Gone > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), ", %d already gone", sum.Gone)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only report what would be terminated")
	return cmd
}
