// Package app wires the CLI: the bare command runs the interactive TUI,
// subcommands cover one-shot listing and headless cleanup.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sweeptools/memsweep/internal/config"
	"github.com/sweeptools/memsweep/internal/tui"
)

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// SetVersionBuildCommitString records the build metadata injected via ldflags.
func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	buildDate = d
}

func versionString() string {
	s := version
	if commit != "" {
		s += " (" + commit
		if buildDate != "" {
			s += ", " + buildDate
		}
		s += ")"
	}
	return s
}

// Execute runs the CLI.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		interval time.Duration
	)

	root := &cobra.Command{
		Use:     "memsweep",
		Short:   "Rank processes by memory and sweep the non-essential ones",
		Version: versionString(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if interval > 0 {
				cfg.RefreshInterval = config.Duration{Duration: interval}
			}

			if os.Geteuid() != 0 {
				fmt.Fprintln(cmd.ErrOrStderr(),
					"warning: running without root privileges; some processes cannot be terminated")
			}

			return tui.Start(cfg, cfgPath, versionString())
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "",
		fmt.Sprintf("Path to config file (default %s)", config.Path()))
	root.Flags().DurationVarP(&interval, "interval", "i", 0,
		"Refresh interval, overriding the config file")

	root.AddCommand(newListCmd(&cfgPath))
	root.AddCommand(newCleanCmd(&cfgPath))

	return root
}
