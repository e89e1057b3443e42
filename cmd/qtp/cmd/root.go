// SPDX-License-Identifier: MIT

// Package cmd provides the CLI commands for qtp.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

type rootOptions struct {
	cfgFile string
	verbose bool
	mass    float64
	temps   []float64
	zrange  []float64
	onError string
}

// NewRootCmd builds the qtp command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "qtp [flags] <datafile>",
		Short: "Quantum tunneling transport properties through a 1D barrier",
		Long: `qtp estimates quantum tunneling properties of a particle passing through a
2D material sheet, from the total energy of the sheet/particle system as a
function of the perpendicular distance z between them.

The data file is in XY format: z values (angstrom) in the first column and
energies (hartree) in the second. Lines starting with '#' are ignored. The
barrier is symmetrized, so z may be given on one or both sides.

Examples:
  qtp barrier.xy
  qtp -m 1.008 -t 200,800,50 barrier.xy
  qtp -z -2,2,0.1 --on-error skip barrier.xy
  qtp --config run.yaml`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQTP(cmd, opts, args)
		},
	}

	f := root.Flags()
	f.StringVar(&opts.cfgFile, "config", "", "YAML run file; flags override its values")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	f.Float64VarP(&opts.mass, "mass", "m", 1, "mass of the tunneling particle in daltons")
	f.Float64SliceVarP(&opts.temps, "temp", "t", []float64{300},
		"temperature in kelvin, or lower,upper,step for [lower, upper)")
	f.Float64SliceVarP(&opts.zrange, "zrange", "z", nil,
		"lower,upper,step in angstrom of the positions to report (default: data file positions)")
	f.StringVar(&opts.onError, "on-error", "abort", "per-point failure policy: abort or skip")

	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qtp version %s\n", Version)
		},
	}
}
