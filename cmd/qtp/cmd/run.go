// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/af0liveira/qtp/internal/config"
	"github.com/af0liveira/qtp/internal/logging"
	"github.com/af0liveira/qtp/internal/report"
	"github.com/af0liveira/qtp/internal/xyfile"
	"github.com/af0liveira/qtp/sweep"
	"github.com/af0liveira/qtp/units"
)

func runQTP(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := resolveConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	zsAngst, us, err := xyfile.Read(cfg.DataFile)
	if err != nil {
		return err
	}
	zs := make([]float64, len(zsAngst))
	for i, z := range zsAngst {
		zs[i] = z * units.AngstromToBohr
	}

	temps, err := cfg.TemperatureGrid()
	if err != nil {
		return err
	}
	zgrid, err := cfg.ZGrid()
	if err != nil {
		return err
	}
	policy, err := sweep.ParseOnError(cfg.OnError)
	if err != nil {
		return err
	}

	source := fmt.Sprintf("Info for all points in `%s`", cfg.DataFile)
	var probes []float64
	if zgrid != nil {
		source = fmt.Sprintf("Info for z/angstrom from %v to %v (step=%v)", cfg.ZRange[0], cfg.ZRange[1], cfg.ZRange[2])
		probes = make([]float64, len(zgrid))
		for i, z := range zgrid {
			probes[i] = z * units.AngstromToBohr
		}
	}

	rep := report.New(cmd.OutOrStdout())
	rep.Header()
	rep.Mass(cfg.Mass)

	logger.Info("starting run",
		zap.String("datafile", cfg.DataFile),
		zap.Int("samples", len(zs)),
		zap.Float64("mass_da", cfg.Mass),
		zap.Int("temperatures", len(temps)))

	res, err := sweep.Run(sweep.Params{
		Positions:    zs,
		Energies:     us,
		Mass:         cfg.Mass * units.DaltonToElectronMass,
		Temperatures: temps,
		Probes:       probes,
		OnError:      policy,
	}, logger)
	if err != nil {
		return err
	}

	rep.Profile(source, res.Profile)
	rep.Rates(res.Rates)
	if !res.ActivationSkipped {
		rep.Activation(res.Activation, res.SkippedComponents)
	}
	if failedProfile, failedRates := res.Failed(); failedProfile+failedRates > 0 {
		logger.Warn("run finished with skipped points",
			zap.Int("profile", failedProfile),
			zap.Int("temperatures", failedRates))
	}

	return rep.Err()
}

// resolveConfig layers defaults, the optional run file, the positional data
// file and explicitly set flags, then validates the result.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, args []string) (config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		var err error
		if cfg, err = config.Load(opts.cfgFile); err != nil {
			return cfg, err
		}
	}

	if len(args) == 1 {
		cfg.DataFile = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Mass = opts.mass
	}
	if flags.Changed("temp") {
		cfg.Temperatures = opts.temps
	}
	if flags.Changed("zrange") {
		cfg.ZRange = opts.zrange
	}
	if flags.Changed("on-error") {
		cfg.OnError = opts.onError
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, cfg.Validate()
}
