// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/af0liveira/qtp/arrhenius"
	"github.com/af0liveira/qtp/barrier"
	"github.com/af0liveira/qtp/flux"
	"github.com/af0liveira/qtp/numeric"
	"github.com/af0liveira/qtp/transmission"
	"github.com/af0liveira/qtp/units"
)

const opRun = "sweep.Run"

// Params describes one run, in atomic units except for temperatures.
type Params struct {
	Positions []float64 // barrier sample positions, bohr
	Energies  []float64 // barrier sample energies, hartree
	Mass      float64   // particle mass, electron masses

	// Temperatures in kelvin. An empty list skips the rate sweep.
	Temperatures []float64

	// Probes are the positions (bohr) reported in the profile. Nil means
	// the raw sample positions.
	Probes []float64

	OnError OnError
}

// Run executes the sweep described by p. A nil logger discards messages.
//
// Implementation:
//   - Stage 1: Build barrier, transmission and flux models; failures here
//     are fatal whatever the policy.
//   - Stage 2: Profile rows for every probe.
//   - Stage 3: Flux and rate rows for every temperature.
//   - Stage 4: Activation rows, when at least arrhenius.MinPoints
//     temperatures succeeded.
//
// Errors:
//   - ErrInvalidParams for a non-positive mass.
//   - Model construction errors (barrier.ErrConstruction, ...), wrapped.
//   - Under Abort, the first per-point error, wrapped with its z or T.
func Run(p Params, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !numeric.IsFinite(p.Mass) || p.Mass <= 0 {
		return nil, fmt.Errorf("%s: %w: mass %g", opRun, ErrInvalidParams, p.Mass)
	}

	b, err := barrier.New(p.Positions, p.Energies)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	tm, err := transmission.New(b, p.Mass)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	fm, err := flux.New(tm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	zStar, uStar := fm.Maximum()
	zs, _ := b.Points()
	logger.Debug("barrier built",
		zap.Int("points", len(zs)),
		zap.Float64("z_max", zStar),
		zap.Float64("u_max", uStar),
		zap.Stringer("on_error", p.OnError))

	res := &Result{Mass: p.Mass, ZStar: zStar, UStar: uStar}

	probes := p.Probes
	if probes == nil {
		probes = p.Positions
	}
	if res.Profile, err = profile(b, tm, probes, p.OnError, logger); err != nil {
		return nil, err
	}
	if res.Rates, err = rates(fm, p.Mass, p.Temperatures, p.OnError, logger); err != nil {
		return nil, err
	}
	activation(res, logger)

	return res, nil
}

func profile(b *barrier.Model, tm *transmission.Model, probes []float64, policy OnError, logger *zap.Logger) ([]ProfileRow, error) {
	rows := make([]ProfileRow, 0, len(probes))
	for _, z := range probes {
		row := ProfileRow{Z: z, U: b.Evaluate(z), DU: b.Derivative(z, 1)}
		row.LnT, row.T, row.Err = tm.Evaluate(z)
		if row.Err != nil {
			if policy == Abort {
				return nil, fmt.Errorf("%s: profile at z=%g: %w", opRun, z, row.Err)
			}
			logger.Warn("profile point skipped", zap.Float64("z", z), zap.Error(row.Err))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func rates(fm *flux.Model, mass float64, temps []float64, policy OnError, logger *zap.Logger) ([]RateRow, error) {
	rows := make([]RateRow, 0, len(temps))
	for _, temp := range temps {
		row := RateRow{Temp: temp}
		row.Err = rateRow(fm, mass, &row)
		if row.Err != nil {
			if policy == Abort {
				return nil, fmt.Errorf("%s: rates at T=%g K: %w", opRun, temp, row.Err)
			}
			logger.Warn("temperature skipped", zap.Float64("temperature", temp), zap.Error(row.Err))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func rateRow(fm *flux.Model, mass float64, row *RateRow) error {
	beta, err := units.Beta(row.Temp)
	if err != nil {
		return err
	}
	row.Beta = beta

	jc, jq, jt, err := fm.Evaluate(beta)
	if err != nil {
		return err
	}
	row.Flux = Triple{jc, jq, jt}
	factor := flux.RateFactor(mass, beta)
	for _, c := range Components {
		row.Rate[c] = row.Flux[c] * factor
		row.LnK[c] = math.Log(row.Rate[c])
	}

	return nil
}

// activation fills res.Activation from the successful rate rows.
func activation(res *Result, logger *zap.Logger) {
	var ok []RateRow
	for _, r := range res.Rates {
		if r.Err == nil {
			ok = append(ok, r)
		}
	}
	if len(ok) < arrhenius.MinPoints {
		res.ActivationSkipped = true
		logger.Warn("skipping activation energies",
			zap.Int("points", len(ok)),
			zap.Int("required", arrhenius.MinPoints))
		return
	}

	betas := make([]float64, len(ok))
	for i, r := range ok {
		betas[i] = r.Beta
	}

	var fits [numComponents]*arrhenius.Fit
	for _, c := range Components {
		lnks := make([]float64, len(ok))
		for i, r := range ok {
			lnks[i] = r.LnK[c]
		}
		fit, err := arrhenius.New(betas, lnks)
		if err != nil {
			res.SkippedComponents = append(res.SkippedComponents, c)
			logger.Warn("activation component skipped", zap.Stringer("component", c), zap.Error(err))
			continue
		}
		fits[c] = fit
	}

	res.Activation = make([]ActivationRow, len(ok))
	for i, r := range ok {
		row := ActivationRow{Temp: r.Temp, Beta: r.Beta}
		for _, c := range Components {
			if fits[c] != nil {
				row.EAct[c], row.Prefactor[c] = fits[c].Evaluate(r.Beta)
			}
		}
		res.Activation[i] = row
	}
}
