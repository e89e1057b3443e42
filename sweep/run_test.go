// SPDX-License-Identifier: MIT

package sweep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/af0liveira/qtp/barrier"
	"github.com/af0liveira/qtp/sweep"
	"github.com/af0liveira/qtp/units"
)

// lowBarrier is a single 0.01 hartree peak, low enough that rates stay
// representable at room temperature.
func lowBarrier() sweep.Params {
	return sweep.Params{
		Positions:    []float64{-2, -1, 0, 1, 2},
		Energies:     []float64{0, 0.006, 0.01, 0.006, 0},
		Mass:         1,
		Temperatures: []float64{250, 300, 350, 400, 450},
	}
}

func observed(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return zap.New(core), logs
}

func TestRun_SinglePeak(t *testing.T) {
	logger, logs := observed(zapcore.WarnLevel)
	res, err := sweep.Run(lowBarrier(), logger)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, res.ZStar, 1e-9)
	assert.InDelta(t, 0.01, res.UStar, 1e-12)
	assert.Zero(t, logs.Len())

	// Profile defaults to the sample positions; the apex is transparent.
	require.Len(t, res.Profile, 5)
	apex := res.Profile[2]
	assert.Equal(t, 0.0, apex.Z)
	assert.Equal(t, 1.0, apex.T)
	assert.InDelta(t, 0.01, apex.U, 1e-15)
	for _, row := range res.Profile {
		assert.NoError(t, row.Err)
		assert.LessOrEqual(t, row.T, 1.0)
	}

	require.Len(t, res.Rates, 5)
	for _, row := range res.Rates {
		require.NoError(t, row.Err)
		beta, err := units.Beta(row.Temp)
		require.NoError(t, err)
		assert.Equal(t, beta, row.Beta)
		// Classical rate is exp(-β·U*).
		assert.InDelta(t, -beta*0.01, row.LnK[sweep.Classical], 1e-9)
		assert.Greater(t, row.Flux[sweep.Quantum], 0.0)
		assert.InDelta(t, row.Flux[sweep.Classical]+row.Flux[sweep.Quantum], row.Flux[sweep.Total], 1e-300)
	}

	assert.False(t, res.ActivationSkipped)
	assert.Empty(t, res.SkippedComponents)
	require.Len(t, res.Activation, 5)
	for _, row := range res.Activation {
		assert.InDelta(t, 0.01, row.EAct[sweep.Classical], 1e-8)
		assert.InDelta(t, 1.0, row.Prefactor[sweep.Classical], 1e-6)
		// Tunneling lowers the apparent barrier.
		assert.Less(t, row.EAct[sweep.Total], row.EAct[sweep.Classical])
	}
}

// TestRun_FlatBarrier: the tunneling rate is 0, so its logarithm is not
// finite and only that component's activation analysis is skipped.
func TestRun_FlatBarrier(t *testing.T) {
	p := lowBarrier()
	p.Energies = []float64{0, 0, 0, 0, 0}
	logger, logs := observed(zapcore.WarnLevel)

	res, err := sweep.Run(p, logger)
	require.NoError(t, err)

	for _, row := range res.Rates {
		assert.InDelta(t, 1.0, row.Rate[sweep.Classical], 1e-12)
		assert.Equal(t, 0.0, row.Flux[sweep.Quantum])
		assert.True(t, math.IsInf(row.LnK[sweep.Quantum], -1))
	}
	assert.Equal(t, []sweep.Component{sweep.Quantum}, res.SkippedComponents)
	assert.Equal(t, 1, logs.FilterMessage("activation component skipped").Len())
	require.Len(t, res.Activation, 5)
	assert.InDelta(t, 0.0, res.Activation[0].EAct[sweep.Total], 1e-9)
}

func TestRun_TooFewTemperatures(t *testing.T) {
	p := lowBarrier()
	p.Temperatures = []float64{300, 400, 500}
	logger, logs := observed(zapcore.WarnLevel)

	res, err := sweep.Run(p, logger)
	require.NoError(t, err)
	assert.True(t, res.ActivationSkipped)
	assert.Empty(t, res.Activation)
	assert.Len(t, res.Rates, 3)
	assert.Equal(t, 1, logs.FilterMessage("skipping activation energies").Len())
}

func TestRun_OnError(t *testing.T) {
	p := lowBarrier()
	p.Temperatures = []float64{250, 300, -1, 350, 400}

	_, err := sweep.Run(p, nil)
	assert.ErrorIs(t, err, units.ErrInvalidTemperature)
	assert.Contains(t, err.Error(), "T=-1 K")

	p.OnError = sweep.Skip
	logger, logs := observed(zapcore.WarnLevel)
	res, err := sweep.Run(p, logger)
	require.NoError(t, err)

	_, failed := res.Failed()
	assert.Equal(t, 1, failed)
	assert.ErrorIs(t, res.Rates[2].Err, units.ErrInvalidTemperature)
	assert.Equal(t, 1, logs.FilterMessage("temperature skipped").Len())
	// Four good temperatures remain: enough for the activation analysis.
	assert.False(t, res.ActivationSkipped)
	assert.Len(t, res.Activation, 4)
}

func TestRun_Probes(t *testing.T) {
	p := lowBarrier()
	p.Probes = []float64{-3, -1.5, 0.5}
	p.Temperatures = nil

	res, err := sweep.Run(p, nil)
	require.NoError(t, err)
	require.Len(t, res.Profile, 3)
	assert.Equal(t, 0.0, res.Profile[0].U, "outside the barrier")
	assert.Greater(t, res.Profile[2].T, res.Profile[1].T)
	assert.Empty(t, res.Rates)
	assert.True(t, res.ActivationSkipped)
}

func TestRun_Errors(t *testing.T) {
	p := lowBarrier()
	p.Mass = 0
	_, err := sweep.Run(p, nil)
	assert.ErrorIs(t, err, sweep.ErrInvalidParams)

	p = lowBarrier()
	p.Energies = p.Energies[:3]
	_, err = sweep.Run(p, nil)
	assert.ErrorIs(t, err, barrier.ErrConstruction)

	p = lowBarrier()
	p.Energies = []float64{4, 1, 0, 1, 4}
	_, err = sweep.Run(p, nil)
	assert.ErrorIs(t, err, barrier.ErrNoMaximum)
}
