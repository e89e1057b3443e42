// SPDX-License-Identifier: MIT

package units_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/af0liveira/qtp/units"
)

func TestConversionFactors(t *testing.T) {
	assert.InDelta(t, 1822.888486, units.DaltonToElectronMass, 1e-6)
	assert.InDelta(t, 3.166811563e-6, units.KelvinToHartree, 1e-15)
	assert.InDelta(t, 1.889726125, units.AngstromToBohr, 1e-9)
	assert.InDelta(t, 0.529177210903, units.BohrToAngstrom(1), 1e-12)
}

func TestBeta(t *testing.T) {
	beta, err := units.Beta(300)
	require.NoError(t, err)
	assert.InDelta(t, 1052.58, beta, 1e-2)

	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := units.Beta(bad)
		assert.ErrorIs(t, err, units.ErrInvalidTemperature)
	}
}
