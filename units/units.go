// SPDX-License-Identifier: MIT

// Package units holds the CODATA 2018 constants used to move between the
// laboratory units of the command line (daltons, kelvins, ångströms) and
// the Hartree atomic units the models work in.
package units

import (
	"errors"
	"fmt"
	"math"
)

// CODATA 2018 (SI).
const (
	AtomicMassConstant = 1.66053906660e-27   // kg
	ElectronMass       = 9.1093837015e-31    // kg
	HartreeEnergy      = 4.3597447222071e-18 // J
	Boltzmann          = 1.380649e-23        // J/K, exact
	BohrRadius         = 5.29177210903e-11   // m
	Angstrom           = 1e-10               // m
)

// Conversion factors: multiply a value in the first unit to get the second.
const (
	DaltonToElectronMass = AtomicMassConstant / ElectronMass
	KelvinToHartree      = Boltzmann / HartreeEnergy
	AngstromToBohr       = Angstrom / BohrRadius
)

// ErrInvalidTemperature indicates a temperature that is not finite and > 0.
var ErrInvalidTemperature = errors.New("units: temperature must be finite and > 0 K")

// Beta returns the inverse temperature 1/(k_B·T) in 1/hartree for T in kelvin.
func Beta(tempK float64) (float64, error) {
	if math.IsNaN(tempK) || math.IsInf(tempK, 0) || tempK <= 0 {
		return 0, fmt.Errorf("units.Beta(%g): %w", tempK, ErrInvalidTemperature)
	}

	return 1 / (tempK * KelvinToHartree), nil
}

// BohrToAngstrom converts a length in bohr to ångströms.
func BohrToAngstrom(z float64) float64 { return z / AngstromToBohr }
