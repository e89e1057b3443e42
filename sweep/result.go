// SPDX-License-Identifier: MIT

package sweep

// Component indexes the three flux contributions.
type Component int

const (
	// Classical is the over-the-barrier contribution.
	Classical Component = iota
	// Quantum is the tunneling correction.
	Quantum
	// Total is Classical + Quantum.
	Total

	numComponents
)

// Components lists every component in report order.
var Components = [numComponents]Component{Classical, Quantum, Total}

// String implements fmt.Stringer.
func (c Component) String() string {
	switch c {
	case Classical:
		return "classic"
	case Quantum:
		return "tunnel"
	case Total:
		return "total"
	default:
		return "unknown"
	}
}

// Triple holds one value per Component.
type Triple [numComponents]float64

// ProfileRow describes the barrier at one probe position.
type ProfileRow struct {
	Z   float64 // bohr
	U   float64 // hartree
	DU  float64 // hartree/bohr
	T   float64
	LnT float64
	Err error // set when the probe was skipped
}

// RateRow holds flux and rate constants at one temperature.
type RateRow struct {
	Temp float64 // K
	Beta float64 // 1/hartree
	Flux Triple
	Rate Triple
	LnK  Triple
	Err  error // set when the temperature was skipped
}

// ActivationRow holds Arrhenius parameters at one temperature. Components
// listed in Result.SkippedComponents carry zeros.
type ActivationRow struct {
	Temp      float64
	Beta      float64
	EAct      Triple // hartree
	Prefactor Triple
}

// Result is everything a run produced.
type Result struct {
	Mass  float64 // electron masses
	ZStar float64 // barrier maximum position, bohr
	UStar float64 // barrier maximum height, hartree

	Profile []ProfileRow
	Rates   []RateRow

	// Activation is empty when ActivationSkipped is set.
	Activation        []ActivationRow
	ActivationSkipped bool
	SkippedComponents []Component
}

// Failed reports how many profile and rate rows were skipped.
func (r *Result) Failed() (profile, rates int) {
	for _, p := range r.Profile {
		if p.Err != nil {
			profile++
		}
	}
	for _, row := range r.Rates {
		if row.Err != nil {
			rates++
		}
	}

	return profile, rates
}
