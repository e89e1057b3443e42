// SPDX-License-Identifier: MIT

package barrier

import (
	"gonum.org/v1/gonum/floats"

	"github.com/af0liveira/qtp/numeric"
)

const opMaximum = "barrier.Maximum"

// Maximum returns the position and height (z*, U*) of the highest local
// maximum of U.
//
// Candidates are the stationary points of U with a strictly negative second
// derivative. Heights within numeric.Epsilon of each other count as equal and
// the leftmost candidate is kept, so for a double-peaked barrier z* is the
// peak on the negative side.
//
// A flat barrier (every sample at 0 after the shift) has no proper maximum;
// it reports (0, 0) so flux evaluation degrades to the classical limit.
//
// The result, error included, is computed on first use and reused.
//
// Errors:
//   - ErrNoMaximum if no stationary point qualifies.
func (m *Model) Maximum() (z, u float64, err error) {
	m.maxOnce.Do(func() {
		m.zMax, m.uMax, m.maxErr = m.findMaximum()
	})

	return m.zMax, m.uMax, m.maxErr
}

func (m *Model) findMaximum() (float64, float64, error) {
	if floats.Max(m.us) <= numeric.Floor {
		return 0, 0, nil
	}

	found := false
	var bestZ, bestU float64
	for _, p := range m.spl.StationaryPoints() {
		if m.spl.Derivative(p, 2) >= 0 {
			continue
		}
		u := m.spl.Evaluate(p)
		if !found || u > bestU+numeric.Epsilon {
			found, bestZ, bestU = true, p, u
		}
	}
	if !found {
		return 0, 0, barrierErrorf(opMaximum, ErrNoMaximum, nil)
	}

	return bestZ, bestU, nil
}
