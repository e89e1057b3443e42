// SPDX-License-Identifier: MIT

// Package report renders a sweep.Result as the fixed-width text report the
// qtp command prints: a title block, the barrier profile, the flux and rate
// table, and the activation table.
//
// Column layouts are stable so that the output can be post-processed with
// awk or loaded as whitespace-separated columns.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/af0liveira/qtp/sweep"
	"github.com/af0liveira/qtp/units"
)

// Title is printed at the top of every report.
const Title = "Quantum Transport Properties v.3 (QTP3)"

// TimeLayout formats report timestamps.
const TimeLayout = "2006-01-02 15:04:05.000000"

const sep = "  "

// Report writes report sections to an io.Writer. The first write error is
// kept and every later call becomes a no-op; check Err when done.
type Report struct {
	w   io.Writer
	now func() time.Time
	err error
}

// Option configures a Report.
type Option func(*Report)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Report) { r.now = now }
}

// New returns a Report writing to w.
func New(w io.Writer, opts ...Option) *Report {
	r := &Report{w: w, now: time.Now}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}

	return r
}

// Err returns the first write error.
func (r *Report) Err() error { return r.err }

func (r *Report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Timestamp prints the current time followed by a blank line.
func (r *Report) Timestamp() {
	r.printf("Timestamp: %s\n\n", r.now().Format(TimeLayout))
}

// Header prints the title block.
func (r *Report) Header() {
	bar := strings.Repeat("=", len(Title))
	r.printf("%s\n%s\n%s\n", bar, Title, bar)
	r.Timestamp()
	r.printf("N.B. Unspecified units imply atomic units (hartree, bohr, etc.)\n\n")
}

// Mass prints the particle mass in daltons and electron masses.
func (r *Report) Mass(dalton float64) {
	r.printf("Particle's mass (Da):  %v\nParticle's mass (m_e): %v\n\n",
		dalton, dalton*units.DaltonToElectronMass)
}

// Profile prints one row per probe. source is the line announcing where the
// probes came from.
func (r *Report) Profile(source string, rows []sweep.ProfileRow) {
	r.printf("%s\n", source)
	head := join(
		center("z/angstrom", 12),
		center("z/bohr", 12),
		center("U(z)/hartree", 12),
		center("dU/dz", 12),
		center("T(U(z))", 12),
		center("ln T(U(z))", 12),
	)
	r.table(head, len(rows), func(i int) string {
		row := rows[i]
		lead := join(
			fmt.Sprintf("%12.6f", units.BohrToAngstrom(row.Z)),
			fmt.Sprintf("%12.6f", row.Z),
		)
		if row.Err != nil {
			return join(lead, "skipped: "+row.Err.Error())
		}
		return join(lead,
			fmt.Sprintf("%12.6f", row.U),
			fmt.Sprintf("%12.6f", row.DU),
			fmt.Sprintf("%12.6e", row.T),
			fmt.Sprintf("%12.6f", row.LnT),
		)
	})
}

// Rates prints rate constants and fluxes per temperature.
func (r *Report) Rates(rows []sweep.RateRow) {
	head := join(
		center("Temp/K", 10),
		center("beta/(1/K)", 10),
		center("beta/a.u.", 10),
		center("k (classic)", 14),
		center("k (tunnel)", 14),
		center("k (total)", 14),
		center("flux (classic)", 14),
		center("flux (tunnel)", 14),
		center("flux (total)", 14),
	)
	r.table(head, len(rows), func(i int) string {
		row := rows[i]
		lead := join(
			fmt.Sprintf("%10.2f", row.Temp),
			fmt.Sprintf("%10.2e", 1/row.Temp),
		)
		if row.Err != nil {
			return join(lead, "skipped: "+row.Err.Error())
		}
		cols := []string{lead, fmt.Sprintf("%10.2f", row.Beta)}
		for _, v := range row.Rate {
			cols = append(cols, fmt.Sprintf("%14.6e", v))
		}
		for _, v := range row.Flux {
			cols = append(cols, fmt.Sprintf("%14.6e", v))
		}
		return join(cols...)
	})
}

// Activation prints activation energies and prefactors. Components in
// skipped are shown as n/a.
func (r *Report) Activation(rows []sweep.ActivationRow, skipped []sweep.Component) {
	head := join(
		center("Temp/K", 10),
		center("beta/(1/K)", 10),
		center("beta/a.u.", 10),
		center("Eact (classic)", 15),
		center("Eact (tunnel)", 15),
		center("Eact (total)", 15),
		center("Coeff (classic)", 15),
		center("Coeff (tunnel)", 15),
		center("Coeff (total)", 15),
	)
	isSkipped := func(c sweep.Component) bool {
		for _, s := range skipped {
			if s == c {
				return true
			}
		}
		return false
	}
	r.table(head, len(rows), func(i int) string {
		row := rows[i]
		cols := []string{
			fmt.Sprintf("%10.2f", row.Temp),
			fmt.Sprintf("%10.2e", 1/row.Temp),
			fmt.Sprintf("%10.2f", row.Beta),
		}
		for _, c := range sweep.Components {
			if isSkipped(c) {
				cols = append(cols, fmt.Sprintf("%15s", "n/a"))
				continue
			}
			cols = append(cols, fmt.Sprintf("%15.8f", row.EAct[c]))
		}
		for _, c := range sweep.Components {
			if isSkipped(c) {
				cols = append(cols, fmt.Sprintf("%15s", "n/a"))
				continue
			}
			cols = append(cols, fmt.Sprintf("%15.6e", row.Prefactor[c]))
		}
		return join(cols...)
	})
}

// Note prints a free-form line.
func (r *Report) Note(format string, args ...any) {
	r.printf(format+"\n", args...)
}

// table prints a ruled table followed by a timestamp.
func (r *Report) table(head string, n int, row func(i int) string) {
	rule := strings.Repeat("-", len(head))
	r.printf("%s\n%s\n%s\n", rule, head, rule)
	for i := 0; i < n; i++ {
		r.printf("%s\n", row(i))
	}
	r.printf("%s\n", rule)
	r.Timestamp()
}

func join(cols ...string) string { return strings.Join(cols, sep) }

// center pads s to width, extra space going to the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
