// SPDX-License-Identifier: MIT

// Package sweep drives a full qtp run: it builds the barrier, transmission
// and flux models once, probes the barrier profile, sweeps temperatures for
// flux and rate constants, and, given enough temperatures, extracts
// activation energies per flux component.
//
// Per-point failures follow the run's OnError policy. Insufficient data for
// the activation analysis is never an error: it is reported through
// Result.ActivationSkipped and a warning.
package sweep
