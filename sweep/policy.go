// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"strings"
)

// OnError decides what a failing probe position or temperature does to the run.
type OnError int

const (
	// Abort stops the run at the first per-point failure.
	Abort OnError = iota

	// Skip flags the row, logs a warning and carries on.
	Skip
)

// String implements fmt.Stringer.
func (p OnError) String() string {
	switch p {
	case Abort:
		return "abort"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// ParseOnError maps "abort" or "skip" (any case) to a policy.
func ParseOnError(s string) (OnError, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abort", "":
		return Abort, nil
	case "skip":
		return Skip, nil
	default:
		return Abort, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
