// SPDX-License-Identifier: MIT
//
// errors.go — sentinel error set for the finalize package.

package finalize

import "errors"

var (
	// ErrScoreFuncNil is returned when Finalize is called without a
	// scoring function.
	ErrScoreFuncNil = errors.New("finalize: score function is nil")
)
