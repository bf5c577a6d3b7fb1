// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Priority when several checks fail: size, then probability, then RNG,
//     then construction retries.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum
// (n, rows, cols, partition sizes, degree constraints).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates exhausted retries or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates Lookup got a kind or solid it does not know.
var ErrUnknownKind = errors.New("builder: unknown kind")

// ErrNonRectangular indicates painting rows of differing lengths.
var ErrNonRectangular = errors.New("builder: painting rows differ in length")
