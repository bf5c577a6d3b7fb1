// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • WithRand(nil) panics; WithIDScheme(nil) is a no-op that keeps the current scheme.
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the region ID generator. A nil fn leaves the scheme unchanged.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic kinds. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG; equal seeds give equal maps.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets bipartite side labels. Empty values mean "use defaults".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

// WithOneSidedBorders records every border only on its first endpoint.
// Useful for demonstrating how asymmetric declarations weaken the search.
func WithOneSidedBorders() BuilderOption {
	return func(c *builderConfig) {
		c.oneSided = true
	}
}
