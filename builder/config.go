// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn   ("0","1","2",...)
//   • rng        = nil           (only stochastic kinds need one)
//   • left/right = "L" / "R"
//   • oneSided   = false         (every border is recorded on both sides)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Region ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic kinds; nil means no randomness available.
	rng *rand.Rand

	// Bipartite ID prefixes. Empty resolves to the defaults below.
	leftPrefix  string
	rightPrefix string

	// oneSided records each border only in the first endpoint's list,
	// producing the asymmetric maps the solver under-constrains.
	oneSided bool
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults, last option wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
