// SPDX-License-Identifier: MIT
// Package: mapcolor/builder
//
// impl_random_regular.go - RandomRegular(n, d): every region has exactly d neighbours.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   • Requires cfg.rng (ErrNeedRandSource).
//   • Stub matching: d stubs per region, shuffled and paired; a pairing with a
//     self border or a repeated pair is rejected and reshuffled, at most
//     maxStubMatchingAttempts times (then ErrConstructFailed).
//   • Borders are emitted in pairing order of the accepted shuffle.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// RandomRegular returns a Constructor for a seeded d-regular map.
// Complexity: O(n·d) per attempt.
func RandomRegular(n, d int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < MinRandomRegions {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomRegular, n, MinRandomRegions, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		if err := addRegions(m, cfg, MethodRandomRegular, n); err != nil {
			return err
		}
		if d == 0 {
			return nil
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := border(m, cfg, MethodRandomRegular, cfg.idFn(stubs[i]), cfg.idFn(stubs[i+1])); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form no self border and
// no repeated pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
