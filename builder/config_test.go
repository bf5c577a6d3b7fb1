// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options apply in order and that
// a nil scheme is ignored.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithPrefixIDs("R")).idFn(4); got != "R4" {
		t.Errorf("WithPrefixIDs: expected \"R4\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}
	if got := newBuilderConfig(WithIDScheme(nil)).idFn(5); got != "5" {
		t.Errorf("WithIDScheme(nil): expected default \"5\", got %q", got)
	}
}

// TestRNGOptions verifies RNG wiring and seed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	exp := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(exp)); cfg.rng != exp {
		t.Errorf("WithRand: rng not attached")
	}

	defer func() {
		if recover() == nil {
			t.Error("WithRand(nil): expected panic")
		}
	}()

	s1 := newBuilderConfig(WithSeed(42))
	s2 := newBuilderConfig(WithSeed(42))
	if a, b := s1.rng.Int63(), s2.rng.Int63(); a != b {
		t.Errorf("WithSeed reproducibility: %d vs %d", a, b)
	}

	WithRand(nil)
}

func TestPartitionAndSidedness(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.leftPrefix != defaultLeftPrefix || cfg.rightPrefix != defaultRightPrefix || cfg.oneSided {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	cfg = newBuilderConfig(WithPartitionPrefix("", "East"), WithOneSidedBorders())
	if cfg.leftPrefix != defaultLeftPrefix || cfg.rightPrefix != "East" {
		t.Errorf("prefixes: got %q/%q", cfg.leftPrefix, cfg.rightPrefix)
	}
	if !cfg.oneSided {
		t.Error("WithOneSidedBorders not applied")
	}
}
