package builder_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/mapcolor/builder"
)

// TestPainting_Triangle draws three regions that all touch.
//
//	AAB
//	ACB
//	CCB
func TestPainting_Triangle(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMap(nil, nil, builder.Painting([]string{"AAB", "ACB", "CCB"}, builder.Conn4))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Regions(); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("regions = %v", got)
	}
	if m.EdgeCount() != 6 || !m.Symmetric() {
		t.Errorf("entries = %d, symmetric = %v; want 6, true", m.EdgeCount(), m.Symmetric())
	}
	for _, pair := range [][2]string{{"A", "B"}, {"A", "C"}, {"C", "B"}} {
		if !borders(m, pair[0], pair[1]) {
			t.Errorf("missing border %s–%s", pair[0], pair[1])
		}
	}
}

func TestPainting_WaterSplitsLabels(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMap(nil, nil, builder.Painting([]string{"A.A", "..."}, builder.Conn4))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Regions(); !slices.Equal(got, []string{"A", "A2"}) {
		t.Errorf("regions = %v", got)
	}
	if m.EdgeCount() != 0 {
		t.Errorf("entries = %d, want 0", m.EdgeCount())
	}
}

// TestPainting_Diagonals checks that corners only join under Conn8.
//
//	AB
//	BA
func TestPainting_Diagonals(t *testing.T) {
	t.Parallel()

	rows := []string{"AB", "BA"}
	m4, err := builder.BuildMap(nil, nil, builder.Painting(rows, builder.Conn4))
	if err != nil {
		t.Fatal(err)
	}
	if got := m4.Regions(); !slices.Equal(got, []string{"A", "B", "B2", "A2"}) {
		t.Errorf("Conn4 regions = %v", got)
	}
	if m4.EdgeCount() != 8 {
		t.Errorf("Conn4 entries = %d, want 8", m4.EdgeCount())
	}

	m8, err := builder.BuildMap(nil, nil, builder.Painting(rows, builder.Conn8))
	if err != nil {
		t.Fatal(err)
	}
	if got := m8.Regions(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Conn8 regions = %v", got)
	}
	if m8.EdgeCount() != 2 {
		t.Errorf("Conn8 entries = %d, want 2", m8.EdgeCount())
	}
}

func TestPainting_OneSided(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMap(nil, []builder.BuilderOption{builder.WithOneSidedBorders()},
		builder.Painting([]string{"AB"}, builder.Conn4))
	if err != nil {
		t.Fatal(err)
	}
	if !borders(m, "A", "B") || borders(m, "B", "A") {
		t.Error("want A→B only")
	}
}

func TestPainting_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"nil", nil, builder.ErrTooFewVertices},
		{"empty row", []string{""}, builder.ErrTooFewVertices},
		{"all water", []string{"..", " ."}, builder.ErrTooFewVertices},
		{"ragged", []string{"AB", "A"}, builder.ErrNonRectangular},
	}
	for _, tc := range tests {
		if _, err := builder.BuildMap(nil, nil, builder.Painting(tc.rows, builder.Conn4)); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}
