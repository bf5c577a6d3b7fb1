package coloring_test

import (
	"testing"

	"github.com/katalvlaran/mapcolor/builder"
	"github.com/katalvlaran/mapcolor/coloring"
)

func benchmarkSolve(b *testing.B, ctor builder.Constructor, k int) {
	m, err := builder.BuildMap(nil, nil, ctor)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = coloring.Solve(m, k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Grid8x8_2(b *testing.B) { benchmarkSolve(b, builder.Grid(8, 8), 2) }
func BenchmarkSolve_Icosahedron_4(b *testing.B) { benchmarkSolve(b, builder.PlatonicSolid(builder.Icosahedron, false), 4) }
func BenchmarkSolve_K7_6_Exhaustive(b *testing.B) { benchmarkSolve(b, builder.Complete(7), 6) }
func BenchmarkSolve_Dodecahedron_3(b *testing.B) { benchmarkSolve(b, builder.PlatonicSolid(builder.Dodecahedron, false), 3) }
