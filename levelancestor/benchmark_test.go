package levelancestor

import (
	"math/rand"
	"testing"
)

func benchBuild(b *testing.B, variant Variant, n int) {
	b.Helper()
	parent := randomParent(n, rand.New(rand.NewSource(42)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(parent, variant, WithCapacity(n)); err != nil {
			b.Fatalf("New: %v", err)
		}
	}
}

func BenchmarkBuildOptimal_1000(b *testing.B)  { benchBuild(b, Optimal, 1000) }
func BenchmarkBuildOptimal_10000(b *testing.B) { benchBuild(b, Optimal, 10000) }
func BenchmarkBuildJump_1000(b *testing.B)     { benchBuild(b, JumpPointers, 1000) }
func BenchmarkBuildLadder_1000(b *testing.B)   { benchBuild(b, Ladder, 1000) }
func BenchmarkBuildTable_1000(b *testing.B)    { benchBuild(b, Table, 1000) }

func benchQuery(b *testing.B, variant Variant, n int) {
	b.Helper()
	parent := randomParent(n, rand.New(rand.NewSource(42)))
	bd, err := New(parent, variant, WithCapacity(n))
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	depth := naiveDepth(parent)
	rng := rand.New(rand.NewSource(7))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := rng.Intn(n)
		d := rng.Intn(depth[v] + 1)
		bd.Query(v, d)
	}
}

func BenchmarkQueryOptimal_10000(b *testing.B)  { benchQuery(b, Optimal, 10000) }
func BenchmarkQueryJump_10000(b *testing.B)     { benchQuery(b, JumpPointers, 10000) }
func BenchmarkQueryLadder_10000(b *testing.B)   { benchQuery(b, Ladder, 10000) }
func BenchmarkQueryTable_1000(b *testing.B)     { benchQuery(b, Table, 1000) }
