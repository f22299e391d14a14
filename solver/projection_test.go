package solver

import (
	"math"
	"math/rand"
	"testing"
)

func meanAbsDivergence(g *grid, h float64) float64 {
	g.computeDivergence(h)
	sum := 0.0
	count := 0
	for k := 1; k < g.nz-1; k++ {
		for j := 1; j < g.ny-1; j++ {
			for i := 1; i < g.nx-1; i++ {
				sum += math.Abs(g.div[g.idx(i, j, k)])
				count++
			}
		}
	}
	return sum / float64(count)
}

func TestProjectionReducesDivergence(t *testing.T) {
	g := newGrid(12, 12, 12, 0)
	rng := rand.New(rand.NewSource(42))
	for k := 1; k < g.nz-1; k++ {
		for j := 1; j < g.ny-1; j++ {
			for i := 1; i < g.nx-1; i++ {
				id := g.idx(i, j, k)
				g.u[id] = rng.Float64()*2 - 1
				g.v[id] = rng.Float64()*2 - 1
				g.w[id] = rng.Float64()*2 - 1
			}
		}
	}

	h := 0.5
	before := meanAbsDivergence(g, h)
	if before == 0 {
		t.Fatal("random field should start with non-zero divergence")
	}
	g.project(h, 20)
	after := meanAbsDivergence(g, h)
	if after >= before {
		t.Errorf("projection should reduce mean |divergence|: before %v, after %v", before, after)
	}
}

func TestProjectionKeepsDivergenceFreeField(t *testing.T) {
	g := newGrid(8, 8, 8, 0)
	// 均匀平移流本身无散，投影后应基本保持
	for i := range g.u {
		g.u[i] = 1
	}
	g.project(0.5, 20)
	for k := 2; k < g.nz-2; k++ {
		for j := 2; j < g.ny-2; j++ {
			for i := 2; i < g.nx-2; i++ {
				if d := math.Abs(g.u[g.idx(i, j, k)] - 1); d > 0.2 {
					t.Fatalf("uniform flow distorted at (%d,%d,%d): %v", i, j, k, g.u[g.idx(i, j, k)])
				}
			}
		}
	}
}
