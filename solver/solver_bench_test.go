package solver

import (
	"testing"

	"airflow/model"
)

func BenchmarkSimulate(b *testing.B) {
	for n := 0; n < b.N; n++ {
		cfg := testConfig(16)
		cfg.MaxIterations = 10
		s, err := NewSolver(cfg)
		if err != nil {
			b.Fatal(err)
		}
		s.AddBoundary(model.BoundaryCondition{
			Kind: model.BoundaryInlet,
			Box: model.Box{
				Position: model.Vector3{X: 0, Y: 0, Z: 0},
				Size:     model.Vector3{X: 0, Y: 8, Z: 8},
			},
			Properties: model.BoundaryProperties{
				Velocity: &model.Vector3{X: 1.5, Y: 0, Z: 0},
			},
		})
		if _, err := s.Simulate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProjection(b *testing.B) {
	g := newGrid(24, 24, 24, 20)
	for i := range g.u {
		g.u[i] = float64(i%7) * 0.1
		g.v[i] = float64(i%5) * 0.1
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		g.project(0.5, 20)
	}
}
