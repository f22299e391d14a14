package solver

import (
	"testing"

	"airflow/model"
)

func testConfig(n int) SimulationConfig {
	return SimulationConfig{
		Nx: n, Ny: n, Nz: n,
		CellSize:           0.5,
		Density:            1.2,
		Viscosity:          1.8e-5,
		ThermalDiffusivity: 2.2e-5,
		TimeStep:           0.1,
		MaxIterations:      50,
		Tolerance:          1e-12,
		RelaxationSweeps:   20,
		AmbientTemperature: 20,
		AmbientPressure:    101325,
	}
}

func newTestSolver(t *testing.T, n int) *Solver {
	t.Helper()
	s, err := NewSolver(testConfig(n))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestWallZeroesVelocity(t *testing.T) {
	s := newTestSolver(t, 6)
	g := s.grid
	for i := range g.u {
		g.u[i] = 1.5
		g.v[i] = -2.0
		g.w[i] = 0.7
	}
	s.AddBoundary(model.BoundaryCondition{
		Kind: model.BoundaryWall,
		Box: model.Box{
			Position: model.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
			Size:     model.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
		},
	})
	s.applyBoundaries()
	id := g.idx(1, 1, 1)
	if g.u[id] != 0 || g.v[id] != 0 || g.w[id] != 0 {
		t.Errorf("wall cell velocity = (%v,%v,%v), want all zero", g.u[id], g.v[id], g.w[id])
	}
	outside := g.idx(3, 3, 3)
	if g.u[outside] != 1.5 {
		t.Error("cells outside the wall box must keep their velocity")
	}
}

func TestObstacleZeroesVelocity(t *testing.T) {
	s := newTestSolver(t, 6)
	g := s.grid
	g.u[g.idx(2, 2, 2)] = 3
	s.AddBoundary(model.BoundaryCondition{
		Kind: model.BoundaryObstacle,
		Box: model.Box{
			Position: model.Vector3{X: 1.0, Y: 1.0, Z: 1.0},
			Size:     model.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
		},
	})
	s.applyBoundaries()
	if g.u[g.idx(2, 2, 2)] != 0 {
		t.Error("obstacle must enforce no-slip")
	}
}

func TestInletPrescribesVelocityAndTemperature(t *testing.T) {
	s := newTestSolver(t, 6)
	g := s.grid
	temp := 16.0
	s.AddBoundary(model.BoundaryCondition{
		Kind: model.BoundaryInlet,
		Box: model.Box{
			Position: model.Vector3{X: 0, Y: 0, Z: 0},
			Size:     model.Vector3{X: 0, Y: 3, Z: 3},
		},
		Properties: model.BoundaryProperties{
			Velocity:    &model.Vector3{X: 1, Y: 0, Z: 0},
			Temperature: &temp,
		},
	})
	s.applyBoundaries()
	id := g.idx(0, 2, 2)
	if g.u[id] != 1 || g.v[id] != 0 || g.w[id] != 0 {
		t.Errorf("inlet velocity = (%v,%v,%v), want (1,0,0)", g.u[id], g.v[id], g.w[id])
	}
	if g.t[id] != 16 {
		t.Errorf("inlet temperature = %v, want 16", g.t[id])
	}
}

func TestInletWithoutPropertiesLeavesFields(t *testing.T) {
	s := newTestSolver(t, 6)
	g := s.grid
	g.u[g.idx(0, 1, 1)] = 2
	s.AddBoundary(model.BoundaryCondition{
		Kind: model.BoundaryInlet,
		Box: model.Box{
			Position: model.Vector3{X: 0, Y: 0, Z: 0},
			Size:     model.Vector3{X: 0, Y: 3, Z: 3},
		},
	})
	s.applyBoundaries()
	if g.u[g.idx(0, 1, 1)] != 2 {
		t.Error("inlet without prescribed velocity must not mutate the field")
	}
}

func TestOutletDoesNotMutateFields(t *testing.T) {
	s := newTestSolver(t, 6)
	g := s.grid
	g.u[g.idx(5, 2, 2)] = 1.2
	s.AddBoundary(model.BoundaryCondition{
		Kind: model.BoundaryOutlet,
		Box: model.Box{
			Position: model.Vector3{X: 3.0, Y: 0, Z: 0},
			Size:     model.Vector3{X: 0, Y: 3, Z: 3},
		},
	})
	s.applyBoundaries()
	if g.u[g.idx(5, 2, 2)] != 1.2 {
		t.Error("outlet must not mutate fields directly")
	}
	if g.t[g.idx(5, 2, 2)] != 20 {
		t.Error("outlet must not mutate temperature")
	}
}

func TestLaterBoundaryOverwritesEarlier(t *testing.T) {
	s := newTestSolver(t, 6)
	g := s.grid
	box := model.Box{
		Position: model.Vector3{X: 1.0, Y: 1.0, Z: 1.0},
		Size:     model.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
	}
	s.AddBoundary(model.BoundaryCondition{Kind: model.BoundaryWall, Box: box})
	s.AddBoundary(model.BoundaryCondition{
		Kind: model.BoundaryInlet,
		Box:  box,
		Properties: model.BoundaryProperties{
			Velocity: &model.Vector3{X: 2, Y: 0, Z: 0},
		},
	})
	s.applyBoundaries()
	if got := g.u[g.idx(2, 2, 2)]; got != 2 {
		t.Errorf("later inlet should overwrite earlier wall, u = %v, want 2", got)
	}
}

func TestCellRangeClampedToGrid(t *testing.T) {
	s := newTestSolver(t, 6)
	r, ok := s.cellRangeFor(model.Box{
		Position: model.Vector3{X: -10, Y: -10, Z: -10},
		Size:     model.Vector3{X: 100, Y: 100, Z: 100},
	})
	if !ok {
		t.Fatal("box overlapping the whole grid must not be empty")
	}
	want := cellRange{i0: 0, i1: 5, j0: 0, j1: 5, k0: 0, k1: 5}
	if r != want {
		t.Errorf("oversized box range = %+v, want %+v", r, want)
	}
}

func TestCellRangeThinBoxCoversSingleLayer(t *testing.T) {
	s := newTestSolver(t, 6)
	r, ok := s.cellRangeFor(model.Box{
		Position: model.Vector3{X: 3.0, Y: 0, Z: 0},
		Size:     model.Vector3{X: 0, Y: 3, Z: 3},
	})
	if !ok {
		t.Fatal("face box touching the domain edge must cover the edge layer")
	}
	if r.i0 != r.i1 {
		t.Errorf("thin box i-range should be a single index, got %+v", r)
	}
	if r.j0 != 0 || r.j1 != 5 || r.k0 != 0 || r.k1 != 5 {
		t.Errorf("thin box cross-section wrong: %+v", r)
	}
}

func TestCellRangeOutsideGridIsEmpty(t *testing.T) {
	s := newTestSolver(t, 6)
	outside := []model.Box{
		{Position: model.Vector3{X: 10, Y: 0, Z: 0}, Size: model.Vector3{X: 1, Y: 1, Z: 1}},
		{Position: model.Vector3{X: -5, Y: 0, Z: 0}, Size: model.Vector3{X: 1, Y: 1, Z: 1}},
		{Position: model.Vector3{X: 0, Y: 0, Z: 3.5}, Size: model.Vector3{X: 1, Y: 1, Z: 1}},
	}
	for _, box := range outside {
		if _, ok := s.cellRangeFor(box); ok {
			t.Errorf("box %+v lies outside the grid, range should be empty", box)
		}
	}
}

func TestBoundaryOutsideGridNotApplied(t *testing.T) {
	s := newTestSolver(t, 6)
	g := s.grid
	for i := range g.u {
		g.u[i] = 1
	}
	s.AddBoundary(model.BoundaryCondition{
		Kind: model.BoundaryWall,
		Box: model.Box{
			Position: model.Vector3{X: 20, Y: 20, Z: 20},
			Size:     model.Vector3{X: 1, Y: 1, Z: 1},
		},
	})
	s.applyBoundaries()
	for i, u := range g.u {
		if u != 1 {
			t.Fatalf("wall outside the grid must not stamp any cell, u[%d] = %v", i, u)
		}
	}
}
