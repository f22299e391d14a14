package solver

// 空气定压比热容 J/(kg·K)
const specificHeatAir = 1005.0

// injectHeat 把每个热源的功率均分到其覆盖的单元上，
// 按显式欧拉折算成单步温升。多个热源覆盖同一单元时温升叠加。
// ΔT = P_cell·dt / (ρ·V_cell·c_p)
func (s *Solver) injectHeat(dt float64) {
	g := s.grid
	h := s.cfg.CellSize
	cellMass := s.cfg.Density * h * h * h
	for _, src := range s.sources {
		r, ok := s.cellRangeFor(src.Box)
		if !ok || src.Power == 0 {
			continue
		}
		count := (r.i1 - r.i0 + 1) * (r.j1 - r.j0 + 1) * (r.k1 - r.k0 + 1)
		powerPerCell := src.Power / float64(count)
		deltaT := powerPerCell * dt / (cellMass * specificHeatAir)
		for k := r.k0; k <= r.k1; k++ {
			for j := r.j0; j <= r.j1; j++ {
				for i := r.i0; i <= r.i1; i++ {
					g.t[g.idx(i, j, k)] += deltaT
				}
			}
		}
	}
}
