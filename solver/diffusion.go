package solver

// 隐式扩散：(1 + 6a)·x = x0 + a·Σ相邻6面单元
// 用固定次数的Gauss-Seidel扫描近似求解，速度和温度共用同一套例程

func (g *grid) diffuse(field []float64, diff, dt float64, sweeps int) {
	a := dt * diff
	if a == 0 {
		return
	}
	copy(g.scratch, field)
	nx := g.nx
	stride := g.nx * g.ny
	for sweep := 0; sweep < sweeps; sweep++ {
		for k := 1; k < g.nz-1; k++ {
			for j := 1; j < g.ny-1; j++ {
				for i := 1; i < g.nx-1; i++ {
					id := g.idx(i, j, k)
					sum := field[id-1] + field[id+1] +
						field[id-nx] + field[id+nx] +
						field[id-stride] + field[id+stride]
					field[id] = (g.scratch[id] + a*sum) / (1 + 6*a)
				}
			}
		}
	}
}
