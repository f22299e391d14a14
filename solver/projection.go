package solver

// 压力投影：计算散度 -> 求解压力Poisson方程 -> 减去压力梯度，
// 把速度场逼近无散状态。扫描次数固定时散度不会精确为零，
// 只会被压到一个小的残差。

// computeDivergence 用中心差分计算内部单元散度，存入 div（已取负并乘以0.5h）
func (g *grid) computeDivergence(h float64) {
	nx := g.nx
	stride := g.nx * g.ny
	for k := 1; k < g.nz-1; k++ {
		for j := 1; j < g.ny-1; j++ {
			for i := 1; i < g.nx-1; i++ {
				id := g.idx(i, j, k)
				g.div[id] = -0.5 * h * (g.u[id+1] - g.u[id-1] +
					g.v[id+nx] - g.v[id-nx] +
					g.w[id+stride] - g.w[id-stride])
			}
		}
	}
}

func (g *grid) project(h float64, sweeps int) {
	nx := g.nx
	stride := g.nx * g.ny

	g.computeDivergence(h)
	fill(g.p, 0)

	// Poisson方程的Gauss-Seidel松弛
	for sweep := 0; sweep < sweeps; sweep++ {
		for k := 1; k < g.nz-1; k++ {
			for j := 1; j < g.ny-1; j++ {
				for i := 1; i < g.nx-1; i++ {
					id := g.idx(i, j, k)
					g.p[id] = (g.div[id] +
						g.p[id-1] + g.p[id+1] +
						g.p[id-nx] + g.p[id+nx] +
						g.p[id-stride] + g.p[id+stride]) / 6
				}
			}
		}
	}

	// 减去压力梯度
	for k := 1; k < g.nz-1; k++ {
		for j := 1; j < g.ny-1; j++ {
			for i := 1; i < g.nx-1; i++ {
				id := g.idx(i, j, k)
				g.u[id] -= 0.5 * (g.p[id+1] - g.p[id-1]) / h
				g.v[id] -= 0.5 * (g.p[id+nx] - g.p[id-nx]) / h
				g.w[id] -= 0.5 * (g.p[id+stride] - g.p[id-stride]) / h
			}
		}
	}
}
