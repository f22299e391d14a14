package solver

import "math"

// 半拉格朗日对流：沿上一步速度场反向追踪一个时间步，
// 在追踪点对上一步场量做三线性插值。无条件稳定，不受CFL限制。

// clampCoord 把追踪坐标夹紧到网格范围内
// NaN坐标归零，避免发散的速度场把采样索引打穿
func clampCoord(x float64, n int) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if max := float64(n - 1); x > max {
		return max
	}
	return x
}

// sample 对场量在分数坐标处做三线性插值
// 整数坐标处的采样严格等于该节点的存储值
func (g *grid) sample(field []float64, x, y, z float64) float64 {
	x = clampCoord(x, g.nx)
	y = clampCoord(y, g.ny)
	z = clampCoord(z, g.nz)

	i0 := int(math.Floor(x))
	j0 := int(math.Floor(y))
	k0 := int(math.Floor(z))
	i1 := i0 + 1
	j1 := j0 + 1
	k1 := k0 + 1
	if i1 > g.nx-1 {
		i1 = g.nx - 1
	}
	if j1 > g.ny-1 {
		j1 = g.ny - 1
	}
	if k1 > g.nz-1 {
		k1 = g.nz - 1
	}

	fx := x - float64(i0)
	fy := y - float64(j0)
	fz := z - float64(k0)

	c000 := field[g.idx(i0, j0, k0)]
	c100 := field[g.idx(i1, j0, k0)]
	c010 := field[g.idx(i0, j1, k0)]
	c110 := field[g.idx(i1, j1, k0)]
	c001 := field[g.idx(i0, j0, k1)]
	c101 := field[g.idx(i1, j0, k1)]
	c011 := field[g.idx(i0, j1, k1)]
	c111 := field[g.idx(i1, j1, k1)]

	c00 := c000*(1-fx) + c100*fx
	c10 := c010*(1-fx) + c110*fx
	c01 := c001*(1-fx) + c101*fx
	c11 := c011*(1-fx) + c111*fx

	c0 := c00*(1-fy) + c10*fy
	c1 := c01*(1-fy) + c11*fy

	return c0*(1-fz) + c1*fz
}

// advectVelocity 只处理内部单元，排除一圈边界避免采样出界
func (g *grid) advectVelocity(dt float64) {
	parallelRange(1, g.nz-1, func(k int) {
		for j := 1; j < g.ny-1; j++ {
			for i := 1; i < g.nx-1; i++ {
				id := g.idx(i, j, k)
				x := float64(i) - dt*g.u0[id]
				y := float64(j) - dt*g.v0[id]
				z := float64(k) - dt*g.w0[id]
				g.u[id] = g.sample(g.u0, x, y, z)
				g.v[id] = g.sample(g.v0, x, y, z)
				g.w[id] = g.sample(g.w0, x, y, z)
			}
		}
	})
}

// advectScalar 用上一步速度场输运标量（温度）
func (g *grid) advectScalar(dst, src []float64, dt float64) {
	parallelRange(1, g.nz-1, func(k int) {
		for j := 1; j < g.ny-1; j++ {
			for i := 1; i < g.nx-1; i++ {
				id := g.idx(i, j, k)
				x := float64(i) - dt*g.u0[id]
				y := float64(j) - dt*g.v0[id]
				z := float64(k) - dt*g.w0[id]
				dst[id] = g.sample(src, x, y, z)
			}
		}
	})
}
