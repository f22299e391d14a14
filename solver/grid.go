package solver

// 网格状态：全部场量用一维切片存储，x方向变化最快
// u/v/w 速度分量，p 压强，t 温度，div 散度
// u0/v0/w0/t0 为上一时间步的副本，scratch 为扩散求解的源项缓冲
type grid struct {
	nx, ny, nz int
	cells      int

	u, v, w []float64
	p       []float64
	t       []float64
	div     []float64

	u0, v0, w0 []float64
	t0         []float64

	scratch []float64
}

func newGrid(nx, ny, nz int, ambient float64) *grid {
	cells := nx * ny * nz
	g := &grid{
		nx:    nx,
		ny:    ny,
		nz:    nz,
		cells: cells,

		u:   make([]float64, cells),
		v:   make([]float64, cells),
		w:   make([]float64, cells),
		p:   make([]float64, cells),
		t:   make([]float64, cells),
		div: make([]float64, cells),

		u0: make([]float64, cells),
		v0: make([]float64, cells),
		w0: make([]float64, cells),
		t0: make([]float64, cells),

		scratch: make([]float64, cells),
	}
	fill(g.t, ambient)
	fill(g.t0, ambient)
	return g
}

func fill(slice []float64, val float64) {
	for i := range slice {
		slice[i] = val
	}
}

func (g *grid) idx(i, j, k int) int {
	return i + g.nx*(j+g.ny*k)
}

func (g *grid) inBounds(i, j, k int) bool {
	return i >= 0 && i < g.nx && j >= 0 && j < g.ny && k >= 0 && k < g.nz
}

// 带边界检查的读写，越界返回 IndexError 而不是回绕
func (g *grid) at(field []float64, i, j, k int) (float64, error) {
	if !g.inBounds(i, j, k) {
		return 0, &IndexError{I: i, J: j, K: k}
	}
	return field[g.idx(i, j, k)], nil
}

func (g *grid) set(field []float64, i, j, k int, val float64) error {
	if !g.inBounds(i, j, k) {
		return &IndexError{I: i, J: j, K: k}
	}
	field[g.idx(i, j, k)] = val
	return nil
}

// 保存上一时间步的速度和温度
func (g *grid) snapshot() {
	copy(g.u0, g.u)
	copy(g.v0, g.v)
	copy(g.w0, g.w)
	copy(g.t0, g.t)
}
