package solver

import (
	"math"

	"airflow/model"
)

// 包围盒覆盖的网格索引范围，闭区间
type cellRange struct {
	i0, i1 int
	j0, j1 int
	k0, k1 int
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// cellRangeFor 把世界坐标包围盒转成网格索引范围：
// 下界向下取整，上界向上取整后减一（闭区间），再夹紧到网格内。
// 厚度为零的盒（如房间侧面）退化为一层单元。
// 与网格完全不相交的盒返回 false，贴在边界面上的算作覆盖边缘层
func (s *Solver) cellRangeFor(box model.Box) (cellRange, bool) {
	h := s.cfg.CellSize
	g := s.grid
	if box.Position.X > float64(g.nx)*h || box.Position.X+box.Size.X < 0 ||
		box.Position.Y > float64(g.ny)*h || box.Position.Y+box.Size.Y < 0 ||
		box.Position.Z > float64(g.nz)*h || box.Position.Z+box.Size.Z < 0 {
		return cellRange{}, false
	}
	r := cellRange{
		i0: int(math.Floor(box.Position.X / h)),
		j0: int(math.Floor(box.Position.Y / h)),
		k0: int(math.Floor(box.Position.Z / h)),
		i1: int(math.Ceil((box.Position.X+box.Size.X)/h)) - 1,
		j1: int(math.Ceil((box.Position.Y+box.Size.Y)/h)) - 1,
		k1: int(math.Ceil((box.Position.Z+box.Size.Z)/h)) - 1,
	}
	if r.i1 < r.i0 {
		r.i1 = r.i0
	}
	if r.j1 < r.j0 {
		r.j1 = r.j0
	}
	if r.k1 < r.k0 {
		r.k1 = r.k0
	}
	r.i0, r.i1 = clampIndex(r.i0, g.nx), clampIndex(r.i1, g.nx)
	r.j0, r.j1 = clampIndex(r.j0, g.ny), clampIndex(r.j1, g.ny)
	r.k0, r.k1 = clampIndex(r.k0, g.nz), clampIndex(r.k1, g.nz)
	return r, true
}

// applyBoundaries 每次迭代在对流之前按注册顺序盖章一遍，
// 后注册的条目覆盖先注册条目在重叠单元上的效果
func (s *Solver) applyBoundaries() {
	g := s.grid
	for _, bc := range s.boundaries {
		r, ok := s.cellRangeFor(bc.Box)
		if !ok {
			continue
		}
		for k := r.k0; k <= r.k1; k++ {
			for j := r.j0; j <= r.j1; j++ {
				for i := r.i0; i <= r.i1; i++ {
					id := g.idx(i, j, k)
					switch bc.Kind {
					case model.BoundaryWall, model.BoundaryObstacle:
						// 无滑移
						g.u[id] = 0
						g.v[id] = 0
						g.w[id] = 0
					case model.BoundaryInlet:
						if vel := bc.Properties.Velocity; vel != nil {
							g.u[id] = vel.X
							g.v[id] = vel.Y
							g.w[id] = vel.Z
						}
						if temp := bc.Properties.Temperature; temp != nil {
							g.t[id] = *temp
						}
					case model.BoundaryOutlet:
						// 不直接改场量，出流由投影近似给出（见DESIGN.md）
					}
				}
			}
		}
	}
}
