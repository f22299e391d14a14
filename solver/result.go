package solver

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// 统计量除法的保护阈值
const statEpsilon = 1e-9

type RunState string

const (
	StateIdle      RunState = "idle"
	StateIterating RunState = "iterating"
	StateConverged RunState = "converged"
	StateExhausted RunState = "exhausted"
	StateStopped   RunState = "stopped"
	StateFailed    RunState = "failed"
)

// 一次求解的最终产出，生成后不再修改
type SimulationResult struct {
	Nx, Ny, Nz int

	U []float64 `json:"u"`
	V []float64 `json:"v"`
	W []float64 `json:"w"`
	P []float64 `json:"p"`
	T []float64 `json:"t"`

	ConvergenceHistory []float64 `json:"convergence_history"`
	State              RunState  `json:"state"`
	Iterations         int       `json:"iterations"`

	MaxVelocity     float64 `json:"max_velocity"`
	MinTemperature  float64 `json:"min_temperature"`
	MaxTemperature  float64 `json:"max_temperature"`
	AvgTemperature  float64 `json:"avg_temperature"`
	UniformityIndex float64 `json:"uniformity_index"`
}

func (r *SimulationResult) inBounds(i, j, k int) bool {
	return i >= 0 && i < r.Nx && j >= 0 && j < r.Ny && k >= 0 && k < r.Nz
}

func (r *SimulationResult) idx(i, j, k int) int {
	return i + r.Nx*(j+r.Ny*k)
}

func (r *SimulationResult) TemperatureAt(i, j, k int) (float64, error) {
	if !r.inBounds(i, j, k) {
		return 0, &IndexError{I: i, J: j, K: k}
	}
	return r.T[r.idx(i, j, k)], nil
}

func (r *SimulationResult) PressureAt(i, j, k int) (float64, error) {
	if !r.inBounds(i, j, k) {
		return 0, &IndexError{I: i, J: j, K: k}
	}
	return r.P[r.idx(i, j, k)], nil
}

func (r *SimulationResult) VelocityAt(i, j, k int) (x, y, z float64, err error) {
	if !r.inBounds(i, j, k) {
		return 0, 0, 0, &IndexError{I: i, J: j, K: k}
	}
	id := r.idx(i, j, k)
	return r.U[id], r.V[id], r.W[id], nil
}

// uniformityIndex = clamp(1 - 标准差/均值, 0, 1)
// 均值接近零的退化场取哨兵值0，避免除零产生NaN
func uniformityIndex(temps []float64) float64 {
	if len(temps) == 0 {
		return 0
	}
	mean := stat.Mean(temps, nil)
	if mean < statEpsilon {
		return 0
	}
	std := stat.StdDev(temps, nil)
	if math.IsNaN(std) {
		// 单个样本的标准差未定义，视为完全均匀
		std = 0
	}
	index := 1 - std/mean
	if index < 0 {
		return 0
	}
	if index > 1 {
		return 1
	}
	return index
}

// buildResult 从给定的场量快照组装结果并计算统计量
func buildResult(g *grid, u, v, w, t []float64, state RunState, history []float64) *SimulationResult {
	r := &SimulationResult{
		Nx: g.nx,
		Ny: g.ny,
		Nz: g.nz,

		U: append([]float64(nil), u...),
		V: append([]float64(nil), v...),
		W: append([]float64(nil), w...),
		P: append([]float64(nil), g.p...),
		T: append([]float64(nil), t...),

		ConvergenceHistory: append([]float64(nil), history...),
		State:              state,
		Iterations:         len(history),
	}

	maxVelSq := 0.0
	for i := range r.U {
		velSq := r.U[i]*r.U[i] + r.V[i]*r.V[i] + r.W[i]*r.W[i]
		if velSq > maxVelSq {
			maxVelSq = velSq
		}
	}
	r.MaxVelocity = math.Sqrt(maxVelSq)

	// 温度统计只取非零单元（即被初始化过的单元）
	temps := make([]float64, 0, len(r.T))
	for _, temp := range r.T {
		if temp != 0 {
			temps = append(temps, temp)
		}
	}
	if len(temps) > 0 {
		minT, maxT := temps[0], temps[0]
		for _, temp := range temps[1:] {
			if temp < minT {
				minT = temp
			}
			if temp > maxT {
				maxT = temp
			}
		}
		r.MinTemperature = minT
		r.MaxTemperature = maxT
		r.AvgTemperature = stat.Mean(temps, nil)
	}
	r.UniformityIndex = uniformityIndex(temps)
	return r
}
