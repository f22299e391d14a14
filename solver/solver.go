package solver

import (
	"math"

	log "github.com/sirupsen/logrus"

	"airflow/model"
)

// Solver 持有一次仿真的全部状态，实例之间互不共享。
// Simulate 是同步阻塞调用，外部通过 CalcHub 的 Stop 信号中止。
type Solver struct {
	cfg        SimulationConfig
	grid       *grid
	boundaries []model.BoundaryCondition
	sources    []model.HeatSource
	calcHub    *CalcHub
	state      RunState
}

func NewSolver(cfg SimulationConfig) (*Solver, error) {
	if cfg.RelaxationSweeps == 0 {
		cfg.RelaxationSweeps = defaultRelaxationSweeps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		cfg:     cfg,
		grid:    newGrid(cfg.Nx, cfg.Ny, cfg.Nz, cfg.AmbientTemperature),
		calcHub: NewCalcHub(),
		state:   StateIdle,
	}
	log.WithFields(log.Fields{
		"grid":      []int{cfg.Nx, cfg.Ny, cfg.Nz},
		"cell_size": cfg.CellSize,
		"time_step": cfg.TimeStep,
		"max_iter":  cfg.MaxIterations,
		"tolerance": cfg.Tolerance,
		"sweeps":    cfg.RelaxationSweeps,
		"ambient_t": cfg.AmbientTemperature,
	}).Info("求解器初始化完成")
	return s, nil
}

func (s *Solver) Config() SimulationConfig {
	return s.cfg
}

func (s *Solver) GetCalcHub() *CalcHub {
	return s.calcHub
}

func (s *Solver) State() RunState {
	return s.state
}

// 注册边界条件，按注册顺序生效
func (s *Solver) AddBoundary(bc model.BoundaryCondition) {
	s.boundaries = append(s.boundaries, bc)
}

// 注册热源
func (s *Solver) AddHeatSource(src model.HeatSource) {
	s.sources = append(s.sources, src)
}

// velocityResidual 取任一速度分量相对上一步的最大绝对变化。
// NaN与任何值比较都是假，单纯取最大值会把NaN漏掉，发现即返回
func (g *grid) velocityResidual() float64 {
	residual := 0.0
	for i := range g.u {
		du := math.Abs(g.u[i] - g.u0[i])
		dv := math.Abs(g.v[i] - g.v0[i])
		dw := math.Abs(g.w[i] - g.w0[i])
		if math.IsNaN(du) || math.IsNaN(dv) || math.IsNaN(dw) {
			return math.NaN()
		}
		if du > residual {
			residual = du
		}
		if dv > residual {
			residual = dv
		}
		if dw > residual {
			residual = dw
		}
	}
	return residual
}

// Simulate 执行迭代循环直到收敛、迭代耗尽或被外部中止。
// 每次迭代：快照 -> 边界 -> 速度(对流/扩散/投影) -> 温度(对流/扩散/热源)。
// 数值发散时返回上一有效迭代的部分结果和 InstabilityError。
func (s *Solver) Simulate() (*SimulationResult, error) {
	cfg := s.cfg
	g := s.grid
	dt := cfg.TimeStep
	sweeps := cfg.RelaxationSweeps

	s.calcHub.StartSignal()
	s.state = StateIterating
	history := make([]float64, 0, cfg.MaxIterations)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		if s.calcHub.stopped() {
			s.state = StateStopped
			log.WithField("iteration", iter).Info("求解被外部中止")
			return buildResult(g, g.u, g.v, g.w, g.t, s.state, history), nil
		}

		g.snapshot()
		s.applyBoundaries()

		g.advectVelocity(dt)
		g.diffuse(g.u, cfg.Viscosity, dt, sweeps)
		g.diffuse(g.v, cfg.Viscosity, dt, sweeps)
		g.diffuse(g.w, cfg.Viscosity, dt, sweeps)
		g.project(cfg.CellSize, sweeps)

		g.advectScalar(g.t, g.t0, dt)
		g.diffuse(g.t, cfg.ThermalDiffusivity, dt, sweeps)
		s.injectHeat(dt)

		residual := g.velocityResidual()
		history = append(history, residual)
		s.calcHub.pushResidual(residual)

		if math.IsNaN(residual) || math.IsInf(residual, 0) {
			s.state = StateFailed
			log.WithFields(log.Fields{
				"iteration": iter,
				"residual":  residual,
			}).Error("数值发散，中止求解")
			// 快照里是上一有效迭代的场量
			return buildResult(g, g.u0, g.v0, g.w0, g.t0, s.state, history[:len(history)-1]),
				&InstabilityError{Iteration: iter, Residual: residual}
		}

		if residual < cfg.Tolerance {
			s.state = StateConverged
			log.WithFields(log.Fields{
				"iteration": iter + 1,
				"residual":  residual,
			}).Info("达到收敛容差，提前退出")
			break
		}
	}

	if s.state != StateConverged {
		s.state = StateExhausted
	}
	return buildResult(g, g.u, g.v, g.w, g.t, s.state, history), nil
}
