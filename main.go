package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"airflow/model"
	"airflow/solver"
)

func floatPtr(v float64) *float64 { return &v }

// 示例场景：种植房间四周墙体 + 送风口 + 回风口 + 灯具热源
func buildScene(s *solver.Solver) {
	cfg := s.Config()
	h := cfg.CellSize
	roomX := float64(cfg.Nx) * h
	roomY := float64(cfg.Ny) * h
	roomZ := float64(cfg.Nz) * h

	// 六面墙
	walls := []model.Box{
		{Position: model.Vector3{X: 0, Y: 0, Z: 0}, Size: model.Vector3{X: 0, Y: roomY, Z: roomZ}},
		{Position: model.Vector3{X: roomX, Y: 0, Z: 0}, Size: model.Vector3{X: 0, Y: roomY, Z: roomZ}},
		{Position: model.Vector3{X: 0, Y: 0, Z: 0}, Size: model.Vector3{X: roomX, Y: 0, Z: roomZ}},
		{Position: model.Vector3{X: 0, Y: roomY, Z: 0}, Size: model.Vector3{X: roomX, Y: 0, Z: roomZ}},
		{Position: model.Vector3{X: 0, Y: 0, Z: 0}, Size: model.Vector3{X: roomX, Y: roomY, Z: 0}},
		{Position: model.Vector3{X: 0, Y: 0, Z: roomZ}, Size: model.Vector3{X: roomX, Y: roomY, Z: 0}},
	}
	for _, box := range walls {
		s.AddBoundary(model.BoundaryCondition{Kind: model.BoundaryWall, Box: box})
	}

	// 送风口：天花板中部向下送风，16°C
	s.AddBoundary(model.BoundaryCondition{
		Kind: model.BoundaryInlet,
		Box: model.Box{
			Position: model.Vector3{X: roomX/2 - h, Y: roomY/2 - h, Z: roomZ},
			Size:     model.Vector3{X: 2 * h, Y: 2 * h, Z: 0},
		},
		Properties: model.BoundaryProperties{
			Velocity:    &model.Vector3{X: 0, Y: 0, Z: -1.5},
			Temperature: floatPtr(16.0),
		},
	})

	// 回风口：侧墙下部
	s.AddBoundary(model.BoundaryCondition{
		Kind: model.BoundaryOutlet,
		Box: model.Box{
			Position: model.Vector3{X: roomX, Y: roomY/2 - h, Z: 0},
			Size:     model.Vector3{X: 0, Y: 2 * h, Z: 2 * h},
		},
	})

	// 两排600W灯具
	for _, y := range []float64{roomY / 4, 3 * roomY / 4} {
		s.AddHeatSource(model.HeatSource{
			Kind:  model.SourceFixture,
			Power: 600,
			Box: model.Box{
				Position: model.Vector3{X: h, Y: y - h/2, Z: roomZ - 2*h},
				Size:     model.Vector3{X: roomX - 2*h, Y: h, Z: h},
			},
		})
	}
}

func main() {
	cfgPath := flag.String("config", "conf/config.ini", "求解器配置文件路径")
	flag.Parse()

	cfg, err := solver.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	s, err := solver.NewSolver(cfg)
	if err != nil {
		log.Fatal(err)
	}
	buildScene(s)

	result, err := s.Simulate()
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"state":        result.State,
		"iterations":   result.Iterations,
		"max_velocity": result.MaxVelocity,
		"min_t":        result.MinTemperature,
		"max_t":        result.MaxTemperature,
		"avg_t":        result.AvgTemperature,
		"uniformity":   result.UniformityIndex,
	}).Info("仿真完成")
}
