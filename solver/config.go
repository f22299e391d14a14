package solver

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// 默认松弛迭代次数，可通过配置覆盖
const defaultRelaxationSweeps = 20

type SimulationConfig struct {
	// 网格划分
	Nx       int     // x方向单元数
	Ny       int     // y方向单元数
	Nz       int     // z方向单元数
	CellSize float64 // 单元边长，单位m

	// 流体物性参数
	Density            float64 // 密度 kg/m³
	Viscosity          float64 // 粘度 Pa·s
	ThermalDiffusivity float64 // 热扩散系数 m²/s

	// 求解参数
	TimeStep         float64 // 时间步长 s
	MaxIterations    int     // 迭代次数上限
	Tolerance        float64 // 收敛容差
	RelaxationSweeps int     // 每次松弛求解的扫描次数

	// 环境参数
	AmbientTemperature float64 // 环境温度 °C
	AmbientPressure    float64 // 环境压强 Pa
}

func (cfg *SimulationConfig) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"Nx", float64(cfg.Nx)},
		{"Ny", float64(cfg.Ny)},
		{"Nz", float64(cfg.Nz)},
		{"CellSize", cfg.CellSize},
		{"Density", cfg.Density},
		{"Viscosity", cfg.Viscosity},
		{"ThermalDiffusivity", cfg.ThermalDiffusivity},
		{"TimeStep", cfg.TimeStep},
		{"MaxIterations", float64(cfg.MaxIterations)},
		{"Tolerance", cfg.Tolerance},
		{"AmbientTemperature", cfg.AmbientTemperature},
		{"AmbientPressure", cfg.AmbientPressure},
		{"RelaxationSweeps", float64(cfg.RelaxationSweeps)},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return &ConfigError{Field: c.name, Value: c.value}
		}
	}
	return nil
}

// 从ini配置文件加载求解参数，缺省值对应一个典型种植房间
func LoadConfig(path string) (SimulationConfig, error) {
	file, err := ini.Load(path)
	if err != nil {
		return SimulationConfig{}, fmt.Errorf("配置文件读取错误，请检查文件路径: %w", err)
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) (SimulationConfig, error) {
	section := file.Section("solver")
	cfg := SimulationConfig{
		Nx:       section.Key("Nx").MustInt(20),
		Ny:       section.Key("Ny").MustInt(16),
		Nz:       section.Key("Nz").MustInt(10),
		CellSize: section.Key("CellSize").MustFloat64(0.5),

		Density:            section.Key("Density").MustFloat64(1.2),
		Viscosity:          section.Key("Viscosity").MustFloat64(1.8e-5),
		ThermalDiffusivity: section.Key("ThermalDiffusivity").MustFloat64(2.2e-5),

		TimeStep:         section.Key("TimeStep").MustFloat64(0.1),
		MaxIterations:    section.Key("MaxIterations").MustInt(200),
		Tolerance:        section.Key("Tolerance").MustFloat64(1e-4),
		RelaxationSweeps: section.Key("RelaxationSweeps").MustInt(defaultRelaxationSweeps),

		AmbientTemperature: section.Key("AmbientTemperature").MustFloat64(22.0),
		AmbientPressure:    section.Key("AmbientPressure").MustFloat64(101325),
	}
	if err := cfg.Validate(); err != nil {
		return SimulationConfig{}, err
	}
	return cfg, nil
}
