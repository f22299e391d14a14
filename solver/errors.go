package solver

import "fmt"

// 配置参数非法，构造阶段直接失败，不进行任何分配
type ConfigError struct {
	Field string
	Value float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config field %s: %v (must be positive)", e.Field, e.Value)
}

// 网格索引越界，正常情况下不会出现（box 都会先夹紧到网格范围内）
type IndexError struct {
	I, J, K int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("grid index out of bounds: (%d, %d, %d)", e.I, e.J, e.K)
}

// 数值发散，携带发散发生的迭代序号和当时的残差
type InstabilityError struct {
	Iteration int
	Residual  float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("numeric instability at iteration %d: residual = %v", e.Iteration, e.Residual)
}
