package model

// 边界类型
const (
	BoundaryWall     = "wall"
	BoundaryInlet    = "inlet"
	BoundaryOutlet   = "outlet"
	BoundaryObstacle = "obstacle"
)

// 热源类型
const (
	SourceFixture   = "fixture"
	SourceEquipment = "equipment"
	SourcePlant     = "plant"
)

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// 轴对齐包围盒，世界坐标，单位m
type Box struct {
	Position Vector3 `json:"position"`
	Size     Vector3 `json:"size"`
}

// 边界附加参数，只有 inlet 会用到 Velocity / Temperature
// Pressure 和 FlowRate 仅做记录
type BoundaryProperties struct {
	Velocity    *Vector3 `json:"velocity,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty"`
	FlowRate    *float64 `json:"flow_rate,omitempty"`
}

type BoundaryCondition struct {
	Kind       string             `json:"kind"`
	Box        Box                `json:"box"`
	Properties BoundaryProperties `json:"properties"`
}

// 热源，功率单位W，覆盖单元均分功率
type HeatSource struct {
	Kind  string  `json:"kind"`
	Box   Box     `json:"box"`
	Power float64 `json:"power"`
}
