package components

// PositionComponent 实体中心点坐标（逻辑像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 每 tick 的位移
type VelocityComponent struct {
	VX float64
	VY float64
}
