package components

// BehaviorType 定义实体的行为类型
// 系统按此标签分派更新与渲染逻辑
type BehaviorType int

const (
	// BehaviorBird 迪斯科鸟：向左飞行、正弦起伏、可被击中
	BehaviorBird BehaviorType = iota
	// BehaviorParticle 命中粒子：直线飞散、缩小淡出
	BehaviorParticle
)

// String 返回行为类型名称（用于日志）
func (b BehaviorType) String() string {
	switch b {
	case BehaviorBird:
		return "Bird"
	case BehaviorParticle:
		return "Particle"
	default:
		return "Unknown"
	}
}

// BehaviorComponent 实体的行为标签
type BehaviorComponent struct {
	Type BehaviorType
}
