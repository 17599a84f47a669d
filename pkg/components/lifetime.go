package components

// LifetimeComponent 管理实体的生命周期（tick 计数）
// Remaining 每 tick 减一，降到 0 时实体被销毁
type LifetimeComponent struct {
	Initial   float64 // 初始寿命（tick），可以是小数
	Remaining float64 // 剩余寿命（tick）
	IsExpired bool    // 是否已过期
}

// Fraction 剩余寿命比例 [0, 1]
func (l *LifetimeComponent) Fraction() float64 {
	if l.Initial <= 0 {
		return 0
	}
	f := l.Remaining / l.Initial
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
