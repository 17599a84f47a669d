package systems

import "github.com/decker502/discobird/pkg/game"

// RoundTimerSystem 本局倒计时
type RoundTimerSystem struct{}

// NewRoundTimerSystem 创建倒计时系统
func NewRoundTimerSystem() *RoundTimerSystem {
	return &RoundTimerSystem{}
}

// Update 推进一个 tick，每 TicksPerSecond 个 tick 剩余时间减一秒
// 返回剩余时间是否已归零
func (s *RoundTimerSystem) Update(session *game.Session) bool {
	return session.AdvanceClock()
}
