package systems

import (
	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/ecs"
	"github.com/decker502/discobird/pkg/game"
)

// recordingSounds 记录播放的音效ID
// 被多个测试文件共享使用
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

func (r *recordingSounds) count(soundID string) int {
	n := 0
	for _, id := range r.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// newPlayingSession 创建处于 Playing 状态的会话（固定随机种子）
func newPlayingSession() *game.Session {
	s := game.NewSession(nil, 12345)
	s.State = game.StatePlaying
	return s
}

// addTestBird 在指定位置放一只不会起伏的鸟
func addTestBird(em *ecs.EntityManager, x, y, vx float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx})
	em.AddComponent(id, &components.BirdComponent{
		BaseY:         y,
		Width:         40,
		Height:        30,
		RotationSpeed: 0.03,
		ShineStep:     0.1,
	})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorBird})
	return id
}
