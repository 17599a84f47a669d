package systems

import (
	"math"

	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/config"
	"github.com/decker502/discobird/pkg/ecs"
)

// BirdMovementSystem 鸟的运动
//   - 旋转角与描边相位每 tick 递增
//   - X 按速度平移，Y 由 X 的正弦函数决定并限制在画布内
//   - 完全飞出左边界后标记删除
type BirdMovementSystem struct {
	entityManager *ecs.EntityManager
	canvasHeight  float64
}

// NewBirdMovementSystem 创建鸟运动系统
func NewBirdMovementSystem(em *ecs.EntityManager) *BirdMovementSystem {
	return &BirdMovementSystem{
		entityManager: em,
		canvasHeight:  config.GameWindowHeight,
	}
}

// Update 推进所有鸟一个 tick
func (s *BirdMovementSystem) Update() {
	birds := ecs.GetEntitiesWith3[
		*components.BirdComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range birds {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		bird, _ := ecs.GetComponent[*components.BirdComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		bird.Rotation += bird.RotationSpeed
		bird.Shine += bird.ShineStep

		pos.X += vel.VX
		pos.Y = bird.BaseY + math.Sin(pos.X*bird.Frequency)*bird.Amplitude

		minY := bird.Height / 2
		maxY := s.canvasHeight - bird.Height/2
		if pos.Y < minY {
			pos.Y = minY
		}
		if pos.Y > maxY {
			pos.Y = maxY
		}

		if pos.X < -bird.Width {
			s.entityManager.DestroyEntity(id)
		}
	}
}
