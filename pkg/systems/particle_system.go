package systems

import (
	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/ecs"
)

// ParticleSystem 命中粒子的运动与衰减
// 粒子沿直线飞行；边长和透明度等于剩余寿命比例（线性缩小淡出）
// 寿命递减与删除由 LifetimeSystem 负责
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 推进所有粒子一个 tick
func (s *ParticleSystem) Update() {
	particles := ecs.GetEntitiesWith3[
		*components.ParticleComponent,
		*components.PositionComponent,
		*components.LifetimeComponent,
	](s.entityManager)

	for _, id := range particles {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			pos.X += vel.VX
			pos.Y += vel.VY
		}

		f := life.Fraction()
		p.Alpha = f
		p.Size = p.BaseSize * f
	}
}

// Count 当前粒子数量
func (s *ParticleSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager))
}
