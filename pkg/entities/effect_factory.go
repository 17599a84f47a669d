package entities

import (
	"math/rand"

	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/config"
	"github.com/decker502/discobird/pkg/ecs"
)

// NewHitBurst 在命中位置创建一组粒子
// 每个粒子颜色取自调色板，速度在每个轴上为 [-base, base) 的随机值
// 再向随机方向偏移 base/2，保证粒子不会停在原地
//
// 返回:
//   - []ecs.EntityID: 创建的粒子实体（按创建顺序）
func NewHitBurst(em *ecs.EntityManager, cfg *config.GameplayConfig, rng *rand.Rand, x, y float64) []ecs.EntityID {
	burst := cfg.HitBurst
	palette := cfg.PaletteColors()
	ids := make([]ecs.EntityID, 0, burst.Count)

	for i := 0; i < burst.Count; i++ {
		clr := palette[rng.Intn(len(palette))]
		vx := burstVelocity(rng, burst.BaseSpeed)
		vy := burstVelocity(rng, burst.BaseSpeed)
		ttl := burst.TTL.Random(rng)

		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
		em.AddComponent(id, &components.ParticleComponent{
			BaseSize: burst.Size,
			Size:     burst.Size,
			Alpha:    1,
			Color:    clr,
		})
		em.AddComponent(id, &components.LifetimeComponent{
			Initial:   ttl,
			Remaining: ttl,
		})
		em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorParticle})

		ids = append(ids, id)
	}

	return ids
}

func burstVelocity(rng *rand.Rand, base float64) float64 {
	v := (rng.Float64() - 0.5) * base * 2
	return v + sign(rng.Float64()-0.5)*base*0.5
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
