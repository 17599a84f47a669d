package systems

import (
	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/ecs"
	"github.com/decker502/discobird/pkg/game"
	"github.com/decker502/discobird/pkg/utils"
)

// World 实体池与所有模拟系统
// 标题、游戏、结束三个场景共享同一个 World
type World struct {
	EntityManager *ecs.EntityManager

	Difficulty *DifficultySystem
	Timer      *RoundTimerSystem
	Spawner    *BirdSpawnSystem
	Movement   *BirdMovementSystem
	Particles  *ParticleSystem
	Lifetime   *LifetimeSystem
	HitTest    *HitTestSystem
	Shooting   *ShootingSystem
}

// NewWorld 创建实体池与系统
// sounds 可为 nil（无声模式，例如无头模拟）
func NewWorld(sounds SoundPlayer) *World {
	em := ecs.NewEntityManager()
	hitTest := NewHitTestSystem(em)
	return &World{
		EntityManager: em,
		Difficulty:    NewDifficultySystem(),
		Timer:         NewRoundTimerSystem(),
		Spawner:       NewBirdSpawnSystem(em),
		Movement:      NewBirdMovementSystem(em),
		Particles:     NewParticleSystem(em),
		Lifetime:      NewLifetimeSystem(em),
		HitTest:       hitTest,
		Shooting:      NewShootingSystem(em, hitTest, sounds),
	}
}

// Update 执行一个 tick
//
// 顺序：
//  1. 本 tick 的点击（仅 Playing）
//  2. 难度、生成、倒计时、鸟运动（仅 Playing；到时的那个 tick 鸟不再移动）
//  3. 粒子运动与寿命（所有状态）
//  4. 同步碰撞形状，清理标记删除的实体
//
// 返回本 tick 倒计时是否归零，由调用方切换到 GameOver
func (w *World) Update(session *game.Session, presses []utils.Pointer) (expired bool) {
	session.BackgroundTimer++

	if session.State == game.StatePlaying {
		for _, p := range presses {
			w.Shooting.Shoot(session, p.X, p.Y)
		}

		w.Difficulty.Update(session)
		w.Spawner.Update(session)
		expired = w.Timer.Update(session)
		if !expired {
			w.Movement.Update()
		}
	}

	w.Particles.Update()
	w.Lifetime.Update(1)

	w.HitTest.Sync()
	w.EntityManager.RemoveMarkedEntities()
	return expired
}

// Reset 清空所有实体和碰撞空间
func (w *World) Reset() {
	w.HitTest.Reset()
	w.EntityManager.Clear()
}

// BirdCount 当前鸟的数量
func (w *World) BirdCount() int {
	return len(ecs.GetEntitiesWith1[*components.BirdComponent](w.EntityManager))
}
