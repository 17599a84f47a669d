package systems

import (
	"log"

	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/ecs"
	"github.com/decker502/discobird/pkg/entities"
	"github.com/decker502/discobird/pkg/game"
)

// SoundPlayer 播放一次性音效，由 game.AudioManager 实现
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// ShootingSystem 处理游戏中的点击射击
// 每次点击播放射击音效；命中时删除鸟、加分、生成粒子并播放命中音效
type ShootingSystem struct {
	entityManager *ecs.EntityManager
	hitTest       *HitTestSystem
	sounds        SoundPlayer // 可为 nil
}

// NewShootingSystem 创建射击系统
func NewShootingSystem(em *ecs.EntityManager, hitTest *HitTestSystem, sounds SoundPlayer) *ShootingSystem {
	return &ShootingSystem{
		entityManager: em,
		hitTest:       hitTest,
		sounds:        sounds,
	}
}

// Shoot 处理一次点击
// 非 Playing 状态下忽略；返回被击中的鸟
func (s *ShootingSystem) Shoot(session *game.Session, x, y float64) (ecs.EntityID, bool) {
	if session.State != game.StatePlaying {
		return 0, false
	}

	s.play(game.SoundShoot)

	id, ok := s.hitTest.PointQuery(x, y)
	if !ok {
		return 0, false
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return 0, false
	}

	s.entityManager.DestroyEntity(id)
	s.hitTest.Remove(id)
	session.AddScore(session.Config.ScorePerHit)
	entities.NewHitBurst(s.entityManager, session.Config, session.Rand, pos.X, pos.Y)
	s.play(game.SoundHit)

	log.Printf("[ShootingSystem] Hit bird %d at (%.0f, %.0f), score=%d", id, pos.X, pos.Y, session.Score)
	return id, true
}

func (s *ShootingSystem) play(soundID string) {
	if s.sounds != nil {
		s.sounds.PlaySound(soundID)
	}
}
