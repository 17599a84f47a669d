package systems

import (
	"log"

	"github.com/decker502/discobird/pkg/ecs"
	"github.com/decker502/discobird/pkg/entities"
	"github.com/decker502/discobird/pkg/game"
)

// BirdSpawnSystem 管理鸟的定时生成
// 计时器每 tick 减一，归零时在右边缘外生成一只鸟并按当前难度重置计时
type BirdSpawnSystem struct {
	entityManager *ecs.EntityManager
}

// NewBirdSpawnSystem 创建生成系统
func NewBirdSpawnSystem(em *ecs.EntityManager) *BirdSpawnSystem {
	return &BirdSpawnSystem{entityManager: em}
}

// Update 推进生成计时器
// 返回本 tick 生成的鸟（没有生成时第二个返回值为 false）
func (s *BirdSpawnSystem) Update(session *game.Session) (ecs.EntityID, bool) {
	session.SpawnTimer--
	if session.SpawnTimer > 0 {
		return 0, false
	}
	session.SpawnTimer = session.Difficulty.SpawnInterval

	x, y := entities.SpawnPosition(session.Config, session.Rand)
	id, err := entities.NewBirdEntity(s.entityManager, session, x, y)
	if err != nil {
		log.Printf("[BirdSpawnSystem] WARNING: Failed to spawn bird: %v", err)
		return 0, false
	}
	return id, true
}
