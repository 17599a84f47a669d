package systems

import (
	"log"

	"github.com/decker502/discobird/pkg/game"
)

// DifficultySystem 难度递增
// 每隔 CadenceTicks 个 tick 缩短生成间隔、加快鸟速，两者都不越过配置的极限
type DifficultySystem struct{}

// NewDifficultySystem 创建难度系统
func NewDifficultySystem() *DifficultySystem {
	return &DifficultySystem{}
}

// Update 推进一个 tick
// 返回本 tick 是否加难
func (s *DifficultySystem) Update(session *game.Session) bool {
	cfg := session.Config.Difficulty
	d := &session.Difficulty

	d.Timer++
	if d.Timer < cfg.CadenceTicks {
		return false
	}
	d.Timer = 0

	if d.SpawnInterval > cfg.MinSpawnInterval {
		d.SpawnInterval -= cfg.SpawnIntervalStep
		if d.SpawnInterval < cfg.MinSpawnInterval {
			d.SpawnInterval = cfg.MinSpawnInterval
		}
	}

	// 速度为负数，"更快"即更小
	if d.BirdSpeed > cfg.MaxBirdSpeed {
		d.BirdSpeed -= cfg.BirdSpeedStep
		if d.BirdSpeed < cfg.MaxBirdSpeed {
			d.BirdSpeed = cfg.MaxBirdSpeed
		}
	}

	log.Printf("[DifficultySystem] spawnInterval=%d birdSpeed=%.2f", d.SpawnInterval, d.BirdSpeed)
	return true
}
