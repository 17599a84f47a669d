package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/config"
	"github.com/decker502/discobird/pkg/ecs"
	"github.com/decker502/discobird/pkg/game"
)

// SpawnPosition 计算新鸟的生成位置
// X 在画布右边缘之外半个身位，Y 在上下留白之间随机
func SpawnPosition(cfg *config.GameplayConfig, rng *rand.Rand) (x, y float64) {
	bird := cfg.Bird
	x = config.GameWindowWidth + bird.Width/2

	span := config.GameWindowHeight - bird.SpawnMargin*2 - bird.Height
	if span < 0 {
		span = 0
	}
	y = rng.Float64()*span + bird.SpawnMargin + bird.Height/2
	return x, y
}

// NewBirdEntity 创建迪斯科鸟实体
// 水平速度取会话当前难度，振幅与频率按配置随机，频率符号随机
//
// 参数:
//   - em: 实体管理器
//   - session: 当前会话（提供配置、随机源和难度）
//   - x, y: 生成位置，y 同时作为正弦运动的基线
//
// 返回:
//   - ecs.EntityID: 鸟实体ID
//   - error: 颜色配置无效时返回错误
func NewBirdEntity(em *ecs.EntityManager, session *game.Session, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if session == nil {
		return 0, fmt.Errorf("session cannot be nil")
	}

	cfg := session.Config.Bird
	fill, err := config.ParseHexColor(cfg.FillColor)
	if err != nil {
		return 0, fmt.Errorf("invalid bird fill color: %w", err)
	}
	outline, err := config.ParseHexColor(cfg.OutlineColor)
	if err != nil {
		return 0, fmt.Errorf("invalid bird outline color: %w", err)
	}

	rng := session.Rand
	amplitude := cfg.Amplitude.Random(rng)
	frequency := cfg.Frequency.Random(rng)
	if rng.Float64() < 0.5 {
		frequency = -frequency
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: session.Difficulty.BirdSpeed})
	em.AddComponent(id, &components.BirdComponent{
		BaseY:         y,
		Amplitude:     amplitude,
		Frequency:     frequency,
		Width:         cfg.Width,
		Height:        cfg.Height,
		RotationSpeed: cfg.RotationSpeed,
		ShineStep:     cfg.ShineStep,
		FillColor:     fill,
		OutlineColor:  outline,
	})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorBird})

	return id, nil
}
