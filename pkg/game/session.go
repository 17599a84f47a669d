package game

import (
	"math/rand"
	"time"

	"github.com/decker502/discobird/pkg/config"
)

// DifficultyState 当前难度
// SpawnInterval 与 BirdSpeed 只会向下限单调收紧
type DifficultyState struct {
	SpawnInterval int     // 生成间隔（tick）
	BirdSpeed     float64 // 新生成鸟的水平速度（负数，向左）
	Timer         int     // 距上次加难经过的 tick
}

// Session 一次游戏会话的全部可变状态
// 由游戏主循环独占，不需要加锁
type Session struct {
	Config *config.GameplayConfig
	Rand   *rand.Rand

	State ScreenState

	Score         int
	TimeRemaining int // 剩余秒数
	Tick          int // 本局经过的 tick（仅 Playing 时递增）
	SpawnTimer    int // 距下一次生成的 tick

	Difficulty DifficultyState

	// BackgroundTimer 背景动画计时，所有状态下都递增，重开一局不清零
	BackgroundTimer int
}

// NewSession 创建会话
// seed 为 0 时使用当前时间
func NewSession(cfg *config.GameplayConfig, seed int64) *Session {
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(seed)),
		State:  StateStart,
	}
	s.Reset()
	return s
}

// Reset 重置本局数值（分数、时间、难度、生成计时）
// 不改变 State 与 BackgroundTimer
func (s *Session) Reset() {
	s.Score = 0
	s.TimeRemaining = s.Config.RoundSeconds
	s.Tick = 0
	s.SpawnTimer = 0
	s.Difficulty = DifficultyState{
		SpawnInterval: s.Config.Difficulty.InitialSpawnInterval,
		BirdSpeed:     s.Config.Difficulty.InitialBirdSpeed,
	}
}

// AddScore 增加分数，负数被忽略（分数只增不减）
func (s *Session) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.Score += points
}

// AdvanceClock 推进一个 tick 的倒计时
// 每 TicksPerSecond 个 tick 剩余时间减一秒；返回本局是否到时
func (s *Session) AdvanceClock() bool {
	s.Tick++
	if s.Tick%s.Config.TicksPerSecond == 0 && s.TimeRemaining > 0 {
		s.TimeRemaining--
	}
	return s.TimeRemaining <= 0
}

// ApplyConfig 热重载时替换配置
// 当前难度被限制在新配置的范围内，本局其余数值不变
func (s *Session) ApplyConfig(cfg *config.GameplayConfig) {
	if cfg == nil {
		return
	}
	s.Config = cfg

	d := &s.Difficulty
	if d.SpawnInterval > cfg.Difficulty.InitialSpawnInterval {
		d.SpawnInterval = cfg.Difficulty.InitialSpawnInterval
	}
	if d.SpawnInterval < cfg.Difficulty.MinSpawnInterval {
		d.SpawnInterval = cfg.Difficulty.MinSpawnInterval
	}
	if d.BirdSpeed > cfg.Difficulty.InitialBirdSpeed {
		d.BirdSpeed = cfg.Difficulty.InitialBirdSpeed
	}
	if d.BirdSpeed < cfg.Difficulty.MaxBirdSpeed {
		d.BirdSpeed = cfg.Difficulty.MaxBirdSpeed
	}
}
