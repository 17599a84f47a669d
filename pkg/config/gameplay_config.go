package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/discobird/internal/particle"
	"github.com/decker502/discobird/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// GameplayConfigPath 玩法配置在嵌入文件系统中的路径
const GameplayConfigPath = "data/gameplay.yaml"

// GameplayConfig 玩法数值配置
// 所有数值以 tick 为时间单位（默认每秒 60 tick），位移单位为逻辑像素
type GameplayConfig struct {
	TicksPerSecond int              `yaml:"ticksPerSecond"` // 每秒 tick 数
	RoundSeconds   int              `yaml:"roundSeconds"`   // 每局时长（秒）
	ScorePerHit    int              `yaml:"scorePerHit"`    // 每次命中得分
	Difficulty     DifficultyConfig `yaml:"difficulty"`     // 难度递增
	Bird           BirdConfig       `yaml:"bird"`           // 鸟的外观与运动
	HitBurst       HitBurstConfig   `yaml:"hitBurst"`       // 命中粒子爆发
	Background     BackgroundConfig `yaml:"background"`     // 迪斯科背景
	Text           TextConfig       `yaml:"text"`           // 文字颜色
	Audio          AudioConfig      `yaml:"audio"`          // 默认音量
}

// DifficultyConfig 难度递增配置
// 每隔 CadenceTicks 个 tick，生成间隔减少 SpawnIntervalStep，鸟速增加 BirdSpeedStep
// 鸟速为负数（向左飞），MaxBirdSpeed 是速度的下限
type DifficultyConfig struct {
	InitialSpawnInterval int     `yaml:"initialSpawnInterval"`
	MinSpawnInterval     int     `yaml:"minSpawnInterval"`
	SpawnIntervalStep    int     `yaml:"spawnIntervalStep"`
	InitialBirdSpeed     float64 `yaml:"initialBirdSpeed"`
	MaxBirdSpeed         float64 `yaml:"maxBirdSpeed"`
	BirdSpeedStep        float64 `yaml:"birdSpeedStep"`
	CadenceTicks         int     `yaml:"cadenceTicks"`
}

// BirdConfig 鸟的配置
type BirdConfig struct {
	Width         float64        `yaml:"width"`
	Height        float64        `yaml:"height"`
	RotationSpeed float64        `yaml:"rotationSpeed"` // 弧度/tick
	ShineStep     float64        `yaml:"shineStep"`     // 描边闪烁相位增量/tick
	Amplitude     particle.Range `yaml:"amplitude"`     // 正弦振幅范围
	Frequency     particle.Range `yaml:"frequency"`     // 正弦频率绝对值范围，符号随机
	SpawnMargin   float64        `yaml:"spawnMargin"`   // 生成时距上下边缘的留白
	FillColor     string         `yaml:"fillColor"`
	OutlineColor  string         `yaml:"outlineColor"`
}

// HitBurstConfig 命中粒子配置
type HitBurstConfig struct {
	Count     int            `yaml:"count"`
	Size      float64        `yaml:"size"`
	BaseSpeed float64        `yaml:"baseSpeed"`
	TTL       particle.Range `yaml:"ttl"` // 生命周期范围（tick）
}

// BackgroundConfig 背景配置
type BackgroundConfig struct {
	TileSize        int                 `yaml:"tileSize"`
	ColorStepTicks  float64             `yaml:"colorStepTicks"`  // 每隔多少 tick 颜色前进一格
	HighlightPeriod float64             `yaml:"highlightPeriod"` // 高光轨迹 sin/cos 的时间除数
	Palette         []string            `yaml:"palette"`
	HighlightStops  []particle.Keyframe `yaml:"highlightStops"` // 高光 alpha 色标（半径归一化）
}

// TextConfig 文字颜色
// 阴影颜色取自背景调色板
type TextConfig struct {
	PopColor string `yaml:"popColor"`
}

// AudioConfig 默认音量
type AudioConfig struct {
	MusicVolume float64 `yaml:"musicVolume"`
	SoundVolume float64 `yaml:"soundVolume"`
}

// DefaultGameplayConfig 返回默认玩法配置
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		TicksPerSecond: 60,
		RoundSeconds:   60,
		ScorePerHit:    10,
		Difficulty: DifficultyConfig{
			InitialSpawnInterval: 90,
			MinSpawnInterval:     30,
			SpawnIntervalStep:    5,
			InitialBirdSpeed:     -2,
			MaxBirdSpeed:         -5,
			BirdSpeedStep:        0.15,
			CadenceTicks:         600,
		},
		Bird: BirdConfig{
			Width:         40,
			Height:        30,
			RotationSpeed: 0.03,
			ShineStep:     0.1,
			Amplitude:     particle.Range{Min: 20, Max: 60},
			Frequency:     particle.Range{Min: 0.015, Max: 0.035},
			SpawnMargin:   50,
			FillColor:     "#00FFFF",
			OutlineColor:  "#FFFF00",
		},
		HitBurst: HitBurstConfig{
			Count:     15,
			Size:      5,
			BaseSpeed: 2,
			TTL:       particle.Range{Min: 20, Max: 50},
		},
		Background: BackgroundConfig{
			TileSize:        50,
			ColorStepTicks:  10,
			HighlightPeriod: 200,
			Palette:         []string{"#FF00FF", "#FFFF00", "#00FFFF", "#FF69B4", "#7D05F2", "#F8CA00", "#FFFFFF"},
			HighlightStops: []particle.Keyframe{
				{Time: 0, Value: 0.15},
				{Time: 0.2, Value: 0.10},
				{Time: 0.4, Value: 0.05},
				{Time: 1, Value: 0},
			},
		},
		Text: TextConfig{
			PopColor: "#FFFFFF",
		},
		Audio: AudioConfig{
			MusicVolume: 0.4,
			SoundVolume: 0.6,
		},
	}
}

// LoadGameplayConfig 从 YAML 文件加载玩法配置
func LoadGameplayConfig(filePath string) (*GameplayConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config file: %w", err)
	}
	return ParseGameplayConfig(data)
}

// LoadEmbeddedGameplayConfig 通过 embedded 包加载玩法配置
// 设置了覆盖目录时优先读取磁盘文件
func LoadEmbeddedGameplayConfig() (*GameplayConfig, error) {
	data, err := embedded.ReadFile(GameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameplayConfigPath, err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 解析 YAML 数据
// 未出现的字段保留默认值
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config YAML: %w", err)
	}

	if err := validateGameplayConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// RoundTicks 一局的总 tick 数
func (c *GameplayConfig) RoundTicks() int {
	return c.RoundSeconds * c.TicksPerSecond
}

// PaletteColors 解析调色板
func (c *GameplayConfig) PaletteColors() []color.RGBA {
	colors := make([]color.RGBA, 0, len(c.Background.Palette))
	for _, hex := range c.Background.Palette {
		clr, err := ParseHexColor(hex)
		if err != nil {
			// 已在加载时校验过
			continue
		}
		colors = append(colors, clr)
	}
	return colors
}

// validateGameplayConfig 验证配置的有效性
func validateGameplayConfig(cfg *GameplayConfig) error {
	if cfg.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be positive, got %d", cfg.TicksPerSecond)
	}
	if cfg.RoundSeconds <= 0 {
		return fmt.Errorf("roundSeconds must be positive, got %d", cfg.RoundSeconds)
	}
	if cfg.ScorePerHit <= 0 {
		return fmt.Errorf("scorePerHit must be positive, got %d", cfg.ScorePerHit)
	}

	d := cfg.Difficulty
	if d.MinSpawnInterval <= 0 {
		return fmt.Errorf("difficulty.minSpawnInterval must be positive, got %d", d.MinSpawnInterval)
	}
	if d.InitialSpawnInterval < d.MinSpawnInterval {
		return fmt.Errorf("difficulty.initialSpawnInterval (%d) must not be below minSpawnInterval (%d)",
			d.InitialSpawnInterval, d.MinSpawnInterval)
	}
	if d.SpawnIntervalStep < 0 {
		return fmt.Errorf("difficulty.spawnIntervalStep must not be negative, got %d", d.SpawnIntervalStep)
	}
	if d.InitialBirdSpeed >= 0 {
		return fmt.Errorf("difficulty.initialBirdSpeed must be negative (birds fly left), got %v", d.InitialBirdSpeed)
	}
	if d.MaxBirdSpeed > d.InitialBirdSpeed {
		return fmt.Errorf("difficulty.maxBirdSpeed (%v) must not be slower than initialBirdSpeed (%v)",
			d.MaxBirdSpeed, d.InitialBirdSpeed)
	}
	if d.BirdSpeedStep < 0 {
		return fmt.Errorf("difficulty.birdSpeedStep must not be negative, got %v", d.BirdSpeedStep)
	}
	if d.CadenceTicks <= 0 {
		return fmt.Errorf("difficulty.cadenceTicks must be positive, got %d", d.CadenceTicks)
	}

	b := cfg.Bird
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("bird size must be positive, got %vx%v", b.Width, b.Height)
	}
	if b.Amplitude.Min < 0 {
		return fmt.Errorf("bird.amplitude must not be negative, got %s", b.Amplitude)
	}
	if b.Frequency.Min < 0 {
		return fmt.Errorf("bird.frequency is a magnitude and must not be negative, got %s", b.Frequency)
	}
	if b.SpawnMargin < 0 || 2*b.SpawnMargin+b.Height > GameWindowHeight {
		return fmt.Errorf("bird.spawnMargin %v leaves no room to spawn", b.SpawnMargin)
	}
	if _, err := ParseHexColor(b.FillColor); err != nil {
		return fmt.Errorf("bird.fillColor: %w", err)
	}
	if _, err := ParseHexColor(b.OutlineColor); err != nil {
		return fmt.Errorf("bird.outlineColor: %w", err)
	}

	h := cfg.HitBurst
	if h.Count < 0 {
		return fmt.Errorf("hitBurst.count must not be negative, got %d", h.Count)
	}
	if h.TTL.Min <= 0 {
		return fmt.Errorf("hitBurst.ttl must be positive, got %s", h.TTL)
	}

	bg := cfg.Background
	if bg.TileSize <= 0 {
		return fmt.Errorf("background.tileSize must be positive, got %d", bg.TileSize)
	}
	if bg.ColorStepTicks <= 0 || bg.HighlightPeriod <= 0 {
		return fmt.Errorf("background.colorStepTicks and highlightPeriod must be positive")
	}
	// 背景取色使用 mod (len-1)，至少需要两种颜色
	if len(bg.Palette) < 2 {
		return fmt.Errorf("background.palette needs at least 2 colors, got %d", len(bg.Palette))
	}
	for i, hex := range bg.Palette {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("background.palette[%d]: %w", i, err)
		}
	}
	for i := 1; i < len(bg.HighlightStops); i++ {
		if bg.HighlightStops[i].Time < bg.HighlightStops[i-1].Time {
			return fmt.Errorf("background.highlightStops must be sorted by time")
		}
	}
	if _, err := ParseHexColor(cfg.Text.PopColor); err != nil {
		return fmt.Errorf("text.popColor: %w", err)
	}

	if cfg.Audio.MusicVolume < 0 || cfg.Audio.MusicVolume > 1 {
		return fmt.Errorf("audio.musicVolume must be within [0, 1], got %v", cfg.Audio.MusicVolume)
	}
	if cfg.Audio.SoundVolume < 0 || cfg.Audio.SoundVolume > 1 {
		return fmt.Errorf("audio.soundVolume must be within [0, 1], got %v", cfg.Audio.SoundVolume)
	}

	return nil
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA"
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
