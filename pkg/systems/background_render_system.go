package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/discobird/internal/particle"
	"github.com/decker502/discobird/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BackgroundRenderSystem 迪斯科背景
//   - 画布铺满方格，颜色随时间和格子位置循环滚动
//   - 一个白色径向高光沿椭圆轨迹移动
//
// 高光图像只在创建时生成一次，之后每帧平移绘制
type BackgroundRenderSystem struct {
	cfg       *config.GameplayConfig
	palette   []color.RGBA
	width     float64
	height    float64
	radius    float64
	highlight *ebiten.Image
}

// NewBackgroundRenderSystem 创建背景渲染系统
func NewBackgroundRenderSystem(cfg *config.GameplayConfig) *BackgroundRenderSystem {
	s := &BackgroundRenderSystem{
		width:  config.GameWindowWidth,
		height: config.GameWindowHeight,
		radius: config.GameWindowWidth / 2,
	}
	s.SetConfig(cfg)
	return s
}

// SetConfig 热重载时替换配置并重建高光图像
func (s *BackgroundRenderSystem) SetConfig(cfg *config.GameplayConfig) {
	s.cfg = cfg
	s.palette = cfg.PaletteColors()
	s.highlight = ebiten.NewImageFromImage(buildHighlight(int(s.radius), cfg.Background.HighlightStops))
}

// Draw 绘制背景
// timer 为 Session.BackgroundTimer
func (s *BackgroundRenderSystem) Draw(screen *ebiten.Image, timer int) {
	tile := s.cfg.Background.TileSize
	cols := int(math.Ceil(s.width / float64(tile)))
	rows := int(math.Ceil(s.height / float64(tile)))

	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			idx := tileColorIndex(timer, i, j, s.cfg.Background.ColorStepTicks, len(s.palette))
			vector.DrawFilledRect(screen,
				float32(i*tile), float32(j*tile), float32(tile), float32(tile),
				s.palette[idx], false)
		}
	}

	cx, cy := highlightCenter(timer, s.width, s.height, s.cfg.Background.HighlightPeriod)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-s.radius, cy-s.radius)
	screen.DrawImage(s.highlight, op)
}

// tileColorIndex 方格 (i, j) 在时刻 timer 的调色板下标
// 调色板最后一个颜色（白色）只用于粒子，不参与方格循环
func tileColorIndex(timer, i, j int, stepTicks float64, paletteLen int) int {
	n := paletteLen - 1
	if n < 1 {
		return 0
	}
	idx := int(math.Floor(float64(timer)/stepTicks+float64(i+j))) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// highlightCenter 高光中心：围绕画布中心的椭圆轨迹，半轴为画布的 1/3
func highlightCenter(timer int, width, height, period float64) (float64, float64) {
	t := float64(timer) / period
	return width/2 + math.Sin(t)*(width/3), height/2 + math.Cos(t)*(height/3)
}

// buildHighlight 生成 2r×2r 的白色径向渐变（预乘 alpha）
// alpha 由色标按到中心的归一化距离线性插值，半径之外为 0
func buildHighlight(radius int, stops []particle.Keyframe) *image.RGBA {
	size := radius * 2
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(radius)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			d := math.Hypot(dx, dy) / r
			if d >= 1 {
				continue
			}
			a := particle.EvaluateKeyframes(stops, d, "linear")
			if a <= 0 {
				continue
			}
			v := uint8(math.Round(a * 255))
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return img
}
