package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/discobird/pkg/config"
	"github.com/decker502/discobird/pkg/game"
	"github.com/decker502/discobird/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 叠加层文字
const (
	TitleText         = "DISCO BIRD SHOOTOUT"
	StartPromptText   = "Click to Start!"
	MusicHintText     = "'M' to Toggle Music"
	GameOverText      = "GAME OVER"
	RestartPromptText = "Click to Restart"
)

// FontLoader 按字号加载字体，由 game.ResourceManager 实现
type FontLoader interface {
	LoadFont(size float64) (*text.GoTextFace, error)
}

// HUDRenderSystem 绘制分数、倒计时以及标题页和结束页的文字
// 文字颜色与阴影颜色取自背景调色板
type HUDRenderSystem struct {
	hudFace      *text.GoTextFace
	titleFace    *text.GoTextFace
	subtitleFace *text.GoTextFace

	popColor color.Color
	palette  []color.RGBA
}

// NewHUDRenderSystem 创建文字渲染系统
// 字体加载失败返回错误
func NewHUDRenderSystem(fonts FontLoader, cfg *config.GameplayConfig) (*HUDRenderSystem, error) {
	hud, err := fonts.LoadFont(config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	title, err := fonts.LoadFont(config.TitleFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}
	subtitle, err := fonts.LoadFont(config.SubtitleFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load subtitle font: %w", err)
	}

	s := &HUDRenderSystem{
		hudFace:      hud,
		titleFace:    title,
		subtitleFace: subtitle,
	}
	s.SetConfig(cfg)
	return s, nil
}

// SetConfig 更新颜色配置
func (s *HUDRenderSystem) SetConfig(cfg *config.GameplayConfig) {
	s.palette = cfg.PaletteColors()
	pop, err := config.ParseHexColor(cfg.Text.PopColor)
	if err != nil {
		log.Printf("[HUDRenderSystem] Warning: invalid pop color %q: %v", cfg.Text.PopColor, err)
		pop = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	s.popColor = pop
}

// paletteColor 调色板第 i 个颜色（越界时取模）
func (s *HUDRenderSystem) paletteColor(i int) color.RGBA {
	if len(s.palette) == 0 {
		return color.RGBA{A: 0xff}
	}
	return s.palette[i%len(s.palette)]
}

func (s *HUDRenderSystem) style(face *text.GoTextFace, clr, shadow color.Color, align text.Align) utils.TextStyle {
	return utils.TextStyle{
		Face:         face,
		Color:        clr,
		ShadowColor:  shadow,
		ShadowOffset: config.TextShadowOffset,
		Align:        align,
	}
}

// ScoreLabel 分数文字
func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// TimeLabel 倒计时文字
func TimeLabel(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("Time: %d", seconds)
}

// DrawHUD 左上角分数，右上角剩余时间
func (s *HUDRenderSystem) DrawHUD(screen *ebiten.Image, session *game.Session) {
	shadow := s.paletteColor(0)
	utils.DrawShadowedText(screen, ScoreLabel(session.Score),
		config.HUDMargin, config.HUDCenterY,
		s.style(s.hudFace, s.popColor, shadow, text.AlignStart))
	utils.DrawShadowedText(screen, TimeLabel(session.TimeRemaining),
		config.GameWindowWidth-config.HUDMargin, config.HUDCenterY,
		s.style(s.hudFace, s.popColor, shadow, text.AlignEnd))
}

// DrawTitle 标题页：标题、开始提示、音乐开关提示
func (s *HUDRenderSystem) DrawTitle(screen *ebiten.Image) {
	cx := float64(config.GameWindowWidth) / 2
	titleY, promptY, hintY := config.TitleLayout(config.GameWindowHeight)

	utils.DrawShadowedText(screen, TitleText, cx, titleY,
		s.style(s.titleFace, s.paletteColor(1), s.paletteColor(0), text.AlignCenter))
	utils.DrawShadowedText(screen, StartPromptText, cx, promptY,
		s.style(s.subtitleFace, s.popColor, s.paletteColor(0), text.AlignCenter))
	utils.DrawShadowedText(screen, MusicHintText, cx, hintY,
		s.style(s.subtitleFace, s.popColor, s.paletteColor(0), text.AlignCenter))
}

// DrawGameOver 结束页：GAME OVER 与重开提示
func (s *HUDRenderSystem) DrawGameOver(screen *ebiten.Image) {
	cx := float64(config.GameWindowWidth) / 2
	bannerY, promptY := config.GameOverLayout(config.GameWindowHeight)

	utils.DrawShadowedText(screen, GameOverText, cx, bannerY,
		s.style(s.titleFace, s.paletteColor(0), s.paletteColor(1), text.AlignCenter))
	utils.DrawShadowedText(screen, RestartPromptText, cx, promptY,
		s.style(s.subtitleFace, s.popColor, s.paletteColor(2), text.AlignCenter))
}
