package scenes

import (
	"log"

	"github.com/decker502/discobird/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleScene 标题页：背景动画 + 标题文字，点击任意位置开始
type TitleScene struct {
	*Shared
}

// NewTitleScene 创建标题场景
func NewTitleScene(shared *Shared) *TitleScene {
	return &TitleScene{Shared: shared}
}

// OnEnter 进入标题页
func (t *TitleScene) OnEnter(from game.ScreenState) {
	log.Printf("[TitleScene] Entered from %s", from)
}

// Update 推进背景与残留粒子；点击后进入游戏
func (t *TitleScene) Update(deltaTime float64) {
	presses := t.presses()
	t.World.Update(t.Session, nil)

	if len(presses) == 0 {
		return
	}
	if err := t.SceneManager.Transition(game.StatePlaying); err != nil {
		log.Printf("[TitleScene] Warning: %v", err)
	}
}

// Draw 背景 + 标题文字（不绘制实体）
func (t *TitleScene) Draw(screen *ebiten.Image) {
	t.Background.Draw(screen, t.Session.BackgroundTimer)
	t.HUD.DrawTitle(screen)
}
