package scenes

import (
	"log"

	"github.com/decker502/discobird/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene 结束页：鸟静止，粒子继续飞散，点击返回标题页
type GameOverScene struct {
	*Shared
}

// NewGameOverScene 创建结束场景
func NewGameOverScene(shared *Shared) *GameOverScene {
	return &GameOverScene{Shared: shared}
}

// OnEnter 播放结束音效并暂停音乐
func (g *GameOverScene) OnEnter(from game.ScreenState) {
	g.playSound(game.SoundGameOver)
	if g.Audio != nil {
		g.Audio.PauseMusic()
	}
}

// Update 推进粒子；点击后回到标题页
func (g *GameOverScene) Update(deltaTime float64) {
	presses := g.presses()
	g.World.Update(g.Session, nil)

	if len(presses) == 0 {
		return
	}
	if err := g.SceneManager.Transition(game.StateStart); err != nil {
		log.Printf("[GameOverScene] Warning: %v", err)
	}
}

// Draw 与游戏页相同，再叠加 GAME OVER 文字
func (g *GameOverScene) Draw(screen *ebiten.Image) {
	g.Background.Draw(screen, g.Session.BackgroundTimer)
	g.Entities.Draw(screen)
	g.HUD.DrawHUD(screen, g.Session)
	g.HUD.DrawGameOver(screen)
}
