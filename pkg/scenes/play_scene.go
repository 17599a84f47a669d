package scenes

import (
	"log"

	"github.com/decker502/discobird/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayScene 游戏进行中
type PlayScene struct {
	*Shared
}

// NewPlayScene 创建游戏场景
func NewPlayScene(shared *Shared) *PlayScene {
	return &PlayScene{Shared: shared}
}

// OnEnter 开始新的一局：清空分数、时间、难度和所有实体，播放音乐
func (p *PlayScene) OnEnter(from game.ScreenState) {
	p.Session.Reset()
	p.World.Reset()
	if p.Audio != nil {
		p.Audio.StartRoundMusic(game.MusicDisco)
	}
	log.Printf("[PlayScene] Round started (seconds=%d, spawnInterval=%d)",
		p.Session.TimeRemaining, p.Session.Difficulty.SpawnInterval)
}

// Update 处理点击并推进一个 tick；倒计时归零时切换到结束页
func (p *PlayScene) Update(deltaTime float64) {
	presses := p.presses()
	if !p.World.Update(p.Session, presses) {
		return
	}

	log.Printf("[PlayScene] Time up, score=%d", p.Session.Score)
	if err := p.SceneManager.Transition(game.StateGameOver); err != nil {
		log.Printf("[PlayScene] Warning: %v", err)
	}
}

// Draw 背景、鸟与粒子、分数和倒计时
func (p *PlayScene) Draw(screen *ebiten.Image) {
	p.Background.Draw(screen, p.Session.BackgroundTimer)
	p.Entities.Draw(screen)
	p.HUD.DrawHUD(screen, p.Session)
}
