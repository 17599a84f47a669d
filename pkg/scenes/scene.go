// Package scenes 实现标题、游戏、结束三个屏幕
//
// 三个场景共享同一个 Session 与 World：回合结束后鸟停在原地、粒子继续飞散，
// 回到标题页后背景动画不中断。
package scenes

import (
	"github.com/decker502/discobird/pkg/game"
	"github.com/decker502/discobird/pkg/systems"
	"github.com/decker502/discobird/pkg/utils"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Audio 场景用到的音频操作，由 game.AudioManager 实现
type Audio interface {
	PlaySound(soundID string) bool
	StartRoundMusic(musicID string) bool
	PauseMusic()
	OnUserInteraction()
}

// Shared 场景之间共享的状态与系统
type Shared struct {
	Session      *game.Session
	World        *systems.World
	SceneManager *game.SceneManager

	Background *systems.BackgroundRenderSystem
	Entities   *systems.EntityRenderSystem
	HUD        *systems.HUDRenderSystem

	Audio Audio               // 可为 nil（无声）
	Input utils.PointerSource // 本帧新按下的指针
}

// presses 读取本帧的按下事件；有按下时通知音频（用于重试被推迟的音乐）
func (s *Shared) presses() []utils.Pointer {
	if s.Input == nil {
		return nil
	}
	pointers := s.Input()
	if len(pointers) > 0 && s.Audio != nil {
		s.Audio.OnUserInteraction()
	}
	return pointers
}

func (s *Shared) playSound(soundID string) {
	if s.Audio != nil {
		s.Audio.PlaySound(soundID)
	}
}

// Register 创建三个场景并注册到场景管理器
func Register(shared *Shared) {
	sm := shared.SceneManager
	sm.Register(game.StateStart, NewTitleScene(shared))
	sm.Register(game.StatePlaying, NewPlayScene(shared))
	sm.Register(game.StateGameOver, NewGameOverScene(shared))
}
