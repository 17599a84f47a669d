package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the game (title, playing, game over).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterer 是一个可选接口，场景被切换为当前场景时调用 OnEnter
type Enterer interface {
	// OnEnter 在场景成为当前场景后调用，from 为切换前的状态
	OnEnter(from ScreenState)
}
