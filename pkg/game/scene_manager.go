package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 每个 ScreenState 对应一个场景；Transition 通过状态机校验后切换场景。
type SceneManager struct {
	currentScene Scene
	machine      *StateMachine
	scenes       map[ScreenState]Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Register and Enter to set the initial scene.
func NewSceneManager(session *Session) *SceneManager {
	sm := &SceneManager{
		machine: NewStateMachine(session),
		scenes:  make(map[ScreenState]Scene),
	}
	return sm
}

// Register 为状态注册场景
func (sm *SceneManager) Register(state ScreenState, scene Scene) {
	sm.scenes[state] = scene
}

// StateMachine 返回底层状态机（用于注册进入回调）
func (sm *SceneManager) StateMachine() *StateMachine {
	return sm.machine
}

// State 返回当前状态
func (sm *SceneManager) State() ScreenState {
	return sm.machine.Current()
}

// Enter 不经状态机校验，直接激活当前状态对应的场景
// 用于启动时设置初始场景
func (sm *SceneManager) Enter(state ScreenState) error {
	scene, ok := sm.scenes[state]
	if !ok {
		return fmt.Errorf("no scene registered for state %s", state)
	}
	sm.machine.session.State = state
	sm.SwitchTo(scene)
	if enterer, ok := scene.(Enterer); ok {
		enterer.OnEnter(state)
	}
	return nil
}

// Transition 校验并切换到目标状态，然后激活对应场景
func (sm *SceneManager) Transition(to ScreenState) error {
	scene, ok := sm.scenes[to]
	if !ok {
		return fmt.Errorf("no scene registered for state %s", to)
	}

	from := sm.machine.Current()
	if err := sm.machine.Transition(to); err != nil {
		return err
	}

	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 切换场景: %s -> %s", from, to)

	if enterer, ok := scene.(Enterer); ok {
		enterer.OnEnter(from)
	}
	return nil
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
