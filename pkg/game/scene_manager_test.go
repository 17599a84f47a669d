package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	enteredFrom  []ScreenState
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// OnEnter records the previous state.
func (m *MockScene) OnEnter(from ScreenState) {
	m.enteredFrom = append(m.enteredFrom, from)
}

// newTestSceneManager 创建注册了三个场景的管理器
func newTestSceneManager() (*SceneManager, map[ScreenState]*MockScene) {
	sm := NewSceneManager(NewSession(nil, 1))
	scenes := map[ScreenState]*MockScene{
		StateStart:    {},
		StatePlaying:  {},
		StateGameOver: {},
	}
	for state, scene := range scenes {
		sm.Register(state, scene)
	}
	return sm, scenes
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager(NewSession(nil, 1))
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
	if sm.State() != StateStart {
		t.Errorf("Expected initial state Start, got %s", sm.State())
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager(NewSession(nil, 1))
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager(NewSession(nil, 1))
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager(NewSession(nil, 1))
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerEnter 启动时直接进入标题场景
func TestSceneManagerEnter(t *testing.T) {
	sm, scenes := newTestSceneManager()

	if err := sm.Enter(StateStart); err != nil {
		t.Fatalf("Enter error: %v", err)
	}
	if sm.GetCurrentScene() != scenes[StateStart] {
		t.Error("Enter did not activate the start scene")
	}
	if len(scenes[StateStart].enteredFrom) != 1 {
		t.Errorf("OnEnter called %d times, want 1", len(scenes[StateStart].enteredFrom))
	}

	empty := NewSceneManager(NewSession(nil, 1))
	if err := empty.Enter(StatePlaying); err == nil {
		t.Error("Expected error for unregistered state")
	}
}

// TestSceneManagerFullCycle Start -> Playing -> GameOver -> Start
func TestSceneManagerFullCycle(t *testing.T) {
	sm, scenes := newTestSceneManager()
	if err := sm.Enter(StateStart); err != nil {
		t.Fatalf("Enter error: %v", err)
	}

	steps := []ScreenState{StatePlaying, StateGameOver, StateStart}
	for _, to := range steps {
		from := sm.State()
		if err := sm.Transition(to); err != nil {
			t.Fatalf("Transition %s -> %s error: %v", from, to, err)
		}
		if sm.State() != to {
			t.Errorf("State after transition: got %s, want %s", sm.State(), to)
		}
		if sm.GetCurrentScene() != scenes[to] {
			t.Errorf("Current scene not switched to %s", to)
		}
		entered := scenes[to].enteredFrom
		if entered[len(entered)-1] != from {
			t.Errorf("OnEnter(%s): got from=%s, want %s", to, entered[len(entered)-1], from)
		}
	}
}

// TestSceneManagerRejectsInvalidTransition 非法转换不改变场景
func TestSceneManagerRejectsInvalidTransition(t *testing.T) {
	sm, scenes := newTestSceneManager()
	if err := sm.Enter(StateStart); err != nil {
		t.Fatalf("Enter error: %v", err)
	}

	err := sm.Transition(StateGameOver)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition, got %v", err)
	}
	if sm.State() != StateStart {
		t.Errorf("State changed to %s after rejected transition", sm.State())
	}
	if sm.GetCurrentScene() != scenes[StateStart] {
		t.Error("Scene changed after rejected transition")
	}
}

// TestStateMachineOnEnter 进入回调按注册顺序调用
func TestStateMachineOnEnter(t *testing.T) {
	session := NewSession(nil, 1)
	m := NewStateMachine(session)

	var calls []string
	m.OnEnter(StatePlaying, func(from ScreenState) { calls = append(calls, "first:"+from.String()) })
	m.OnEnter(StatePlaying, func(from ScreenState) { calls = append(calls, "second") })

	if err := m.Transition(StatePlaying); err != nil {
		t.Fatalf("Transition error: %v", err)
	}
	if len(calls) != 2 || calls[0] != "first:Start" || calls[1] != "second" {
		t.Errorf("Unexpected callback order: %v", calls)
	}
	if session.State != StatePlaying {
		t.Errorf("Session.State: got %s, want Playing", session.State)
	}

	// Playing 不能直接回到 Start
	if err := m.Transition(StateStart); err == nil {
		t.Error("Expected Playing -> Start to be rejected")
	}
}

func TestCanTransition(t *testing.T) {
	states := []ScreenState{StateStart, StatePlaying, StateGameOver}
	allowed := map[[2]ScreenState]bool{
		{StateStart, StatePlaying}:    true,
		{StatePlaying, StateGameOver}: true,
		{StateGameOver, StateStart}:   true,
	}
	for _, from := range states {
		for _, to := range states {
			want := allowed[[2]ScreenState{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
	if ScreenState(9).String() != "ScreenState(9)" {
		t.Errorf("unexpected name for unknown state: %s", ScreenState(9))
	}
}
