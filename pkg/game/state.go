package game

import (
	"errors"
	"fmt"
	"log"
)

// ScreenState 当前屏幕（每个会话同一时刻只有一个）
type ScreenState int

const (
	// StateStart 标题页，等待点击开始
	StateStart ScreenState = iota
	// StatePlaying 游戏进行中
	StatePlaying
	// StateGameOver 本局结束，等待点击返回标题
	StateGameOver
)

// String 返回状态名称（用于日志）
func (s ScreenState) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("ScreenState(%d)", int(s))
	}
}

// ErrInvalidTransition 非法的状态转换
var ErrInvalidTransition = errors.New("invalid screen transition")

// CanTransition 检查状态转换是否合法
//
//	Start    --点击-->    Playing
//	Playing  --倒计时结束--> GameOver
//	GameOver --点击-->    Start
func CanTransition(from, to ScreenState) bool {
	switch from {
	case StateStart:
		return to == StatePlaying
	case StatePlaying:
		return to == StateGameOver
	case StateGameOver:
		return to == StateStart
	default:
		return false
	}
}

// EnterFunc 进入某个状态时的回调，from 为之前的状态
type EnterFunc func(from ScreenState)

// StateMachine 屏幕状态机
// 当前状态保存在 Session.State 中，状态机只负责校验转换并触发回调
type StateMachine struct {
	session *Session
	onEnter map[ScreenState][]EnterFunc
}

// NewStateMachine 创建状态机
func NewStateMachine(session *Session) *StateMachine {
	return &StateMachine{
		session: session,
		onEnter: make(map[ScreenState][]EnterFunc),
	}
}

// Current 返回当前状态
func (m *StateMachine) Current() ScreenState {
	return m.session.State
}

// OnEnter 注册进入状态时的回调，按注册顺序调用
func (m *StateMachine) OnEnter(state ScreenState, fn EnterFunc) {
	m.onEnter[state] = append(m.onEnter[state], fn)
}

// Transition 切换到目标状态
// 非法转换返回 ErrInvalidTransition，状态保持不变
func (m *StateMachine) Transition(to ScreenState) error {
	from := m.session.State
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	m.session.State = to
	log.Printf("[StateMachine] %s -> %s", from, to)

	for _, fn := range m.onEnter[to] {
		fn(from)
	}
	return nil
}
