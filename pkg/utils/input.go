// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer 一次指针按下（鼠标左键或触摸）的逻辑坐标
type Pointer struct {
	X, Y float64
}

// PointerSource 返回本帧新按下的指针
// 场景通过它读取输入，测试中可替换为固定序列
type PointerSource func() []Pointer

// JustPressedPointers 收集本帧所有新按下的触摸点和鼠标左键
// 多点触摸时每个新触摸点都算一次按下
func JustPressedPointers() []Pointer {
	var pointers []Pointer

	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		pointers = append(pointers, Pointer{X: float64(x), Y: float64(y)})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pointers = append(pointers, Pointer{X: float64(x), Y: float64(y)})
	}

	return pointers
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及第一个按下位置
func IsPointerJustPressed() (bool, int, int) {
	pointers := JustPressedPointers()
	if len(pointers) == 0 {
		return false, 0, 0
	}
	return true, int(pointers[0].X), int(pointers[0].Y)
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// StaticPointers 返回一个按顺序逐帧吐出按下事件的 PointerSource
// 每次调用消耗一帧；序列耗尽后返回 nil
func StaticPointers(frames ...[]Pointer) PointerSource {
	i := 0
	return func() []Pointer {
		if i >= len(frames) {
			return nil
		}
		f := frames[i]
		i++
		return f
	}
}
