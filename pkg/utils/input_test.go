package utils

import "testing"

func TestStaticPointers(t *testing.T) {
	src := StaticPointers(
		[]Pointer{{X: 10, Y: 20}},
		nil,
		[]Pointer{{X: 1, Y: 2}, {X: 3, Y: 4}},
	)

	if got := src(); len(got) != 1 || got[0].X != 10 || got[0].Y != 20 {
		t.Errorf("frame 0 = %v, want [{10 20}]", got)
	}
	if got := src(); len(got) != 0 {
		t.Errorf("frame 1 = %v, want empty", got)
	}
	if got := src(); len(got) != 2 {
		t.Errorf("frame 2 = %v, want two pointers", got)
	}
	if got := src(); got != nil {
		t.Errorf("exhausted source should return nil, got %v", got)
	}
}

// 没有运行游戏循环时不会有按下事件
func TestJustPressedPointersIdle(t *testing.T) {
	if got := JustPressedPointers(); len(got) != 0 {
		t.Errorf("expected no pointers outside the game loop, got %v", got)
	}
	if pressed, _, _ := IsPointerJustPressed(); pressed {
		t.Error("IsPointerJustPressed should be false outside the game loop")
	}
}
