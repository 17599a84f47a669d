package config

import "testing"

// TestTitleLayout 测试标题页文字位置
func TestTitleLayout(t *testing.T) {
	titleY, promptY, hintY := TitleLayout(GameWindowHeight)

	if titleY != 240 {
		t.Errorf("titleY: got %v, want 240", titleY)
	}
	if promptY != 320 {
		t.Errorf("promptY: got %v, want 320", promptY)
	}
	if hintY != 360 {
		t.Errorf("hintY: got %v, want 360", hintY)
	}
}

// TestGameOverLayout 测试结束页文字位置
func TestGameOverLayout(t *testing.T) {
	bannerY, promptY := GameOverLayout(GameWindowHeight)
	if bannerY >= promptY {
		t.Errorf("banner (%v) should be above prompt (%v)", bannerY, promptY)
	}
	if bannerY != 270 || promptY != 330 {
		t.Errorf("got (%v, %v), want (270, 330)", bannerY, promptY)
	}
}
