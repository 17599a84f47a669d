package config

// 布局配置常量
// 本文件定义窗口与画布尺寸，以及文字叠加层的固定位置

// Canvas (逻辑画布)
// 所有坐标都是逻辑像素，Ebitengine 负责缩放到实际窗口
const (
	// GameWindowWidth 逻辑画布宽度
	GameWindowWidth = 800

	// GameWindowHeight 逻辑画布高度
	GameWindowHeight = 600

	// WindowTitle 窗口标题
	WindowTitle = "Disco Bird Shootout"
)

// HUD 与文字叠加层
const (
	// HUDMargin 分数/时间文字距画布左右边缘的距离
	HUDMargin = 10.0

	// HUDCenterY 分数/时间文字的垂直中心
	HUDCenterY = 30.0

	// HUDFontSize 分数/时间字号
	HUDFontSize = 24.0

	// TitleFontSize 标题与 GAME OVER 字号
	TitleFontSize = 48.0

	// SubtitleFontSize 提示文字字号（开始/重开/音乐开关）
	SubtitleFontSize = 20.0

	// TextShadowOffset 文字阴影偏移（像素）
	TextShadowOffset = 2.0
)

// 以下坐标都是文字的垂直中心

// TitleLayout 返回标题页三行文字的Y坐标
func TitleLayout(height float64) (titleY, promptY, hintY float64) {
	return height/2 - 60, height/2 + 20, height/2 + 60
}

// GameOverLayout 返回结束页两行文字的Y坐标
func GameOverLayout(height float64) (bannerY, promptY float64) {
	return height/2 - 30, height/2 + 30
}
