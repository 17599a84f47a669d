package components

import (
	"image/color"
	"math"
)

// BirdComponent 迪斯科鸟的运动与外观状态
//
// 纵坐标由横坐标决定：Y = BaseY + sin(X * Frequency) * Amplitude
// Frequency 可以为负，使相邻的鸟起伏方向不同
type BirdComponent struct {
	BaseY     float64 // 生成时的纵坐标
	Amplitude float64 // 正弦振幅（像素）
	Frequency float64 // 正弦频率（弧度/像素）

	Width  float64
	Height float64

	Rotation      float64 // 当前旋转角（弧度）
	RotationSpeed float64 // 弧度/tick
	Shine         float64 // 描边闪烁相位
	ShineStep     float64 // 每 tick 的相位增量

	FillColor    color.RGBA
	OutlineColor color.RGBA
}

// OutlineWidth 当前描边宽度，在 [0.5, 3.5] 之间随 Shine 摆动
func (b *BirdComponent) OutlineWidth() float64 {
	return 2 + math.Sin(b.Shine*0.2)*1.5
}
