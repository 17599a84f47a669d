package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextStyle 叠加层文字样式
// 文字先以 ShadowColor 偏移 ShadowOffset 绘制一次，再以 Color 绘制在原位置
type TextStyle struct {
	Face         *text.GoTextFace
	Color        color.Color
	ShadowColor  color.Color // 为 nil 时不绘制阴影
	ShadowOffset float64
	Align        text.Align // 水平锚点：AlignStart 左对齐，AlignCenter 居中，AlignEnd 右对齐
}

// DrawShadowedText 绘制带阴影的单行文字
// (x, y) 是锚点：水平方向由 style.Align 决定，垂直方向为文字中线
func DrawShadowedText(screen *ebiten.Image, str string, x, y float64, style TextStyle) {
	if screen == nil || style.Face == nil || str == "" {
		return
	}

	if style.ShadowColor != nil && style.ShadowOffset != 0 {
		drawAligned(screen, str, x+style.ShadowOffset, y+style.ShadowOffset, style.Face, style.Align, style.ShadowColor)
	}
	drawAligned(screen, str, x, y, style.Face, style.Align, style.Color)
}

func drawAligned(screen *ebiten.Image, str string, x, y float64, face *text.GoTextFace, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	text.Draw(screen, str, face, op)
}

// TextBounds 返回文字按锚点绘制时的左上角与尺寸
// 用于布局测试和点击区域计算
func TextBounds(str string, face *text.GoTextFace, x, y float64, align text.Align) (left, top, width, height float64) {
	width, height = measureText(str, face)
	switch align {
	case text.AlignCenter:
		left = x - width/2
	case text.AlignEnd:
		left = x - width
	default:
		left = x
	}
	top = y - height/2
	return left, top, width, height
}

// measureText 测量单行文本尺寸
func measureText(textStr string, font *text.GoTextFace) (float64, float64) {
	if textStr == "" || font == nil {
		return 0, 0
	}
	return text.Measure(textStr, font, 0)
}
