package components

import "image/color"

// ParticleComponent 命中粒子的外观
// 尺寸与透明度按剩余寿命比例线性衰减，由 ParticleSystem 每 tick 更新
type ParticleComponent struct {
	BaseSize float64 // 初始边长（像素）
	Size     float64 // 当前边长
	Alpha    float64 // 当前透明度 0-1
	Color    color.RGBA
}
