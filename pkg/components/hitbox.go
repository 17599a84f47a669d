package components

import "github.com/jakecoffman/cp"

// HitboxComponent 可点击实体在物理空间中的刚体与形状
// 刚体为运动学刚体（kinematic），位置和角度每 tick 由 HitTestSystem 同步
type HitboxComponent struct {
	Body  *cp.Body
	Shape *cp.Shape
}
