package systems

import (
	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/ecs"
	"github.com/jakecoffman/cp"
)

// birdVertices 鸟的五边形轮廓（以中心为原点，未旋转）
// 顶点顺序：上、右、右下、左下、左
func birdVertices(width, height float64) []cp.Vector {
	return []cp.Vector{
		{X: 0, Y: -height / 2},
		{X: width / 2, Y: 0},
		{X: width / 3, Y: height / 2},
		{X: -width / 3, Y: height / 2},
		{X: -width / 2, Y: 0},
	}
}

// HitTestSystem 点击命中检测
//
// 每只鸟在 chipmunk 空间中对应一个运动学刚体和一个五边形形状，
// Sync 把实体的位置和旋转同步到刚体；PointQuery 返回包含点击点的鸟。
// 形状的 UserData 保存实体ID。
type HitTestSystem struct {
	entityManager *ecs.EntityManager
	space         *cp.Space
	tracked       map[ecs.EntityID]*components.HitboxComponent
}

// NewHitTestSystem 创建命中检测系统
func NewHitTestSystem(em *ecs.EntityManager) *HitTestSystem {
	return &HitTestSystem{
		entityManager: em,
		space:         cp.NewSpace(),
		tracked:       make(map[ecs.EntityID]*components.HitboxComponent),
	}
}

// Sync 同步所有鸟的碰撞形状
//   - 新鸟：创建刚体和形状并挂上 HitboxComponent
//   - 已有的鸟：更新位置与角度
//   - 已删除或标记删除的鸟：从空间中移除
func (s *HitTestSystem) Sync() {
	for id := range s.tracked {
		if !s.entityManager.Exists(id) || s.entityManager.IsMarkedForDestroy(id) {
			s.Remove(id)
		}
	}

	birds := ecs.GetEntitiesWith2[*components.BirdComponent, *components.PositionComponent](s.entityManager)
	for _, id := range birds {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		bird, _ := ecs.GetComponent[*components.BirdComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		hitbox, ok := s.tracked[id]
		if !ok {
			hitbox = s.attach(id, bird)
		}

		hitbox.Body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
		hitbox.Body.SetAngle(bird.Rotation)
		s.space.ReindexShapesForBody(hitbox.Body)
	}
}

func (s *HitTestSystem) attach(id ecs.EntityID, bird *components.BirdComponent) *components.HitboxComponent {
	verts := birdVertices(bird.Width, bird.Height)

	body := cp.NewKinematicBody()
	shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
	shape.UserData = id

	s.space.AddBody(body)
	s.space.AddShape(shape)

	hitbox := &components.HitboxComponent{Body: body, Shape: shape}
	s.tracked[id] = hitbox
	s.entityManager.AddComponent(id, hitbox)
	return hitbox
}

// Remove 从空间中移除实体的刚体和形状
func (s *HitTestSystem) Remove(id ecs.EntityID) {
	hitbox, ok := s.tracked[id]
	if !ok {
		return
	}
	if hitbox.Shape != nil {
		s.space.RemoveShape(hitbox.Shape)
	}
	if hitbox.Body != nil {
		s.space.RemoveBody(hitbox.Body)
	}
	delete(s.tracked, id)
	if s.entityManager.Exists(id) {
		ecs.RemoveComponent[*components.HitboxComponent](s.entityManager, id)
	}
}

// PointQuery 返回包含点 (x, y) 的鸟
// 多只鸟重叠时取点最深入的那只
func (s *HitTestSystem) PointQuery(x, y float64) (ecs.EntityID, bool) {
	info := s.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	id, ok := info.Shape.UserData.(ecs.EntityID)
	if !ok || s.entityManager.IsMarkedForDestroy(id) {
		return 0, false
	}
	return id, true
}

// Count 空间中的鸟数量
func (s *HitTestSystem) Count() int {
	return len(s.tracked)
}

// Reset 清空空间（回合重置时使用）
func (s *HitTestSystem) Reset() {
	for id := range s.tracked {
		s.Remove(id)
	}
	s.space = cp.NewSpace()
}
