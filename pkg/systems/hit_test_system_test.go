package systems

import (
	"math"
	"testing"

	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/ecs"
)

// TestHitTestSyncAttachesHitbox 新鸟在同步时获得刚体与形状
func TestHitTestSyncAttachesHitbox(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addTestBird(em, 300, 200, -2)
	system := NewHitTestSystem(em)

	system.Sync()

	hitbox, ok := ecs.GetComponent[*components.HitboxComponent](em, id)
	if !ok || hitbox.Body == nil || hitbox.Shape == nil {
		t.Fatal("bird should have a hitbox after Sync")
	}
	if got, _ := hitbox.Shape.UserData.(ecs.EntityID); got != id {
		t.Errorf("shape UserData = %v, want %v", hitbox.Shape.UserData, id)
	}
	if system.Count() != 1 {
		t.Errorf("Count = %d, want 1", system.Count())
	}
}

// TestHitTestPointQuery 点击五边形内部命中，外部不命中
func TestHitTestPointQuery(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addTestBird(em, 300, 200, -2)
	system := NewHitTestSystem(em)
	system.Sync()

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"center", 300, 200, true},
		{"near right tip", 318, 200, true},
		{"lower body", 300, 212, true},
		{"outside right", 325, 200, false},
		{"upper right corner of bounding box", 318, 187, false},
		{"far away", 600, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := system.PointQuery(tt.x, tt.y)
			if ok != tt.hit {
				t.Fatalf("PointQuery(%v, %v) hit = %v, want %v", tt.x, tt.y, ok, tt.hit)
			}
			if ok && got != id {
				t.Errorf("PointQuery returned %v, want %v", got, id)
			}
		})
	}
}

// TestHitTestFollowsMovement 同步后形状跟随鸟的位置和旋转
func TestHitTestFollowsMovement(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addTestBird(em, 300, 200, -2)
	system := NewHitTestSystem(em)
	system.Sync()

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X = 100
	bird, _ := ecs.GetComponent[*components.BirdComponent](em, id)
	bird.Rotation = math.Pi / 2
	system.Sync()

	if _, ok := system.PointQuery(300, 200); ok {
		t.Error("old position should no longer hit")
	}
	if _, ok := system.PointQuery(100, 200); !ok {
		t.Error("new position should hit")
	}
	// 旋转 90° 后原来的右尖角指向下方
	if _, ok := system.PointQuery(100, 217); !ok {
		t.Error("rotated tip should hit")
	}
	if _, ok := system.PointQuery(118, 200); ok {
		t.Error("unrotated tip location should miss after rotation")
	}
}

// TestHitTestRemovesDestroyed 删除的鸟从空间中移除
func TestHitTestRemovesDestroyed(t *testing.T) {
	em := ecs.NewEntityManager()
	a := addTestBird(em, 300, 200, -2)
	b := addTestBird(em, 500, 200, -2)
	system := NewHitTestSystem(em)
	system.Sync()

	em.DestroyEntity(a)
	if _, ok := system.PointQuery(300, 200); ok {
		t.Error("marked bird should not be hit")
	}

	system.Sync()
	em.RemoveMarkedEntities()
	if system.Count() != 1 {
		t.Errorf("Count = %d, want 1", system.Count())
	}
	if got, ok := system.PointQuery(500, 200); !ok || got != b {
		t.Error("remaining bird should still be hittable")
	}

	system.Reset()
	if system.Count() != 0 {
		t.Errorf("Count after Reset = %d, want 0", system.Count())
	}
	if _, ok := system.PointQuery(500, 200); ok {
		t.Error("no bird should be hit after Reset")
	}
}
