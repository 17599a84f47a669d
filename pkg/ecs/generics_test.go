package ecs

import "testing"

func TestGenericAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Generic GetComponent should find the component")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Expected (3, 4), got (%f, %f)", pos.X, pos.Y)
	}

	// 泛型与反射版本共享同一存储
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should report true")
	}
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should report false for missing component")
	}
}

func TestGenericGetComponentMissingEntity(t *testing.T) {
	em := NewEntityManager()

	pos, ok := GetComponent[*testPositionComponent](em, 42)
	if ok || pos != nil {
		t.Error("GetComponent on unknown entity should return zero value and false")
	}
}

func TestGetEntitiesWithGeneric(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 2 {
		t.Errorf("Expected 2 entities with position, got %d", len(got))
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != 1 || got[0] != id1 {
		t.Errorf("Expected [%d], got %v", id1, got)
	}

	RemoveComponent[*testVelocityComponent](em, id1)
	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 0 {
		t.Errorf("Expected no entities after RemoveComponent, got %v", got)
	}
}
