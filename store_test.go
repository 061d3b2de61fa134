package granary

import (
	"errors"
	"testing"
)

func TestComponentAddRemove(t *testing.T) {
	type step struct {
		op    string // "add", "remove"
		value int
	}

	tests := []struct {
		name      string
		steps     []step
		wantCount int
		wantHeld  bool
	}{
		{
			name:      "Add",
			steps:     []step{{"add", 1}},
			wantCount: 1,
			wantHeld:  true,
		},
		{
			name:      "Add then remove",
			steps:     []step{{"add", 1}, {"remove", 0}},
			wantCount: 0,
			wantHeld:  false,
		},
		{
			name:      "Add remove add",
			steps:     []step{{"add", 1}, {"remove", 0}, {"add", 2}},
			wantCount: 1,
			wantHeld:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := testWorld()
			RegisterComponent[Health](world)
			e, err := world.NewEntity()
			if err != nil {
				t.Fatalf("NewEntity() error = %v", err)
			}

			for _, s := range tt.steps {
				switch s.op {
				case "add":
					if err := AddComponent(world, e, Health{Current: s.value}); err != nil {
						t.Fatalf("AddComponent() error = %v", err)
					}
				case "remove":
					if err := RemoveComponent[Health](world, e); err != nil {
						t.Fatalf("RemoveComponent() error = %v", err)
					}
				}
			}

			count, err := ComponentCount[Health](world)
			if err != nil {
				t.Fatalf("ComponentCount() error = %v", err)
			}
			if count != tt.wantCount {
				t.Errorf("ComponentCount() = %d, want %d", count, tt.wantCount)
			}
			if HasComponent[Health](world, e) != tt.wantHeld {
				t.Errorf("HasComponent() = %v, want %v", !tt.wantHeld, tt.wantHeld)
			}
		})
	}
}

// TestSwapRemoveRelocation covers the key algorithm: removing a middle holder
// moves the last holder's data into the vacated slot and fixes its mapping.
func TestSwapRemoveRelocation(t *testing.T) {
	world := testWorld()
	RegisterComponent[Health](world)

	e1, _ := world.NewEntity()
	e2, _ := world.NewEntity()
	e3, _ := world.NewEntity()

	AddComponent(world, e1, Health{Current: 1})
	AddComponent(world, e2, Health{Current: 2})
	AddComponent(world, e3, Health{Current: 3})

	if err := RemoveComponent[Health](world, e2); err != nil {
		t.Fatalf("RemoveComponent() error = %v", err)
	}

	st, err := storeFor[Health](world)
	if err != nil {
		t.Fatalf("storeFor() error = %v", err)
	}

	if len(st.dense) != 2 {
		t.Fatalf("dense length = %d, want 2", len(st.dense))
	}
	if st.dense[0].Current != 1 || st.dense[1].Current != 3 {
		t.Errorf("dense = [%d, %d], want [1, 3]", st.dense[0].Current, st.dense[1].Current)
	}
	if st.entities[0] != e1 || st.entities[1] != e3 {
		t.Errorf("slot owners = [%d, %d], want [%d, %d]", st.entities[0], st.entities[1], e1, e3)
	}

	// The relocated last holder still resolves to its original value.
	h3, err := GetComponent[Health](world, e3)
	if err != nil {
		t.Fatalf("GetComponent() error = %v", err)
	}
	if h3.Current != 3 {
		t.Errorf("relocated value = %d, want 3", h3.Current)
	}
	if HasComponent[Health](world, e2) {
		t.Errorf("removed entity still reports the component")
	}
}

// TestStoreDensity checks that arbitrary add/remove sequences leave the dense
// array holding exactly the live holders with mutually consistent mappings.
func TestStoreDensity(t *testing.T) {
	world := testWorld()
	RegisterComponent[Health](world)

	entities := make([]Entity, 8)
	for i := range entities {
		entities[i], _ = world.NewEntity()
		AddComponent(world, entities[i], Health{Current: i})
	}

	removed := map[Entity]struct{}{}
	for _, i := range []int{0, 3, 7, 4} {
		if err := RemoveComponent[Health](world, entities[i]); err != nil {
			t.Fatalf("RemoveComponent() error = %v", err)
		}
		removed[entities[i]] = struct{}{}
	}

	st, _ := storeFor[Health](world)
	if len(st.dense) != len(st.entities) || len(st.dense) != len(st.slots) {
		t.Fatalf("store maps out of sync: dense=%d entities=%d slots=%d",
			len(st.dense), len(st.entities), len(st.slots))
	}
	if len(st.dense) != 4 {
		t.Fatalf("dense length = %d, want 4", len(st.dense))
	}

	for slot, owner := range st.entities {
		if _, gone := removed[owner]; gone {
			t.Errorf("removed entity %d still owns slot %d", owner, slot)
		}
		mapped, ok := st.slots[owner]
		if !ok || mapped != slot {
			t.Errorf("slot mapping for entity %d = %d (found=%v), want %d", owner, mapped, ok, slot)
		}
	}
	for _, e := range entities {
		_, gone := removed[e]
		if HasComponent[Health](world, e) == gone {
			t.Errorf("HasComponent(%d) = %v, removed = %v", e, !gone, gone)
		}
	}
}

func TestRedundantMutations(t *testing.T) {
	world := testWorld()
	RegisterComponent[Health](world)

	e, _ := world.NewEntity()
	if err := AddComponent(world, e, Health{Current: 1}); err != nil {
		t.Fatalf("AddComponent() error = %v", err)
	}

	err := AddComponent(world, e, Health{Current: 2})
	var exists ComponentExistsError
	if !errors.As(err, &exists) {
		t.Errorf("duplicate AddComponent() error = %v, want ComponentExistsError", err)
	}
	h, _ := GetComponent[Health](world, e)
	if h.Current != 1 {
		t.Errorf("duplicate add overwrote value: got %d, want 1", h.Current)
	}

	other, _ := world.NewEntity()
	err = RemoveComponent[Health](world, other)
	var missing ComponentNotFoundError
	if !errors.As(err, &missing) {
		t.Errorf("RemoveComponent() on non-holder error = %v, want ComponentNotFoundError", err)
	}

	_, err = GetComponent[Health](world, other)
	if !errors.As(err, &missing) {
		t.Errorf("GetComponent() on non-holder error = %v, want ComponentNotFoundError", err)
	}

	dead, _ := world.NewEntity()
	world.DestroyEntity(dead)
	err = AddComponent(world, dead, Health{})
	var notFound EntityNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("AddComponent() on dead entity error = %v, want EntityNotFoundError", err)
	}
}

func TestGetReturnsMutableReference(t *testing.T) {
	world := testWorld()
	RegisterComponent[Position](world)

	e, _ := world.NewEntity()
	AddComponent(world, e, Position{X: 1, Y: 2})

	pos, err := GetComponent[Position](world, e)
	if err != nil {
		t.Fatalf("GetComponent() error = %v", err)
	}
	pos.X = 10
	pos.Y = 20

	again, _ := GetComponent[Position](world, e)
	if again.X != 10 || again.Y != 20 {
		t.Errorf("mutation through reference lost: got %+v, want {10 20}", *again)
	}
}
