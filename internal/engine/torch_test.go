package engine

import "testing"

// A freshly placed torch is unlit until its first scheduled
// reevaluation (spec §4.5: onPlaced only schedules, never mutates).
func TestTorch_LitAfterFirstReevalWithNoInput(t *testing.T) {
	e := New(8, 8)
	mustCreateSolid(t, e, SolidPlain, 1, 0) // the block the torch is mounted on
	mustCreate(t, e, KindTorch, 1, 1)
	rotateTo(e, 1, 1, Rotation(0)) // attach face North, toward (1,0)

	if e.blockAt(Vec2i{1, 1}).Logic.Torch.Lit {
		t.Fatalf("expected torch unlit before its first reeval")
	}
	e.Tick()
	if e.blockAt(Vec2i{1, 1}).Logic.Torch.Lit {
		t.Fatalf("expected torch still unlit at tick 1 (delay is 2)")
	}
	e.Tick()
	if !e.blockAt(Vec2i{1, 1}).Logic.Torch.Lit {
		t.Fatalf("expected torch lit at tick 2")
	}
}

// Powering a torch's attach face extinguishes it two ticks later, and
// releasing the power relights it two ticks after that.
func TestTorch_ExtinguishesWhenAttachFacePowered(t *testing.T) {
	e := New(8, 8)
	mustCreate(t, e, KindLever, 1, 0)
	mustCreate(t, e, KindTorch, 1, 1)
	rotateTo(e, 1, 1, Rotation(0)) // attach face North, toward the lever

	e.Tick()
	e.Tick()
	if !e.blockAt(Vec2i{1, 1}).Logic.Torch.Lit {
		t.Fatalf("expected torch lit with lever off")
	}

	e.Interact(1, 0) // lever on: powers the attach face
	e.Tick()
	e.Tick()
	if e.blockAt(Vec2i{1, 1}).Logic.Torch.Lit {
		t.Fatalf("expected torch extinguished once attach face is powered")
	}

	e.Interact(1, 0) // lever off
	e.Tick()
	e.Tick()
	if !e.blockAt(Vec2i{1, 1}).Logic.Torch.Lit {
		t.Fatalf("expected torch to relight once attach face is unpowered")
	}
}
