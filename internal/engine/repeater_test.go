package engine

import "testing"

// S2 — repeater delay: lever -> wire -> repeater(delay=3) -> wire. The
// output wire must transition 0 -> 15 exactly 6 game ticks (3 redstone
// ticks) after the lever is toggled on.
func TestScenario_RepeaterDelay(t *testing.T) {
	e := New(16, 16)
	mustCreate(t, e, KindLever, 0, 0)
	mustCreate(t, e, KindWire, 1, 0)
	mustCreate(t, e, KindRepeater, 2, 0)
	rotateTo(e, 2, 0, Rotation(1)) // East: rear=West, front=East
	mustCreate(t, e, KindWire, 3, 0)

	if d := e.blockAt(Vec2i{2, 0}).Logic.Repeater.Delay; d != 1 {
		t.Fatalf("expected default delay 1, got %d", d)
	}
	e.ConfigureRepeaterDelay(2, 0) // 1 -> 2
	e.ConfigureRepeaterDelay(2, 0) // 2 -> 3
	if d := e.blockAt(Vec2i{2, 0}).Logic.Repeater.Delay; d != 3 {
		t.Fatalf("expected delay 3 after two cycles, got %d", d)
	}

	e.Interact(0, 0) // lever on

	out, _ := e.Query(3, 0)
	if out.Visual.Power != 0 {
		t.Fatalf("output must still be 0 before any ticks, got %d", out.Visual.Power)
	}

	for i := 0; i < 5; i++ {
		e.Tick()
		out, _ := e.Query(3, 0)
		if out.Visual.Power != 0 {
			t.Fatalf("output rose too early at tick %d: power=%d", i+1, out.Visual.Power)
		}
	}

	e.Tick() // 6th tick
	out, _ = e.Query(3, 0)
	if out.Visual.Power != 15 {
		t.Fatalf("expected output 15 exactly at tick 6, got %d", out.Visual.Power)
	}
}

// S7 — repeater locking: a powered side-neighbor repeater freezes the
// locked repeater's Powered state; further rear-input changes are
// ignored until the lock drops.
func TestScenario_RepeaterLocking(t *testing.T) {
	e := New(16, 16)
	// A at (1,3) facing East, rear lever at (0,3).
	mustCreate(t, e, KindLever, 0, 3)
	mustCreate(t, e, KindRepeater, 1, 3)
	rotateTo(e, 1, 3, Rotation(1)) // East

	// B at (1,2), facing South so its output points into A's left side.
	mustCreate(t, e, KindLever, 1, 1)
	mustCreate(t, e, KindRepeater, 1, 2)
	rotateTo(e, 1, 2, Rotation(2)) // South

	e.Interact(0, 3) // power A's rear
	e.Interact(1, 1) // power B's rear

	e.Tick()
	e.Tick()

	a := e.blockAt(Vec2i{1, 3})
	b := e.blockAt(Vec2i{1, 2})
	if !b.Logic.Repeater.Powered {
		t.Fatalf("expected B powered after 2 ticks")
	}
	if !a.Logic.Repeater.Locked {
		t.Fatalf("expected A locked by B after 2 ticks")
	}
	frozen := a.Logic.Repeater.Powered

	// Further rear changes to A must not move it while locked.
	e.Interact(0, 3) // lever off
	e.Tick()
	e.Tick()
	e.Tick()
	if a.Logic.Repeater.Powered != frozen {
		t.Fatalf("A changed state while locked: was %v now %v", frozen, a.Logic.Repeater.Powered)
	}

	e.Interact(0, 3) // lever back on, still irrelevant while locked
	e.Tick()
	e.Tick()
	if a.Logic.Repeater.Powered != frozen {
		t.Fatalf("A changed state while locked after re-toggle: was %v now %v", frozen, a.Logic.Repeater.Powered)
	}
}

// A repeater with rear input constantly 0 and no locking stays
// Powered=false forever (spec §8 round-trip property).
func TestRepeater_StaysOffWithNoRearInput(t *testing.T) {
	e := New(8, 8)
	mustCreate(t, e, KindRepeater, 2, 2)
	rotateTo(e, 2, 2, Rotation(1))
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	if e.blockAt(Vec2i{2, 2}).Logic.Repeater.Powered {
		t.Fatalf("expected repeater to stay off")
	}
}
