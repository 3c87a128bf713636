package engine

import "testing"

// S3 — comparator subtract: rear = constant 15 (redstone_block), side =
// 4 (reached here via a plain attenuating wire run rather than a
// repeater chain — equivalent stabilized input, simpler to construct).
// Expect output = 15 - 4 = 11 within two ticks of stabilization.
func TestScenario_ComparatorSubtract(t *testing.T) {
	e := New(64, 32)

	// Comparator facing South: rear=North, left=East, right=West.
	mustCreate(t, e, KindComparator, 10, 10)
	rotateTo(e, 10, 10, Rotation(2)) // South
	e.ConfigureComparatorMode(10, 10)
	cmp := e.blockAt(Vec2i{10, 10})
	if cmp.Logic.Comparator.Mode != ComparatorSubtract {
		t.Fatalf("expected Subtract mode")
	}

	mustCreate(t, e, KindPowerSource, 10, 9) // rear, north of comparator

	// Side chain: 12 wire hops from a source, landing at level 4
	// adjacent to the comparator's East (left) side.
	chain := wireChain(t, e, 23, 10, West, 12)
	last := chain[len(chain)-1]
	if last.X != 11 || last.Y != 10 {
		t.Fatalf("chain did not land next to comparator: %+v", last)
	}
	side, _ := e.Query(last.X, last.Y)
	if side.Visual.Power != 4 {
		t.Fatalf("expected side input level 4, got %d", side.Visual.Power)
	}

	e.Tick()
	e.Tick()

	if out := cmp.Logic.Comparator.OutputPower; out != 11 {
		t.Fatalf("expected comparator output 11, got %d", out)
	}
}

func TestComparator_CompareReturnsRearWhenEqual(t *testing.T) {
	e := New(64, 16)
	mustCreate(t, e, KindComparator, 10, 10)
	rotateTo(e, 10, 10, Rotation(2)) // South: rear=North, sides=East/West

	mustCreate(t, e, KindPowerSource, 10, 9) // rear = 15

	// Side chain landing at exactly 15 too (direct source tap, 0 hops).
	mustCreate(t, e, KindPowerSource, 12, 10)
	mustCreate(t, e, KindWire, 11, 10)

	e.Tick()
	e.Tick()

	cmp := e.blockAt(Vec2i{10, 10})
	if cmp.Logic.Comparator.OutputPower != 15 {
		t.Fatalf("expected Compare mode to pass through rear when rear>=side, got %d", cmp.Logic.Comparator.OutputPower)
	}
}
