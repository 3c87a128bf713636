package engine

import "testing"

// Wire attenuation: on an acyclic wire chain from a 15-source, the k-th
// wire has power exactly max(0, 15-k) (spec §8).
func TestWireChain_AttenuatesByOnePerHop(t *testing.T) {
	e := New(32, 32)
	positions := wireChain(t, e, 0, 0, East, 20)

	for k, pos := range positions {
		snap, ok := e.Query(pos.X, pos.Y)
		if !ok {
			t.Fatalf("missing wire at hop %d", k)
		}
		want := 0
		if v := 15 - k; v > 0 {
			want = v
		}
		if int(snap.Visual.Power) != want {
			t.Fatalf("hop %d: power=%d want=%d", k, snap.Visual.Power, want)
		}
	}
}

func TestWire_ConvergesToZeroWithoutSource(t *testing.T) {
	e := New(8, 8)
	mustCreate(t, e, KindLever, 0, 0)
	mustCreate(t, e, KindWire, 1, 0)
	e.Interact(0, 0) // lever on: wire -> 15

	snap, _ := e.Query(1, 0)
	if snap.Visual.Power != 15 {
		t.Fatalf("expected wire powered, got %d", snap.Visual.Power)
	}

	e.Interact(0, 0) // lever off
	snap, _ = e.Query(1, 0)
	if snap.Visual.Power != 0 {
		t.Fatalf("expected wire to converge to 0 immediately, got %d", snap.Visual.Power)
	}
}

func TestWire_Bounds(t *testing.T) {
	e := New(32, 32)
	positions := wireChain(t, e, 0, 0, East, 20)
	for _, pos := range positions {
		snap, _ := e.Query(pos.X, pos.Y)
		if snap.Visual.Power > 15 {
			t.Fatalf("wire power out of range: %d", snap.Visual.Power)
		}
	}
}
