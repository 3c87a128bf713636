package engine

import "testing"

// An observer only reacts to changes at its detect cell (the block it
// faces) and ignores updates arriving from any other neighbor.
func TestObserver_PulsesOnlyFromDetectCell(t *testing.T) {
	e := New(8, 8)
	mustCreate(t, e, KindObserver, 2, 2)
	rotateTo(e, 2, 2, Rotation(0)) // facing North: detect cell (2,1)
	mustCreate(t, e, KindLever, 2, 1)
	mustCreate(t, e, KindLever, 2, 3) // south neighbor, not the detect cell

	e.Interact(2, 3) // irrelevant neighbor toggles
	e.Tick()
	e.Tick()
	obs := e.blockAt(Vec2i{2, 2})
	if obs.Visual.Powered {
		t.Fatalf("observer must not react to a non-detect-cell neighbor")
	}

	e.Interact(2, 1) // detect cell toggles
	e.Tick()
	e.Tick()
	if !obs.Visual.Powered {
		t.Fatalf("expected observer pulse to start 2 ticks after detect cell changed")
	}
	if obs.Logic.Observer.Phase != ObserverPulseOn {
		t.Fatalf("expected phase PulseOn, got %v", obs.Logic.Observer.Phase)
	}

	e.Tick()
	e.Tick()
	if obs.Visual.Powered {
		t.Fatalf("expected observer pulse to end 2 ticks after it started")
	}
	if obs.Logic.Observer.Phase != ObserverIdle {
		t.Fatalf("expected phase Idle after pulse, got %v", obs.Logic.Observer.Phase)
	}
}
