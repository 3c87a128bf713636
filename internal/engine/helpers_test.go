package engine

import "testing"

func mustCreate(t *testing.T, e *Engine, kind BlockKind, x, y int) BlockId {
	t.Helper()
	id, err := e.CreateBlock(kind, SolidPlain, x, y)
	if err != nil {
		t.Fatalf("create %v at (%d,%d): %v", kind, x, y, err)
	}
	return id
}

func mustCreateSolid(t *testing.T, e *Engine, sub SolidKind, x, y int) BlockId {
	t.Helper()
	id, err := e.CreateBlock(KindSolid, sub, x, y)
	if err != nil {
		t.Fatalf("create solid at (%d,%d): %v", x, y, err)
	}
	return id
}

// rotateTo spins a block's rotation forward until it reads target.
func rotateTo(e *Engine, x, y int, target Rotation) {
	for i := 0; i < 4; i++ {
		b := e.blockAt(Vec2i{X: x, Y: y})
		if b == nil || b.Rotation == target {
			return
		}
		e.RotateBlock(x, y)
	}
}

// wireChain places a PowerSource at (x0,y0) and a straight run of n wire
// blocks stepping away from it in direction dir; returns the wire cell
// positions in order, first adjacent to the source.
func wireChain(t *testing.T, e *Engine, x0, y0 int, dir Direction, n int) []Vec2i {
	t.Helper()
	mustCreate(t, e, KindPowerSource, x0, y0)
	pos := Vec2i{X: x0, Y: y0}
	positions := make([]Vec2i, 0, n)
	for i := 0; i < n; i++ {
		pos = pos.Neighbor(dir)
		mustCreate(t, e, KindWire, pos.X, pos.Y)
		positions = append(positions, pos)
	}
	return positions
}
