// Package engine implements the redstone-style circuit engine: the
// spatial block store, the scheduled-tick queue, the neighbor-update
// propagation protocol, the per-kind logic state machines, and piston
// motion. It is driven entirely by explicit calls — Engine.Tick and
// the edit operations in facade.go — there is no background goroutine.
package engine

const (
	// PushLimit bounds a single piston extension: a chain of PushLimit or
	// more movable blocks makes the push fail, so at most PushLimit-1 (11)
	// blocks are displaced (spec §4.12).
	PushLimit = 12

	maxDispatchBudget = 10000
)

// Engine holds all simulator state: the dense block store, the live
// block records keyed by id, the scheduler, and the game-tick clock.
type Engine struct {
	grid   *grid
	blocks map[BlockId]*Block
	nextId BlockId

	sched *scheduler
	tick  uint64

	// dispatchBudget bounds the total number of onNeighborUpdate dispatches
	// made by the recursive notifyNeighbors fan-out of one edit or one
	// scheduled-tick dispatch.
	dispatchBudget int
}

// New constructs an engine over a width x height grid. width/height <= 0
// fall back to the spec's default 64 x 48.
func New(width, height int) *Engine {
	return &Engine{
		grid:   newGrid(width, height),
		blocks: make(map[BlockId]*Block),
		sched:  newScheduler(),
	}
}

func (e *Engine) blockAt(pos Vec2i) *Block {
	id := e.grid.get(pos)
	if id == 0 {
		return nil
	}
	return e.blocks[id]
}

func (e *Engine) inBounds(pos Vec2i) bool {
	return e.grid.inBounds(pos)
}
