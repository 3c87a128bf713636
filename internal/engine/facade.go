package engine

import "fmt"

// ErrOccupied and ErrOutOfBounds are the only two rejection reasons
// createBlock can report; both are expected conditions (spec §7), never
// logged by the engine itself.
var (
	ErrOccupied    = fmt.Errorf("engine: cell occupied")
	ErrOutOfBounds = fmt.Errorf("engine: coordinate out of bounds")
)

// BlockSnapshot is the read-only view returned by Query.
type BlockSnapshot struct {
	Id       BlockId
	Pos      Vec2i
	Kind     BlockKind
	Rotation Rotation
	Visual   VisualState
	ExtID    string // "minecraft:<kind>" wire identifier
}

// CreateBlock allocates a new block of kind at (x, y). It silently
// refuses out-of-bounds coordinates and non-empty cells (spec §6/§7);
// defaults rotation to 0, visual state to {powered=false, power=0}, and
// dispatches onPlaced.
func (e *Engine) CreateBlock(kind BlockKind, sub SolidKind, x, y int) (BlockId, error) {
	pos := Vec2i{X: x, Y: y}
	if !e.inBounds(pos) {
		return 0, ErrOutOfBounds
	}
	if e.grid.get(pos) != 0 {
		return 0, ErrOccupied
	}

	id := e.allocId()
	b := &Block{
		Id:   id,
		Pos:  pos,
		Kind: kind,
	}
	switch kind {
	case KindSolid:
		b.Logic.Solid.Sub = sub
	case KindRepeater:
		b.Logic.Repeater.Delay = 1
	case KindComparator:
		b.Logic.Comparator.Mode = ComparatorCompare
	}
	e.blocks[id] = b
	e.grid.set(pos, id)

	e.beginDispatch()
	e.onPlaced(id)
	return id, nil
}

// CreateBlockByID is CreateBlock keyed by the external wire identifier
// (e.g. "minecraft:obsidian") instead of an internal BlockKind/SolidKind
// pair. Used by the transport layer, which only ever sees ids off the
// wire. ok is false for an id the engine's catalog does not recognize.
func (e *Engine) CreateBlockByID(id string, x, y int) (BlockId, error, bool) {
	kind, sub, ok := kindFromExternalId(id)
	if !ok {
		return 0, nil, false
	}
	blockId, err := e.CreateBlock(kind, sub, x, y)
	return blockId, err, true
}

// RemoveBlock deletes the record at (x, y) immediately and fires one
// notifyNeighbors at the vacated cell. A piston removed while extended
// has its head removed explicitly (Open Question 1).
func (e *Engine) RemoveBlock(x, y int) {
	pos := Vec2i{X: x, Y: y}
	b := e.blockAt(pos)
	if b == nil {
		return
	}
	e.beginDispatch()
	e.removeOrphanedHead(b)
	e.grid.clear(pos)
	delete(e.blocks, b.Id)
	e.notifyNeighbors(pos)
}

// RotateBlock advances rotation by one quarter turn. No-op for an empty
// cell or an extended piston (rotation while extended is forbidden; the
// engine enforces it here rather than trusting the caller).
func (e *Engine) RotateBlock(x, y int) {
	b := e.blockAt(Vec2i{X: x, Y: y})
	if b == nil {
		return
	}
	if (b.Kind == KindPiston || b.Kind == KindStickyPiston) && b.Logic.Piston.Extended {
		return
	}
	b.Rotation = b.Rotation.Next()
	b.Visual.Rotation = b.Rotation

	e.beginDispatch()
	e.onNeighborUpdate(b.Id, b.Pos)
	e.notifyNeighbors(b.Pos)
}

// Interact: Lever toggles, Button presses, everything else is a no-op.
func (e *Engine) Interact(x, y int) {
	b := e.blockAt(Vec2i{X: x, Y: y})
	if b == nil {
		return
	}
	e.beginDispatch()
	switch b.Kind {
	case KindLever:
		e.toggleLever(b)
	case KindButton:
		e.pressButton(b)
	}
}

// ConfigureRepeaterDelay cycles delay 1->2->3->4->1; no-op for non-repeaters.
func (e *Engine) ConfigureRepeaterDelay(x, y int) {
	b := e.blockAt(Vec2i{X: x, Y: y})
	if b == nil || b.Kind != KindRepeater {
		return
	}
	b.Logic.Repeater.Delay = b.Logic.Repeater.Delay%4 + 1
}

// ConfigureComparatorMode toggles Compare/Subtract; no-op for non-comparators.
func (e *Engine) ConfigureComparatorMode(x, y int) {
	b := e.blockAt(Vec2i{X: x, Y: y})
	if b == nil || b.Kind != KindComparator {
		return
	}
	if b.Logic.Comparator.Mode == ComparatorCompare {
		b.Logic.Comparator.Mode = ComparatorSubtract
	} else {
		b.Logic.Comparator.Mode = ComparatorCompare
	}
}

// Tick advances the clock by one and drains all due scheduler entries
// (spec §4.1): collect entries with dueTick <= t in insertion order,
// remove them, then dispatch onScheduledTick to the block now at each
// entry's cell (silently discarded if the cell is now empty —
// OrphanSchedule). Entries record a cell, not a block id, so an entry
// whose cell now holds a different block is dispatched to that block.
func (e *Engine) Tick() {
	e.tick++
	due := e.sched.drain(e.tick)
	for _, entry := range due {
		e.beginDispatch()
		e.onScheduledTick(entry.pos, entry.payload)
	}
}

// CurrentTick returns the number of completed Tick() calls.
func (e *Engine) CurrentTick() uint64 {
	return e.tick
}

// Query returns a read-only snapshot of the block at (x, y), or ok=false
// if the cell is empty.
func (e *Engine) Query(x, y int) (BlockSnapshot, bool) {
	b := e.blockAt(Vec2i{X: x, Y: y})
	if b == nil {
		return BlockSnapshot{}, false
	}
	return BlockSnapshot{
		Id:       b.Id,
		Pos:      b.Pos,
		Kind:     b.Kind,
		Rotation: b.Rotation,
		Visual:   b.Visual,
		ExtID:    externalIdFor(b),
	}, true
}

// QueryPower returns maxNeighborPower into (x, y).
func (e *Engine) QueryPower(x, y int) uint8 {
	return e.maxNeighborPower(Vec2i{X: x, Y: y})
}

// AllBlocks returns a snapshot of every live block, in an unspecified
// order. Intended for transport-layer state pushes, not hot-path use.
func (e *Engine) AllBlocks() []BlockSnapshot {
	out := make([]BlockSnapshot, 0, len(e.blocks))
	for _, b := range e.blocks {
		out = append(out, BlockSnapshot{
			Id:       b.Id,
			Pos:      b.Pos,
			Kind:     b.Kind,
			Rotation: b.Rotation,
			Visual:   b.Visual,
			ExtID:    externalIdFor(b),
		})
	}
	return out
}

// Width and Height expose the grid dimensions.
func (e *Engine) Width() int  { return e.grid.width }
func (e *Engine) Height() int { return e.grid.height }
