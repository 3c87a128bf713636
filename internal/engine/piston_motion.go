package engine

// isImmovable reports whether b blocks a piston push chain: obsidian and
// bedrock solids, any piston head, and any currently-extended piston
// (spec §4.12). A nil block (empty cell) is never immovable — callers
// treat that as the walk's success terminator, not this predicate.
func (e *Engine) isImmovable(b *Block) bool {
	switch b.Kind {
	case KindSolid:
		return b.Logic.Solid.Sub == SolidObsidian || b.Logic.Solid.Sub == SolidBedrock
	case KindPistonHead:
		return true
	case KindPiston, KindStickyPiston:
		return b.Logic.Piston.Extended
	default:
		return false
	}
}

// canPush walks from headCell along push, collecting the contiguous
// stack of movable blocks up to the first empty cell. It fails (ok=false)
// on an immovable block or when the stack reaches PushLimit blocks.
func (e *Engine) canPush(headCell Vec2i, push Vec2i) (stack []*Block, ok bool) {
	pos := headCell
	count := 0
	for {
		b := e.blockAt(pos)
		if b == nil {
			return stack, true
		}
		if e.isImmovable(b) {
			return nil, false
		}
		stack = append(stack, b)
		count++
		if count >= PushLimit {
			return nil, false
		}
		pos = pos.Add(push)
	}
}

func (e *Engine) allocId() BlockId {
	e.nextId++
	return e.nextId
}

// pistonExtend runs the full Extend algorithm of spec §4.12. On failure
// (canPush returns ok=false) no state changes at all.
func (e *Engine) pistonExtend(b *Block) {
	push := b.Rotation.Dir().Vector()
	headCell := b.Pos.Add(push)

	stack, ok := e.canPush(headCell, push)
	if !ok {
		return // PushOverflow
	}

	// Move tail to head: iterate the collected stack in reverse so the
	// farthest block moves first and never collides with its neighbor's
	// old position.
	for i := len(stack) - 1; i >= 0; i-- {
		blk := stack[i]
		oldPos := blk.Pos
		newPos := oldPos.Add(push)
		e.grid.clear(oldPos)
		blk.Pos = newPos
		e.grid.set(newPos, blk.Id)
		e.notifyNeighbors(oldPos)
		e.notifyNeighbors(newPos)
	}

	headId := e.allocId()
	head := &Block{
		Id:       headId,
		Pos:      headCell,
		Kind:     KindPistonHead,
		Rotation: b.Rotation,
	}
	head.Logic.Head = PistonHeadLogic{SourceId: b.Id, Sticky: b.Kind == KindStickyPiston}
	e.blocks[headId] = head
	e.grid.set(headCell, headId)

	b.Logic.Piston.Extended = true
	b.Logic.Piston.HeadId = headId
	b.Visual.Extended = true
	e.notifyNeighbors(headCell)
}

// pistonRetract removes the head and, for sticky pistons, performs
// doPull (spec §4.12 Retract).
func (e *Engine) pistonRetract(b *Block) {
	b.Logic.Piston.Extended = false
	b.Visual.Extended = false

	headId := b.Logic.Piston.HeadId
	b.Logic.Piston.HeadId = 0
	if headId != 0 {
		if head := e.blocks[headId]; head != nil {
			e.grid.clear(head.Pos)
			delete(e.blocks, headId)
			e.notifyNeighbors(head.Pos)
		}
	}

	if b.Kind == KindStickyPiston {
		e.doPull(b)
	}
}

// doPull moves the block at pos + 2*push to pos + push, if it exists and
// is movable; otherwise it is a no-op.
func (e *Engine) doPull(b *Block) {
	push := b.Rotation.Dir().Vector()
	target := b.Pos.Add(push).Add(push)
	blk := e.blockAt(target)
	if blk == nil || e.isImmovable(blk) {
		return
	}
	dest := b.Pos.Add(push)
	oldPos := blk.Pos
	e.grid.clear(oldPos)
	blk.Pos = dest
	e.grid.set(dest, blk.Id)
	e.notifyNeighbors(oldPos)
	e.notifyNeighbors(dest)
}

// removeOrphanedHead implements Open Question 1: when a piston is
// deleted while extended, its head is removed explicitly rather than
// left stuck, preserving invariant 4.
func (e *Engine) removeOrphanedHead(b *Block) {
	if b.Kind != KindPiston && b.Kind != KindStickyPiston {
		return
	}
	if !b.Logic.Piston.Extended || b.Logic.Piston.HeadId == 0 {
		return
	}
	head := e.blocks[b.Logic.Piston.HeadId]
	if head == nil {
		return
	}
	e.grid.clear(head.Pos)
	delete(e.blocks, head.Id)
	e.notifyNeighbors(head.Pos)
}
