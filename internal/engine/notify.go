package engine

// notifyNeighbors fans out to the four cardinal neighbors of pos,
// synchronously, depth-first, in N, E, S, W order (spec §4.2, §5). Each
// dispatch decrements a per-top-level-call budget; when the budget is
// exhausted we stop recursing rather than let a pathological
// construction (e.g. a one-tick feedback loop) grow the call stack
// without bound (design note: explicit worklist with a generous cap).
func (e *Engine) notifyNeighbors(pos Vec2i) {
	for _, dir := range cardinals {
		np := pos.Neighbor(dir)
		b := e.blockAt(np)
		if b == nil {
			continue
		}
		if e.dispatchBudget <= 0 {
			return
		}
		e.dispatchBudget--
		e.onNeighborUpdate(b.Id, pos)
	}
}

// beginDispatch resets the recursion budget for one externally triggered
// edit or one scheduled-tick dispatch; all notifyNeighbors recursion
// triggered from within it shares the same budget.
func (e *Engine) beginDispatch() {
	e.dispatchBudget = maxDispatchBudget
}

// getPower resolves "power entering target from direction fromDir" by
// asking the neighbor in that direction for its output toward the
// opposite direction (spec §4.3).
func (e *Engine) getPower(target Vec2i, fromDir Direction) uint8 {
	src := target.Neighbor(fromDir)
	b := e.blockAt(src)
	if b == nil {
		return 0
	}
	return e.powerOutput(b, fromDir.Opposite())
}

// maxNeighborPower is the max of getPower across all four cardinals.
func (e *Engine) maxNeighborPower(pos Vec2i) uint8 {
	var max uint8
	for _, dir := range cardinals {
		if p := e.getPower(pos, dir); p > max {
			max = p
		}
	}
	return max
}

// quasiConnectivity is the QC hook: always false, per spec Non-goals.
func quasiConnectivity(pos Vec2i) bool {
	return false
}
