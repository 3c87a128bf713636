package engine

// onPlaced, onNeighborUpdate, onScheduledTick and powerOutput are the
// four callbacks every block kind implements. Dispatch is a flat switch
// on Kind rather than an interface vtable (design note: sum type, pattern
// matched, no indirect calls in the hot path).

func (e *Engine) onPlaced(id BlockId) {
	b := e.blocks[id]
	if b == nil {
		return
	}
	switch b.Kind {
	case KindWire:
		e.wireOnNeighborUpdate(b)
	case KindTorch:
		e.torchOnPlacedOrNeighbor(b)
	case KindRepeater:
		e.repeaterOnNeighborUpdate(b)
	case KindComparator:
		e.comparatorOnNeighborUpdate(b)
	case KindPiston, KindStickyPiston:
		e.pistonOnNeighborUpdate(b)
	}
}

func (e *Engine) onNeighborUpdate(id BlockId, from Vec2i) {
	b := e.blocks[id]
	if b == nil {
		return
	}
	switch b.Kind {
	case KindWire:
		e.wireOnNeighborUpdate(b)
	case KindTorch:
		e.torchOnPlacedOrNeighbor(b)
	case KindRepeater:
		e.repeaterOnNeighborUpdate(b)
	case KindComparator:
		e.comparatorOnNeighborUpdate(b)
	case KindObserver:
		e.observerOnNeighborUpdate(b, from)
	case KindPiston, KindStickyPiston:
		e.pistonOnNeighborUpdate(b)
	}
}

func (e *Engine) onScheduledTick(pos Vec2i, payload ScheduledPayload) {
	b := e.blockAt(pos)
	if b == nil {
		return // OrphanSchedule: cell empty, drop silently
	}
	switch b.Kind {
	case KindTorch:
		e.torchOnScheduledTick(b)
	case KindButton:
		e.buttonOnScheduledTick(b)
	case KindRepeater:
		e.repeaterOnScheduledTick(b, payload)
	case KindComparator:
		e.comparatorOnScheduledTick(b)
	case KindObserver:
		e.observerOnScheduledTick(b)
	case KindPiston, KindStickyPiston:
		e.pistonOnScheduledTick(b)
	}
}

func (e *Engine) powerOutput(b *Block, toDir Direction) uint8 {
	switch b.Kind {
	case KindWire:
		return b.Logic.Wire.PowerLevel
	case KindTorch:
		if toDir == b.Rotation.Dir() {
			return 0
		}
		return b.Visual.Power
	case KindLever:
		return boolPower(b.Logic.Lever.On)
	case KindButton:
		return boolPower(b.Logic.Button.Pressed)
	case KindRepeater:
		if toDir == b.Rotation.Dir() {
			return b.Logic.Repeater.PowerLevel()
		}
		return 0
	case KindComparator:
		if toDir == b.Rotation.Dir() {
			return b.Logic.Comparator.OutputPower
		}
		return 0
	case KindObserver:
		if toDir == b.Rotation.Dir().Opposite() {
			return b.Visual.Power
		}
		return 0
	case KindPowerSource:
		return 15
	default:
		// Solid and PistonHead: no re-transmission of power (non-goal).
		return 0
	}
}

func boolPower(on bool) uint8 {
	if on {
		return 15
	}
	return 0
}
