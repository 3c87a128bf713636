package engine

type ComparatorMode uint8

const (
	ComparatorCompare ComparatorMode = iota
	ComparatorSubtract
)

// ComparatorLogic holds the comparator's mode and its last published
// output power (spec §4.9).
type ComparatorLogic struct {
	Mode        ComparatorMode
	OutputPower uint8
}

// comparatorOnNeighborUpdate always schedules a recompute for next tick;
// comparators have no locking concept.
func (e *Engine) comparatorOnNeighborUpdate(b *Block) {
	e.sched.schedule(b.Pos, e.tick, 0, 0, ScheduledPayload{Kind: "comparator"})
}

func (e *Engine) comparatorOnScheduledTick(b *Block) {
	rear, left, right := repeaterSides(b.Rotation.Dir(), b.Rotation)
	rearPower := e.getPower(b.Pos, rear)
	sideL := e.getPower(b.Pos, left)
	sideR := e.getPower(b.Pos, right)
	sidePower := sideL
	if sideR > sidePower {
		sidePower = sideR
	}

	var out uint8
	switch b.Logic.Comparator.Mode {
	case ComparatorSubtract:
		if rearPower > sidePower {
			out = rearPower - sidePower
		}
	default: // Compare
		if rearPower >= sidePower {
			out = rearPower
		}
	}

	if out == b.Logic.Comparator.OutputPower {
		return
	}
	b.Logic.Comparator.OutputPower = out
	b.Visual.Power = out
	b.Visual.Powered = out > 0
	b.Visual.TypeTag = onOffTag(out > 0)
	e.notifyNeighbors(b.Pos)
}
