package engine

// RepeaterLogic holds a repeater's delay (in redstone ticks, 1..4),
// whether it is currently powered, and whether a side neighbor is
// locking it (spec §4.8).
type RepeaterLogic struct {
	Delay   uint8 // 1..4 redstone ticks
	Powered bool
	Locked  bool
}

// PowerLevel is the repeater's published output level: 15 when powered,
// 0 otherwise.
func (l RepeaterLogic) PowerLevel() uint8 {
	return boolPower(l.Powered)
}

const redstoneTick = 2 // game ticks per redstone tick

// repeaterSides returns rear, left, right for a repeater/comparator
// facing direction.
func repeaterSides(facing Direction, rot Rotation) (rear Direction, left Direction, right Direction) {
	return facing.Opposite(), rot.Left().Dir(), rot.Right().Dir()
}

func (e *Engine) repeaterIsLocked(b *Block) bool {
	_, left, right := repeaterSides(b.Rotation.Dir(), b.Rotation)
	for _, dir := range [2]Direction{left, right} {
		np := b.Pos.Neighbor(dir)
		nb := e.blockAt(np)
		if nb == nil {
			continue
		}
		if nb.Kind != KindRepeater && nb.Kind != KindComparator {
			continue
		}
		if e.powerOutput(nb, dir.Opposite()) > 0 {
			return true
		}
	}
	return false
}

// repeaterOnNeighborUpdate re-evaluates locking on every call, and (only
// while unlocked) schedules a transition when rear input disagrees with
// the current powered state.
func (e *Engine) repeaterOnNeighborUpdate(b *Block) {
	b.Logic.Repeater.Locked = e.repeaterIsLocked(b)
	if b.Logic.Repeater.Locked {
		return
	}
	rear, _, _ := repeaterSides(b.Rotation.Dir(), b.Rotation)
	rearPower := e.getPower(b.Pos, rear)
	want := rearPower > 0
	if want == b.Logic.Repeater.Powered {
		return
	}
	delay := uint64(b.Logic.Repeater.Delay) * redstoneTick
	e.sched.schedule(b.Pos, e.tick, delay, 0, ScheduledPayload{Kind: "repeater"})
}

// repeaterOnScheduledTick recomputes want at fire time and commits only
// if it still differs; aborts outright if locked.
func (e *Engine) repeaterOnScheduledTick(b *Block, _ ScheduledPayload) {
	if b.Logic.Repeater.Locked {
		return
	}
	rear, _, _ := repeaterSides(b.Rotation.Dir(), b.Rotation)
	rearPower := e.getPower(b.Pos, rear)
	want := rearPower > 0
	if want == b.Logic.Repeater.Powered {
		return
	}
	b.Logic.Repeater.Powered = want
	b.Visual.Power = b.Logic.Repeater.PowerLevel()
	b.Visual.Powered = want
	b.Visual.TypeTag = onOffTag(want)
	e.notifyNeighbors(b.Pos)
}

func onOffTag(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
