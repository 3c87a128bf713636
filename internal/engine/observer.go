package engine

type ObserverPhase uint8

const (
	ObserverIdle ObserverPhase = iota
	ObserverPulseOn
	ObserverPulseOff
)

// ObserverLogic tracks the observer's two-phase pulse state (spec §4.10).
type ObserverLogic struct {
	Phase ObserverPhase
}

const observerHalfPhaseTicks = 2

// observerOnNeighborUpdate only reacts to updates originating from the
// detection cell (pos + face vector); any other neighbor update is
// ignored.
func (e *Engine) observerOnNeighborUpdate(b *Block, from Vec2i) {
	face := b.Rotation.Dir()
	detectCell := b.Pos.Neighbor(face)
	if from != detectCell {
		return
	}
	e.sched.schedule(b.Pos, e.tick, observerHalfPhaseTicks, 0, ScheduledPayload{Kind: "observer_on"})
}

func (e *Engine) observerOnScheduledTick(b *Block) {
	if b.Visual.Power == 0 {
		b.Logic.Observer.Phase = ObserverPulseOn
		b.Visual.Power = 15
		b.Visual.Powered = true
		b.Visual.TypeTag = "on"
		e.notifyNeighbors(b.Pos)
		e.sched.schedule(b.Pos, e.tick, observerHalfPhaseTicks, 0, ScheduledPayload{Kind: "observer_off"})
		return
	}
	b.Logic.Observer.Phase = ObserverIdle
	b.Visual.Power = 0
	b.Visual.Powered = false
	b.Visual.TypeTag = "off"
	e.notifyNeighbors(b.Pos)
}
