package engine

// TorchLogic tracks whether a redstone torch is currently lit. The
// engine keeps power level in Visual.Power (0 or 15); Lit is redundant
// with Power > 0 but kept for readability at call sites.
type TorchLogic struct {
	Lit bool
}

const torchReevalDelay = 2 // game ticks

// torchOnPlacedOrNeighbor schedules a reevaluation 2 ticks out; it never
// mutates power directly (spec §4.5: onPlaced / onNeighborUpdate only
// schedule, onScheduledTick does the actual transition).
func (e *Engine) torchOnPlacedOrNeighbor(b *Block) {
	e.sched.schedule(b.Pos, e.tick, torchReevalDelay, 0, ScheduledPayload{Kind: "torch"})
}

func (e *Engine) torchOnScheduledTick(b *Block) {
	attachDir := b.Rotation.Dir()
	inputPower := e.getPower(b.Pos, attachDir)

	lit := b.Logic.Torch.Lit
	switch {
	case inputPower > 0 && lit:
		b.Logic.Torch.Lit = false
		b.Visual.Power = 0
		b.Visual.Powered = false
		b.Visual.TypeTag = "off"
		e.notifyNeighbors(b.Pos)
	case inputPower == 0 && !lit:
		b.Logic.Torch.Lit = true
		b.Visual.Power = 15
		b.Visual.Powered = true
		b.Visual.TypeTag = "on"
		e.notifyNeighbors(b.Pos)
	}
}
