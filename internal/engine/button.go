package engine

// ButtonLogic tracks whether the button is currently pressed; turn-off
// is scheduled 20 game ticks after press (spec §4.7).
type ButtonLogic struct {
	Pressed bool
}

const buttonPulseTicks = 20

// pressButton: re-press while pressed is a no-op.
func (e *Engine) pressButton(b *Block) {
	if b.Logic.Button.Pressed {
		return
	}
	b.Logic.Button.Pressed = true
	b.Visual.Powered = true
	b.Visual.Power = 15
	e.notifyNeighbors(b.Pos)
	e.sched.schedule(b.Pos, e.tick, buttonPulseTicks, 0, ScheduledPayload{Kind: "button"})
}

func (e *Engine) buttonOnScheduledTick(b *Block) {
	b.Logic.Button.Pressed = false
	b.Visual.Powered = false
	b.Visual.Power = 0
	e.notifyNeighbors(b.Pos)
}
