package engine

// LeverLogic is stateless between toggle calls: just an on/off flag.
type LeverLogic struct {
	On bool
}

// toggleLever flips the lever and notifies neighbors (spec §4.6).
func (e *Engine) toggleLever(b *Block) {
	b.Logic.Lever.On = !b.Logic.Lever.On
	b.Visual.Powered = b.Logic.Lever.On
	b.Visual.Power = boolPower(b.Logic.Lever.On)
	e.notifyNeighbors(b.Pos)
}
