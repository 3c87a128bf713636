package engine

// WireLogic is the live state of a redstone_dust block: a single power
// level, attenuated by one per hop across wire-to-wire links.
type WireLogic struct {
	PowerLevel uint8 // 0..15
}

// wireOnNeighborUpdate recomputes the wire's level as the max of:
//   - neighbor wires' level - 1 (floored at 0)
//   - neighbor power-emitting kinds' output toward us, full strength
//
// and republishes + notifies only on change, which is what guarantees
// convergence on any acyclic wire topology (spec §4.4).
func (e *Engine) wireOnNeighborUpdate(b *Block) {
	var newLevel uint8
	for _, dir := range cardinals {
		np := b.Pos.Neighbor(dir)
		nb := e.blockAt(np)
		if nb == nil {
			continue
		}
		var candidate uint8
		if nb.Kind == KindWire {
			if nb.Logic.Wire.PowerLevel > 0 {
				candidate = nb.Logic.Wire.PowerLevel - 1
			}
		} else {
			candidate = e.powerOutput(nb, dir.Opposite())
		}
		if candidate > newLevel {
			newLevel = candidate
		}
	}
	if newLevel == b.Logic.Wire.PowerLevel {
		return
	}
	b.Logic.Wire.PowerLevel = newLevel
	b.Visual.Power = newLevel
	b.Visual.Powered = newLevel > 0
	e.notifyNeighbors(b.Pos)
}
