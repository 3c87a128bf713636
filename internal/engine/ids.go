package engine

// externalId is the "minecraft:<kind>" wire identifier used at the
// engine's external boundary (persisted nowhere; used by createBlock and
// by query snapshots).
const (
	idWire            = "minecraft:redstone_dust"
	idTorchOn         = "minecraft:redstone_torch"
	idTorchOff        = "minecraft:redstone_torch_off"
	idLever           = "minecraft:lever"
	idButton          = "minecraft:button"
	idRepeater        = "minecraft:repeater"
	idRepeaterOn      = "minecraft:repeater_on"
	idComparator      = "minecraft:comparator"
	idComparatorOn    = "minecraft:comparator_on"
	idObserver        = "minecraft:observer"
	idObserverOn      = "minecraft:observer_on"
	idPiston          = "minecraft:piston"
	idStickyPiston    = "minecraft:sticky_piston"
	idPistonHead      = "minecraft:piston_head"
	idPistonInner     = "minecraft:piston_inner"
	idPowerSource     = "minecraft:redstone_block"
	idStone           = "minecraft:stone"
	idObsidian        = "minecraft:obsidian"
	idBedrock         = "minecraft:bedrock"
)

// kindFromExternalId maps an external catalog identifier to the internal
// BlockKind (and, for Solid, its sub-kind). ok is false for unknown ids.
func kindFromExternalId(id string) (BlockKind, SolidKind, bool) {
	switch id {
	case idWire:
		return KindWire, 0, true
	case idTorchOn, idTorchOff:
		return KindTorch, 0, true
	case idLever:
		return KindLever, 0, true
	case idButton:
		return KindButton, 0, true
	case idRepeater, idRepeaterOn:
		return KindRepeater, 0, true
	case idComparator, idComparatorOn:
		return KindComparator, 0, true
	case idObserver, idObserverOn:
		return KindObserver, 0, true
	case idPiston:
		return KindPiston, 0, true
	case idStickyPiston:
		return KindStickyPiston, 0, true
	case idPistonHead, idPistonInner:
		return KindPistonHead, 0, true
	case idPowerSource:
		return KindPowerSource, 0, true
	case idStone:
		return KindSolid, SolidPlain, true
	case idObsidian:
		return KindSolid, SolidObsidian, true
	case idBedrock:
		return KindSolid, SolidBedrock, true
	default:
		return 0, 0, false
	}
}

// externalIdFor returns the current wire identifier for a block, taking its
// live visual state into account for the kinds with on/off variants.
func externalIdFor(b *Block) string {
	switch b.Kind {
	case KindWire:
		return idWire
	case KindTorch:
		if b.Visual.Power > 0 {
			return idTorchOn
		}
		return idTorchOff
	case KindLever:
		return idLever
	case KindButton:
		return idButton
	case KindRepeater:
		if b.Logic.Repeater.Powered {
			return idRepeaterOn
		}
		return idRepeater
	case KindComparator:
		if b.Logic.Comparator.OutputPower > 0 {
			return idComparatorOn
		}
		return idComparator
	case KindObserver:
		if b.Visual.Power > 0 {
			return idObserverOn
		}
		return idObserver
	case KindPiston:
		return idPiston
	case KindStickyPiston:
		return idStickyPiston
	case KindPistonHead:
		return idPistonHead
	case KindPowerSource:
		return idPowerSource
	case KindSolid:
		switch b.Logic.Solid.Sub {
		case SolidObsidian:
			return idObsidian
		case SolidBedrock:
			return idBedrock
		default:
			return idStone
		}
	default:
		return ""
	}
}
