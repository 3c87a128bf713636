package engine

// BlockId is an opaque, monotonically assigned handle. Ids are never
// reused, even after the block they named is removed.
type BlockId uint64

// BlockKind is the closed catalog of block kinds the engine understands.
type BlockKind uint8

const (
	KindWire BlockKind = iota
	KindTorch
	KindLever
	KindButton
	KindRepeater
	KindComparator
	KindObserver
	KindPiston
	KindStickyPiston
	KindPistonHead
	KindPowerSource
	KindSolid
)

// VisualState is the externally observable projection of a block; logic
// state is the source of truth, visual state is republished whenever it
// changes (invariant 5 in the spec).
type VisualState struct {
	Powered   bool
	Power     uint8 // 0..15
	TypeTag   string
	Extended  bool
	Rotation  Rotation
}

// Logic is a tagged-variant logic state: exactly one of the embedded
// per-kind structs is meaningful for a given Block, selected by its Kind.
// Dispatch happens by switching on Kind (see logic.go), never through an
// interface vtable — keeps the hot neighbor-update path a flat switch.
type Logic struct {
	Wire       WireLogic
	Torch      TorchLogic
	Lever      LeverLogic
	Button     ButtonLogic
	Repeater   RepeaterLogic
	Comparator ComparatorLogic
	Observer   ObserverLogic
	Piston     PistonLogic
	Head       PistonHeadLogic
	Source     SourceLogic
	Solid      SolidLogic
}

// SolidKind distinguishes the inert-solid sub-types that matter to piston
// movability (obsidian/bedrock are immovable; plain stone is not).
type SolidKind uint8

const (
	SolidPlain SolidKind = iota
	SolidObsidian
	SolidBedrock
)

type SolidLogic struct {
	Sub SolidKind
}

type SourceLogic struct{}

// Block is the record stored for every occupied cell.
type Block struct {
	Id       BlockId
	Pos      Vec2i
	Kind     BlockKind
	Rotation Rotation
	Visual   VisualState
	Logic    Logic
}
