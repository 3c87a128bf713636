// Package catalog loads the block identifier palette and the runtime
// tuning parameters a server process needs before it can construct an
// engine.Engine: grid dimensions, tick rate, and the external id ->
// engine.BlockKind table (engine.ids.go owns the reverse direction).
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

func digestOf(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// BlockDef mirrors one entry of blocks.json: an external wire identifier
// plus the engine.BlockKind name it maps to (validated against
// schemas/blocks.schema.json, not re-validated against engine.ids.go at
// load time — engine.CreateBlockByID does that when a client actually
// tries to place one).
type BlockDef struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

// Catalog is the immutable, process-lifetime palette + digest pair a
// server hands to every connecting client in its WELCOME message.
type Catalog struct {
	Palette []string
	Defs    map[string]BlockDef
	Digest  string
}

// Tuning holds the runtime parameters read from tuning.yaml: grid size
// and simulation cadence. Unlike the palette these are not sent over
// the wire verbatim — WorldParams in the protocol package reshapes them.
type Tuning struct {
	TickRateHz int `yaml:"tick_rate_hz"`
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
}

// DefaultTuning matches engine.DefaultWidth/DefaultHeight and a 20Hz
// tick rate (one redstone tick per two game ticks, 10 redstone ticks/s).
func DefaultTuning() Tuning {
	return Tuning{TickRateHz: 20, GridWidth: 64, GridHeight: 48}
}

// LoadCatalog reads <dir>/blocks.json, validating it against
// schemas/blocks.schema.json before trusting its contents.
func LoadCatalog(dir, schemaDir string) (*Catalog, error) {
	path := filepath.Join(dir, "blocks.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blocks.json: %w", err)
	}

	schema, err := jsonschema.Compile(filepath.Join(schemaDir, "blocks.schema.json"))
	if err != nil {
		return nil, fmt.Errorf("compile blocks schema: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("blocks.json: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("blocks.json: schema validation: %w", err)
	}

	var defs []BlockDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("blocks.json: %w", err)
	}

	c := &Catalog{Defs: map[string]BlockDef{}}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("blocks.json: entry with empty id")
		}
		c.Defs[d.ID] = d
	}
	ids := make([]string, 0, len(c.Defs))
	for id := range c.Defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	c.Palette = ids
	c.Digest = digestOf(raw)
	return c, nil
}

// LoadTuning reads tuning.yaml, falling back to DefaultTuning when the
// file does not exist (a fresh checkout should still run).
func LoadTuning(path string) (Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTuning(), nil
		}
		return Tuning{}, err
	}
	t := DefaultTuning()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Tuning{}, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}
