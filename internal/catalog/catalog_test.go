package catalog_test

import (
	"testing"

	"redstonesim.dev/internal/catalog"
)

func TestLoadCatalog_ValidatesAgainstSchema(t *testing.T) {
	c, err := catalog.LoadCatalog("../../configs", "../../schemas")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Palette) == 0 {
		t.Fatalf("expected a non-empty palette")
	}
	if _, ok := c.Defs["minecraft:redstone_dust"]; !ok {
		t.Fatalf("expected wire id in catalog defs")
	}
	if c.Digest == "" {
		t.Fatalf("expected a non-empty digest")
	}
}

func TestLoadTuning_FallsBackToDefaultsWhenMissing(t *testing.T) {
	tune, err := catalog.LoadTuning("./does/not/exist/tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tune != catalog.DefaultTuning() {
		t.Fatalf("expected defaults, got %+v", tune)
	}
}

func TestLoadTuning_ReadsFile(t *testing.T) {
	tune, err := catalog.LoadTuning("../../configs/tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tune.GridWidth != 64 || tune.GridHeight != 48 || tune.TickRateHz != 20 {
		t.Fatalf("unexpected tuning values: %+v", tune)
	}
}
