package machinecfg

import (
	"path/filepath"
	"testing"

	"enigma-core/machine"
)

func TestDecodeFull(t *testing.T) {
	data := []byte(`
reflector: C
rotors: [IV, V, VI]
rings: [10, 5, 12]
position: WXY
plugboard: AE BF CM
preserve_non_alpha: false
`)
	cfg, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Reflector != "C" || cfg.Rotors != [3]string{"IV", "V", "VI"} {
		t.Errorf("wheels wrong: %+v", cfg)
	}
	if cfg.Rings != [3]int{10, 5, 12} || cfg.Position != "WXY" {
		t.Errorf("setting wrong: %+v", cfg)
	}
	if len(cfg.Plugboard) != 3 || cfg.Plugboard[0] != "AE" {
		t.Errorf("plugboard wrong: %v", cfg.Plugboard)
	}
	if cfg.PreserveNonAlpha {
		t.Error("preserve_non_alpha: false not honored")
	}
}

// A minimal file keeps the stock defaults.
func TestDecodeDefaults(t *testing.T) {
	cfg, err := Decode([]byte(`position: KDO`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	def := machine.Default()
	if cfg.Reflector != def.Reflector || cfg.Rotors != def.Rotors || cfg.Rings != def.Rings {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Position != "KDO" {
		t.Errorf("position = %s, want KDO", cfg.Position)
	}
	if !cfg.PreserveNonAlpha {
		t.Error("preserve_non_alpha should default to true")
	}
}

func TestDecodeBadShapes(t *testing.T) {
	for name, data := range map[string]string{
		"two rotors":  `rotors: [I, II]`,
		"four rings":  `rings: [1, 1, 1, 1]`,
		"broken yaml": `rotors: [`,
	} {
		if _, err := Decode([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := machine.Default()
	cfg.Rotors = [3]string{"II", "I", "V"}
	cfg.Rings = [3]int{3, 14, 7}
	cfg.Position = "QRS"
	cfg.Plugboard = []string{"AB", "CD"}
	cfg.PreserveNonAlpha = false

	path := filepath.Join(t.TempDir(), "key.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Rotors != cfg.Rotors || got.Rings != cfg.Rings || got.Position != cfg.Position {
		t.Errorf("round trip mismatch: %+v vs %+v", got, cfg)
	}
	if got.PreserveNonAlpha != cfg.PreserveNonAlpha || len(got.Plugboard) != 2 {
		t.Errorf("policy/plugboard mismatch: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
