package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigMatchesComponentDesign(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Predictor.PopularityWeight != 0.15 {
		t.Errorf("PopularityWeight = %v, want 0.15", cfg.Predictor.PopularityWeight)
	}
	if cfg.Predictor.BandDivisor != 4 {
		t.Errorf("BandDivisor = %v, want 4", cfg.Predictor.BandDivisor)
	}
	if !cfg.Predictor.FirstCharStrict {
		t.Error("FirstCharStrict should default true")
	}
	if cfg.Predictor.LastCharPenalty != 2.0 {
		t.Errorf("LastCharPenalty = %v, want 2.0", cfg.Predictor.LastCharPenalty)
	}
	if cfg.Predictor.LengthSkewMax != 3.0 {
		t.Errorf("LengthSkewMax = %v, want 3.0", cfg.Predictor.LengthSkewMax)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	original := DefaultConfig()
	original.Server.MaxLimit = 10
	if err := SaveConfig(original, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.MaxLimit != 10 {
		t.Errorf("MaxLimit = %d, want 10", loaded.Server.MaxLimit)
	}
	if loaded.Predictor.PopularityWeight != original.Predictor.PopularityWeight {
		t.Errorf("PopularityWeight mismatch after round trip: %v vs %v",
			loaded.Predictor.PopularityWeight, original.Predictor.PopularityWeight)
	}
}

func TestInitConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Predictor.PopularityWeight != 0.15 {
		t.Errorf("InitConfig did not return defaults: %+v", cfg)
	}

	again, err := InitConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Server.MaxLimit != cfg.Server.MaxLimit {
		t.Error("InitConfig should load the file it just created on a second call")
	}
}
