package renderer

import "testing"

func TestLightingMode_Next(t *testing.T) {
	expected := []LightingMode{Radiance, BRDF, Combined, ObservedArea}
	mode := ObservedArea
	for _, want := range expected {
		mode = mode.Next()
		if mode != want {
			t.Fatalf("Expected %v, got %v", want, mode)
		}
	}
}

func TestParseLightingMode(t *testing.T) {
	for _, mode := range []LightingMode{ObservedArea, Radiance, BRDF, Combined} {
		parsed, err := ParseLightingMode(mode.String())
		if err != nil || parsed != mode {
			t.Errorf("ParseLightingMode(%q) = %v, %v", mode.String(), parsed, err)
		}
	}

	if parsed, err := ParseLightingMode(" BRDF "); err != nil || parsed != BRDF {
		t.Errorf("Expected case-insensitive parse, got %v, %v", parsed, err)
	}
	if _, err := ParseLightingMode("phong"); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if got := LightingMode(9).String(); got != "LightingMode(9)" {
		t.Errorf("Unexpected string for invalid mode: %q", got)
	}
}

func TestParsePartition(t *testing.T) {
	tests := []struct {
		input    string
		expected Partition
		wantErr  bool
	}{
		{"static", PartitionStatic, false},
		{"", PartitionStatic, false},
		{"Dynamic", PartitionDynamic, false},
		{"tiles", PartitionStatic, true},
	}
	for _, tt := range tests {
		got, err := ParsePartition(tt.input)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("ParsePartition(%q) = %v, %v", tt.input, got, err)
		}
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	c := Config{Mode: Radiance, Shadows: true, ShadowBias: 0.05, Workers: 3, DynamicBatch: 7}.WithDefaults()
	if c.ShadowBias != 0.05 || c.Workers != 3 || c.DynamicBatch != 7 {
		t.Errorf("Expected explicit values kept, got %+v", c)
	}
	if c.Mode != Radiance || !c.Shadows {
		t.Errorf("Expected toggles kept, got %+v", c)
	}
	if c.Logger == nil {
		t.Error("Expected default logger")
	}

	zero := Config{}.WithDefaults()
	if zero.ShadowBias != DefaultShadowBias || zero.DynamicBatch != DefaultDynamicBatch || zero.Workers <= 0 {
		t.Errorf("Expected defaults, got %+v", zero)
	}

	disabled := Config{ShadowBias: -1}.WithDefaults()
	if disabled.ShadowBias != -1 {
		t.Errorf("Expected negative bias kept, got %g", disabled.ShadowBias)
	}

	d := DefaultConfig()
	if d.Mode != Combined || !d.Shadows {
		t.Errorf("Expected combined with shadows, got %+v", d)
	}
}
