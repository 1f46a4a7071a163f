package config

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.RGBA
	}{
		{"RRGGBB", "#487EFA", color.RGBA{R: 0x48, G: 0x7E, B: 0xFA, A: 0xFF}},
		{"AARRGGBB", "#80353E59", color.RGBA{R: 0x35, G: 0x3E, B: 0x59, A: 0x80}},
		{"0x 前缀", "0xff3B445B", color.RGBA{R: 0x3B, G: 0x44, B: 0x5B, A: 0xFF}},
		{"小写", "#dfe5ff", color.RGBA{R: 0xDF, G: 0xE5, B: 0xFF, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.input, err)
			}
			if got.ToRGBA() != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got.ToRGBA(), tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "#123", "#GGGGGG", "red"} {
		if _, err := ParseColor(input); err == nil {
			t.Errorf("ParseColor(%q) should fail", input)
		}
	}
}

// TestColorYAML 测试颜色在 YAML 中的读写
func TestColorYAML(t *testing.T) {
	type holder struct {
		C Color `yaml:"c"`
	}

	var h holder
	if err := yaml.Unmarshal([]byte(`c: "#A0DFBB"`), &h); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if h.C.G != 0xDF {
		t.Errorf("G: got %#x, want 0xdf", h.C.G)
	}

	out, err := yaml.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back holder
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal of %q error: %v", string(out), err)
	}
	if back.C != h.C {
		t.Errorf("round trip: got %v, want %v", back.C, h.C)
	}
}

// TestColorImplementsColor Color 可以直接交给 ebiten 绘制函数
func TestColorImplementsColor(t *testing.T) {
	var c color.Color = MustParseColor("#FFFFFF")
	r, g, b, a := c.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}
