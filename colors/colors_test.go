package colors_test

import (
	"testing"

	"cssd/colors"
)

func TestParse_Hex(t *testing.T) {
	tests := []struct {
		in   string
		want colors.Color
	}{
		{"#112233", colors.RGB(0x11, 0x22, 0x33)},
		{"#123", colors.RGB(0x11, 0x22, 0x33)},
		{"#FFAA00", colors.RGB(0xff, 0xaa, 0x00)},
		{"#000000", colors.RGB(0, 0, 0)},
		{"#00000000", colors.RGBA(0, 0, 0, 0)},
		{"#663399ff", colors.RGB(0x66, 0x33, 0x99)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := colors.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Functions(t *testing.T) {
	tests := []struct {
		in   string
		want colors.Color
	}{
		{"rgb(17, 34, 51)", colors.RGB(17, 34, 51)},
		{"rgb(17,34,51)", colors.RGB(17, 34, 51)},
		{"rgb(100%, 0%, 50%)", colors.RGB(255, 0, 127)},
		{"rgba(17, 34, 51, 0.5)", colors.RGBA(17, 34, 51, 0.5)},
		{"rgba(0, 0, 0, 1)", colors.RGB(0, 0, 0)},
		{"rgb(300, -4, 51)", colors.RGB(255, 0, 51)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := colors.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Named(t *testing.T) {
	tests := []struct {
		in   string
		want colors.Color
	}{
		{"black", colors.RGB(0, 0, 0)},
		{"WHITE", colors.RGB(255, 255, 255)},
		{"Goldenrod", colors.RGB(0xda, 0xa5, 0x20)},
		{"rebeccapurple", colors.RGB(0x66, 0x33, 0x99)},
	}
	for _, tt := range tests {
		got, err := colors.Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParse_Passthrough(t *testing.T) {
	in := colors.RGB(1, 2, 3)
	got, err := colors.Parse(in)
	if err != nil {
		t.Fatalf("Parse(%v) failed: %v", in, err)
	}
	if got != in {
		t.Errorf("Parse(%v) = %v, want passthrough", in, got)
	}
}

func TestParse_Invalid(t *testing.T) {
	invalid := []any{
		"",
		"invalid",
		"none",
		"#12",
		"#12345",
		"#zzzzzz",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 4, 5)",
		"hsl(0, 0%, 0%)",
		10,
		nil,
	}
	for _, in := range invalid {
		if c, err := colors.Parse(in); err == nil {
			t.Errorf("Parse(%v) = %v, want error", in, c)
		}
	}
}

func TestColor_String(t *testing.T) {
	tests := []struct {
		in   colors.Color
		want string
	}{
		{colors.RGB(0x11, 0x22, 0x33), "#112233"},
		{colors.RGB(0xff, 0xff, 0xff), "#ffffff"},
		{colors.RGBA(17, 34, 51, 0.5), "rgba(17, 34, 51, 0.5)"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
