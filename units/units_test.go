package units_test

import (
	"testing"

	"cssd/units"
)

func TestParse_Numbers(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want units.Value
	}{
		{"int", 10, units.Px(10)},
		{"negative int", -3, units.Px(-3)},
		{"int64", int64(7), units.Px(7)},
		{"uint", uint(4), units.Px(4)},
		{"float64", 1.5, units.Px(1.5)},
		{"float32", float32(2), units.Px(2)},
		{"zero", 0, units.Px(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := units.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%v) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Strings(t *testing.T) {
	tests := []struct {
		in   string
		want units.Value
	}{
		{"10px", units.Px(10)},
		{"  10px  ", units.Px(10)},
		{"10", units.Px(10)},
		{"-4px", units.Px(-4)},
		{"1.5em", units.Value{Scalar: 1.5, Unit: units.UnitEm}},
		{"12pt", units.Value{Scalar: 12, Unit: units.UnitPt}},
		{"2rem", units.Value{Scalar: 2, Unit: units.UnitRem}},
		{"50vw", units.Value{Scalar: 50, Unit: units.UnitVw}},
		{"30%", units.Pct(30)},
		{"0%", units.Pct(0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := units.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Passthrough(t *testing.T) {
	in := units.Pct(42)
	got, err := units.Parse(in)
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
		"auto",
		"#112233",
		"10 20",
		"10furlong",
		"px",
		nil,
		struct{}{},
	}
	for _, in := range invalid {
		if v, err := units.Parse(in); err == nil {
			t.Errorf("Parse(%v) = %v, want error", in, v)
		}
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		in   units.Value
		want string
	}{
		{units.Px(10), "10px"},
		{units.Px(0), "0px"},
		{units.Px(1.5), "1.5px"},
		{units.Pct(30), "30%"},
		{units.Value{Scalar: 2, Unit: units.UnitEm}, "2em"},
		{units.Value{Scalar: -4, Unit: units.UnitPt}, "-4pt"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValue_IsPercent(t *testing.T) {
	if !units.Pct(10).IsPercent() {
		t.Error("Pct(10).IsPercent() = false")
	}
	if units.Px(10).IsPercent() {
		t.Error("Px(10).IsPercent() = true")
	}
}

func TestParseUnit(t *testing.T) {
	for _, name := range units.UnitNames() {
		u, err := units.ParseUnit(name)
		if err != nil {
			t.Errorf("ParseUnit(%q) failed: %v", name, err)
			continue
		}
		if u.String() != name {
			t.Errorf("ParseUnit(%q).String() = %q", name, u.String())
		}
	}
	if _, err := units.ParseUnit("furlong"); err == nil {
		t.Error("ParseUnit(furlong) succeeded")
	}
}
