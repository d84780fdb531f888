package style_test

import (
	"reflect"
	"testing"

	"cssd/colors"
	"cssd/style"
	"cssd/units"
)

func TestNumber(t *testing.T) {
	check := style.Number().Check

	for _, in := range []any{10, -3, 1.5, "10", "1.5", uint8(7)} {
		if _, err := check(in); err != nil {
			t.Errorf("Number().Check(%v) failed: %v", in, err)
		}
	}
	if v, _ := check(10); v != 10.0 {
		t.Errorf("Number().Check(10) = %v, want float64 10", v)
	}

	for _, in := range []any{"invalid", nil, units.Px(10), colors.RGB(0, 0, 0), "10px"} {
		if v, err := check(in); err == nil {
			t.Errorf("Number().Check(%v) = %v, want error", in, v)
		}
	}
	if _, err := check("invalid"); err.Error() != "Cannot coerce invalid to float64" {
		t.Errorf("unexpected coercion message: %v", err)
	}
}

func TestNumber_Bounds(t *testing.T) {
	check := style.Number(style.Min(0), style.Max(1)).Check

	for _, in := range []any{0, 0.5, 1} {
		if _, err := check(in); err != nil {
			t.Errorf("Check(%v) failed: %v", in, err)
		}
	}

	if _, err := check(-0.1); err == nil {
		t.Error("Check(-0.1) succeeded")
	} else if err.Error() != "Value -0.1 below minimum value 0" {
		t.Errorf("unexpected message: %v", err)
	}

	if _, err := check(1.1); err == nil {
		t.Error("Check(1.1) succeeded")
	} else if err.Error() != "Value 1.1 above maximum value 1" {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestInteger(t *testing.T) {
	check := style.Integer().Check

	if v, err := check(10); err != nil || v != 10 {
		t.Errorf("Integer().Check(10) = %v, %v", v, err)
	}
	if v, err := check("10"); err != nil || v != 10 {
		t.Errorf("Integer().Check(\"10\") = %v, %v", v, err)
	}
	if v, err := check(10.7); err != nil || v != 10 {
		t.Errorf("Integer().Check(10.7) = %v, %v, want truncation to 10", v, err)
	}
	for _, in := range []any{"invalid", "1.5", nil, units.Px(10)} {
		if v, err := check(in); err == nil {
			t.Errorf("Integer().Check(%v) = %v, want error", in, v)
		}
	}
}

func TestInteger_Bounds(t *testing.T) {
	check := style.Integer(style.Min(1), style.Max(10)).Check

	if _, err := check(5); err != nil {
		t.Errorf("Check(5) failed: %v", err)
	}
	if _, err := check(0); err == nil {
		t.Error("Check(0) succeeded")
	}
	if _, err := check(11); err == nil {
		t.Error("Check(11) succeeded")
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		in   any
		want units.Value
	}{
		{10, units.Px(10)},
		{"20px", units.Px(20)},
		{"30%", units.Pct(30)},
		{units.Px(5), units.Px(5)},
	}
	for _, tt := range tests {
		v, err := style.Length.Check(tt.in)
		if err != nil {
			t.Errorf("Length.Check(%v) failed: %v", tt.in, err)
			continue
		}
		if v != tt.want {
			t.Errorf("Length.Check(%v) = %v, want %v", tt.in, v, tt.want)
		}
	}

	for _, in := range []any{"invalid", "#112233", nil, colors.RGB(0, 0, 0)} {
		if v, err := style.Length.Check(in); err == nil {
			t.Errorf("Length.Check(%v) = %v, want error", in, v)
		}
	}
}

func TestPercent(t *testing.T) {
	if v, err := style.Percent.Check("30%"); err != nil || v != units.Pct(30) {
		t.Errorf("Percent.Check(30%%) = %v, %v", v, err)
	}
	if v, err := style.Percent.Check(units.Pct(99)); err != nil || v != units.Pct(99) {
		t.Errorf("Percent.Check(Pct(99)) = %v, %v", v, err)
	}
	for _, in := range []any{10, "20px", units.Px(10), "invalid", nil} {
		if v, err := style.Percent.Check(in); err == nil {
			t.Errorf("Percent.Check(%v) = %v, want error", in, v)
		}
	}
}

func TestColorValidator(t *testing.T) {
	if v, err := style.Color.Check("#112233"); err != nil || v != colors.RGB(0x11, 0x22, 0x33) {
		t.Errorf("Color.Check(#112233) = %v, %v", v, err)
	}
	if v, err := style.Color.Check("rebeccapurple"); err != nil || v != colors.RGB(0x66, 0x33, 0x99) {
		t.Errorf("Color.Check(rebeccapurple) = %v, %v", v, err)
	}
	for _, in := range []any{10, "20px", units.Pct(30), "a", nil, "none"} {
		if v, err := style.Color.Check(in); err == nil {
			t.Errorf("Color.Check(%v) = %v, want error", in, v)
		}
	}
}

func TestBorderSpacing(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []units.Value
	}{
		{"single number", 5, []units.Value{units.Px(5)}},
		{"single string", "10px", []units.Value{units.Px(10)}},
		{"two in string", "1px 2px", []units.Value{units.Px(1), units.Px(2)}},
		{"padded string", "  1   2  ", []units.Value{units.Px(1), units.Px(2)}},
		{"sequence", []any{1, "2px"}, []units.Value{units.Px(1), units.Px(2)}},
		{"typed sequence", []int{3, 4}, []units.Value{units.Px(3), units.Px(4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := style.BorderSpacing.Check(tt.in)
			if err != nil {
				t.Fatalf("Check(%v) failed: %v", tt.in, err)
			}
			if !reflect.DeepEqual(v, tt.want) {
				t.Errorf("Check(%v) = %v, want %v", tt.in, v, tt.want)
			}
		})
	}

	for _, in := range []any{"1 2 3", []any{1, 2, 3}, []any{}, "", "invalid"} {
		if v, err := style.BorderSpacing.Check(in); err == nil {
			t.Errorf("Check(%v) = %v, want error", in, v)
		}
	}
	if _, err := style.BorderSpacing.Check("1 2 3"); err.Error() != "Should provide 1 or 2 <length> values!" {
		t.Errorf("unexpected message: %v", err)
	}
}
