package layout

import "testing"

func TestParseFlags(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Flags
		wantErr bool
	}{
		"empty":      {input: "", want: 0},
		"single":     {input: "left", want: Left},
		"pipe":       {input: "left|fill", want: Left | Fill},
		"spaces":     {input: " right | bottom ", want: Right | Bottom},
		"comma":      {input: "next,fill", want: Next | Fill},
		"mixed case": {input: "Center", want: Center},
		"unknown":    {input: "left|middle", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseFlags(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseFlags(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFlagsString(t *testing.T) {
	if got := (Left | Fill | Next).String(); got != "left|next|fill" {
		t.Errorf("String() = %q", got)
	}
	if got := Flags(0).String(); got != "" {
		t.Errorf("zero flags String() = %q", got)
	}
}

func TestFlagValuesAreDistinct(t *testing.T) {
	seen := Flags(0)
	for _, fn := range flagNames {
		if seen.Any(fn.flag) {
			t.Fatalf("flag %s overlaps another flag", fn.name)
		}
		seen |= fn.flag
	}
	if seen.Any(Flags(Vertical) | Flags(Horizontal)) {
		t.Errorf("axis bits overlap dock flags")
	}
}
