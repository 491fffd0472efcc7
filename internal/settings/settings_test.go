package settings

import "testing"

func TestFromOrdinalFallsBackToAutomatic(t *testing.T) {
	cases := []struct {
		in   int64
		want DisplaySetting
	}{
		{0, Light},
		{1, Dark},
		{2, Automatic},
		{-1, Automatic},
		{3, Automatic},
		{42, Automatic},
		{-1000, Automatic},
	}
	for _, tc := range cases {
		if got := FromOrdinal(tc.in); got != tc.want {
			t.Fatalf("FromOrdinal(%d): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestOrdinalRoundTrip(t *testing.T) {
	for _, s := range All() {
		if got := FromOrdinal(s.Ordinal()); got != s {
			t.Fatalf("FromOrdinal(Ordinal(%v)): expected %v, got %v", s, s, got)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    DisplaySetting
		wantErr bool
	}{
		{"light", Light, false},
		{"Dark", Dark, false},
		{"  AUTOMATIC ", Automatic, false},
		{"auto", Automatic, false},
		{"", Automatic, true},
		{"dusk", Automatic, true},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr && err == nil {
			t.Fatalf("Parse(%q): expected error", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestAppearanceRowOrder(t *testing.T) {
	// The screen lists Dark first; the enum declares Light first. The row
	// slice is the source of truth for layout.
	want := []DisplaySetting{Dark, Light, Automatic}
	if len(AppearanceRows) != len(want) {
		t.Fatalf("expected %d appearance rows, got %d", len(want), len(AppearanceRows))
	}
	for i, s := range want {
		if AppearanceRows[i] != s {
			t.Fatalf("row %d: expected %v, got %v", i, s, AppearanceRows[i])
		}
	}
}

func TestStyleMapping(t *testing.T) {
	cases := []struct {
		in   DisplaySetting
		want InterfaceStyle
	}{
		{Light, StyleLight},
		{Dark, StyleDark},
		{Automatic, StyleUnspecified},
	}
	for _, tc := range cases {
		if got := tc.in.Style(); got != tc.want {
			t.Fatalf("%v.Style(): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
