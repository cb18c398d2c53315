package render

import (
	"testing"

	"github.com/gmuffiness/agentfloor/world"
)

// TestNameHashDeterministic verifies the hash is stable and non-negative
func TestNameHashDeterministic(t *testing.T) {
	names := []string{"Claude Backend Dev", "GPT API Builder", "Gemini Analyst", ""}
	for _, name := range names {
		a := NameHash(name)
		b := NameHash(name)
		if a != b {
			t.Errorf("hash of %q not stable: %d vs %d", name, a, b)
		}
		if a < 0 {
			t.Errorf("hash of %q negative: %d", name, a)
		}
	}
}

// TestNameHashKnownValue pins the 31-multiplier accumulation
func TestNameHashKnownValue(t *testing.T) {
	// "ab" -> 'a'*31 + 'b' = 97*31 + 98 = 3105
	if h := NameHash("ab"); h != 3105 {
		t.Errorf("hash of ab = %d, want 3105", h)
	}
}

// TestAvatarGlyphStable verifies glyph assignment never changes across calls
func TestAvatarGlyphStable(t *testing.T) {
	if AvatarGlyph("Claude Debugger") != AvatarGlyph("Claude Debugger") {
		t.Error("glyph assignment not deterministic")
	}
}

// TestGrassShadeDeterministic verifies the tile variant is pure in (col,row)
func TestGrassShadeDeterministic(t *testing.T) {
	for col := 0; col < 20; col++ {
		for row := 0; row < 20; row++ {
			s := GrassShade(col, row)
			if s != GrassShade(col, row) {
				t.Fatalf("shade at (%d,%d) not stable", col, row)
			}
			if s < 0 || s > 2 {
				t.Fatalf("shade at (%d,%d) out of range: %d", col, row, s)
			}
		}
	}
}

// TestGrassShadeVaries verifies the field is not a single flat color
func TestGrassShadeVaries(t *testing.T) {
	seen := map[int]bool{}
	for col := 0; col < 30; col++ {
		for row := 0; row < 30; row++ {
			seen[GrassShade(col, row)] = true
		}
	}
	if len(seen) < 2 {
		t.Error("grass field came out flat")
	}
}

// TestFormatCurrency verifies separator grouping
func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{500, "$500"},
		{4500, "$4,500"},
		{12500, "$12,500"},
		{1234567, "$1,234,567"},
		{1499.6, "$1,500"},
		{-2000, "-$2,000"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestShortName verifies truncation with ellipsis
func TestShortName(t *testing.T) {
	if got := shortName("Short", 10); got != "Short" {
		t.Errorf("short name altered: %q", got)
	}
	got := shortName("A Very Long Agent Name", 10)
	if len([]rune(got)) != 10 {
		t.Errorf("truncated to %d runes, want 10: %q", len([]rune(got)), got)
	}
	if []rune(got)[9] != '…' {
		t.Errorf("missing ellipsis: %q", got)
	}
}

// TestWrapText verifies width bounds and word integrity
func TestWrapText(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 10)
	if len(lines) == 0 {
		t.Fatal("no lines produced")
	}
	for _, l := range lines {
		if len([]rune(l)) > 10 {
			t.Errorf("line %q wider than 10", l)
		}
	}
	if lines[0] != "the quick" {
		t.Errorf("first line %q, want two packed words", lines[0])
	}
	if wrapText("anything", 0) != nil {
		t.Error("zero width should produce nothing")
	}
}

// TestStatusLabels verifies overlay status strings
func TestStatusLabels(t *testing.T) {
	if StatusLabel(world.StatusActive) != "ACTIVE" ||
		StatusLabel(world.StatusError) != "ERROR" ||
		StatusLabel(world.Status("?")) != "UNKNOWN" {
		t.Error("unexpected status labels")
	}
}

// TestDimScalesTowardBlack verifies the terminal alpha stand-in
func TestDimScalesTowardBlack(t *testing.T) {
	c := VendorColor(world.VendorAnthropic)
	half := Dim(c, 0.5)
	r0, g0, b0 := c.RGB()
	r1, g1, b1 := half.RGB()
	if r1 > r0 || g1 > g0 || b1 > b0 {
		t.Error("dimming brightened a channel")
	}
	if Dim(c, 1.0) != c {
		t.Error("factor 1 must be identity")
	}
	r2, g2, b2 := Dim(c, 0).RGB()
	if r2 != 0 || g2 != 0 || b2 != 0 {
		t.Error("factor 0 must reach black")
	}
}
