package builder

import (
	"math"
	"strings"
	"testing"

	"bizsite-backend/model"
)

func TestResolveThemeAppliesOverrides(t *testing.T) {
	resolved := ResolveTheme(model.ProjectTheme{
		PresetID: "minimal-light",
		Overrides: model.ThemeOverrides{
			Primary: "#ff0000",
		},
	})

	if resolved.Vars.Primary != "#ff0000" {
		t.Fatalf("override not applied: %q", resolved.Vars.Primary)
	}
	if resolved.Vars.Bg != "#f8fafc" {
		t.Fatalf("non-overridden var changed: %q", resolved.Vars.Bg)
	}
	if resolved.ButtonStyle != model.ButtonStyleRounded {
		t.Fatalf("button style not filled from preset: %q", resolved.ButtonStyle)
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	resolved := ResolveTheme(model.ProjectTheme{PresetID: "no-such-theme"})
	if resolved.Vars != THEME_PRESETS[0].Vars {
		t.Fatalf("unknown preset did not fall back: %+v", resolved.Vars)
	}
}

func TestThemeVarsToCSSEmitsEveryVarOnce(t *testing.T) {
	css := ThemeVarsToCSS(THEME_PRESETS[0].Vars)

	for _, name := range []string{"--bg", "--surface", "--text", "--muted", "--primary", "--secondary", "--accent", "--border"} {
		if got := strings.Count(css, name+":"); got != 1 {
			t.Fatalf("want %s exactly once, got %d\n%s", name, got, css)
		}
	}
	if strings.Count(css, "\n") != 7 {
		t.Fatalf("want 8 declarations on 8 lines:\n%s", css)
	}
}

func TestContrastRatio(t *testing.T) {
	blackOnWhite := ContrastRatio("#000000", "#ffffff")
	if math.Abs(blackOnWhite-21) > 0.01 {
		t.Fatalf("black on white: want 21, got %f", blackOnWhite)
	}

	whiteOnBlack := ContrastRatio("#ffffff", "#000000")
	if math.Abs(blackOnWhite-whiteOnBlack) > 1e-9 {
		t.Fatalf("ratio is not symmetric: %f vs %f", blackOnWhite, whiteOnBlack)
	}

	same := ContrastRatio("#888888", "#888888")
	if math.Abs(same-1) > 0.01 {
		t.Fatalf("identical colors: want 1, got %f", same)
	}

	short := ContrastRatio("#000", "#fff")
	if math.Abs(short-21) > 0.01 {
		t.Fatalf("short hex form: want 21, got %f", short)
	}
}

func TestContrastRatioMalformedHexIsMaximal(t *testing.T) {
	for _, bad := range []string{"", "red", "#12", "#12345", "#gggggg"} {
		if got := ContrastRatio(bad, "#ffffff"); got != 21 {
			t.Fatalf("ContrastRatio(%q): want 21, got %f", bad, got)
		}
	}
}
