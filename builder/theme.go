package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"bizsite-backend/model"
)

// ResolvedTheme is the concrete style bundle the generator consumes.
type ResolvedTheme struct {
	Vars        model.ThemeVars
	ButtonStyle model.ButtonStyle
}

// NormalizeTheme pins the preset id to a known preset and fills the
// button style from the preset when unset.
func NormalizeTheme(theme model.ProjectTheme) model.ProjectTheme {
	preset := GetThemePreset(theme.PresetID)
	buttonStyle := theme.ButtonStyle
	if buttonStyle == "" {
		buttonStyle = preset.ButtonStyle
	}
	return model.ProjectTheme{
		PresetID:    preset.ID,
		Overrides:   theme.Overrides,
		ButtonStyle: buttonStyle,
	}
}

// ResolveTheme merges preset variables with per-key overrides; an
// override wins whenever it is non-empty.
func ResolveTheme(theme model.ProjectTheme) ResolvedTheme {
	normalized := NormalizeTheme(theme)
	preset := GetThemePreset(normalized.PresetID)
	vars := preset.Vars

	o := normalized.Overrides
	if o.Bg != "" {
		vars.Bg = o.Bg
	}
	if o.Surface != "" {
		vars.Surface = o.Surface
	}
	if o.Text != "" {
		vars.Text = o.Text
	}
	if o.Muted != "" {
		vars.Muted = o.Muted
	}
	if o.Primary != "" {
		vars.Primary = o.Primary
	}
	if o.Secondary != "" {
		vars.Secondary = o.Secondary
	}
	if o.Accent != "" {
		vars.Accent = o.Accent
	}
	if o.Border != "" {
		vars.Border = o.Border
	}

	return ResolvedTheme{Vars: vars, ButtonStyle: normalized.ButtonStyle}
}

// ThemeVarsToCSS emits one `--name: value;` declaration per variable.
func ThemeVarsToCSS(vars model.ThemeVars) string {
	return strings.Join([]string{
		fmt.Sprintf("--bg: %s;", vars.Bg),
		fmt.Sprintf("--surface: %s;", vars.Surface),
		fmt.Sprintf("--text: %s;", vars.Text),
		fmt.Sprintf("--muted: %s;", vars.Muted),
		fmt.Sprintf("--primary: %s;", vars.Primary),
		fmt.Sprintf("--secondary: %s;", vars.Secondary),
		fmt.Sprintf("--accent: %s;", vars.Accent),
		fmt.Sprintf("--border: %s;", vars.Border),
	}, "\n")
}

func channelToLinear(value int) float64 {
	ratio := float64(value) / 255
	if ratio <= 0.03928 {
		return ratio / 12.92
	}
	return math.Pow((ratio+0.055)/1.055, 2.4)
}

type rgb struct {
	r, g, b int
}

func hexToRgb(hex string) (rgb, bool) {
	normalized := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(normalized) {
	case 3:
		var expanded strings.Builder
		for _, char := range normalized {
			expanded.WriteRune(char)
			expanded.WriteRune(char)
		}
		normalized = expanded.String()
	case 6:
	default:
		return rgb{}, false
	}
	num, err := strconv.ParseUint(normalized, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{
		r: int(num>>16) & 255,
		g: int(num>>8) & 255,
		b: int(num) & 255,
	}, true
}

func relativeLuminance(c rgb) float64 {
	return 0.2126*channelToLinear(c.r) + 0.7152*channelToLinear(c.g) + 0.0722*channelToLinear(c.b)
}

// ContrastRatio computes the WCAG contrast ratio of two hex colors.
// Malformed input yields the maximal ratio 21 so a bad color never
// blocks rendering.
func ContrastRatio(foregroundHex, backgroundHex string) float64 {
	fg, okFg := hexToRgb(foregroundHex)
	bg, okBg := hexToRgb(backgroundHex)
	if !okFg || !okBg {
		return 21
	}
	fgLum := relativeLuminance(fg)
	bgLum := relativeLuminance(bg)
	lighter := math.Max(fgLum, bgLum)
	darker := math.Min(fgLum, bgLum)
	return (lighter + 0.05) / (darker + 0.05)
}
