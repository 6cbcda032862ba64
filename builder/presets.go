package builder

import "bizsite-backend/model"

type ThemePreset struct {
	ID          string            `json:"id"`
	Label       string            `json:"label"`
	Vars        model.ThemeVars   `json:"vars"`
	ButtonStyle model.ButtonStyle `json:"buttonStyle"`
}

// THEME_PRESETS backs all theme resolution. The first entry is the
// fallback for unknown preset ids.
var THEME_PRESETS = []ThemePreset{
	{
		ID:    "minimal-light",
		Label: "Minimal Light",
		Vars: model.ThemeVars{
			Bg:        "#f8fafc",
			Surface:   "#ffffff",
			Text:      "#0f172a",
			Muted:     "#475569",
			Primary:   "#1d4ed8",
			Secondary: "#0f766e",
			Accent:    "#2563eb",
			Border:    "#dbe2ea",
		},
		ButtonStyle: model.ButtonStyleRounded,
	},
	{
		ID:    "minimal-dark",
		Label: "Minimal Dark",
		Vars: model.ThemeVars{
			Bg:        "#0b1220",
			Surface:   "#111827",
			Text:      "#e5e7eb",
			Muted:     "#94a3b8",
			Primary:   "#38bdf8",
			Secondary: "#22d3ee",
			Accent:    "#0ea5e9",
			Border:    "#1f2937",
		},
		ButtonStyle: model.ButtonStyleRounded,
	},
	{
		ID:    "modern-neutral",
		Label: "Modern Neutral",
		Vars: model.ThemeVars{
			Bg:        "#f6f5f2",
			Surface:   "#ffffff",
			Text:      "#1f2937",
			Muted:     "#6b7280",
			Primary:   "#334155",
			Secondary: "#64748b",
			Accent:    "#0f766e",
			Border:    "#d1d5db",
		},
		ButtonStyle: model.ButtonStyleRounded,
	},
	{
		ID:    "bold-contrast",
		Label: "Bold Contrast",
		Vars: model.ThemeVars{
			Bg:        "#0f172a",
			Surface:   "#ffffff",
			Text:      "#0f172a",
			Muted:     "#334155",
			Primary:   "#ef4444",
			Secondary: "#0ea5e9",
			Accent:    "#f59e0b",
			Border:    "#0f172a",
		},
		ButtonStyle: model.ButtonStyleSquare,
	},
	{
		ID:    "coastal",
		Label: "Coastal",
		Vars: model.ThemeVars{
			Bg:        "#f0f9ff",
			Surface:   "#ffffff",
			Text:      "#0c4a6e",
			Muted:     "#0369a1",
			Primary:   "#0891b2",
			Secondary: "#14b8a6",
			Accent:    "#06b6d4",
			Border:    "#bae6fd",
		},
		ButtonStyle: model.ButtonStylePill,
	},
	{
		ID:    "earthy",
		Label: "Earthy",
		Vars: model.ThemeVars{
			Bg:        "#faf7f2",
			Surface:   "#fffdf9",
			Text:      "#3f2d20",
			Muted:     "#6e5847",
			Primary:   "#8b5e34",
			Secondary: "#4d7c0f",
			Accent:    "#b45309",
			Border:    "#e5d5c5",
		},
		ButtonStyle: model.ButtonStyleRounded,
	},
	{
		ID:    "classic-blue",
		Label: "Classic Blue",
		Vars: model.ThemeVars{
			Bg:        "#eef4ff",
			Surface:   "#ffffff",
			Text:      "#0b3b8c",
			Muted:     "#1d4ed8",
			Primary:   "#1e40af",
			Secondary: "#0f766e",
			Accent:    "#2563eb",
			Border:    "#bfdbfe",
		},
		ButtonStyle: model.ButtonStyleRounded,
	},
	{
		ID:    "warm-sunset",
		Label: "Warm Sunset",
		Vars: model.ThemeVars{
			Bg:        "#fff7ed",
			Surface:   "#ffffff",
			Text:      "#7c2d12",
			Muted:     "#9a3412",
			Primary:   "#ea580c",
			Secondary: "#f59e0b",
			Accent:    "#f97316",
			Border:    "#fed7aa",
		},
		ButtonStyle: model.ButtonStylePill,
	},
	{
		ID:    "clean-green",
		Label: "Clean Green",
		Vars: model.ThemeVars{
			Bg:        "#f0fdf4",
			Surface:   "#ffffff",
			Text:      "#14532d",
			Muted:     "#166534",
			Primary:   "#16a34a",
			Secondary: "#0d9488",
			Accent:    "#22c55e",
			Border:    "#bbf7d0",
		},
		ButtonStyle: model.ButtonStyleRounded,
	},
	{
		ID:    "slate-pro",
		Label: "Slate Pro",
		Vars: model.ThemeVars{
			Bg:        "#f1f5f9",
			Surface:   "#ffffff",
			Text:      "#0f172a",
			Muted:     "#475569",
			Primary:   "#1e293b",
			Secondary: "#334155",
			Accent:    "#0f766e",
			Border:    "#cbd5e1",
		},
		ButtonStyle: model.ButtonStyleSquare,
	},
}

// ALL_SECTION_IDS is the canonical section order used when appending
// sections a caller did not mention.
var ALL_SECTION_IDS = []model.SectionID{
	model.SectionHero,
	model.SectionQuickAnswers,
	model.SectionServices,
	model.SectionAbout,
	model.SectionServiceAreas,
	model.SectionFAQ,
	model.SectionHours,
	model.SectionContact,
	model.SectionGallery,
}

type LayoutPreset struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Sections []model.SectionID `json:"sections"`
}

// LAYOUT_PRESETS backs layout resolution. The first entry is the
// fallback for unknown preset ids.
var LAYOUT_PRESETS = []LayoutPreset{
	{
		ID:    "local-service-classic",
		Label: "Local Service Classic",
		Sections: []model.SectionID{
			model.SectionHero, model.SectionQuickAnswers, model.SectionServices,
			model.SectionServiceAreas, model.SectionAbout, model.SectionFAQ,
			model.SectionHours, model.SectionContact, model.SectionGallery,
		},
	},
	{
		ID:    "product-retail",
		Label: "Product and Retail",
		Sections: []model.SectionID{
			model.SectionHero, model.SectionServices, model.SectionAbout,
			model.SectionGallery, model.SectionFAQ, model.SectionContact,
		},
	},
	{
		ID:    "high-trust",
		Label: "High Trust",
		Sections: []model.SectionID{
			model.SectionHero, model.SectionAbout, model.SectionServices,
			model.SectionQuickAnswers, model.SectionFAQ, model.SectionHours,
			model.SectionServiceAreas, model.SectionContact, model.SectionGallery,
		},
	},
	{
		ID:    "minimal-one-page",
		Label: "Minimal One Page",
		Sections: []model.SectionID{
			model.SectionHero, model.SectionAbout, model.SectionServices,
			model.SectionContact,
		},
	},
	{
		ID:    "story-first",
		Label: "Story First",
		Sections: []model.SectionID{
			model.SectionHero, model.SectionAbout, model.SectionQuickAnswers,
			model.SectionServices, model.SectionGallery, model.SectionFAQ,
			model.SectionServiceAreas, model.SectionContact,
		},
	},
}

// GetThemePreset resolves a preset id, falling back to the default
// preset rather than erroring on unknown ids.
func GetThemePreset(presetID string) ThemePreset {
	for _, preset := range THEME_PRESETS {
		if preset.ID == presetID {
			return preset
		}
	}
	return THEME_PRESETS[0]
}

func GetLayoutPreset(presetID string) LayoutPreset {
	for _, preset := range LAYOUT_PRESETS {
		if preset.ID == presetID {
			return preset
		}
	}
	return LAYOUT_PRESETS[0]
}
