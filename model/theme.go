package model

type ButtonStyle string

const (
	ButtonStyleRounded ButtonStyle = "rounded"
	ButtonStylePill    ButtonStyle = "pill"
	ButtonStyleSquare  ButtonStyle = "square"
)

// ThemeVars is the closed style-variable bundle every theme preset fills.
type ThemeVars struct {
	Bg        string `json:"bg"`
	Surface   string `json:"surface"`
	Text      string `json:"text"`
	Muted     string `json:"muted"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Border    string `json:"border"`
}

// ThemeOverrides is a partial ThemeVars; empty strings mean "use preset".
type ThemeOverrides struct {
	Bg        string `json:"bg,omitempty"`
	Surface   string `json:"surface,omitempty"`
	Text      string `json:"text,omitempty"`
	Muted     string `json:"muted,omitempty"`
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`
	Border    string `json:"border,omitempty"`
}

type ProjectTheme struct {
	PresetID    string         `json:"presetId"`
	Overrides   ThemeOverrides `json:"overrides"`
	ButtonStyle ButtonStyle    `json:"buttonStyle,omitempty"`
}

type ProjectLayout struct {
	PresetID string `json:"presetId"`
}

type SectionID string

const (
	SectionHero         SectionID = "hero"
	SectionQuickAnswers SectionID = "quick_answers"
	SectionServices     SectionID = "services"
	SectionAbout        SectionID = "about"
	SectionServiceAreas SectionID = "service_areas"
	SectionFAQ          SectionID = "faq"
	SectionHours        SectionID = "hours"
	SectionContact      SectionID = "contact"
	SectionGallery      SectionID = "gallery"
)

// ProjectSection is a named, independently toggleable block of the home
// page. Order in the slice is the render order.
type ProjectSection struct {
	ID      SectionID `json:"id"`
	Enabled bool      `json:"enabled"`
}
