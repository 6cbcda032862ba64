package model

// GeneratedService is one presentational service card.
type GeneratedService struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ContentContact carries the contact copy-of-record for the generated
// site. Hours and service areas may diverge from the profile after edits.
type ContentContact struct {
	Contact
	Hours        map[string]string `json:"hours"`
	ServiceAreas TokenList         `json:"serviceAreas"`
}

// GeneratedContent is the editable projection of a profile into
// presentational copy. Every field has a profile-derived default;
// normalization never produces an undefined field.
type GeneratedContent struct {
	SiteTitle       string             `json:"siteTitle"`
	MetaDescription string             `json:"metaDescription"`
	HeroHeadline    string             `json:"heroHeadline"`
	HeroSubheadline string             `json:"heroSubheadline"`
	HeroCtaText     string             `json:"heroCtaText"`
	AboutText       string             `json:"aboutText"`
	Services        []GeneratedService `json:"services"`
	FAQs            []FAQ              `json:"faqs"`
	QuickAnswers    []FAQ              `json:"quickAnswers"`
	Contact         ContentContact     `json:"contact"`
}
