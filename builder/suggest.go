package builder

import "bizsite-backend/model"

// LayoutSuggestion is an advisory recommendation; callers may apply or
// ignore it without affecting normalization.
type LayoutSuggestion struct {
	RecommendedPresetID string                   `json:"recommendedPresetId"`
	Reasons             []string                 `json:"reasons"`
	SectionToggles      map[model.SectionID]bool `json:"sectionToggles"`
}

// SuggestLayout recommends a layout preset and section toggles from the
// shape of the profile and content.
func SuggestLayout(profile *model.BusinessProfile, content *model.GeneratedContent) LayoutSuggestion {
	source := content
	if source == nil {
		source = CreateContentFromProfile(profile)
	}

	servicesCount := len(source.Services)
	faqCount := len(source.FAQs)
	hasAreas := len(source.Contact.ServiceAreas) > 0
	hasHours := len(source.Contact.Hours) > 0
	imageCount := len(profile.Images)

	var reasons []string
	toggles := map[model.SectionID]bool{}
	recommended := LAYOUT_PRESETS[0].ID

	if imageCount < 2 {
		recommended = "minimal-one-page"
		reasons = append(reasons, "Fewer than two images detected, so a compact one-page layout is recommended.")
		toggles[model.SectionGallery] = false
	}

	if servicesCount >= 6 {
		reasons = append(reasons, "Six or more offerings were found, so the Products and Services section should stay prominent.")
		toggles[model.SectionServices] = true
	}

	if hasAreas {
		reasons = append(reasons, "Service areas were detected, enabling a dedicated Service Areas block.")
		toggles[model.SectionServiceAreas] = true
	}

	if faqCount >= 3 {
		if imageCount >= 2 {
			recommended = "high-trust"
		}
		reasons = append(reasons, "Three or more FAQs were found, enabling FAQ and Quick Answers blocks.")
		toggles[model.SectionFAQ] = true
		toggles[model.SectionQuickAnswers] = true
	}

	if hasHours {
		reasons = append(reasons, "Business hours were found, enabling an Hours block near contact content.")
		toggles[model.SectionHours] = true
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Local Service Classic is a good default for balanced local business content.")
	}

	return LayoutSuggestion{
		RecommendedPresetID: recommended,
		Reasons:             reasons,
		SectionToggles:      toggles,
	}
}
