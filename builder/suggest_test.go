package builder

import (
	"testing"

	"bizsite-backend/model"
)

func TestSuggestLayoutFewImagesMeansOnePage(t *testing.T) {
	profile := &model.BusinessProfile{Name: "Solo Shop"}

	suggestion := SuggestLayout(profile, nil)

	if suggestion.RecommendedPresetID != "minimal-one-page" {
		t.Fatalf("want minimal-one-page, got %q", suggestion.RecommendedPresetID)
	}
	if enabled, ok := suggestion.SectionToggles[model.SectionGallery]; !ok || enabled {
		t.Fatalf("gallery should be toggled off: %v", suggestion.SectionToggles)
	}
	if len(suggestion.Reasons) == 0 {
		t.Fatal("no reasons attached")
	}
}

func TestSuggestLayoutHighTrustForFaqRichProfiles(t *testing.T) {
	profile := &model.BusinessProfile{
		Name: "Acme Roofing",
		Images: []model.ImageAsset{
			{ID: "img-1"}, {ID: "img-2"}, {ID: "img-3"},
		},
		FAQs: []model.FAQ{
			{Question: "Q1?", Answer: "A1"},
			{Question: "Q2?", Answer: "A2"},
			{Question: "Q3?", Answer: "A3"},
		},
	}

	suggestion := SuggestLayout(profile, nil)

	if suggestion.RecommendedPresetID != "high-trust" {
		t.Fatalf("want high-trust, got %q", suggestion.RecommendedPresetID)
	}
	if !suggestion.SectionToggles[model.SectionFAQ] || !suggestion.SectionToggles[model.SectionQuickAnswers] {
		t.Fatalf("faq toggles missing: %v", suggestion.SectionToggles)
	}
}

func TestSuggestLayoutDefaultReason(t *testing.T) {
	profile := &model.BusinessProfile{
		Name:   "Acme Roofing",
		Images: []model.ImageAsset{{ID: "img-1"}, {ID: "img-2"}},
	}

	suggestion := SuggestLayout(profile, &model.GeneratedContent{})

	if suggestion.RecommendedPresetID != LAYOUT_PRESETS[0].ID {
		t.Fatalf("want default preset, got %q", suggestion.RecommendedPresetID)
	}
	if len(suggestion.Reasons) != 1 {
		t.Fatalf("want single default reason, got %v", suggestion.Reasons)
	}
}

func TestSuggestLayoutHoursAndAreas(t *testing.T) {
	profile := &model.BusinessProfile{
		Name:         "Acme Roofing",
		Images:       []model.ImageAsset{{ID: "img-1"}, {ID: "img-2"}},
		Hours:        map[string]string{"Monday": "8am-5pm"},
		ServiceAreas: model.TokenList{"Springfield"},
	}

	suggestion := SuggestLayout(profile, nil)

	if !suggestion.SectionToggles[model.SectionHours] {
		t.Fatalf("hours toggle missing: %v", suggestion.SectionToggles)
	}
	if !suggestion.SectionToggles[model.SectionServiceAreas] {
		t.Fatalf("service areas toggle missing: %v", suggestion.SectionToggles)
	}
}
