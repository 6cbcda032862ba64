package builder

import (
	"testing"

	"bizsite-backend/model"
)

func sampleProfile() *model.BusinessProfile {
	return &model.BusinessProfile{
		Name:                "Acme Roofing",
		TypesOfBusiness:     model.TokenList{"Roofing Contractor"},
		ProductsAndServices: model.TokenList{"Roof Repair", "Gutter Install"},
		Description:         "Residential roofing in Springfield.",
		About:               "Family owned since 2010.",
		Contact:             model.Contact{Phone: "555-0100", Email: "info@acme.test"},
		Hours:               map[string]string{"Monday": "8am-5pm"},
		ServiceAreas:        model.TokenList{"Springfield"},
		FAQs: []model.FAQ{
			{Question: "Do you offer estimates?", Answer: "Yes, on request."},
		},
	}
}

func TestCreateContentFromProfile(t *testing.T) {
	content := CreateContentFromProfile(sampleProfile())

	if content.SiteTitle != "Acme Roofing | Roofing Contractor" {
		t.Fatalf("unexpected site title %q", content.SiteTitle)
	}
	if content.HeroHeadline != "Acme Roofing" {
		t.Fatalf("unexpected hero headline %q", content.HeroHeadline)
	}
	if content.HeroCtaText != "Request Service" {
		t.Fatalf("unexpected CTA %q", content.HeroCtaText)
	}
	if len(content.Services) != 2 || content.Services[0].Name != "Roof Repair" {
		t.Fatalf("unexpected services %+v", content.Services)
	}
	if content.Services[0].Description != "Professional roof repair tailored to your needs." {
		t.Fatalf("unexpected service description %q", content.Services[0].Description)
	}
	// One FAQ and no explicit quick answers: FAQs are borrowed.
	if len(content.QuickAnswers) != 1 || content.QuickAnswers[0].Question != "Do you offer estimates?" {
		t.Fatalf("unexpected quick answers %+v", content.QuickAnswers)
	}
}

func TestCreateContentSynthesizesQuickAnswers(t *testing.T) {
	profile := sampleProfile()
	profile.FAQs = nil
	profile.QuickAnswers = nil

	content := CreateContentFromProfile(profile)

	if len(content.QuickAnswers) != 2 {
		t.Fatalf("want 2 synthesized quick answers, got %+v", content.QuickAnswers)
	}
	if content.QuickAnswers[0].Answer != "Roof Repair, Gutter Install" {
		t.Fatalf("unexpected service answer %q", content.QuickAnswers[0].Answer)
	}
	if content.QuickAnswers[1].Answer != "Springfield" {
		t.Fatalf("unexpected area answer %q", content.QuickAnswers[1].Answer)
	}
}

func TestCreateContentEmptyProfileDefaults(t *testing.T) {
	content := CreateContentFromProfile(&model.BusinessProfile{Name: "Solo Shop"})

	if content.SiteTitle != "Solo Shop | Local Business" {
		t.Fatalf("unexpected site title %q", content.SiteTitle)
	}
	if content.MetaDescription == "" || content.HeroSubheadline == "" {
		t.Fatal("defaults missing for empty profile")
	}
}

func TestNormalizeContentMergesEditsOverDefaults(t *testing.T) {
	profile := sampleProfile()
	edited := &model.GeneratedContent{
		HeroHeadline: "Springfield's Roofers",
		Contact: model.ContentContact{
			Contact: model.Contact{Phone: "555-0199"},
		},
	}

	merged := NormalizeContent(profile, edited)

	if merged.HeroHeadline != "Springfield's Roofers" {
		t.Fatalf("edit lost: %q", merged.HeroHeadline)
	}
	if merged.SiteTitle != "Acme Roofing | Roofing Contractor" {
		t.Fatalf("default not filled: %q", merged.SiteTitle)
	}
	if merged.Contact.Phone != "555-0199" {
		t.Fatalf("contact edit lost: %q", merged.Contact.Phone)
	}
	if merged.Contact.Email != "info@acme.test" {
		t.Fatalf("contact default lost: %q", merged.Contact.Email)
	}
	// Empty services list means "use profile-derived defaults".
	if len(merged.Services) != 2 {
		t.Fatalf("service defaults lost: %+v", merged.Services)
	}
}

func TestNormalizeContentNilUsesDefaults(t *testing.T) {
	profile := sampleProfile()
	merged := NormalizeContent(profile, nil)
	defaults := CreateContentFromProfile(profile)
	if merged.SiteTitle != defaults.SiteTitle || len(merged.Services) != len(defaults.Services) {
		t.Fatalf("nil content did not produce defaults: %+v", merged)
	}
}

func TestToComplianceProfileProjectsEdits(t *testing.T) {
	profile := sampleProfile()
	content := NormalizeContent(profile, &model.GeneratedContent{
		MetaDescription: "The #1 roofer in town.",
		Services: []model.GeneratedService{
			{Name: "Lifetime Coatings"},
		},
	})

	projected := ToComplianceProfile(profile, content)

	if projected.Description != "The #1 roofer in town." {
		t.Fatalf("edited description not projected: %q", projected.Description)
	}
	if len(projected.ProductsAndServices) != 1 || projected.ProductsAndServices[0] != "Lifetime Coatings" {
		t.Fatalf("edited services not projected: %v", projected.ProductsAndServices)
	}
	// Original profile is untouched.
	if profile.Description != "Residential roofing in Springfield." {
		t.Fatalf("source profile mutated: %q", profile.Description)
	}
}
