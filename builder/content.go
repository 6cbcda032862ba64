package builder

import (
	"fmt"
	"strings"

	"bizsite-backend/model"
)

func serviceDescription(name string) string {
	return fmt.Sprintf("Professional %s tailored to your needs.", strings.ToLower(name))
}

func joinServiceNames(services []model.GeneratedService, max int) string {
	names := make([]string, 0, max)
	for _, service := range services {
		if len(names) == max {
			break
		}
		names = append(names, service.Name)
	}
	return strings.Join(names, ", ")
}

// CreateContentFromProfile derives the full default content model from a
// profile. Every field is populated.
func CreateContentFromProfile(profile *model.BusinessProfile) *model.GeneratedContent {
	businessType := "Local Business"
	if len(profile.TypesOfBusiness) > 0 {
		businessType = profile.TypesOfBusiness[0]
	}
	siteTitle := fmt.Sprintf("%s | %s", profile.Name, businessType)

	metaDescription := profile.Description
	if metaDescription == "" {
		metaDescription = profile.About
	}
	if metaDescription == "" {
		metaDescription = "Local business website generated from provided business details."
	}

	services := make([]model.GeneratedService, 0, len(profile.ProductsAndServices))
	for _, name := range profile.ProductsAndServices {
		services = append(services, model.GeneratedService{
			Name:        name,
			Description: serviceDescription(name),
		})
	}

	faqs := append([]model.FAQ{}, profile.FAQs...)

	var quickAnswers []model.FAQ
	switch {
	case len(profile.QuickAnswers) > 0:
		quickAnswers = append([]model.FAQ{}, profile.QuickAnswers...)
	case len(faqs) > 0:
		quickAnswers = faqs[:min(3, len(faqs))]
	default:
		serviceAnswer := joinServiceNames(services, 4)
		if serviceAnswer == "" {
			serviceAnswer = "Contact us for product and service details."
		}
		areaAnswer := strings.Join(profile.ServiceAreas, ", ")
		if areaAnswer == "" {
			areaAnswer = "Contact us to confirm service coverage for your location."
		}
		quickAnswers = []model.FAQ{
			{Question: "What products and services do you offer?", Answer: serviceAnswer},
			{Question: "Which areas do you serve?", Answer: areaAnswer},
		}
	}

	heroSubheadline := profile.Description
	if heroSubheadline == "" {
		heroSubheadline = "Trusted local service for homes and businesses."
	}

	aboutText := profile.About
	if aboutText == "" {
		aboutText = profile.Description
	}

	hours := profile.Hours
	if hours == nil {
		hours = map[string]string{}
	}

	return &model.GeneratedContent{
		SiteTitle:       siteTitle,
		MetaDescription: metaDescription,
		HeroHeadline:    profile.Name,
		HeroSubheadline: heroSubheadline,
		HeroCtaText:     "Request Service",
		AboutText:       aboutText,
		Services:        services,
		FAQs:            faqs,
		QuickAnswers:    quickAnswers,
		Contact: model.ContentContact{
			Contact:      profile.Contact,
			Hours:        hours,
			ServiceAreas: model.NormalizeTokenList(profile.ServiceAreas),
		},
	}
}

// NormalizeContent merges partial user-edited content over the
// profile-derived defaults. Each top-level field independently falls
// back to its default when empty; services, hours and service areas use
// whole-list empty-means-use-default semantics rather than per-item
// merges.
func NormalizeContent(profile *model.BusinessProfile, content *model.GeneratedContent) *model.GeneratedContent {
	defaults := CreateContentFromProfile(profile)
	if content == nil {
		return defaults
	}

	merged := *defaults

	if content.SiteTitle != "" {
		merged.SiteTitle = content.SiteTitle
	}
	if content.MetaDescription != "" {
		merged.MetaDescription = content.MetaDescription
	}
	if content.HeroHeadline != "" {
		merged.HeroHeadline = content.HeroHeadline
	}
	if content.HeroSubheadline != "" {
		merged.HeroSubheadline = content.HeroSubheadline
	}
	if content.HeroCtaText != "" {
		merged.HeroCtaText = content.HeroCtaText
	}
	if content.AboutText != "" {
		merged.AboutText = content.AboutText
	}

	if len(content.Services) > 0 {
		services := make([]model.GeneratedService, 0, len(content.Services))
		for _, service := range content.Services {
			name := service.Name
			if name == "" {
				name = "Service"
			}
			services = append(services, model.GeneratedService{
				Name:        name,
				Description: service.Description,
			})
		}
		merged.Services = services
	}

	if content.FAQs != nil {
		merged.FAQs = content.FAQs
	}
	if content.QuickAnswers != nil {
		merged.QuickAnswers = content.QuickAnswers
	}

	contact := merged.Contact
	if content.Contact.Phone != "" {
		contact.Phone = content.Contact.Phone
	}
	if content.Contact.Email != "" {
		contact.Email = content.Contact.Email
	}
	if content.Contact.Website != "" {
		contact.Website = content.Contact.Website
	}
	if content.Contact.Address != "" {
		contact.Address = content.Contact.Address
	}
	if len(content.Contact.Hours) > 0 {
		contact.Hours = content.Contact.Hours
	}
	if len(content.Contact.ServiceAreas) > 0 {
		contact.ServiceAreas = model.NormalizeTokenList(content.Contact.ServiceAreas)
	}
	merged.Contact = contact

	return &merged
}

// ToComplianceProfile projects edited content back over the profile so
// the rule engine scans the copy a visitor will actually see.
func ToComplianceProfile(profile *model.BusinessProfile, content *model.GeneratedContent) *model.BusinessProfile {
	projected := *profile
	if projected.Slug == "" {
		projected.Slug = strings.ToLower(strings.ReplaceAll(projected.Name, " ", "-"))
	}
	projected.Description = content.MetaDescription
	if projected.Description == "" {
		projected.Description = content.HeroSubheadline
	}
	projected.About = content.AboutText
	names := make([]string, 0, len(content.Services))
	for _, service := range content.Services {
		names = append(names, service.Name)
	}
	projected.ProductsAndServices = model.NormalizeTokenList(names)
	projected.FAQs = content.FAQs
	projected.QuickAnswers = content.QuickAnswers
	projected.Contact = content.Contact.Contact
	projected.Hours = content.Contact.Hours
	projected.ServiceAreas = content.Contact.ServiceAreas
	return &projected
}
