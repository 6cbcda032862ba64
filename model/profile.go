package model

import (
	"encoding/json"

	"bizsite-backend/common"
)

type ExtractionMode string

const (
	ExtractionModeAuto       ExtractionMode = "auto"
	ExtractionModeUploadHTML ExtractionMode = "upload_html"
	ExtractionModeManual     ExtractionMode = "manual"
)

type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Address string `json:"address"`
}

type ImageSource string

const (
	ImageSourceExtracted ImageSource = "extracted"
	ImageSourceUploaded  ImageSource = "uploaded"
)

type ImageAsset struct {
	ID           string      `json:"id"`
	URL          string      `json:"url"`
	Source       ImageSource `json:"source"`
	Alt          string      `json:"alt"`
	SelectedHero bool        `json:"selectedHero"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Testimonial struct {
	Author     string `json:"author"`
	Quote      string `json:"quote"`
	Disclosure string `json:"disclosure,omitempty"`
}

// BusinessProfile is the canonical structured record of a business's
// public-facing facts. It is produced by the parser or manual entry and
// funneled through normalization before anything downstream consumes it.
type BusinessProfile struct {
	ID                  string            `json:"id,omitempty"`
	SourceURL           string            `json:"sourceUrl,omitempty"`
	Mode                ExtractionMode    `json:"mode"`
	Name                string            `json:"name"`
	Slug                string            `json:"slug"`
	TypesOfBusiness     TokenList         `json:"typesOfBusiness"`
	ProductsAndServices TokenList         `json:"productsAndServices"`
	Description         string            `json:"description"`
	About               string            `json:"about"`
	Contact             Contact           `json:"contact"`
	Hours               map[string]string `json:"hours"`
	ServiceAreas        TokenList         `json:"serviceAreas"`
	Images              []ImageAsset      `json:"images"`
	LogoURL             string            `json:"logoUrl,omitempty"`
	FAQs                []FAQ             `json:"faqs"`
	QuickAnswers        []FAQ             `json:"quickAnswers"`
	Testimonials        []Testimonial     `json:"testimonials"`
	PrivacyTrackerOptIn bool              `json:"privacyTrackerOptIn"`
	PrivacyNotes        string            `json:"privacyNotes"`
}

// NewEmptyProfile builds a manual-entry profile with every field defaulted.
func NewEmptyProfile(name string) *BusinessProfile {
	businessName := name
	if businessName == "" {
		businessName = "New Business"
	}
	return &BusinessProfile{
		Mode:                ExtractionModeManual,
		Name:                businessName,
		Slug:                common.CreateSlug(businessName),
		TypesOfBusiness:     TokenList{},
		ProductsAndServices: TokenList{},
		Contact:             Contact{},
		Hours:               map[string]string{},
		ServiceAreas:        TokenList{},
		Images:              []ImageAsset{},
		FAQs:                []FAQ{},
		QuickAnswers:        []FAQ{},
		Testimonials:        []Testimonial{},
	}
}

// EnsureHero guarantees exactly one hero image once images is non-empty.
func (p *BusinessProfile) EnsureHero() {
	if len(p.Images) == 0 {
		return
	}
	heroIdx := -1
	for i := range p.Images {
		if p.Images[i].SelectedHero {
			if heroIdx == -1 {
				heroIdx = i
			} else {
				p.Images[i].SelectedHero = false
			}
		}
	}
	if heroIdx == -1 {
		p.Images[0].SelectedHero = true
	}
}

// Normalize re-derives the slug, re-normalizes token lists and enforces
// the single-hero invariant. Safe to call repeatedly.
func (p *BusinessProfile) Normalize() {
	if p.Name == "" {
		p.Name = "Untitled Business"
	}
	if p.Slug == "" {
		p.Slug = common.CreateSlug(p.Name)
	}
	p.TypesOfBusiness = NormalizeTokenList(p.TypesOfBusiness)
	p.ProductsAndServices = NormalizeTokenList(p.ProductsAndServices)
	p.ServiceAreas = NormalizeTokenList(p.ServiceAreas)
	if p.Hours == nil {
		p.Hours = map[string]string{}
	}
	if p.Images == nil {
		p.Images = []ImageAsset{}
	}
	if p.FAQs == nil {
		p.FAQs = []FAQ{}
	}
	if p.QuickAnswers == nil {
		p.QuickAnswers = []FAQ{}
	}
	if p.Testimonials == nil {
		p.Testimonials = []Testimonial{}
	}
	p.EnsureHero()
}

// profileAlias avoids recursing into UnmarshalJSON.
type profileAlias BusinessProfile

type profileWire struct {
	profileAlias

	// Legacy field names from early captures. Values migrate into
	// TypesOfBusiness / ProductsAndServices on load.
	Categories json.RawMessage `json:"categories,omitempty"`
	Services   json.RawMessage `json:"services,omitempty"`
}

// UnmarshalJSON migrates legacy categories/services keys and accepts
// delimited strings in any token-list position.
func (p *BusinessProfile) UnmarshalJSON(data []byte) error {
	var wire profileWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*p = BusinessProfile(wire.profileAlias)

	if len(p.TypesOfBusiness) == 0 && len(wire.Categories) > 0 {
		p.TypesOfBusiness = tokensFromRaw(wire.Categories)
	}
	if len(p.ProductsAndServices) == 0 && len(wire.Services) > 0 {
		p.ProductsAndServices = tokensFromRaw(wire.Services)
	}
	p.Normalize()
	return nil
}
