package generator

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"bizsite-backend/model"
)

type pageSpec struct {
	Name string
	File string
	Path string
}

// The five-page set and its file names are a compatibility contract with
// everything that packages or serves generated sites.
var pageSpecs = []pageSpec{
	{Name: "Home", File: "index.html", Path: "/index.html"},
	{Name: "Products and Services", File: "services.html", Path: "/services.html"},
	{Name: "About", File: "about.html", Path: "/about.html"},
	{Name: "Contact", File: "contact.html", Path: "/contact.html"},
	{Name: "Privacy", File: "privacy.html", Path: "/privacy.html"},
}

// truncate shortens input to at most max bytes, cutting on a rune
// boundary so multi-byte text never ends up split mid-rune.
func truncate(input string, max int) string {
	if len(input) <= max {
		return input
	}
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(input[cut]) {
		cut--
	}
	return strings.TrimSpace(input[:cut]) + "..."
}

func buttonRadius(buttonStyle model.ButtonStyle) string {
	switch buttonStyle {
	case model.ButtonStylePill:
		return "999px"
	case model.ButtonStyleSquare:
		return "2px"
	default:
		return "12px"
	}
}

func buildNav() string {
	var links []string
	for _, page := range pageSpecs {
		links = append(links, fmt.Sprintf(
			`<a href="%s" class="nav-link">%s</a>`, page.File, escapeHTML(page.Name),
		))
	}
	return strings.Join(links, "\n")
}

type ldLocalBusiness struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Telephone   string   `json:"telephone,omitempty"`
	Email       string   `json:"email,omitempty"`
	Address     string   `json:"address,omitempty"`
	AreaServed  []string `json:"areaServed"`
}

type ldWebSite struct {
	Context string `json:"@context"`
	Type    string `json:"@type"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

type ldListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type ldBreadcrumb struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	ItemListElement []ldListItem `json:"itemListElement"`
}

type ldAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type ldQuestion struct {
	Type           string   `json:"@type"`
	Name           string   `json:"name"`
	AcceptedAnswer ldAnswer `json:"acceptedAnswer"`
}

type ldFAQPage struct {
	Context    string       `json:"@context"`
	Type       string       `json:"@type"`
	MainEntity []ldQuestion `json:"mainEntity"`
}

// schemaForPage emits the structured-data blocks: local business,
// website, a breadcrumb of Home + the current page, and the FAQ set when
// present.
func schemaForPage(
	profile *model.BusinessProfile,
	content *model.GeneratedContent,
	baseURL string,
	page pageSpec,
	faqs []model.FAQ,
) string {
	blocks := []any{
		ldLocalBusiness{
			Context:     "https://schema.org",
			Type:        "LocalBusiness",
			Name:        profile.Name,
			Description: content.MetaDescription,
			URL:         baseURL,
			Telephone:   content.Contact.Phone,
			Email:       content.Contact.Email,
			Address:     content.Contact.Address,
			AreaServed:  content.Contact.ServiceAreas,
		},
		ldWebSite{
			Context: "https://schema.org",
			Type:    "WebSite",
			Name:    profile.Name,
			URL:     baseURL,
		},
		ldBreadcrumb{
			Context: "https://schema.org",
			Type:    "BreadcrumbList",
			ItemListElement: []ldListItem{
				{Type: "ListItem", Position: 1, Name: "Home", Item: baseURL + "/index.html"},
				{Type: "ListItem", Position: 2, Name: page.Name, Item: baseURL + "/" + page.File},
			},
		},
	}

	if len(faqs) > 0 {
		faqPage := ldFAQPage{Context: "https://schema.org", Type: "FAQPage"}
		for _, faq := range faqs {
			faqPage.MainEntity = append(faqPage.MainEntity, ldQuestion{
				Type: "Question",
				Name: faq.Question,
				AcceptedAnswer: ldAnswer{Type: "Answer", Text: faq.Answer},
			})
		}
		blocks = append(blocks, faqPage)
	}

	var scripts []string
	for _, block := range blocks {
		encoded, err := json.Marshal(block)
		if err != nil {
			continue
		}
		scripts = append(scripts, fmt.Sprintf(
			`<script type="application/ld+json">%s</script>`, encoded,
		))
	}
	return strings.Join(scripts, "\n")
}

func siteBaseURL(profile *model.BusinessProfile, content *model.GeneratedContent, slug string) string {
	if content.Contact.Website != "" {
		return content.Contact.Website
	}
	if profile.Contact.Website != "" {
		return profile.Contact.Website
	}
	return "https://example.com/" + slug
}

// renderPage wraps a body fragment in the full document chrome: meta and
// social tags, canonical link, structured data, header/nav, footer and
// the cookie-consent banner plus dialog.
func renderPage(
	profile *model.BusinessProfile,
	content *model.GeneratedContent,
	page pageSpec,
	body string,
	ogImage string,
	baseURL string,
	year int,
) string {
	title := content.SiteTitle
	if page.Name != "Home" {
		title = fmt.Sprintf("%s | %s", profile.Name, page.Name)
	}
	canonical := baseURL + "/" + page.File

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <meta name="description" content="%s" />
  <link rel="canonical" href="%s" />
  <meta property="og:type" content="website" />
  <meta property="og:title" content="%s" />
  <meta property="og:description" content="%s" />
  <meta property="og:url" content="%s" />
  <meta property="og:image" content="%s" />
  <meta name="twitter:card" content="summary_large_image" />
  <link rel="stylesheet" href="assets/styles.css" />
  %s
</head>
<body>
  <a href="#content" class="skip-link">Skip to content</a>
  <header class="site-header">
    <div class="container header-grid">
      <div>
        <p class="eyebrow">Privacy-first local website</p>
        <h1>%s</h1>
      </div>
      <nav aria-label="Primary" class="nav">%s</nav>
    </div>
  </header>

  <main id="content" class="container">%s</main>

  <footer class="site-footer">
    <div class="container footer-grid">
      <p>%s %d</p>
      <a href="privacy.html">Privacy Policy</a>
    </div>
  </footer>

  <section id="cookie-banner" class="cookie-banner" role="dialog" aria-live="polite" aria-label="Cookie settings">
    <p>We use essential cookies only by default. Optional analytics stays off until you opt in.</p>
    <div class="cookie-actions">
      <button id="accept-all-cookies" class="button">Accept all cookies</button>
      <button id="manage-cookies" class="button ghost">Manage cookies</button>
    </div>
  </section>
  <dialog id="cookie-dialog" class="cookie-dialog">
    <form method="dialog" class="dialog-body">
      <h2>Cookie Preferences</h2>
      <p>Essential cookies are always enabled. Analytics is optional and disabled by default.</p>
      <label class="toggle-row"><span>Essential cookies</span><input type="checkbox" checked disabled /></label>
      <label class="toggle-row"><span>Analytics cookies</span><input id="analytics-opt-in" type="checkbox" /></label>
      <menu class="dialog-actions"><button id="save-cookie-preferences" value="default" class="button">Save preferences</button></menu>
    </form>
  </dialog>
  <script src="assets/site.js"></script>
</body>
</html>`,
		escapeHTML(title),
		escapeHTML(truncate(content.MetaDescription, 160)),
		escapeHTML(canonical),
		escapeHTML(title),
		escapeHTML(truncate(content.MetaDescription, 200)),
		escapeHTML(canonical),
		escapeHTML(ogImage),
		schemaForPage(profile, content, baseURL, page, content.FAQs),
		escapeHTML(profile.Name),
		buildNav(),
		body,
		escapeHTML(profile.Name),
		year,
	)
}
