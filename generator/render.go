package generator

import (
	"fmt"
	"strings"

	"bizsite-backend/model"
)

// LocalImage is an image already materialized by the caller into the
// site's asset tree. The renderer never fetches anything itself.
type LocalImage struct {
	Src  string `json:"src"`
	Alt  string `json:"alt"`
	Hero bool   `json:"hero"`
}

// PageBodies holds the body fragment of each of the five output pages.
// Only the home body is driven by the section list; the other four have
// fixed structure.
type PageBodies struct {
	Home     string
	Services string
	About    string
	Contact  string
	Privacy  string
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML is applied to every interpolated value. Profile content
// originates from semi-trusted extracted markup, so a missed escape is a
// correctness bug.
func escapeHTML(input string) string {
	return htmlEscaper.Replace(input)
}

func heroImage(images []LocalImage) LocalImage {
	for _, image := range images {
		if image.Hero {
			return image
		}
	}
	if len(images) > 0 {
		return images[0]
	}
	return LocalImage{Src: "assets/images/placeholder.svg", Alt: "Business placeholder image", Hero: true}
}

func hoursTable(hours map[string]string) string {
	if len(hours) == 0 {
		return "<p>Hours available on request.</p>"
	}
	var rows strings.Builder
	for _, day := range orderedDays(hours) {
		rows.WriteString(fmt.Sprintf(
			`<tr><th scope="row">%s</th><td>%s</td></tr>`,
			escapeHTML(day), escapeHTML(hours[day]),
		))
	}
	return fmt.Sprintf(
		`<table><thead><tr><th scope="col">Day</th><th scope="col">Hours</th></tr></thead><tbody>%s</tbody></table>`,
		rows.String(),
	)
}

var weekdayOrder = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"mon", "tue", "wed", "thu", "fri", "sat", "sun",
}

// orderedDays gives hour rows a stable, calendar-like order even though
// the hours map itself is unordered.
func orderedDays(hours map[string]string) []string {
	rank := func(day string) int {
		lower := strings.ToLower(day)
		for i, known := range weekdayOrder {
			if strings.HasPrefix(lower, known) {
				return i % 7
			}
		}
		return len(weekdayOrder)
	}
	days := make([]string, 0, len(hours))
	for day := range hours {
		days = append(days, day)
	}
	for i := 1; i < len(days); i++ {
		for j := i; j > 0; j-- {
			if rank(days[j]) < rank(days[j-1]) || (rank(days[j]) == rank(days[j-1]) && days[j] < days[j-1]) {
				days[j], days[j-1] = days[j-1], days[j]
			}
		}
	}
	return days
}

func valueOrOnRequest(value string) string {
	if value == "" {
		return "Available on request"
	}
	return escapeHTML(value)
}

func renderContactList(content *model.GeneratedContent) string {
	website := "Available on request"
	if content.Contact.Website != "" {
		website = fmt.Sprintf(`<a href="%s">%s</a>`,
			escapeHTML(content.Contact.Website), escapeHTML(content.Contact.Website))
	}
	return fmt.Sprintf(`<ul>
    <li><strong>Phone:</strong> %s</li>
    <li><strong>Email:</strong> %s</li>
    <li><strong>Website:</strong> %s</li>
    <li><strong>Address:</strong> %s</li>
  </ul>`,
		valueOrOnRequest(content.Contact.Phone),
		valueOrOnRequest(content.Contact.Email),
		website,
		valueOrOnRequest(content.Contact.Address),
	)
}

func renderQuickAnswers(content *model.GeneratedContent) string {
	if len(content.QuickAnswers) == 0 {
		return ""
	}
	var items []string
	for _, item := range content.QuickAnswers {
		items = append(items, fmt.Sprintf(
			"<article><h3>%s</h3><p>%s</p></article>",
			escapeHTML(item.Question), escapeHTML(item.Answer),
		))
	}
	return fmt.Sprintf(`<section class="panel quick-answers" aria-labelledby="quick-answers-heading">
  <h2 id="quick-answers-heading">Quick answers</h2>
  <div class="quick-grid">
    %s
  </div>
</section>`, strings.Join(items, "\n"))
}

func renderFaqList(faqs []model.FAQ) string {
	if len(faqs) == 0 {
		return ""
	}
	var items []string
	for _, faq := range faqs {
		items = append(items, fmt.Sprintf(
			`<article class="faq-item"><h3>%s</h3><p>%s</p></article>`,
			escapeHTML(faq.Question), escapeHTML(faq.Answer),
		))
	}
	return fmt.Sprintf(`<section class="panel" aria-labelledby="faq-heading">
  <h2 id="faq-heading">Frequently asked questions</h2>
  <div class="faq-grid">
    %s
  </div>
</section>`, strings.Join(items, "\n"))
}

func renderGallery(images []LocalImage) string {
	if len(images) == 0 {
		return ""
	}
	var figures []string
	for _, image := range images {
		figures = append(figures, fmt.Sprintf(
			`<figure class="card"><img src="%s" alt="%s" class="hero-image" /></figure>`,
			escapeHTML(image.Src), escapeHTML(image.Alt),
		))
	}
	return fmt.Sprintf(`<section class="panel"><h2>Gallery</h2><div class="card-grid">
    %s
  </div></section>`, strings.Join(figures, "\n"))
}

func renderServiceCards(services []model.GeneratedService, max int) string {
	var cards []string
	for i, service := range services {
		if max > 0 && i == max {
			break
		}
		description := service.Description
		if description == "" {
			description = "Request a tailored quote for this service."
		}
		cards = append(cards, fmt.Sprintf(
			`<article class="card"><h3>%s</h3><p>%s</p></article>`,
			escapeHTML(service.Name), escapeHTML(description),
		))
	}
	return strings.Join(cards, "")
}

// sectionMarkup is a closed switch over the known section ids. An id
// with no mapping renders nothing.
func sectionMarkup(
	sectionID model.SectionID,
	profile *model.BusinessProfile,
	content *model.GeneratedContent,
	images []LocalImage,
) string {
	hero := heroImage(images)
	switch sectionID {
	case model.SectionHero:
		headline := content.HeroHeadline
		if headline == "" {
			headline = profile.Name
		}
		subheadline := content.HeroSubheadline
		if subheadline == "" {
			subheadline = content.MetaDescription
		}
		cta := content.HeroCtaText
		if cta == "" {
			cta = "Contact Us"
		}
		return fmt.Sprintf(`<section class="panel hero">
  <article>
    <h2>%s</h2>
    <p>%s</p>
    <p><a class="button" href="contact.html">%s</a></p>
  </article>
  <figure><img src="%s" alt="%s" class="hero-image" /></figure>
</section>`,
			escapeHTML(headline), escapeHTML(subheadline), escapeHTML(cta),
			escapeHTML(hero.Src), escapeHTML(hero.Alt))
	case model.SectionQuickAnswers:
		return renderQuickAnswers(content)
	case model.SectionServices:
		return fmt.Sprintf(
			`<section class="panel"><h2>Products and Services</h2><div class="card-grid">%s</div></section>`,
			renderServiceCards(content.Services, 6),
		)
	case model.SectionAbout:
		about := content.AboutText
		if about == "" {
			about = content.MetaDescription
		}
		return fmt.Sprintf(
			`<section class="panel"><h2>About %s</h2><p>%s</p></section>`,
			escapeHTML(profile.Name), escapeHTML(about),
		)
	case model.SectionServiceAreas:
		areas := strings.Join(content.Contact.ServiceAreas, ", ")
		if areas == "" {
			areas = "Contact us to confirm service coverage."
		} else {
			areas = escapeHTML(areas)
		}
		return fmt.Sprintf(`<section class="panel"><h2>Service Areas</h2><p>%s</p></section>`, areas)
	case model.SectionFAQ:
		return renderFaqList(content.FAQs)
	case model.SectionHours:
		return fmt.Sprintf(`<section class="panel"><h2>Business Hours</h2>%s</section>`, hoursTable(content.Contact.Hours))
	case model.SectionContact:
		return fmt.Sprintf(`<section class="panel"><h2>Contact</h2>%s</section>`, renderContactList(content))
	case model.SectionGallery:
		capped := images
		if len(capped) > 6 {
			capped = capped[:6]
		}
		return renderGallery(capped)
	default:
		return ""
	}
}

// RenderBodies composes the five page body fragments from the model.
func RenderBodies(
	profile *model.BusinessProfile,
	content *model.GeneratedContent,
	sections []model.ProjectSection,
	images []LocalImage,
) PageBodies {
	var home []string
	for _, section := range sections {
		if !section.Enabled {
			continue
		}
		if markup := sectionMarkup(section.ID, profile, content, images); markup != "" {
			home = append(home, markup)
		}
	}

	servicesGrid := renderServiceCards(content.Services, 0)
	if servicesGrid == "" {
		servicesGrid = "<p>Services available upon request.</p>"
	}

	about := content.AboutText
	if about == "" {
		about = content.MetaDescription
	}

	areas := strings.Join(content.Contact.ServiceAreas, ", ")
	if areas == "" {
		areas = "Contact us to confirm service area coverage."
	} else {
		areas = escapeHTML(areas)
	}

	return PageBodies{
		Home: strings.Join(home, "\n"),
		Services: fmt.Sprintf(
			`<section class="panel"><h2>Our Services</h2><div class="card-grid">%s</div></section>`,
			servicesGrid,
		),
		About: fmt.Sprintf(
			`<section class="panel"><h2>About %s</h2><p>%s</p></section>`,
			escapeHTML(profile.Name), escapeHTML(about),
		),
		Contact: fmt.Sprintf(
			`<section class="panel"><h2>Contact</h2>%s</section><section class="panel"><h2>Hours</h2>%s</section><section class="panel"><h2>Service Areas</h2><p>%s</p></section>`,
			renderContactList(content), hoursTable(content.Contact.Hours), areas,
		),
		Privacy: renderPrivacyBody(profile),
	}
}
