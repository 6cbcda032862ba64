package parser

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"bizsite-backend/common"
	"bizsite-backend/model"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

const maxFragmentLength = 240

// Parser turns a saved or fetched business-profile page into a
// BusinessProfile. It is a pure transform: no network access, and every
// field has a defined fallback, so malformed markup degrades instead of
// failing.
type Parser struct{}

func New() *Parser { return &Parser{} }

// fieldStrategy is one extraction heuristic. Strategies are evaluated in
// priority order per field; the first non-empty result wins.
type fieldStrategy func(doc *goquery.Document) string

func firstNonEmpty(doc *goquery.Document, strategies []fieldStrategy) string {
	for _, strategy := range strategies {
		if value := strategy(doc); value != "" {
			return value
		}
	}
	return ""
}

func textFromSelector(selector string) fieldStrategy {
	return func(doc *goquery.Document) string {
		return common.CollapseWhitespace(doc.Find(selector).First().Text())
	}
}

func attrFromSelector(selector, attrName string) fieldStrategy {
	return func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find(selector).First().AttrOr(attrName, ""))
	}
}

var descriptionStrategies = []fieldStrategy{
	attrFromSelector("meta[name='description']", "content"),
	textFromSelector(".business-description"),
	textFromSelector("[itemprop='description']"),
	textFromSelector("main p"),
}

var addressStrategies = []fieldStrategy{
	textFromSelector("[itemprop='streetAddress']"),
	textFromSelector(".address"),
	textFromSelector("address"),
}

func resolveURL(baseURL, maybeURL string) string {
	if maybeURL == "" {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(maybeURL))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme == "" || resolved.Host == "" {
		return ""
	}
	return resolved.String()
}

// labelSelector covers every element kind that may carry a section
// label: headings, bold text, definition terms and generic text nodes.
const labelSelector = "h1,h2,h3,h4,h5,h6,strong,b,dt,p,span"

const headingSelector = "h1,h2,h3,h4,h5,h6"

var residualDelimiters = regexp.MustCompile(`[|/;]`)

func matchesLabel(text string, labels []string) bool {
	for _, label := range labels {
		if strings.EqualFold(text, label) {
			return true
		}
	}
	return false
}

// collectLabeledSection is the shared heading-scoped collector behind
// the classification lists and service areas. For each label-bearing
// element whose text equals one of the labels, it gathers list items and
// anchors from the label's structural scope, or the enclosing block's
// residual text with the label stripped. Labels with no matching section
// yield an empty list; one field is never backfilled from another's.
func collectLabeledSection(doc *goquery.Document, labels []string) model.TokenList {
	var fragments []string

	doc.Find(labelSelector).Each(func(_ int, label *goquery.Selection) {
		labelText := common.CollapseWhitespace(label.Text())
		if !matchesLabel(labelText, labels) {
			return
		}

		collected := false
		appendFragment := func(text string) {
			text = common.CollapseWhitespace(text)
			if text != "" && len(text) <= maxFragmentLength {
				fragments = append(fragments, text)
				collected = true
			}
		}

		// Scope 1: following siblings up to the next heading.
		scope := label.NextUntil(headingSelector)
		scope.Find("li").Each(func(_ int, li *goquery.Selection) {
			appendFragment(li.Text())
		})
		scope.Filter("li").Each(func(_ int, li *goquery.Selection) {
			appendFragment(li.Text())
		})
		if !collected {
			scope.Find("a").Each(func(_ int, anchor *goquery.Selection) {
				appendFragment(anchor.Text())
			})
			scope.Filter("a").Each(func(_ int, anchor *goquery.Selection) {
				appendFragment(anchor.Text())
			})
		}
		if collected {
			return
		}

		// Scope 2: nearest enclosing block, list items first, then the
		// block's residual delimited text with the label stripped.
		parent := label.Parent()
		parent.Find("li").Each(func(_ int, li *goquery.Selection) {
			appendFragment(li.Text())
		})
		if collected {
			return
		}
		residual := common.CollapseWhitespace(parent.Text())
		residual = strings.TrimSpace(strings.TrimPrefix(residual, labelText))
		for _, piece := range residualDelimiters.Split(residual, -1) {
			for _, token := range model.NormalizeTokens(piece) {
				if len(token) > 2 && len(token) <= maxFragmentLength {
					fragments = append(fragments, token)
				}
			}
		}
	})

	tokens := model.NormalizeTokenList(fragments)
	kept := model.TokenList{}
	for _, token := range tokens {
		if matchesLabel(token, labels) {
			continue
		}
		kept = append(kept, token)
		if len(kept) == common.MAX_LIST_TOKENS {
			break
		}
	}
	return kept
}

var dayPattern = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|wed|thu|fri|sat|sun)\b`)

func collectHours(doc *goquery.Document) map[string]string {
	hours := map[string]string{}
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			if text := common.CollapseWhitespace(cell.Text()); text != "" {
				cells = append(cells, text)
			}
		})
		if len(cells) >= 2 && dayPattern.MatchString(cells[0]) {
			hours[cells[0]] = cells[1]
		}
	})
	return hours
}

func collectImages(doc *goquery.Document, sourceURL string) []model.ImageAsset {
	type candidate struct {
		url string
		alt string
	}
	var candidates []candidate

	ogImage := doc.Find("meta[property='og:image']").AttrOr("content", "")
	if resolved := resolveURL(sourceURL, ogImage); resolved != "" {
		candidates = append(candidates, candidate{url: resolved, alt: "Business profile image"})
	}

	doc.Find("img").Each(func(_ int, image *goquery.Selection) {
		src := image.AttrOr("src", "")
		if src == "" {
			src = image.AttrOr("data-src", "")
		}
		resolved := resolveURL(sourceURL, src)
		if resolved == "" {
			return
		}
		alt := strings.TrimSpace(image.AttrOr("alt", ""))
		if alt == "" {
			alt = "Business image"
		}
		candidates = append(candidates, candidate{url: resolved, alt: alt})
	})

	seen := make(map[string]struct{})
	images := []model.ImageAsset{}
	for _, cand := range candidates {
		if _, dup := seen[cand.url]; dup {
			continue
		}
		seen[cand.url] = struct{}{}
		images = append(images, model.ImageAsset{
			ID:           fmt.Sprintf("img-%d", len(images)+1),
			URL:          cand.url,
			Source:       model.ImageSourceExtracted,
			Alt:          cand.alt,
			SelectedHero: len(images) == 0,
		})
		if len(images) == common.MAX_IMAGES {
			break
		}
	}
	return images
}

func collectLogoURL(doc *goquery.Document, sourceURL string) string {
	logoSrc := ""
	doc.Find("img").EachWithBreak(func(_ int, image *goquery.Selection) bool {
		alt := strings.ToLower(image.AttrOr("alt", ""))
		if !strings.Contains(alt, "logo") {
			return true
		}
		src := image.AttrOr("src", "")
		if src == "" {
			src = image.AttrOr("data-src", "")
		}
		logoSrc = src
		return false
	})
	if logoSrc == "" {
		logoSrc = doc.Find("meta[property='og:image']").AttrOr("content", "")
	}
	return resolveURL(sourceURL, logoSrc)
}

func collectFaqs(doc *goquery.Document) []model.FAQ {
	faqs := []model.FAQ{}
	doc.Find("h2,h3,h4").Each(func(_ int, heading *goquery.Selection) {
		if len(faqs) == common.MAX_FAQS {
			return
		}
		question := common.CollapseWhitespace(heading.Text())
		if !strings.HasSuffix(question, "?") {
			return
		}
		answer := common.CollapseWhitespace(heading.NextFiltered("p,div").Text())
		if answer == "" {
			return
		}
		faqs = append(faqs, model.FAQ{Question: question, Answer: answer})
	})
	return faqs
}

func collectContact(doc *goquery.Document, sourceURL string) model.Contact {
	phone := strings.TrimSpace(doc.Find("a[href^='tel:']").First().AttrOr("href", ""))
	email := strings.TrimSpace(doc.Find("a[href^='mailto:']").First().AttrOr("href", ""))

	website := strings.TrimSpace(doc.Find("a[aria-label*='Website']").First().AttrOr("href", ""))
	if website == "" {
		website = strings.TrimSpace(doc.Find("a[href^='http']").First().AttrOr("href", ""))
	}
	if website == "" {
		website = sourceURL
	}

	return model.Contact{
		Phone:   strings.TrimPrefix(strings.TrimPrefix(phone, "tel:"), "TEL:"),
		Email:   strings.TrimPrefix(strings.TrimPrefix(email, "mailto:"), "MAILTO:"),
		Website: resolveURL(sourceURL, website),
		Address: firstNonEmpty(doc, addressStrategies),
	}
}

// Parse extracts a BusinessProfile from raw HTML. The source URL is used
// only as the base for resolving relative links; unresolvable URLs are
// dropped silently.
func (p *Parser) Parse(html string, sourceURL string) *model.BusinessProfile {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Parsers degrade to an empty tree; treat a hard failure the
		// same way and fall through to field fallbacks.
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}

	name := firstNonEmpty(doc, []fieldStrategy{
		textFromSelector("h1"),
		textFromSelector("[itemprop='name']"),
		attrFromSelector("meta[property='og:title']", "content"),
		textFromSelector("title"),
	})
	if name == "" {
		name = "Untitled Business"
	}

	description := firstNonEmpty(doc, descriptionStrategies)
	if description == "" {
		description = "Business details imported from the provided profile."
	}

	faqs := collectFaqs(doc)
	quickAnswers := faqs[:min(common.MAX_QUICK_ANSWERS, len(faqs))]

	profile := &model.BusinessProfile{
		Mode:                model.ExtractionModeAuto,
		SourceURL:           sourceURL,
		Name:                name,
		Slug:                common.CreateSlug(name),
		TypesOfBusiness:     collectLabeledSection(doc, []string{"Business Categories"}),
		ProductsAndServices: collectLabeledSection(doc, []string{"Products and Services", "Products & Services"}),
		Description:         description,
		About:               description,
		Contact:             collectContact(doc, sourceURL),
		Hours:               collectHours(doc),
		ServiceAreas:        collectLabeledSection(doc, []string{"Service Area", "Service Areas", "Areas Served"}),
		Images:              collectImages(doc, sourceURL),
		LogoURL:             collectLogoURL(doc, sourceURL),
		FAQs:                faqs,
		QuickAnswers:        append([]model.FAQ{}, quickAnswers...),
		Testimonials:        []model.Testimonial{},
	}
	profile.Normalize()
	return profile
}

// ParseUploaded handles a saved HTML capture: the bytes are decoded to
// UTF-8 first since saved pages often carry legacy charsets, and the
// resulting profile records upload provenance.
func (p *Parser) ParseUploaded(data []byte, contentType string, sourceURL string) *model.BusinessProfile {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			decoded = bytes.ToValidUTF8(data, []byte("�"))
		} else {
			decoded = data
		}
	}
	profile := p.Parse(string(decoded), sourceURL)
	profile.Mode = model.ExtractionModeUploadHTML
	return profile
}
