package compliance

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"bizsite-backend/model"
)

// Rule is one regulated-phrase pattern. The table is fixed and ordered;
// scans walk it in declaration order so issue output is deterministic.
type Rule struct {
	ID                     string
	Type                   model.IssueType
	Pattern                *regexp.Regexp
	Severity               model.Severity
	WhyRisky               string
	RequiredSubstantiation string
	SaferRewrite           string
}

var RULES = []Rule{
	{
		ID:       "unqualified-best",
		Type:     model.IssueTypeSuperlative,
		Pattern:  regexp.MustCompile(`(?i)(#1|\b(best|number\s*one|top\s*rated|guaranteed|guarantee|lowest\s*price|free|factory\s*direct)\b)`),
		Severity: model.SeverityHigh,
		WhyRisky: "Unqualified superlatives and absolute claims can mislead consumers if not fully supported and disclosed.",
		RequiredSubstantiation: "Provide objective third-party evidence, timeframe, market scope, and clear qualifying language.",
		SaferRewrite:           "Use specific, verifiable language like 'trusted by local homeowners since 2010' with source notes.",
	},
	{
		ID:       "comparative-savings",
		Type:     model.IssueTypeComparativeSavings,
		Pattern:  regexp.MustCompile(`(?i)\b(save\s+\d+%|save\s+up\s+to|cheaper\s+than|lowest\s+cost|guaranteed\s+savings|save\s+money)\b`),
		Severity: model.SeverityHigh,
		WhyRisky: "Comparative pricing or savings statements require a clear basis, comparison set, and timing.",
		RequiredSubstantiation: "Document competitor set, measured dates, methodology, and any exclusions or assumptions.",
		SaferRewrite:           "Replace with non-comparative value language, or attach the measurable basis directly in the copy.",
	},
	{
		ID:       "lifetime-guarantee",
		Type:     model.IssueTypeLifetimeGuarantee,
		Pattern:  regexp.MustCompile(`(?i)\blifetime(\s+guarantee|\s+warranty)?\b`),
		Severity: model.SeverityHigh,
		WhyRisky: "'Lifetime' is ambiguous unless the duration, owner transferability, and exclusions are defined.",
		RequiredSubstantiation: "Define whose lifetime, exact term conditions, transfer rules, and all exclusions in plain language.",
		SaferRewrite:           "Specify a concrete term like '10-year workmanship warranty' and link full warranty details.",
	},
	{
		ID:       "testimonial-atypical",
		Type:     model.IssueTypeTestimonialAtypical,
		Pattern:  regexp.MustCompile(`(?i)\b(results|outcome|saved\s+me|changed\s+my\s+life|never\s+had\s+a\s+problem)\b`),
		Severity: model.SeverityMedium,
		WhyRisky: "Testimonials can imply typical outcomes unless disclosures clarify representativeness.",
		RequiredSubstantiation: "Add disclosure about typical results and keep source/permission records for each testimonial.",
		SaferRewrite:           "Pair testimonials with 'Individual results vary' and factual context on typical customer outcomes.",
	},
}

type textBlock struct {
	field string
	text  string
}

func collectText(profile *model.BusinessProfile) []textBlock {
	blocks := []textBlock{
		{field: "description", text: profile.Description},
		{field: "about", text: profile.About},
		{field: "productsAndServices", text: strings.Join(profile.ProductsAndServices, " ")},
	}
	for idx, faq := range profile.FAQs {
		blocks = append(blocks, textBlock{
			field: fmt.Sprintf("faqs[%d]", idx),
			text:  faq.Question + " " + faq.Answer,
		})
	}
	for idx, qa := range profile.QuickAnswers {
		blocks = append(blocks, textBlock{
			field: fmt.Sprintf("quickAnswers[%d]", idx),
			text:  qa.Question + " " + qa.Answer,
		})
	}
	for idx, testimonial := range profile.Testimonials {
		blocks = append(blocks, textBlock{
			field: fmt.Sprintf("testimonials[%d]", idx),
			text:  testimonial.Author + " " + testimonial.Quote,
		})
	}
	return blocks
}

// Engine scans profile text for regulated-advertising risk phrases. It
// is stateless; Now is injectable so tests get stable timestamps.
type Engine struct {
	Now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

// Scan reports every non-overlapping match of every rule in every scoped
// text block. Issue ids encode rule, field path and byte offset, which
// keeps identity stable across rescans of unchanged text.
func (e *Engine) Scan(profile *model.BusinessProfile) model.ComplianceSummary {
	issues := []model.ComplianceIssue{}
	for _, block := range collectText(profile) {
		for _, rule := range RULES {
			for _, loc := range rule.Pattern.FindAllStringIndex(block.text, -1) {
				issues = append(issues, model.ComplianceIssue{
					ID:                     fmt.Sprintf("%s-%s-%d", rule.ID, block.field, loc[0]),
					Field:                  block.field,
					Phrase:                 block.text[loc[0]:loc[1]],
					Type:                   rule.Type,
					Severity:               rule.Severity,
					WhyRisky:               rule.WhyRisky,
					RequiredSubstantiation: rule.RequiredSubstantiation,
					SaferRewrite:           rule.SaferRewrite,
				})
			}
		}
	}
	return model.ComplianceSummary{
		ReviewedAt:         e.Now().UTC().Format(time.RFC3339),
		Issues:             issues,
		RequiresUserReview: len(issues) > 0,
	}
}

// Scan runs the rule table with the default engine.
func Scan(profile *model.BusinessProfile) model.ComplianceSummary {
	return NewEngine().Scan(profile)
}
