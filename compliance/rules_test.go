package compliance

import (
	"testing"
	"time"

	"bizsite-backend/model"
)

func testEngine() *Engine {
	return &Engine{Now: func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}}
}

func findIssue(issues []model.ComplianceIssue, issueType model.IssueType) *model.ComplianceIssue {
	for i := range issues {
		if issues[i].Type == issueType {
			return &issues[i]
		}
	}
	return nil
}

func TestScanFlagsRiskyPhrases(t *testing.T) {
	profile := &model.BusinessProfile{
		Description: "We are the #1 roofing company. Save up to 40% this spring.",
		About:       "Every roof carries a lifetime guarantee.",
		Testimonials: []model.Testimonial{
			{Author: "Pat", Quote: "This changed my life and saved me money."},
		},
	}

	summary := testEngine().Scan(profile)

	if !summary.RequiresUserReview {
		t.Fatal("risky copy did not require review")
	}
	if summary.ReviewedAt != "2026-03-01T12:00:00Z" {
		t.Fatalf("unexpected reviewedAt %q", summary.ReviewedAt)
	}

	superlative := findIssue(summary.Issues, model.IssueTypeSuperlative)
	if superlative == nil || superlative.Severity != model.SeverityHigh {
		t.Fatalf("missing high superlative issue: %+v", summary.Issues)
	}
	if superlative.Field != "description" || superlative.Phrase != "#1" {
		t.Fatalf("unexpected superlative issue: %+v", superlative)
	}

	savings := findIssue(summary.Issues, model.IssueTypeComparativeSavings)
	if savings == nil || savings.Severity != model.SeverityHigh {
		t.Fatalf("missing comparative savings issue: %+v", summary.Issues)
	}

	lifetime := findIssue(summary.Issues, model.IssueTypeLifetimeGuarantee)
	if lifetime == nil || lifetime.Field != "about" {
		t.Fatalf("missing lifetime guarantee issue: %+v", summary.Issues)
	}

	testimonial := findIssue(summary.Issues, model.IssueTypeTestimonialAtypical)
	if testimonial == nil || testimonial.Severity != model.SeverityMedium {
		t.Fatalf("missing medium testimonial issue: %+v", summary.Issues)
	}
	if testimonial.Field != "testimonials[0]" {
		t.Fatalf("testimonial issue scoped to wrong field: %q", testimonial.Field)
	}
}

func TestScanNeutralCopyIsClean(t *testing.T) {
	profile := &model.BusinessProfile{
		Description:         "Family-run roofing company serving the area since 2010.",
		About:               "We repair and replace residential roofs.",
		ProductsAndServices: model.TokenList{"Roof Repair", "Gutter Install"},
	}

	summary := testEngine().Scan(profile)

	if summary.RequiresUserReview {
		t.Fatalf("neutral copy flagged: %+v", summary.Issues)
	}
	if summary.Issues == nil || len(summary.Issues) != 0 {
		t.Fatalf("want empty non-nil issues, got %#v", summary.Issues)
	}
}

func TestScanIssueIDsStableAcrossRescans(t *testing.T) {
	profile := &model.BusinessProfile{
		Description: "Best prices in town, guaranteed savings on every job.",
	}

	first := testEngine().Scan(profile)
	second := testEngine().Scan(profile)

	if len(first.Issues) == 0 || len(first.Issues) != len(second.Issues) {
		t.Fatalf("issue counts differ: %d vs %d", len(first.Issues), len(second.Issues))
	}
	for i := range first.Issues {
		if first.Issues[i].ID != second.Issues[i].ID {
			t.Fatalf("issue id changed between scans: %q vs %q", first.Issues[i].ID, second.Issues[i].ID)
		}
	}
	if first.Issues[0].ID != "unqualified-best-description-0" {
		t.Fatalf("unexpected first issue id %q", first.Issues[0].ID)
	}
}

func TestScanReportsEveryOccurrence(t *testing.T) {
	profile := &model.BusinessProfile{
		Description: "Free estimates and free inspections.",
	}

	summary := testEngine().Scan(profile)

	count := 0
	for _, issue := range summary.Issues {
		if issue.Type == model.IssueTypeSuperlative {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("want 2 superlative matches, got %d: %+v", count, summary.Issues)
	}
}
