package model

type IssueType string

const (
	IssueTypeSuperlative         IssueType = "superlative"
	IssueTypeComparativeSavings  IssueType = "comparative_savings"
	IssueTypeLifetimeGuarantee   IssueType = "lifetime_guarantee"
	IssueTypeTestimonialAtypical IssueType = "testimonial_atypical"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ComplianceIssue is one flagged regulated-language match. The ID is
// derived from rule id, field path and match offset, so it is stable
// across rescans of unchanged text and changes when the phrase moves.
type ComplianceIssue struct {
	ID                     string    `json:"id"`
	Field                  string    `json:"field"`
	Phrase                 string    `json:"phrase"`
	Type                   IssueType `json:"type"`
	Severity               Severity  `json:"severity"`
	WhyRisky               string    `json:"whyRisky"`
	RequiredSubstantiation string    `json:"requiredSubstantiation"`
	SaferRewrite           string    `json:"saferRewrite"`
}

// ComplianceSummary is a derived report, recomputed on demand and never
// persisted as the source of truth.
type ComplianceSummary struct {
	ReviewedAt         string            `json:"reviewedAt"`
	Issues             []ComplianceIssue `json:"issues"`
	RequiresUserReview bool              `json:"requiresUserReview"`
}
