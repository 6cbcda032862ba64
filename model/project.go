package model

import (
	"encoding/json"
	"time"

	"bizsite-backend/common"
)

type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusGenerating ProjectStatus = "generating"
	ProjectStatusGenerated  ProjectStatus = "generated"
	ProjectStatusEdited     ProjectStatus = "edited"
	ProjectStatusSaved      ProjectStatus = "saved"
	ProjectStatusError      ProjectStatus = "error"
)

// ProjectRecord bundles everything the storage and editing surfaces
// exchange with the pipeline: profile, theme, layout, sections, content
// and substantiation notes, as one JSON-serializable unit.
type ProjectRecord struct {
	ID                  string             `json:"id"`
	CreatedAt           string             `json:"createdAt"`
	UpdatedAt           string             `json:"updatedAt"`
	GeneratedAt         string             `json:"generatedAt,omitempty"`
	Status              ProjectStatus      `json:"status"`
	Profile             BusinessProfile    `json:"profile"`
	Theme               ProjectTheme       `json:"theme"`
	Layout              ProjectLayout      `json:"layout"`
	Sections            []ProjectSection   `json:"sections"`
	Content             *GeneratedContent  `json:"content,omitempty"`
	SubstantiationNotes map[string]string  `json:"substantiationNotes"`
	Compliance          *ComplianceSummary `json:"compliance,omitempty"`
	GenerationPath      string             `json:"generationPath,omitempty"`
	LastError           string             `json:"lastError,omitempty"`
}

// NewProject wraps a profile in a fresh draft record.
func NewProject(profile BusinessProfile) *ProjectRecord {
	now := time.Now().UTC().Format(time.RFC3339)
	profile.Normalize()
	return &ProjectRecord{
		ID:                  common.RandomID(),
		CreatedAt:           now,
		UpdatedAt:           now,
		Status:              ProjectStatusDraft,
		Profile:             profile,
		Theme:               ProjectTheme{PresetID: common.DEFAULT_THEME_PRESET},
		Layout:              ProjectLayout{PresetID: common.DEFAULT_LAYOUT_PRESET},
		Sections:            []ProjectSection{},
		SubstantiationNotes: map[string]string{},
	}
}

func (p *ProjectRecord) Touch() {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// ToJSON converts the record to JSON.
func (p *ProjectRecord) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ProjectFromJSON creates a record from JSON, applying legacy profile
// field migration along the way.
func ProjectFromJSON(data []byte) (*ProjectRecord, error) {
	var project ProjectRecord
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, err
	}
	if project.SubstantiationNotes == nil {
		project.SubstantiationNotes = map[string]string{}
	}
	if project.Sections == nil {
		project.Sections = []ProjectSection{}
	}
	return &project, nil
}
