package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"bizsite-backend/builder"
	"bizsite-backend/common"
	"bizsite-backend/compliance"
	"bizsite-backend/generator"
	"bizsite-backend/model"
	"bizsite-backend/storage"
)

// SiteService runs the content pipeline end to end on behalf of the
// HTTP layer: profile in, normalized content, compliance report and
// generated site out. All pipeline stages are pure; the service owns
// only sequencing and storage round-trips.
type SiteService struct {
	logger *slog.Logger
	cfg    *common.Config
	store  storage.ProjectStore
	engine *compliance.Engine
	gen    *generator.Generator
}

func NewSiteService(cfg *common.Config, store storage.ProjectStore) *SiteService {
	logger := slog.With("service", "SiteService")

	return &SiteService{
		logger: logger,
		cfg:    cfg,
		store:  store,
		engine: compliance.NewEngine(),
		gen:    generator.New(),
	}
}

// CreateProject wraps a profile in a new draft record with content
// derived once from the profile, and defaults for theme, layout and
// sections taken from the configured presets.
func (s *SiteService) CreateProject(ctx context.Context, profile model.BusinessProfile) (*model.ProjectRecord, error) {
	project := model.NewProject(profile)
	project.Theme = model.ProjectTheme{PresetID: s.cfg.DefaultThemePreset}
	layout, sections := builder.ApplyLayoutPreset(s.cfg.DefaultLayoutPreset, nil)
	project.Layout = layout
	project.Sections = sections
	project.Content = builder.CreateContentFromProfile(&project.Profile)

	if err := s.store.SaveProject(ctx, project); err != nil {
		return nil, err
	}
	s.logger.Info("Project created", "project_id", project.ID, "slug", project.Profile.Slug, "mode", project.Profile.Mode)
	return project, nil
}

// GetProject loads a stored project record.
func (s *SiteService) GetProject(ctx context.Context, projectID string) (*model.ProjectRecord, error) {
	return s.store.GetProject(ctx, projectID)
}

// DeleteProject removes a stored project record.
func (s *SiteService) DeleteProject(ctx context.Context, projectID string) error {
	return s.store.DeleteProject(ctx, projectID)
}

// ListProjects lists stored project IDs.
func (s *SiteService) ListProjects(ctx context.Context) ([]string, error) {
	return s.store.ListProjects(ctx)
}

// ProjectUpdate carries the optional fields of an update request. Nil
// fields leave the stored value untouched.
type ProjectUpdate struct {
	Profile             *model.BusinessProfile  `json:"profile,omitempty"`
	Theme               *model.ProjectTheme     `json:"theme,omitempty"`
	Layout              *model.ProjectLayout    `json:"layout,omitempty"`
	Sections            []model.ProjectSection  `json:"sections,omitempty"`
	Content             *model.GeneratedContent `json:"content,omitempty"`
	SubstantiationNotes map[string]string       `json:"substantiationNotes,omitempty"`
	Status              model.ProjectStatus     `json:"status,omitempty"`
}

// UpdateProject merges an update into the stored record, re-running the
// relevant normalizers so invariants hold no matter how partial the
// input was.
func (s *SiteService) UpdateProject(ctx context.Context, projectID string, update ProjectUpdate) (*model.ProjectRecord, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if update.Profile != nil {
		update.Profile.Normalize()
		project.Profile = *update.Profile
	}
	if update.Theme != nil {
		project.Theme = builder.NormalizeTheme(*update.Theme)
	}
	if update.Layout != nil {
		project.Layout = model.ProjectLayout{PresetID: builder.GetLayoutPreset(update.Layout.PresetID).ID}
	}
	if update.Sections != nil {
		project.Sections = builder.NormalizeSections(project.Layout, update.Sections)
	}
	if update.Content != nil {
		project.Content = builder.NormalizeContent(&project.Profile, update.Content)
	}
	if update.SubstantiationNotes != nil {
		project.SubstantiationNotes = update.SubstantiationNotes
	}
	if update.Status != "" {
		project.Status = update.Status
	}
	project.Touch()

	if err := s.store.SaveProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ScanCompliance recomputes the advisory compliance report against the
// copy a visitor would see (edited content projected over the profile).
// The report is attached to the record but never treated as a source of
// truth.
func (s *SiteService) ScanCompliance(ctx context.Context, projectID string) (*model.ProjectRecord, model.ComplianceSummary, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, model.ComplianceSummary{}, err
	}

	content := builder.NormalizeContent(&project.Profile, project.Content)
	scanned := builder.ToComplianceProfile(&project.Profile, content)
	summary := s.engine.Scan(scanned)

	project.Compliance = &summary
	project.Touch()
	if err := s.store.SaveProject(ctx, project); err != nil {
		return nil, model.ComplianceSummary{}, err
	}

	s.logger.Info("Compliance scan complete", "project_id", projectID, "issues", len(summary.Issues))
	return project, summary, nil
}

// SuggestLayout produces an advisory layout recommendation for the
// project's current profile and content.
func (s *SiteService) SuggestLayout(ctx context.Context, projectID string) (builder.LayoutSuggestion, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return builder.LayoutSuggestion{}, err
	}
	return builder.SuggestLayout(&project.Profile, project.Content), nil
}

// GenerateSite runs the full pipeline for a stored project and writes
// the artifact tree under the configured output directory. Images are
// referenced as already-materialized assets; fetching them is the image
// collaborator's job, and a missing image just means the placeholder.
func (s *SiteService) GenerateSite(ctx context.Context, projectID string, images []generator.LocalImage, options generator.GenerationOptions) (*model.ProjectRecord, generator.FileSet, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	content := builder.NormalizeContent(&project.Profile, project.Content)
	scanned := builder.ToComplianceProfile(&project.Profile, content)
	summary := s.engine.Scan(scanned)
	project.Compliance = &summary

	files, err := s.gen.Generate(project, summary, images, options)
	if err != nil {
		project.Status = model.ProjectStatusError
		project.LastError = err.Error()
		project.Touch()
		_ = s.store.SaveProject(ctx, project)
		return nil, nil, fmt.Errorf("failed to generate site: %w", err)
	}

	siteDir := filepath.Join(s.cfg.OutputDir, project.ID, common.CreateSlug(project.Profile.Slug))
	if err := files.WriteTo(siteDir); err != nil {
		project.Status = model.ProjectStatusError
		project.LastError = err.Error()
		project.Touch()
		_ = s.store.SaveProject(ctx, project)
		return nil, nil, err
	}

	project.Status = model.ProjectStatusGenerated
	project.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	project.GenerationPath = siteDir
	project.LastError = ""
	project.Touch()
	if err := s.store.SaveProject(ctx, project); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Site generated", "project_id", projectID, "dir", siteDir, "files", len(files))
	return project, files, nil
}
