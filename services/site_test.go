package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bizsite-backend/common"
	"bizsite-backend/generator"
	"bizsite-backend/model"
	"bizsite-backend/storage"
)

func testService(t *testing.T) *SiteService {
	t.Helper()
	cfg := common.DefaultConfig()
	cfg.OutputDir = t.TempDir()
	return NewSiteService(cfg, storage.NewMemoryStore())
}

func testProfile() model.BusinessProfile {
	return model.BusinessProfile{
		Name:                "Acme Roofing",
		ProductsAndServices: model.TokenList{"Roof Repair"},
		Description:         "Residential roofing in Springfield.",
	}
}

func TestCreateProjectAppliesDefaults(t *testing.T) {
	svc := testService(t)

	project, err := svc.CreateProject(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if project.Status != model.ProjectStatusDraft {
		t.Fatalf("unexpected status %q", project.Status)
	}
	if project.Theme.PresetID != common.DEFAULT_THEME_PRESET {
		t.Fatalf("unexpected theme %q", project.Theme.PresetID)
	}
	if project.Layout.PresetID != common.DEFAULT_LAYOUT_PRESET {
		t.Fatalf("unexpected layout %q", project.Layout.PresetID)
	}
	if len(project.Sections) == 0 {
		t.Fatal("sections not materialized from layout preset")
	}
	if project.Content == nil || project.Content.HeroHeadline != "Acme Roofing" {
		t.Fatalf("content not derived: %+v", project.Content)
	}

	stored, err := svc.GetProject(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Profile.Slug != "acme-roofing" {
		t.Fatalf("profile not normalized before save: %q", stored.Profile.Slug)
	}
}

func TestUpdateProjectMergesPartialUpdate(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, testProfile())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateProject(ctx, project.ID, ProjectUpdate{
		Content: &model.GeneratedContent{HeroHeadline: "New Headline"},
		Status:  model.ProjectStatusEdited,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Content.HeroHeadline != "New Headline" {
		t.Fatalf("content edit lost: %q", updated.Content.HeroHeadline)
	}
	if updated.Content.SiteTitle == "" {
		t.Fatal("content defaults not filled during merge")
	}
	if updated.Status != model.ProjectStatusEdited {
		t.Fatalf("status not applied: %q", updated.Status)
	}
	if updated.Profile.Name != "Acme Roofing" {
		t.Fatalf("profile changed by content update: %q", updated.Profile.Name)
	}
}

func TestUpdateProjectUnknownID(t *testing.T) {
	svc := testService(t)
	if _, err := svc.UpdateProject(context.Background(), "missing", ProjectUpdate{}); err == nil {
		t.Fatal("want error for missing project")
	}
}

func TestScanComplianceAttachesSummary(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	profile := testProfile()
	profile.Description = "The #1 roofer with a lifetime guarantee."
	project, err := svc.CreateProject(ctx, profile)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, summary, err := svc.ScanCompliance(ctx, project.ID)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !summary.RequiresUserReview || len(summary.Issues) == 0 {
		t.Fatalf("risky copy not flagged: %+v", summary)
	}

	stored, err := svc.GetProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Compliance == nil || len(stored.Compliance.Issues) != len(summary.Issues) {
		t.Fatalf("summary not persisted: %+v", stored.Compliance)
	}
}

func TestGenerateSiteWritesArtifacts(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, testProfile())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, files, err := svc.GenerateSite(ctx, project.ID, nil, generator.GenerationOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if updated.Status != model.ProjectStatusGenerated {
		t.Fatalf("unexpected status %q", updated.Status)
	}
	if updated.GeneratedAt == "" || updated.GenerationPath == "" {
		t.Fatalf("generation metadata missing: %+v", updated)
	}
	if len(files) == 0 {
		t.Fatal("no files returned")
	}

	indexPath := filepath.Join(updated.GenerationPath, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		t.Fatalf("index.html not written: %v", err)
	}
}

func TestSuggestLayoutForStoredProject(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, testProfile())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	suggestion, err := svc.SuggestLayout(ctx, project.ID)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	// Profile has no images, so the compact layout is recommended.
	if suggestion.RecommendedPresetID != "minimal-one-page" {
		t.Fatalf("unexpected recommendation %q", suggestion.RecommendedPresetID)
	}
}
