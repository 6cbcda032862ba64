package storage

import (
	"context"
	"testing"

	"bizsite-backend/model"
)

func newRecord(name string) *model.ProjectRecord {
	profile := model.BusinessProfile{Name: name}
	profile.Normalize()
	return model.NewProject(profile)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	record := newRecord("Acme Roofing")

	if err := store.SaveProject(ctx, record); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.GetProject(ctx, record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.ID != record.ID || loaded.Profile.Name != "Acme Roofing" {
		t.Fatalf("record mangled: %+v", loaded)
	}
	if loaded.Status != model.ProjectStatusDraft {
		t.Fatalf("unexpected status %q", loaded.Status)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.GetProject(context.Background(), "nope"); err == nil {
		t.Fatal("want error for missing project")
	}
}

func TestMemoryStoreDeleteAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := newRecord("First")
	second := newRecord("Second")
	if err := store.SaveProject(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveProject(ctx, second); err != nil {
		t.Fatalf("save: %v", err)
	}

	ids, err := store.ListProjects(ctx)
	if err != nil || len(ids) != 2 {
		t.Fatalf("list: %v %v", ids, err)
	}

	if err := store.DeleteProject(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteProject(ctx, first.ID); err != nil {
		t.Fatalf("double delete should be a no-op: %v", err)
	}

	ids, err = store.ListProjects(ctx)
	if err != nil || len(ids) != 1 || ids[0] != second.ID {
		t.Fatalf("unexpected list after delete: %v %v", ids, err)
	}
}

func TestMemoryStoreIsolatesStoredCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	record := newRecord("Acme Roofing")

	if err := store.SaveProject(ctx, record); err != nil {
		t.Fatalf("save: %v", err)
	}
	record.Profile.Name = "Mutated After Save"

	loaded, err := store.GetProject(ctx, record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Profile.Name != "Acme Roofing" {
		t.Fatalf("stored copy shares memory with caller: %q", loaded.Profile.Name)
	}
}
