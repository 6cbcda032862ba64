package builder

import (
	"reflect"
	"testing"

	"bizsite-backend/model"
)

func sectionIDs(sections []model.ProjectSection) []model.SectionID {
	ids := make([]model.SectionID, len(sections))
	for i, section := range sections {
		ids[i] = section.ID
	}
	return ids
}

func TestBuildSectionsMinimalOnePage(t *testing.T) {
	sections := BuildSectionsFromLayoutPreset("minimal-one-page")

	if len(sections) != len(ALL_SECTION_IDS) {
		t.Fatalf("want %d sections, got %d", len(ALL_SECTION_IDS), len(sections))
	}

	wantFirst := []model.SectionID{
		model.SectionHero, model.SectionAbout, model.SectionServices, model.SectionContact,
	}
	for i, id := range wantFirst {
		if sections[i].ID != id || !sections[i].Enabled {
			t.Fatalf("position %d: want %s enabled, got %s enabled=%v", i, id, sections[i].ID, sections[i].Enabled)
		}
	}
	for _, section := range sections[len(wantFirst):] {
		if section.Enabled {
			t.Fatalf("section %s should be disabled in minimal-one-page", section.ID)
		}
	}
}

func TestBuildSectionsUnknownPresetFallsBack(t *testing.T) {
	got := BuildSectionsFromLayoutPreset("no-such-preset")
	want := BuildSectionsFromLayoutPreset(LAYOUT_PRESETS[0].ID)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unknown preset did not fall back to default: %v", got)
	}
}

func TestNormalizeSectionsRoundTripsFullList(t *testing.T) {
	layout := model.ProjectLayout{PresetID: "local-service-classic"}
	full := BuildSectionsFromLayoutPreset(layout.PresetID)

	once := NormalizeSections(layout, full)
	if !reflect.DeepEqual(once, full) {
		t.Fatalf("well-formed list changed: %v vs %v", once, full)
	}
	twice := NormalizeSections(layout, once)
	if !reflect.DeepEqual(twice, once) {
		t.Fatalf("normalization is not idempotent: %v vs %v", twice, once)
	}
}

func TestNormalizeSectionsFillsPartialInput(t *testing.T) {
	layout := model.ProjectLayout{PresetID: "local-service-classic"}
	partial := []model.ProjectSection{
		{ID: model.SectionContact, Enabled: true},
		{ID: "mystery_block", Enabled: true},
		{ID: model.SectionHero, Enabled: false},
	}

	got := NormalizeSections(layout, partial)

	if len(got) != len(ALL_SECTION_IDS) {
		t.Fatalf("want %d sections, got %d", len(ALL_SECTION_IDS), len(got))
	}
	if got[0].ID != model.SectionContact || got[1].ID != model.SectionHero {
		t.Fatalf("caller order not preserved: %v", sectionIDs(got))
	}
	if got[1].Enabled {
		t.Fatal("supplied enabled=false was overridden")
	}
	for _, section := range got {
		if section.ID == "mystery_block" {
			t.Fatal("unknown section id survived normalization")
		}
	}
}

func TestNormalizeSectionsEmptyUsesDefaults(t *testing.T) {
	layout := model.ProjectLayout{PresetID: "high-trust"}
	got := NormalizeSections(layout, nil)
	want := BuildSectionsFromLayoutPreset("high-trust")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("empty input did not use preset defaults: %v", got)
	}
}

func TestApplyLayoutPresetWithToggles(t *testing.T) {
	layout, sections := ApplyLayoutPreset("minimal-one-page", map[model.SectionID]bool{
		model.SectionGallery: true,
		model.SectionAbout:   false,
	})

	if layout.PresetID != "minimal-one-page" {
		t.Fatalf("unexpected layout preset %q", layout.PresetID)
	}
	for _, section := range sections {
		switch section.ID {
		case model.SectionGallery:
			if !section.Enabled {
				t.Fatal("gallery toggle not applied")
			}
		case model.SectionAbout:
			if section.Enabled {
				t.Fatal("about toggle not applied")
			}
		}
	}
}
