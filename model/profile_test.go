package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestProfileUnmarshalMigratesLegacyFields(t *testing.T) {
	raw := `{
		"name": "Acme Roofing",
		"categories": "Roofing Contractor, General Contractor",
		"services": ["Roof Repair", "roof repair", "Gutter Install"]
	}`

	var profile BusinessProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	wantTypes := TokenList{"Roofing Contractor", "General Contractor"}
	if !reflect.DeepEqual(profile.TypesOfBusiness, wantTypes) {
		t.Fatalf("want typesOfBusiness %v, got %v", wantTypes, profile.TypesOfBusiness)
	}
	wantServices := TokenList{"Roof Repair", "Gutter Install"}
	if !reflect.DeepEqual(profile.ProductsAndServices, wantServices) {
		t.Fatalf("want productsAndServices %v, got %v", wantServices, profile.ProductsAndServices)
	}
}

func TestProfileUnmarshalPrefersModernFields(t *testing.T) {
	raw := `{
		"name": "Acme Roofing",
		"typesOfBusiness": ["Roofing Contractor"],
		"categories": ["Legacy Category"]
	}`

	var profile BusinessProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(profile.TypesOfBusiness, TokenList{"Roofing Contractor"}) {
		t.Fatalf("legacy field overrode modern one: %v", profile.TypesOfBusiness)
	}
}

func TestNormalizeDefaultsNameAndSlug(t *testing.T) {
	profile := BusinessProfile{}
	profile.Normalize()

	if profile.Name != "Untitled Business" {
		t.Fatalf("want default name, got %q", profile.Name)
	}
	if profile.Slug != "untitled-business" {
		t.Fatalf("want derived slug, got %q", profile.Slug)
	}
	if profile.Hours == nil || profile.FAQs == nil || profile.Images == nil {
		t.Fatal("nil collections survived normalization")
	}
}

func TestEnsureHeroKeepsExactlyOne(t *testing.T) {
	profile := BusinessProfile{Images: []ImageAsset{
		{ID: "img-1", SelectedHero: true},
		{ID: "img-2", SelectedHero: true},
		{ID: "img-3"},
	}}
	profile.EnsureHero()

	heroes := 0
	for _, img := range profile.Images {
		if img.SelectedHero {
			heroes++
		}
	}
	if heroes != 1 || !profile.Images[0].SelectedHero {
		t.Fatalf("want only img-1 as hero, got %+v", profile.Images)
	}

	profile.Images = []ImageAsset{{ID: "img-1"}, {ID: "img-2"}}
	profile.EnsureHero()
	if !profile.Images[0].SelectedHero {
		t.Fatal("first image was not promoted to hero")
	}
}
