package builder

import "bizsite-backend/model"

func dedupeSections(ids []model.SectionID) []model.SectionID {
	seen := make(map[model.SectionID]struct{})
	var ordered []model.SectionID
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}
	return ordered
}

func isKnownSection(id model.SectionID) bool {
	for _, known := range ALL_SECTION_IDS {
		if known == id {
			return true
		}
	}
	return false
}

// BuildSectionsFromLayoutPreset returns every known section, preset
// sections first in preset order and enabled, the rest appended in
// canonical order and disabled.
func BuildSectionsFromLayoutPreset(presetID string) []model.ProjectSection {
	preset := GetLayoutPreset(presetID)
	enabled := make(map[model.SectionID]struct{}, len(preset.Sections))
	for _, id := range preset.Sections {
		enabled[id] = struct{}{}
	}
	ordered := dedupeSections(append(append([]model.SectionID{}, preset.Sections...), ALL_SECTION_IDS...))
	sections := make([]model.ProjectSection, 0, len(ordered))
	for _, id := range ordered {
		_, on := enabled[id]
		sections = append(sections, model.ProjectSection{ID: id, Enabled: on})
	}
	return sections
}

// NormalizeSections fills a partial or legacy section list from the
// active layout preset. A full well-formed list round-trips unchanged;
// caller-supplied order comes first, remaining known ids are appended in
// canonical order, and unknown ids are dropped.
func NormalizeSections(layout model.ProjectLayout, sections []model.ProjectSection) []model.ProjectSection {
	defaults := BuildSectionsFromLayoutPreset(layout.PresetID)
	if len(sections) == 0 {
		return defaults
	}

	defaultEnabled := make(map[model.SectionID]bool, len(defaults))
	for _, section := range defaults {
		defaultEnabled[section.ID] = section.Enabled
	}

	enabledByID := make(map[model.SectionID]bool)
	var incomingOrder []model.SectionID
	for _, section := range sections {
		if !isKnownSection(section.ID) {
			continue
		}
		if _, dup := enabledByID[section.ID]; !dup {
			enabledByID[section.ID] = section.Enabled
		}
		incomingOrder = append(incomingOrder, section.ID)
	}

	ordered := dedupeSections(append(incomingOrder, ALL_SECTION_IDS...))
	normalized := make([]model.ProjectSection, 0, len(ordered))
	for _, id := range ordered {
		enabled, supplied := enabledByID[id]
		if !supplied {
			enabled = defaultEnabled[id]
		}
		normalized = append(normalized, model.ProjectSection{ID: id, Enabled: enabled})
	}
	return normalized
}

// ApplySectionToggles flips enabled flags for the ids present in toggles
// while preserving order.
func ApplySectionToggles(sections []model.ProjectSection, toggles map[model.SectionID]bool) []model.ProjectSection {
	applied := make([]model.ProjectSection, len(sections))
	for i, section := range sections {
		if enabled, ok := toggles[section.ID]; ok {
			section.Enabled = enabled
		}
		applied[i] = section
	}
	return applied
}

// ApplyLayoutPreset materializes a layout preset into a layout record
// plus its full section list, with optional toggles applied on top.
func ApplyLayoutPreset(presetID string, toggles map[model.SectionID]bool) (model.ProjectLayout, []model.ProjectSection) {
	sections := BuildSectionsFromLayoutPreset(presetID)
	if toggles != nil {
		sections = ApplySectionToggles(sections, toggles)
	}
	return model.ProjectLayout{PresetID: GetLayoutPreset(presetID).ID}, sections
}
