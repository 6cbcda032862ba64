package generator

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"bizsite-backend/builder"
	"bizsite-backend/common"
	"bizsite-backend/model"
)

// GenerationOptions gates the optional machine-readability and
// attribution text files.
type GenerationOptions struct {
	IncludeLlmsTxt   bool `json:"includeLlmsTxt"`
	IncludeHumansTxt bool `json:"includeHumansTxt"`
}

// FileSet is a complete generated site keyed by relative path. Keeping
// it in memory lets callers preview, diff or package without touching
// disk; WriteTo materializes it.
type FileSet map[string][]byte

// Paths returns the file paths in sorted order.
func (fs FileSet) Paths() []string {
	paths := make([]string, 0, len(fs))
	for path := range fs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// WriteTo materializes the file set under dir, creating parents as
// needed.
func (fs FileSet) WriteTo(dir string) error {
	for _, path := range fs.Paths() {
		target := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := os.WriteFile(target, fs[path], 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// Generator renders a project into a static site file set.
type Generator struct {
	logger *slog.Logger
	Now    func() time.Time
}

func New() *Generator {
	return &Generator{
		logger: slog.With("service", "Generator"),
		Now:    time.Now,
	}
}

// Generate composes the normalized model into the fixed output layout:
// the five pages, styles.css, site.js, sitemap.xml, robots.txt,
// compliance-report.json, the placeholder graphic and the optional
// llms.txt / humans.txt. Images must already be materialized by the
// caller; zero images fall back to the placeholder.
func (g *Generator) Generate(
	project *model.ProjectRecord,
	compliance model.ComplianceSummary,
	images []LocalImage,
	options GenerationOptions,
) (FileSet, error) {
	profile := &project.Profile
	content := builder.NormalizeContent(profile, project.Content)
	sections := builder.NormalizeSections(project.Layout, project.Sections)
	slugBase := profile.Slug
	if slugBase == "" {
		slugBase = profile.Name
	}
	slug := common.CreateSlug(slugBase)

	if len(images) == 0 {
		images = []LocalImage{{
			Src:  "assets/images/placeholder.svg",
			Alt:  profile.Name + " placeholder image",
			Hero: true,
		}}
	}
	hero := heroImage(images)

	resolved := builder.ResolveTheme(project.Theme)
	themeCSS := builder.ThemeVarsToCSS(resolved.Vars)

	bodies := RenderBodies(profile, content, sections, images)
	pageBodies := map[string]string{
		"index.html":    bodies.Home,
		"services.html": bodies.Services,
		"about.html":    bodies.About,
		"contact.html":  bodies.Contact,
		"privacy.html":  bodies.Privacy,
	}

	baseURL := siteBaseURL(profile, content, slug)
	year := g.Now().UTC().Year()

	files := FileSet{
		"assets/styles.css":             []byte(stylesheet(themeCSS, buttonRadius(resolved.ButtonStyle))),
		"assets/site.js":                []byte(consentScript(profile.PrivacyTrackerOptIn)),
		"assets/images/placeholder.svg": []byte(placeholderSVG),
		"sitemap.xml":                   []byte(sitemapXML(baseURL)),
		"robots.txt":                    []byte(robotsTxt),
	}

	for _, page := range pageSpecs {
		files[page.File] = []byte(renderPage(profile, content, page, pageBodies[page.File], hero.Src, baseURL, year))
	}

	report, err := json.MarshalIndent(compliance, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode compliance report: %w", err)
	}
	files["compliance-report.json"] = report

	if options.IncludeLlmsTxt {
		contact := content.Contact.Email
		if contact == "" {
			contact = content.Contact.Phone
		}
		files["llms.txt"] = []byte(llmsTxt(profile.Name, content.MetaDescription, contact))
	}
	if options.IncludeHumansTxt {
		files["humans.txt"] = []byte(humansTxt(profile.Name))
	}

	g.logger.Debug("Site generated", "project_id", project.ID, "slug", slug, "files", len(files))
	return files, nil
}
