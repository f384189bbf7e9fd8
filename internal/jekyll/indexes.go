package jekyll

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	jerrors "git.home.luguber.info/inful/docpages/internal/jekyll/errors"
	"git.home.luguber.info/inful/docpages/internal/logfields"
	"git.home.luguber.info/inful/docpages/internal/registry"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Generated pages contain Liquid {{ }} syntax, so the Go templates use
// [[ ]] delimiters.
var indexTemplates = template.Must(
	template.New("indexes").Delims("[[", "]]").ParseFS(templateFS, "templates/*.tmpl"))

var titleCaser = cases.Title(language.English)

type docLink struct {
	Title string
	URL   string
}

type categoryPage struct {
	Slug        string
	DisplayName string
	Description string
	Count       int
	Docs        []docLink
}

type mainIndexPage struct {
	Title       string
	Description string
	BaseURL     string
	Categories  []categoryPage
}

type categoryRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Count       int    `yaml:"count"`
}

// populatedCategories returns one page model per configured category that
// holds at least one registered document, ordered by numeric prefix.
func (g *Generator) populatedCategories(reg *registry.Registry) []categoryPage {
	prefixes := make([]string, 0, len(g.cfg.Categories))
	for prefix := range g.cfg.Categories {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	var pages []categoryPage
	for _, prefix := range prefixes {
		category := g.cfg.Categories[prefix]
		if !reg.HasCategory(category.Name) {
			continue
		}

		var links []docLink
		for _, entry := range reg.Entries() {
			if entry.Category == category.Name {
				links = append(links, docLink{Title: entry.Title, URL: entry.URL})
			}
		}
		sort.Slice(links, func(i, j int) bool { return links[i].URL < links[j].URL })

		pages = append(pages, categoryPage{
			Slug:        category.Name,
			DisplayName: titleCaser.String(category.Name),
			Description: category.Description,
			Count:       len(links),
			Docs:        links,
		})
	}
	return pages
}

// writeCategoryIndexes renders an index page for every category with at
// least one document.
func (g *Generator) writeCategoryIndexes(reg *registry.Registry) error {
	for _, page := range g.populatedCategories(reg) {
		out := filepath.Join(g.outputDir, "docs", page.Slug, "index.md")
		if err := g.renderTemplate("category.md.tmpl", out, page); err != nil {
			return err
		}
		slog.Debug("Category index written", logfields.Category(page.Slug), logfields.Count(page.Count))
	}
	return nil
}

// writeMainIndexes renders the site landing page, the full document index
// and the _data/categories.yml data file.
func (g *Generator) writeMainIndexes(reg *registry.Registry) error {
	categories := g.populatedCategories(reg)

	main := mainIndexPage{
		Title:       g.cfg.Site.Title,
		Description: g.cfg.Site.Description,
		BaseURL:     g.cfg.Site.BaseURL,
		Categories:  categories,
	}
	if err := g.renderTemplate("main_index.md.tmpl", filepath.Join(g.outputDir, "index.md"), main); err != nil {
		return err
	}
	if err := g.renderTemplate("docs_index.md.tmpl", filepath.Join(g.outputDir, "docs", "index.md"), main); err != nil {
		return err
	}

	records := make([]categoryRecord, 0, len(categories))
	prefixByName := make(map[string]string, len(g.cfg.Categories))
	for prefix, category := range g.cfg.Categories {
		prefixByName[category.Name] = prefix
	}
	for _, page := range categories {
		records = append(records, categoryRecord{
			ID:          prefixByName[page.Slug],
			Name:        page.Slug,
			Title:       page.DisplayName,
			Description: page.Description,
			Count:       page.Count,
		})
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: categories.yml: %w", jerrors.ErrIndexWriteFailed, err)
	}
	path := filepath.Join(g.outputDir, "_data", "categories.yml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", jerrors.ErrIndexWriteFailed, path, err)
	}
	return nil
}

func (g *Generator) renderTemplate(name, outPath string, data any) error {
	var buf bytes.Buffer
	if err := indexTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("%w: %s: %w", jerrors.ErrIndexWriteFailed, name, err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return fmt.Errorf("%w: %s: %w", jerrors.ErrIndexWriteFailed, outPath, err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", jerrors.ErrIndexWriteFailed, outPath, err)
	}
	return nil
}
