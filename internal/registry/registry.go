package registry

import (
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/docpages/internal/docs"
	"git.home.luguber.info/inful/docpages/internal/logfields"
	"git.home.luguber.info/inful/docpages/internal/metadata"
)

// Entry is the registry record for one recognized document. Entries are
// created during pass 1 and immutable afterwards.
type Entry struct {
	ID         string
	Title      string
	Category   string
	URL        string
	Path       string
	Excerpt    string
	Metadata   metadata.Metadata
	References []string
}

// Registry maps document identifiers to their resolved entries. It is
// write-only while Build runs and read-only once Build returns; pass 2 must
// not start before then.
type Registry struct {
	entries map[string]Entry
	order   []string
}

// Lookup returns the entry for a document identifier.
func (r *Registry) Lookup(id string) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Len reports the number of registered documents.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// HasCategory reports whether at least one registered document belongs to
// the named category.
func (r *Registry) HasCategory(name string) bool {
	for _, e := range r.entries {
		if e.Category == name {
			return true
		}
	}
	return false
}

// BuilderOptions configures registry construction.
type BuilderOptions struct {
	BaseURL    string
	OutputRoot string
	Categories map[string]string
}

// Build performs the first pass over the discovered files: extract metadata,
// derive the identifier, resolve category, and compute output URL and path.
// Per-file failures are logged and skipped; building is best-effort and a
// partial registry is acceptable. The returned registry is frozen.
func Build(files []docs.DocFile, opts BuilderOptions) *Registry {
	reg := &Registry{entries: make(map[string]Entry, len(files))}

	for _, file := range files {
		filename := filepath.Base(file.Path)
		id, ok := DocID(filename)
		if !ok {
			slog.Debug("No document identifier in filename, skipping", logfields.Path(file.RelativePath))
			continue
		}

		content, err := file.ReadContent()
		if err != nil {
			slog.Warn("Failed to register document", logfields.Path(file.RelativePath), logfields.Error(err))
			continue
		}

		meta := metadata.Extract(content)
		category := CategoryFor(id, opts.Categories)

		title := meta["title"]
		if title == "" {
			title = file.Name
		}

		if _, dup := reg.entries[id]; dup {
			slog.Warn("Duplicate document identifier, keeping later file", logfields.Doc(id), logfields.Path(file.RelativePath))
		} else {
			reg.order = append(reg.order, id)
		}

		reg.entries[id] = Entry{
			ID:         id,
			Title:      title,
			Category:   category,
			URL:        URLFor(opts.BaseURL, category, id),
			Path:       OutputPath(opts.OutputRoot, file.RelativePath, id, category),
			Excerpt:    metadata.Excerpt(content, metadata.DefaultExcerptLength),
			Metadata:   meta,
			References: metadata.RelatedDocuments(content),
		}
	}

	slog.Info("Document registry built", logfields.Count(reg.Len()))
	return reg
}
