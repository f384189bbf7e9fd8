// Package frontmatter renders document metadata into the YAML preamble
// block consumed by the site generator. Field order is fixed and preserved
// through serialization.
package frontmatter

import (
	"git.home.luguber.info/inful/docpages/internal/metadata"
)

// DefaultTitle is substituted when a document has no resolvable title.
const DefaultTitle = "Untitled Document"

// DefaultLayout is the layout assigned to every converted document.
const DefaultLayout = "document"

// optionalKeys are the free-form metadata keys that may pass through into
// front matter, in emission order. Everything else harvested from context
// tags stays internal.
var optionalKeys = []string{"context", "status", "version", "component", "priority"}

// Field is a single front matter key/value pair.
type Field struct {
	Key   string
	Value string
}

// Fields assembles the front matter fields for a document in emission order:
// layout and title always, then doc_number and category, then timestamps and
// the optional pass-through keys when present and non-empty.
func Fields(meta metadata.Metadata) []Field {
	title := meta["title"]
	if title == "" {
		title = DefaultTitle
	}

	fields := []Field{
		{Key: "layout", Value: DefaultLayout},
		{Key: "title", Value: title},
		{Key: "doc_number", Value: meta["doc_number"]},
		{Key: "category", Value: meta["category"]},
	}

	for _, key := range []string{"created_at", "modified_at"} {
		if value := meta[key]; value != "" {
			fields = append(fields, Field{Key: key, Value: value})
		}
	}

	for _, key := range optionalKeys {
		if value := meta[key]; value != "" {
			fields = append(fields, Field{Key: key, Value: value})
		}
	}

	return fields
}

// Generate renders the complete front matter block for meta.
func Generate(meta metadata.Metadata) string {
	return Block(Fields(meta))
}
