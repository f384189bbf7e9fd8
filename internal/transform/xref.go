package transform

import (
	"git.home.luguber.info/inful/docpages/internal/registry"
	"git.home.luguber.info/inful/docpages/internal/xref"
)

// CrossReferenceResolver rewrites document, section and decision reference
// tags into links using the frozen registry. It runs after escaping so the
// Liquid fragments it may emit survive untouched.
type CrossReferenceResolver struct {
	Registry *registry.Registry
}

func (CrossReferenceResolver) Name() string { return "xref-resolve" }

func (t CrossReferenceResolver) Transform(page *Page) error {
	page.Content = xref.Resolve(page.Content, t.Registry)
	return nil
}

// CodeLinkRewriter turns inline code spans naming source or document files
// into links. Only added to the pipeline when code link rewriting is
// enabled in configuration.
type CodeLinkRewriter struct {
	SourceRepoURL string
}

func (CodeLinkRewriter) Name() string { return "code-links" }

func (t CodeLinkRewriter) Transform(page *Page) error {
	page.Content = xref.ResolveCodeLinks(page.Content, t.SourceRepoURL)
	return nil
}

// ReferencedByAppender appends the generated "Referenced By" section for
// registered documents. Pages without an identifier are left unchanged.
type ReferencedByAppender struct {
	Registry *registry.Registry
	RefMap   map[string][]string
}

func (ReferencedByAppender) Name() string { return "referenced-by" }

func (t ReferencedByAppender) Transform(page *Page) error {
	if page.ID == "" {
		return nil
	}
	page.Content = xref.AppendReferencedBy(page.Content, page.ID, t.RefMap, t.Registry)
	return nil
}
