package transform

import "git.home.luguber.info/inful/docpages/internal/frontmatter"

// FrontMatterSerializer renders the page metadata into its front matter
// block. Runs last; it only reads Meta and never touches Content.
type FrontMatterSerializer struct{}

func (FrontMatterSerializer) Name() string { return "front-matter" }

func (FrontMatterSerializer) Transform(page *Page) error {
	page.FrontMatter = frontmatter.Generate(page.Meta)
	return nil
}
