// Package transform runs the per-document content pipeline of pass 2:
// header stripping, template-conflict escaping, task-list normalization,
// cross-reference resolution and front matter serialization.
package transform

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docpages/internal/docs"
	"git.home.luguber.info/inful/docpages/internal/logfields"
	"git.home.luguber.info/inful/docpages/internal/metadata"
)

// Page carries one document through the pipeline. Stages rewrite Content
// and finally fill FrontMatter; File, ID and Meta are read-only inputs
// established during pass 1.
type Page struct {
	File        docs.DocFile
	ID          string
	Meta        metadata.Metadata
	Content     string
	FrontMatter string
}

// Output is the final document text: front matter block, blank line, body.
func (p *Page) Output() string {
	return p.FrontMatter + "\n" + p.Content
}

// Transformer is a single content pipeline stage.
type Transformer interface {
	Name() string
	Transform(page *Page) error
}

// Pipeline applies a fixed sequence of transformers to a page.
type Pipeline struct {
	stages []Transformer
}

func NewPipeline(stages ...Transformer) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run applies every stage in order, stopping at the first failure.
func (p *Pipeline) Run(page *Page) error {
	for _, stage := range p.stages {
		if err := stage.Transform(page); err != nil {
			return fmt.Errorf("%s: %w", stage.Name(), err)
		}
		slog.Debug("transform stage applied",
			logfields.Stage(stage.Name()),
			logfields.Path(page.File.RelativePath))
	}
	return nil
}
