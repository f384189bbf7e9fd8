// Package jekyll orchestrates the two-pass conversion of a source document
// tree into a Jekyll-compatible site: scaffold, registry build (pass 1),
// per-document transformation (pass 2), index pages, search scaffold and
// asset copy.
package jekyll

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docpages/internal/config"
	"git.home.luguber.info/inful/docpages/internal/docs"
	jerrors "git.home.luguber.info/inful/docpages/internal/jekyll/errors"
	"git.home.luguber.info/inful/docpages/internal/logfields"
	"git.home.luguber.info/inful/docpages/internal/registry"
	"git.home.luguber.info/inful/docpages/internal/transform"
	"git.home.luguber.info/inful/docpages/internal/xref"
)

// Generator converts one input tree into one output site.
type Generator struct {
	cfg       *config.Config
	inputDir  string
	outputDir string
}

func New(cfg *config.Config, inputDir, outputDir string) *Generator {
	return &Generator{cfg: cfg, inputDir: inputDir, outputDir: outputDir}
}

// Run executes a full conversion. Per-document failures are logged and
// counted but never abort the run; only output-root, scaffold and discovery
// failures are fatal.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := NewReport()
	slog.Info("Conversion run starting",
		logfields.RunID(report.RunID),
		logfields.Path(g.inputDir))

	if err := os.MkdirAll(g.outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", jerrors.ErrOutputDirCreateFailed, g.outputDir, err)
	}
	if err := g.scaffold(); err != nil {
		return nil, err
	}

	files, err := docs.NewDiscovery(g.inputDir).DiscoverDocs()
	if err != nil {
		return nil, err
	}

	// Pass 1. The registry is frozen once Build returns; everything after
	// this point only reads it.
	reg := registry.Build(files, registry.BuilderOptions{
		BaseURL:    g.cfg.Site.BaseURL,
		OutputRoot: g.outputDir,
		Categories: g.cfg.CategoryNames(),
	})

	refMap := xref.BuildReferenceMap(reg)
	pipeline := g.buildPipeline(reg, refMap)

	// Pass 2.
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		id, ok := registry.DocID(filepath.Base(file.Path))
		if !ok {
			slog.Debug("Skipping file without document identifier", logfields.Path(file.RelativePath))
			report.Skipped++
			continue
		}
		entry, ok := reg.Lookup(id)
		if !ok {
			report.Skipped++
			continue
		}

		if err := g.processDocument(file, entry, pipeline); err != nil {
			slog.Warn("Failed to convert document",
				logfields.Doc(id),
				logfields.Path(file.RelativePath),
				logfields.Error(err))
			report.Failed++
			continue
		}
		report.Processed++
	}

	if err := g.writeCategoryIndexes(reg); err != nil {
		return report, err
	}
	if err := g.writeMainIndexes(reg); err != nil {
		return report, err
	}
	if g.cfg.Search.Enabled {
		if err := g.writeSearchScaffold(); err != nil {
			return report, err
		}
	}
	g.copyBanner()

	report.Duration = time.Since(start)
	slog.Info("Conversion run finished",
		logfields.RunID(report.RunID),
		logfields.Count(report.Processed),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return report, nil
}

func (g *Generator) buildPipeline(reg *registry.Registry, refMap map[string][]string) *transform.Pipeline {
	stages := []transform.Transformer{
		transform.HeaderStripper{},
		transform.LiquidEscaper{},
		transform.TaskListNormalizer{},
		transform.CrossReferenceResolver{Registry: reg},
	}
	if g.cfg.References.CodeLinks {
		stages = append(stages, transform.CodeLinkRewriter{SourceRepoURL: g.cfg.References.SourceRepoURL})
	}
	if g.cfg.References.ReferencedBy {
		stages = append(stages, transform.ReferencedByAppender{Registry: reg, RefMap: refMap})
	}
	stages = append(stages, transform.FrontMatterSerializer{})
	return transform.NewPipeline(stages...)
}

func (g *Generator) processDocument(file docs.DocFile, entry registry.Entry, pipeline *transform.Pipeline) error {
	content, err := file.ReadContent()
	if err != nil {
		return err
	}

	// Entry metadata stays frozen; the page works on a copy with the
	// derived identity fields filled in.
	meta := entry.Metadata.Clone()
	meta["doc_number"] = entry.ID
	meta["category"] = entry.Category

	page := &transform.Page{
		File:    file,
		ID:      entry.ID,
		Meta:    meta,
		Content: content,
	}
	if err := pipeline.Run(page); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(entry.Path), 0o750); err != nil {
		return fmt.Errorf("%w: %s: %w", jerrors.ErrDocumentWriteFailed, entry.Path, err)
	}
	if err := os.WriteFile(entry.Path, []byte(page.Output()), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", jerrors.ErrDocumentWriteFailed, entry.Path, err)
	}

	slog.Debug("Converted document", logfields.Doc(entry.ID), logfields.Category(entry.Category))
	return nil
}
