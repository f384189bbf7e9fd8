package jekyll

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docpages/internal/docs"
	"git.home.luguber.info/inful/docpages/internal/frontmatter"
	"git.home.luguber.info/inful/docpages/internal/logfields"
	"git.home.luguber.info/inful/docpages/internal/metadata"
	"git.home.luguber.info/inful/docpages/internal/registry"
	"git.home.luguber.info/inful/docpages/internal/xref"
)

// ValidationIssue lists the problems found in one source document.
type ValidationIssue struct {
	File     string
	Problems []string
}

// ValidationReport is the outcome of a validate run.
type ValidationReport struct {
	FilesChecked int
	Issues       []ValidationIssue
}

// Clean reports whether no document had problems.
func (r *ValidationReport) Clean() bool { return len(r.Issues) == 0 }

// Validate runs the strict checks the conversion itself deliberately
// skips: required metadata fields, parseable timestamps and resolvable
// references. Nothing is written.
func (g *Generator) Validate(ctx context.Context) (*ValidationReport, error) {
	files, err := docs.NewDiscovery(g.inputDir).DiscoverDocs()
	if err != nil {
		return nil, err
	}

	reg := registry.Build(files, registry.BuilderOptions{
		BaseURL:    g.cfg.Site.BaseURL,
		OutputRoot: g.outputDir,
		Categories: g.cfg.CategoryNames(),
	})

	report := &ValidationReport{}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.FilesChecked++

		content, err := file.ReadContent()
		if err != nil {
			report.Issues = append(report.Issues, ValidationIssue{
				File:     file.RelativePath,
				Problems: []string{err.Error()},
			})
			continue
		}

		// Already-converted documents (front matter present) are site
		// output, not source; checking them would only report noise.
		if _, _, converted := frontmatter.Split(content); converted {
			slog.Debug("Skipping already-converted document", logfields.Path(file.RelativePath))
			continue
		}

		var problems []string
		if ok, metaProblems := metadata.Validate(metadata.Extract(content)); !ok {
			problems = append(problems, metaProblems...)
		}

		invalid := xref.ValidateReferences(xref.ExtractReferences(content), reg)
		for _, id := range invalid.Documents {
			problems = append(problems, fmt.Sprintf("unresolvable document reference [%s]", id))
		}
		for _, ref := range invalid.Sections {
			problems = append(problems, fmt.Sprintf("unresolvable section reference [%s]", ref))
		}
		for _, id := range invalid.Decisions {
			problems = append(problems, fmt.Sprintf("decision reference [%s] has no matching decision document", id))
		}

		if len(problems) > 0 {
			report.Issues = append(report.Issues, ValidationIssue{
				File:     file.RelativePath,
				Problems: problems,
			})
		}
	}

	slog.Info("Validation finished",
		logfields.Count(report.FilesChecked),
		slog.Int("issues", len(report.Issues)))
	return report, nil
}
