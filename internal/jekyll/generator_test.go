package jekyll

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docpages/internal/config"
)

func writeSourceTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func readOutput(t *testing.T, outputDir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outputDir, rel))
	require.NoError(t, err)
	return string(data)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Site.Title = "Himalaya Docs"
	cfg.Site.BaseURL = "/Project"
	return cfg
}

func TestGenerator_Run_EndToEnd(t *testing.T) {
	input := writeSourceTree(t, map[string]string{
		"10-20-Vision.md": "# Project Vision\n" +
			"**Created: March 15, 2025 3:15 PM**\n" +
			"[Status: Draft]\n" +
			"\n" +
			"Our plan references itself: [10-20].\n",
		"20-10-Standards.md": "# Coding Standards\n\nBuilds on [10-20] and [10-20 §2.1].\n",
		"README.md":          "# Not a document\n",
	})
	output := t.TempDir()

	report, err := New(testConfig(), input, output).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.Processed)
	require.Equal(t, 1, report.Skipped)
	require.Zero(t, report.Failed)
	require.NotEmpty(t, report.RunID)

	// Converted documents land at docs/{category}/{id}.md.
	vision := readOutput(t, output, "docs/vision/10-20.md")
	standards := readOutput(t, output, "docs/standards/20-10.md")

	// Front matter with insertion-ordered fields.
	require.Contains(t, vision, "layout: document\n")
	require.Contains(t, vision, "title: Project Vision\n")
	require.Contains(t, vision, "doc_number: 10-20\n")
	require.Contains(t, vision, "category: vision\n")
	require.Contains(t, vision, "status: Draft\n")

	// Header block stripped from the body.
	require.NotContains(t, vision, "**Created:")

	// Self-reference resolved; registry was complete before pass 2.
	require.Contains(t, vision, "[10-20](/Project/docs/vision/10-20/)")

	// Cross-document and section references resolved.
	require.Contains(t, standards, "[10-20](/Project/docs/vision/10-20/)")
	require.Contains(t, standards, "[10-20 §2.1](/Project/docs/vision/10-20/#21)")

	// Referenced By section on the target document.
	require.Contains(t, vision, "## Referenced By")
	require.Contains(t, vision, "[20-10](/Project/docs/standards/20-10/)")
}

func TestGenerator_Run_ReadmeProducesNoOutput(t *testing.T) {
	input := writeSourceTree(t, map[string]string{
		"10-20-Vision.md": "# Vision\n",
		"README.md":       "# Readme\n",
	})
	output := t.TempDir()

	_, err := New(testConfig(), input, output).Run(context.Background())
	require.NoError(t, err)

	found := false
	require.NoError(t, filepath.WalkDir(output, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && entry.Name() == "README.md" {
			found = true
		}
		return nil
	}))
	require.False(t, found)
}

func TestGenerator_Run_ScaffoldAndIndexes(t *testing.T) {
	input := writeSourceTree(t, map[string]string{
		"10-20-Vision.md":    "# Project Vision\n",
		"10-30-Roadmap.md":   "# Roadmap\n",
		"20-10-Standards.md": "# Coding Standards\n",
	})
	output := t.TempDir()

	_, err := New(testConfig(), input, output).Run(context.Background())
	require.NoError(t, err)

	siteYAML := readOutput(t, output, "_config.yml")
	require.Contains(t, siteYAML, "title: Himalaya Docs")
	require.Contains(t, siteYAML, "input: GFM")
	require.Contains(t, siteYAML, "permalink: pretty")

	visionIndex := readOutput(t, output, "docs/vision/index.md")
	require.Contains(t, visionIndex, "layout: category")
	require.Contains(t, visionIndex, "category_id: vision")
	require.Contains(t, visionIndex, "- [Project Vision](/Project/docs/vision/10-20/)")
	require.Contains(t, visionIndex, "- [Roadmap](/Project/docs/vision/10-30/)")

	// Categories without documents get no index page.
	_, err = os.Stat(filepath.Join(output, "docs", "archives", "index.md"))
	require.ErrorIs(t, err, os.ErrNotExist)

	mainIndex := readOutput(t, output, "index.md")
	require.Contains(t, mainIndex, "# Himalaya Docs")
	require.Contains(t, mainIndex, "(/Project/docs/vision/)")
	require.Contains(t, mainIndex, "(2 documents)")

	docsIndex := readOutput(t, output, "docs/index.md")
	require.Contains(t, docsIndex, "## Vision")
	require.Contains(t, docsIndex, "- [Coding Standards](/Project/docs/standards/20-10/)")

	categoriesData := readOutput(t, output, "_data/categories.yml")
	require.Contains(t, categoriesData, "id: \"10\"")
	require.Contains(t, categoriesData, "name: vision")
	require.Contains(t, categoriesData, "count: 2")
}

func TestGenerator_Run_SearchScaffold(t *testing.T) {
	input := writeSourceTree(t, map[string]string{"10-20-Vision.md": "# Vision\n"})
	output := t.TempDir()

	_, err := New(testConfig(), input, output).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, "[]\n", readOutput(t, output, "assets/js/search-index.json"))
	require.Contains(t, readOutput(t, output, "search/index.md"), "layout: search")
	require.Contains(t, readOutput(t, output, "_plugins/search_index_generator.rb"), "search-index.json")
}

func TestGenerator_Run_SearchDisabled(t *testing.T) {
	input := writeSourceTree(t, map[string]string{"10-20-Vision.md": "# Vision\n"})
	output := t.TempDir()
	cfg := testConfig()
	cfg.Search.Enabled = false

	_, err := New(cfg, input, output).Run(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(output, "search", "index.md"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerator_Run_BannerFallback(t *testing.T) {
	input := writeSourceTree(t, map[string]string{
		"10-20-Vision.md":          "# Vision\n",
		"assets/images/banner.png": "not-a-real-png",
	})
	output := t.TempDir()

	_, err := New(testConfig(), input, output).Run(context.Background())
	require.NoError(t, err)

	// First candidate is missing; the second one gets picked up.
	require.Equal(t, "not-a-real-png", readOutput(t, output, "assets/images/banner.png"))
}

func TestGenerator_Run_PerFileFailureDoesNotAbort(t *testing.T) {
	input := writeSourceTree(t, map[string]string{
		"10-20-Vision.md": "# Vision\n",
	})
	// A dangling symlink is discovered like a file but fails to read.
	require.NoError(t, os.Symlink(
		filepath.Join(input, "missing-target"),
		filepath.Join(input, "20-10-Standards.md")))
	output := t.TempDir()

	report, err := New(testConfig(), input, output).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Processed)
	require.NotZero(t, report.Skipped+report.Failed)
}

func TestGenerator_Validate_ReportsProblems(t *testing.T) {
	input := writeSourceTree(t, map[string]string{
		"10-20-Vision.md":  "# Vision\n\nSee [55-55] and [55-55 §1.2].\n",
		"20-10-NoTitle.md": "**Created: not a date**\n\nBody.\n",
	})

	report, err := New(testConfig(), input, t.TempDir()).Validate(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.FilesChecked)
	require.False(t, report.Clean())

	byFile := map[string][]string{}
	for _, issue := range report.Issues {
		byFile[issue.File] = issue.Problems
	}
	require.Contains(t, byFile, "10-20-Vision.md")
	require.Contains(t, byFile, "20-10-NoTitle.md")
}

func TestGenerator_Validate_SkipsConvertedDocuments(t *testing.T) {
	// No source heading, so this would fail the title check if the front
	// matter block did not mark it as already converted.
	input := writeSourceTree(t, map[string]string{
		"10-20-Converted.md": "---\nlayout: document\ntitle: Done\n---\n\nBody.\n",
	})

	report, err := New(testConfig(), input, t.TempDir()).Validate(context.Background())
	require.NoError(t, err)
	require.True(t, report.Clean())
}

func TestGenerator_Validate_CleanTree(t *testing.T) {
	input := writeSourceTree(t, map[string]string{
		"10-20-Vision.md":    "# Vision\n\n[Version: 1.0]\n\nSee [20-10].\n",
		"20-10-Standards.md": "# Standards\n",
	})

	report, err := New(testConfig(), input, t.TempDir()).Validate(context.Background())
	require.NoError(t, err)
	require.True(t, report.Clean())
}
