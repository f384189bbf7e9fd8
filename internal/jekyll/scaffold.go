package jekyll

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	jerrors "git.home.luguber.info/inful/docpages/internal/jekyll/errors"
)

// scaffoldDirs is the directory skeleton every generated site gets.
var scaffoldDirs = []string{
	"docs",
	"_data",
	"_plugins",
	"assets/js",
	"assets/images",
	"search",
}

type siteConfig struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	BaseURL     string          `yaml:"baseurl"`
	Markdown    string          `yaml:"markdown"`
	Kramdown    kramdownConfig  `yaml:"kramdown"`
	Highlighter string          `yaml:"highlighter"`
	Permalink   string          `yaml:"permalink"`
	Defaults    []defaultsEntry `yaml:"defaults"`
	Exclude     []string        `yaml:"exclude"`
}

type kramdownConfig struct {
	Input             string `yaml:"input"`
	SyntaxHighlighter string `yaml:"syntax_highlighter"`
}

type defaultsEntry struct {
	Scope  map[string]string `yaml:"scope"`
	Values map[string]string `yaml:"values"`
}

// scaffold creates the site directory skeleton and writes _config.yml.
func (g *Generator) scaffold() error {
	for _, dir := range scaffoldDirs {
		if err := os.MkdirAll(filepath.Join(g.outputDir, dir), 0o750); err != nil {
			return fmt.Errorf("%w: %s: %w", jerrors.ErrScaffoldFailed, dir, err)
		}
	}

	cfg := siteConfig{
		Title:       g.cfg.Site.Title,
		Description: g.cfg.Site.Description,
		BaseURL:     g.cfg.Site.BaseURL,
		Markdown:    "kramdown",
		Kramdown: kramdownConfig{
			Input:             "GFM",
			SyntaxHighlighter: "rouge",
		},
		Highlighter: "rouge",
		Permalink:   "pretty",
		Defaults: []defaultsEntry{
			{
				Scope:  map[string]string{"path": "docs"},
				Values: map[string]string{"layout": "document"},
			},
		},
		Exclude: []string{"Gemfile", "Gemfile.lock", "vendor"},
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", jerrors.ErrConfigWriteFailed, err)
	}
	path := filepath.Join(g.outputDir, "_config.yml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", jerrors.ErrConfigWriteFailed, path, err)
	}
	return nil
}
