// Package config loads and validates the conversion run configuration.
package config

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultPath is where Load looks when no explicit config file is given.
const DefaultPath = "docpages.yaml"

var categoryPrefixPattern = regexp.MustCompile(`^\d{2}$`)

// Config drives a conversion run. Load unmarshals the config file over
// Default, so omitted fields keep their default values.
type Config struct {
	Site       Site                `yaml:"site"`
	Categories map[string]Category `yaml:"categories"`
	References References          `yaml:"references"`
	Search     Search              `yaml:"search"`
	Assets     Assets              `yaml:"assets"`
}

// Site describes the generated site identity.
type Site struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	BaseURL     string `yaml:"base_url"`
}

// Category maps a two-digit document number prefix to a category slug and
// the description shown on its index page.
type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// References controls the reference post-processing stages.
type References struct {
	ReferencedBy  bool   `yaml:"referenced_by"`
	CodeLinks     bool   `yaml:"code_links"`
	SourceRepoURL string `yaml:"source_repo_url"`
}

// Search controls emission of the search page and index scaffold.
type Search struct {
	Enabled bool `yaml:"enabled"`
}

// Assets lists candidate banner image paths, tried in order relative to
// the input directory. Missing banners are not an error.
type Assets struct {
	Banner []string `yaml:"banner"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Site: Site{
			Title:       "Project Documentation",
			Description: "Generated project documentation",
		},
		Categories: map[string]Category{
			"00": {Name: "navigation", Description: "Navigation and overview documents"},
			"10": {Name: "vision", Description: "Vision and planning documents"},
			"20": {Name: "standards", Description: "Standards and conventions"},
			"30": {Name: "templates", Description: "Document templates"},
			"40": {Name: "knowledge", Description: "Knowledge base articles"},
			"50": {Name: "implementation", Description: "Implementation notes"},
			"60": {Name: "testing", Description: "Testing documents"},
			"70": {Name: "documentation", Description: "Documentation guides"},
			"80": {Name: "archives", Description: "Archived documents"},
			"90": {Name: "references", Description: "Reference material"},
		},
		References: References{
			ReferencedBy: true,
		},
		Search: Search{
			Enabled: true,
		},
		Assets: Assets{
			Banner: []string{
				"assets/banner.png",
				"assets/images/banner.png",
				"images/banner.png",
			},
		},
	}
}

// CategoryNames flattens the category table into the prefix→slug mapping
// consumed by the registry builder.
func (c *Config) CategoryNames() map[string]string {
	names := make(map[string]string, len(c.Categories))
	for prefix, category := range c.Categories {
		names[prefix] = category.Name
	}
	return names
}

// Validate checks structural constraints. It is called by Load; callers
// constructing a Config by hand should call it themselves.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Site,
		validation.Field(&c.Site.Title, validation.Required),
	); err != nil {
		return fmt.Errorf("site: %w", err)
	}

	for prefix, category := range c.Categories {
		if !categoryPrefixPattern.MatchString(prefix) {
			return fmt.Errorf("category prefix %q: must be two digits", prefix)
		}
		if err := validation.ValidateStruct(&category,
			validation.Field(&category.Name, validation.Required),
		); err != nil {
			return fmt.Errorf("category %s: %w", prefix, err)
		}
	}

	if c.References.CodeLinks {
		if err := validation.Validate(c.References.SourceRepoURL, validation.Required); err != nil {
			return fmt.Errorf("references.source_repo_url: %w", err)
		}
	}

	return nil
}
