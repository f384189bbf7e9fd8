package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the config file at path, expands ${VAR} references from the
// environment (after loading .env files) and unmarshals it over Default.
// A missing file at the default path is not an error; every other failure
// is.
func Load(path string) (*Config, error) {
	loadDotenv()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

// loadDotenv pulls in .env.local then .env. Earlier files win, matching
// godotenv's no-overwrite behavior. Absent files are ignored.
func loadDotenv() {
	for _, name := range []string{".env.local", ".env"} {
		_ = godotenv.Load(name)
	}
}

const exampleConfig = `# docpages configuration
site:
  title: Project Documentation
  description: Generated project documentation
  base_url: ""

# Document number prefixes to category slugs. Unlisted prefixes fall back
# to mirroring the source directory layout.
categories:
  "10":
    name: vision
    description: Vision and planning documents
  "20":
    name: standards
    description: Standards and conventions

references:
  referenced_by: true
  code_links: false
  source_repo_url: ""

search:
  enabled: true

assets:
  banner:
    - assets/banner.png
    - assets/images/banner.png
`

// Init writes an example config file at path. It refuses to overwrite an
// existing file.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
