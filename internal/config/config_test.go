package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_TenCategoryMappings(t *testing.T) {
	cfg := Default()

	names := cfg.CategoryNames()
	require.Len(t, names, 10)
	require.Equal(t, "vision", names["10"])
	require.Equal(t, "references", names["90"])
	require.True(t, cfg.Search.Enabled)
	require.True(t, cfg.References.ReferencedBy)
}

func TestLoad_MissingDefaultPathFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	require.Equal(t, Default().Site.Title, cfg.Site.Title)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docpages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"site:\n  title: Himalaya Docs\n  base_url: /Project\nsearch:\n  enabled: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Himalaya Docs", cfg.Site.Title)
	require.Equal(t, "/Project", cfg.Site.BaseURL)
	require.False(t, cfg.Search.Enabled)
	// Unmentioned sections keep their defaults.
	require.Equal(t, "vision", cfg.CategoryNames()["10"])
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCPAGES_TEST_BASEURL", "/FromEnv")
	path := filepath.Join(t.TempDir(), "docpages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"site:\n  title: Docs\n  base_url: ${DOCPAGES_TEST_BASEURL}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/FromEnv", cfg.Site.BaseURL)
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate_RejectsBadCategoryPrefix(t *testing.T) {
	cfg := Default()
	cfg.Categories["abc"] = Category{Name: "misc"}
	require.Error(t, cfg.Validate())
}

func TestValidate_CodeLinksRequireRepoURL(t *testing.T) {
	cfg := Default()
	cfg.References.CodeLinks = true
	require.Error(t, cfg.Validate())

	cfg.References.SourceRepoURL = "https://example.com/repo/blob/main"
	require.NoError(t, cfg.Validate())
}

func TestInit_WritesExampleAndRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docpages.yaml")

	require.NoError(t, Init(path))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Project Documentation", cfg.Site.Title)

	require.Error(t, Init(path))
}
