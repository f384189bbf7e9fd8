// Package commands implements the docpages CLI commands.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docpages/internal/config"
)

// Global carries cross-command state injected by main. Kept as an explicit
// bind target so commands can grow shared dependencies without signature
// churn.
type Global struct{}

// CLI is the root command tree.
type CLI struct {
	Verbose bool             `help:"Enable debug logging." short:"v"`
	Config  string           `help:"Path to the config file." default:"docpages.yaml"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Convert  ConvertCmd  `cmd:"" help:"Convert a source document tree into a Jekyll site."`
	Validate ValidateCmd `cmd:"" help:"Check source documents without writing output."`
	Watch    WatchCmd    `cmd:"" help:"Convert, then re-convert whenever sources change."`
	Init     InitCmd     `cmd:"" help:"Write an example config file."`
}

// AfterApply installs the default logger before any command runs. The
// DOCPAGES_LOG_LEVEL environment variable overrides --verbose.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	if env := os.Getenv("DOCPAGES_LOG_LEVEL"); env != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(env)); err == nil {
			level = parsed
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.Config)
}
