package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docpages/internal/jekyll"
)

// ValidateCmd checks source documents without writing any output.
type ValidateCmd struct {
	Input string `arg:"" help:"Source document directory." type:"existingdir"`
}

func (c *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := jekyll.New(cfg, c.Input, "").Validate(ctx)
	if err != nil {
		return err
	}

	for _, issue := range report.Issues {
		fmt.Printf("%s:\n", issue.File)
		for _, problem := range issue.Problems {
			fmt.Printf("  - %s\n", problem)
		}
	}

	if !report.Clean() {
		return fmt.Errorf("validation failed: %d of %d files have problems",
			len(report.Issues), report.FilesChecked)
	}
	fmt.Printf("All %d files valid.\n", report.FilesChecked)
	return nil
}
