package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docpages/internal/jekyll"
)

// ConvertCmd runs a single conversion of input into output.
type ConvertCmd struct {
	Input  string `arg:"" help:"Source document directory." type:"existingdir"`
	Output string `arg:"" help:"Output site directory." type:"path"`
}

func (c *ConvertCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := jekyll.New(cfg, c.Input, c.Output).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Converted %d documents (%d skipped, %d failed) in %s\n",
		report.Processed, report.Skipped, report.Failed, report.Duration.Round(time.Millisecond))
	if report.Failed > 0 {
		return fmt.Errorf("%d documents failed to convert", report.Failed)
	}
	return nil
}
