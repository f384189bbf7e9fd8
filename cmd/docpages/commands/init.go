package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docpages/internal/config"
)

// InitCmd writes an example config file.
type InitCmd struct {
	Path string `arg:"" optional:"" help:"Where to write the config." default:"docpages.yaml"`
}

func (c *InitCmd) Run(_ *Global, _ *CLI) error {
	if err := config.Init(c.Path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", c.Path)
	return nil
}
