package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docpages/cmd/docpages/commands"
	"git.home.luguber.info/inful/docpages/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("docpages"),
		kong.Description("Convert structured Markdown documents into a Jekyll-compatible site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version + " (" + version.Commit + ")"},
	)
	ctx.FatalIfErrorf(ctx.Run(&commands.Global{}, cli))
}
