// Command richtext renders annotated text from the command line.
//
// Text comes from a file or stdin, either plain (annotated with --span,
// --number and --bullet flags) or as markdown. The result can be written as a
// PNG, printed to the terminal, dumped as JSON, or previewed interactively so
// fades play out.
package main

import (
	"github.com/alecthomas/kong"
)

const version = "0.1.0"

// CLI defines the command-line interface for richtext.
var CLI struct {
	Config  kong.ConfigFlag `help:"Load defaults from a JSON config file" type:"path"`
	Render  RenderCmd       `cmd:"" help:"Render annotated text to PNG or the terminal"`
	Inspect InspectCmd      `cmd:"" help:"Print the text and its spans as JSON"`
	Preview PreviewCmd      `cmd:"" help:"Interactive terminal preview with live fades"`
	Version VersionCmd      `cmd:"" help:"Print version information"`
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	_, err := ctx.Stdout.Write([]byte("richtext " + version + "\n"))
	return err
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("richtext"),
		kong.Description("Overlapping text annotations with bullet and number decorations"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, ".richtext.json", "~/.config/richtext/config.json"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
