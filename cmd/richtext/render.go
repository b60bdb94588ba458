package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/riverfjs/richtext-go"
)

// RenderCmd renders to a PNG file or the terminal.
type RenderCmd struct {
	SourceFlags `embed:""`

	Format  string `enum:"png,term" default:"term" help:"Output format (png, term)"`
	Output  string `short:"o" help:"Output file for png (default stdout)" type:"path"`
	Width   int    `default:"800" help:"Canvas width in pixels"`
	Padding int    `default:"16" help:"Canvas padding in pixels"`
}

func (c *RenderCmd) Run(ctx *kong.Context) error {
	v, err := c.Load()
	if err != nil {
		return err
	}

	if c.Format == "term" {
		fmt.Fprintln(ctx.Stdout, v.RenderTerminal(richtext.TerminalOptions{Output: ctx.Stdout}))
		return nil
	}

	opts := richtext.DefaultRasterOptions()
	opts.Width = c.Width
	opts.Padding = c.Padding

	out := ctx.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := v.RenderPNG(out, opts); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}
