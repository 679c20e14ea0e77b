// Command scriptmd converts TeX audio-drama scripts to Markdown.
// It also maintains a catalog of script sources and can serve a live
// Markdown preview of a script while it is being edited.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/mirelia/scriptmd/core/convert"
	"github.com/mirelia/scriptmd/internal/catalog"
	"github.com/mirelia/scriptmd/internal/logging"
	"github.com/mirelia/scriptmd/internal/web"
)

const version = "0.2.0"

// CLI defines the command-line interface for scriptmd.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text"`

	Convert ConvertCmd   `cmd:"" help:"Convert a TeX script to Markdown"`
	Count   CountCmd     `cmd:"" help:"Print the word count of a script"`
	Catalog CatalogGroup `cmd:"" help:"Script catalog operations (scan, list)"`
	Serve   ServeCmd     `cmd:"" help:"Serve a live Markdown preview of a script"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// ConvertCmd converts a single script to Markdown.
type ConvertCmd struct {
	Infile  string `short:"i" required:"" help:"The input file to operate on" type:"existingfile"`
	Outfile string `short:"o" required:"" help:"The file to output the results to" type:"path"`
}

func (c *ConvertCmd) Run() error {
	return convert.Run(convert.Options{Input: c.Infile, Output: c.Outfile})
}

// CountCmd prints the word count summary of a script.
type CountCmd struct {
	Path string `arg:"" help:"Script source to count" type:"existingfile"`
}

func (c *CountCmd) Run() error {
	s, err := convert.Load(c.Path)
	if err != nil {
		return err
	}

	fmt.Printf("%s — %s\n", s.Title, s.WordCount())
	return nil
}

// CatalogGroup contains catalog operations.
type CatalogGroup struct {
	Scan CatalogScanCmd `cmd:"" help:"Scan a directory of scripts into the catalog"`
	List CatalogListCmd `cmd:"" help:"List catalogued scripts"`
}

// CatalogScanCmd indexes every script source under a directory.
type CatalogScanCmd struct {
	Dir string `arg:"" help:"Directory to scan for .tex / .tex.xz sources" type:"existingdir"`
	DB  string `help:"Catalog database path" default:"scriptmd.db" type:"path"`
}

func (c *CatalogScanCmd) Run() error {
	cat, err := catalog.Open(c.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	count, err := cat.ScanDir(context.Background(), c.Dir)
	if err != nil {
		return err
	}

	fmt.Printf("catalogued %d script(s) into %s\n", count, c.DB)
	return nil
}

// CatalogListCmd lists catalogued scripts.
type CatalogListCmd struct {
	DB string `help:"Catalog database path" default:"scriptmd.db" type:"path"`
}

func (c *CatalogListCmd) Run() error {
	cat, err := catalog.Open(c.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	entries, err := cat.List(context.Background())
	if err != nil {
		return err
	}

	for _, entry := range entries {
		series := ""
		if entry.Series != "" {
			series = fmt.Sprintf(" [%s, part %d]", entry.Series, entry.Part)
		}
		fmt.Printf("%s — %s%s (%d spoken / %d unspoken words)\n\t%s\n",
			entry.Title, entry.Author, series,
			entry.SpokenWords, entry.UnspokenWords, entry.Path)
	}

	fmt.Printf("%d script(s) in %s\n", len(entries), c.DB)
	return nil
}

// ServeCmd serves a live preview of one script.
type ServeCmd struct {
	Path string `arg:"" help:"Script source to preview" type:"existingfile"`
	Port int    `help:"HTTP server port" default:"8080"`
}

func (c *ServeCmd) Run() error {
	server, err := web.NewServer(web.Config{Port: c.Port, Path: c.Path})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("scriptmd version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("scriptmd"),
		kong.Description("One-directional TeX audio-drama script to Markdown converter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	ctx.FatalIfErrorf(err)
	format, err := logging.ParseFormat(CLI.LogFormat)
	ctx.FatalIfErrorf(err)
	logging.InitLogger(level, format)

	err = ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
