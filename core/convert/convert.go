// Package convert drives the end-to-end tex-to-markdown pipeline: detect
// formats from file extensions, parse, render, write.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	coreerrors "github.com/mirelia/scriptmd/core/errors"
	"github.com/mirelia/scriptmd/core/markdown"
	"github.com/mirelia/scriptmd/core/script"
	"github.com/mirelia/scriptmd/core/tex"
	"github.com/mirelia/scriptmd/internal/fileutil"
	"github.com/mirelia/scriptmd/internal/logging"
)

// Format identifies a file format the pipeline knows about.
type Format string

const (
	FormatTex      Format = "tex"
	FormatMarkdown Format = "markdown"
)

var validFormats = map[Format]bool{
	FormatTex:      true,
	FormatMarkdown: true,
}

// IsValid checks if the format is one the pipeline knows.
func (f Format) IsValid() bool {
	return validFormats[f]
}

func (f Format) String() string {
	return string(f)
}

// DetectFormat determines the file format from a path's extension. A
// trailing .xz is ignored, so script.tex.xz still detects as tex.
func DetectFormat(path string) (Format, error) {
	path = strings.TrimSuffix(path, ".xz")

	switch filepath.Ext(path) {
	case ".tex":
		return FormatTex, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid file extension on %s: should be .tex / .md", path)
	}
}

// Options configures one conversion run.
type Options struct {
	// Input is the path of the source document.
	Input string

	// Output is the path the rendered document is written to.
	Output string
}

// Load reads and parses the script at path. The path must detect as tex.
func Load(path string) (*script.Script, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format != FormatTex {
		return nil, coreerrors.NewUnsupportedConversion(format.String(), FormatMarkdown.String())
	}

	source, err := fileutil.ReadTextFile(path)
	if err != nil {
		return nil, err
	}

	return tex.ParseScript(source)
}

// Run performs one conversion. Only tex input and markdown output are
// supported; any other pairing is rejected before the input is read.
func Run(opts Options) error {
	inFormat, err := DetectFormat(opts.Input)
	if err != nil {
		return err
	}
	outFormat, err := DetectFormat(opts.Output)
	if err != nil {
		return err
	}

	logging.Debug("conversion requested", "from", inFormat, "to", outFormat)

	if inFormat != FormatTex || outFormat != FormatMarkdown {
		return coreerrors.NewUnsupportedConversion(inFormat.String(), outFormat.String())
	}

	source, err := fileutil.ReadTextFile(opts.Input)
	if err != nil {
		return err
	}

	s, err := tex.ParseScript(source)
	if err != nil {
		return coreerrors.Wrapf(err, "parse %s", opts.Input)
	}

	if err := os.WriteFile(opts.Output, []byte(markdown.Script(s)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}

	logging.Info("converted script",
		"input", opts.Input,
		"output", opts.Output,
		"title", s.Title,
		"words", s.WordCount().Total())

	return nil
}
