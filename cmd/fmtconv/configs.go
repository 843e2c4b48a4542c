package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/karoljaro/yaml-xml-json-converter/encode"
	"github.com/karoljaro/yaml-xml-json-converter/format"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='colorize output'"`
	Verbose bool `cli:"name=v aliases=verbose desc='report each stage on stderr'"`

	Main *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	OutFormat *format.Format

	Convert *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	Validate *cli.Command
}

type InfoConfig struct {
	*MainConfig

	Info *cli.Command
}

type ViewConfig struct {
	*MainConfig
	InFormat  *format.Format
	OutFormat *format.Format

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

func fmtOptFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func fmtOpt(fp **format.Format, name, desc string, aliases ...string) *cli.Opt {
	return &cli.Opt{
		Name:        name,
		Aliases:     aliases,
		Description: desc,
		Type:        cli.NamedFuncOpt(fmtOptFunc(fp), "(json|yaml|xml)"),
	}
}

// encOpts assembles encode options shared by the output-producing
// commands. Color is applied when asked for, or by default when w is a
// terminal; XML output is never colored.
func (cfg *MainConfig) encOpts(f format.Format, w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
	}
	if f.IsXML() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	of, ok := w.(*os.File)
	if ok && isatty.IsTerminal(of.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) verbosef(msg string, args ...any) {
	if !cfg.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}
