package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/karoljaro/yaml-xml-json-converter/convert"
	"github.com/karoljaro/yaml-xml-json-converter/format"
)

func fmtconvConvert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: convert takes an input and an output path", cli.ErrUsage)
	}
	if cfg.OutFormat == nil {
		return fmt.Errorf("%w: --format is required", cli.ErrUsage)
	}
	in, out := args[0], args[1]
	cfg.verbosef("converting %s to %s as %s", in, out, *cfg.OutFormat)
	if out == "-" {
		if err := convertToWriter(cc, in, *cfg.OutFormat); err != nil {
			return fmt.Errorf("convert %s: %w", in, err)
		}
		return nil
	}
	if err := convert.ConvertFile(in, out, *cfg.OutFormat); err != nil {
		return fmt.Errorf("convert %s: %w", in, err)
	}
	cfg.verbosef("wrote %s", out)
	return nil
}

func convertToWriter(cc *cli.Context, in string, to format.Format) error {
	from, err := format.FromPath(in)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	out, err := convert.Convert(src, from, to)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}
