package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/karoljaro/yaml-xml-json-converter/codec"
)

func fmtconvValidate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: validate takes one or more file paths", cli.ErrUsage)
	}
	nBad := 0
	for _, file := range args {
		ok, err := codec.ValidFile(file)
		if err != nil {
			return err
		}
		verdict := "valid"
		if !ok {
			verdict = "invalid"
			nBad++
		}
		if cfg.Color {
			if ok {
				verdict = color.GreenString(verdict)
			} else {
				verdict = color.RedString(verdict)
			}
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", file, verdict)
	}
	if nBad > 0 {
		return fmt.Errorf("%d of %d files invalid", nBad, len(args))
	}
	return nil
}
