package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/karoljaro/yaml-xml-json-converter/convert"
	"github.com/karoljaro/yaml-xml-json-converter/format"
)

// fmtconvDiff compares two documents by their canonical YAML renderings,
// so files in different formats diff by content, not syntax.
func fmtconvDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two file paths", cli.ErrUsage)
	}
	a, err := canonical(args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	b, err := canonical(args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	if a == b {
		return nil
	}

	diffCfg := diffpatch.New()
	aRunes, bRunes, lines := diffCfg.DiffLinesToRunes(a, b)
	diffs := diffCfg.DiffMainRunes(aRunes, bRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			writeDiffLines(cfg, cc, "-", diff.Text, color.RedString)
		case diffpatch.DiffInsert:
			writeDiffLines(cfg, cc, "+", diff.Text, color.GreenString)
		case diffpatch.DiffEqual:
			writeDiffLines(cfg, cc, " ", diff.Text, nil)
		}
	}
	return fmt.Errorf("%s and %s differ", args[0], args[1])
}

func canonical(file string) (string, error) {
	from, err := format.FromPath(file)
	if err != nil {
		return "", err
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	out, err := convert.Convert(d, from, format.YAMLFormat)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func writeDiffLines(cfg *DiffConfig, cc *cli.Context, marker, text string, colorize func(string, ...any) string) {
	for _, ln := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		out := marker + " " + ln
		if cfg.Color && colorize != nil {
			out = colorize("%s", out)
		}
		fmt.Fprintln(cc.Out, out)
	}
}
