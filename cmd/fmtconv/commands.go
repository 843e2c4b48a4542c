package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "fmtconv").
		WithSynopsis("fmtconv [opts] command [opts]").
		WithDescription("fmtconv converts documents between json, yaml and xml.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtconvMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			ValidateCommand(cfg),
			InfoCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg))
}

func fmtconvMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		fmtOpt(&cfg.OutFormat, "format", "output format: json, yaml, xml", "f"),
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "co").
		WithSynopsis("convert <input> <output> --format (json|yaml|xml)").
		WithDescription("convert a document file to another format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtconvConvert(cfg, cc, args)
		})
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("val").
		WithSynopsis("validate [files]").
		WithDescription("check that files parse as their extension's format").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtconvValidate(cfg, cc, args)
		})
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Info, "info").
		WithAliases("i").
		WithSynopsis("info [files]").
		WithDescription("describe document files: format, validity, size, counts").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtconvInfo(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		fmtOpt(&cfg.InFormat, "I", "input format for stdin (default yaml)", "ifmt"),
		fmtOpt(&cfg.OutFormat, "O", "output format (default yaml)", "ofmt"),
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [-I format] [-O format] [files]").
		WithDescription("pretty-print document files on stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtconvView(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <file-a> <file-b>").
		WithDescription("compare two documents by canonical rendering, across formats").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtconvDiff(cfg, cc, args)
		})
}
