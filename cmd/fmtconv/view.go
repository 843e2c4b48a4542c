package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/karoljaro/yaml-xml-json-converter/codec"
	"github.com/karoljaro/yaml-xml-json-converter/format"
)

func fmtconvView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view takes one or more file paths", cli.ErrUsage)
	}
	outFormat := format.YAMLFormat
	if cfg.OutFormat != nil {
		outFormat = *cfg.OutFormat
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, file, outFormat); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n---\n"))
		}
	}
	return nil
}

// viewFile renders one file; "-" reads stdin in the -I format.
func viewFile(cfg *ViewConfig, cc *cli.Context, file string, outFormat format.Format) error {
	w := cc.Out
	var (
		srcCodec codec.Codec
		d        []byte
		err      error
	)
	if file == "-" {
		inFormat := format.YAMLFormat
		if cfg.InFormat != nil {
			inFormat = *cfg.InFormat
		}
		if srcCodec, err = codec.For(inFormat); err != nil {
			return err
		}
		if d, err = io.ReadAll(cc.In); err != nil {
			return err
		}
	} else {
		if srcCodec, err = codec.ForPath(file); err != nil {
			return err
		}
		if d, err = os.ReadFile(file); err != nil {
			return err
		}
	}
	node, err := srcCodec.Decode(d)
	if err != nil {
		return err
	}
	node = codec.NormalizeFor(node, outFormat)
	dstCodec, err := codec.For(outFormat)
	if err != nil {
		return err
	}
	return dstCodec.Encode(node, w, cfg.encOpts(outFormat, w)...)
}
