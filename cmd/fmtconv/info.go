package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/karoljaro/yaml-xml-json-converter/codec"
	"github.com/karoljaro/yaml-xml-json-converter/encode"
	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
)

func fmtconvInfo(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: info takes one or more file paths", cli.ErrUsage)
	}
	encOpts := cfg.encOpts(format.YAMLFormat, cc.Out)
	for i, file := range args {
		info, err := codec.FileInfo(file)
		if err != nil {
			return err
		}
		if err := encode.Encode(infoNode(file, info), cc.Out, encOpts...); err != nil {
			return err
		}
		if i < len(args)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}

// infoNode renders an Info report through the converter's own document
// model.
func infoNode(file string, info *codec.Info) *ir.Node {
	kvs := []ir.KeyVal{
		{Key: "file", Val: ir.FromString(file)},
		{Key: "format", Val: ir.FromString(info.Format.String())},
		{Key: "valid", Val: ir.FromBool(info.Valid)},
		{Key: "size_bytes", Val: ir.FromInt(info.SizeBytes)},
	}
	if info.Format.IsXML() {
		kvs = append(kvs, ir.KeyVal{Key: "element_count", Val: ir.FromInt(int64(info.ElementCount))})
	} else {
		kvs = append(kvs, ir.KeyVal{Key: "key_count", Val: ir.FromInt(int64(info.KeyCount))})
	}
	kvs = append(kvs, ir.KeyVal{Key: "encoding", Val: ir.FromString(info.Encoding)})
	if info.Error != "" {
		kvs = append(kvs, ir.KeyVal{Key: "error", Val: ir.FromString(info.Error)})
	}
	return ir.FromKeyVals(kvs)
}
