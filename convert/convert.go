// Package convert drives a whole conversion: decode the source format,
// normalize the root, encode the target format. The pipeline is fail-fast:
// codec errors abort it unmodified, and nothing is written to the target
// file unless encoding fully succeeded in memory.
package convert

import (
	"bytes"
	"fmt"
	"os"

	"github.com/karoljaro/yaml-xml-json-converter/codec"
	"github.com/karoljaro/yaml-xml-json-converter/format"
)

// Stage tracks where a conversion is; Done and Failed are terminal.
type Stage int

const (
	Loading Stage = iota
	Normalizing
	Saving
	Done
	Failed
)

func (s Stage) String() string {
	switch s {
	case Loading:
		return "load"
	case Normalizing:
		return "normalize"
	case Saving:
		return "save"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "<unknown stage>"
	}
}

// Conversion is one source-to-target run. A Conversion is single-use:
// construct, Run, inspect Stage if desired, discard.
type Conversion struct {
	From  format.Format
	To    format.Format
	Stage Stage
}

// Convert transforms src text from one format to another in memory.
func Convert(src []byte, from, to format.Format) ([]byte, error) {
	c := &Conversion{From: from, To: to}
	return c.Run(src)
}

func (c *Conversion) Run(src []byte) ([]byte, error) {
	c.Stage = Loading
	srcCodec, err := codec.For(c.From)
	if err != nil {
		return nil, c.fail(err)
	}
	node, err := srcCodec.Decode(src)
	if err != nil {
		return nil, c.fail(err)
	}

	c.Stage = Normalizing
	node = codec.NormalizeFor(node, c.To)

	c.Stage = Saving
	dstCodec, err := codec.For(c.To)
	if err != nil {
		return nil, c.fail(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := dstCodec.Encode(node, buf); err != nil {
		return nil, c.fail(err)
	}
	c.Stage = Done
	return buf.Bytes(), nil
}

func (c *Conversion) fail(err error) error {
	stage := c.Stage
	c.Stage = Failed
	return fmt.Errorf("%s: %w", stage, err)
}

// ConvertFile reads inPath, converts it to the target format, and writes
// outPath only after the whole result is encoded in memory. The source
// format comes from inPath's extension.
func ConvertFile(inPath, outPath string, to format.Format) error {
	from, err := format.FromPath(inPath)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	out, err := Convert(src, from, to)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0644)
}
