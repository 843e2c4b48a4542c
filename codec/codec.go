// Package codec bundles the per-format decode/encode capabilities behind a
// single interface, selected through a format lookup table.
package codec

import (
	"io"

	"github.com/karoljaro/yaml-xml-json-converter/encode"
	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
	"github.com/karoljaro/yaml-xml-json-converter/parse"
)

// Codec is the capability set of one serialization format. Implementations
// are stateless; the same Codec value may be used for any number of
// documents.
type Codec interface {
	// Format returns the format this codec reads and writes.
	Format() format.Format

	// Decode parses d into an IR node. Failures are *parse.Error.
	Decode(d []byte) (*ir.Node, error)

	// Encode writes node to w. Failures are *encode.Error.
	Encode(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error

	// Valid reports whether d decodes, without propagating the decode
	// error.
	Valid(d []byte) bool
}

type fmtCodec struct {
	f format.Format
}

var codecs = map[format.Format]Codec{
	format.JSONFormat: fmtCodec{format.JSONFormat},
	format.YAMLFormat: fmtCodec{format.YAMLFormat},
	format.XMLFormat:  fmtCodec{format.XMLFormat},
}

// For returns the codec for f, or format.ErrBadFormat when f is not one of
// json/yaml/xml.
func For(f format.Format) (Codec, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, format.ErrBadFormat
	}
	return c, nil
}

// ForName returns the codec named by a format string such as "yaml".
func ForName(name string) (Codec, error) {
	f, err := format.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return For(f)
}

// ForPath returns the codec for a file path, detected by extension.
func ForPath(path string) (Codec, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	return For(f)
}

func (c fmtCodec) Format() format.Format {
	return c.f
}

func (c fmtCodec) Decode(d []byte) (*ir.Node, error) {
	return parse.Parse(d, parse.ParseFormat(c.f))
}

func (c fmtCodec) Encode(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	opts = append(opts, encode.EncodeFormat(c.f))
	return encode.Encode(node, w, opts...)
}

func (c fmtCodec) Valid(d []byte) bool {
	_, err := c.Decode(d)
	return err == nil
}
