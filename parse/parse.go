package parse

import (
	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
)

// Parse decodes d into an IR node. The input format defaults to JSON and is
// selected with ParseFormat. Failures are always *Error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	case format.XMLFormat:
		return parseXML(d)
	default:
		return nil, errAt(pOpts.format, 0, 0, "%v", format.ErrBadFormat)
	}
}

// Valid reports whether d parses as f, without propagating the decode
// error.
func Valid(d []byte, f format.Format) bool {
	_, err := Parse(d, ParseFormat(f))
	return err == nil
}
