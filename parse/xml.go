package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
)

// parseXML reads the element tree from the token stream and folds it into
// the IR:
//
//   - attribute (name, value) pairs become "@name" string entries
//   - non-whitespace text directly under an element with attributes or
//     child elements goes under "#text"
//   - an element with only text (no attributes, no children) collapses to
//     that text, and to "" when empty
//   - same-tag sibling elements group into one array entry, in document
//     order, at the first occurrence's position
func parseXML(d []byte) (*ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	start, err := xmlRoot(dec, d)
	if err != nil {
		return nil, err
	}
	folded, err := foldElement(dec, *start, d)
	if err != nil {
		return nil, err
	}
	if err := xmlDrain(dec, d); err != nil {
		return nil, err
	}
	return ir.FromKeyVals([]ir.KeyVal{{Key: xmlName(start.Name), Val: folded}}), nil
}

// xmlRoot scans past the prolog to the single root element.
func xmlRoot(dec *xml.Decoder, d []byte) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			line, col := lineCol(d, len(d))
			return nil, errAt(format.XMLFormat, line, col, "missing root element")
		}
		if err != nil {
			return nil, xmlErr(d, dec, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return &t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				line, col := lineCol(d, int(dec.InputOffset()))
				return nil, errAt(format.XMLFormat, line, col, "text before root element")
			}
		case xml.ProcInst, xml.Comment, xml.Directive:
		}
	}
}

// xmlDrain ensures nothing but whitespace and comments follows the root
// element.
func xmlDrain(dec *xml.Decoder, d []byte) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return xmlErr(d, dec, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			line, col := lineCol(d, int(dec.InputOffset()))
			return errAt(format.XMLFormat, line, col, "multiple root elements: <%s>", xmlName(t.Name))
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				line, col := lineCol(d, int(dec.InputOffset()))
				return errAt(format.XMLFormat, line, col, "text after root element")
			}
		case xml.ProcInst, xml.Comment, xml.Directive:
		}
	}
}

func foldElement(dec *xml.Decoder, start xml.StartElement, d []byte) (*ir.Node, error) {
	var kvs []ir.KeyVal
	for _, attr := range start.Attr {
		key := "@" + xmlName(attr.Name)
		for i := range kvs {
			if kvs[i].Key == key {
				line, col := lineCol(d, int(dec.InputOffset()))
				return nil, errAt(format.XMLFormat, line, col, "duplicate attribute %q on <%s>", xmlName(attr.Name), xmlName(start.Name))
			}
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: ir.FromString(attr.Value)})
	}
	nAttrs := len(kvs)

	var (
		text     strings.Builder
		childKVs []ir.KeyVal
		childIdx = map[string]int{}
		grouped  = map[string]bool{}
	)
	addChild := func(key string, val *ir.Node) {
		i, ok := childIdx[key]
		if !ok {
			childIdx[key] = len(childKVs)
			childKVs = append(childKVs, ir.KeyVal{Key: key, Val: val})
			return
		}
		if !grouped[key] {
			childKVs[i].Val = ir.FromSlice([]*ir.Node{childKVs[i].Val, val})
			grouped[key] = true
			return
		}
		arr := childKVs[i].Val
		val.Parent = arr
		val.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, val)
	}

loop:
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, xmlErr(d, dec, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := foldElement(dec, t, d)
			if err != nil {
				return nil, err
			}
			addChild(xmlName(t.Name), child)
		case xml.EndElement:
			break loop
		case xml.CharData:
			text.Write(t)
		case xml.ProcInst, xml.Comment, xml.Directive:
		}
	}

	trimmed := strings.TrimSpace(text.String())
	if nAttrs == 0 && len(childKVs) == 0 {
		return ir.FromString(trimmed), nil
	}
	if trimmed != "" {
		kvs = append(kvs, ir.KeyVal{Key: "#text", Val: ir.FromString(trimmed)})
	}
	kvs = append(kvs, childKVs...)
	return ir.FromKeyVals(kvs), nil
}

// xmlName renders an element or attribute name. Namespace prefixes without
// a matching xmlns declaration survive as plain "prefix:local" text.
func xmlName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func xmlErr(d []byte, dec *xml.Decoder, err error) *Error {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return &Error{Format: format.XMLFormat, Line: syn.Line, Cause: err}
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		line, col := lineCol(d, len(d))
		return errAt(format.XMLFormat, line, col, "unexpected end of input")
	}
	line, col := lineCol(d, int(dec.InputOffset()))
	return &Error{Format: format.XMLFormat, Line: line, Col: col, Cause: err}
}
