package encode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
)

// encodeXML unfolds the IR back into elements: "@"-prefixed keys become
// attributes, "#text" becomes direct text content, array-valued keys become
// repeated sibling elements. The root must be a single-entry object; the
// conversion driver guarantees that before calling in here.
func encodeXML(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil || node.Type != ir.ObjectType || len(node.Fields) != 1 {
		path := "$"
		if node != nil {
			path = node.Path()
		}
		return encErr(format.XMLFormat, path, "root value must resolve to a single named element")
	}
	return xmlElement(w, node.Fields[0].String, node.Values[0], es)
}

func xmlElement(w io.Writer, tag string, val *ir.Node, es *EncState) error {
	if !validXMLName(tag) {
		return encErr(format.XMLFormat, val.Path(), "invalid element name %q", tag)
	}
	switch val.Type {
	case ir.ObjectType:
		return xmlObjectElement(w, tag, val, es)
	case ir.ArrayType:
		return xmlSequenceElement(w, tag, val, es)
	default:
		text, err := xmlScalarText(val)
		if err != nil {
			return err
		}
		return xmlLeaf(w, tag, "", text, es)
	}
}

func xmlObjectElement(w io.Writer, tag string, val *ir.Node, es *EncState) error {
	var (
		attrs    strings.Builder
		text     string
		hasText  bool
		children []ir.KeyVal
	)
	for i, yField := range val.Fields {
		key := yField.String
		v := val.Values[i]
		switch {
		case strings.HasPrefix(key, "@"):
			name := key[1:]
			if !validXMLName(name) {
				return encErr(format.XMLFormat, v.Path(), "invalid attribute name %q", name)
			}
			if !v.Type.IsLeaf() {
				return encErr(format.XMLFormat, v.Path(), "attribute value must be a scalar, got %s", v.Type)
			}
			av, err := xmlScalarText(v)
			if err != nil {
				return err
			}
			attrs.WriteString(" " + name + `="` + xmlEscape(av) + `"`)
		case key == "#text":
			if !v.Type.IsLeaf() {
				return encErr(format.XMLFormat, v.Path(), "text content must be a scalar, got %s", v.Type)
			}
			tv, err := xmlScalarText(v)
			if err != nil {
				return err
			}
			text = tv
			hasText = true
		default:
			children = append(children, ir.KeyVal{Key: key, Val: v})
		}
	}

	if len(children) == 0 {
		if !hasText || text == "" {
			return xmlWriteIndented(w, es, "<"+tag+attrs.String()+"/>")
		}
		return xmlLeaf(w, tag, attrs.String(), text, es)
	}

	if err := xmlWriteIndented(w, es, "<"+tag+attrs.String()+">"); err != nil {
		return err
	}
	es.depth++
	if hasText && text != "" {
		if err := xmlWriteIndented(w, es, xmlEscape(text)); err != nil {
			es.depth--
			return err
		}
	}
	for _, kv := range children {
		if kv.Val.Type == ir.ArrayType {
			// repeated sibling elements, one per item, in order
			for _, item := range kv.Val.Values {
				if err := xmlElement(w, kv.Key, item, es); err != nil {
					es.depth--
					return err
				}
			}
			continue
		}
		if err := xmlElement(w, kv.Key, kv.Val, es); err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	return xmlWriteIndented(w, es, "</"+tag+">")
}

// xmlSequenceElement handles an array appearing directly as element
// content, with no surrounding object to name the siblings: items become
// item0, item1, ... child elements. Lossy, matching the documented
// behavior for sequence roots.
func xmlSequenceElement(w io.Writer, tag string, val *ir.Node, es *EncState) error {
	if len(val.Values) == 0 {
		return xmlWriteIndented(w, es, "<"+tag+"/>")
	}
	if err := xmlWriteIndented(w, es, "<"+tag+">"); err != nil {
		return err
	}
	es.depth++
	for i, item := range val.Values {
		if err := xmlElement(w, fmt.Sprintf("item%d", i), item, es); err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	return xmlWriteIndented(w, es, "</"+tag+">")
}

func xmlLeaf(w io.Writer, tag, attrs, text string, es *EncState) error {
	if text == "" {
		return xmlWriteIndented(w, es, "<"+tag+attrs+"/>")
	}
	return xmlWriteIndented(w, es, "<"+tag+attrs+">"+xmlEscape(text)+"</"+tag+">")
}

func xmlWriteIndented(w io.Writer, es *EncState, line string) error {
	indent := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	es.line++
	return writeString(w, indent+line+"\n")
}

func xmlScalarText(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		if node.Bool {
			return "true", nil
		}
		return "false", nil
	case ir.NumberType:
		return numberText(node, format.XMLFormat)
	case ir.NullType:
		return "", nil
	default:
		return "", encErr(format.XMLFormat, node.Path(), "not a scalar: %s", node.Type)
	}
}

func xmlEscape(v string) string {
	buf := bytes.NewBuffer(nil)
	if err := xml.EscapeText(buf, []byte(v)); err != nil {
		return v
	}
	return buf.String()
}

func validXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == ':' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
