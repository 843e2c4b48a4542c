package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
)

type EncState struct {
	line, col     int
	depth, indent int

	format format.Format

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsXML() {
		return encodeXML(node, w, es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	es.col = 1
	es.depth = 0
	return writeNL(w, es)
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if es.col == 0 {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.line++
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func esBracket(es *EncState) bool {
	return es.format.IsJSON()
}

// Separator helpers

func writeCommaSeparator(w io.Writer, es *EncState, cType ir.Type) error {
	if !esBracket(es) {
		return nil
	}
	sep := ","
	es.col += len(sep)
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

// String quoting helper

func quoteString(v string, es *EncState) string {
	if es.format.IsJSON() {
		return Quote(v)
	}
	if NeedsQuote(v) {
		return Quote(v)
	}
	return v
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

// Object encoding

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if err := writeObjectOpen(w, es, n); err != nil {
		return err
	}
	for i, yField := range node.Fields {
		val := node.Values[i]
		if err := writeObjectFieldPrefix(i, node, w, es); err != nil {
			return err
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		if err := encodeObjectValue(val, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeCommaSeparator(w, es, ir.ObjectType); err != nil {
				return err
			}
		}
	}
	return writeObjectClose(w, es, n)
}

func writeObjectOpen(w io.Writer, es *EncState, nFields int) error {
	if !esBracket(es) && nFields != 0 {
		return nil
	}
	es.col++
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	return nil
}

func writeObjectClose(w io.Writer, es *EncState, nFields int) error {
	if !esBracket(es) && nFields != 0 {
		return nil
	}
	es.depth--
	if nFields != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	es.col++
	return writeString(w, "}")
}

func writeObjectFieldPrefix(i int, node *ir.Node, w io.Writer, es *EncState) error {
	if esBracket(es) {
		return writeNL(w, es)
	}
	if i == 0 && node.Parent != nil && node.Parent.Type == ir.ArrayType {
		return nil
	}
	return writeNL(w, es)
}

func encodeObjectValue(node *ir.Node, w io.Writer, es *EncState) error {
	es.depth++
	defer func() { es.depth-- }()
	switch node.Type {
	case ir.ObjectType:
		if esBracket(es) || len(node.Fields) == 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
			es.col++
		}
		br := false
		if esBracket(es) {
			es.depth--
			br = true
		}
		err := encode(node, w, es)
		if br {
			es.depth++
		}
		return err
	case ir.ArrayType:
		// brackets re-indent on open; block arrays sit at their key's indent
		es.depth--
		if esBracket(es) || len(node.Values) == 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
			es.col++
		}
		err := encode(node, w, es)
		es.depth++
		return err
	default:
		if err := writeString(w, " "); err != nil {
			return err
		}
		es.col++
		return encode(node, w, es)
	}
}

// Array encoding

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if err := writeArrayOpen(w, es, n); err != nil {
		return err
	}
	for i, v := range node.Values {
		if err := writeArrayElementPrefix(i, node, w, es); err != nil {
			return err
		}
		if err := writeArrayElementMarker(w, es); err != nil {
			return err
		}
		doDepth := !esBracket(es)
		if doDepth {
			es.depth++
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeCommaSeparator(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
		if doDepth {
			es.depth--
		}
	}
	return writeArrayClose(w, es, n)
}

func writeArrayOpen(w io.Writer, es *EncState, nValues int) error {
	if !esBracket(es) && nValues != 0 {
		return nil
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.col++
	es.depth++
	return nil
}

func writeArrayClose(w io.Writer, es *EncState, nValues int) error {
	if !esBracket(es) && nValues != 0 {
		return nil
	}
	es.depth--
	if nValues > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	es.col++
	return writeString(w, "]")
}

func writeArrayElementPrefix(i int, node *ir.Node, w io.Writer, es *EncState) error {
	if i == 0 && !esBracket(es) && node.Parent != nil && node.Parent.Type == ir.ArrayType {
		return nil
	}
	return writeNL(w, es)
}

func writeArrayElementMarker(w io.Writer, es *EncState) error {
	if esBracket(es) {
		return nil
	}
	sep := "-"
	if es.Color != nil {
		sep = applyColor(es, ir.ArrayType, SepColor, sep)
	}
	sep += " "
	if err := writeString(w, sep); err != nil {
		return err
	}
	es.col += 2
	return nil
}

// String encoding

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = ir.StringType
	v := quoteString(node.String, es)
	es.col += len(v)
	v = applyValueColor(es, ir.StringType, v)
	return writeString(w, v)
}

// Number encoding

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := numberText(node, es.format)
	if err != nil {
		return err
	}
	es.col += len(v)
	v = applyValueColor(es, ir.NumberType, v)
	return writeString(w, v)
}

func numberText(node *ir.Node, f format.Format) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 != nil {
		return floatText(*node.Float64, node, f)
	}
	return node.Number, nil
}

func floatText(v float64, node *ir.Node, f format.Format) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if f.IsJSON() {
			return "", encErr(f, node.Path(), "cannot represent %v", v)
		}
		switch {
		case math.IsNaN(v):
			return ".nan", nil
		case v > 0:
			return ".inf", nil
		default:
			return "-.inf", nil
		}
	}
	abs := math.Abs(v)
	if v != 0 && (abs >= 1e21 || abs < 1e-4) {
		s := strconv.FormatFloat(v, 'g', -1, 64)
		// The mantissa needs a decimal point or YAML types "1e+21" as a string
		if i := strings.IndexByte(s, 'e'); i >= 0 && !strings.Contains(s[:i], ".") {
			s = s[:i] + ".0" + s[i:]
		}
		return s, nil
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	// Ensure zero and integral floats keep a decimal point
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

// Bool encoding

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	es.col += len(v)
	v = applyValueColor(es, ir.BoolType, v)
	return writeString(w, v)
}

// Null encoding

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	v := "null"
	es.col += 4
	v = applyValueColor(es, ir.NullType, v)
	return writeString(w, v)
}

// Field writing

func writeField(w io.Writer, f string, es *EncState) error {
	sep := ":"
	if esBracket(es) || NeedsQuote(f) {
		f = Quote(f)
	}
	fColor := f
	if es.Color != nil {
		fColor = applyColor(es, ir.ObjectType, FieldColor, f)
		sep = applyColor(es, ir.ObjectType, SepColor, sep)
	}
	if err := writeString(w, fColor+sep); err != nil {
		return err
	}
	es.col += len(f) + 1
	return nil
}
