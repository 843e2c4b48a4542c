package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
)

// parseJSON walks the token stream rather than unmarshaling into a map so
// that object key order and the int/float distinction survive.
func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := jsonValue(dec, d)
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, jsonErr(d, dec, err)
		}
		line, col := lineCol(d, int(dec.InputOffset()))
		return nil, errAt(format.JSONFormat, line, col, "unexpected trailing %v after top-level value", tok)
	}
	return node, nil
}

func jsonValue(dec *json.Decoder, d []byte) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, jsonErr(d, dec, err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec, d)
		case '[':
			return jsonArray(dec, d)
		default:
			line, col := lineCol(d, int(dec.InputOffset()))
			return nil, errAt(format.JSONFormat, line, col, "unexpected %q", t.String())
		}
	case string:
		return ir.FromString(t), nil
	case json.Number:
		return jsonNumber(t), nil
	case bool:
		return ir.FromBool(t), nil
	case nil:
		return ir.Null(), nil
	default:
		line, col := lineCol(d, int(dec.InputOffset()))
		return nil, errAt(format.JSONFormat, line, col, "unexpected token %v", tok)
	}
}

func jsonObject(dec *json.Decoder, d []byte) (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, jsonErr(d, dec, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			line, col := lineCol(d, int(dec.InputOffset()))
			return nil, errAt(format.JSONFormat, line, col, "object key is not a string: %v", keyTok)
		}
		val, err := jsonValue(dec, d)
		if err != nil {
			return nil, err
		}
		// last duplicate wins, keeping the first occurrence's position
		if prev := ir.Get(obj, key); prev != nil {
			val.Parent = obj
			val.ParentIndex = prev.ParentIndex
			val.ParentField = key
			obj.Values[prev.ParentIndex] = val
			continue
		}
		obj.Append(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, jsonErr(d, dec, err)
	}
	return obj, nil
}

func jsonArray(dec *json.Decoder, d []byte) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	for dec.More() {
		val, err := jsonValue(dec, d)
		if err != nil {
			return nil, err
		}
		val.Parent = arr
		val.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, val)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, jsonErr(d, dec, err)
	}
	return arr, nil
}

func jsonNumber(n json.Number) *ir.Node {
	v := n.String()
	if !strings.ContainsAny(v, ".eE") {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return ir.FromInt(i)
		}
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return ir.FromFloat(f)
	}
	return ir.FromNumber(v)
}

func jsonErr(d []byte, dec *json.Decoder, err error) *Error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		// Token-mode literal errors carry offsets relative to the token
		// start; the decoder position is absolute and never behind it.
		off := syn.Offset
		if p := dec.InputOffset(); p > off {
			off = p
		}
		line, col := lineCol(d, int(off))
		return &Error{Format: format.JSONFormat, Line: line, Col: col, Cause: err}
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		line, col := lineCol(d, len(d))
		return errAt(format.JSONFormat, line, col, "unexpected end of input")
	}
	line, col := lineCol(d, int(dec.InputOffset()))
	return &Error{Format: format.JSONFormat, Line: line, Col: col, Cause: err}
}
