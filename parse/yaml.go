package parse

import (
	"math"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
)

// yamlState carries anchor definitions seen so far, so aliases resolve to
// copies of their anchored values. Anchors and aliases themselves are not
// preserved in the IR.
type yamlState struct {
	src     []byte
	anchors map[string]*ir.Node
}

func parseYAML(d []byte) (*ir.Node, error) {
	// duplicate keys are resolved in yamlMapping, not rejected here
	f, err := parser.ParseBytes(d, 0, parser.AllowDuplicateMapKey())
	if err != nil {
		return nil, &Error{Format: format.YAMLFormat, Cause: err}
	}
	var body ast.Node
	nDocs := 0
	for _, doc := range f.Docs {
		if doc.Body == nil {
			continue
		}
		nDocs++
		if nDocs > 1 {
			line, col := yamlPos(doc.Body)
			return nil, errAt(format.YAMLFormat, line, col, "multi-document streams are not supported")
		}
		body = doc.Body
	}
	if body == nil {
		return ir.Null(), nil
	}
	st := &yamlState{src: d, anchors: map[string]*ir.Node{}}
	return yamlNode(body, st)
}

func yamlNode(n ast.Node, st *yamlState) (*ir.Node, error) {
	switch v := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(v.Value), nil
	case *ast.IntegerNode:
		return yamlInt(v), nil
	case *ast.FloatNode:
		return ir.FromFloat(v.Value), nil
	case *ast.StringNode:
		return ir.FromString(v.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(v.Value.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(v.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.MappingNode:
		return yamlMapping(v.Values, st)
	case *ast.MappingValueNode:
		return yamlMapping([]*ast.MappingValueNode{v}, st)
	case *ast.SequenceNode:
		arr := &ir.Node{Type: ir.ArrayType}
		for _, item := range v.Values {
			val, err := yamlNode(item, st)
			if err != nil {
				return nil, err
			}
			val.Parent = arr
			val.ParentIndex = len(arr.Values)
			arr.Values = append(arr.Values, val)
		}
		return arr, nil
	case *ast.TagNode:
		return yamlNode(v.Value, st)
	case *ast.AnchorNode:
		name := v.Name.GetToken().Value
		val, err := yamlNode(v.Value, st)
		if err != nil {
			return nil, err
		}
		st.anchors[name] = val
		return val, nil
	case *ast.AliasNode:
		name := v.Value.GetToken().Value
		anchored, ok := st.anchors[name]
		if !ok {
			line, col := yamlPos(n)
			return nil, errAt(format.YAMLFormat, line, col, "unknown alias *%s", name)
		}
		return anchored.Clone(), nil
	default:
		line, col := yamlPos(n)
		return nil, errAt(format.YAMLFormat, line, col, "unsupported construct %s", n.Type())
	}
}

func yamlMapping(kvs []*ast.MappingValueNode, st *yamlState) (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType}
	for _, kv := range kvs {
		key, err := yamlKey(kv.Key)
		if err != nil {
			return nil, err
		}
		val, err := yamlNode(kv.Value, st)
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
	return obj, nil
}

// yamlKey coerces scalar mapping keys to their string rendering; non-scalar
// and merge keys are rejected.
func yamlKey(n ast.Node) (string, error) {
	switch v := n.(type) {
	case *ast.StringNode:
		return v.Value, nil
	case *ast.LiteralNode:
		return v.Value.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.NullNode:
		return n.GetToken().Value, nil
	case *ast.MergeKeyNode:
		line, col := yamlPos(n)
		return "", errAt(format.YAMLFormat, line, col, "merge keys are not supported")
	default:
		line, col := yamlPos(n)
		return "", errAt(format.YAMLFormat, line, col, "unsupported mapping key %s", n.Type())
	}
}

func yamlInt(v *ast.IntegerNode) *ir.Node {
	switch i := v.Value.(type) {
	case int64:
		return ir.FromInt(i)
	case uint64:
		if i <= math.MaxInt64 {
			return ir.FromInt(int64(i))
		}
		return ir.FromNumber(strconv.FormatUint(i, 10))
	case int:
		return ir.FromInt(int64(i))
	default:
		return ir.FromNumber(v.GetToken().Value)
	}
}

func yamlPos(n ast.Node) (int, int) {
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return 0, 0
	}
	return tok.Position.Line, tok.Position.Column
}
