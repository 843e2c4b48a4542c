package codec

import (
	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
)

// DataKey is the key a non-object top-level value is wrapped under.
const DataKey = "data"

// RootKey is the synthetic element name wrapping documents whose root
// object cannot name a single XML root element.
const RootKey = "root"

// Normalize coerces a decoded document to the canonical object-rooted
// shape: a node that is not already an object is wrapped as
// {"data": node}. Idempotent, and a pure function of the root: no deep
// mutation.
func Normalize(node *ir.Node) *ir.Node {
	if node == nil {
		return ir.FromKeyVals([]ir.KeyVal{{Key: DataKey, Val: ir.Null()}})
	}
	if node.Type == ir.ObjectType {
		return node
	}
	return ir.FromKeyVals([]ir.KeyVal{{Key: DataKey, Val: node}})
}

// NormalizeFor normalizes and, for an XML target, additionally guarantees
// the single-named-element root the XML codec requires: a root object with
// any number of entries other than one is wrapped under a synthetic "root"
// element.
func NormalizeFor(node *ir.Node, target format.Format) *ir.Node {
	node = Normalize(node)
	if target.IsXML() && len(node.Fields) != 1 {
		node = ir.FromKeyVals([]ir.KeyVal{{Key: RootKey, Val: node}})
	}
	return node
}
