// Package ir provides the canonical in-memory representation shared by the
// JSON, YAML and XML codecs.
//
// # Overview
//
// Every document, whatever format it was read from, is represented as a tree
// of ir.Node values. The IR is a recursive tagged union with one case per
// shape a document value can take:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64, with a string fallback)
//   - StringType: string value
//   - ObjectType: ordered key-value pairs (fields and values)
//   - ArrayType: ordered list of nodes
//
// Objects preserve insertion order: Fields[i] is the key for the value at
// Values[i], so there are always as many fields as values. Keys are string
// typed and unique within an object. Order is preserved so that output is
// deterministic; it is not significant for equality (see Compare).
//
// Numbers keep the integer/float distinction of the source format: integer
// values are placed under Int64, floating point values under Float64, and
// values representable as neither are kept verbatim under Number.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships (Parent, ParentIndex,
// ParentField), and Path() renders a JSONPath-style location string used in
// error messages:
//
//	path := node.Path() // e.g. "$.book.title" or "$.items[2]"
//
// # Thread Safety
//
// Node trees are not thread-safe. Each conversion builds its own tree and
// discards it; nothing is shared across conversions.
//
// # Related Packages
//
//   - github.com/karoljaro/yaml-xml-json-converter/parse - decodes text into IR nodes
//   - github.com/karoljaro/yaml-xml-json-converter/encode - encodes IR nodes to text
//   - github.com/karoljaro/yaml-xml-json-converter/convert - the conversion driver
package ir
