// Package parse decodes JSON, YAML and XML text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseFormat(format.YAMLFormat))
//	if err != nil {
//	    // *parse.Error with format and position where available
//	}
//
// Decoding preserves object key order, the integer/float distinction of
// numeric literals, and, for XML, folds attributes, text content and
// repeated sibling elements into the IR's object/array/scalar shapes.
//
// # Related Packages
//
//   - github.com/karoljaro/yaml-xml-json-converter/ir - IR representation
//   - github.com/karoljaro/yaml-xml-json-converter/encode - Encode IR to text
package parse
