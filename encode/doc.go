// Package encode renders IR nodes as JSON, YAML or XML text.
//
// # Usage
//
//	// Encode to JSON
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
//	// Encode to YAML with colorized output
//	err := encode.Encode(node, w,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// JSON output is bracketed with 2-space indentation, object keys in
// insertion order, and non-ASCII characters passed through unescaped. YAML
// output is block style with strings quoted whenever a plain scalar would
// decode to a different type or value. XML output unfolds the "@attr" /
// "#text" / array-of-siblings convention back into elements.
//
// # Related Packages
//
//   - github.com/karoljaro/yaml-xml-json-converter/ir - IR representation
//   - github.com/karoljaro/yaml-xml-json-converter/parse - Parse text to IR
package encode
