package codec

import (
	"os"

	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
)

// Info describes a document file without modifying it.
type Info struct {
	Format    format.Format
	Valid     bool
	SizeBytes int64
	// KeyCount is the number of top-level mapping entries after
	// normalization (JSON and YAML sources).
	KeyCount int
	// ElementCount is the recursive element count (XML sources).
	ElementCount int
	Encoding     string
	// Error holds the decode failure message when Valid is false.
	Error string
}

// FileInfo reads path and describes it. Decode failures are reported
// inside Info; environment problems (missing file, permissions,
// unrecognized extension) are returned as errors.
func FileInfo(path string) (*Info, error) {
	c, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info := &Info{
		Format:    c.Format(),
		SizeBytes: int64(len(d)),
		Encoding:  "utf-8",
	}
	node, err := c.Decode(d)
	if err != nil {
		info.Error = err.Error()
		return info, nil
	}
	info.Valid = true
	node = Normalize(node)
	if c.Format().IsXML() {
		info.ElementCount = countElements(node)
	} else {
		info.KeyCount = len(node.Fields)
	}
	return info, nil
}

// ValidFile reports whether path holds a valid document of its extension's
// format. Decode failures yield false; environment problems are returned
// as errors.
func ValidFile(path string) (bool, error) {
	c, err := ForPath(path)
	if err != nil {
		return false, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return c.Valid(d), nil
}

// countElements counts one per object entry and one per scalar leaf, the
// way the info report sizes an XML tree.
func countElements(node *ir.Node) int {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		for _, v := range node.Values {
			n += countElements(v)
		}
		return n
	case ir.ArrayType:
		n := 0
		for _, v := range node.Values {
			n += countElements(v)
		}
		return n
	default:
		return 1
	}
}
