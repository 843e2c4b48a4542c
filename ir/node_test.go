package ir

import (
	"testing"
)

func TestAppendAndGet(t *testing.T) {
	obj := &Node{Type: ObjectType}
	obj.Append("a", FromInt(1))
	obj.Append("b", FromString("two"))
	if len(obj.Fields) != 2 || len(obj.Values) != 2 {
		t.Fatalf("expected 2 fields, got %d/%d", len(obj.Fields), len(obj.Values))
	}
	if v := Get(obj, "a"); v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("Get(a) = %v", v)
	}
	if v := Get(obj, "b"); v == nil || v.String != "two" {
		t.Errorf("Get(b) = %v", v)
	}
	if v := Get(obj, "c"); v != nil {
		t.Errorf("Get(c) = %v, want nil", v)
	}
	if obj.Values[1].Parent != obj || obj.Values[1].ParentField != "b" {
		t.Errorf("appended value not linked to parent")
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "nums", Val: FromSlice([]*Node{FromInt(1), FromFloat(2.5)})},
		{Key: "flag", Val: FromBool(true)},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone not equal to original")
	}
	// Mutating the clone must not affect the original.
	*Get(cp, "nums").Values[0].Int64 = 99
	if Equal(orig, cp) {
		t.Errorf("clone shares number storage with original")
	}
	if cp.Values[0].Parent != cp {
		t.Errorf("clone children not reparented")
	}
}

func TestPath(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: "items", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "name", Val: FromString("x")}}),
		})},
	})
	if got := root.Path(); got != "$" {
		t.Errorf("root path = %q", got)
	}
	name := Get(Get(root, "items").Values[0], "name")
	if got := name.Path(); got != "$.items[0].name" {
		t.Errorf("path = %q, want $.items[0].name", got)
	}

	odd := FromKeyVals([]KeyVal{{Key: "a.b", Val: Null()}})
	if got := odd.Values[0].Path(); got != "$.'a.b'" {
		t.Errorf("quoted path = %q", got)
	}
}

func TestVisit(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
		{Key: "b", Val: Null()},
	})
	n := 0
	err := root.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, array, two ints, null
	if n != 5 {
		t.Errorf("visited %d nodes, want 5", n)
	}
	leaf := Get(root, "a").Values[1]
	if leaf.Root() != root {
		t.Errorf("Root() did not reach the top")
	}
}
