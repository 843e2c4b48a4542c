package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison: Int < Float < Literal
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < Literal", FromFloat(1.0), FromNumber("1"), -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"Literal < Literal", FromNumber("1"), FromNumber("2"), -1},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			-1},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqualFieldOrder(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromInt(1)},
		{Key: "y", Val: FromString("z")},
	})
	b := FromKeyVals([]KeyVal{
		{Key: "y", Val: FromString("z")},
		{Key: "x", Val: FromInt(1)},
	})
	if !Equal(a, b) {
		t.Errorf("objects differing only in field order should be Equal")
	}
	if Compare(a, b) == 0 {
		t.Errorf("Compare is order sensitive, expected non-zero")
	}
}

func TestEqualNested(t *testing.T) {
	mk := func(kvs ...KeyVal) *Node { return FromKeyVals(kvs) }
	a := mk(KeyVal{Key: "list", Val: FromSlice([]*Node{
		mk(KeyVal{Key: "a", Val: FromInt(1)}, KeyVal{Key: "b", Val: Null()}),
	})})
	b := mk(KeyVal{Key: "list", Val: FromSlice([]*Node{
		mk(KeyVal{Key: "b", Val: Null()}, KeyVal{Key: "a", Val: FromInt(1)}),
	})})
	if !Equal(a, b) {
		t.Errorf("nested field order should not matter for Equal")
	}

	c := mk(KeyVal{Key: "list", Val: FromSlice([]*Node{
		mk(KeyVal{Key: "a", Val: FromInt(2)}, KeyVal{Key: "b", Val: Null()}),
	})})
	if Equal(a, c) {
		t.Errorf("differing values should not be Equal")
	}

	// Array element order matters.
	d := mk(KeyVal{Key: "list", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})})
	e := mk(KeyVal{Key: "list", Val: FromSlice([]*Node{FromInt(2), FromInt(1)})})
	if Equal(d, e) {
		t.Errorf("array element order should matter for Equal")
	}
}
