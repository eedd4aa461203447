package types

import (
	"testing"

	"github.com/wjcskqygj2015/hyrise/internal/testhelper"
)

func TestCompatible(t *testing.T) {
	cases := []struct {
		a, b DataType
		want bool
	}{
		{Int, Long, true},
		{Int, Double, true},
		{String, Int, false},
		{String, String, true},
		{Null, String, true},
		{Null, Int, true},
		{Float, Float, true},
	}
	for _, c := range cases {
		if got := Compatible(c.a, c.b); got != c.want {
			t.Errorf("Compatible(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
		if got := Compatible(c.b, c.a); got != c.want {
			t.Errorf("Compatible(%v, %v) = %v, want %v (symmetry)", c.b, c.a, got, c.want)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	testhelper.Assert(t, String.String() == "string", "String.String() should be \"string\"")
}
