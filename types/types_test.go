package types_test

import (
	"testing"

	"github.com/nx-org/nx/types"
)

func TestScalarIdentity(t *testing.T) {
	if types.Int32 != types.Int32 {
		t.Errorf("int32 is not equal to itself")
	}
	if types.Int32 == types.Int64 {
		t.Errorf("int32 is equal to int64")
	}
	if types.Int32.Kind() != types.Int32Kind {
		t.Errorf("got kind %s but want %s", types.Int32.Kind(), types.Int32Kind)
	}
}

func TestParametricIdentity(t *testing.T) {
	a := types.NewArray(types.Float64, 2)
	b := types.NewArray(types.Float64, 2)
	c := types.NewArray(types.Float64, 3)
	if types.Type(a) != types.Type(b) {
		t.Errorf("%s is not equal to an identical array type", a)
	}
	if types.Type(a) == types.Type(c) {
		t.Errorf("%s is equal to %s", a, c)
	}
	if a.Category() != c.Category() {
		t.Errorf("arrays of different ranks have different categories")
	}
	if a.Category() == types.NewUniTuple(types.Intp, 2).Category() {
		t.Errorf("array and uni tuple share a category")
	}
}

func TestArrayIndexing(t *testing.T) {
	tests := []struct {
		array   types.ArrayType
		wantRet types.Type
	}{
		{array: types.NewArray(types.Int32, 1), wantRet: types.Int32},
		{array: types.NewArray(types.Int32, 3), wantRet: types.NewArray(types.Int32, 2)},
	}
	for ti, test := range tests {
		ret, index := test.array.GetItem()
		if ret != test.wantRet {
			t.Errorf("test %d: getitem result is %s but want %s", ti, ret, test.wantRet)
		}
		if index != types.Intp {
			t.Errorf("test %d: getitem index is %s but want %s", ti, index, types.Intp)
		}
		index, value := test.array.SetItem()
		if value != test.wantRet {
			t.Errorf("test %d: setitem value is %s but want %s", ti, value, test.wantRet)
		}
		if index != types.Intp {
			t.Errorf("test %d: setitem index is %s but want %s", ti, index, types.Intp)
		}
	}
}

func TestCapabilities(t *testing.T) {
	var array types.Type = types.NewArray(types.Int32, 1)
	if _, ok := array.(types.Indexable); !ok {
		t.Errorf("%s does not support indexed reads", array)
	}
	if _, ok := array.(types.IndexAssignable); !ok {
		t.Errorf("%s does not support indexed writes", array)
	}
	var tuple types.Type = types.NewUniTuple(types.Intp, 3)
	if _, ok := tuple.(types.Indexable); !ok {
		t.Errorf("%s does not support indexed reads", tuple)
	}
	if _, ok := tuple.(types.IndexAssignable); ok {
		t.Errorf("%s supports indexed writes", tuple)
	}
	if _, ok := types.Int32.(types.Parametric); ok {
		t.Errorf("int32 is parametric")
	}
}

func TestCatalog(t *testing.T) {
	catalog := types.Catalog()
	for _, name := range []string{"bool", "int32", "int64", "float32", "float64", "intp", "none", "unknown", "range_state32", "range_iter64"} {
		got, ok := catalog[name]
		if !ok {
			t.Errorf("catalog is missing %q", name)
			continue
		}
		if got.Name() != name {
			t.Errorf("catalog[%q].Name() = %q", name, got.Name())
		}
	}
}
