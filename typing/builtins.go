// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typing

import (
	"github.com/pkg/errors"

	"github.com/nx-org/nx/types"
)

// Keys of the builtin operations. Binary operators and comparisons are
// keyed by their symbol; the iteration and indexing protocols by
// pseudo-operation names. Range construction is keyed by the range
// callable type value, types.Range.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/?"

	OpLt = "<"
	OpLe = "<="
	OpGt = ">"
	OpGe = ">="
	OpEq = "=="
	OpNe = "!="

	OpGetItem   = "getitem"
	OpSetItem   = "setitem"
	OpGetIter   = "getiter"
	OpIterNext  = "iternext"
	OpIterValid = "itervalid"
)

// DefaultLattice returns the conversion table of the default numeric
// catalog: the promotion chain int32 < int64 < float32 < float64, with
// intp sitting between int32 and int64 so that int32 indices promote to
// it, and types.Unknown as the bottom type. Bool, none and the range
// types carry no implicit conversions.
func DefaultLattice() *Lattice {
	return NewLatticeBuilder().
		Domain(types.Int32, types.Int64, types.Float32, types.Float64).
		Set(types.Int32, types.Intp, 1).
		Set(types.Intp, types.Int32, -1).
		Set(types.Intp, types.Int64, 1).
		Set(types.Int64, types.Intp, -1).
		Build(types.Unknown)
}

func binOpCases() []Signature {
	return []Signature{
		Sig(types.Int32, types.Int32, types.Int32),
		Sig(types.Int64, types.Int64, types.Int64),
		Sig(types.Float32, types.Float32, types.Float32),
		Sig(types.Float64, types.Float64, types.Float64),
	}
}

func cmpOpCases() []Signature {
	return []Signature{
		Sig(types.Bool, types.Int32, types.Int32),
		Sig(types.Bool, types.Int64, types.Int64),
		Sig(types.Bool, types.Float32, types.Float32),
		Sig(types.Bool, types.Float64, types.Float64),
	}
}

// builtinFuncs returns the builtin function templates in their fixed
// registration order.
func builtinFuncs() []*FuncTemplate {
	tmpls := []*FuncTemplate{
		NewFuncTemplate(types.Range,
			Sig(types.RangeState32, types.Int32),
			Sig(types.RangeState32, types.Int32, types.Int32),
			Sig(types.RangeState64, types.Int64),
			Sig(types.RangeState64, types.Int64, types.Int64),
		),
		NewFuncTemplate(OpGetIter,
			Sig(types.RangeIter32, types.RangeState32),
			Sig(types.RangeIter64, types.RangeState64),
		),
		NewFuncTemplate(OpIterNext,
			Sig(types.Int32, types.RangeIter32),
			Sig(types.Int64, types.RangeIter64),
		),
		NewFuncTemplate(OpIterValid,
			Sig(types.Bool, types.RangeIter32),
			Sig(types.Bool, types.RangeIter64),
		),
	}
	for _, op := range []string{OpAdd, OpSub, OpMul, OpDiv} {
		tmpls = append(tmpls, NewFuncTemplate(op, binOpCases()...))
	}
	for _, op := range []string{OpLt, OpLe, OpGt, OpGe, OpEq, OpNe} {
		tmpls = append(tmpls, NewFuncTemplate(op, cmpOpCases()...))
	}
	return append(tmpls,
		NewGenericFunc(OpGetItem, resolveGetItem),
		NewGenericFunc(OpSetItem, resolveSetItem),
	)
}

// resolveGetItem synthesizes the signature of an indexed read from the
// target type's indexing capability, then validates the actual argument
// types against it through the lattice.
func resolveGetItem(lat *Lattice, args []types.Type, kwargs map[string]types.Type) (Signature, error) {
	if len(kwargs) > 0 {
		return Signature{}, &NotSupportedError{Feature: "keyword arguments"}
	}
	if len(args) != 2 {
		return Signature{}, &UnsupportedError{Key: OpGetItem, Args: args}
	}
	base, ok := args[0].(types.Indexable)
	if !ok {
		return Signature{}, &NotImplementedError{Key: args[0], Attr: OpGetItem}
	}
	ret, index := base.GetItem()
	sig := Sig(ret, args[0], index)
	if _, ok := ApplyCase(lat, sig, args); !ok {
		return Signature{}, &UnsupportedError{Key: OpGetItem, Args: args}
	}
	return sig, nil
}

// resolveSetItem synthesizes the signature of an indexed write from the
// target type's indexing capability. The index and value argument types
// are not validated here: the synthesized signature states what the
// store expects, and the caller inserts the conversions.
func resolveSetItem(lat *Lattice, args []types.Type, kwargs map[string]types.Type) (Signature, error) {
	if len(kwargs) > 0 {
		return Signature{}, &NotSupportedError{Feature: "keyword arguments"}
	}
	if len(args) != 3 {
		return Signature{}, &UnsupportedError{Key: OpSetItem, Args: args}
	}
	base, ok := args[0].(types.IndexAssignable)
	if !ok {
		return Signature{}, &NotImplementedError{Key: args[0], Attr: OpSetItem}
	}
	index, value := base.SetItem()
	return Sig(types.None, args[0], index, value), nil
}

// builtinAttrs returns the builtin attribute templates in their fixed
// registration order.
func builtinAttrs() []*AttrTemplate {
	return []*AttrTemplate{
		NewAttrTemplate(types.ArrayCategory).On("shape", resolveArrayShape),
	}
}

func resolveArrayShape(value types.Type) (types.Type, error) {
	array, ok := value.(types.ArrayType)
	if !ok {
		return nil, errors.Errorf("array attribute template applied to %s", value.Name())
	}
	return types.NewUniTuple(types.Intp, array.NDim), nil
}
