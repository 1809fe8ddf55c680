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

// Package types defines the concrete type catalog used by the nx typing core.
//
// The typing core itself treats a type as an opaque, comparable value.
// This package provides the default catalog: numeric scalars, the range
// iteration types, and the parametric array and uniform tuple types.
// Scalar types are singletons, so type identity is value equality of the
// Type interface value. Parametric types are comparable value structs:
// two arrays with the same element type and rank are the same type.
package types

// Kind discriminates the structural kind of a type.
type Kind uint

// Kinds of types supported by the default catalog.
const (
	InvalidKind Kind = iota

	BoolKind
	Int32Kind
	Int64Kind
	Float32Kind
	Float64Kind
	IntpKind

	NoneKind
	// UnknownKind is the pan-compatible bottom type used when
	// no safe common type exists.
	UnknownKind

	RangeFuncKind
	RangeStateKind
	RangeIterKind

	ArrayKind
	UniTupleKind
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case Int32Kind:
		return "int32"
	case Int64Kind:
		return "int64"
	case Float32Kind:
		return "float32"
	case Float64Kind:
		return "float64"
	case IntpKind:
		return "intp"
	case NoneKind:
		return "none"
	case UnknownKind:
		return "unknown"
	case RangeFuncKind:
		return "range"
	case RangeStateKind:
		return "range state"
	case RangeIterKind:
		return "range iter"
	case ArrayKind:
		return "array"
	case UniTupleKind:
		return "uni tuple"
	}
	return "invalid"
}

type (
	// Type is a type in the nx type system. Implementations must be
	// comparable: the typing core uses Type values as registry keys.
	Type interface {
		// Name returns the source-level name of the type.
		Name() string
		// Kind returns the structural kind of the type.
		Kind() Kind
	}

	// Parametric is implemented by types carrying internal structure
	// (element type, rank). Category returns the key grouping all
	// instances of the same structural kind, used by attribute
	// resolution as a fallback when no template is registered for the
	// exact type.
	Parametric interface {
		Type
		Category() Category
	}

	// Indexable is implemented by types supporting value[index] reads.
	Indexable interface {
		Type
		// GetItem returns the result and index types of an indexed read.
		GetItem() (ret, index Type)
	}

	// IndexAssignable is implemented by types supporting
	// value[index] = x writes.
	IndexAssignable interface {
		Type
		// SetItem returns the index and value types of an indexed write.
		SetItem() (index, value Type)
	}
)

// Category is the key grouping all parametric types of one structural kind.
type Category struct {
	name string
}

// String returns the name of the category.
func (c Category) String() string { return c.name }

// Categories of the parametric types in the default catalog.
var (
	ArrayCategory    = Category{name: "array"}
	UniTupleCategory = Category{name: "uni tuple"}
)

type scalar struct {
	name string
	kind Kind
}

func (s *scalar) Name() string   { return s.name }
func (s *scalar) Kind() Kind     { return s.kind }
func (s *scalar) String() string { return s.name }

// Scalar types of the default catalog.
var (
	Bool    Type = &scalar{name: "bool", kind: BoolKind}
	Int32   Type = &scalar{name: "int32", kind: Int32Kind}
	Int64   Type = &scalar{name: "int64", kind: Int64Kind}
	Float32 Type = &scalar{name: "float32", kind: Float32Kind}
	Float64 Type = &scalar{name: "float64", kind: Float64Kind}
	// Intp is the index-sized integer type.
	Intp Type = &scalar{name: "intp", kind: IntpKind}
	// None is the type of statements and stores returning nothing.
	None Type = &scalar{name: "none", kind: NoneKind}
	// Unknown is the bottom type: the pan-compatible fallback returned
	// by unification when no safe common type exists.
	Unknown Type = &scalar{name: "unknown", kind: UnknownKind}
)

// Range iteration protocol types. Range is the identity of the range
// callable itself and is used as a call-target operation key.
var (
	Range        Type = &scalar{name: "range", kind: RangeFuncKind}
	RangeState32 Type = &scalar{name: "range_state32", kind: RangeStateKind}
	RangeState64 Type = &scalar{name: "range_state64", kind: RangeStateKind}
	RangeIter32  Type = &scalar{name: "range_iter32", kind: RangeIterKind}
	RangeIter64  Type = &scalar{name: "range_iter64", kind: RangeIterKind}
)

// Catalog returns the named, non-parametric types of the default catalog,
// keyed by name. Used to resolve type names in configuration files.
func Catalog() map[string]Type {
	all := []Type{
		Bool, Int32, Int64, Float32, Float64, Intp, None, Unknown,
		Range, RangeState32, RangeState64, RangeIter32, RangeIter64,
	}
	m := make(map[string]Type, len(all))
	for _, t := range all {
		m[t.Name()] = t
	}
	return m
}
