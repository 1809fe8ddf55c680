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

package types

import "fmt"

// ArrayType is a dense array parametrized by element type and rank.
type ArrayType struct {
	Elem Type
	NDim int
}

// NewArray returns the array type of the given element type and rank.
func NewArray(elem Type, ndim int) ArrayType {
	return ArrayType{Elem: elem, NDim: ndim}
}

// Name returns the source-level name of the array type.
func (t ArrayType) Name() string {
	return fmt.Sprintf("array(%s, %dd)", t.Elem.Name(), t.NDim)
}

// Kind returns ArrayKind.
func (t ArrayType) Kind() Kind { return ArrayKind }

// Category returns the key grouping all array types.
func (t ArrayType) Category() Category { return ArrayCategory }

// String returns the name of the type.
func (t ArrayType) String() string { return t.Name() }

// GetItem returns the result and index types of an indexed read.
// Indexing a rank-n array yields a rank n-1 array, down to the element type.
func (t ArrayType) GetItem() (ret, index Type) {
	return t.drop(), Intp
}

// SetItem returns the index and value types of an indexed write.
func (t ArrayType) SetItem() (index, value Type) {
	return Intp, t.drop()
}

func (t ArrayType) drop() Type {
	if t.NDim <= 1 {
		return t.Elem
	}
	return ArrayType{Elem: t.Elem, NDim: t.NDim - 1}
}

// UniTupleType is a tuple of Count elements sharing one element type.
type UniTupleType struct {
	Elem  Type
	Count int
}

// NewUniTuple returns the uniform tuple type of the given element type and length.
func NewUniTuple(elem Type, count int) UniTupleType {
	return UniTupleType{Elem: elem, Count: count}
}

// Name returns the source-level name of the tuple type.
func (t UniTupleType) Name() string {
	return fmt.Sprintf("(%s x %d)", t.Elem.Name(), t.Count)
}

// Kind returns UniTupleKind.
func (t UniTupleType) Kind() Kind { return UniTupleKind }

// Category returns the key grouping all uniform tuple types.
func (t UniTupleType) Category() Category { return UniTupleCategory }

// String returns the name of the type.
func (t UniTupleType) String() string { return t.Name() }

// GetItem returns the result and index types of an indexed read.
func (t UniTupleType) GetItem() (ret, index Type) {
	return t.Elem, Intp
}
