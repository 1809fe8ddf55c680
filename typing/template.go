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
	"fmt"
	"slices"

	basefmt "github.com/nx-org/nx/base/fmt"
	"github.com/nx-org/nx/types"
)

// Resolver synthesizes the signature of a call given the actual argument
// types, or fails. The lattice is the one owned by the resolving context;
// resolvers validating a synthesized signature against the actual
// arguments do so with ApplyCase.
type Resolver func(lat *Lattice, args []types.Type, kwargs map[string]types.Type) (Signature, error)

// FuncTemplate binds an operation key to one of two resolution modes:
// a finite list of candidate signatures ranked through the lattice, or a
// dynamic resolver invoked with the actual argument types. The two modes
// are exclusive; the constructors build one or the other.
//
// Keys are comparable values: operator symbols and pseudo-operation names
// are strings, call targets are identified by their type value (the range
// callable is keyed by types.Range).
type FuncTemplate struct {
	key     any
	cases   []Signature
	generic Resolver
}

// NewFuncTemplate returns a declared template resolving the given key
// against a fixed case list. Case order is preserved; it determines which
// candidate is reported first on ambiguity.
func NewFuncTemplate(key any, cases ...Signature) *FuncTemplate {
	return &FuncTemplate{key: key, cases: cases}
}

// NewGenericFunc returns a dynamic template resolving the given key
// through a resolver callback.
func NewGenericFunc(key any, resolve Resolver) *FuncTemplate {
	return &FuncTemplate{key: key, generic: resolve}
}

// Key returns the operation key of the template.
func (t *FuncTemplate) Key() any {
	return t.key
}

// Cases returns a copy of the template's case list. Empty for dynamic
// templates.
func (t *FuncTemplate) Cases() []Signature {
	return slices.Clone(t.cases)
}

// String returns a debugging representation of the template.
func (t *FuncTemplate) String() string {
	if len(t.cases) > 0 {
		return fmt.Sprintf("template %s with %d cases", basefmt.String(t.key), len(t.cases))
	}
	if t.generic != nil {
		return fmt.Sprintf("template %s resolved by %s", basefmt.String(t.key), basefmt.Func(t.generic))
	}
	return fmt.Sprintf("template %s (empty)", basefmt.String(t.key))
}

// ApplyCase returns the per-position conversion distances from the actual
// argument types to the formal parameter types of sig, or false if the
// signature does not match: wrong arity, or some position with no
// conversion path.
func ApplyCase(lat *Lattice, sig Signature, args []types.Type) ([]int, bool) {
	if len(sig.Params) != len(args) {
		return nil, false
	}
	dists := make([]int, len(args))
	for i, formal := range sig.Params {
		d, ok := lat.Distance(args[i], formal)
		if !ok {
			return nil, false
		}
		dists[i] = d
	}
	return dists, true
}

// Apply resolves a call with the given argument types to a single
// signature. Declared templates rank their cases through the lattice;
// dynamic templates delegate to their resolver. A template with neither
// cases nor a resolver fails with NotImplementedError.
func (t *FuncTemplate) Apply(lat *Lattice, args []types.Type, kwargs map[string]types.Type) (Signature, error) {
	if len(t.cases) > 0 {
		if len(kwargs) > 0 {
			return Signature{}, &NotSupportedError{Feature: "keyword arguments"}
		}
		upcast, downcast := t.findCompatible(lat, args)
		return t.selectBest(upcast, downcast, args)
	}
	if t.generic != nil {
		return t.generic(lat, args, kwargs)
	}
	return Signature{}, &NotImplementedError{Key: t.key}
}

type (
	// upcastCase is a matching case whose distance tuple has no
	// negative entry, ranked by the sum of its distances.
	upcastCase struct {
		sum int
		sig Signature
	}

	// downcastCase is a matching case requiring at least one narrowing
	// step. The distance tuple is kept whole: its cost metric is
	// computed over the negative entries only.
	downcastCase struct {
		dists []int
		sig   Signature
	}
)

func hasNarrowing(dists []int) bool {
	for _, d := range dists {
		if d < 0 {
			return true
		}
	}
	return false
}

// narrowingCost sums the absolute values of the negative distances.
// Positive entries do not contribute.
func narrowingCost(dists []int) int {
	c := 0
	for _, d := range dists {
		if d < 0 {
			c -= d
		}
	}
	return c
}

func sum(dists []int) int {
	s := 0
	for _, d := range dists {
		s += d
	}
	return s
}

func (t *FuncTemplate) findCompatible(lat *Lattice, args []types.Type) ([]upcastCase, []downcastCase) {
	var upcast []upcastCase
	var downcast []downcastCase
	for _, sig := range t.cases {
		dists, ok := ApplyCase(lat, sig, args)
		if !ok {
			continue
		}
		if hasNarrowing(dists) {
			downcast = append(downcast, downcastCase{dists: dists, sig: sig})
		} else {
			upcast = append(upcast, upcastCase{sum: sum(dists), sig: sig})
		}
	}
	return upcast, downcast
}

// selectBest picks a single case. The upcast set takes strict precedence
// over the downcast set whenever it is not empty.
func (t *FuncTemplate) selectBest(upcast []upcastCase, downcast []downcastCase, args []types.Type) (Signature, error) {
	if len(upcast) > 0 {
		return t.selectUpcast(upcast)
	}
	if len(downcast) > 0 {
		return t.selectDowncast(downcast)
	}
	return Signature{}, &UnsupportedError{Key: t.key, Args: args}
}

// selectUpcast picks the case with the smallest summed distance.
// Only the two smallest sums are compared: a tie between them is
// ambiguous even if further candidates share the same sum, and three-way
// ties beyond the first two are not detected. This exact behavior is a
// compatibility contract; do not widen it to an N-way tie check.
func (t *FuncTemplate) selectUpcast(upcast []upcastCase) (Signature, error) {
	if len(upcast) == 1 {
		return upcast[0].sig, nil
	}
	fi := minSumIndex(upcast)
	first := upcast[fi]
	rest := make([]upcastCase, 0, len(upcast)-1)
	rest = append(rest, upcast[:fi]...)
	rest = append(rest, upcast[fi+1:]...)
	second := rest[minSumIndex(rest)]
	if first.sum < second.sum {
		return first.sig, nil
	}
	return Signature{}, &AmbiguousError{Key: t.key, Candidates: []Signature{first.sig, second.sig}}
}

func minSumIndex(cases []upcastCase) int {
	best := 0
	for i, c := range cases[1:] {
		if c.sum < cases[best].sum {
			best = i + 1
		}
	}
	return best
}

// selectDowncast picks the case with the least narrowing cost. All
// candidates tied at the minimum are reported on ambiguity.
func (t *FuncTemplate) selectDowncast(downcast []downcastCase) (Signature, error) {
	if len(downcast) == 1 {
		return downcast[0].sig, nil
	}
	best := -1
	var leasts []Signature
	for _, c := range downcast {
		n := narrowingCost(c.dists)
		switch {
		case best < 0 || n < best:
			best = n
			leasts = append(leasts[:0], c.sig)
		case n == best:
			leasts = append(leasts, c.sig)
		}
	}
	if len(leasts) == 1 {
		return leasts[0], nil
	}
	return Signature{}, &AmbiguousError{Key: t.key, Candidates: leasts}
}

// AttrResolver produces the type of one attribute of a value type.
type AttrResolver func(value types.Type) (types.Type, error)

// AttrTemplate binds a key, either a concrete value type or the category
// of a parametric kind, to a closed table of attribute handlers.
type AttrTemplate struct {
	key      any
	handlers map[string]AttrResolver
}

// NewAttrTemplate returns an attribute template for the given key with an
// empty handler table.
func NewAttrTemplate(key any) *AttrTemplate {
	return &AttrTemplate{key: key, handlers: make(map[string]AttrResolver)}
}

// On adds a handler for an attribute name and returns the template for
// chaining. A later handler for the same name replaces the earlier one.
func (t *AttrTemplate) On(attr string, resolve AttrResolver) *AttrTemplate {
	t.handlers[attr] = resolve
	return t
}

// Key returns the value type or category key of the template.
func (t *AttrTemplate) Key() any {
	return t.key
}

// Resolve returns the type of value.attr, or NotImplementedError if the
// template has no handler for the attribute name.
func (t *AttrTemplate) Resolve(value types.Type, attr string) (types.Type, error) {
	resolve, ok := t.handlers[attr]
	if !ok {
		return nil, &NotImplementedError{Key: value, Attr: attr}
	}
	return resolve(value)
}
