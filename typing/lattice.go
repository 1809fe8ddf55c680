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

import "github.com/nx-org/nx/types"

type pair [2]types.Type

// Lattice is a table of directed implicit-conversion costs between pairs
// of types. A positive distance is a promotion (widening), a negative
// distance a demotion (narrowing), and an absent entry means no implicit
// conversion exists. The lattice is immutable once built and can be shared
// read-only by any number of contexts.
type Lattice struct {
	dists  map[pair]int
	bottom types.Type
}

// Bottom returns the pan-compatible fallback type used by unification
// when no safe common type exists.
func (l *Lattice) Bottom() types.Type {
	return l.bottom
}

// Distance returns the conversion cost from one type to another.
// The identity conversion has distance zero for every type, whether or
// not the table carries an entry for it. Distance is not symmetric:
// the entries for (from, to) and (to, from) are independent.
func (l *Lattice) Distance(from, to types.Type) (int, bool) {
	if from == to {
		return 0, true
	}
	d, ok := l.dists[pair{from, to}]
	return d, ok
}

// Unify returns the common type of a pair of types: the second type when
// the first promotes to it, the first when reaching the second would
// narrow, and the bottom type when no conversion path exists.
func (l *Lattice) Unify(first, second types.Type) types.Type {
	d, ok := l.Distance(first, second)
	switch {
	case !ok:
		return l.bottom
	case d >= 0:
		// A promotion from first to second.
		return second
	default:
		// A demotion from first to second: keep the larger original.
		return first
	}
}

// UnifyAll folds Unify left-to-right across the sequence. The result
// depends on argument order when the table is not a true partial order:
// callers must supply types in a stable, meaningful order. An empty
// sequence unifies to the bottom type.
func (l *Lattice) UnifyAll(ts ...types.Type) types.Type {
	if len(ts) == 0 {
		return l.bottom
	}
	r := ts[0]
	for _, t := range ts[1:] {
		r = l.Unify(r, t)
	}
	return r
}

// LatticeBuilder accumulates conversion-cost entries and freezes them
// into a Lattice. The zero value is not usable; call NewLatticeBuilder.
// A builder must not be reused after Build.
type LatticeBuilder struct {
	dists map[pair]int
}

// NewLatticeBuilder returns an empty lattice builder.
func NewLatticeBuilder() *LatticeBuilder {
	return &LatticeBuilder{dists: make(map[pair]int)}
}

// Set records the conversion cost from one type to another, overwriting
// any previous entry for the pair.
func (b *LatticeBuilder) Set(from, to types.Type, cost int) *LatticeBuilder {
	if b.dists == nil {
		b.dists = make(map[pair]int)
	}
	b.dists[pair{from, to}] = cost
	return b
}

// Domain records all ordered-pair entries of a promotion chain given from
// the narrowest to the widest type: the distance from chain[i] to chain[j]
// is j-i, positive in the widening direction and negative in the
// narrowing direction.
func (b *LatticeBuilder) Domain(chain ...types.Type) *LatticeBuilder {
	for i, from := range chain {
		for j, to := range chain {
			if i == j {
				continue
			}
			b.Set(from, to, j-i)
		}
	}
	return b
}

// Build freezes the accumulated entries into an immutable lattice with
// the given bottom type.
func (b *LatticeBuilder) Build(bottom types.Type) *Lattice {
	l := &Lattice{dists: b.dists, bottom: bottom}
	b.dists = nil
	return l
}
