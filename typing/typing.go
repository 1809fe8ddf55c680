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

// Package typing resolves operations of the nx intermediate representation
// to declared signatures before code generation.
//
// Given an operation key and the concrete types of its arguments, a
// Context selects the single best-matching signature among the candidates
// declared by the operation's function template, ranking implicit
// conversions through a lattice of directed conversion costs. Pure
// promotions always win over conversions requiring a narrowing step;
// equally ranked candidates are reported as ambiguous rather than picked
// arbitrarily.
//
// A Context is built once per compilation session from the builtin
// template catalog plus caller extensions, and is never mutated by
// resolution: every query is a pure function of the context state and its
// inputs. Registration must happen before resolution starts; the two are
// not safe to interleave concurrently.
package typing

import (
	"github.com/nx-org/nx/base/ordered"
	"github.com/nx-org/nx/types"
)

// Context is the registry mapping operation keys to function templates
// and value-type keys to attribute templates. It holds a read-only
// reference to the conversion lattice, which may be shared across
// contexts.
type Context struct {
	lattice *Lattice
	funcs   *ordered.Map[any, *FuncTemplate]
	attrs   *ordered.Map[any, *AttrTemplate]
}

// Option extends a context under construction.
type Option func(*Context) error

// WithFuncs registers extension function templates after the builtins.
func WithFuncs(tmpls ...*FuncTemplate) Option {
	return func(ctx *Context) error {
		for _, tmpl := range tmpls {
			if err := ctx.RegisterFunc(tmpl); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithAttrs registers extension attribute templates after the builtins.
func WithAttrs(tmpls ...*AttrTemplate) Option {
	return func(ctx *Context) error {
		for _, tmpl := range tmpls {
			if err := ctx.RegisterAttr(tmpl); err != nil {
				return err
			}
		}
		return nil
	}
}

// New returns a context over the given lattice, loaded with the builtin
// template catalog in its fixed order, then extended by the options.
func New(lat *Lattice, opts ...Option) (*Context, error) {
	ctx := &Context{
		lattice: lat,
		funcs:   ordered.NewMap[any, *FuncTemplate](),
		attrs:   ordered.NewMap[any, *AttrTemplate](),
	}
	for _, tmpl := range builtinFuncs() {
		if err := ctx.RegisterFunc(tmpl); err != nil {
			return nil, err
		}
	}
	for _, tmpl := range builtinAttrs() {
		if err := ctx.RegisterAttr(tmpl); err != nil {
			return nil, err
		}
	}
	for _, opt := range opts {
		if err := opt(ctx); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// Lattice returns the conversion lattice of the context.
func (ctx *Context) Lattice() *Lattice {
	return ctx.lattice
}

// RegisterFunc registers a function template under its key.
// Fails with DuplicateError if the key is already registered.
func (ctx *Context) RegisterFunc(tmpl *FuncTemplate) error {
	if ok := ctx.funcs.StoreNew(tmpl.Key(), tmpl); !ok {
		return &DuplicateError{What: "function", Key: tmpl.Key()}
	}
	return nil
}

// RegisterAttr registers an attribute template under its key.
// Fails with DuplicateError if the key is already registered.
func (ctx *Context) RegisterAttr(tmpl *AttrTemplate) error {
	if ok := ctx.attrs.StoreNew(tmpl.Key(), tmpl); !ok {
		return &DuplicateError{What: "attribute", Key: tmpl.Key()}
	}
	return nil
}

// ResolveCall resolves a call of the operation registered under key with
// the given argument types to a single signature.
func (ctx *Context) ResolveCall(key any, args []types.Type, kwargs map[string]types.Type) (Signature, error) {
	tmpl, ok := ctx.funcs.Load(key)
	if !ok {
		return Signature{}, &UnknownOperationError{Key: key}
	}
	return tmpl.Apply(ctx.lattice, args, kwargs)
}

// ResolveAttribute resolves value.attr to the attribute's type. The
// template registered for the exact value type is consulted first; for a
// parametric type with no exact-type template, the template registered
// for the type's category is used instead.
func (ctx *Context) ResolveAttribute(value types.Type, attr string) (types.Type, error) {
	tmpl, ok := ctx.attrs.Load(value)
	if !ok {
		if param, isParam := value.(types.Parametric); isParam {
			tmpl, ok = ctx.attrs.Load(param.Category())
		}
	}
	if !ok {
		return nil, &NotImplementedError{Key: value, Attr: attr}
	}
	return tmpl.Resolve(value, attr)
}

// ResolveIndexAssign resolves target[index] = value as a call of the
// setitem pseudo-operation.
func (ctx *Context) ResolveIndexAssign(target, index, value types.Type) (Signature, error) {
	return ctx.ResolveCall(OpSetItem, []types.Type{target, index, value}, nil)
}

// Funcs returns an iterator over the registered function templates in
// registration order.
func (ctx *Context) Funcs() func(func(any, *FuncTemplate) bool) {
	return ctx.funcs.Iter()
}

// Attrs returns an iterator over the registered attribute templates in
// registration order.
func (ctx *Context) Attrs() func(func(any, *AttrTemplate) bool) {
	return ctx.attrs.Iter()
}
