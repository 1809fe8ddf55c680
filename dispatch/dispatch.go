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

// Package dispatch defines the contract between the typing core and the
// kernel code-generation collaborator.
//
// The typing core resolves an operation to a signature; everything past
// that point, compiling a function body for a signature and launching it
// over array data, lives behind the Compiler interface. The core never
// compiles anything itself: UFunc is the downstream consumer that turns
// resolved signatures into a table of compiled kernels, selected at call
// time by the exact element types of the inputs.
package dispatch

import (
	"github.com/pkg/errors"

	"github.com/nx-org/nx/base/ordered"
	"github.com/nx-org/nx/types"
	"github.com/nx-org/nx/typing"
)

// Kernel is a compiled, executable artifact produced by a Compiler.
type Kernel interface {
	// Call runs the kernel over the given argument values.
	Call(args ...any) (any, error)
}

// Compiler produces kernels from typed functions. Implementations live
// outside the typing core (device backends, JIT engines).
type Compiler interface {
	// Compile builds an executable kernel for fn specialized to the
	// given signature.
	Compile(fn any, sig typing.Signature) (Kernel, error)
	// Describe returns the signature a kernel was compiled for.
	Describe(k Kernel) (typing.Signature, error)
}

type kernelEntry struct {
	sig    typing.Signature
	kernel Kernel
}

// UFunc is a universal function: one scalar core compiled into one kernel
// per declared signature. Kernels are selected by the exact parameter
// types of the call; promotion of the inputs is the caller's concern,
// resolved beforehand through a typing context.
type UFunc struct {
	name     string
	fn       any
	compiler Compiler
	kernels  *ordered.Map[string, kernelEntry]
}

// NewUFunc returns a universal function with an empty kernel table.
func NewUFunc(name string, fn any, compiler Compiler) *UFunc {
	return &UFunc{
		name:     name,
		fn:       fn,
		compiler: compiler,
		kernels:  ordered.NewMap[string, kernelEntry](),
	}
}

// Name returns the name of the function.
func (u *UFunc) Name() string {
	return u.name
}

// Add compiles the scalar core for a signature and records the kernel.
// The kernel table is keyed by parameter types only: adding a second
// signature with the same parameters fails with DuplicateError rather
// than silently replacing the first kernel.
func (u *UFunc) Add(sig typing.Signature) error {
	key := sig.ParamsKey()
	if u.kernels.Has(key) {
		return &typing.DuplicateError{What: "kernel", Key: key}
	}
	kernel, err := u.compiler.Compile(u.fn, sig)
	if err != nil {
		return errors.Wrapf(err, "cannot compile %s for %s", u.name, sig)
	}
	u.kernels.Store(key, kernelEntry{sig: sig, kernel: kernel})
	return nil
}

// Select returns the kernel compiled for the exact given parameter types
// along with its result type. No lattice ranking applies here: a call
// with types no kernel was compiled for fails with UnsupportedError.
func (u *UFunc) Select(args []types.Type) (Kernel, types.Type, error) {
	entry, ok := u.kernels.Load(typing.Sig(nil, args...).ParamsKey())
	if !ok {
		return nil, nil, &typing.UnsupportedError{Key: u.name, Args: args}
	}
	return entry.kernel, entry.sig.Return, nil
}

// Signatures returns the declared signatures in the order they were added.
func (u *UFunc) Signatures() []typing.Signature {
	sigs := make([]typing.Signature, 0, u.kernels.Size())
	for entry := range u.kernels.Values() {
		sigs = append(sigs, entry.sig)
	}
	return sigs
}
