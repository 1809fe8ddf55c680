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
	"strings"

	basefmt "github.com/nx-org/nx/base/fmt"
	"github.com/nx-org/nx/types"
)

// UnknownOperationError reports a resolution request for an operation key
// with no registered function template.
type UnknownOperationError struct {
	Key any
}

// Error returns a string description of the error.
func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %s", basefmt.String(e.Key))
}

// UnsupportedError reports argument types matching no candidate signature
// of a function template.
type UnsupportedError struct {
	Key  any
	Args []types.Type
}

// Error returns a string description of the error.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("operation %s is not supported for argument types (%s)",
		basefmt.String(e.Key), typeNames(e.Args))
}

// AmbiguousError reports two or more candidate signatures tied at the best
// rank. Candidates carries the tied signatures for diagnostics.
type AmbiguousError struct {
	Key        any
	Candidates []Signature
}

// Error returns a string description of the error.
func (e *AmbiguousError) Error() string {
	candidates := make([]string, len(e.Candidates))
	for i, sig := range e.Candidates {
		candidates[i] = sig.String()
	}
	return fmt.Sprintf("ambiguous overloading for %s: %s",
		basefmt.String(e.Key), strings.Join(candidates, " and "))
}

// NotSupportedError reports the use of a feature the typing core does not
// support, such as keyword arguments on a declared template.
type NotSupportedError struct {
	Feature string
}

// Error returns a string description of the error.
func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: not supported", e.Feature)
}

// NotImplementedError reports a resolution target with no implementation:
// an attribute with no handler, or a template declaring neither cases nor
// a resolver. Attr is empty when the target is not an attribute.
type NotImplementedError struct {
	Key  any
	Attr string
}

// Error returns a string description of the error.
func (e *NotImplementedError) Error() string {
	if e.Attr == "" {
		return fmt.Sprintf("%s: not implemented", basefmt.String(e.Key))
	}
	return fmt.Sprintf("%s.%s: not implemented", basefmt.String(e.Key), e.Attr)
}

// DuplicateError reports a registration under an already-used key.
type DuplicateError struct {
	What string
	Key  any
}

// Error returns a string description of the error.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s template for key %s", e.What, basefmt.String(e.Key))
}

func typeNames(args []types.Type) string {
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = arg.Name()
	}
	return strings.Join(names, ", ")
}
