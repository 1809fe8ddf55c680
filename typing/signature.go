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

	"github.com/nx-org/nx/types"
)

// Signature is one declared overload: an ordered tuple of parameter types
// and a return type. Signatures are immutable by convention: neither the
// typing core nor callers may mutate Params after construction.
//
// Signature identity is defined on the parameter tuple only: Equal and
// ParamsKey both ignore the return type. Two overloads with identical
// parameters and different return types are therefore indistinguishable
// as keys, and within one template's case list they tie at every rank.
// Registration APIs leave avoiding this to the caller.
type Signature struct {
	Return types.Type
	Params []types.Type
}

// Sig returns the signature of a call accepting the given parameter types
// and returning ret.
func Sig(ret types.Type, params ...types.Type) Signature {
	return Signature{Return: ret, Params: params}
}

// Equal returns true if both signatures have the same parameter tuple.
// The return types are ignored.
func (s Signature) Equal(other Signature) bool {
	if len(s.Params) != len(other.Params) {
		return false
	}
	for i, p := range s.Params {
		if p != other.Params[i] {
			return false
		}
	}
	return true
}

// ParamsKey returns a canonical string of the parameter tuple, usable as
// a map key in place of the (non-comparable) parameter slice. It relies
// on type names being unique within a catalog.
func (s Signature) ParamsKey() string {
	return "(" + typeNames(s.Params) + ")"
}

// String returns the signature as "(params) -> return".
func (s Signature) String() string {
	ret := "none"
	if s.Return != nil {
		ret = s.Return.Name()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s", s.ParamsKey(), ret)
	return b.String()
}
