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

// Package fmt provides utility methods for building string representations of nx objects.
package fmt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Func returns the name of a function.
func Func(f any) string {
	if f == nil {
		return "<nil>"
	}
	return runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()
}

// List joins the string representations of a slice of objects with commas.
func List[T any](xs []T) string {
	ss := make([]string, len(xs))
	for i, x := range xs {
		ss[i] = String(x)
	}
	return strings.Join(ss, ", ")
}

// String returns a human-friendly debugging string representation of an nx object.
func String(x any) string {
	if x == nil {
		return "nil"
	}
	strng, ok := x.(fmt.Stringer)
	if ok {
		return strng.String()
	}
	if s, ok := x.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", x)
}
