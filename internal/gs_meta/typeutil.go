/*
 * Copyright 2012-2024 the original author or authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package gs_meta normalizes type identity and probes struct-tag
// "annotations", grounded on the teacher's util/type.go (TypeName,
// IsFuncType, IsStructPtr) generalized from a single TypeName helper
// into the unwrap/generic-detection pair the spec's TypeNameUtil and
// AnnotationProbe require.
package gs_meta

import (
	"reflect"
	"strings"
)

// objectType is the Go analogue of the root object type every
// superclass chain terminates at: the empty interface. A supertype
// walk stops here, same as the spec's "root object type" stop
// condition.
var objectType = reflect.TypeOf((*interface{})(nil)).Elem()

// TypeName returns a fully qualified name consisting of package path
// and type name, unwrapping pointers the way the teacher's
// util.TypeName does.
func TypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if pkgPath := t.PkgPath(); pkgPath != "" {
		return pkgPath + "." + t.Name()
	}
	return t.String()
}

// IsGeneric reports whether t is an instantiated generic type - the Go
// analogue of spec's "name contains a type-argument syntax (`<` before
// end)". Instantiated generics carry their type arguments in brackets
// in reflect's Name(), e.g. "Provider[string]".
func IsGeneric(t reflect.Type) bool {
	base := t
	for base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	name := base.Name()
	if name == "" {
		return false
	}
	i := strings.IndexByte(name, '[')
	return i >= 0 && i < len(name)-1
}

// IsRootObject reports whether t is the root object type that
// terminates a superclass walk.
func IsRootObject(t reflect.Type) bool {
	return t == objectType
}

// providerTypePrefix is the name prefix of an instantiated Provider[T]
// type; used only to recognize the shape, never invoked reflectively
// at runtime - the unwrap happens purely on the type, at generation time.
const providerTypePrefix = "Provider["

// UnwrapProvider returns (T, true) when t is the Go analogue of
// Provider<T> (a defined func() T type named "Provider[...]"), or
// (t, false) when t does not have that shape.
func UnwrapProvider(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Func {
		return t, false
	}
	if !strings.HasPrefix(t.Name(), providerTypePrefix) {
		return t, false
	}
	if t.NumIn() != 0 || t.NumOut() != 1 {
		return t, false
	}
	return t.Out(0), true
}
