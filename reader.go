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

package dinject

import (
	"reflect"

	"github.com/dinject/dinject/internal/gs_reader"
)

// BeanSpec is what a driver hands the reader about one bean type: its
// own type, any constructors declared directly on it, whether it is
// itself a factory type, and interfaces it satisfies that embedding
// does not already expose.
type BeanSpec = gs_reader.BeanSpec

// ReadBean walks spec.Type's embedded-field chain and returns its
// normalized BeanDescriptor, per the reader contract of this module.
func ReadBean(spec BeanSpec) (*BeanDescriptor, error) {
	return gs_reader.Read(spec)
}

// ReadField captures one struct field's injection point: declared
// type, explicit qualifier, and nullability.
func ReadField(f reflect.StructField, declaringType reflect.Type) FieldPoint {
	return gs_reader.ReadField(f, declaringType)
}

// Declare registers the method-shaped declarations a hierarchy level
// exposes directly: its @Inject methods, the names it re-declares
// without @Inject (suppressing an inherited @Inject method of the
// same name), its lifecycle hook names, and its factory methods. Call
// this once per bean/supertype type, typically from an init function
// next to the type's own definition.
func Declare(t reflect.Type, decl LevelDeclarations) {
	gs_reader.Declare(t, decl)
}

// VisibilityOf returns Exported for an identifier starting with an
// upper-case letter, Private otherwise.
func VisibilityOf(name string) Visibility {
	return gs_reader.VisibilityOf(name)
}

// CheckSignature verifies that declared parameters match a
// constructor or injection method's actual function signature.
func CheckSignature(fn reflect.Value, declared []Param) error {
	return gs_reader.CheckSignature(fn, declared)
}
