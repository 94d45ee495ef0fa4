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

package gs_reader

import (
	"reflect"
	"unicode"

	"github.com/pkg/errors"

	"github.com/dinject/dinject/internal/gs"
	"github.com/dinject/dinject/internal/gs_meta"
)

// ReadField is the FieldReader of spec §4.2: it captures a struct
// field's declared type, explicit qualifier and nullability.
func ReadField(f reflect.StructField, declaringType reflect.Type) gs.FieldPoint {
	return gs.FieldPoint{
		FieldName:     f.Name,
		DeclaredType:  f.Type,
		Qualifier:     gs_meta.Qualifier(f),
		Nullable:      gs_meta.IsNullable(f),
		DeclaringType: declaringType,
	}
}

// VisibilityOf returns Exported for an identifier starting with an
// upper-case letter, Private otherwise - the Go analogue of spec's
// public/non-private/private constructor visibility.
func VisibilityOf(name string) gs.Visibility {
	for _, r := range name {
		if unicode.IsUpper(r) {
			return gs.Exported
		}
		break
	}
	return gs.Private
}

// CheckSignature verifies that the parameters declared for a
// constructor or injection method (the data an annotation-processing
// driver would have extracted from source) match the number of inputs
// the function's reflect.Type actually has - the MethodSignatureReader
// of spec §4.2, reduced to the part Go can still check at the type
// level since Go carries no per-parameter tags to read back.
func CheckSignature(fn reflect.Value, declared []gs.Param) error {
	if fn.Kind() != reflect.Func {
		return errors.New("not a function value")
	}
	t := fn.Type()
	n := t.NumIn()
	if t.IsVariadic() {
		n--
	}
	if len(declared) != n {
		return errors.Errorf("declared %d parameters, function has %d", len(declared), n)
	}
	for i, p := range declared {
		if p.Type == nil {
			continue
		}
		in := t.In(i)
		if p.Type != in {
			return errors.Errorf("parameter %d: declared type %s does not match function type %s", i, p.Type, in)
		}
	}
	return nil
}
