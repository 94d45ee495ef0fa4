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

package gs_meta

import "reflect"

// Struct tag keys that stand in for the annotation surface of spec §6.
// "inject" <-> @Inject, "name" <-> @Named(value), "optional" <-> @Nullable.
const (
	TagInject   = "inject"
	TagName     = "name"
	TagOptional = "optional"
)

// HasInject reports whether a struct field carries the inject tag,
// i.e. whether it is an @Inject field per spec §4.2.
func HasInject(f reflect.StructField) bool {
	v, ok := f.Tag.Lookup(TagInject)
	return ok && v != "false"
}

// Qualifier returns the explicit @Named qualifier of a struct field,
// or "" when none is declared.
func Qualifier(f reflect.StructField) string {
	return f.Tag.Get(TagName)
}

// IsNullable reports whether a struct field carries the @Nullable tag.
func IsNullable(f reflect.StructField) bool {
	v, ok := f.Tag.Lookup(TagOptional)
	return ok && v != "false"
}
