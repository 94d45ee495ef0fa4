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

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type probeTarget struct {
	Plain    string
	Injected string `inject:"true"`
	Named    string `inject:"true" name:"primary"`
	Optional string `inject:"true" optional:"true"`
	Disabled string `inject:"false"`
}

func fieldOf(t *testing.T, name string) reflect.StructField {
	t.Helper()
	f, ok := reflect.TypeOf(probeTarget{}).FieldByName(name)
	if !ok {
		t.Fatalf("no such field %s", name)
	}
	return f
}

func TestHasInject(t *testing.T) {
	assert.False(t, HasInject(fieldOf(t, "Plain")))
	assert.True(t, HasInject(fieldOf(t, "Injected")))
	assert.False(t, HasInject(fieldOf(t, "Disabled")), `inject:"false" is not an injection point`)
}

func TestQualifier(t *testing.T) {
	assert.Equal(t, "", Qualifier(fieldOf(t, "Injected")))
	assert.Equal(t, "primary", Qualifier(fieldOf(t, "Named")))
}

func TestIsNullable(t *testing.T) {
	assert.False(t, IsNullable(fieldOf(t, "Injected")))
	assert.True(t, IsNullable(fieldOf(t, "Optional")))
}
