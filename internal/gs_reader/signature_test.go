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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinject/dinject/internal/gs"
)

type widget struct {
	Name string `inject:"true" name:"primary"`
	Opt  string `inject:"true" optional:"true"`
}

func TestReadField(t *testing.T) {
	f, ok := reflect.TypeOf(widget{}).FieldByName("Name")
	require.True(t, ok)

	fp := ReadField(f, reflect.TypeOf(widget{}))
	assert.Equal(t, "Name", fp.FieldName)
	assert.Equal(t, "primary", fp.Qualifier)
	assert.False(t, fp.Nullable)
}

func TestVisibilityOf(t *testing.T) {
	assert.Equal(t, gs.Exported, VisibilityOf("NewWidget"))
	assert.Equal(t, gs.Private, VisibilityOf("newWidget"))
}

func TestCheckSignature(t *testing.T) {
	fn := reflect.ValueOf(func(a string, b int) {})

	err := CheckSignature(fn, []gs.Param{
		{Type: reflect.TypeOf("")},
		{Type: reflect.TypeOf(0)},
	})
	assert.NoError(t, err)

	err = CheckSignature(fn, []gs.Param{{Type: reflect.TypeOf("")}})
	assert.Error(t, err, "declared parameter count must match the function's")

	err = CheckSignature(fn, []gs.Param{
		{Type: reflect.TypeOf(0)},
		{Type: reflect.TypeOf(0)},
	})
	assert.Error(t, err, "declared parameter type must match the function's")
}

func TestCheckSignature_Variadic(t *testing.T) {
	fn := reflect.ValueOf(func(a string, rest ...int) {})
	err := CheckSignature(fn, []gs.Param{{Type: reflect.TypeOf("")}})
	assert.NoError(t, err, "variadic trailing parameter is not required in the declared list")
}
