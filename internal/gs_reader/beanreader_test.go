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

type Heater struct{}

func NewHeater() *Heater { return &Heater{} }

type ElectricHeater struct {
	Heater
}

func NewElectricHeater() *ElectricHeater { return &ElectricHeater{} }

// TestRead_ImplicitQualifier is spec scenario B.
func TestRead_ImplicitQualifier(t *testing.T) {
	d, err := Read(BeanSpec{
		Type: reflect.TypeOf(ElectricHeater{}),
		Constructors: []gs.CtorCandidate{
			{Func: reflect.ValueOf(NewElectricHeater), Visibility: gs.Exported},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "electric", d.ImplicitQualifier)
	require.Len(t, d.AssignableTypes, 2)
	assert.Equal(t, reflect.TypeOf(ElectricHeater{}), d.AssignableTypes[0])
	assert.Equal(t, reflect.TypeOf(Heater{}), d.AssignableTypes[1])
}

// TestRead_OverrideSuppressesInject is spec scenario C, exercised
// through the registry the way a generated module would populate it.
func TestRead_OverrideSuppressesInject(t *testing.T) {
	baseType := reflect.TypeOf(base{})
	childType := reflect.TypeOf(child{})

	Declare(baseType, gs.LevelDeclarations{
		InjectMethods: []gs.MethodDecl{
			{Name: "baseBaseOverride", DeclaringType: baseType},
			{Name: "baseBaseMethod", DeclaringType: baseType},
		},
	})
	Declare(childType, gs.LevelDeclarations{
		NotInject: []string{"baseBaseOverride"},
	})
	defer Declare(baseType, gs.LevelDeclarations{})
	defer Declare(childType, gs.LevelDeclarations{})

	d, err := Read(BeanSpec{
		Type: reflect.TypeOf(child{}),
		Constructors: []gs.CtorCandidate{
			{Func: reflect.ValueOf(func() *child { return &child{} }), Visibility: gs.Exported},
		},
	})
	require.NoError(t, err)

	names := make([]string, len(d.InjectMethods))
	for i, m := range d.InjectMethods {
		names[i] = m.MethodName
	}
	assert.NotContains(t, names, "baseBaseOverride")
	assert.Contains(t, names, "baseBaseMethod")
}

func TestRead_NoConstructorIsFatal(t *testing.T) {
	_, err := Read(BeanSpec{Type: reflect.TypeOf(Heater{})})
	assert.ErrorIs(t, err, gs.ErrNoConstructor)
}

func TestRead_MultipleInjectConstructorsIsFatal(t *testing.T) {
	_, err := Read(BeanSpec{
		Type: reflect.TypeOf(Heater{}),
		Constructors: []gs.CtorCandidate{
			{Func: reflect.ValueOf(NewHeater), Inject: true},
			{Func: reflect.ValueOf(NewHeater), Inject: true},
		},
	})
	assert.ErrorIs(t, err, gs.ErrNoConstructor)
}

func TestRead_SolePrivateConstructorIsNotSelectable(t *testing.T) {
	_, err := Read(BeanSpec{
		Type: reflect.TypeOf(Heater{}),
		Constructors: []gs.CtorCandidate{
			{Func: reflect.ValueOf(NewHeater), Visibility: gs.Private},
		},
	})
	assert.ErrorIs(t, err, gs.ErrNoConstructor)
}

type genericBean[T any] struct {
	Value T
}

func TestRead_GenericBeanHasNoBaseType(t *testing.T) {
	d, err := Read(BeanSpec{
		Type: reflect.TypeOf(genericBean[string]{}),
		Constructors: []gs.CtorCandidate{
			{Func: reflect.ValueOf(func() *genericBean[string] { return &genericBean[string]{} }), Visibility: gs.Exported},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, d.BaseType)
	assert.Empty(t, d.AssignableTypes)
}
