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

type base struct{}
type child struct{ base }

// TestCollector_OverrideSuppressesInject is spec scenario C: Base
// declares @Inject baseBaseOverride, Child overrides it without
// @Inject. Methods() must exclude baseBaseOverride for Child but keep
// an unrelated @Inject method declared only on Base.
func TestCollector_OverrideSuppressesInject(t *testing.T) {
	c := NewCollector()

	baseType := reflect.TypeOf(base{})
	childType := reflect.TypeOf(child{})

	// Walk order is most-derived first.
	c.AddLevel(childType, gs.LevelDeclarations{
		NotInject: []string{"baseBaseOverride"},
	}, false)
	c.AddLevel(baseType, gs.LevelDeclarations{
		InjectMethods: []gs.MethodDecl{
			{Name: "baseBaseOverride", DeclaringType: baseType},
			{Name: "baseBaseMethod", DeclaringType: baseType},
		},
	}, false)

	methods := c.Methods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.MethodName
	}
	assert.NotContains(t, names, "baseBaseOverride")
	assert.Contains(t, names, "baseBaseMethod")
}

func TestCollector_DerivedInjectWins(t *testing.T) {
	c := NewCollector()

	baseType := reflect.TypeOf(base{})
	childType := reflect.TypeOf(child{})

	c.AddLevel(childType, gs.LevelDeclarations{
		InjectMethods: []gs.MethodDecl{{Name: "shared", DeclaringType: childType}},
	}, false)
	c.AddLevel(baseType, gs.LevelDeclarations{
		InjectMethods: []gs.MethodDecl{{Name: "shared", DeclaringType: baseType}},
	}, false)

	methods := c.Methods()
	require.Len(t, methods, 1)
	assert.Equal(t, childType, methods[0].DeclaringType)
}

func TestCollector_PrivateInjectMethodSuppressed(t *testing.T) {
	c := NewCollector()
	childType := reflect.TypeOf(child{})

	c.AddLevel(childType, gs.LevelDeclarations{
		InjectMethods: []gs.MethodDecl{{Name: "hidden", Visibility: gs.Private, DeclaringType: childType}},
	}, false)

	assert.Empty(t, c.Methods())
}

func TestCollector_FieldsReversedToBaseFirst(t *testing.T) {
	c := NewCollector()
	// Collection order mirrors the walk: most-derived level first.
	c.AddFields([]gs.FieldPoint{{FieldName: "derivedField"}})
	c.AddFields([]gs.FieldPoint{{FieldName: "baseField"}})

	fields := c.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "baseField", fields[0].FieldName)
	assert.Equal(t, "derivedField", fields[1].FieldName)
}

func TestCollector_NearestLifecycleWins(t *testing.T) {
	c := NewCollector()
	childType := reflect.TypeOf(child{})
	baseType := reflect.TypeOf(base{})

	c.AddLevel(childType, gs.LevelDeclarations{PostConstruct: "init"}, false)
	c.AddLevel(baseType, gs.LevelDeclarations{PostConstruct: "baseInit"}, false)

	assert.Equal(t, "init", c.PostConstruct())
}

func TestCollector_FactoryMethodsOnlyWhenFactory(t *testing.T) {
	c := NewCollector()
	childType := reflect.TypeOf(child{})

	c.AddLevel(childType, gs.LevelDeclarations{
		FactoryMethods: []gs.MethodDecl{{Name: "makeThing"}},
	}, false)
	assert.Empty(t, c.Factories(), "not a factory type, factory methods must not be collected")

	c2 := NewCollector()
	c2.AddLevel(childType, gs.LevelDeclarations{
		FactoryMethods: []gs.MethodDecl{{Name: "makeThing"}},
	}, true)
	require.Len(t, c2.Factories(), 1)
	assert.Equal(t, "makeThing", c2.Factories()[0].MethodName)
}
