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

package gs_scope

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinject/dinject/internal/gs"
)

type pumpIface interface{ Pump() }

type normalPump struct{}

func (normalPump) Pump() {}

func TestBeanMap_RegisterAndCandidates(t *testing.T) {
	m := NewBeanMap()
	pumpType := reflect.TypeOf((*pumpIface)(nil)).Elem()

	e := &CandidateEntry{
		Instance:        normalPump{},
		Priority:        gs.Normal,
		Qualifier:       "primary",
		AssignableTypes: []reflect.Type{pumpType},
		Annotations:     []string{"Singleton"},
	}
	m.Register(e)

	assert.Equal(t, []*CandidateEntry{e}, m.Candidates(pumpType, ""))
	assert.Equal(t, []*CandidateEntry{e}, m.Candidates(pumpType, "primary"))
	assert.Empty(t, m.Candidates(pumpType, "other"))
	assert.Equal(t, []*CandidateEntry{e}, m.All(pumpType))
	assert.Equal(t, []*CandidateEntry{e}, m.WithAnnotation("Singleton"))
	assert.Empty(t, m.WithAnnotation("Factory"))
}

func TestBeanMap_UnqualifiedEntryNotIndexedUnderQualifier(t *testing.T) {
	m := NewBeanMap()
	pumpType := reflect.TypeOf((*pumpIface)(nil)).Elem()

	e := &CandidateEntry{Instance: normalPump{}, AssignableTypes: []reflect.Type{pumpType}}
	m.Register(e)

	require.Empty(t, m.Candidates(pumpType, "x"))
	assert.Len(t, m.Candidates(pumpType, ""), 1)
}
