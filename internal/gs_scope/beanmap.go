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

// Package gs_scope is the runtime half of this module: CandidateEntry,
// BeanMap and BeanScope of spec §4.5-§4.6, grounded on the teacher's
// gs_core/resolving (ladder) and gs_bean (entry shape), generalized from
// bean definitions parsed out of source to plain registered instances, since
// this package never runs an annotation-processing driver.
package gs_scope

import (
	"reflect"

	"github.com/dinject/dinject/internal/gs"
)

// CandidateEntry is the runtime descriptor of one registered bean: its
// instance, priority tier, optional qualifier, the set of types it may
// be retrieved as, and the annotation names it carries for
// beans_with_annotation lookups.
type CandidateEntry struct {
	Instance        any
	Priority        gs.Priority
	Qualifier       string
	AssignableTypes []reflect.Type
	Annotations     []string
}

// mapKey is the (type, qualifier) index key of §4.5; the zero-value
// qualifier "" is the "no qualifier requested" key every entry is also
// indexed under.
type mapKey struct {
	t         reflect.Type
	qualifier string
}

// BeanMap is the read-only-after-construction index of §4.5: two
// indexes over the same entries, by (type, qualifier) and by
// annotation name, plus insertion order for list().
type BeanMap struct {
	byKey        map[mapKey][]*CandidateEntry
	byAnnotation map[string][]*CandidateEntry
	order        []*CandidateEntry
}

// NewBeanMap returns an empty BeanMap.
func NewBeanMap() *BeanMap {
	return &BeanMap{
		byKey:        make(map[mapKey][]*CandidateEntry),
		byAnnotation: make(map[string][]*CandidateEntry),
	}
}

// Register indexes one entry under every element of its assignable
// types (once unqualified, once qualified if it carries a qualifier)
// and under each annotation name it declares. Registration order is
// preserved for list() and list_by_priority()'s default ordering.
func (m *BeanMap) Register(e *CandidateEntry) {
	for _, t := range e.AssignableTypes {
		m.byKey[mapKey{t, ""}] = append(m.byKey[mapKey{t, ""}], e)
		if e.Qualifier != "" {
			m.byKey[mapKey{t, e.Qualifier}] = append(m.byKey[mapKey{t, e.Qualifier}], e)
		}
	}
	for _, a := range e.Annotations {
		m.byAnnotation[a] = append(m.byAnnotation[a], e)
	}
	m.order = append(m.order, e)
}

// Candidates returns the entries registered under (t, qualifier), or
// under (t, "") when qualifier is empty.
func (m *BeanMap) Candidates(t reflect.Type, qualifier string) []*CandidateEntry {
	return m.byKey[mapKey{t, qualifier}]
}

// All returns every entry assignable to t, in insertion order.
func (m *BeanMap) All(t reflect.Type) []*CandidateEntry {
	return m.byKey[mapKey{t, ""}]
}

// WithAnnotation returns every entry carrying the named annotation.
func (m *BeanMap) WithAnnotation(name string) []*CandidateEntry {
	return m.byAnnotation[name]
}
