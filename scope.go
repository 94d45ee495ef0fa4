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

	"github.com/pkg/errors"

	"github.com/dinject/dinject/internal/gs_scope"
)

type (
	// CandidateEntry is the runtime descriptor of one registered bean.
	CandidateEntry = gs_scope.CandidateEntry
	// LifecycleEntry binds one bean's post-construct/pre-destroy callbacks.
	LifecycleEntry = gs_scope.LifecycleEntry
	// ScopeConfig is the ambient configuration a BeanScope is built with.
	ScopeConfig = gs_scope.ScopeConfig
	// PriorityProvider lets a bean declare its own list_by_priority value
	// without the scope reflecting on an arbitrary priority annotation.
	PriorityProvider = gs_scope.PriorityProvider
)

// DefaultScopeConfig is the configuration this module's resolution
// ladder is specified against: ambiguous ladder tiers raise errors.
func DefaultScopeConfig() ScopeConfig {
	return gs_scope.DefaultScopeConfig()
}

// Builder implements the Builder -> Scope contract: a generated
// wiring module registers beans and lifecycle entries, then calls
// Build once.
type Builder struct {
	inner *gs_scope.Builder
}

// NewBuilder returns a Builder using the spec-exact default
// configuration (ambiguous ladder tiers raise errors).
func NewBuilder() *Builder {
	return &Builder{inner: gs_scope.NewBuilder()}
}

// NewBuilderWithConfig returns a Builder using cfg, typically obtained
// from config.Load.
func NewBuilderWithConfig(cfg ScopeConfig) *Builder {
	return &Builder{inner: gs_scope.NewBuilderWithConfig(cfg)}
}

// Register adds one bean entry to the scope being built.
func (b *Builder) Register(e *CandidateEntry) *Builder {
	b.inner.Register(e)
	return b
}

// RegisterLifecycle appends one bean's lifecycle callbacks to the
// ordered lifecycle list.
func (b *Builder) RegisterLifecycle(e LifecycleEntry) *Builder {
	b.inner.RegisterLifecycle(e)
	return b
}

// Build finalizes the BeanScope.
func (b *Builder) Build() *BeanScope {
	return &BeanScope{inner: b.inner.Build()}
}

// NewCandidate builds a CandidateEntry for instance, typed so callers
// never construct the struct by hand with a mismatched Instance field.
func NewCandidate[T any](instance T, priority Priority, qualifier string, assignableTypes []reflect.Type, annotations []string) *CandidateEntry {
	return &CandidateEntry{
		Instance:        instance,
		Priority:        priority,
		Qualifier:       qualifier,
		AssignableTypes: assignableTypes,
		Annotations:     annotations,
	}
}

// BeanScope is the runtime container: the lookup ladder, priority
// listing, and lifecycle start/close under a single exclusion lock.
type BeanScope struct {
	inner *gs_scope.BeanScope
}

// Get resolves a single T via the Supplied -> Primary -> Normal ->
// Secondary ladder (§4.6), erroring on ambiguity within a populated
// tier unless the scope was built with a lenient ScopeConfig.
func Get[T any](s *BeanScope, qualifier string) (T, error) {
	var zero T
	entry, err := s.inner.Get(typeOf[T](), qualifier)
	if err != nil {
		return zero, err
	}
	v, ok := entry.Instance.(T)
	if !ok {
		return zero, errors.Errorf("bean registered under %T does not implement requested type", entry.Instance)
	}
	return v, nil
}

// Candidate returns the resolved entry without unwrapping its
// instance, useful when a caller wants the priority/qualifier metadata
// alongside the bean.
func Candidate[T any](s *BeanScope, qualifier string) (*CandidateEntry, error) {
	return s.inner.Candidate(typeOf[T](), qualifier)
}

// List returns every bean assignable to T, in registration order.
func List[T any](s *BeanScope) []T {
	entries := s.inner.List(typeOf[T]())
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if v, ok := e.Instance.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// ListByPriority returns a stable permutation of List(T), sorted
// ascending by declared priority when at least one bean declares one.
func ListByPriority[T any](s *BeanScope) ([]T, error) {
	entries, err := s.inner.ListByPriority(typeOf[T]())
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if v, ok := e.Instance.(T); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// BeansWithAnnotation returns every registered bean carrying the named
// annotation.
func (s *BeanScope) BeansWithAnnotation(name string) []any {
	entries := s.inner.BeansWithAnnotation(name)
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.Instance
	}
	return out
}

// Start invokes post-construct on every registered bean, in insertion
// order, under the scope's exclusion lock.
func (s *BeanScope) Start() error {
	return s.inner.Start()
}

// Close invokes pre-destroy on every registered bean, in insertion
// order, under the exclusion lock. A second and later call is a
// silent no-op.
func (s *BeanScope) Close() error {
	return s.inner.Close()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
