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
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/dinject/dinject/internal/gs"
)

// PriorityProvider is the capability interface spec §9's design note
// substitutes for reflecting on an arbitrary priority annotation's
// value: a bean that wants to participate in list_by_priority ordering
// implements this instead of being probed reflectively.
type PriorityProvider interface {
	// BeanPriority returns the bean's declared priority value, or a
	// non-nil error (wrapping gs.ErrPriorityMalformed) if the value
	// cannot be determined.
	BeanPriority() (int, error)
}

// LifecycleEntry is one bean's lifecycle callbacks as the generated
// builder would bind them: direct closures over the bean instance, not
// reflective method calls.
type LifecycleEntry struct {
	Bean          any
	PostConstruct func() error
	PreDestroy    func() error
}

// BeanScope is the runtime container of §4.6: the lookup ladder,
// priority-sorted listing, and single-exclusion-lock lifecycle
// start/close. The BeanMap is read-only after construction, so get/
// list/candidate need no lock; only closed_flag and the lifecycle walk
// are guarded.
type BeanScope struct {
	beanMap   *BeanMap
	lifecycle []LifecycleEntry
	cfg       ScopeConfig

	mu     sync.Mutex
	closed bool
}

// newBeanScope is unexported; callers build a scope through Builder.
func newBeanScope(m *BeanMap, lifecycle []LifecycleEntry, cfg ScopeConfig) *BeanScope {
	return &BeanScope{beanMap: m, lifecycle: lifecycle, cfg: cfg}
}

// Get implements the resolution ladder of §4.6: Supplied short-
// circuits; otherwise Primary is examined before Normal, then
// Secondary, each populated tier deciding the outcome outright
// (one candidate wins, more than one is that tier's ambiguity error).
func (s *BeanScope) Get(t reflect.Type, qualifier string) (*CandidateEntry, error) {
	candidates := s.beanMap.Candidates(t, qualifier)
	if len(candidates) == 0 {
		return nil, errors.Wrapf(gs.ErrNoCandidate, "type %s qualifier %q", t, qualifier)
	}

	var supplied, primary, normal, secondary []*CandidateEntry
	for _, c := range candidates {
		switch c.Priority {
		case gs.Supplied:
			supplied = append(supplied, c)
		case gs.Primary:
			primary = append(primary, c)
		case gs.Secondary:
			secondary = append(secondary, c)
		default:
			normal = append(normal, c)
		}
	}

	if len(supplied) > 0 {
		return supplied[0], nil
	}
	if len(primary) == 1 {
		return primary[0], nil
	}
	if len(primary) > 1 {
		if !s.cfg.StrictAmbiguity {
			return primary[0], nil
		}
		return nil, errors.Wrapf(gs.ErrMultiplePrimary, "type %s qualifier %q", t, qualifier)
	}
	if len(normal) == 1 {
		return normal[0], nil
	}
	if len(normal) > 1 {
		if !s.cfg.StrictAmbiguity {
			return normal[0], nil
		}
		return nil, errors.Wrapf(gs.ErrMultipleNormal, "type %s qualifier %q", t, qualifier)
	}
	if len(secondary) == 1 {
		return secondary[0], nil
	}
	if len(secondary) > 1 {
		if !s.cfg.StrictAmbiguity {
			return secondary[0], nil
		}
		return nil, errors.Wrapf(gs.ErrMultipleSecondary, "type %s qualifier %q", t, qualifier)
	}
	return nil, errors.Wrapf(gs.ErrNoCandidate, "type %s qualifier %q", t, qualifier)
}

// Candidate returns the same entry and error as Get: the
// candidate(type, qualifier) form of the scope's lookup surface.
func (s *BeanScope) Candidate(t reflect.Type, qualifier string) (*CandidateEntry, error) {
	return s.Get(t, qualifier)
}

// List returns every bean assignable to t, in registration order.
func (s *BeanScope) List(t reflect.Type) []*CandidateEntry {
	return s.beanMap.All(t)
}

// BeansWithAnnotation returns every bean carrying the named annotation.
func (s *BeanScope) BeansWithAnnotation(name string) []*CandidateEntry {
	return s.beanMap.WithAnnotation(name)
}

// ListByPriority implements list_by_priority: a stable permutation of
// List(t). If no entry implements PriorityProvider successfully,
// insertion order is preserved; otherwise the list is stable-sorted
// ascending by declared priority, with cfg.DefaultPriority (or the
// package default) standing in for entries that don't implement it.
func (s *BeanScope) ListByPriority(t reflect.Type) ([]*CandidateEntry, error) {
	entries := s.beanMap.All(t)
	values := make([]int, len(entries))
	anyDeclared := false

	defaultPriority := s.cfg.DefaultPriority
	if defaultPriority == 0 {
		defaultPriority = gs.DefaultPriorityValue
	}

	for i, e := range entries {
		values[i] = defaultPriority
		pp, ok := e.Instance.(PriorityProvider)
		if !ok {
			continue
		}
		v, err := pp.BeanPriority()
		if err != nil {
			return nil, errors.Wrapf(gs.ErrPriorityMalformed, "bean %s: %v", fmt.Sprintf("%T", e.Instance), err)
		}
		values[i] = v
		anyDeclared = true
	}

	if !anyDeclared {
		return entries, nil
	}

	out := make([]*CandidateEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := values[indexOf(entries, out[i])], values[indexOf(entries, out[j])]
		return vi < vj
	})
	return out, nil
}

func indexOf(entries []*CandidateEntry, target *CandidateEntry) int {
	for i, e := range entries {
		if e == target {
			return i
		}
	}
	return -1
}

// Start invokes PostConstruct on every lifecycle entry in insertion
// order, under the scope's exclusion lock. A callback error is returned
// wrapped with the bean's type (errors.Is still matches the original);
// Start stops at the first failing callback.
func (s *BeanScope) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.lifecycle {
		if e.PostConstruct == nil {
			continue
		}
		if err := s.runHook(e.PostConstruct); err != nil {
			return errors.Wrapf(err, "post-construct %T", e.Bean)
		}
	}
	return nil
}

// Close marks the scope closed and invokes PreDestroy on every
// lifecycle entry in the same insertion order (not reversed), under
// the exclusion lock. The closed flag is set before any callback runs
// so a callback cannot re-enter Close. A second and later call is a
// silent no-op (spec §7 DoubleClose).
func (s *BeanScope) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var errs []string
	for _, e := range s.lifecycle {
		if e.PreDestroy == nil {
			continue
		}
		if err := s.runHook(e.PreDestroy); err != nil {
			errs = append(errs, fmt.Sprintf("%T: %v", e.Bean, err))
		}
	}
	if len(errs) > 0 {
		return errors.Errorf("pre-destroy errors: %v", errs)
	}
	return nil
}

// runHook invokes a lifecycle callback, optionally converting a panic
// into an error per cfg.DefaultLifecyclePanic rather than letting it
// unwind past the scope.
func (s *BeanScope) runHook(hook func() error) (err error) {
	if s.cfg.DefaultLifecyclePanic {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("lifecycle callback panicked: %v", r)
			}
		}()
	}
	return hook()
}
