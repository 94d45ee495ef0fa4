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

// ScopeConfig is the ambient configuration a BeanScope is built with.
// The zero value is intentionally NOT the spec-exact default: Go zero
// values default StrictAmbiguity to false, which would silently pick
// an arbitrary candidate on ambiguity. NewBuilder sets
// DefaultScopeConfig explicitly so the spec's error-on-ambiguity
// behavior is what callers get unless they opt into a loaded
// ScopeConfig that says otherwise.
type ScopeConfig struct {
	// StrictAmbiguity, when true, raises the ladder's Multiple* errors
	// on an ambiguous tier. When false, the first candidate in that
	// tier is returned instead - an operational escape hatch, not the
	// behavior described by spec §4.6.
	StrictAmbiguity bool

	// DefaultPriority overrides gs.DefaultPriorityValue for beans that
	// declare no priority. Zero means "use the package default".
	DefaultPriority int

	// DefaultLifecyclePanic, when true, recovers a panicking lifecycle
	// callback and reports it as an error instead of letting it unwind
	// out of Start/Close.
	DefaultLifecyclePanic bool
}

// DefaultScopeConfig is the configuration spec §4.6 describes: strict
// ambiguity errors, the package's default priority value, and panics
// left to propagate.
func DefaultScopeConfig() ScopeConfig {
	return ScopeConfig{StrictAmbiguity: true}
}

// Builder implements the Builder -> Scope contract of spec §6: a
// generated module populates a Builder with entries and lifecycle
// callbacks, then calls Build once to obtain an immutable-map,
// ready-to-Start BeanScope.
type Builder struct {
	beanMap   *BeanMap
	lifecycle []LifecycleEntry
	cfg       ScopeConfig
}

// NewBuilder returns a Builder using the spec-exact default
// configuration. Use NewBuilderWithConfig to apply a loaded
// ScopeConfig instead.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultScopeConfig())
}

// NewBuilderWithConfig returns a Builder using cfg.
func NewBuilderWithConfig(cfg ScopeConfig) *Builder {
	return &Builder{beanMap: NewBeanMap(), cfg: cfg}
}

// Register adds one bean entry to the scope's index.
func (b *Builder) Register(e *CandidateEntry) *Builder {
	b.beanMap.Register(e)
	return b
}

// RegisterLifecycle appends one bean's lifecycle callbacks to the
// ordered lifecycle list.
func (b *Builder) RegisterLifecycle(e LifecycleEntry) *Builder {
	b.lifecycle = append(b.lifecycle, e)
	return b
}

// Build finalizes the BeanScope. The returned scope's BeanMap is
// read-only from this point on.
func (b *Builder) Build() *BeanScope {
	return newBeanScope(b.beanMap, b.lifecycle, b.cfg)
}
