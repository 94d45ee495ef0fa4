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

	"github.com/dinject/dinject/internal/gs"
)

// Collector accumulates injection points across a hierarchy walk with
// override suppression, the InjectionCollector of spec §4.3. The
// caller (BeanReader) invokes AddLevel once per type in the walk, most
// -derived first, with that level's own direct declarations.
type Collector struct {
	fields        []gs.FieldPoint // collection order: most-derived level first
	methodOrder   []string        // method keys, most-derived level first
	methods       map[string]gs.MethodPoint
	notInject     map[string]bool
	postConstruct string
	preDestroy    string
	factories     []gs.MethodPoint // collection order, never reversed
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		methods:   make(map[string]gs.MethodPoint),
		notInject: make(map[string]bool),
	}
}

// AddFields appends one level's directly declared @Inject fields.
func (c *Collector) AddFields(fields []gs.FieldPoint) {
	c.fields = append(c.fields, fields...)
}

// AddLevel folds in one hierarchy level's direct method-shaped
// declarations, applying the override-suppression policy of §4.3:
// a derived level's plain override (declared in NotInject) suppresses
// a base level's @Inject method of the same name, because the walk
// visits the derived level first.
func (c *Collector) AddLevel(levelType reflect.Type, decl gs.LevelDeclarations, isFactory bool) {
	for _, md := range decl.InjectMethods {
		key := md.Name
		if c.notInject[key] {
			continue
		}
		if _, exists := c.methods[key]; exists {
			continue
		}
		if md.Visibility == gs.Private {
			c.notInject[key] = true
			continue
		}
		c.methods[key] = gs.MethodPoint{
			MethodName:    md.Name,
			Parameters:    md.Parameters,
			DeclaringType: levelType,
		}
		c.methodOrder = append(c.methodOrder, key)
	}
	for _, name := range decl.NotInject {
		c.notInject[name] = true
	}

	if c.postConstruct == "" && decl.PostConstruct != "" {
		c.postConstruct = decl.PostConstruct
	}
	if c.preDestroy == "" && decl.PreDestroy != "" {
		c.preDestroy = decl.PreDestroy
	}

	if isFactory {
		for _, md := range decl.FactoryMethods {
			c.factories = append(c.factories, gs.MethodPoint{
				MethodName:    md.Name,
				Parameters:    md.Parameters,
				DeclaringType: levelType,
				Qualifier:     md.Qualifier,
			})
		}
	}
}

// Fields returns the collected @Inject fields in base-to-derived
// order (reversed from collection order, per spec §4.4 step 4).
func (c *Collector) Fields() []gs.FieldPoint {
	return reverseFields(c.fields)
}

// Methods returns the collected @Inject methods in base-to-derived
// order.
func (c *Collector) Methods() []gs.MethodPoint {
	out := make([]gs.MethodPoint, 0, len(c.methodOrder))
	for i := len(c.methodOrder) - 1; i >= 0; i-- {
		out = append(out, c.methods[c.methodOrder[i]])
	}
	return out
}

// Factories returns the collected factory methods in collection order.
func (c *Collector) Factories() []gs.MethodPoint {
	return c.factories
}

// PostConstruct returns the nearest-declaration-wins post-construct
// method name, or "" if none was declared.
func (c *Collector) PostConstruct() string {
	return c.postConstruct
}

// PreDestroy returns the nearest-declaration-wins pre-destroy method
// name, or "" if none was declared.
func (c *Collector) PreDestroy() string {
	return c.preDestroy
}

func reverseFields(in []gs.FieldPoint) []gs.FieldPoint {
	out := make([]gs.FieldPoint, len(in))
	for i, f := range in {
		out[len(in)-1-i] = f
	}
	return out
}
