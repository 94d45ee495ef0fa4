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

// Package gs_reader is the BeanReader of spec §4.4: it walks one bean
// type and its embedded-field "superclass" chain, choosing a
// constructor, collecting injection points with override suppression,
// and computing the implicit qualifier and assignable-type set.
package gs_reader

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/dinject/dinject/internal/gs"
	"github.com/dinject/dinject/internal/gs_meta"
)

// BeanSpec is everything the (out-of-scope) driver would hand the
// reader about one bean: its own type, the constructors declared
// directly on it, whether it is itself a factory type, and any
// interfaces it satisfies that are not expressed through embedding
// (Go cannot enumerate "all interfaces this type implements" by
// reflection, so these are supplied explicitly, the same way the
// teacher's BeanDefinition.SetExport works).
type BeanSpec struct {
	Type         reflect.Type
	Exports      []reflect.Type
	Factory      bool
	Constructors []gs.CtorCandidate
}

// Read drives the walk described in spec §4.4 and returns the bean's
// descriptor, or an error for the fatal conditions of §7.
func Read(spec BeanSpec) (*gs.BeanDescriptor, error) {
	rootType, _ := gs_meta.UnwrapProvider(spec.Type)
	for rootType.Kind() == reflect.Ptr {
		rootType = rootType.Elem()
	}

	d := &gs.BeanDescriptor{}
	collector := NewCollector()

	if !gs_meta.IsGeneric(rootType) {
		d.BaseType = rootType
		d.AssignableTypes = append(d.AssignableTypes, rootType)
	}

	collectLevel(collector, d, rootType, spec.Factory)

	cur := rootType
	first := true
	for {
		superField, ok := directSuper(cur)
		if !ok {
			break
		}
		superType, _ := gs_meta.UnwrapProvider(superField.Type)
		for superType.Kind() == reflect.Ptr {
			superType = superType.Elem()
		}
		if gs_meta.IsRootObject(superType) {
			break
		}

		if first {
			d.ImplicitQualifier = implicitQualifier(rootType, superType)
			first = false
		}

		if !gs_meta.IsGeneric(superType) {
			appendAssignable(d, superType)
		}
		collectLevel(collector, d, superType, spec.Factory)

		cur = superType
	}

	for _, e := range spec.Exports {
		appendAssignable(d, e)
	}

	ctor, err := chooseConstructor(rootType, spec.Constructors)
	if err != nil {
		return nil, gs.WrapBean(err, gs_meta.TypeName(rootType))
	}
	d.Constructor = ctor

	d.InjectFields = collector.Fields()
	d.InjectMethods = collector.Methods()
	d.FactoryMethods = collector.Factories()
	d.PostConstruct = collector.PostConstruct()
	d.PreDestroy = collector.PreDestroy()

	return d, nil
}

// collectLevel folds one level's own fields and method-shaped
// declarations into the collector, and reports whether the level has
// a direct superclass to continue the walk to.
func collectLevel(c *Collector, d *gs.BeanDescriptor, t reflect.Type, isFactory bool) bool {
	superField, hasSuper := directSuper(t)

	if t.Kind() == reflect.Struct {
		var fields []gs.FieldPoint
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if hasSuper && i == superField.Index[0] {
				continue // the embedded supertype itself, not a data field
			}
			if f.Anonymous && f.Type.Kind() == reflect.Interface {
				appendAssignable(d, f.Type) // embedded interface: an "implements" declaration
				continue
			}
			if gs_meta.HasInject(f) {
				fields = append(fields, ReadField(f, t))
			}
		}
		c.AddFields(fields)
	}

	c.AddLevel(t, declarationsFor(t), isFactory)
	return hasSuper
}

// directSuper returns the struct's first anonymous, non-interface
// field - the Go analogue of a single-inheritance "extends" clause -
// or false if the type declares none.
func directSuper(t reflect.Type) (reflect.StructField, bool) {
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() != reflect.Interface {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// implicitQualifier computes spec §4.4 step 3: if the bean's simple
// name ends with its immediate superclass's simple name and is
// longer, the lowercased leading portion is the implicit qualifier.
func implicitQualifier(base, super reflect.Type) string {
	baseName, superName := base.Name(), super.Name()
	if superName == "" || baseName == superName {
		return ""
	}
	if strings.HasSuffix(baseName, superName) && len(baseName) > len(superName) {
		return strings.ToLower(baseName[:len(baseName)-len(superName)])
	}
	return ""
}

func appendAssignable(d *gs.BeanDescriptor, t reflect.Type) {
	for _, existing := range d.AssignableTypes {
		if existing == t {
			return
		}
	}
	d.AssignableTypes = append(d.AssignableTypes, t)
}

// chooseConstructor implements spec §4.3's constructor-selection
// policy. Go's exported/unexported split collapses the spec's three-
// way public/non-private/private distinction into two tiers, so
// "sole non-private" and "sole public" coincide here.
func chooseConstructor(rootType reflect.Type, candidates []gs.CtorCandidate) (gs.ConstructorPoint, error) {
	var injected []gs.CtorCandidate
	for _, c := range candidates {
		if c.Inject {
			injected = append(injected, c)
		}
	}
	if len(injected) == 1 {
		return toConstructorPoint(rootType, injected[0]), nil
	}
	if len(injected) > 1 {
		return gs.ConstructorPoint{}, errors.Wrap(gs.ErrNoConstructor, "multiple @Inject constructors")
	}

	var exported []gs.CtorCandidate
	for _, c := range candidates {
		if c.Visibility == gs.Exported {
			exported = append(exported, c)
		}
	}
	if len(exported) == 1 {
		return toConstructorPoint(rootType, exported[0]), nil
	}
	return gs.ConstructorPoint{}, gs.ErrNoConstructor
}

func toConstructorPoint(rootType reflect.Type, c gs.CtorCandidate) gs.ConstructorPoint {
	return gs.ConstructorPoint{
		Parameters:    c.Parameters,
		DeclaringType: rootType,
		Visibility:    c.Visibility,
		Func:          c.Func,
	}
}
