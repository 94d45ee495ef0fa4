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

// Package gs holds the contracts shared by the bean reader and the
// runtime bean scope, the same role the teacher's gs/internal/gs
// package plays for gs_bean, gs_core and gs_arg: a dependency-free
// leaf that everything else in this module imports, never the other
// way around.
package gs

import "reflect"

// Priority is the resolution tier a bean candidate is registered
// under. The zero value is Normal so that beans registered without an
// explicit tier behave as ordinary candidates.
type Priority int8

const (
	// Normal is the default tier for beans with no priority annotation.
	Normal Priority = iota
	// Primary marks a preferred candidate; examined before Normal.
	Primary
	// Secondary marks a fallback candidate; examined after Normal.
	Secondary
	// Supplied marks an externally supplied instance (e.g. a test
	// double) that short-circuits the resolution ladder.
	Supplied
)

func (p Priority) String() string {
	switch p {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	case Supplied:
		return "Supplied"
	default:
		return "Normal"
	}
}

// Visibility captures the exportedness of a constructor, the closest
// Go analogue of public / non-private / private constructor visibility.
type Visibility int8

const (
	// Exported is the zero value so a declaration built without
	// setting Visibility explicitly behaves as a normal, selectable
	// member - private constructors/methods are the ones callers must
	// opt into marking.
	Exported Visibility = iota
	Private
)

// Param describes one parameter of a constructor or injection method.
type Param struct {
	Type      reflect.Type
	Qualifier string // empty when unqualified
	Nullable  bool
}

// FieldPoint is an injection point backed by a struct field.
type FieldPoint struct {
	FieldName     string
	DeclaredType  reflect.Type
	Qualifier     string
	Nullable      bool
	DeclaringType reflect.Type
}

// MethodPoint is an injection point or factory method backed by a
// method of a bean.
type MethodPoint struct {
	MethodName    string
	Parameters    []Param
	DeclaringType reflect.Type
	Qualifier     string // @Named on a factory method
}

// ConstructorPoint is the chosen injection constructor of a bean.
type ConstructorPoint struct {
	Parameters    []Param
	DeclaringType reflect.Type
	Visibility    Visibility
	Func          reflect.Value // zero Value for object beans that have no constructor
}

// BeanDescriptor is the reader's output for one bean: the contract
// consumed by the (out-of-scope) emitter.
type BeanDescriptor struct {
	BaseType          reflect.Type // nil when the bean's own type is generic
	AssignableTypes   []reflect.Type
	ImplicitQualifier string
	Constructor       ConstructorPoint
	InjectFields      []FieldPoint  // base-to-derived order
	InjectMethods     []MethodPoint // base-to-derived order
	FactoryMethods    []MethodPoint
	PostConstruct     string // method name, empty if none
	PreDestroy        string // method name, empty if none
}

// MethodDecl is one method a hierarchy level declares directly: either
// an @Inject method or a factory (@Bean) method.
type MethodDecl struct {
	Name          string
	Parameters    []Param
	Qualifier     string     // @Named on a factory method
	Visibility    Visibility // zero value (Exported) unless the level marks it Private
	DeclaringType reflect.Type
}

// LevelDeclarations is what one level of a bean's hierarchy declares
// directly - the data an annotation-processing driver would read off
// one class's own members, without consulting its ancestors. Go method
// sets are promoted through embedding, so there is no reliable way to
// recover "declared here, not promoted" from reflection alone; a level
// registers its LevelDeclarations once, keyed by its own type, through
// internal/gs_reader.Declare, which sidesteps promotion entirely.
type LevelDeclarations struct {
	InjectMethods  []MethodDecl // @Inject methods declared at this level
	NotInject      []string     // method names redeclared at this level WITHOUT @Inject
	PostConstruct  string       // method name bearing @PostConstruct, if any
	PreDestroy     string       // method name bearing @PreDestroy, if any
	FactoryMethods []MethodDecl // @Bean methods (only meaningful when the bean is a factory)
}

// CtorCandidate is one constructor candidate declared on the concrete
// (most-derived) bean type, as the driver would enumerate them.
type CtorCandidate struct {
	Func       reflect.Value
	Parameters []Param
	Inject     bool // explicitly @Inject-annotated
	Visibility Visibility
}

// Annotation names of the annotation surface, exactly as listed in
// spec §6. Go has no source annotations, and the reader does not match
// these names: it reads the struct tag keys defined in internal/gs_meta
// (inject, name, optional) and the LevelDeclarations a bean level
// supplies. These names are the values a CandidateEntry's Annotations
// carry for BeansWithAnnotation lookups.
const (
	AnnotationInject        = "Inject"
	AnnotationNamed         = "Named"
	AnnotationPrimary       = "Primary"
	AnnotationSecondary     = "Secondary"
	AnnotationSingleton     = "Singleton"
	AnnotationFactory       = "Factory"
	AnnotationBean          = "Bean"
	AnnotationPostConstruct = "PostConstruct"
	AnnotationPreDestroy    = "PreDestroy"
	AnnotationNullable      = "Nullable"
	AnnotationPriority      = "Priority"
)

// Provider is the Go analogue of Provider<T>: a thunk that defers
// construction of T. gs_meta.UnwrapProvider strips this wrapper from a
// bean's own type and from the supertypes of its embedded chain; field
// and parameter types are recorded as declared, not unwrapped.
type Provider[T any] func() T

// DefaultPriorityValue is the value list_by_priority assigns to a
// bean that declares no priority annotation (spec §4.6).
const DefaultPriorityValue = 5000
