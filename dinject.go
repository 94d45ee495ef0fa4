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

// Package dinject is the public facade of the bean reader and runtime
// bean scope: the part an annotation-processing driver and a
// generated wiring module would import. It re-exports the shared
// contract types of internal/gs and adds the generic, reflect-light
// surface (Register, Get, List) a hand-written or generated caller
// actually uses.
package dinject

import "github.com/dinject/dinject/internal/gs"

// Priority is the resolution tier a bean candidate is registered
// under. See gs.Priority.
type Priority = gs.Priority

const (
	Normal    = gs.Normal
	Primary   = gs.Primary
	Secondary = gs.Secondary
	Supplied  = gs.Supplied
)

// Visibility captures the exportedness of a constructor or method.
type Visibility = gs.Visibility

const (
	Exported = gs.Exported
	Private  = gs.Private
)

type (
	Param             = gs.Param
	FieldPoint        = gs.FieldPoint
	MethodPoint       = gs.MethodPoint
	ConstructorPoint  = gs.ConstructorPoint
	BeanDescriptor    = gs.BeanDescriptor
	MethodDecl        = gs.MethodDecl
	LevelDeclarations = gs.LevelDeclarations
	CtorCandidate     = gs.CtorCandidate
)

// Provider is the Go analogue of Provider<T>: a thunk that defers
// construction of T until invoked. The bean reader unwraps this shape
// to T when it is a bean's own type or a supertype in its embedded
// chain; field and parameter types are recorded as declared.
type Provider[T any] func() T

// Annotation names of the annotation surface this module implements.
// The reader matches struct tags, not these names; they are the values
// a CandidateEntry's Annotations carry for BeansWithAnnotation.
const (
	AnnotationInject        = gs.AnnotationInject
	AnnotationNamed         = gs.AnnotationNamed
	AnnotationPrimary       = gs.AnnotationPrimary
	AnnotationSecondary     = gs.AnnotationSecondary
	AnnotationSingleton     = gs.AnnotationSingleton
	AnnotationFactory       = gs.AnnotationFactory
	AnnotationBean          = gs.AnnotationBean
	AnnotationPostConstruct = gs.AnnotationPostConstruct
	AnnotationPreDestroy    = gs.AnnotationPreDestroy
	AnnotationNullable      = gs.AnnotationNullable
	AnnotationPriority      = gs.AnnotationPriority
)

// DefaultPriorityValue is the value assigned to a bean that declares
// no priority when sorting by priority.
const DefaultPriorityValue = gs.DefaultPriorityValue

// Sentinel errors returned by the reader and the runtime scope.
var (
	ErrNoConstructor     = gs.ErrNoConstructor
	ErrGenericBean       = gs.ErrGenericBean
	ErrMultiplePrimary   = gs.ErrMultiplePrimary
	ErrMultipleNormal    = gs.ErrMultipleNormal
	ErrMultipleSecondary = gs.ErrMultipleSecondary
	ErrNoCandidate       = gs.ErrNoCandidate
	ErrPriorityMalformed = gs.ErrPriorityMalformed
	ErrScopeClosed       = gs.ErrScopeClosed
)
