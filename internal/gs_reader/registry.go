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
	"sync"

	"github.com/dinject/dinject/internal/gs"
)

// levelDeclarations holds the method-shaped declarations (@Inject
// methods, overrides without @Inject, lifecycle hooks, factory
// methods) each hierarchy level supplies about itself. Go promotes
// methods through embedding, so there is no reliable way to ask a
// struct type "what did you declare directly" by reflection alone;
// a real annotation-processing driver would read this straight off
// one class's own AST, so here it is supplied once per type up front,
// the same way the driver would hand it to the reader.
var levelDeclarations sync.Map // reflect.Type -> gs.LevelDeclarations

// Declare registers the direct declarations of one hierarchy level.
// Call it once per bean/supertype type, typically from an init()
// function alongside the type's definition.
func Declare(t reflect.Type, decl gs.LevelDeclarations) {
	levelDeclarations.Store(t, decl)
}

// declarationsFor returns the registered declarations for t, or the
// zero value (no direct declarations) if none were registered.
func declarationsFor(t reflect.Type) gs.LevelDeclarations {
	if v, ok := levelDeclarations.Load(t); ok {
		return v.(gs.LevelDeclarations)
	}
	return gs.LevelDeclarations{}
}
