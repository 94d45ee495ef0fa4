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

package gs

import "github.com/pkg/errors"

// Sentinel errors per spec §7. Wrap these with errors.Wrapf (not
// fmt.Errorf) so callers can recover the kind via errors.Is/errors.Cause
// while still reading a bean or type name in the message - the same
// pairing the teacher's util.Wrap gives plain
// errors, done here the way the rest of the example pack's bean
// registries (codeallergy/glue, arpabet/glue, consensusdb/context) do
// it with github.com/pkg/errors.
var (
	// ErrNoConstructor is raised at generation time when a bean has no
	// injectable and no unambiguous non-private/public constructor.
	ErrNoConstructor = errors.New("no selectable constructor")

	// ErrGenericBean marks a bean whose own type is generic; this is a
	// soft failure, the descriptor is still emitted without BaseType.
	ErrGenericBean = errors.New("bean base type is generic")

	// ErrMultiplePrimary is raised when the resolution ladder finds more
	// than one Primary candidate.
	ErrMultiplePrimary = errors.New("multiple primary candidates")

	// ErrMultipleNormal is raised when the ladder finds more than one
	// Normal candidate.
	ErrMultipleNormal = errors.New("multiple normal candidates")

	// ErrMultipleSecondary is raised when the ladder finds more than one
	// Secondary candidate.
	ErrMultipleSecondary = errors.New("multiple secondary candidates")

	// ErrNoCandidate is raised when the ladder finds no candidate at any
	// populated tier.
	ErrNoCandidate = errors.New("no candidate bean")

	// ErrPriorityMalformed is raised at sort time when a bean's priority
	// annotation cannot be read as an integer.
	ErrPriorityMalformed = errors.New("priority annotation malformed")

	// ErrScopeClosed names use of a bean scope after close. No BeanScope
	// method returns it: lookups and Start still run after Close.
	ErrScopeClosed = errors.New("bean scope is closed")
)

// WrapBean annotates err with the bean's base type name, mirroring the
// file:line-annotated errors the teacher's BeanMetadata attaches to
// every fatal registration error.
func WrapBean(err error, beanName string) error {
	return errors.Wrapf(err, "bean %q", beanName)
}
