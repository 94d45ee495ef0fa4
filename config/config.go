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

// Package config loads the ambient ScopeConfig a BeanScope is built
// with, grounded on the teacher's conf package: one reader per file
// format, unmarshaled into a generic map, then bound into a typed
// struct with loose-type coercion.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/dinject/dinject/internal/gs_scope"
)

// ScopeConfig is the ambient configuration for a BeanScope. It mirrors
// internal/gs_scope.ScopeConfig field-for-field; Load never constructs
// a gs_scope.ScopeConfig directly, ToGsScopeConfig is the one place
// this package builds one.
type ScopeConfig struct {
	StrictAmbiguity       bool `json:"strictAmbiguity" yaml:"strictAmbiguity" toml:"strictAmbiguity" properties:"strict-ambiguity"`
	DefaultPriority       int  `json:"defaultPriority" yaml:"defaultPriority" toml:"defaultPriority" properties:"default-priority"`
	DefaultLifecyclePanic bool `json:"defaultLifecyclePanic" yaml:"defaultLifecyclePanic" toml:"defaultLifecyclePanic" properties:"default-lifecycle-panic"`
}

// ToGsScopeConfig converts to the runtime package's configuration type.
func (c ScopeConfig) ToGsScopeConfig() gs_scope.ScopeConfig {
	return gs_scope.ScopeConfig{
		StrictAmbiguity:       c.StrictAmbiguity,
		DefaultPriority:       c.DefaultPriority,
		DefaultLifecyclePanic: c.DefaultLifecyclePanic,
	}
}

// Default returns the spec-exact default configuration: strict
// ambiguity errors, the package default priority, panics propagated.
func Default() ScopeConfig {
	return ScopeConfig{StrictAmbiguity: true}
}

// Load reads one configuration file and binds it into a ScopeConfig.
// The format is chosen from the file extension: .yaml/.yml, .toml, or
// .properties. StrictAmbiguity defaults to true (the spec-exact
// behavior) when the source omits the key entirely.
func Load(path string) (ScopeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScopeConfig{}, errors.Wrapf(err, "reading config %s", path)
	}

	raw, err := readRaw(path, data)
	if err != nil {
		return ScopeConfig{}, errors.Wrapf(err, "parsing config %s", path)
	}

	cfg := Default()
	if v, ok := lookup(raw, "strictAmbiguity", "strict-ambiguity"); ok {
		cfg.StrictAmbiguity = cast.ToBool(v)
	}
	if v, ok := lookup(raw, "defaultPriority", "default-priority"); ok {
		cfg.DefaultPriority = cast.ToInt(v)
	}
	if v, ok := lookup(raw, "defaultLifecyclePanic", "default-lifecycle-panic"); ok {
		cfg.DefaultLifecyclePanic = cast.ToBool(v)
	}
	return cfg, nil
}

func readRaw(path string, data []byte) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		out := make(map[string]any)
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return out, nil
	case ".toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, err
		}
		return tree.ToMap(), nil
	case ".properties":
		p, err := properties.Load(data, properties.UTF8)
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(p.Keys()))
		for _, k := range p.Keys() {
			v, _ := p.Get(k)
			out[k] = v
		}
		return out, nil
	default:
		return nil, errors.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// lookup tries each candidate key in turn, returning the first present
// value; a yaml/toml document is keyed camelCase, a .properties file
// conventionally kebab-case.
func lookup(raw map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			return v, true
		}
	}
	return nil, false
}
