// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package typecfg loads conversion-cost tables from configuration.
//
// The conversion lattice is configuration input to the typing core: the
// concrete type catalog and its promotion costs are defined by the
// surrounding compiler, not by the core. This package reads the table
// from YAML:
//
//	bottom: unknown
//	domains:
//	  - [int32, int64, float32, float64]
//	pairs:
//	  - {from: int32, to: intp, cost: 1}
//	  - {from: intp, to: int32, cost: -1}
//
// A domain is a promotion chain listed from the narrowest to the widest
// type; pairs add or override individual entries. Type names are resolved
// against a caller-supplied catalog. All invalid entries are reported
// together rather than one at a time.
package typecfg

import (
	"slices"
	"strings"

	yaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/exp/maps"

	"github.com/nx-org/nx/types"
	"github.com/nx-org/nx/typing"
)

type (
	// Config is the schema of a conversion-cost table.
	Config struct {
		// Bottom names the pan-compatible fallback type. Required.
		Bottom string `koanf:"bottom"`
		// Domains are promotion chains from narrowest to widest.
		Domains [][]string `koanf:"domains"`
		// Pairs are individual entries, applied after the domains.
		Pairs []Pair `koanf:"pairs"`
	}

	// Pair is one directed conversion-cost entry.
	Pair struct {
		From string `koanf:"from"`
		To   string `koanf:"to"`
		Cost int    `koanf:"cost"`
	}
)

// Catalog maps type names to their type values.
type Catalog map[string]types.Type

// Load reads a conversion-cost table from a YAML file and builds the
// lattice, resolving type names against the catalog.
func Load(path string, catalog Catalog) (*typing.Lattice, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "cannot load lattice config %s", path)
	}
	return build(k, catalog)
}

// LoadMap builds a lattice from an already-parsed configuration map.
func LoadMap(raw map[string]any, catalog Catalog) (*typing.Lattice, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
		return nil, errors.Wrap(err, "cannot load lattice config")
	}
	return build(k, catalog)
}

func build(k *koanf.Koanf, catalog Catalog) (*typing.Lattice, error) {
	cfg := Config{}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "cannot decode lattice config")
	}
	var errs error
	lookup := func(name string) (types.Type, bool) {
		t, ok := catalog[name]
		if !ok {
			errs = multierr.Append(errs, unknownType(name, catalog))
		}
		return t, ok
	}
	b := typing.NewLatticeBuilder()
	for _, domain := range cfg.Domains {
		chain := make([]types.Type, 0, len(domain))
		complete := true
		for _, name := range domain {
			t, ok := lookup(name)
			if !ok {
				complete = false
				continue
			}
			chain = append(chain, t)
		}
		if complete {
			b.Domain(chain...)
		}
	}
	for _, p := range cfg.Pairs {
		from, okFrom := lookup(p.From)
		to, okTo := lookup(p.To)
		if okFrom && okTo {
			b.Set(from, to, p.Cost)
		}
	}
	var bottom types.Type
	if cfg.Bottom == "" {
		errs = multierr.Append(errs, errors.New("bottom type is required"))
	} else {
		bottom, _ = lookup(cfg.Bottom)
	}
	if errs != nil {
		return nil, errs
	}
	return b.Build(bottom), nil
}

func unknownType(name string, catalog Catalog) error {
	known := maps.Keys(catalog)
	slices.Sort(known)
	return errors.Errorf("unknown type %q (known types: %s)", name, strings.Join(known, ", "))
}
