// Package registry holds the static unit table and resolves user tokens
// against it.
package registry

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

type Options struct {
	IncludeTemperature bool
}

// Registry maps lowercase aliases to unit definitions.
// It is immutable after New and safe for concurrent use.
type Registry struct {
	units   []domain.Unit
	byAlias map[string]int
}

var _ ports.UnitResolver = (*Registry)(nil)

// New builds a registry from the static table. It panics on a duplicated
// alias, which can only come from a broken table.
func New(opts Options) *Registry {
	var defs []domain.Unit
	defs = append(defs, lengthUnits...)
	defs = append(defs, massUnits...)
	if opts.IncludeTemperature {
		defs = append(defs, temperatureUnits...)
	}

	r := &Registry{
		units:   make([]domain.Unit, 0, len(defs)),
		byAlias: make(map[string]int),
	}
	for _, d := range defs {
		d = clone(d)
		idx := len(r.units)
		r.units = append(r.units, d)

		for _, a := range d.Aliases {
			key := strings.ToLower(a)
			if prev, dup := r.byAlias[key]; dup {
				panic(fmt.Sprintf("registry: alias %q used by both %q and %q", key, r.units[prev].Symbol, d.Symbol))
			}
			r.byAlias[key] = idx
		}
	}
	return r
}

// Default returns the full registry, temperature included.
func Default() *Registry {
	return New(Options{IncludeTemperature: true})
}

// Resolve is a case-insensitive exact match against the alias set.
func (r *Registry) Resolve(token string) (domain.Unit, bool) {
	idx, ok := r.byAlias[strings.ToLower(token)]
	if !ok {
		return domain.Unit{}, false
	}
	return clone(r.units[idx]), true
}

func (r *Registry) FamilyOf(token string) (domain.Family, bool) {
	u, ok := r.Resolve(token)
	if !ok {
		return 0, false
	}
	return u.Family, true
}

// Units lists definitions in table order. Callers own the returned units,
// aliases included.
func (r *Registry) Units() []domain.Unit {
	out := make([]domain.Unit, 0, len(r.units))
	for _, u := range r.units {
		out = append(out, clone(u))
	}
	return out
}

func (r *Registry) UnitsOf(f domain.Family) []domain.Unit {
	var out []domain.Unit
	for _, u := range r.units {
		if u.Family == f {
			out = append(out, clone(u))
		}
	}
	return out
}

func clone(u domain.Unit) domain.Unit {
	u.Aliases = append([]string(nil), u.Aliases...)
	return u
}
