/*
Copyright © 2019 the GeoRef authors.
This file is part of GeoRef.

GeoRef is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GeoRef is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GeoRef.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package catalog lists the well-known reference systems and looks them
// up by identifier or name.
package catalog

import (
	"sync"

	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
	"github.com/spatialmodel/georef/reference/operation"
)

// Catalog is a set of reference systems with unique identifiers. It is
// safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	systems []reference.ReferenceSystem
}

// New returns a catalog holding the given systems.
func New(systems ...reference.ReferenceSystem) (*Catalog, error) {
	c := new(Catalog)
	if err := c.Add(systems...); err != nil {
		return nil, err
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog. It initially holds the
// well-known systems of the reference package and of this package.
func Default() *Catalog {
	defaultOnce.Do(func() {
		systems := append([]reference.ReferenceSystem(nil), reference.Systems...)
		for _, p := range Projected() {
			systems = append(systems, p)
		}
		c, err := New(systems...)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Add adds systems to the catalog. It fails with InvalidArgument if a
// system is nil or its identifier is already in the catalog.
func (c *Catalog) Add(systems ...reference.ReferenceSystem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	seen := make(map[string]bool, len(c.systems)+len(systems))
	for _, s := range c.systems {
		seen[s.Identifier()] = true
	}
	for _, s := range systems {
		if s == nil {
			return georef.Errorf(georef.InvalidArgument, "catalog: the reference system is nil")
		}
		if seen[s.Identifier()] {
			return georef.Errorf(georef.InvalidArgument, "catalog: duplicate reference system %s", s.Identifier())
		}
		seen[s.Identifier()] = true
	}
	c.systems = append(c.systems, systems...)
	return nil
}

// Systems returns every system in the catalog in insertion order.
func (c *Catalog) Systems() []reference.ReferenceSystem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]reference.ReferenceSystem(nil), c.systems...)
}

// FromIdentifier returns the systems whose identifier contains id,
// ignoring case.
func (c *Catalog) FromIdentifier(id string) ([]reference.ReferenceSystem, error) {
	if id == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "catalog: the identifier is empty")
	}
	re := reference.Pattern(id)
	return c.filter(func(s reference.ReferenceSystem) bool { return re.MatchString(s.Identifier()) }), nil
}

// FromName returns the systems whose name or one of whose aliases
// contains name, ignoring case.
func (c *Catalog) FromName(name string) ([]reference.ReferenceSystem, error) {
	if name == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "catalog: the name is empty")
	}
	re := reference.Pattern(name)
	return c.filter(func(s reference.ReferenceSystem) bool {
		if re.MatchString(s.Name()) {
			return true
		}
		for _, a := range s.Aliases() {
			if re.MatchString(a) {
				return true
			}
		}
		return false
	}), nil
}

func (c *Catalog) filter(match func(reference.ReferenceSystem) bool) []reference.ReferenceSystem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []reference.ReferenceSystem
	for _, s := range c.systems {
		if match(s) {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the system whose identifier equals id, ignoring case.
// Failing that, it returns the only system whose identifier or name
// contains id.
func (c *Catalog) Lookup(id string) (reference.ReferenceSystem, error) {
	if id == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "catalog: the identifier is empty")
	}
	if s := c.filter(func(s reference.ReferenceSystem) bool { return equalFold(s.Identifier(), id) }); len(s) > 0 {
		return s[0], nil
	}
	byID, _ := c.FromIdentifier(id)
	byName, _ := c.FromName(id)
	matches := unique(append(byID, byName...))
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, georef.Errorf(georef.InvalidArgument, "catalog: unknown reference system %q", id)
	}
	return nil, georef.Errorf(georef.InvalidArgument, "catalog: %q matches %d reference systems", id, len(matches))
}

func unique(systems []reference.ReferenceSystem) []reference.ReferenceSystem {
	var out []reference.ReferenceSystem
	seen := make(map[reference.ReferenceSystem]bool)
	for _, s := range systems {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ProjectionFromIdentifier returns the predefined projection whose
// identifier equals id.
func ProjectionFromIdentifier(id string) (operation.Projection, error) {
	ps, err := operation.Projections.FromIdentifier(id)
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		if equalFold(p.Identifier(), id) {
			return p, nil
		}
	}
	return nil, georef.Errorf(georef.InvalidArgument, "catalog: no predefined projection %s", id)
}
