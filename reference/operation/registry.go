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

package operation

import (
	"sync"

	"github.com/spatialmodel/georef/reference"
)

// Constructor creates an operation implementing a method from its
// parameter values. Projections require the ellipsoid and the area of use.
type Constructor func(identifier, name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (Operation, error)

type registration struct {
	method      *Method
	constructor Constructor
}

// registry maps operation methods to the constructors of their
// implementations. Registrations are collected by Register and published
// as a read-only table on first lookup.
type registry struct {
	mu      sync.Mutex
	pending []registration
	built   bool

	once    sync.Once
	table   map[*Method]Constructor
	methods []*Method
}

var defaultRegistry = new(registry)

// Register associates an implementation with an operation method. It is
// meant to be called from init functions and panics if it is called after
// the first lookup, if method or constructor is nil, or if method already
// has an implementation.
func Register(method *Method, constructor Constructor) {
	defaultRegistry.register(method, constructor)
}

func (r *registry) register(method *Method, constructor Constructor) {
	if method == nil || constructor == nil {
		panic("operation: Register called with a nil method or constructor")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.built {
		panic("operation: Register called after the registry was built")
	}
	for _, reg := range r.pending {
		if reg.method == method {
			panic("operation: Register called twice for method " + method.Identifier())
		}
	}
	r.pending = append(r.pending, registration{method: method, constructor: constructor})
}

func (r *registry) load() {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		table := make(map[*Method]Constructor, len(r.pending))
		methods := make([]*Method, 0, len(r.pending))
		for _, reg := range r.pending {
			table[reg.method] = reg.constructor
			methods = append(methods, reg.method)
		}
		r.table, r.methods = table, methods
		r.built = true
	})
}

// lookup returns the constructor registered for method.
func (r *registry) lookup(method *Method) (Constructor, bool) {
	r.load()
	c, ok := r.table[method]
	return c, ok
}

// registered returns the methods that have an implementation, in
// registration order.
func (r *registry) registered() []*Method {
	r.load()
	return r.methods
}

// ImplementedMethods returns the methods that have a registered
// implementation.
func ImplementedMethods() []*Method {
	return append([]*Method(nil), defaultRegistry.registered()...)
}

// IsImplemented reports whether method has a registered implementation.
func IsImplemented(method *Method) bool {
	_, ok := defaultRegistry.lookup(method)
	return ok
}
