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

// Package operation implements coordinate operations: the catalog of
// operation methods and their parameters, the projections and geocentric
// transformations implementing them, and the registry and factories that
// instantiate implementations from method descriptors.
package operation

import (
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
)

// Operation is a coordinate operation bound to a method and its resolved
// parameter values. Operations are immutable and safe for concurrent use.
type Operation interface {
	Identifier() string
	Name() string
	Method() *Method
	Parameters() Parameters
	AreaOfUse() *reference.AreaOfUse
}

// Projection is an operation that maps geographic coordinates to planar
// coordinates.
type Projection interface {
	Operation
	reference.Projection
	Ellipsoid() *reference.Ellipsoid
}

// GeocentricTransformation is an operation between geocentric coordinates,
// in metres.
type GeocentricTransformation interface {
	Operation
	Forward(reference.Coordinate) (reference.Coordinate, error)
	Reverse(reference.Coordinate) (reference.Coordinate, error)
}

// operation holds the state shared by all operations.
type operation struct {
	reference.IdentifiedObject
	method *Method
	params Parameters
	area   *reference.AreaOfUse
}

// newOperation checks that params holds a value of the right kind for
// every parameter of method and keeps a copy of those values.
func newOperation(identifier, name string, method *Method, params Parameters, area *reference.AreaOfUse) (operation, error) {
	o, err := reference.NewIdentifiedObject(identifier, name, "")
	if err != nil {
		return operation{}, err
	}
	if method == nil {
		return operation{}, georef.Errorf(georef.InvalidArgument, "operation: %s has no method", identifier)
	}
	resolved := make(Parameters, len(method.parameters))
	for _, p := range method.parameters {
		v, ok := params[p]
		if !ok {
			return operation{}, georef.Errorf(georef.MissingParameter,
				"operation: %s: method %s requires parameter %s", identifier, method.Name(), p.Name())
		}
		if v.kind != p.kind {
			return operation{}, georef.Errorf(georef.UnitMismatch,
				"operation: %s: parameter %s must be a %v, not a %v", identifier, p.Name(), p.kind, v.kind)
		}
		resolved[p] = v
	}
	return operation{IdentifiedObject: o, method: method, params: resolved, area: area}, nil
}

// Method returns the method the operation implements.
func (o *operation) Method() *Method { return o.method }

// MethodIdentifier returns the identifier of the method.
func (o *operation) MethodIdentifier() string { return o.method.Identifier() }

// Parameters returns a copy of the parameter values of the operation.
func (o *operation) Parameters() Parameters {
	p := make(Parameters, len(o.params))
	for k, v := range o.params {
		p[k] = v
	}
	return p
}

// AreaOfUse returns the region where the operation is valid.
func (o *operation) AreaOfUse() *reference.AreaOfUse { return o.area }

func (o *operation) length(p *Parameter) float64 { return o.params[p].length.BaseValue() }
func (o *operation) angle(p *Parameter) float64  { return o.params[p].angle.BaseValue() }
