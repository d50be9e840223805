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
	"math"

	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/measure"
	"github.com/spatialmodel/georef/reference"
)

// projection holds the state shared by all projections.
type projection struct {
	operation
	ellipsoid *reference.Ellipsoid
}

// newProjection validates the inputs shared by all projections. Defaults
// of required parameters are never applied.
func newProjection(identifier, name string, method *Method, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (projection, error) {
	if ellipsoid == nil {
		return projection{}, georef.Errorf(georef.InvalidArgument, "operation: projection %s has no ellipsoid", identifier)
	}
	if area == nil {
		return projection{}, georef.Errorf(georef.InvalidArgument, "operation: projection %s has no area of use", identifier)
	}
	o, err := newOperation(identifier, name, method, params, area)
	if err != nil {
		return projection{}, err
	}
	return projection{operation: o, ellipsoid: ellipsoid}, nil
}

// Ellipsoid returns the ellipsoid the projection works on.
func (p *projection) Ellipsoid() *reference.Ellipsoid { return p.ellipsoid }

func (p *projection) base() *projection { return p }

// Equal reports whether o implements the same method with equal parameter
// values on an equal ellipsoid.
func (p *projection) Equal(o reference.Projection) bool {
	ob, ok := o.(interface{ base() *projection })
	if !ok {
		return false
	}
	q := ob.base()
	if p == q {
		return true
	}
	return p.method == q.method && p.ellipsoid.Equal(q.ellipsoid) && p.params.Equal(q.params)
}

// longitudeDelta returns the longitude difference from the origin in
// radians, brought into (-π, π] by at most one correction of a full turn.
func longitudeDelta(longitude, origin float64) float64 {
	diff := longitude - origin
	switch {
	case diff > math.Pi:
		diff -= 2 * math.Pi
	case diff < -math.Pi:
		diff += 2 * math.Pi
	}
	return diff
}

func forwardResult(x, y float64, op string) (reference.Coordinate, error) {
	return reference.CheckFinite(reference.Coordinate{X: x, Y: y}, op)
}

func reverseResult(latitude, longitude float64, op string) (reference.GeoCoordinate, error) {
	if latitude < -math.Pi/2 || latitude > math.Pi/2 {
		return reference.GeoCoordinate{}, georef.Errorf(georef.ComputationFault, "%s: latitude %g rad out of range", op, latitude)
	}
	g := reference.GeoCoordinate{
		Latitude:  measure.Radians(latitude),
		Longitude: measure.Radians(longitude),
	}
	return reference.CheckFiniteGeo(g, op)
}
