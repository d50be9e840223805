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

package reference

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/measure"
)

// AreaOfUse is the geographic region in which a reference object is valid.
// The bounds are in degrees. An area whose west bound is greater than its
// east bound crosses the antimeridian.
type AreaOfUse struct {
	IdentifiedObject
	bound orb.Bound
}

// NewAreaOfUse returns an area bounded by the given latitudes and
// longitudes, in degrees.
func NewAreaOfUse(identifier, name string, south, west, north, east float64) (*AreaOfUse, error) {
	o, err := NewIdentifiedObject(identifier, name, "")
	if err != nil {
		return nil, err
	}
	for _, v := range []float64{south, west, north, east} {
		if math.IsNaN(v) {
			return nil, georef.Errorf(georef.InvalidArgument, "reference: area of use %s has an undefined bound", identifier)
		}
	}
	if south > north || south < -90 || north > 90 || west < -180 || east > 180 {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: invalid bounds for area of use %s", identifier)
	}
	return &AreaOfUse{
		IdentifiedObject: o,
		bound:            orb.Bound{Min: orb.Point{west, south}, Max: orb.Point{east, north}},
	}, nil
}

// Bound returns the bounds of the area as longitude (X) and latitude (Y)
// in degrees.
func (a *AreaOfUse) Bound() orb.Bound { return a.bound }

// CrossesAntimeridian reports whether the area spans the 180° meridian.
func (a *AreaOfUse) CrossesAntimeridian() bool { return a.bound.Min[0] > a.bound.Max[0] }

// Contains reports whether the area contains the given position.
func (a *AreaOfUse) Contains(latitude, longitude measure.Angle) bool {
	lat, lon := latitude.Degrees(), longitude.Normalize().Degrees()
	if !a.CrossesAntimeridian() {
		return a.bound.Contains(orb.Point{lon, lat})
	}
	if lat < a.bound.Min[1] || lat > a.bound.Max[1] {
		return false
	}
	return lon >= a.bound.Min[0] || lon <= a.bound.Max[0]
}

// Equal reports whether a and o have the same bounds.
func (a *AreaOfUse) Equal(o *AreaOfUse) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.bound.Equal(o.bound)
}

func mustArea(a *AreaOfUse, err error) *AreaOfUse {
	if err != nil {
		panic(err)
	}
	return a
}

// Well-known areas of use.
var (
	World        = mustArea(NewAreaOfUse("EPSG::1262", "World", -90, -180, 90, 180))
	Europe       = mustArea(NewAreaOfUse("EPSG::1298", "Europe - ETRS89", 32.88, -16.1, 84.73, 40.18))
	NorthAmerica = mustArea(NewAreaOfUse("EPSG::1349", "North America - NAD27", 7.15, 167.65, 83.17, -47.74))
	// PseudoMercatorArea excludes the poles, where the projection diverges.
	PseudoMercatorArea = mustArea(NewAreaOfUse("EPSG::3544", "World - 85°S to 85°N", -85.06, -180, 85.06, 180))
)
