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
	"fmt"
	"math"

	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/measure"
)

// Coordinate is a position expressed in the native units of a reference
// system. For geographic reference systems X holds the longitude, Y the
// latitude and Z the ellipsoidal height.
type Coordinate struct {
	X, Y, Z float64
}

// NewCoordinate returns a two-dimensional coordinate.
func NewCoordinate(x, y float64) Coordinate { return Coordinate{X: x, Y: y} }

// IsValid reports whether all of the ordinates of c are finite.
func (c Coordinate) IsValid() bool {
	return finite(c.X) && finite(c.Y) && finite(c.Z)
}

// Equal reports whether c and o are exactly equal.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y && c.Z == o.Z
}

func (c Coordinate) String() string {
	if c.Z == 0 {
		return fmt.Sprintf("(%g %g)", c.X, c.Y)
	}
	return fmt.Sprintf("(%g %g %g)", c.X, c.Y, c.Z)
}

// GeoCoordinate is a position on or near an ellipsoid.
type GeoCoordinate struct {
	Latitude  measure.Angle
	Longitude measure.Angle
	Height    measure.Length
}

// NewGeoCoordinate returns a geographic coordinate from a latitude and
// longitude in radians.
func NewGeoCoordinate(latitude, longitude float64) GeoCoordinate {
	return GeoCoordinate{
		Latitude:  measure.Radians(latitude),
		Longitude: measure.Radians(longitude),
	}
}

// GeoCoordinateFromDegrees returns a geographic coordinate from a latitude
// and longitude in degrees.
func GeoCoordinateFromDegrees(latitude, longitude float64) GeoCoordinate {
	return GeoCoordinate{
		Latitude:  measure.Degrees(latitude),
		Longitude: measure.Degrees(longitude),
	}
}

// IsValid reports whether the latitude, longitude and height of g are finite.
func (g GeoCoordinate) IsValid() bool {
	return finite(g.Latitude.BaseValue()) && finite(g.Longitude.BaseValue()) &&
		finite(g.Height.BaseValue())
}

func (g GeoCoordinate) String() string {
	return fmt.Sprintf("(%g° %g° %v)", g.Latitude.Degrees(), g.Longitude.Degrees(), g.Height)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// CheckFinite returns a ComputationFault error if any ordinate of c is not finite.
func CheckFinite(c Coordinate, op string) (Coordinate, error) {
	if !c.IsValid() {
		return c, georef.Errorf(georef.ComputationFault, "%s: non-finite result %v", op, c)
	}
	return c, nil
}

// CheckFiniteGeo returns a ComputationFault error if any component of g is not finite.
func CheckFiniteGeo(g GeoCoordinate, op string) (GeoCoordinate, error) {
	if !g.IsValid() {
		return g, georef.Errorf(georef.ComputationFault, "%s: non-finite result %v", op, g)
	}
	return g, nil
}
