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

	"github.com/spatialmodel/georef/reference"
)

// WorldMillerCylindricalProjection is the Miller cylindrical projection on
// a sphere whose radius is the semi-major axis of the ellipsoid.
type WorldMillerCylindricalProjection struct {
	projection

	falseEasting, falseNorthing float64
	longitudeOfNaturalOrigin    float64
	sphereRadius                float64
}

// NewWorldMillerCylindricalProjection returns a Miller cylindrical
// projection. params must hold the longitude of natural origin, the false
// easting and the false northing.
func NewWorldMillerCylindricalProjection(identifier, name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (*WorldMillerCylindricalProjection, error) {
	p, err := newProjection(identifier, name, MillerCylindricalProjection, params, ellipsoid, area)
	if err != nil {
		return nil, err
	}
	return &WorldMillerCylindricalProjection{
		projection:               p,
		falseEasting:             p.length(FalseEasting),
		falseNorthing:            p.length(FalseNorthing),
		longitudeOfNaturalOrigin: p.angle(LongitudeOfNaturalOrigin),
		sphereRadius:             ellipsoid.SemiMajorAxis().BaseValue(),
	}, nil
}

// Forward projects a geographic coordinate into easting and northing in metres.
func (p *WorldMillerCylindricalProjection) Forward(g reference.GeoCoordinate) (reference.Coordinate, error) {
	lat, lon := g.Latitude.BaseValue(), g.Longitude.BaseValue()
	x := p.sphereRadius * longitudeDelta(lon, p.longitudeOfNaturalOrigin)
	y := p.sphereRadius * math.Asinh(math.Tan(0.8*lat)) / 0.8
	return forwardResult(p.falseEasting+x, p.falseNorthing+y, "miller forward")
}

// Reverse converts easting and northing in metres into a geographic coordinate.
func (p *WorldMillerCylindricalProjection) Reverse(c reference.Coordinate) (reference.GeoCoordinate, error) {
	x := c.X - p.falseEasting
	y := c.Y - p.falseNorthing
	lat := math.Atan(math.Sinh(0.8*y/p.sphereRadius)) / 0.8
	lon := p.longitudeOfNaturalOrigin + x/p.sphereRadius
	return reverseResult(lat, lon, "miller reverse")
}

func init() {
	Register(MillerCylindricalProjection, func(identifier, name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (Operation, error) {
		p, err := NewWorldMillerCylindricalProjection(identifier, name, params, ellipsoid, area)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}
