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
	"github.com/spatialmodel/georef/reference"
)

// EquidistantCylindricalProjection is the spherical equidistant
// cylindrical projection. Meridians are mapped at a constant spacing and
// distances along them are true.
type EquidistantCylindricalProjection struct {
	projection

	falseEasting, falseNorthing float64
	longitudeOfNaturalOrigin    float64
	cosStandardParallel         float64
	radius                      float64
}

// NewEquidistantCylindricalProjection returns an Equidistant Cylindrical
// (Spherical) projection. The standard parallel must not be a pole.
func NewEquidistantCylindricalProjection(identifier, name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (*EquidistantCylindricalProjection, error) {
	p, err := newProjection(identifier, name, EquidistantCylindricalSpherical, params, ellipsoid, area)
	if err != nil {
		return nil, err
	}
	cos := math.Cos(p.angle(LatitudeOf1stStandardParallel))
	if !(cos > 1e-12) {
		return nil, georef.Errorf(georef.InvalidArgument, "operation: projection %s: the standard parallel is a pole", identifier)
	}
	return &EquidistantCylindricalProjection{
		projection:               p,
		falseEasting:             p.length(FalseEasting),
		falseNorthing:            p.length(FalseNorthing),
		longitudeOfNaturalOrigin: p.angle(LongitudeOfNaturalOrigin),
		cosStandardParallel:      cos,
		radius:                   ellipsoid.SemiMajorAxis().BaseValue(),
	}, nil
}

// Forward projects a geographic coordinate into easting and northing in metres.
func (p *EquidistantCylindricalProjection) Forward(g reference.GeoCoordinate) (reference.Coordinate, error) {
	lat, lon := g.Latitude.BaseValue(), g.Longitude.BaseValue()
	x := p.radius * longitudeDelta(lon, p.longitudeOfNaturalOrigin) * p.cosStandardParallel
	y := p.radius * lat
	return forwardResult(p.falseEasting+x, p.falseNorthing+y, "equidistant cylindrical forward")
}

// Reverse converts easting and northing in metres into a geographic coordinate.
func (p *EquidistantCylindricalProjection) Reverse(c reference.Coordinate) (reference.GeoCoordinate, error) {
	lat := (c.Y - p.falseNorthing) / p.radius
	lon := p.longitudeOfNaturalOrigin + (c.X-p.falseEasting)/(p.radius*p.cosStandardParallel)
	return reverseResult(lat, lon, "equidistant cylindrical reverse")
}

func init() {
	Register(EquidistantCylindricalSpherical, func(identifier, name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (Operation, error) {
		p, err := NewEquidistantCylindricalProjection(identifier, name, params, ellipsoid, area)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}
