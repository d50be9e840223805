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

// PseudoMercatorProjection is the spherical Mercator projection used by
// web mapping services, applied to ellipsoidal coordinates.
type PseudoMercatorProjection struct {
	projection

	falseEasting, falseNorthing float64
	longitudeOfNaturalOrigin    float64
	northingAtOrigin            float64
	radius                      float64
}

// NewPseudoMercatorProjection returns a Popular Visualisation Pseudo
// Mercator projection.
func NewPseudoMercatorProjection(identifier, name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (*PseudoMercatorProjection, error) {
	p, err := newProjection(identifier, name, PopularVisualisationPseudoMercator, params, ellipsoid, area)
	if err != nil {
		return nil, err
	}
	r := ellipsoid.SemiMajorAxis().BaseValue()
	return &PseudoMercatorProjection{
		projection:               p,
		falseEasting:             p.length(FalseEasting),
		falseNorthing:            p.length(FalseNorthing),
		longitudeOfNaturalOrigin: p.angle(LongitudeOfNaturalOrigin),
		northingAtOrigin:         r * math.Log(math.Tan(math.Pi/4+p.angle(LatitudeOfNaturalOrigin)/2)),
		radius:                   r,
	}, nil
}

// Forward projects a geographic coordinate into easting and northing in
// metres. The poles have no image.
func (p *PseudoMercatorProjection) Forward(g reference.GeoCoordinate) (reference.Coordinate, error) {
	lat, lon := g.Latitude.BaseValue(), g.Longitude.BaseValue()
	if math.Abs(lat) >= math.Pi/2 {
		return reference.Coordinate{}, georef.Errorf(georef.ComputationFault, "pseudo-mercator forward: latitude %v has no image", g.Latitude)
	}
	x := p.radius * longitudeDelta(lon, p.longitudeOfNaturalOrigin)
	y := p.radius*math.Log(math.Tan(math.Pi/4+lat/2)) - p.northingAtOrigin
	return forwardResult(p.falseEasting+x, p.falseNorthing+y, "pseudo-mercator forward")
}

// Reverse converts easting and northing in metres into a geographic coordinate.
func (p *PseudoMercatorProjection) Reverse(c reference.Coordinate) (reference.GeoCoordinate, error) {
	x := c.X - p.falseEasting
	y := c.Y - p.falseNorthing + p.northingAtOrigin
	lat := math.Pi/2 - 2*math.Atan(math.Exp(-y/p.radius))
	lon := p.longitudeOfNaturalOrigin + x/p.radius
	return reverseResult(lat, lon, "pseudo-mercator reverse")
}

func init() {
	Register(PopularVisualisationPseudoMercator, func(identifier, name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (Operation, error) {
		p, err := NewPseudoMercatorProjection(identifier, name, params, ellipsoid, area)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}
