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

// GeographicGeocentricConverter converts between geographic coordinates
// and Earth-centred, Earth-fixed Cartesian coordinates in metres.
type GeographicGeocentricConverter struct {
	operation
	ellipsoid *reference.Ellipsoid
	a, e2     float64
}

// NewGeographicGeocentricConverter returns a geographic/geocentric
// conversion on the given ellipsoid. The method takes no parameters.
func NewGeographicGeocentricConverter(identifier, name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (*GeographicGeocentricConverter, error) {
	if ellipsoid == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "operation: conversion %s has no ellipsoid", identifier)
	}
	o, err := newOperation(identifier, name, GeographicGeocentricConversion, params, area)
	if err != nil {
		return nil, err
	}
	return &GeographicGeocentricConverter{
		operation: o,
		ellipsoid: ellipsoid,
		a:         ellipsoid.SemiMajorAxis().BaseValue(),
		e2:        ellipsoid.EccentricitySquared(),
	}, nil
}

// Ellipsoid returns the ellipsoid of the conversion.
func (c *GeographicGeocentricConverter) Ellipsoid() *reference.Ellipsoid { return c.ellipsoid }

// Forward converts a geographic coordinate into geocentric X, Y and Z.
func (c *GeographicGeocentricConverter) Forward(g reference.GeoCoordinate) (reference.Coordinate, error) {
	lat, lon, h := g.Latitude.BaseValue(), g.Longitude.BaseValue(), g.Height.BaseValue()
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)
	n := c.a / math.Sqrt(1-c.e2*sinLat*sinLat)
	return reference.CheckFinite(reference.Coordinate{
		X: (n + h) * cosLat * cosLon,
		Y: (n + h) * cosLat * sinLon,
		Z: ((1-c.e2)*n + h) * sinLat,
	}, "geocentric forward")
}

// Reverse converts geocentric X, Y and Z into a geographic coordinate.
func (c *GeographicGeocentricConverter) Reverse(p reference.Coordinate) (reference.GeoCoordinate, error) {
	if !p.IsValid() {
		return reference.GeoCoordinate{}, georef.Errorf(georef.ComputationFault, "geocentric reverse: non-finite input %v", p)
	}
	r := math.Hypot(p.X, p.Y)
	lon := math.Atan2(p.Y, p.X)
	lat := math.Atan2(p.Z, r*(1-c.e2))
	for i := 0; i < 16; i++ {
		s := math.Sin(lat)
		n := c.a / math.Sqrt(1-c.e2*s*s)
		next := math.Atan2(p.Z+c.e2*n*s, r)
		if math.Abs(next-lat) < 1e-15 {
			lat = next
			break
		}
		lat = next
	}
	sinLat, cosLat := math.Sincos(lat)
	h := r*cosLat + p.Z*sinLat - c.a*math.Sqrt(1-c.e2*sinLat*sinLat)
	return reference.CheckFiniteGeo(reference.GeoCoordinate{
		Latitude:  measure.Radians(lat),
		Longitude: measure.Radians(lon),
		Height:    measure.Metres(h),
	}, "geocentric reverse")
}

// GeocentricTranslation shifts geocentric coordinates by a constant vector.
type GeocentricTranslation struct {
	operation
	dx, dy, dz float64
}

// NewGeocentricTranslation returns a geocentric translation. params must
// hold the X, Y and Z axis translations.
func NewGeocentricTranslation(identifier, name string, params Parameters, area *reference.AreaOfUse) (*GeocentricTranslation, error) {
	o, err := newOperation(identifier, name, GeocentricTranslations, params, area)
	if err != nil {
		return nil, err
	}
	return &GeocentricTranslation{
		operation: o,
		dx:        o.length(XAxisTranslation),
		dy:        o.length(YAxisTranslation),
		dz:        o.length(ZAxisTranslation),
	}, nil
}

// TranslationParameters returns the parameters of a geocentric translation
// by (dx, dy, dz) metres.
func TranslationParameters(dx, dy, dz float64) Parameters {
	return Parameters{
		XAxisTranslation: LengthValue(measure.Metres(dx)),
		YAxisTranslation: LengthValue(measure.Metres(dy)),
		ZAxisTranslation: LengthValue(measure.Metres(dz)),
	}
}

// Forward applies the translation.
func (t *GeocentricTranslation) Forward(c reference.Coordinate) (reference.Coordinate, error) {
	return reference.CheckFinite(reference.Coordinate{X: c.X + t.dx, Y: c.Y + t.dy, Z: c.Z + t.dz}, "geocentric translation")
}

// Reverse applies the inverse translation.
func (t *GeocentricTranslation) Reverse(c reference.Coordinate) (reference.Coordinate, error) {
	return reference.CheckFinite(reference.Coordinate{X: c.X - t.dx, Y: c.Y - t.dy, Z: c.Z - t.dz}, "geocentric translation")
}

func init() {
	Register(GeographicGeocentricConversion, func(identifier, name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (Operation, error) {
		c, err := NewGeographicGeocentricConverter(identifier, name, params, ellipsoid, area)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
	Register(GeocentricTranslations, func(identifier, name string, params Parameters, _ *reference.Ellipsoid, area *reference.AreaOfUse) (Operation, error) {
		t, err := NewGeocentricTranslation(identifier, name, params, area)
		if err != nil {
			return nil, err
		}
		return t, nil
	})
}
