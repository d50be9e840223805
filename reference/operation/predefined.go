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
	"github.com/spatialmodel/georef/measure"
	"github.com/spatialmodel/georef/reference"
)

func zeroOrigin() Parameters {
	return Parameters{
		LatitudeOfNaturalOrigin:       AngleValue(measure.AngleZero),
		LongitudeOfNaturalOrigin:      AngleValue(measure.AngleZero),
		LatitudeOf1stStandardParallel: AngleValue(measure.AngleZero),
		FalseEasting:                  LengthValue(measure.LengthZero),
		FalseNorthing:                 LengthValue(measure.LengthZero),
	}
}

func projectionOf(p Projection, err error) (Projection, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

func translationOf(identifier, name string, area *reference.AreaOfUse, dx, dy, dz float64) func() (GeocentricTransformation, error) {
	return func() (GeocentricTransformation, error) {
		t, err := NewGeocentricTranslation(identifier, name, TranslationParameters(dx, dy, dz), area)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

// Projections creates projections, including the well-known ones below.
var Projections = NewFactory[Projection](
	Predefined[Projection]{
		Identifier: "ESRI::54003",
		Name:       "World Miller Cylindrical",
		Create: func() (Projection, error) {
			return projectionOf(NewWorldMillerCylindricalProjection("ESRI::54003", "World Miller Cylindrical",
				zeroOrigin(), reference.WGS84Ellipsoid, reference.World))
		},
	},
	Predefined[Projection]{
		Identifier: "EPSG::3856",
		Name:       "Popular Visualisation Pseudo-Mercator",
		Create: func() (Projection, error) {
			return projectionOf(NewPseudoMercatorProjection("EPSG::3856", "Popular Visualisation Pseudo-Mercator",
				zeroOrigin(), reference.WGS84Ellipsoid, reference.PseudoMercatorArea))
		},
	},
	Predefined[Projection]{
		Identifier: "ESRI::53002",
		Name:       "Sphere Equidistant Cylindrical",
		Create: func() (Projection, error) {
			return projectionOf(NewEquidistantCylindricalProjection("ESRI::53002", "Sphere Equidistant Cylindrical",
				zeroOrigin(), reference.AuthalicSphere, reference.World))
		},
	},
)

// GeocentricTransformations creates geocentric transformations, including
// the well-known datum shifts below.
var GeocentricTransformations = NewFactory[GeocentricTransformation](
	Predefined[GeocentricTransformation]{
		Identifier: "EPSG::1173",
		Name:       "NAD27 to WGS 84 (4)",
		Create:     translationOf("EPSG::1173", "NAD27 to WGS 84 (4)", reference.NorthAmerica, -8, 160, 176),
	},
	Predefined[GeocentricTransformation]{
		Identifier: "EPSG::1149",
		Name:       "ETRS89 to WGS 84 (1)",
		Create:     translationOf("EPSG::1149", "ETRS89 to WGS 84 (1)", reference.Europe, 0, 0, 0),
	},
)

// Operations creates any registered operation.
var Operations = NewFactory[Operation]()

// GeocentricConversions creates geographic/geocentric conversions.
var GeocentricConversions = NewFactory[*GeographicGeocentricConverter]()
