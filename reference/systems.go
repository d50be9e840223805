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

func mustGeographic(g *GeographicCRS, err error) *GeographicCRS {
	if err != nil {
		panic(err)
	}
	return g
}

// Well-known geographic and geocentric reference systems. Projected
// systems are listed by the catalog package.
var (
	WGS84 = mustGeographic(NewGeographicCRS("EPSG::4326", "WGS 84", Ellipsoidal2D, WGS84Datum, World,
		WithScope("Horizontal component of 3D system."),
		WithAliases("WGS84", "World Geodetic System 1984"),
		WithProj4("+proj=longlat +datum=WGS84 +no_defs")))
	WGS84Geographic3D = mustGeographic(NewGeographicCRS("EPSG::4979", "WGS 84 (3D)", Ellipsoidal3D, WGS84Datum, World,
		WithScope("Geodesy. Navigation and positioning using GPS satellite system.")))
	ETRS89 = mustGeographic(NewGeographicCRS("EPSG::4258", "ETRS89", Ellipsoidal2D, ETRS89Datum, Europe,
		WithScope("Horizontal component of 3D system."),
		WithAliases("European Terrestrial Reference System 1989"),
		WithProj4("+proj=longlat +ellps=GRS80 +towgs84=0,0,0 +no_defs")))
	NAD27 = mustGeographic(NewGeographicCRS("EPSG::4267", "NAD27", Ellipsoidal2D, NAD27Datum, NorthAmerica,
		WithScope("Geodesy."),
		WithAliases("North American Datum 1927"),
		WithProj4("+proj=longlat +ellps=clrk66 +towgs84=-8,160,176 +no_defs")))
	SphereGeographic = mustGeographic(NewGeographicCRS("EPSG::4035", "Unknown datum based upon the Authalic Sphere",
		Ellipsoidal2D, SphereDatum, World))

	WGS84Geocentric = func() *GeocentricCRS {
		g, err := NewGeocentricCRS("EPSG::4978", "WGS 84 (geocentric)", Geocentric3D, WGS84Datum, World,
			WithScope("Geodesy. Navigation and positioning using GPS satellite system."),
			WithProj4("+proj=geocent +datum=WGS84 +units=m +no_defs"))
		if err != nil {
			panic(err)
		}
		return g
	}()
)

// Systems lists the well-known geographic and geocentric reference systems.
var Systems = []ReferenceSystem{WGS84, WGS84Geographic3D, ETRS89, NAD27, SphereGeographic, WGS84Geocentric}
