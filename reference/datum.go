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

	"github.com/spatialmodel/georef"
	"gonum.org/v1/gonum/floats"
)

// GeodeticDatum anchors an ellipsoid and a prime meridian to the Earth.
type GeodeticDatum struct {
	IdentifiedObject

	ellipsoid     *Ellipsoid
	primeMeridian *PrimeMeridian
	area          *AreaOfUse

	// toWGS84 holds the geocentric translation (dx, dy, dz) in metres that
	// takes positions in this datum to WGS 84.
	toWGS84    [3]float64
	hasToWGS84 bool
}

// NewGeodeticDatum returns a new datum. A nil prime meridian means
// Greenwich. toWGS84 is either empty or the three geocentric translation
// parameters (dx, dy, dz) in metres that take positions in this datum to
// WGS 84.
func NewGeodeticDatum(identifier, name string, ellipsoid *Ellipsoid, primeMeridian *PrimeMeridian, area *AreaOfUse, toWGS84 ...float64) (*GeodeticDatum, error) {
	o, err := NewIdentifiedObject(identifier, name, "")
	if err != nil {
		return nil, err
	}
	if ellipsoid == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: datum %s has no ellipsoid", identifier)
	}
	if primeMeridian == nil {
		primeMeridian = Greenwich
	}
	d := &GeodeticDatum{IdentifiedObject: o, ellipsoid: ellipsoid, primeMeridian: primeMeridian, area: area}
	switch len(toWGS84) {
	case 0:
	case 3:
		for _, v := range toWGS84 {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, georef.Errorf(georef.InvalidArgument, "reference: datum %s has a non-finite WGS 84 translation", identifier)
			}
		}
		copy(d.toWGS84[:], toWGS84)
		d.hasToWGS84 = true
	default:
		return nil, georef.Errorf(georef.InvalidArgument, "reference: datum %s: want 3 WGS 84 translation parameters, have %d", identifier, len(toWGS84))
	}
	return d, nil
}

// Ellipsoid returns the ellipsoid of the datum.
func (d *GeodeticDatum) Ellipsoid() *Ellipsoid { return d.ellipsoid }

// PrimeMeridian returns the prime meridian of the datum.
func (d *GeodeticDatum) PrimeMeridian() *PrimeMeridian { return d.primeMeridian }

// AreaOfUse returns the region where the datum is valid, which may be nil.
func (d *GeodeticDatum) AreaOfUse() *AreaOfUse { return d.area }

// ToWGS84 returns the geocentric translation to WGS 84 and whether the
// datum defines one.
func (d *GeodeticDatum) ToWGS84() ([3]float64, bool) { return d.toWGS84, d.hasToWGS84 }

// Equal reports whether d and o have equal ellipsoids, prime meridians and
// WGS 84 translations. Identifiers must match unless both datums define
// a translation to WGS 84.
func (d *GeodeticDatum) Equal(o *GeodeticDatum) bool {
	if d == o {
		return true
	}
	if d == nil || o == nil {
		return false
	}
	if !d.ellipsoid.Equal(o.ellipsoid) || !d.primeMeridian.Equal(o.primeMeridian) {
		return false
	}
	if d.hasToWGS84 && o.hasToWGS84 {
		return floats.EqualApprox(d.toWGS84[:], o.toWGS84[:], 1e-9)
	}
	return d.identifier == o.identifier
}

func mustDatum(d *GeodeticDatum, err error) *GeodeticDatum {
	if err != nil {
		panic(err)
	}
	return d
}

// Well-known datums.
var (
	WGS84Datum = mustDatum(NewGeodeticDatum("EPSG::6326", "World Geodetic System 1984",
		WGS84Ellipsoid, Greenwich, World, 0, 0, 0))
	ETRS89Datum = mustDatum(NewGeodeticDatum("EPSG::6258", "European Terrestrial Reference System 1989",
		GRS80Ellipsoid, Greenwich, Europe, 0, 0, 0))
	NAD27Datum = mustDatum(NewGeodeticDatum("EPSG::6267", "North American Datum 1927",
		Clarke1866Ellipsoid, Greenwich, NorthAmerica, -8, 160, 176))
	SphereDatum = mustDatum(NewGeodeticDatum("EPSG::6035", "Not specified (based on Authalic Sphere)",
		AuthalicSphere, Greenwich, World))
)

// Datums lists the well-known datums.
var Datums = []*GeodeticDatum{WGS84Datum, ETRS89Datum, NAD27Datum, SphereDatum}
