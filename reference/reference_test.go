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
	"testing"

	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/measure"
	"gonum.org/v1/gonum/floats"
)

func TestIdentifiedObject(t *testing.T) {
	if _, err := NewIdentifiedObject("", "nameless", ""); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("empty identifier: have %v, want InvalidArgument", err)
	}
	o, err := NewIdentifiedObject("EPSG::4326", "WGS 84", "", "World Geodetic System 1984")
	if err != nil {
		t.Fatal(err)
	}
	if o.Authority() != "EPSG" {
		t.Errorf("authority: have %q, want EPSG", o.Authority())
	}
	if !o.MatchesIdentifier("epsg::43") {
		t.Error("identifier should match case-insensitively")
	}
	if !o.MatchesName("geodetic") {
		t.Error("name should match aliases")
	}
	if o.MatchesName("wgs.84") {
		t.Error("patterns should be matched literally")
	}
}

func TestEllipsoid(t *testing.T) {
	b := WGS84Ellipsoid.SemiMinorAxis().BaseValue()
	if !floats.EqualWithinAbs(b, 6356752.314245, 1e-6) {
		t.Errorf("WGS 84 semi-minor axis: have %.6f, want 6356752.314245", b)
	}
	if !floats.EqualWithinAbs(WGS84Ellipsoid.EccentricitySquared(), 0.00669437999014, 1e-14) {
		t.Errorf("WGS 84 e²: have %g", WGS84Ellipsoid.EccentricitySquared())
	}
	if !floats.EqualWithinAbs(Clarke1866Ellipsoid.InverseFlattening(), 294.978698214, 1e-6) {
		t.Errorf("Clarke 1866 1/f: have %.9f", Clarke1866Ellipsoid.InverseFlattening())
	}
	if !AuthalicSphere.IsSphere() || AuthalicSphere.Flattening() != 0 || AuthalicSphere.Eccentricity() != 0 {
		t.Error("the authalic sphere should have no flattening")
	}
	if WGS84Ellipsoid.Equal(GRS80Ellipsoid) {
		t.Error("WGS 84 and GRS 1980 should differ")
	}
	e, err := NewEllipsoidFromSemiMinorAxis("TEST::1", "copy", measure.Kilometres(6378.137), WGS84Ellipsoid.SemiMinorAxis())
	if err != nil {
		t.Fatal(err)
	}
	if !e.Equal(WGS84Ellipsoid) {
		t.Error("ellipsoids with the same axes in different units should be equal")
	}
	for _, test := range []struct {
		name string
		f    func() (*Ellipsoid, error)
		kind georef.Kind
	}{
		{"empty id", func() (*Ellipsoid, error) { return NewSphere("", "", measure.Metres(1)) }, georef.InvalidArgument},
		{"zero axis", func() (*Ellipsoid, error) { return NewSphere("TEST::2", "", measure.LengthZero) }, georef.InvalidArgument},
		{"minor > major", func() (*Ellipsoid, error) {
			return NewEllipsoidFromSemiMinorAxis("TEST::3", "", measure.Metres(1), measure.Metres(2))
		}, georef.InvalidArgument},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, err := test.f(); !georef.Is(err, test.kind) {
				t.Errorf("have %v, want %v", err, test.kind)
			}
		})
	}
}

func TestDatum(t *testing.T) {
	if _, err := NewGeodeticDatum("TEST::1", "", nil, nil, nil); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("nil ellipsoid: have %v, want InvalidArgument", err)
	}
	if _, err := NewGeodeticDatum("TEST::1", "", WGS84Ellipsoid, nil, nil, 1, 2); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("two parameters: have %v, want InvalidArgument", err)
	}
	d, err := NewGeodeticDatum("TEST::1", "", Clarke1866Ellipsoid, nil, nil, -8, 160, 176)
	if err != nil {
		t.Fatal(err)
	}
	if d.PrimeMeridian() != Greenwich {
		t.Error("the prime meridian should default to Greenwich")
	}
	if !d.Equal(NAD27Datum) {
		t.Error("datums with the same ellipsoid and translation should be equal")
	}
	if _, ok := SphereDatum.ToWGS84(); ok {
		t.Error("the sphere datum has no WGS 84 translation")
	}
	if WGS84Datum.Equal(NAD27Datum) {
		t.Error("WGS 84 and NAD27 should differ")
	}
}

func TestAreaOfUse(t *testing.T) {
	for _, test := range []struct {
		area     *AreaOfUse
		lat, lon float64
		want     bool
	}{
		{World, 89, 179, true},
		{Europe, 48.8, 2.35, true},
		{Europe, 40.7, -74, false},
		{NorthAmerica, 40.7, -74, true},
		{NorthAmerica, 52, 175, true},
		{NorthAmerica, 52, 20, false},
		{World, 0, 540, true},
	} {
		have := test.area.Contains(measure.Degrees(test.lat), measure.Degrees(test.lon))
		if have != test.want {
			t.Errorf("%s contains (%g, %g): have %v, want %v", test.area.Name(), test.lat, test.lon, have, test.want)
		}
	}
	if _, err := NewAreaOfUse("TEST::1", "", 10, 0, -10, 0); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("south > north: have %v, want InvalidArgument", err)
	}
}

func TestGeographicCRS(t *testing.T) {
	if WGS84.Type() != Geographic2D || WGS84.Dimension() != 2 {
		t.Errorf("EPSG::4326: have %v/%d", WGS84.Type(), WGS84.Dimension())
	}
	if WGS84Geographic3D.Type() != Geographic3D || WGS84Geographic3D.Dimension() != 3 {
		t.Errorf("EPSG::4979: have %v/%d", WGS84Geographic3D.Type(), WGS84Geographic3D.Dimension())
	}
	if _, err := NewGeographicCRS("TEST::1", "", nil, WGS84Datum, World); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("nil coordinate system: have %v", err)
	}
	if _, err := NewGeographicCRS("TEST::1", "", Ellipsoidal2D, nil, World); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("nil datum: have %v", err)
	}
	if _, err := NewGeographicCRS("TEST::1", "", Cartesian2D, WGS84Datum, World); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("Cartesian coordinate system: have %v", err)
	}

	g := WGS84.ToGeoCoordinate(Coordinate{X: 90, Y: 45})
	if !floats.EqualWithinAbs(g.Latitude.BaseValue(), math.Pi/4, 1e-15) ||
		!floats.EqualWithinAbs(g.Longitude.BaseValue(), math.Pi/2, 1e-15) {
		t.Errorf("ToGeoCoordinate: have %v", g)
	}
	c := WGS84.FromGeoCoordinate(g)
	if !floats.EqualWithinAbs(c.X, 90, 1e-12) || !floats.EqualWithinAbs(c.Y, 45, 1e-12) {
		t.Errorf("FromGeoCoordinate: have %v, want (90 45)", c)
	}

	latLon, err := NewCoordinateSystem("TEST::2", "lat/lon grads", Ellipsoidal,
		Axis{Name: "Lat", Direction: North, Unit: measure.Grad},
		Axis{Name: "Lon", Direction: East, Unit: measure.Grad})
	if err != nil {
		t.Fatal(err)
	}
	swapped, err := NewGeographicCRS("TEST::3", "", latLon, WGS84Datum, World)
	if err != nil {
		t.Fatal(err)
	}
	g = swapped.ToGeoCoordinate(Coordinate{X: 50, Y: 100})
	if !floats.EqualWithinAbs(g.Latitude.Degrees(), 45, 1e-12) || !floats.EqualWithinAbs(g.Longitude.Degrees(), 90, 1e-12) {
		t.Errorf("swapped axes: have %v, want (45° 90°)", g)
	}
}

func TestEqual(t *testing.T) {
	copy4326, err := NewGeographicCRS("EPSG::4326", "WGS 84 copy", Ellipsoidal2D, WGS84Datum, World)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name string
		a, b ReferenceSystem
		want bool
	}{
		{"same", WGS84, WGS84, true},
		{"value", WGS84, copy4326, true},
		{"different dimension", WGS84, WGS84Geographic3D, false},
		{"different datum", WGS84, NAD27, false},
		{"different type", WGS84, WGS84Geocentric, false},
		{"nil", WGS84, nil, false},
		{"both nil", nil, nil, true},
	} {
		t.Run(test.name, func(t *testing.T) {
			if have := Equal(test.a, test.b); have != test.want {
				t.Errorf("have %v, want %v", have, test.want)
			}
		})
	}
}

func TestProjectedCRSUnits(t *testing.T) {
	feet, err := NewCoordinateSystem("TEST::1", "northing, easting in US survey feet", Cartesian,
		Axis{Name: "Northing", Direction: North, Unit: measure.USSurveyFoot},
		Axis{Name: "Easting", Direction: East, Unit: measure.USSurveyFoot})
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewProjectedCRS("TEST::2", "", WGS84, feet, nil, World, WithProj4("+proj=merc +datum=WGS84 +units=us-ft"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Type() != Projected2D {
		t.Errorf("type: have %v", p.Type())
	}
	m := p.ToMetres(Coordinate{X: 3937, Y: 1200})
	if !floats.EqualWithinAbs(m.X, 1200*1200/3937., 1e-9) || !floats.EqualWithinAbs(m.Y, 1200, 1e-9) {
		t.Errorf("ToMetres: have %v, want (365.7607 1200)", m)
	}
	back := p.FromMetres(m)
	if !floats.EqualWithinAbs(back.X, 3937, 1e-9) || !floats.EqualWithinAbs(back.Y, 1200, 1e-9) {
		t.Errorf("FromMetres: have %v, want (3937 1200)", back)
	}
	if _, err := p.Forward(GeoCoordinateFromDegrees(0, 0)); !georef.Is(err, georef.UnsupportedTransformation) {
		t.Errorf("Forward without projection: have %v", err)
	}
	if _, err := NewProjectedCRS("TEST::3", "", WGS84, Cartesian2D, nil, World); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("no projection: have %v, want InvalidArgument", err)
	}
}
