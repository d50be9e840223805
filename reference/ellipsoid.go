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
	"github.com/spatialmodel/georef/measure"
	"gonum.org/v1/gonum/floats"
)

// equalULP is the tolerance, in units of least precision, used when
// comparing the defining constants of reference objects.
const equalULP = 4

// Ellipsoid is a mathematical model of the shape of the Earth.
// Ellipsoids are immutable and are shared by reference.
type Ellipsoid struct {
	IdentifiedObject

	semiMajorAxis     measure.Length
	semiMinorAxis     measure.Length
	inverseFlattening float64
	isSphere          bool
}

// NewEllipsoidFromInverseFlattening returns an ellipsoid defined by its
// semi-major axis and inverse flattening. An inverse flattening of zero
// or infinity defines a sphere.
func NewEllipsoidFromInverseFlattening(identifier, name string, semiMajorAxis measure.Length, inverseFlattening float64) (*Ellipsoid, error) {
	o, err := NewIdentifiedObject(identifier, name, "")
	if err != nil {
		return nil, err
	}
	if err := checkAxis(semiMajorAxis); err != nil {
		return nil, err
	}
	if inverseFlattening == 0 || math.IsInf(inverseFlattening, 1) {
		return &Ellipsoid{IdentifiedObject: o, semiMajorAxis: semiMajorAxis,
			semiMinorAxis: semiMajorAxis, inverseFlattening: math.Inf(1), isSphere: true}, nil
	}
	if inverseFlattening < 1 || math.IsNaN(inverseFlattening) {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: invalid inverse flattening %g for ellipsoid %s", inverseFlattening, identifier)
	}
	b := semiMajorAxis.BaseValue() * (1 - 1/inverseFlattening)
	return &Ellipsoid{
		IdentifiedObject:  o,
		semiMajorAxis:     semiMajorAxis,
		semiMinorAxis:     mustLength(b/semiMajorAxis.Unit().BaseMultiple, semiMajorAxis.Unit()),
		inverseFlattening: inverseFlattening,
	}, nil
}

// NewEllipsoidFromSemiMinorAxis returns an ellipsoid defined by its two axes.
func NewEllipsoidFromSemiMinorAxis(identifier, name string, semiMajorAxis, semiMinorAxis measure.Length) (*Ellipsoid, error) {
	o, err := NewIdentifiedObject(identifier, name, "")
	if err != nil {
		return nil, err
	}
	if err := checkAxis(semiMajorAxis); err != nil {
		return nil, err
	}
	if err := checkAxis(semiMinorAxis); err != nil {
		return nil, err
	}
	a, b := semiMajorAxis.BaseValue(), semiMinorAxis.BaseValue()
	if b > a {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: semi-minor axis %v exceeds semi-major axis %v", semiMinorAxis, semiMajorAxis)
	}
	e := &Ellipsoid{IdentifiedObject: o, semiMajorAxis: semiMajorAxis, semiMinorAxis: semiMinorAxis}
	if a == b {
		e.isSphere = true
		e.inverseFlattening = math.Inf(1)
	} else {
		e.inverseFlattening = a / (a - b)
	}
	return e, nil
}

// NewSphere returns a spherical ellipsoid with the given radius.
func NewSphere(identifier, name string, radius measure.Length) (*Ellipsoid, error) {
	return NewEllipsoidFromInverseFlattening(identifier, name, radius, math.Inf(1))
}

func checkAxis(l measure.Length) error {
	v := l.BaseValue()
	if !(v > 0) || math.IsInf(v, 1) {
		return georef.Errorf(georef.InvalidArgument, "reference: invalid ellipsoid axis length %v", l)
	}
	return nil
}

func mustLength(v float64, u *measure.Unit) measure.Length {
	l, err := measure.NewLength(v, u)
	if err != nil {
		panic(err)
	}
	return l
}

// SemiMajorAxis returns the equatorial radius.
func (e *Ellipsoid) SemiMajorAxis() measure.Length { return e.semiMajorAxis }

// SemiMinorAxis returns the polar radius.
func (e *Ellipsoid) SemiMinorAxis() measure.Length { return e.semiMinorAxis }

// InverseFlattening returns 1/f, which is +Inf for a sphere.
func (e *Ellipsoid) InverseFlattening() float64 { return e.inverseFlattening }

// Flattening returns (a-b)/a.
func (e *Ellipsoid) Flattening() float64 {
	if e.isSphere {
		return 0
	}
	return 1 / e.inverseFlattening
}

// EccentricitySquared returns the square of the first eccentricity.
func (e *Ellipsoid) EccentricitySquared() float64 {
	f := e.Flattening()
	return f * (2 - f)
}

// Eccentricity returns the first eccentricity.
func (e *Ellipsoid) Eccentricity() float64 { return math.Sqrt(e.EccentricitySquared()) }

// SecondEccentricitySquared returns the square of the second eccentricity.
func (e *Ellipsoid) SecondEccentricitySquared() float64 {
	a, b := e.semiMajorAxis.BaseValue(), e.semiMinorAxis.BaseValue()
	return (a*a - b*b) / (b * b)
}

// IsSphere reports whether the two axes are equal.
func (e *Ellipsoid) IsSphere() bool { return e.isSphere }

// RadiusOfPrimeVerticalCurvature returns the radius of curvature in the
// prime vertical at the given latitude, in metres.
func (e *Ellipsoid) RadiusOfPrimeVerticalCurvature(latitude measure.Angle) float64 {
	s := latitude.Sin()
	return e.semiMajorAxis.BaseValue() / math.Sqrt(1-e.EccentricitySquared()*s*s)
}

// Equal reports whether e and o describe the same figure. Identifiers and
// names are ignored.
func (e *Ellipsoid) Equal(o *Ellipsoid) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil {
		return false
	}
	return floats.EqualWithinULP(e.semiMajorAxis.BaseValue(), o.semiMajorAxis.BaseValue(), equalULP) &&
		floats.EqualWithinULP(e.semiMinorAxis.BaseValue(), o.semiMinorAxis.BaseValue(), equalULP)
}

func mustEllipsoid(e *Ellipsoid, err error) *Ellipsoid {
	if err != nil {
		panic(err)
	}
	return e
}

// Well-known ellipsoids.
var (
	WGS84Ellipsoid = mustEllipsoid(NewEllipsoidFromInverseFlattening("EPSG::7030", "WGS 84",
		measure.Metres(6378137), 298.257223563))
	GRS80Ellipsoid = mustEllipsoid(NewEllipsoidFromInverseFlattening("EPSG::7019", "GRS 1980",
		measure.Metres(6378137), 298.257222101))
	Clarke1866Ellipsoid = mustEllipsoid(NewEllipsoidFromSemiMinorAxis("EPSG::7008", "Clarke 1866",
		measure.Metres(6378206.4), measure.Metres(6356583.8)))
	International1924Ellipsoid = mustEllipsoid(NewEllipsoidFromInverseFlattening("EPSG::7022", "International 1924",
		measure.Metres(6378388), 297))
	AuthalicSphere = mustEllipsoid(NewSphere("EPSG::7035", "Sphere", measure.Metres(6371000)))
)

// Ellipsoids lists the well-known ellipsoids.
var Ellipsoids = []*Ellipsoid{WGS84Ellipsoid, GRS80Ellipsoid, Clarke1866Ellipsoid,
	International1924Ellipsoid, AuthalicSphere}
