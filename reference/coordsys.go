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
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/measure"
)

// AxisDirection is the direction of a coordinate system axis.
type AxisDirection int

// Axis directions.
const (
	East AxisDirection = iota
	North
	Up
	West
	South
	GeocentricX
	GeocentricY
	GeocentricZ
)

func (d AxisDirection) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case Up:
		return "up"
	case West:
		return "west"
	case South:
		return "south"
	case GeocentricX:
		return "geocentricX"
	case GeocentricY:
		return "geocentricY"
	case GeocentricZ:
		return "geocentricZ"
	}
	return "unknown"
}

// Axis is one axis of a coordinate system.
type Axis struct {
	Name         string
	Abbreviation string
	Direction    AxisDirection
	Unit         *measure.Unit
}

// CoordinateSystemType is the kind of a coordinate system.
type CoordinateSystemType int

// Coordinate system types.
const (
	Ellipsoidal CoordinateSystemType = iota
	Cartesian
)

func (t CoordinateSystemType) String() string {
	if t == Cartesian {
		return "Cartesian"
	}
	return "ellipsoidal"
}

// CoordinateSystem is an ordered set of axes.
type CoordinateSystem struct {
	IdentifiedObject
	kind CoordinateSystemType
	axes []Axis
}

// NewCoordinateSystem returns a coordinate system of one to three axes.
// Ellipsoidal systems take two angular axes and an optional height axis.
func NewCoordinateSystem(identifier, name string, kind CoordinateSystemType, axes ...Axis) (*CoordinateSystem, error) {
	o, err := NewIdentifiedObject(identifier, name, "")
	if err != nil {
		return nil, err
	}
	if len(axes) == 0 || len(axes) > 3 {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: coordinate system %s has %d axes", identifier, len(axes))
	}
	for i, a := range axes {
		if a.Unit == nil {
			return nil, georef.Errorf(georef.InvalidArgument, "reference: axis %d of coordinate system %s has no unit", i, identifier)
		}
		want := measure.LengthQuantity
		if kind == Ellipsoidal && i < 2 {
			want = measure.AngleQuantity
		}
		if err := a.Unit.Check(want); err != nil {
			return nil, err
		}
	}
	return &CoordinateSystem{IdentifiedObject: o, kind: kind, axes: append([]Axis(nil), axes...)}, nil
}

// Type returns the kind of the coordinate system.
func (cs *CoordinateSystem) Type() CoordinateSystemType { return cs.kind }

// Dimension returns the number of axes.
func (cs *CoordinateSystem) Dimension() int { return len(cs.axes) }

// Axis returns the i-th axis.
func (cs *CoordinateSystem) Axis(i int) Axis { return cs.axes[i] }

// Axes returns all axes in order.
func (cs *CoordinateSystem) Axes() []Axis { return append([]Axis(nil), cs.axes...) }

// swapped reports whether the first axis points north, i.e. whether
// coordinates are stored as (northing, easting) or (latitude, longitude).
func (cs *CoordinateSystem) swapped() bool {
	return len(cs.axes) > 1 && (cs.axes[0].Direction == North || cs.axes[0].Direction == South)
}

// heightUnit returns the unit of the third axis, or metres.
func (cs *CoordinateSystem) heightUnit() *measure.Unit {
	if len(cs.axes) > 2 {
		return cs.axes[2].Unit
	}
	return measure.Metre
}

// Equal reports whether cs and o have the same kind and axes.
func (cs *CoordinateSystem) Equal(o *CoordinateSystem) bool {
	if cs == o {
		return true
	}
	if cs == nil || o == nil || cs.kind != o.kind || len(cs.axes) != len(o.axes) {
		return false
	}
	for i := range cs.axes {
		if cs.axes[i].Direction != o.axes[i].Direction ||
			cs.axes[i].Unit.BaseMultiple != o.axes[i].Unit.BaseMultiple {
			return false
		}
	}
	return true
}

func mustCS(cs *CoordinateSystem, err error) *CoordinateSystem {
	if err != nil {
		panic(err)
	}
	return cs
}

var (
	longitudeAxis = Axis{Name: "Geodetic longitude", Abbreviation: "Lon", Direction: East, Unit: measure.Degree}
	latitudeAxis  = Axis{Name: "Geodetic latitude", Abbreviation: "Lat", Direction: North, Unit: measure.Degree}
	heightAxis    = Axis{Name: "Ellipsoidal height", Abbreviation: "h", Direction: Up, Unit: measure.Metre}
	eastingAxis   = Axis{Name: "Easting", Abbreviation: "E", Direction: East, Unit: measure.Metre}
	northingAxis  = Axis{Name: "Northing", Abbreviation: "N", Direction: North, Unit: measure.Metre}
)

// Well-known coordinate systems.
var (
	Ellipsoidal2D = mustCS(NewCoordinateSystem("EPSG::6424", "Ellipsoidal 2D CS. Axes: longitude, latitude. UoM: degree",
		Ellipsoidal, longitudeAxis, latitudeAxis))
	Ellipsoidal3D = mustCS(NewCoordinateSystem("GEOREF::6426", "Ellipsoidal 3D CS. Axes: longitude, latitude, height. UoM: degree, metre",
		Ellipsoidal, longitudeAxis, latitudeAxis, heightAxis))
	Cartesian2D = mustCS(NewCoordinateSystem("EPSG::4400", "Cartesian 2D CS. Axes: easting, northing. UoM: metre",
		Cartesian, eastingAxis, northingAxis))
	Geocentric3D = mustCS(NewCoordinateSystem("EPSG::6500", "Earth centred, earth fixed, right-handed 3D CS. UoM: metre",
		Cartesian,
		Axis{Name: "Geocentric X", Abbreviation: "X", Direction: GeocentricX, Unit: measure.Metre},
		Axis{Name: "Geocentric Y", Abbreviation: "Y", Direction: GeocentricY, Unit: measure.Metre},
		Axis{Name: "Geocentric Z", Abbreviation: "Z", Direction: GeocentricZ, Unit: measure.Metre}))
)
