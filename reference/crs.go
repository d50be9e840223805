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

// GeographicCRS is a reference system based on an ellipsoidal coordinate
// system. Coordinates hold the longitude in X, the latitude in Y and the
// ellipsoidal height in Z, unless the first axis of the coordinate system
// points north.
type GeographicCRS struct {
	crs
	datum *GeodeticDatum
}

// NewGeographicCRS returns a new geographic reference system.
func NewGeographicCRS(identifier, name string, cs *CoordinateSystem, datum *GeodeticDatum, area *AreaOfUse, opts ...Option) (*GeographicCRS, error) {
	if cs == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: geographic system %s has no coordinate system", identifier)
	}
	if datum == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: geographic system %s has no datum", identifier)
	}
	if cs.Type() != Ellipsoidal || cs.Dimension() < 2 {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: geographic system %s needs an ellipsoidal coordinate system of at least 2 axes", identifier)
	}
	c, err := newCRS(identifier, name, cs, area, opts)
	if err != nil {
		return nil, err
	}
	return &GeographicCRS{crs: c, datum: datum}, nil
}

// Datum returns the geodetic datum.
func (g *GeographicCRS) Datum() *GeodeticDatum { return g.datum }

// Type returns Geographic2D or Geographic3D.
func (g *GeographicCRS) Type() ReferenceSystemType {
	if g.Dimension() == 3 {
		return Geographic3D
	}
	return Geographic2D
}

// ToGeoCoordinate converts a coordinate of the system into a geographic
// coordinate with its longitude measured from Greenwich.
func (g *GeographicCRS) ToGeoCoordinate(c Coordinate) GeoCoordinate {
	lon, lat := c.X, c.Y
	i, j := 0, 1
	if g.cs.swapped() {
		lon, lat = lat, lon
		i, j = 1, 0
	}
	return GeoCoordinate{
		Latitude:  measure.Radians(lat * g.cs.axes[j].Unit.BaseMultiple),
		Longitude: measure.Radians(lon*g.cs.axes[i].Unit.BaseMultiple + g.datum.primeMeridian.longitude.BaseValue()),
		Height:    measure.Metres(c.Z * g.cs.heightUnit().BaseMultiple),
	}
}

// FromGeoCoordinate converts a geographic coordinate into a coordinate of
// the system.
func (g *GeographicCRS) FromGeoCoordinate(p GeoCoordinate) Coordinate {
	i, j := 0, 1
	if g.cs.swapped() {
		i, j = 1, 0
	}
	lon := (p.Longitude.BaseValue() - g.datum.primeMeridian.longitude.BaseValue()) / g.cs.axes[i].Unit.BaseMultiple
	lat := p.Latitude.BaseValue() / g.cs.axes[j].Unit.BaseMultiple
	if g.cs.swapped() {
		lon, lat = lat, lon
	}
	return Coordinate{X: lon, Y: lat, Z: p.Height.BaseValue() / g.cs.heightUnit().BaseMultiple}
}

// Equal reports whether o is a geographic system with the same
// identifier, coordinate system and datum.
func (g *GeographicCRS) Equal(o ReferenceSystem) bool {
	og, ok := o.(*GeographicCRS)
	if !ok || og == nil {
		return false
	}
	if g == og {
		return true
	}
	return g.identifier == og.identifier && g.cs.Equal(og.cs) && g.datum.Equal(og.datum)
}

// GeocentricCRS is an Earth-centred, Earth-fixed Cartesian reference system.
type GeocentricCRS struct {
	crs
	datum *GeodeticDatum
}

// NewGeocentricCRS returns a new geocentric reference system.
func NewGeocentricCRS(identifier, name string, cs *CoordinateSystem, datum *GeodeticDatum, area *AreaOfUse, opts ...Option) (*GeocentricCRS, error) {
	if cs == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: geocentric system %s has no coordinate system", identifier)
	}
	if datum == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: geocentric system %s has no datum", identifier)
	}
	if cs.Type() != Cartesian || cs.Dimension() != 3 {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: geocentric system %s needs a 3D Cartesian coordinate system", identifier)
	}
	c, err := newCRS(identifier, name, cs, area, opts)
	if err != nil {
		return nil, err
	}
	return &GeocentricCRS{crs: c, datum: datum}, nil
}

// Datum returns the geodetic datum.
func (g *GeocentricCRS) Datum() *GeodeticDatum { return g.datum }

// Type returns Geocentric.
func (g *GeocentricCRS) Type() ReferenceSystemType { return Geocentric }

// ToMetres converts a coordinate of the system into metres.
func (g *GeocentricCRS) ToMetres(c Coordinate) Coordinate {
	return Coordinate{
		X: c.X * g.cs.axes[0].Unit.BaseMultiple,
		Y: c.Y * g.cs.axes[1].Unit.BaseMultiple,
		Z: c.Z * g.cs.axes[2].Unit.BaseMultiple,
	}
}

// FromMetres converts a coordinate in metres into the units of the system.
func (g *GeocentricCRS) FromMetres(c Coordinate) Coordinate {
	return Coordinate{
		X: c.X / g.cs.axes[0].Unit.BaseMultiple,
		Y: c.Y / g.cs.axes[1].Unit.BaseMultiple,
		Z: c.Z / g.cs.axes[2].Unit.BaseMultiple,
	}
}

// Equal reports whether o is a geocentric system with the same
// identifier and datum.
func (g *GeocentricCRS) Equal(o ReferenceSystem) bool {
	og, ok := o.(*GeocentricCRS)
	if !ok || og == nil {
		return false
	}
	if g == og {
		return true
	}
	return g.identifier == og.identifier && g.cs.Equal(og.cs) && g.datum.Equal(og.datum)
}

// ProjectedCRS is a planar reference system derived from a geographic
// system by a projection.
type ProjectedCRS struct {
	crs
	base       *GeographicCRS
	projection Projection
}

// NewProjectedCRS returns a new projected reference system. The projection
// may be nil only if the system carries a PROJ.4 definition.
func NewProjectedCRS(identifier, name string, base *GeographicCRS, cs *CoordinateSystem, projection Projection, area *AreaOfUse, opts ...Option) (*ProjectedCRS, error) {
	if base == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: projected system %s has no base system", identifier)
	}
	if cs == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: projected system %s has no coordinate system", identifier)
	}
	if cs.Type() != Cartesian || cs.Dimension() < 2 {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: projected system %s needs a Cartesian coordinate system of at least 2 axes", identifier)
	}
	c, err := newCRS(identifier, name, cs, area, opts)
	if err != nil {
		return nil, err
	}
	if projection == nil && c.proj4 == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: projected system %s has neither a projection nor a PROJ.4 definition", identifier)
	}
	return &ProjectedCRS{crs: c, base: base, projection: projection}, nil
}

// Base returns the geographic system the projection is applied to.
func (p *ProjectedCRS) Base() *GeographicCRS { return p.base }

// Datum returns the datum of the base system.
func (p *ProjectedCRS) Datum() *GeodeticDatum { return p.base.datum }

// Projection returns the projection, which is nil for systems defined
// only by a PROJ.4 definition.
func (p *ProjectedCRS) Projection() Projection { return p.projection }

// Type returns Projected2D or Projected3D.
func (p *ProjectedCRS) Type() ReferenceSystemType {
	if p.Dimension() == 3 {
		return Projected3D
	}
	return Projected2D
}

// ToMetres converts a coordinate of the system into (easting, northing,
// height) in metres.
func (p *ProjectedCRS) ToMetres(c Coordinate) Coordinate {
	x, y := c.X, c.Y
	e, n := 0, 1
	if p.cs.swapped() {
		x, y = y, x
		e, n = 1, 0
	}
	return Coordinate{
		X: x * p.cs.axes[e].Unit.BaseMultiple,
		Y: y * p.cs.axes[n].Unit.BaseMultiple,
		Z: c.Z * p.cs.heightUnit().BaseMultiple,
	}
}

// FromMetres converts (easting, northing, height) in metres into a
// coordinate of the system.
func (p *ProjectedCRS) FromMetres(c Coordinate) Coordinate {
	e, n := 0, 1
	if p.cs.swapped() {
		e, n = 1, 0
	}
	x := c.X / p.cs.axes[e].Unit.BaseMultiple
	y := c.Y / p.cs.axes[n].Unit.BaseMultiple
	if p.cs.swapped() {
		x, y = y, x
	}
	return Coordinate{X: x, Y: y, Z: c.Z / p.cs.heightUnit().BaseMultiple}
}

// Forward projects a geographic coordinate into the system.
func (p *ProjectedCRS) Forward(g GeoCoordinate) (Coordinate, error) {
	if p.projection == nil {
		return Coordinate{}, georef.Errorf(georef.UnsupportedTransformation, "reference: projected system %s has no projection", p.identifier)
	}
	c, err := p.projection.Forward(g)
	if err != nil {
		return Coordinate{}, err
	}
	c.Z = g.Height.BaseValue()
	return p.FromMetres(c), nil
}

// Reverse converts a coordinate of the system into a geographic coordinate.
func (p *ProjectedCRS) Reverse(c Coordinate) (GeoCoordinate, error) {
	if p.projection == nil {
		return GeoCoordinate{}, georef.Errorf(georef.UnsupportedTransformation, "reference: projected system %s has no projection", p.identifier)
	}
	m := p.ToMetres(c)
	g, err := p.projection.Reverse(m)
	if err != nil {
		return GeoCoordinate{}, err
	}
	g.Height = measure.Metres(m.Z)
	return g, nil
}

// Equal reports whether o is a projected system with the same
// identifier, base system and projection.
func (p *ProjectedCRS) Equal(o ReferenceSystem) bool {
	op, ok := o.(*ProjectedCRS)
	if !ok || op == nil {
		return false
	}
	if p == op {
		return true
	}
	if p.identifier != op.identifier || !p.cs.Equal(op.cs) || !p.base.Equal(op.base) {
		return false
	}
	if p.projection == nil || op.projection == nil {
		return p.projection == nil && op.projection == nil && p.proj4 == op.proj4
	}
	return p.projection.Equal(op.projection)
}
