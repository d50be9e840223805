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

package geometry

import (
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
)

// Factory creates geometries bound to a reference system. Metadata passed
// to the Create methods is copied; nil or empty metadata leaves the new
// geometry without metadata.
type Factory interface {
	// ReferenceSystem returns the reference system of the geometries
	// created by the factory.
	ReferenceSystem() reference.ReferenceSystem
	// WithReferenceSystem returns a factory of the same family bound to rs.
	WithReferenceSystem(rs reference.ReferenceSystem) Factory

	CreatePoint(c reference.Coordinate, md Metadata) *Point
	CreateLine(start, end reference.Coordinate, md Metadata) *Line
	CreateLineString(cs []reference.Coordinate, md Metadata) (*LineString, error)
	CreateLinearRing(cs []reference.Coordinate, md Metadata) (*LinearRing, error)
	CreatePolygon(shell *LinearRing, holes []*LinearRing, md Metadata) (*Polygon, error)
	CreateTriangle(a, b, c reference.Coordinate, md Metadata) *Triangle
	CreateMultiPoint(points []*Point, md Metadata) (*MultiPoint, error)
	CreateMultiLineString(lineStrings []*LineString, md Metadata) (*MultiLineString, error)
	CreateMultiPolygon(polygons []*Polygon, md Metadata) (*MultiPolygon, error)
	CreateGeometryCollection(geometries []Geometry, md Metadata) (*Collection, error)
}

// DefaultFactory is the Factory of this package.
type DefaultFactory struct {
	rs reference.ReferenceSystem
}

// NewFactory returns a factory for geometries in rs. rs may be nil for
// geometries with no known reference system.
func NewFactory(rs reference.ReferenceSystem) *DefaultFactory {
	return &DefaultFactory{rs: rs}
}

// ReferenceSystem returns the reference system of the factory.
func (f *DefaultFactory) ReferenceSystem() reference.ReferenceSystem { return f.rs }

// WithReferenceSystem returns a new factory bound to rs.
func (f *DefaultFactory) WithReferenceSystem(rs reference.ReferenceSystem) Factory {
	return NewFactory(rs)
}

func (f *DefaultFactory) base(md Metadata) base {
	return base{factory: f, metadata: md.Copy()}
}

// CreatePoint creates a point.
func (f *DefaultFactory) CreatePoint(c reference.Coordinate, md Metadata) *Point {
	return &Point{base: f.base(md), coordinate: c}
}

// CreateLine creates a line segment.
func (f *DefaultFactory) CreateLine(start, end reference.Coordinate, md Metadata) *Line {
	return &Line{base: f.base(md), start: start, end: end}
}

// CreateLineString creates a line string from at least two positions.
func (f *DefaultFactory) CreateLineString(cs []reference.Coordinate, md Metadata) (*LineString, error) {
	if len(cs) < 2 {
		return nil, georef.Errorf(georef.InvalidArgument, "geometry: a line string needs 2 positions, have %d", len(cs))
	}
	return &LineString{curve{base: f.base(md), coordinates: append([]reference.Coordinate(nil), cs...)}}, nil
}

// CreateLinearRing creates a ring. An open sequence of positions is closed
// by repeating its first position.
func (f *DefaultFactory) CreateLinearRing(cs []reference.Coordinate, md Metadata) (*LinearRing, error) {
	ring := append([]reference.Coordinate(nil), cs...)
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	if len(ring) < 4 {
		return nil, georef.Errorf(georef.InvalidArgument, "geometry: a linear ring needs 4 positions, have %d", len(ring))
	}
	return &LinearRing{curve{base: f.base(md), coordinates: ring}}, nil
}

// CreatePolygon creates a polygon from its shell and holes.
func (f *DefaultFactory) CreatePolygon(shell *LinearRing, holes []*LinearRing, md Metadata) (*Polygon, error) {
	if shell == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "geometry: polygon without a shell")
	}
	for i, h := range holes {
		if h == nil {
			return nil, georef.Errorf(georef.InvalidArgument, "geometry: polygon hole %d is nil", i)
		}
	}
	p := &Polygon{base: f.base(md), shell: shell}
	if len(holes) > 0 {
		p.holes = append([]*LinearRing(nil), holes...)
	}
	return p, nil
}

// CreateTriangle creates a triangle from its three corners.
func (f *DefaultFactory) CreateTriangle(a, b, c reference.Coordinate, md Metadata) *Triangle {
	shell := &LinearRing{curve{base: f.base(nil), coordinates: []reference.Coordinate{a, b, c, a}}}
	return &Triangle{Polygon{base: f.base(md), shell: shell}}
}

// CreateMultiPoint creates a multi-point.
func (f *DefaultFactory) CreateMultiPoint(points []*Point, md Metadata) (*MultiPoint, error) {
	for i, p := range points {
		if p == nil {
			return nil, georef.Errorf(georef.InvalidArgument, "geometry: multi-point member %d is nil", i)
		}
	}
	return &MultiPoint{base: f.base(md), points: append([]*Point(nil), points...)}, nil
}

// CreateMultiLineString creates a multi-line string.
func (f *DefaultFactory) CreateMultiLineString(lineStrings []*LineString, md Metadata) (*MultiLineString, error) {
	for i, l := range lineStrings {
		if l == nil {
			return nil, georef.Errorf(georef.InvalidArgument, "geometry: multi-line string member %d is nil", i)
		}
	}
	return &MultiLineString{base: f.base(md), lineStrings: append([]*LineString(nil), lineStrings...)}, nil
}

// CreateMultiPolygon creates a multi-polygon.
func (f *DefaultFactory) CreateMultiPolygon(polygons []*Polygon, md Metadata) (*MultiPolygon, error) {
	for i, p := range polygons {
		if p == nil {
			return nil, georef.Errorf(georef.InvalidArgument, "geometry: multi-polygon member %d is nil", i)
		}
	}
	return &MultiPolygon{base: f.base(md), polygons: append([]*Polygon(nil), polygons...)}, nil
}

// CreateGeometryCollection creates a collection of arbitrary geometries.
func (f *DefaultFactory) CreateGeometryCollection(geometries []Geometry, md Metadata) (*Collection, error) {
	for i, g := range geometries {
		if g == nil {
			return nil, georef.Errorf(georef.InvalidArgument, "geometry: collection member %d is nil", i)
		}
	}
	return &Collection{base: f.base(md), geometries: append([]Geometry(nil), geometries...)}, nil
}
