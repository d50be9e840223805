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

// Package geometry holds the immutable geometry trees that are transformed
// between reference systems. The set of geometry types is closed: every
// Geometry is one of Point, Line, LineString, LinearRing, Polygon,
// Triangle, MultiPoint, MultiLineString, MultiPolygon or Collection.
package geometry

import (
	"github.com/spatialmodel/georef/reference"
)

// Geometry is implemented by the geometry types of this package only.
type Geometry interface {
	// Factory returns the factory that created the geometry.
	Factory() Factory
	// ReferenceSystem returns the reference system of the geometry's
	// coordinates, which may be nil.
	ReferenceSystem() reference.ReferenceSystem
	// Metadata returns a copy of the metadata attached to the geometry.
	Metadata() Metadata
	// GeometryType returns the name of the geometry type.
	GeometryType() string

	isGeometry()
}

// Metadata holds the properties attached to a geometry.
type Metadata map[string]interface{}

// Copy returns a shallow copy of m, or nil if m is empty.
func (m Metadata) Copy() Metadata {
	if len(m) == 0 {
		return nil
	}
	o := make(Metadata, len(m))
	for k, v := range m {
		o[k] = v
	}
	return o
}

type base struct {
	factory  Factory
	metadata Metadata
}

func (b *base) Factory() Factory { return b.factory }

func (b *base) ReferenceSystem() reference.ReferenceSystem { return b.factory.ReferenceSystem() }

func (b *base) Metadata() Metadata { return b.metadata.Copy() }

func (b *base) isGeometry() {}

// Point is a single position.
type Point struct {
	base
	coordinate reference.Coordinate
}

// Coordinate returns the position of the point.
func (p *Point) Coordinate() reference.Coordinate { return p.coordinate }

// GeometryType returns "Point".
func (p *Point) GeometryType() string { return "Point" }

// Line is a straight segment between two positions.
type Line struct {
	base
	start, end reference.Coordinate
}

// Start returns the first position of the line.
func (l *Line) Start() reference.Coordinate { return l.start }

// End returns the last position of the line.
func (l *Line) End() reference.Coordinate { return l.end }

// Coordinates returns the two positions of the line.
func (l *Line) Coordinates() []reference.Coordinate {
	return []reference.Coordinate{l.start, l.end}
}

// GeometryType returns "Line".
func (l *Line) GeometryType() string { return "Line" }

// curve holds the positions shared by line strings and rings.
type curve struct {
	base
	coordinates []reference.Coordinate
}

// CoordinateCount returns the number of positions.
func (c *curve) CoordinateCount() int { return len(c.coordinates) }

// Coordinate returns the i-th position.
func (c *curve) Coordinate(i int) reference.Coordinate { return c.coordinates[i] }

// Coordinates returns a copy of the positions.
func (c *curve) Coordinates() []reference.Coordinate {
	return append([]reference.Coordinate(nil), c.coordinates...)
}

// LineString is a sequence of at least two positions.
type LineString struct{ curve }

// GeometryType returns "LineString".
func (l *LineString) GeometryType() string { return "LineString" }

// LinearRing is a closed line string whose first and last positions are
// equal. It has at least four positions.
type LinearRing struct{ curve }

// GeometryType returns "LinearRing".
func (r *LinearRing) GeometryType() string { return "LinearRing" }

// Polygon is an area bounded by a shell and zero or more holes.
type Polygon struct {
	base
	shell *LinearRing
	holes []*LinearRing
}

// Shell returns the outer boundary of the polygon.
func (p *Polygon) Shell() *LinearRing { return p.shell }

// HoleCount returns the number of holes.
func (p *Polygon) HoleCount() int { return len(p.holes) }

// Hole returns the i-th hole.
func (p *Polygon) Hole(i int) *LinearRing { return p.holes[i] }

// Holes returns a copy of the holes.
func (p *Polygon) Holes() []*LinearRing { return append([]*LinearRing(nil), p.holes...) }

// GeometryType returns "Polygon".
func (p *Polygon) GeometryType() string { return "Polygon" }

// Triangle is a polygon with three vertices and no holes.
type Triangle struct{ Polygon }

// Vertices returns the three corners of the triangle.
func (t *Triangle) Vertices() (a, b, c reference.Coordinate) {
	cs := t.shell.coordinates
	return cs[0], cs[1], cs[2]
}

// GeometryType returns "Triangle".
func (t *Triangle) GeometryType() string { return "Triangle" }

// MultiPoint is a set of points.
type MultiPoint struct {
	base
	points []*Point
}

// Count returns the number of points.
func (m *MultiPoint) Count() int { return len(m.points) }

// Point returns the i-th point.
func (m *MultiPoint) Point(i int) *Point { return m.points[i] }

// Points returns a copy of the points.
func (m *MultiPoint) Points() []*Point { return append([]*Point(nil), m.points...) }

// GeometryType returns "MultiPoint".
func (m *MultiPoint) GeometryType() string { return "MultiPoint" }

// MultiLineString is a set of line strings.
type MultiLineString struct {
	base
	lineStrings []*LineString
}

// Count returns the number of line strings.
func (m *MultiLineString) Count() int { return len(m.lineStrings) }

// LineString returns the i-th line string.
func (m *MultiLineString) LineString(i int) *LineString { return m.lineStrings[i] }

// LineStrings returns a copy of the line strings.
func (m *MultiLineString) LineStrings() []*LineString {
	return append([]*LineString(nil), m.lineStrings...)
}

// GeometryType returns "MultiLineString".
func (m *MultiLineString) GeometryType() string { return "MultiLineString" }

// MultiPolygon is a set of polygons.
type MultiPolygon struct {
	base
	polygons []*Polygon
}

// Count returns the number of polygons.
func (m *MultiPolygon) Count() int { return len(m.polygons) }

// Polygon returns the i-th polygon.
func (m *MultiPolygon) Polygon(i int) *Polygon { return m.polygons[i] }

// Polygons returns a copy of the polygons.
func (m *MultiPolygon) Polygons() []*Polygon { return append([]*Polygon(nil), m.polygons...) }

// GeometryType returns "MultiPolygon".
func (m *MultiPolygon) GeometryType() string { return "MultiPolygon" }

// Collection is a heterogeneous set of geometries.
type Collection struct {
	base
	geometries []Geometry
}

// Count returns the number of members.
func (c *Collection) Count() int { return len(c.geometries) }

// Geometry returns the i-th member.
func (c *Collection) Geometry(i int) Geometry { return c.geometries[i] }

// Geometries returns a copy of the members.
func (c *Collection) Geometries() []Geometry { return append([]Geometry(nil), c.geometries...) }

// GeometryType returns "GeometryCollection".
func (c *Collection) GeometryType() string { return "GeometryCollection" }
