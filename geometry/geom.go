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
	"github.com/ctessum/geom"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
)

func toPoints(cs []reference.Coordinate) []geom.Point {
	ps := make([]geom.Point, len(cs))
	for i, c := range cs {
		ps[i] = geom.Point{X: c.X, Y: c.Y}
	}
	return ps
}

func fromPoints(ps []geom.Point) []reference.Coordinate {
	cs := make([]reference.Coordinate, len(ps))
	for i, p := range ps {
		cs[i] = reference.Coordinate{X: p.X, Y: p.Y}
	}
	return cs
}

func toPolygon(p *Polygon) geom.Polygon {
	rings := make(geom.Polygon, 0, 1+p.HoleCount())
	rings = append(rings, toPoints(p.shell.coordinates))
	for _, h := range p.holes {
		rings = append(rings, toPoints(h.coordinates))
	}
	return rings
}

// ToGeom converts g into the planar geometry types of
// github.com/ctessum/geom. Heights are dropped. Lines, line strings and
// rings become geom.LineString and triangles become geom.Polygon.
func ToGeom(g Geometry) (geom.Geom, error) {
	switch t := g.(type) {
	case *Point:
		return geom.Point{X: t.coordinate.X, Y: t.coordinate.Y}, nil
	case *Line:
		return geom.LineString(toPoints(t.Coordinates())), nil
	case *LineString:
		return geom.LineString(toPoints(t.coordinates)), nil
	case *LinearRing:
		return geom.LineString(toPoints(t.coordinates)), nil
	case *Polygon:
		return toPolygon(t), nil
	case *Triangle:
		return toPolygon(&t.Polygon), nil
	case *MultiPoint:
		mp := make(geom.MultiPoint, len(t.points))
		for i, p := range t.points {
			mp[i] = geom.Point{X: p.coordinate.X, Y: p.coordinate.Y}
		}
		return mp, nil
	case *MultiLineString:
		ml := make(geom.MultiLineString, len(t.lineStrings))
		for i, l := range t.lineStrings {
			ml[i] = toPoints(l.coordinates)
		}
		return ml, nil
	case *MultiPolygon:
		mp := make(geom.MultiPolygon, len(t.polygons))
		for i, p := range t.polygons {
			mp[i] = toPolygon(p)
		}
		return mp, nil
	case *Collection:
		gc := make(geom.GeometryCollection, len(t.geometries))
		for i, m := range t.geometries {
			c, err := ToGeom(m)
			if err != nil {
				return nil, err
			}
			gc[i] = c
		}
		return gc, nil
	}
	return nil, georef.Errorf(georef.UnsupportedGeometryType, "geometry: cannot convert %T", g)
}

func fromPolygon(f Factory, p geom.Polygon, md Metadata) (*Polygon, error) {
	if len(p) == 0 {
		return nil, georef.Errorf(georef.InvalidArgument, "geometry: polygon without rings")
	}
	shell, err := f.CreateLinearRing(fromPoints(p[0]), nil)
	if err != nil {
		return nil, err
	}
	var holes []*LinearRing
	for _, r := range p[1:] {
		h, err := f.CreateLinearRing(fromPoints(r), nil)
		if err != nil {
			return nil, err
		}
		holes = append(holes, h)
	}
	return f.CreatePolygon(shell, holes, md)
}

// FromGeom creates a geometry of f from a github.com/ctessum/geom
// geometry, attaching md to the outermost geometry.
func FromGeom(f Factory, g geom.Geom, md Metadata) (Geometry, error) {
	switch t := g.(type) {
	case geom.Point:
		return f.CreatePoint(reference.Coordinate{X: t.X, Y: t.Y}, md), nil
	case *geom.Point:
		return f.CreatePoint(reference.Coordinate{X: t.X, Y: t.Y}, md), nil
	case geom.LineString:
		return f.CreateLineString(fromPoints(t), md)
	case geom.Polygon:
		return fromPolygon(f, t, md)
	case geom.MultiPoint:
		ps := make([]*Point, len(t))
		for i, p := range t {
			ps[i] = f.CreatePoint(reference.Coordinate{X: p.X, Y: p.Y}, nil)
		}
		return f.CreateMultiPoint(ps, md)
	case geom.MultiLineString:
		ls := make([]*LineString, len(t))
		for i, l := range t {
			var err error
			if ls[i], err = f.CreateLineString(fromPoints(l), nil); err != nil {
				return nil, err
			}
		}
		return f.CreateMultiLineString(ls, md)
	case geom.MultiPolygon:
		ps := make([]*Polygon, len(t))
		for i, p := range t {
			var err error
			if ps[i], err = fromPolygon(f, p, nil); err != nil {
				return nil, err
			}
		}
		return f.CreateMultiPolygon(ps, md)
	case geom.GeometryCollection:
		gs := make([]Geometry, len(t))
		for i, m := range t {
			var err error
			if gs[i], err = FromGeom(f, m, nil); err != nil {
				return nil, err
			}
		}
		return f.CreateGeometryCollection(gs, md)
	}
	return nil, georef.Errorf(georef.UnsupportedGeometryType, "geometry: cannot convert %T", g)
}

// Bounds returns the planar bounding box of g.
func Bounds(g Geometry) (*geom.Bounds, error) {
	c, err := ToGeom(g)
	if err != nil {
		return nil, err
	}
	return c.Bounds(), nil
}
