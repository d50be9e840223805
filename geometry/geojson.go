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
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
)

// hasZ reports whether any position of g has a non-zero height.
func hasZ(g Geometry) bool {
	z := false
	eachCoordinate(g, func(c reference.Coordinate) {
		if c.Z != 0 {
			z = true
		}
	})
	return z
}

func eachCoordinate(g Geometry, fn func(reference.Coordinate)) {
	each := func(cs []reference.Coordinate) {
		for _, c := range cs {
			fn(c)
		}
	}
	switch t := g.(type) {
	case *Point:
		fn(t.coordinate)
	case *Line:
		fn(t.start)
		fn(t.end)
	case *LineString:
		each(t.coordinates)
	case *LinearRing:
		each(t.coordinates)
	case *Polygon:
		eachCoordinate(t.shell, fn)
		for _, h := range t.holes {
			eachCoordinate(h, fn)
		}
	case *Triangle:
		eachCoordinate(&t.Polygon, fn)
	case *MultiPoint:
		for _, p := range t.points {
			fn(p.coordinate)
		}
	case *MultiLineString:
		for _, l := range t.lineStrings {
			each(l.coordinates)
		}
	case *MultiPolygon:
		for _, p := range t.polygons {
			eachCoordinate(p, fn)
		}
	case *Collection:
		for _, m := range t.geometries {
			eachCoordinate(m, fn)
		}
	}
}

func position(c reference.Coordinate, z bool) []float64 {
	if z {
		return []float64{c.X, c.Y, c.Z}
	}
	return []float64{c.X, c.Y}
}

func positions(cs []reference.Coordinate, z bool) [][]float64 {
	ps := make([][]float64, len(cs))
	for i, c := range cs {
		ps[i] = position(c, z)
	}
	return ps
}

func polygonPositions(p *Polygon, z bool) [][][]float64 {
	rings := [][][]float64{positions(p.shell.coordinates, z)}
	for _, h := range p.holes {
		rings = append(rings, positions(h.coordinates, z))
	}
	return rings
}

type geometryCollection struct {
	Type       string        `json:"type"`
	Geometries []interface{} `json:"geometries"`
}

type feature struct {
	Type       string      `json:"type"`
	Geometry   interface{} `json:"geometry"`
	Properties Metadata    `json:"properties"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

// toGeoJSON returns the GeoJSON object of g. Planar points, line strings
// and polygons are encoded by github.com/ctessum/geom/encoding/geojson.
func toGeoJSON(g Geometry) (interface{}, error) {
	z := hasZ(g)
	switch g.(type) {
	case *Point, *LineString, *Polygon:
		if !z {
			c, err := ToGeom(g)
			if err != nil {
				return nil, err
			}
			return geojson.ToGeoJSON(c)
		}
	}
	switch t := g.(type) {
	case *Point:
		return &geojson.Geometry{Type: "Point", Coordinates: position(t.coordinate, z)}, nil
	case *Line:
		return &geojson.Geometry{Type: "LineString", Coordinates: positions(t.Coordinates(), z)}, nil
	case *LineString:
		return &geojson.Geometry{Type: "LineString", Coordinates: positions(t.coordinates, z)}, nil
	case *LinearRing:
		return &geojson.Geometry{Type: "LineString", Coordinates: positions(t.coordinates, z)}, nil
	case *Polygon:
		return &geojson.Geometry{Type: "Polygon", Coordinates: polygonPositions(t, z)}, nil
	case *Triangle:
		return &geojson.Geometry{Type: "Polygon", Coordinates: polygonPositions(&t.Polygon, z)}, nil
	case *MultiPoint:
		ps := make([][]float64, len(t.points))
		for i, p := range t.points {
			ps[i] = position(p.coordinate, z)
		}
		return &geojson.Geometry{Type: "MultiPoint", Coordinates: ps}, nil
	case *MultiLineString:
		ls := make([][][]float64, len(t.lineStrings))
		for i, l := range t.lineStrings {
			ls[i] = positions(l.coordinates, z)
		}
		return &geojson.Geometry{Type: "MultiLineString", Coordinates: ls}, nil
	case *MultiPolygon:
		ps := make([][][][]float64, len(t.polygons))
		for i, p := range t.polygons {
			ps[i] = polygonPositions(p, z)
		}
		return &geojson.Geometry{Type: "MultiPolygon", Coordinates: ps}, nil
	case *Collection:
		gc := &geometryCollection{Type: "GeometryCollection", Geometries: make([]interface{}, len(t.geometries))}
		for i, m := range t.geometries {
			o, err := toGeoJSON(m)
			if err != nil {
				return nil, err
			}
			gc.Geometries[i] = o
		}
		return gc, nil
	}
	return nil, georef.Errorf(georef.UnsupportedGeometryType, "geometry: cannot encode %T as GeoJSON", g)
}

// EncodeGeoJSON encodes g as a GeoJSON geometry. Heights are written
// only if a position of g has a non-zero height. Metadata is not written.
func EncodeGeoJSON(g Geometry) ([]byte, error) {
	o, err := toGeoJSON(g)
	if err != nil {
		return nil, err
	}
	return json.Marshal(o)
}

// EncodeFeature encodes g as a GeoJSON feature whose properties are the
// metadata of g. A collection is encoded as a feature collection with one
// feature per member.
func EncodeFeature(g Geometry) ([]byte, error) {
	if c, ok := g.(*Collection); ok {
		fc := featureCollection{Type: "FeatureCollection", Features: make([]feature, len(c.geometries))}
		for i, m := range c.geometries {
			o, err := toGeoJSON(m)
			if err != nil {
				return nil, err
			}
			fc.Features[i] = feature{Type: "Feature", Geometry: o, Properties: m.Metadata()}
		}
		return json.Marshal(fc)
	}
	o, err := toGeoJSON(g)
	if err != nil {
		return nil, err
	}
	return json.Marshal(feature{Type: "Feature", Geometry: o, Properties: g.Metadata()})
}

type rawObject struct {
	Type        string            `json:"type"`
	Coordinates json.RawMessage   `json:"coordinates"`
	Geometries  []json.RawMessage `json:"geometries"`
	Geometry    json.RawMessage   `json:"geometry"`
	Properties  Metadata          `json:"properties"`
	Features    []json.RawMessage `json:"features"`
}

func invalidGeoJSON(err error) error {
	return errors.Mark(errors.Wrap(err, "geometry: invalid GeoJSON"), georef.ErrInvalidArgument)
}

// DecodeGeoJSON creates a geometry of f from a GeoJSON geometry, feature
// or feature collection. Feature properties become metadata, and a
// feature collection becomes a Collection of its features.
func DecodeGeoJSON(f Factory, data []byte) (Geometry, error) {
	var o rawObject
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, invalidGeoJSON(err)
	}
	switch o.Type {
	case "Feature":
		if len(o.Geometry) == 0 || string(o.Geometry) == "null" {
			return nil, georef.Errorf(georef.InvalidArgument, "geometry: feature without a geometry")
		}
		return decodeGeometry(f, o.Geometry, o.Properties)
	case "FeatureCollection":
		gs := make([]Geometry, len(o.Features))
		for i, raw := range o.Features {
			var err error
			if gs[i], err = DecodeGeoJSON(f, raw); err != nil {
				return nil, err
			}
		}
		return f.CreateGeometryCollection(gs, nil)
	}
	return decodeGeometry(f, data, nil)
}

func decodeGeometry(f Factory, data []byte, md Metadata) (Geometry, error) {
	var o rawObject
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, invalidGeoJSON(err)
	}
	switch o.Type {
	case "Point", "LineString", "Polygon":
		var g geojson.Geometry
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, invalidGeoJSON(err)
		}
		// Positions with a height are not accepted here and are read below.
		if c, err := geojson.FromGeoJSON(&g); err == nil {
			return FromGeom(f, c, md)
		}
	case "GeometryCollection":
		gs := make([]Geometry, len(o.Geometries))
		for i, raw := range o.Geometries {
			var err error
			if gs[i], err = decodeGeometry(f, raw, nil); err != nil {
				return nil, err
			}
		}
		return f.CreateGeometryCollection(gs, md)
	case "MultiPoint", "MultiLineString", "MultiPolygon":
	default:
		return nil, georef.Errorf(georef.UnsupportedGeometryType, "geometry: GeoJSON type %q", o.Type)
	}
	return decodeCoordinates(f, o.Type, o.Coordinates, md)
}

func toCoordinate(p []float64) (reference.Coordinate, error) {
	switch len(p) {
	case 2:
		return reference.Coordinate{X: p[0], Y: p[1]}, nil
	case 3:
		return reference.Coordinate{X: p[0], Y: p[1], Z: p[2]}, nil
	}
	return reference.Coordinate{}, georef.Errorf(georef.InvalidArgument, "geometry: a GeoJSON position has %d values", len(p))
}

func toCoordinates(ps [][]float64) ([]reference.Coordinate, error) {
	cs := make([]reference.Coordinate, len(ps))
	for i, p := range ps {
		var err error
		if cs[i], err = toCoordinate(p); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

func toPolygonGeometry(f Factory, rings [][][]float64, md Metadata) (*Polygon, error) {
	if len(rings) == 0 {
		return nil, georef.Errorf(georef.InvalidArgument, "geometry: polygon without rings")
	}
	lrs := make([]*LinearRing, len(rings))
	for i, r := range rings {
		cs, err := toCoordinates(r)
		if err != nil {
			return nil, err
		}
		if lrs[i], err = f.CreateLinearRing(cs, nil); err != nil {
			return nil, err
		}
	}
	return f.CreatePolygon(lrs[0], lrs[1:], md)
}

func decodeCoordinates(f Factory, kind string, raw json.RawMessage, md Metadata) (Geometry, error) {
	switch kind {
	case "Point":
		var p []float64
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, invalidGeoJSON(err)
		}
		c, err := toCoordinate(p)
		if err != nil {
			return nil, err
		}
		return f.CreatePoint(c, md), nil
	case "LineString", "MultiPoint":
		var ps [][]float64
		if err := json.Unmarshal(raw, &ps); err != nil {
			return nil, invalidGeoJSON(err)
		}
		cs, err := toCoordinates(ps)
		if err != nil {
			return nil, err
		}
		if kind == "LineString" {
			return f.CreateLineString(cs, md)
		}
		points := make([]*Point, len(cs))
		for i, c := range cs {
			points[i] = f.CreatePoint(c, nil)
		}
		return f.CreateMultiPoint(points, md)
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(raw, &rings); err != nil {
			return nil, invalidGeoJSON(err)
		}
		return toPolygonGeometry(f, rings, md)
	case "MultiLineString":
		var ls [][][]float64
		if err := json.Unmarshal(raw, &ls); err != nil {
			return nil, invalidGeoJSON(err)
		}
		lineStrings := make([]*LineString, len(ls))
		for i, l := range ls {
			cs, err := toCoordinates(l)
			if err != nil {
				return nil, err
			}
			if lineStrings[i], err = f.CreateLineString(cs, nil); err != nil {
				return nil, err
			}
		}
		return f.CreateMultiLineString(lineStrings, md)
	}
	var ps [][][][]float64
	if err := json.Unmarshal(raw, &ps); err != nil {
		return nil, invalidGeoJSON(err)
	}
	polygons := make([]*Polygon, len(ps))
	for i, p := range ps {
		var err error
		if polygons[i], err = toPolygonGeometry(f, p, nil); err != nil {
			return nil, err
		}
	}
	return f.CreateMultiPolygon(polygons, md)
}
