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

// Package transform transforms geometries between reference systems.
package transform

import (
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/geometry"
	"github.com/spatialmodel/georef/reference"
	"github.com/spatialmodel/georef/strategy"
	"golang.org/x/sync/errgroup"
)

// Parameters control a ReferenceTransformation.
type Parameters struct {
	// TargetReferenceSystem is the system of the result. It is required.
	TargetReferenceSystem reference.ReferenceSystem

	// MetadataPreservation copies the metadata of every transformed
	// geometry to its result.
	MetadataPreservation bool

	// GeometryFactory creates the result. If it is nil, the factory of the
	// source geometry is rebound to the target system.
	GeometryFactory geometry.Factory

	// Parallel transforms the members of multi-geometries and collections
	// concurrently. The order of the members is kept.
	Parallel bool
}

// ReferenceTransformation transforms a geometry into another reference
// system. The transformation strategy is resolved once, on the first call
// to Execute.
type ReferenceTransformation struct {
	// Log receives debug messages about strategy resolution.
	Log logrus.FieldLogger

	source geometry.Geometry
	params Parameters

	once    sync.Once
	err     error
	factory geometry.Factory

	mu         sync.Mutex
	strategies map[reference.ReferenceSystem]strategy.Strategy
}

// New returns a transformation of source. source may be nil, in which case
// the result is nil.
func New(source geometry.Geometry, params Parameters) (*ReferenceTransformation, error) {
	if params.TargetReferenceSystem == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "transform: no target reference system")
	}
	return &ReferenceTransformation{
		Log:        logrus.StandardLogger(),
		source:     source,
		params:     params,
		strategies: make(map[reference.ReferenceSystem]strategy.Strategy),
	}, nil
}

// Execute returns the source geometry in the target reference system.
// A geometry that has no reference system or is already in the target
// system is returned as is. A failure to transform any coordinate fails
// the whole transformation.
func (t *ReferenceTransformation) Execute() (geometry.Geometry, error) {
	if err := t.prepare(); err != nil {
		return nil, err
	}
	if t.source == nil {
		return nil, nil
	}
	g, err := t.transform(t.source)
	if err != nil {
		return nil, errors.Wrapf(err, "transform: %s to %s", t.source.GeometryType(), t.params.TargetReferenceSystem.Identifier())
	}
	return g, nil
}

func (t *ReferenceTransformation) prepare() error {
	t.once.Do(func() {
		if t.source == nil {
			return
		}
		rs := t.source.ReferenceSystem()
		if t.identity(rs) {
			t.Log.WithFields(logrus.Fields{
				"geometry": t.source.GeometryType(),
				"target":   t.params.TargetReferenceSystem.Identifier(),
			}).Debug("transform: geometry is already in the target system")
			return
		}
		if _, t.err = t.strategy(rs); t.err != nil {
			return
		}
		t.factory = t.params.GeometryFactory
		if t.factory == nil {
			t.factory = t.source.Factory().WithReferenceSystem(t.params.TargetReferenceSystem)
		}
	})
	return t.err
}

func (t *ReferenceTransformation) identity(rs reference.ReferenceSystem) bool {
	return rs == nil || reference.Equal(rs, t.params.TargetReferenceSystem)
}

// strategy returns the strategy from rs to the target system.
func (t *ReferenceTransformation) strategy(rs reference.ReferenceSystem) (strategy.Strategy, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.strategies[rs]; ok {
		return s, nil
	}
	s, err := strategy.New(rs, t.params.TargetReferenceSystem)
	if err != nil {
		return nil, err
	}
	t.Log.WithFields(logrus.Fields{
		"source":   rs.Identifier(),
		"target":   t.params.TargetReferenceSystem.Identifier(),
		"strategy": s.Kind().String(),
	}).Debug("transform: resolved strategy")
	t.strategies[rs] = s
	return s, nil
}

func (t *ReferenceTransformation) metadata(g geometry.Geometry) geometry.Metadata {
	if !t.params.MetadataPreservation {
		return nil
	}
	return g.Metadata()
}

// coordinate transforms c from rs with s. A geographic coordinate outside
// the area of use of rs is still transformed, but logged.
func (t *ReferenceTransformation) coordinate(rs reference.ReferenceSystem, s strategy.Strategy, c reference.Coordinate) (reference.Coordinate, error) {
	if g, ok := rs.(*reference.GeographicCRS); ok {
		if area := g.AreaOfUse(); area != nil {
			if gc := g.ToGeoCoordinate(c); !area.Contains(gc.Latitude, gc.Longitude) {
				t.Log.WithFields(logrus.Fields{
					"source":     rs.Identifier(),
					"coordinate": c,
					"area":       area.Name(),
				}).Debug("transform: coordinate is outside the area of use")
			}
		}
	}
	return s.Transform(c)
}

func (t *ReferenceTransformation) coordinates(rs reference.ReferenceSystem, s strategy.Strategy, cs []reference.Coordinate) ([]reference.Coordinate, error) {
	out := make([]reference.Coordinate, len(cs))
	for i, c := range cs {
		var err error
		if out[i], err = t.coordinate(rs, s, c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// each calls fn for the indices 0 to n-1, concurrently if the
// transformation is parallel.
func (t *ReferenceTransformation) each(n int, fn func(i int) error) error {
	if !t.params.Parallel || n < 2 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return fn(i) })
	}
	return g.Wait()
}

func (t *ReferenceTransformation) ring(r *geometry.LinearRing) (*geometry.LinearRing, error) {
	g, err := t.transform(r)
	if err != nil {
		return nil, err
	}
	return g.(*geometry.LinearRing), nil
}

func (t *ReferenceTransformation) polygon(p *geometry.Polygon) (*geometry.Polygon, error) {
	g, err := t.transform(p)
	if err != nil {
		return nil, err
	}
	return g.(*geometry.Polygon), nil
}

func (t *ReferenceTransformation) transform(g geometry.Geometry) (geometry.Geometry, error) {
	if g == nil {
		return nil, nil
	}
	rs := g.ReferenceSystem()
	if t.identity(rs) {
		return g, nil
	}
	s, err := t.strategy(rs)
	if err != nil {
		return nil, err
	}
	f := t.factory
	switch v := g.(type) {
	case *geometry.Point:
		c, err := t.coordinate(rs, s, v.Coordinate())
		if err != nil {
			return nil, err
		}
		return f.CreatePoint(c, t.metadata(v)), nil

	case *geometry.Line:
		cs, err := t.coordinates(rs, s, v.Coordinates())
		if err != nil {
			return nil, err
		}
		return f.CreateLine(cs[0], cs[1], t.metadata(v)), nil

	case *geometry.LineString:
		cs, err := t.coordinates(rs, s, v.Coordinates())
		if err != nil {
			return nil, err
		}
		return f.CreateLineString(cs, t.metadata(v))

	case *geometry.LinearRing:
		cs, err := t.coordinates(rs, s, v.Coordinates())
		if err != nil {
			return nil, err
		}
		return f.CreateLinearRing(cs, t.metadata(v))

	case *geometry.Triangle:
		a, b, c := v.Vertices()
		cs, err := t.coordinates(rs, s, []reference.Coordinate{a, b, c})
		if err != nil {
			return nil, err
		}
		return f.CreateTriangle(cs[0], cs[1], cs[2], t.metadata(v)), nil

	case *geometry.Polygon:
		shell, err := t.ring(v.Shell())
		if err != nil {
			return nil, err
		}
		var holes []*geometry.LinearRing
		if n := v.HoleCount(); n > 0 {
			holes = make([]*geometry.LinearRing, n)
			err := t.each(n, func(i int) (err error) {
				holes[i], err = t.ring(v.Hole(i))
				return err
			})
			if err != nil {
				return nil, err
			}
		}
		return f.CreatePolygon(shell, holes, t.metadata(v))

	case *geometry.MultiPoint:
		points := make([]*geometry.Point, v.Count())
		err := t.each(len(points), func(i int) error {
			p, err := t.transform(v.Point(i))
			if err == nil {
				points[i] = p.(*geometry.Point)
			}
			return err
		})
		if err != nil {
			return nil, err
		}
		return f.CreateMultiPoint(points, t.metadata(v))

	case *geometry.MultiLineString:
		lines := make([]*geometry.LineString, v.Count())
		err := t.each(len(lines), func(i int) error {
			l, err := t.transform(v.LineString(i))
			if err == nil {
				lines[i] = l.(*geometry.LineString)
			}
			return err
		})
		if err != nil {
			return nil, err
		}
		return f.CreateMultiLineString(lines, t.metadata(v))

	case *geometry.MultiPolygon:
		polygons := make([]*geometry.Polygon, v.Count())
		err := t.each(len(polygons), func(i int) (err error) {
			polygons[i], err = t.polygon(v.Polygon(i))
			return err
		})
		if err != nil {
			return nil, err
		}
		return f.CreateMultiPolygon(polygons, t.metadata(v))

	case *geometry.Collection:
		members := make([]geometry.Geometry, v.Count())
		err := t.each(len(members), func(i int) (err error) {
			members[i], err = t.transform(v.Geometry(i))
			return err
		})
		if err != nil {
			return nil, err
		}
		return f.CreateGeometryCollection(members, t.metadata(v))
	}
	return nil, georef.Errorf(georef.UnsupportedGeometryType, "transform: unsupported geometry %T", g)
}
