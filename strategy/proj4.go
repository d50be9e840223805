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

package strategy

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ctessum/geom/proj"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
)

// proj4Strategy transforms coordinates with the PROJ.4 definitions of the
// source and target systems. Geographic systems are exchanged with the
// transformer in degrees and projected systems in the units of their
// definition. Heights are passed through.
type proj4Strategy struct {
	source, target reference.ReferenceSystem
	in             func(reference.Coordinate) (x, y float64)
	out            func(x, y float64, c reference.Coordinate) reference.Coordinate

	// A transformer rebinds its source system after its first datum
	// shift, so a new one is made for every coordinate. mu serializes
	// them because the projections initialize state on first use.
	mu       sync.Mutex
	src, dst *proj.SR
}

func newProj4(source, target reference.ReferenceSystem) (*proj4Strategy, error) {
	src, err := parseProj4(source)
	if err != nil {
		return nil, err
	}
	dst, err := parseProj4(target)
	if err != nil {
		return nil, err
	}
	in, err := proj4Input(source, src)
	if err != nil {
		return nil, err
	}
	out, err := proj4Output(target, dst)
	if err != nil {
		return nil, err
	}
	if _, err := src.NewTransform(dst); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "strategy: proj4 transform from %s to %s", source.Identifier(), target.Identifier()),
			georef.ErrUnsupportedTransformation)
	}
	return &proj4Strategy{source: source, target: target, in: in, out: out, src: src, dst: dst}, nil
}

func parseProj4(rs reference.ReferenceSystem) (*proj.SR, error) {
	sr, err := proj.Parse(rs.Proj4())
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "strategy: parsing the PROJ.4 definition of %s", rs.Identifier()),
			georef.ErrUnsupportedTransformation)
	}
	if _, _, err := sr.Transformers(); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "strategy: PROJ.4 definition of %s", rs.Identifier()),
			georef.ErrUnsupportedTransformation)
	}
	return sr, nil
}

func proj4Input(rs reference.ReferenceSystem, sr *proj.SR) (func(reference.Coordinate) (float64, float64), error) {
	switch s := rs.(type) {
	case *reference.GeographicCRS:
		return func(c reference.Coordinate) (float64, float64) {
			g := s.ToGeoCoordinate(c)
			return g.Longitude.Degrees(), g.Latitude.Degrees()
		}, nil
	case *reference.ProjectedCRS:
		return func(c reference.Coordinate) (float64, float64) {
			m := s.ToMetres(c)
			return m.X / sr.ToMeter, m.Y / sr.ToMeter
		}, nil
	}
	return nil, georef.Errorf(georef.UnsupportedTransformation, "strategy: proj4 cannot read %v coordinates of %s", rs.Type(), rs.Identifier())
}

func proj4Output(rs reference.ReferenceSystem, sr *proj.SR) (func(float64, float64, reference.Coordinate) reference.Coordinate, error) {
	switch s := rs.(type) {
	case *reference.GeographicCRS:
		return func(x, y float64, c reference.Coordinate) reference.Coordinate {
			g := reference.GeoCoordinateFromDegrees(y, x)
			out := s.FromGeoCoordinate(g)
			out.Z = c.Z
			return out
		}, nil
	case *reference.ProjectedCRS:
		return func(x, y float64, c reference.Coordinate) reference.Coordinate {
			out := s.FromMetres(reference.Coordinate{X: x * sr.ToMeter, Y: y * sr.ToMeter})
			out.Z = c.Z
			return out
		}, nil
	}
	return nil, georef.Errorf(georef.UnsupportedTransformation, "strategy: proj4 cannot write %v coordinates of %s", rs.Type(), rs.Identifier())
}

func (p *proj4Strategy) Source() reference.ReferenceSystem { return p.source }
func (p *proj4Strategy) Target() reference.ReferenceSystem { return p.target }
func (p *proj4Strategy) Kind() Kind                        { return Proj4 }

// Transform transforms one coordinate.
func (p *proj4Strategy) Transform(c reference.Coordinate) (reference.Coordinate, error) {
	x, y := p.in(c)
	p.mu.Lock()
	t, err := p.src.NewTransform(p.dst)
	if err == nil {
		x, y, err = t(x, y)
	}
	p.mu.Unlock()
	if err != nil {
		return reference.Coordinate{}, errors.Mark(errors.Wrap(err, "strategy: proj4"), georef.ErrComputationFault)
	}
	return reference.CheckFinite(p.out(x, y, c), "strategy: proj4")
}
