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
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
	"github.com/spatialmodel/georef/reference/operation"
)

// endpoint converts the coordinates of one reference system to and from
// geographic coordinates on its datum.
type endpoint struct {
	datum   *reference.GeodeticDatum
	toGeo   func(reference.Coordinate) (reference.GeoCoordinate, error)
	fromGeo func(reference.GeoCoordinate) (reference.Coordinate, error)
}

func unsupported(source, target reference.ReferenceSystem, reason string) error {
	return georef.Errorf(georef.UnsupportedTransformation, "strategy: no transformation from %s to %s: %s",
		source.Identifier(), target.Identifier(), reason)
}

func geocentricConverter(d *reference.GeodeticDatum, area *reference.AreaOfUse) (*operation.GeographicGeocentricConverter, error) {
	c, err := operation.GeocentricConversions.FromMethod(operation.GeographicGeocentricConversion, nil, d.Ellipsoid(), area)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, georef.Errorf(georef.UnsupportedTransformation, "strategy: no geographic/geocentric conversion is registered")
	}
	return c, nil
}

func endpointOf(rs reference.ReferenceSystem) (*endpoint, error) {
	switch s := rs.(type) {
	case *reference.GeographicCRS:
		return &endpoint{
			datum:   s.Datum(),
			toGeo:   func(c reference.Coordinate) (reference.GeoCoordinate, error) { return s.ToGeoCoordinate(c), nil },
			fromGeo: func(g reference.GeoCoordinate) (reference.Coordinate, error) { return s.FromGeoCoordinate(g), nil },
		}, nil
	case *reference.ProjectedCRS:
		if s.Projection() == nil {
			return nil, nil
		}
		return &endpoint{datum: s.Datum(), toGeo: s.Reverse, fromGeo: s.Forward}, nil
	case *reference.GeocentricCRS:
		conv, err := geocentricConverter(s.Datum(), s.AreaOfUse())
		if err != nil {
			return nil, err
		}
		return &endpoint{
			datum: s.Datum(),
			toGeo: func(c reference.Coordinate) (reference.GeoCoordinate, error) {
				return conv.Reverse(s.ToMetres(c))
			},
			fromGeo: func(g reference.GeoCoordinate) (reference.Coordinate, error) {
				c, err := conv.Forward(g)
				return s.FromMetres(c), err
			},
		}, nil
	}
	return nil, nil
}

// pipeline converts source coordinates to geographic coordinates, shifts
// them to the target datum if needed and converts them to the target system.
type pipeline struct {
	source, target reference.ReferenceSystem
	kind           Kind
	from, to       *endpoint
	shift          func(reference.GeoCoordinate) (reference.GeoCoordinate, error)

	// keepHeight is set when neither system is geocentric and the target
	// has no height axis: the input Z is then passed through instead of
	// the height computed by a datum shift.
	keepHeight bool
}

func newPipeline(source, target reference.ReferenceSystem) (*pipeline, error) {
	from, err := endpointOf(source)
	if err != nil {
		return nil, err
	}
	if from == nil {
		return nil, unsupported(source, target, "the source system has no projection")
	}
	to, err := endpointOf(target)
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, unsupported(source, target, "the target system has no projection")
	}
	p := &pipeline{
		source:     source,
		target:     target,
		from:       from,
		to:         to,
		kind:       kindOf(source, target),
		keepHeight: source.Type() != reference.Geocentric && target.Type() != reference.Geocentric && target.Dimension() < 3,
	}
	if !from.datum.Equal(to.datum) {
		shift, err := datumShift(from.datum, to.datum, source.AreaOfUse(), target.AreaOfUse())
		if err != nil {
			if georef.Is(err, georef.UnsupportedTransformation) {
				return nil, unsupported(source, target, err.Error())
			}
			return nil, err
		}
		p.shift = shift
		if p.kind == UnitConversion {
			p.kind = DatumShift
		}
	}
	return p, nil
}

func kindOf(source, target reference.ReferenceSystem) Kind {
	_, srcProjected := source.(*reference.ProjectedCRS)
	_, dstProjected := target.(*reference.ProjectedCRS)
	switch {
	case source.Type() == reference.Geocentric || target.Type() == reference.Geocentric:
		if source.Type() == target.Type() {
			return UnitConversion
		}
		return GeocentricConversion
	case srcProjected && dstProjected:
		return ReverseForward
	case srcProjected:
		return Reverse
	case dstProjected:
		return Forward
	}
	return UnitConversion
}

// datumShift returns a function that moves geographic coordinates from
// one datum to another through their geocentric translations to WGS 84.
func datumShift(from, to *reference.GeodeticDatum, fromArea, toArea *reference.AreaOfUse) (func(reference.GeoCoordinate) (reference.GeoCoordinate, error), error) {
	fromShift, ok := from.ToWGS84()
	if !ok {
		return nil, georef.Errorf(georef.UnsupportedTransformation, "datum %s has no WGS 84 translation", from.Identifier())
	}
	toShift, ok := to.ToWGS84()
	if !ok {
		return nil, georef.Errorf(georef.UnsupportedTransformation, "datum %s has no WGS 84 translation", to.Identifier())
	}
	fromConv, err := geocentricConverter(from, fromArea)
	if err != nil {
		return nil, err
	}
	toConv, err := geocentricConverter(to, toArea)
	if err != nil {
		return nil, err
	}
	fromWGS84, err := translation(fromShift, fromArea)
	if err != nil {
		return nil, err
	}
	toWGS84, err := translation(toShift, toArea)
	if err != nil {
		return nil, err
	}
	return func(g reference.GeoCoordinate) (reference.GeoCoordinate, error) {
		c, err := fromConv.Forward(g)
		if err != nil {
			return g, err
		}
		if c, err = fromWGS84.Forward(c); err != nil {
			return g, err
		}
		if c, err = toWGS84.Reverse(c); err != nil {
			return g, err
		}
		return toConv.Reverse(c)
	}, nil
}

func translation(shift [3]float64, area *reference.AreaOfUse) (operation.GeocentricTransformation, error) {
	t, err := operation.GeocentricTransformations.FromMethod(operation.GeocentricTranslations,
		operation.TranslationParameters(shift[0], shift[1], shift[2]), nil, area)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, georef.Errorf(georef.UnsupportedTransformation, "no geocentric translation is registered")
	}
	return t, nil
}

func (p *pipeline) Source() reference.ReferenceSystem { return p.source }
func (p *pipeline) Target() reference.ReferenceSystem { return p.target }
func (p *pipeline) Kind() Kind                        { return p.kind }

// Transform transforms one coordinate.
func (p *pipeline) Transform(c reference.Coordinate) (reference.Coordinate, error) {
	g, err := p.from.toGeo(c)
	if err != nil {
		return reference.Coordinate{}, err
	}
	if p.shift != nil {
		if g, err = p.shift(g); err != nil {
			return reference.Coordinate{}, err
		}
	}
	out, err := p.to.fromGeo(g)
	if err != nil {
		return reference.Coordinate{}, err
	}
	if p.keepHeight {
		out.Z = c.Z
	}
	return reference.CheckFinite(out, "strategy")
}
