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

// Package strategy selects how coordinates are transformed between two
// reference systems.
package strategy

import (
	"github.com/cockroachdb/errors"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
)

// Kind names the path a strategy takes between two reference systems.
type Kind int

// Strategy kinds.
const (
	// Forward projects geographic coordinates.
	Forward Kind = iota
	// Reverse converts projected coordinates into geographic ones.
	Reverse
	// ReverseForward converts between two projected systems through
	// geographic coordinates.
	ReverseForward
	// DatumShift converts between geographic systems on different datums
	// through geocentric translations to WGS 84.
	DatumShift
	// UnitConversion converts between systems on the same datum that
	// differ only in axes or units.
	UnitConversion
	// GeocentricConversion converts to or from geocentric coordinates.
	GeocentricConversion
	// Proj4 transforms coordinates with the PROJ.4 definitions of the
	// two systems.
	Proj4
)

func (k Kind) String() string {
	switch k {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case ReverseForward:
		return "reverse-forward"
	case DatumShift:
		return "datum shift"
	case UnitConversion:
		return "unit conversion"
	case GeocentricConversion:
		return "geocentric conversion"
	case Proj4:
		return "proj4"
	}
	return "unknown"
}

// Strategy transforms coordinates from a source reference system to a
// target reference system. Strategies are immutable and safe for
// concurrent use.
type Strategy interface {
	Source() reference.ReferenceSystem
	Target() reference.ReferenceSystem
	Kind() Kind
	Transform(reference.Coordinate) (reference.Coordinate, error)
}

// New returns a strategy from source to target. Equal systems need no
// strategy and give an InvalidArgument error. It returns an
// UnsupportedTransformation error if no path connects the systems.
func New(source, target reference.ReferenceSystem) (Strategy, error) {
	if source == nil || target == nil {
		return nil, georef.Errorf(georef.InvalidArgument, "strategy: nil reference system")
	}
	if reference.Equal(source, target) {
		return nil, georef.Errorf(georef.InvalidArgument, "strategy: %s and %s are the same system", source.Identifier(), target.Identifier())
	}
	s, err := newPipeline(source, target)
	if err == nil {
		return s, nil
	}
	if !georef.Is(err, georef.UnsupportedTransformation) || source.Proj4() == "" || target.Proj4() == "" {
		return nil, err
	}
	p, perr := newProj4(source, target)
	if perr != nil {
		return nil, errors.WithSecondaryError(err, perr)
	}
	return p, nil
}
