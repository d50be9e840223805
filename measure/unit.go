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

// Package measure holds measurement values (lengths, angles and scales)
// together with the units of measurement they are expressed in.
//
// Every value has a base value, which is the value converted to the
// canonical unit of its kind (metre, radian or unity). Equality, ordering
// and arithmetic are defined over base values only.
package measure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/georef"
)

// Quantity is the kind of quantity a unit of measurement measures.
type Quantity int

// These are the supported quantities.
const (
	UnknownQuantity Quantity = iota
	LengthQuantity
	AngleQuantity
	ScaleQuantity
)

func (q Quantity) String() string {
	switch q {
	case LengthQuantity:
		return "length"
	case AngleQuantity:
		return "angle"
	case ScaleQuantity:
		return "scale"
	default:
		return "unknown"
	}
}

// Dimensions returns the SI dimensions of the quantity.
func (q Quantity) Dimensions() unit.Dimensions {
	switch q {
	case LengthQuantity:
		return unit.Meter
	case AngleQuantity:
		return unit.Dimensions{unit.AngleDim: 1}
	case ScaleQuantity:
		return unit.Dimless
	default:
		return nil
	}
}

// Unit is a unit of measurement. Units are shared by reference and
// must not be modified after creation.
type Unit struct {
	Identifier string
	Name       string
	Symbol     string

	// BaseMultiple is the value of one unit in the base unit of the
	// quantity (metre, radian or unity).
	BaseMultiple float64

	quantity Quantity
}

// NewUnit creates a new unit of measurement.
func NewUnit(identifier, name, symbol string, baseMultiple float64, q Quantity) (*Unit, error) {
	if identifier == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "measure: the unit identifier is empty")
	}
	if q == UnknownQuantity {
		return nil, georef.Errorf(georef.InvalidUnit, "measure: unit %s has no quantity", identifier)
	}
	if !(baseMultiple > 0) {
		return nil, georef.Errorf(georef.InvalidArgument, "measure: unit %s has a nonpositive base multiple %g", identifier, baseMultiple)
	}
	return &Unit{
		Identifier:   identifier,
		Name:         name,
		Symbol:       symbol,
		BaseMultiple: baseMultiple,
		quantity:     q,
	}, nil
}

func newUnit(identifier, name, symbol string, baseMultiple float64, q Quantity) *Unit {
	u, err := NewUnit(identifier, name, symbol, baseMultiple, q)
	if err != nil {
		panic(err)
	}
	return u
}

// Quantity returns the kind of quantity measured by u.
func (u *Unit) Quantity() Quantity { return u.quantity }

// Check returns an InvalidUnit error if u does not measure quantity q.
func (u *Unit) Check(q Quantity) error {
	if u == nil {
		return georef.Errorf(georef.InvalidArgument, "measure: the unit of measurement is nil")
	}
	if err := unit.New(u.BaseMultiple, u.quantity.Dimensions()).Check(q.Dimensions()); err != nil {
		return georef.Errorf(georef.InvalidUnit, "measure: %s is not a %s unit: %v", u.Name, q, err)
	}
	return nil
}

// SI returns v, expressed in u, as a dimensioned SI value.
func (u *Unit) SI(v float64) *unit.Unit {
	return unit.New(v*u.BaseMultiple, u.quantity.Dimensions())
}

func (u *Unit) String() string {
	if u == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%s)", u.Name, u.Symbol)
}

// UnitFromIdentifier returns the catalog unit with the given identifier,
// ignoring case.
func UnitFromIdentifier(identifier string) (*Unit, error) {
	for _, u := range Units {
		if strings.EqualFold(u.Identifier, identifier) {
			return u, nil
		}
	}
	return nil, georef.Errorf(georef.InvalidUnit, "measure: no unit with identifier %q", identifier)
}

// UnitFromSymbol returns the catalog unit with the given symbol. Symbols
// are case-sensitive ("m" and "M" are not the same thing).
func UnitFromSymbol(symbol string) (*Unit, error) {
	for _, u := range Units {
		if u.Symbol == symbol {
			return u, nil
		}
	}
	return nil, georef.Errorf(georef.InvalidUnit, "measure: no unit with symbol %q", symbol)
}

// UnitsFromName returns the catalog units whose names contain name,
// ignoring case.
func UnitsFromName(name string) ([]*Unit, error) {
	if name == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "measure: the name is empty")
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(name))
	var o []*Unit
	for _, u := range Units {
		if re.MatchString(u.Name) {
			o = append(o, u)
		}
	}
	return o, nil
}
