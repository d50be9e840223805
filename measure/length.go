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

package measure

import (
	"math"

	"github.com/ctessum/unit"
)

// Length is a length measure. The zero value is zero metres.
type Length struct {
	value float64
	unit  *Unit
}

// Length sentinel values.
var (
	LengthZero             = Length{0, Metre}
	LengthUndefined        = Length{math.NaN(), Metre}
	LengthPositiveInfinity = Length{math.Inf(1), Metre}
	LengthNegativeInfinity = Length{math.Inf(-1), Metre}
	LengthEpsilon          = Length{math.SmallestNonzeroFloat64, Metre}
)

// NewLength returns a length of value expressed in u. A nil unit means
// metres. It returns an InvalidUnit error if u is not a unit of length.
func NewLength(value float64, u *Unit) (Length, error) {
	if u == nil {
		return Length{value, Metre}, nil
	}
	if err := u.Check(LengthQuantity); err != nil {
		return LengthUndefined, err
	}
	return Length{value, u}, nil
}

// Metres returns a length of v metres.
func Metres(v float64) Length { return Length{v, Metre} }

// Kilometres returns a length of v kilometres.
func Kilometres(v float64) Length { return Length{v, Kilometre} }

// Feet returns a length of v international feet.
func Feet(v float64) Length { return Length{v, Foot} }

// Value returns the value of l in its own unit.
func (l Length) Value() float64 { return l.value }

// Unit returns the unit l is expressed in.
func (l Length) Unit() *Unit {
	if l.unit == nil {
		return Metre
	}
	return l.unit
}

// BaseValue returns the value of l in metres.
func (l Length) BaseValue() float64 { return base(l.value, l.unit) }

// GetValue returns the value of l expressed in u.
func (l Length) GetValue(u *Unit) (float64, error) {
	return convert(l.value, l.Unit(), u, LengthQuantity)
}

// SI returns l as a dimensioned SI value.
func (l Length) SI() *unit.Unit { return l.Unit().SI(l.value) }

// IsValid reports whether l is not undefined.
func (l Length) IsValid() bool { return !math.IsNaN(l.value) }

// Equal reports whether l and o have the same base value.
func (l Length) Equal(o Length) bool { return equalBase(l.BaseValue(), o.BaseValue()) }

// Compare returns -1, 0 or 1 depending on whether l is smaller than,
// equal to or greater than o.
func (l Length) Compare(o Length) int { return compareBase(l.BaseValue(), o.BaseValue()) }

// Less reports whether l is smaller than o.
func (l Length) Less(o Length) bool { return l.BaseValue() < o.BaseValue() }

// Hash returns a hash of l that is consistent with Equal.
func (l Length) Hash() uint64 { return hashBase(l.BaseValue(), 625907383) }

// Add returns l + o in metres.
func (l Length) Add(o Length) Length { return Metres(l.BaseValue() + o.BaseValue()) }

// Sub returns l - o in metres.
func (l Length) Sub(o Length) Length { return Metres(l.BaseValue() - o.BaseValue()) }

// Neg returns -l in metres.
func (l Length) Neg() Length { return Metres(-l.BaseValue()) }

// Mul returns l * s in metres.
func (l Length) Mul(s float64) Length { return Metres(l.BaseValue() * s) }

// Div returns l / s in metres.
func (l Length) Div(s float64) Length { return Metres(l.BaseValue() / s) }

func (l Length) String() string { return format(l.value, l.Unit()) }

// StringIn returns l as a string expressed in u.
func (l Length) StringIn(u *Unit) (string, error) {
	v, err := l.GetValue(u)
	if err != nil {
		return "", err
	}
	return format(v, u), nil
}
