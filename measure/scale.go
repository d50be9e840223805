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

// Scale is a scale measure. The zero value is zero unity.
type Scale struct {
	value float64
	unit  *Unit
}

// Scale sentinel values.
var (
	ScaleZero             = Scale{0, Unity}
	ScaleUndefined        = Scale{math.NaN(), Unity}
	ScalePositiveInfinity = Scale{math.Inf(1), Unity}
	ScaleNegativeInfinity = Scale{math.Inf(-1), Unity}
	ScaleEpsilon          = Scale{math.SmallestNonzeroFloat64, Unity}
)

// NewScale returns a scale of value expressed in u. A nil unit means
// unity. It returns an InvalidUnit error if u is not a unit of scale.
func NewScale(value float64, u *Unit) (Scale, error) {
	if u == nil {
		return Scale{value, Unity}, nil
	}
	if err := u.Check(ScaleQuantity); err != nil {
		return ScaleUndefined, err
	}
	return Scale{value, u}, nil
}

// Unitless returns a scale factor of v.
func Unitless(v float64) Scale { return Scale{v, Unity} }

// PPM returns a scale of v parts per million.
func PPM(v float64) Scale { return Scale{v, PartsPerMillion} }

// Value returns the value of s in its own unit.
func (s Scale) Value() float64 { return s.value }

// Unit returns the unit s is expressed in.
func (s Scale) Unit() *Unit {
	if s.unit == nil {
		return Unity
	}
	return s.unit
}

// BaseValue returns the value of s in unity.
func (s Scale) BaseValue() float64 { return base(s.value, s.unit) }

// GetValue returns the value of s expressed in u.
func (s Scale) GetValue(u *Unit) (float64, error) {
	return convert(s.value, s.Unit(), u, ScaleQuantity)
}

// SI returns s as a dimensioned SI value.
func (s Scale) SI() *unit.Unit { return s.Unit().SI(s.value) }

// IsValid reports whether s is not undefined.
func (s Scale) IsValid() bool { return !math.IsNaN(s.value) }

// Equal reports whether s and o have the same base value.
func (s Scale) Equal(o Scale) bool { return equalBase(s.BaseValue(), o.BaseValue()) }

// Compare returns -1, 0 or 1 depending on whether s is smaller than,
// equal to or greater than o.
func (s Scale) Compare(o Scale) int { return compareBase(s.BaseValue(), o.BaseValue()) }

// Less reports whether s is smaller than o.
func (s Scale) Less(o Scale) bool { return s.BaseValue() < o.BaseValue() }

// Hash returns a hash of s that is consistent with Equal.
func (s Scale) Hash() uint64 { return hashBase(s.BaseValue(), 193847581) }

// Add returns s + o in unity.
func (s Scale) Add(o Scale) Scale { return Unitless(s.BaseValue() + o.BaseValue()) }

// Sub returns s - o in unity.
func (s Scale) Sub(o Scale) Scale { return Unitless(s.BaseValue() - o.BaseValue()) }

// Neg returns -s in unity.
func (s Scale) Neg() Scale { return Unitless(-s.BaseValue()) }

// Mul returns s * f in unity.
func (s Scale) Mul(f float64) Scale { return Unitless(s.BaseValue() * f) }

// Div returns s / f in unity.
func (s Scale) Div(f float64) Scale { return Unitless(s.BaseValue() / f) }

func (s Scale) String() string { return format(s.value, s.Unit()) }

// StringIn returns s as a string expressed in u.
func (s Scale) StringIn(u *Unit) (string, error) {
	v, err := s.GetValue(u)
	if err != nil {
		return "", err
	}
	return format(v, u), nil
}
