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

// Angle is an angle measure. The zero value is zero radians.
type Angle struct {
	value float64
	unit  *Unit
}

// Angle sentinel values.
var (
	AngleZero             = Angle{0, Radian}
	AngleUndefined        = Angle{math.NaN(), Radian}
	AnglePositiveInfinity = Angle{math.Inf(1), Radian}
	AngleNegativeInfinity = Angle{math.Inf(-1), Radian}
	AngleEpsilon          = Angle{math.SmallestNonzeroFloat64, Radian}
)

// NewAngle returns an angle of value expressed in u. A nil unit means
// radians. It returns an InvalidUnit error if u is not a unit of angle.
func NewAngle(value float64, u *Unit) (Angle, error) {
	if u == nil {
		return Angle{value, Radian}, nil
	}
	if err := u.Check(AngleQuantity); err != nil {
		return AngleUndefined, err
	}
	return Angle{value, u}, nil
}

// Radians returns an angle of v radians.
func Radians(v float64) Angle { return Angle{v, Radian} }

// Degrees returns an angle of v degrees.
func Degrees(v float64) Angle { return Angle{v, Degree} }

// Grads returns an angle of v grads.
func Grads(v float64) Angle { return Angle{v, Grad} }

// ArcSeconds returns an angle of v arc-seconds.
func ArcSeconds(v float64) Angle { return Angle{v, ArcSecond} }

// Value returns the value of a in its own unit.
func (a Angle) Value() float64 { return a.value }

// Unit returns the unit a is expressed in.
func (a Angle) Unit() *Unit {
	if a.unit == nil {
		return Radian
	}
	return a.unit
}

// BaseValue returns the value of a in radians.
func (a Angle) BaseValue() float64 { return base(a.value, a.unit) }

// GetValue returns the value of a expressed in u.
func (a Angle) GetValue(u *Unit) (float64, error) {
	return convert(a.value, a.Unit(), u, AngleQuantity)
}

// SI returns a as a dimensioned SI value.
func (a Angle) SI() *unit.Unit { return a.Unit().SI(a.value) }

// IsValid reports whether a is not undefined.
func (a Angle) IsValid() bool { return !math.IsNaN(a.value) }

// Equal reports whether a and o have the same base value.
func (a Angle) Equal(o Angle) bool { return equalBase(a.BaseValue(), o.BaseValue()) }

// Compare returns -1, 0 or 1 depending on whether a is smaller than,
// equal to or greater than o.
func (a Angle) Compare(o Angle) int { return compareBase(a.BaseValue(), o.BaseValue()) }

// Less reports whether a is smaller than o.
func (a Angle) Less(o Angle) bool { return a.BaseValue() < o.BaseValue() }

// Hash returns a hash of a that is consistent with Equal.
func (a Angle) Hash() uint64 { return hashBase(a.BaseValue(), 817431153) }

// Add returns a + o in radians.
func (a Angle) Add(o Angle) Angle { return Radians(a.BaseValue() + o.BaseValue()) }

// Sub returns a - o in radians.
func (a Angle) Sub(o Angle) Angle { return Radians(a.BaseValue() - o.BaseValue()) }

// Neg returns -a in radians.
func (a Angle) Neg() Angle { return Radians(-a.BaseValue()) }

// Mul returns a * s in radians.
func (a Angle) Mul(s float64) Angle { return Radians(a.BaseValue() * s) }

// Div returns a / s in radians.
func (a Angle) Div(s float64) Angle { return Radians(a.BaseValue() / s) }

func (a Angle) String() string { return format(a.value, a.Unit()) }

// StringIn returns a as a string expressed in u.
func (a Angle) StringIn(u *Unit) (string, error) {
	v, err := a.GetValue(u)
	if err != nil {
		return "", err
	}
	return format(v, u), nil
}

// Degrees returns the value of a in degrees.
func (a Angle) Degrees() float64 { return a.BaseValue() / Degree.BaseMultiple }

// Normalize returns a wrapped into the half-open interval (-180°, 180°],
// in radians.
func (a Angle) Normalize() Angle {
	v := math.Remainder(a.BaseValue(), 2*math.Pi)
	// Values within rounding error of -π belong to the upper bound.
	if v <= -math.Pi+1e-14 {
		v += 2 * math.Pi
	}
	return Radians(v)
}

// Sin returns the sine of a.
func (a Angle) Sin() float64 { return math.Sin(a.BaseValue()) }

// Cos returns the cosine of a.
func (a Angle) Cos() float64 { return math.Cos(a.BaseValue()) }

// Tan returns the tangent of a.
func (a Angle) Tan() float64 { return math.Tan(a.BaseValue()) }
