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

package operation

import (
	"strconv"

	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/measure"
)

// ValueKind is the measurement kind of a parameter value.
type ValueKind int

// Parameter value kinds.
const (
	InvalidKind ValueKind = iota
	LengthKind
	AngleKind
	ScaleKind
	NumberKind
)

func (k ValueKind) String() string {
	switch k {
	case LengthKind:
		return "length"
	case AngleKind:
		return "angle"
	case ScaleKind:
		return "scale"
	case NumberKind:
		return "number"
	}
	return "invalid"
}

// Value is the value of an operation parameter: a length, an angle, a
// scale or a plain number.
type Value struct {
	kind   ValueKind
	length measure.Length
	angle  measure.Angle
	scale  measure.Scale
	number float64
}

// LengthValue returns a length parameter value.
func LengthValue(l measure.Length) Value { return Value{kind: LengthKind, length: l} }

// AngleValue returns an angle parameter value.
func AngleValue(a measure.Angle) Value { return Value{kind: AngleKind, angle: a} }

// ScaleValue returns a scale parameter value.
func ScaleValue(s measure.Scale) Value { return Value{kind: ScaleKind, scale: s} }

// NumberValue returns a plain number parameter value.
func NumberValue(v float64) Value { return Value{kind: NumberKind, number: v} }

// ValueOf returns a value of v in unit u, whose kind follows from the
// quantity of u. A nil unit gives a plain number.
func ValueOf(v float64, u *measure.Unit) (Value, error) {
	if u == nil {
		return NumberValue(v), nil
	}
	switch u.Quantity() {
	case measure.LengthQuantity:
		l, err := measure.NewLength(v, u)
		return LengthValue(l), err
	case measure.AngleQuantity:
		a, err := measure.NewAngle(v, u)
		return AngleValue(a), err
	case measure.ScaleQuantity:
		s, err := measure.NewScale(v, u)
		return ScaleValue(s), err
	}
	return Value{}, georef.Errorf(georef.InvalidUnit, "operation: unit %v has no parameter value kind", u)
}

// Kind returns the measurement kind of v.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) mismatch(want ValueKind) error {
	return georef.Errorf(georef.UnitMismatch, "operation: parameter value %v is a %v, not a %v", v, v.kind, want)
}

// Length returns the value as a length, or a UnitMismatch error.
func (v Value) Length() (measure.Length, error) {
	if v.kind != LengthKind {
		return measure.LengthUndefined, v.mismatch(LengthKind)
	}
	return v.length, nil
}

// Angle returns the value as an angle, or a UnitMismatch error.
func (v Value) Angle() (measure.Angle, error) {
	if v.kind != AngleKind {
		return measure.AngleUndefined, v.mismatch(AngleKind)
	}
	return v.angle, nil
}

// Scale returns the value as a scale, or a UnitMismatch error.
func (v Value) Scale() (measure.Scale, error) {
	if v.kind != ScaleKind {
		return measure.ScaleUndefined, v.mismatch(ScaleKind)
	}
	return v.scale, nil
}

// Number returns the value as a plain number, or a UnitMismatch error.
func (v Value) Number() (float64, error) {
	if v.kind != NumberKind {
		return 0, v.mismatch(NumberKind)
	}
	return v.number, nil
}

// BaseValue returns the value in its base unit.
func (v Value) BaseValue() float64 {
	switch v.kind {
	case LengthKind:
		return v.length.BaseValue()
	case AngleKind:
		return v.angle.BaseValue()
	case ScaleKind:
		return v.scale.BaseValue()
	}
	return v.number
}

// Equal reports whether v and o have the same kind and base value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case LengthKind:
		return v.length.Equal(o.length)
	case AngleKind:
		return v.angle.Equal(o.angle)
	case ScaleKind:
		return v.scale.Equal(o.scale)
	case NumberKind:
		return v.number == o.number
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case LengthKind:
		return v.length.String()
	case AngleKind:
		return v.angle.String()
	case ScaleKind:
		return v.scale.String()
	case NumberKind:
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	}
	return "<invalid>"
}

// Parameters maps parameter descriptors to their values. Descriptors are
// compared by identity.
type Parameters map[*Parameter]Value

func (p Parameters) get(param *Parameter) (Value, error) {
	if param == nil {
		return Value{}, georef.Errorf(georef.InvalidArgument, "operation: the parameter is nil")
	}
	v, ok := p[param]
	if !ok {
		return Value{}, georef.Errorf(georef.MissingParameter, "operation: parameter %s (%s) is missing", param.Name(), param.Identifier())
	}
	return v, nil
}

// Length returns the length value of param.
func (p Parameters) Length(param *Parameter) (measure.Length, error) {
	v, err := p.get(param)
	if err != nil {
		return measure.LengthUndefined, err
	}
	return v.Length()
}

// Angle returns the angle value of param.
func (p Parameters) Angle(param *Parameter) (measure.Angle, error) {
	v, err := p.get(param)
	if err != nil {
		return measure.AngleUndefined, err
	}
	return v.Angle()
}

// Scale returns the scale value of param.
func (p Parameters) Scale(param *Parameter) (measure.Scale, error) {
	v, err := p.get(param)
	if err != nil {
		return measure.ScaleUndefined, err
	}
	return v.Scale()
}

// Number returns the plain number value of param.
func (p Parameters) Number(param *Parameter) (float64, error) {
	v, err := p.get(param)
	if err != nil {
		return 0, err
	}
	return v.Number()
}

// Satisfies reports whether p holds a value for every parameter of m.
func (p Parameters) Satisfies(m *Method) bool {
	for _, param := range m.parameters {
		if _, ok := p[param]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether p and o hold equal values for the same parameters.
func (p Parameters) Equal(o Parameters) bool {
	if len(p) != len(o) {
		return false
	}
	for k, v := range p {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
