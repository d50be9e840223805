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
	"testing"

	"github.com/spatialmodel/georef"
	"gonum.org/v1/gonum/floats"
)

func TestLengthBaseValue(t *testing.T) {
	tests := []struct {
		u1, u2 *Unit
		factor float64 // one u1 in u2
	}{
		{u1: Kilometre, u2: Metre, factor: 1000},
		{u1: Metre, u2: Centimetre, factor: 100},
		{u1: Foot, u2: Metre, factor: 0.3048},
		{u1: Yard, u2: Foot, factor: 3},
		{u1: NauticalMile, u2: Metre, factor: 1852},
		{u1: USSurveyFoot, u2: Millimetre, factor: 1200.0 / 3937.0 * 1000},
	}
	for _, test := range tests {
		for _, m := range []float64{-1e7, -3.5, 0, 1, 42.25, 6378137} {
			l1, err := NewLength(m, test.u1)
			if err != nil {
				t.Fatal(err)
			}
			l2, err := NewLength(m*test.factor, test.u2)
			if err != nil {
				t.Fatal(err)
			}
			if !floats.EqualWithinAbsOrRel(l1.BaseValue(), l2.BaseValue(), 1e-9, 1e-12) {
				t.Errorf("%v: %g != %g", test, l1.BaseValue(), l2.BaseValue())
			}
		}
	}
}

func TestLengthEquality(t *testing.T) {
	if !Kilometres(1).Equal(Metres(1000)) {
		t.Error("1 km should equal 1000 m")
	}
	if Kilometres(1).Hash() != Metres(1000).Hash() {
		t.Error("equal lengths should have equal hashes")
	}
	if Metres(0).Hash() != Metres(math.Copysign(0, -1)).Hash() {
		t.Error("signed zeros should have equal hashes")
	}
	if Feet(1).Compare(Metres(1)) != -1 || Metres(1).Compare(Feet(1)) != 1 || Metres(1).Compare(Metres(1)) != 0 {
		t.Error("wrong ordering")
	}
	if !Feet(3).Less(Metres(1)) {
		t.Error("3 ft should be less than 1 m")
	}
	if !LengthUndefined.Equal(LengthUndefined) {
		t.Error("undefined should equal itself")
	}
	if LengthUndefined.IsValid() {
		t.Error("undefined should not be valid")
	}
	if !LengthZero.IsValid() || !LengthEpsilon.IsValid() {
		t.Error("zero and epsilon should be valid")
	}
	if !math.IsInf(LengthPositiveInfinity.BaseValue(), 1) || !math.IsInf(LengthNegativeInfinity.BaseValue(), -1) {
		t.Error("wrong infinities")
	}
	if LengthEpsilon.BaseValue() <= 0 {
		t.Error("epsilon should be positive")
	}
	var zero Length
	if !zero.Equal(LengthZero) || zero.Unit() != Metre {
		t.Error("the zero value should be zero metres")
	}
}

func TestLengthArithmetic(t *testing.T) {
	sum := Kilometres(1).Add(Metres(500))
	if sum.Unit() != Metre || sum.Value() != 1500 {
		t.Errorf("have %v, want 1500m", sum)
	}
	diff := Kilometres(1).Sub(Feet(1))
	if diff.Unit() != Metre || !floats.EqualWithinAbs(diff.Value(), 999.6952, 1e-9) {
		t.Errorf("have %v", diff)
	}
	if n := Kilometres(2).Neg(); n.Unit() != Metre || n.Value() != -2000 {
		t.Errorf("have %v", n)
	}
	if m := Kilometres(2).Mul(3); m.Unit() != Metre || m.Value() != 6000 {
		t.Errorf("have %v", m)
	}
	if d := Kilometres(3).Div(2); d.Unit() != Metre || d.Value() != 1500 {
		t.Errorf("have %v", d)
	}
}

func TestInvalidUnit(t *testing.T) {
	if _, err := NewLength(1, Degree); !georef.Is(err, georef.InvalidUnit) {
		t.Errorf("have %v, want InvalidUnit", err)
	}
	if _, err := NewAngle(1, Metre); !georef.Is(err, georef.InvalidUnit) {
		t.Errorf("have %v, want InvalidUnit", err)
	}
	if _, err := NewScale(1, Radian); !georef.Is(err, georef.InvalidUnit) {
		t.Errorf("have %v, want InvalidUnit", err)
	}
	if _, err := Metres(1).GetValue(Radian); !georef.Is(err, georef.InvalidUnit) {
		t.Errorf("have %v, want InvalidUnit", err)
	}
	if _, err := Degrees(1).GetValue(nil); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("have %v, want InvalidArgument", err)
	}
	if _, err := Metres(1).StringIn(Degree); err == nil {
		t.Error("expected an error")
	}
}

func TestGetValue(t *testing.T) {
	v, err := Metres(1609.344).GetValue(Foot)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(v, 5280, 1e-9) {
		t.Errorf("have %g, want 5280", v)
	}
	v, err = Degrees(180).GetValue(Radian)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(v, math.Pi, 1e-15) {
		t.Errorf("have %g, want π", v)
	}
	v, err = Grads(100).GetValue(Degree)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(v, 90, 1e-12) {
		t.Errorf("have %g, want 90", v)
	}
	v, err = PPM(5).GetValue(Unity)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(v, 5e-6, 1e-18) {
		t.Errorf("have %g, want 5e-6", v)
	}
	s, err := Kilometres(1.5).StringIn(Metre)
	if err != nil {
		t.Fatal(err)
	}
	if s != "1500m" {
		t.Errorf("have %q, want 1500m", s)
	}
}

func TestAngleNormalize(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{in: 0, want: 0},
		{in: 180, want: 180},
		{in: -180, want: 180},
		{in: 190, want: -170},
		{in: 358, want: -2},
		{in: -540, want: 180},
		{in: 720.5, want: 0.5},
	}
	for _, test := range tests {
		have := Degrees(test.in).Normalize().Degrees()
		if !floats.EqualWithinAbs(have, test.want, 1e-9) {
			t.Errorf("%g: have %g, want %g", test.in, have, test.want)
		}
	}
}

func TestAngleTrigonometry(t *testing.T) {
	a := Degrees(30)
	if !floats.EqualWithinAbs(a.Sin(), 0.5, 1e-15) {
		t.Errorf("sin: %g", a.Sin())
	}
	if !floats.EqualWithinAbs(Degrees(60).Cos(), 0.5, 1e-15) {
		t.Errorf("cos: %g", Degrees(60).Cos())
	}
	if !floats.EqualWithinAbs(Degrees(45).Tan(), 1, 1e-15) {
		t.Errorf("tan: %g", Degrees(45).Tan())
	}
}

func TestUnitLookup(t *testing.T) {
	u, err := UnitFromIdentifier("epsg::9102")
	if err != nil {
		t.Fatal(err)
	}
	if u != Degree {
		t.Errorf("have %v, want degree", u)
	}
	if u, err = UnitFromSymbol("km"); err != nil || u != Kilometre {
		t.Errorf("have %v, %v", u, err)
	}
	if _, err = UnitFromSymbol("furlong"); !georef.Is(err, georef.InvalidUnit) {
		t.Errorf("have %v, want InvalidUnit", err)
	}
	us, err := UnitsFromName("BRITISH CHAIN")
	if err != nil {
		t.Fatal(err)
	}
	if len(us) != 2 {
		t.Errorf("have %d units, want 2", len(us))
	}
	if _, err = UnitsFromName(""); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("have %v, want InvalidArgument", err)
	}
	for _, u := range Units {
		if BaseUnit(u.Quantity()).BaseMultiple != 1 {
			t.Errorf("%v: wrong base unit", u)
		}
	}
}

func TestNewUnit(t *testing.T) {
	if _, err := NewUnit("", "x", "x", 1, LengthQuantity); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("have %v", err)
	}
	if _, err := NewUnit("x", "x", "x", 0, LengthQuantity); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("have %v", err)
	}
	if _, err := NewUnit("x", "x", "x", 1, UnknownQuantity); !georef.Is(err, georef.InvalidUnit) {
		t.Errorf("have %v", err)
	}
	chain, err := NewUnit("EPSG::9033", "US survey chain", "chUS", 20.11684023368047, LengthQuantity)
	if err != nil {
		t.Fatal(err)
	}
	l, err := NewLength(1, chain)
	if err != nil {
		t.Fatal(err)
	}
	if si := l.SI(); !floats.EqualWithinAbs(si.Value(), 20.11684023368047, 1e-12) {
		t.Errorf("have %v", si)
	}
}
