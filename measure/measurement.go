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
	"strconv"
)

// base returns the base value of v expressed in u. A nil unit means the
// base unit.
func base(v float64, u *Unit) float64 {
	if u == nil {
		return v
	}
	return v * u.BaseMultiple
}

// convert returns the value v, expressed in unit from, in unit to.
func convert(v float64, from, to *Unit, q Quantity) (float64, error) {
	if err := to.Check(q); err != nil {
		return math.NaN(), err
	}
	if from == to {
		return v, nil
	}
	return base(v, from) / to.BaseMultiple, nil
}

// equalBase compares two base values. Two undefined values are equal to
// each other so that the Undefined sentinels can be recognized.
func equalBase(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func compareBase(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return -1
	default:
		return 1
	}
}

func hashBase(b float64, salt uint64) uint64 {
	if b == 0 {
		b = 0 // merge -0 and +0
	}
	if math.IsNaN(b) {
		b = math.NaN()
	}
	return math.Float64bits(b) ^ salt
}

func format(v float64, u *Unit) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + u.Symbol
}
