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

import "math"

// Units of length.
var (
	Metre                   = newUnit("EPSG::9001", "metre", "m", 1, LengthQuantity)
	Kilometre               = newUnit("EPSG::9036", "kilometre", "km", 1000, LengthQuantity)
	Centimetre              = newUnit("EPSG::1033", "centimetre", "cm", 0.01, LengthQuantity)
	Millimetre              = newUnit("EPSG::1025", "millimetre", "mm", 0.001, LengthQuantity)
	Foot                    = newUnit("EPSG::9002", "foot", "ft", 0.3048, LengthQuantity)
	USSurveyFoot            = newUnit("EPSG::9003", "US survey foot", "ftUS", 1200.0/3937.0, LengthQuantity)
	Yard                    = newUnit("EPSG::9096", "yard", "yd", 0.9144, LengthQuantity)
	NauticalMile            = newUnit("EPSG::9030", "nautical mile", "NM", 1852, LengthQuantity)
	BritishChainBenoit1895A = newUnit("EPSG::9052", "British chain (Benoit 1895 A)", "chBnA", 20.1167824, LengthQuantity)
	BritishChainBenoit1895B = newUnit("EPSG::9062", "British chain (Benoit 1895 B)", "chBnB", 20.116782494375872, LengthQuantity)
)

// Units of angle.
var (
	Radian      = newUnit("EPSG::9101", "radian", "rad", 1, AngleQuantity)
	Degree      = newUnit("EPSG::9102", "degree", "°", math.Pi/180, AngleQuantity)
	ArcMinute   = newUnit("EPSG::9103", "arc-minute", "'", math.Pi/10800, AngleQuantity)
	ArcSecond   = newUnit("EPSG::9104", "arc-second", "\"", math.Pi/648000, AngleQuantity)
	Grad        = newUnit("EPSG::9105", "grad", "grad", math.Pi/200, AngleQuantity)
	Microradian = newUnit("EPSG::9109", "microradian", "µrad", 1e-6, AngleQuantity)
)

// Units of scale.
var (
	Unity           = newUnit("EPSG::9201", "unity", "", 1, ScaleQuantity)
	PartsPerMillion = newUnit("EPSG::9202", "parts per million", "ppm", 1e-6, ScaleQuantity)
)

// Units lists every unit in the catalog.
var Units = []*Unit{
	Metre, Kilometre, Centimetre, Millimetre, Foot, USSurveyFoot, Yard,
	NauticalMile, BritishChainBenoit1895A, BritishChainBenoit1895B,
	Radian, Degree, ArcMinute, ArcSecond, Grad, Microradian,
	Unity, PartsPerMillion,
}

// BaseUnit returns the unit that base values of quantity q are expressed in.
func BaseUnit(q Quantity) *Unit {
	switch q {
	case LengthQuantity:
		return Metre
	case AngleQuantity:
		return Radian
	case ScaleQuantity:
		return Unity
	default:
		return nil
	}
}
