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

// Package georef transforms geometries between coordinate reference systems.
//
// The measurement value types live in package measure, the reference
// system model in package reference, the coordinate operation methods
// and their implementations in package reference/operation, the
// selection of a transformation path between two reference systems in
// package strategy, and the driver that applies a transformation to a
// whole geometry tree in package transform.
package georef

// Version gives the version number.
const Version = "0.3.0"
