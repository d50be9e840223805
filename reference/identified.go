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

// Package reference describes how raw coordinates relate to positions on
// or near the Earth: coordinates, ellipsoids, prime meridians, geodetic
// datums, coordinate systems, areas of use and the coordinate reference
// systems built from them.
package reference

import (
	"regexp"

	"github.com/spatialmodel/georef"
)

// IdentifiedObject holds the identity metadata shared by every object of
// the reference model.
type IdentifiedObject struct {
	identifier string
	name       string
	remarks    string
	aliases    []string
}

// NewIdentifiedObject returns a new identified object. The identifier is
// required.
func NewIdentifiedObject(identifier, name, remarks string, aliases ...string) (IdentifiedObject, error) {
	if identifier == "" {
		return IdentifiedObject{}, georef.Errorf(georef.InvalidArgument, "reference: the identifier is empty")
	}
	return IdentifiedObject{
		identifier: identifier,
		name:       name,
		remarks:    remarks,
		aliases:    append([]string(nil), aliases...),
	}, nil
}

func mustIdentify(identifier, name string, aliases ...string) IdentifiedObject {
	o, err := NewIdentifiedObject(identifier, name, "", aliases...)
	if err != nil {
		panic(err)
	}
	return o
}

// Identifier returns the authority-qualified identifier of the object,
// e.g. "EPSG::4326".
func (o IdentifiedObject) Identifier() string { return o.identifier }

// Name returns the name of the object.
func (o IdentifiedObject) Name() string { return o.name }

// Remarks returns the remarks about the object.
func (o IdentifiedObject) Remarks() string { return o.remarks }

// Aliases returns the alternative names of the object.
func (o IdentifiedObject) Aliases() []string { return append([]string(nil), o.aliases...) }

// Authority returns the part of the identifier before the "::" separator.
func (o IdentifiedObject) Authority() string {
	for i := 0; i+1 < len(o.identifier); i++ {
		if o.identifier[i] == ':' && o.identifier[i+1] == ':' {
			return o.identifier[:i]
		}
	}
	return ""
}

func (o IdentifiedObject) String() string {
	if o.name == "" {
		return o.identifier
	}
	return "[" + o.identifier + "] " + o.name
}

// Pattern returns a case-insensitive regular expression matching any
// string that contains s literally.
func Pattern(s string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(s))
}

// MatchesIdentifier reports whether the identifier of o contains s,
// ignoring case.
func (o IdentifiedObject) MatchesIdentifier(s string) bool {
	return Pattern(s).MatchString(o.identifier)
}

// MatchesName reports whether the name or one of the aliases of o
// contains s, ignoring case.
func (o IdentifiedObject) MatchesName(s string) bool {
	re := Pattern(s)
	if re.MatchString(o.name) {
		return true
	}
	for _, a := range o.aliases {
		if re.MatchString(a) {
			return true
		}
	}
	return false
}
