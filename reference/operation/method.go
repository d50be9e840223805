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
	"strings"

	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
)

// MethodKind tells conversions, which are defined exactly by their
// parameters, from transformations, which are derived empirically.
type MethodKind int

// Method kinds.
const (
	Conversion MethodKind = iota
	Transformation
)

func (k MethodKind) String() string {
	if k == Transformation {
		return "transformation"
	}
	return "conversion"
}

// Method describes an algorithm used to transform coordinates and the
// parameters it requires.
type Method struct {
	reference.IdentifiedObject
	kind       MethodKind
	parameters []*Parameter
}

// NewMethod returns a new operation method descriptor.
func NewMethod(identifier, name string, kind MethodKind, parameters []*Parameter, aliases ...string) (*Method, error) {
	o, err := reference.NewIdentifiedObject(identifier, name, "", aliases...)
	if err != nil {
		return nil, err
	}
	for i, p := range parameters {
		if p == nil {
			return nil, georef.Errorf(georef.InvalidArgument, "operation: parameter %d of method %s is nil", i, identifier)
		}
	}
	return &Method{IdentifiedObject: o, kind: kind, parameters: append([]*Parameter(nil), parameters...)}, nil
}

// Kind returns whether the method is a conversion or a transformation.
func (m *Method) Kind() MethodKind { return m.kind }

// Parameters returns the parameters the method requires.
func (m *Method) Parameters() []*Parameter { return append([]*Parameter(nil), m.parameters...) }

func mustMethod(m *Method, err error) *Method {
	if err != nil {
		panic(err)
	}
	return m
}

// Well-known operation methods.
var (
	MillerCylindricalProjection = mustMethod(NewMethod("ESRI::54002", "Miller Cylindrical Projection", Conversion,
		[]*Parameter{LongitudeOfNaturalOrigin, FalseEasting, FalseNorthing},
		"World Miller Cylindrical", "Miller_Cylindrical"))
	PopularVisualisationPseudoMercator = mustMethod(NewMethod("EPSG::1024", "Popular Visualisation Pseudo Mercator", Conversion,
		[]*Parameter{LatitudeOfNaturalOrigin, LongitudeOfNaturalOrigin, FalseEasting, FalseNorthing},
		"Pseudo-Mercator", "Web Mercator"))
	EquidistantCylindricalSpherical = mustMethod(NewMethod("EPSG::1029", "Equidistant Cylindrical (Spherical)", Conversion,
		[]*Parameter{LatitudeOf1stStandardParallel, LongitudeOfNaturalOrigin, FalseEasting, FalseNorthing},
		"Equirectangular", "Plate Carree"))
	TransverseMercator = mustMethod(NewMethod("EPSG::9807", "Transverse Mercator", Conversion,
		[]*Parameter{LatitudeOfNaturalOrigin, LongitudeOfNaturalOrigin, ScaleFactorAtNaturalOrigin, FalseEasting, FalseNorthing},
		"Gauss-Kruger"))
	MercatorVariantA = mustMethod(NewMethod("EPSG::9804", "Mercator (variant A)", Conversion,
		[]*Parameter{LatitudeOfNaturalOrigin, LongitudeOfNaturalOrigin, ScaleFactorAtNaturalOrigin, FalseEasting, FalseNorthing},
		"Mercator (1SP)"))
	GeographicGeocentricConversion = mustMethod(NewMethod("EPSG::9602", "Geographic/geocentric conversions", Conversion, nil))
	GeocentricTranslations = mustMethod(NewMethod("EPSG::1031", "Geocentric translations (geocentric domain)", Transformation,
		[]*Parameter{XAxisTranslation, YAxisTranslation, ZAxisTranslation},
		"Geocentric translations"))
)

// Methods lists the well-known operation methods, including those with no
// registered implementation.
var Methods = []*Method{
	MillerCylindricalProjection, PopularVisualisationPseudoMercator, EquidistantCylindricalSpherical,
	TransverseMercator, MercatorVariantA, GeographicGeocentricConversion, GeocentricTranslations,
}

// MethodsFromIdentifier returns the well-known methods whose identifier
// contains id, ignoring case.
func MethodsFromIdentifier(id string) ([]*Method, error) {
	if id == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "operation: the identifier is empty")
	}
	var out []*Method
	for _, m := range Methods {
		if m.MatchesIdentifier(id) {
			out = append(out, m)
		}
	}
	return out, nil
}

// MethodsFromName returns the well-known methods whose name or one of
// whose aliases contains name, ignoring case.
func MethodsFromName(name string) ([]*Method, error) {
	if name == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "operation: the name is empty")
	}
	var out []*Method
	for _, m := range Methods {
		if m.MatchesName(name) {
			out = append(out, m)
		}
	}
	return out, nil
}

func equalFold(a, b string) bool { return strings.EqualFold(a, b) }
