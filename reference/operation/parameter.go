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
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/measure"
	"github.com/spatialmodel/georef/reference"
)

// Parameter describes a parameter of an operation method. Parameters are
// identified by pointer identity.
type Parameter struct {
	reference.IdentifiedObject
	kind         ValueKind
	defaultValue Value
}

// NewParameter returns a new parameter descriptor. The default value,
// if it is set, must be of the given kind.
func NewParameter(identifier, name string, kind ValueKind, defaultValue Value, aliases ...string) (*Parameter, error) {
	o, err := reference.NewIdentifiedObject(identifier, name, "", aliases...)
	if err != nil {
		return nil, err
	}
	if kind == InvalidKind {
		return nil, georef.Errorf(georef.InvalidArgument, "operation: parameter %s has no kind", identifier)
	}
	if defaultValue.kind != InvalidKind && defaultValue.kind != kind {
		return nil, georef.Errorf(georef.UnitMismatch, "operation: default value %v of parameter %s is not a %v", defaultValue, identifier, kind)
	}
	return &Parameter{IdentifiedObject: o, kind: kind, defaultValue: defaultValue}, nil
}

// Kind returns the measurement kind the parameter requires.
func (p *Parameter) Kind() ValueKind { return p.kind }

// Default returns the default value of the parameter and whether it has
// one. Defaults are informative: projections never substitute them for
// missing values.
func (p *Parameter) Default() (Value, bool) { return p.defaultValue, p.defaultValue.kind != InvalidKind }

func mustParameter(p *Parameter, err error) *Parameter {
	if err != nil {
		panic(err)
	}
	return p
}

// Well-known operation parameters.
var (
	LatitudeOfNaturalOrigin = mustParameter(NewParameter("EPSG::8801", "Latitude of natural origin",
		AngleKind, AngleValue(measure.AngleZero), "Latitude of origin"))
	LongitudeOfNaturalOrigin = mustParameter(NewParameter("EPSG::8802", "Longitude of natural origin",
		AngleKind, AngleValue(measure.AngleZero), "Central meridian", "Longitude of origin"))
	ScaleFactorAtNaturalOrigin = mustParameter(NewParameter("EPSG::8805", "Scale factor at natural origin",
		ScaleKind, ScaleValue(measure.Unitless(1)), "Scale factor"))
	FalseEasting = mustParameter(NewParameter("EPSG::8806", "False easting",
		LengthKind, LengthValue(measure.LengthZero)))
	FalseNorthing = mustParameter(NewParameter("EPSG::8807", "False northing",
		LengthKind, LengthValue(measure.LengthZero)))
	LatitudeOf1stStandardParallel = mustParameter(NewParameter("EPSG::8823", "Latitude of 1st standard parallel",
		AngleKind, AngleValue(measure.AngleZero), "Standard parallel"))
	XAxisTranslation = mustParameter(NewParameter("EPSG::8605", "X-axis translation",
		LengthKind, LengthValue(measure.LengthZero), "dx"))
	YAxisTranslation = mustParameter(NewParameter("EPSG::8606", "Y-axis translation",
		LengthKind, LengthValue(measure.LengthZero), "dy"))
	ZAxisTranslation = mustParameter(NewParameter("EPSG::8607", "Z-axis translation",
		LengthKind, LengthValue(measure.LengthZero), "dz"))
)

// AllParameters lists the well-known parameters.
var AllParameters = []*Parameter{
	LatitudeOfNaturalOrigin, LongitudeOfNaturalOrigin, ScaleFactorAtNaturalOrigin,
	FalseEasting, FalseNorthing, LatitudeOf1stStandardParallel,
	XAxisTranslation, YAxisTranslation, ZAxisTranslation,
}

// ParameterFromIdentifier returns the well-known parameter whose identifier
// equals id, ignoring case.
func ParameterFromIdentifier(id string) (*Parameter, bool) {
	for _, p := range AllParameters {
		if equalFold(p.Identifier(), id) {
			return p, true
		}
	}
	return nil, false
}

// ParameterFromName returns the well-known parameter whose name or alias
// equals name, ignoring case.
func ParameterFromName(name string) (*Parameter, bool) {
	for _, p := range AllParameters {
		if equalFold(p.Name(), name) {
			return p, true
		}
		for _, a := range p.Aliases() {
			if equalFold(a, name) {
				return p, true
			}
		}
	}
	return nil, false
}
