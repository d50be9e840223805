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

package reference

import (
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/measure"
	"gonum.org/v1/gonum/floats"
)

// PrimeMeridian is the meridian from which longitudes are counted.
type PrimeMeridian struct {
	IdentifiedObject
	longitude measure.Angle
}

// NewPrimeMeridian returns a prime meridian at the given longitude from
// Greenwich.
func NewPrimeMeridian(identifier, name string, longitude measure.Angle) (*PrimeMeridian, error) {
	o, err := NewIdentifiedObject(identifier, name, "")
	if err != nil {
		return nil, err
	}
	if !longitude.IsValid() {
		return nil, georef.Errorf(georef.InvalidArgument, "reference: invalid prime meridian longitude %v", longitude)
	}
	return &PrimeMeridian{IdentifiedObject: o, longitude: longitude}, nil
}

// Longitude returns the longitude of the meridian from Greenwich.
func (p *PrimeMeridian) Longitude() measure.Angle { return p.longitude }

// Equal reports whether p and o are at the same longitude.
func (p *PrimeMeridian) Equal(o *PrimeMeridian) bool {
	if p == nil || o == nil {
		return p == o
	}
	return floats.EqualWithinULP(p.longitude.BaseValue(), o.longitude.BaseValue(), equalULP)
}

// Greenwich is the international reference meridian.
var Greenwich = &PrimeMeridian{IdentifiedObject: mustIdentify("EPSG::8901", "Greenwich"), longitude: measure.AngleZero}
