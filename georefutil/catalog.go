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

package georefutil

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/catalog"
	"github.com/spatialmodel/georef/measure"
	"github.com/spatialmodel/georef/reference"
	"github.com/spatialmodel/georef/reference/operation"
)

// CatalogFile is the layout of a reference system catalog file. Systems
// are added in file order, geographic systems first, so a projected system
// may be based on a geographic system declared in the same file.
type CatalogFile struct {
	GeographicCRS []GeographicCRSConfig
	ProjectedCRS  []ProjectedCRSConfig
}

// GeographicCRSConfig declares a two-dimensional geographic system.
type GeographicCRSConfig struct {
	Identifier string
	Name       string
	Aliases    []string

	// Datum is the identifier of a well-known datum. If it is empty, a new
	// datum is made from Ellipsoid and ToWGS84.
	Datum     string
	Ellipsoid string
	ToWGS84   []float64

	Proj4 string
}

// ProjectedCRSConfig declares a projected system.
type ProjectedCRSConfig struct {
	Identifier string
	Name       string
	Aliases    []string

	// Base is the identifier of the geographic system that is projected.
	Base string

	// Method is the identifier or the name of the projection method.
	Method     string
	Parameters []ParameterConfig

	// Units is the unit of the easting and northing axes. The default is
	// metre.
	Units string

	Proj4 string
}

// ParameterConfig is the value of a projection parameter. A parameter
// without a unit is a plain number.
type ParameterConfig struct {
	Name  string
	Value float64
	Unit  string
}

// LoadCatalog decodes a TOML catalog file from r and adds its systems
// to c. Either every system of the file is added or, on error, none is.
func LoadCatalog(c *catalog.Catalog, r io.Reader) error {
	var f CatalogFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return errors.Mark(errors.Wrap(err, "georefutil: decoding catalog"), georef.ErrInvalidArgument)
	}
	// Projected systems may be based on geographic systems of the same
	// file, so the file is loaded into a copy of c first.
	staged, err := catalog.New(c.Systems()...)
	if err != nil {
		return err
	}
	var systems []reference.ReferenceSystem
	add := func(rs reference.ReferenceSystem) error {
		if err := staged.Add(rs); err != nil {
			return err
		}
		systems = append(systems, rs)
		return nil
	}
	for _, g := range f.GeographicCRS {
		rs, err := g.build()
		if err != nil {
			return errors.Wrapf(err, "georefutil: geographic system %q", g.Identifier)
		}
		if err := add(rs); err != nil {
			return err
		}
	}
	for _, p := range f.ProjectedCRS {
		rs, err := p.build(staged)
		if err != nil {
			return errors.Wrapf(err, "georefutil: projected system %q", p.Identifier)
		}
		if err := add(rs); err != nil {
			return err
		}
	}
	return c.Add(systems...)
}

func (g GeographicCRSConfig) options() []reference.Option {
	var opts []reference.Option
	if len(g.Aliases) > 0 {
		opts = append(opts, reference.WithAliases(g.Aliases...))
	}
	if g.Proj4 != "" {
		opts = append(opts, reference.WithProj4(g.Proj4))
	}
	return opts
}

func (g GeographicCRSConfig) datum() (*reference.GeodeticDatum, error) {
	if g.Datum != "" {
		for _, d := range reference.Datums {
			if strings.EqualFold(d.Identifier(), g.Datum) {
				return d, nil
			}
		}
		return nil, georef.Errorf(georef.InvalidArgument, "no datum %s", g.Datum)
	}
	for _, e := range reference.Ellipsoids {
		if strings.EqualFold(e.Identifier(), g.Ellipsoid) || strings.EqualFold(e.Name(), g.Ellipsoid) {
			return reference.NewGeodeticDatum(g.Identifier+" datum", g.Name, e, nil, reference.World, g.ToWGS84...)
		}
	}
	return nil, georef.Errorf(georef.InvalidArgument, "no ellipsoid %q", g.Ellipsoid)
}

func (g GeographicCRSConfig) build() (*reference.GeographicCRS, error) {
	d, err := g.datum()
	if err != nil {
		return nil, err
	}
	area := d.AreaOfUse()
	if area == nil {
		area = reference.World
	}
	return reference.NewGeographicCRS(g.Identifier, g.Name, reference.Ellipsoidal2D, d, area, g.options()...)
}

// unitOf finds a unit by symbol, identifier or name.
func unitOf(s string) (*measure.Unit, error) {
	if s == "" {
		return nil, nil
	}
	if u, err := measure.UnitFromSymbol(s); err == nil {
		return u, nil
	}
	if u, err := measure.UnitFromIdentifier(s); err == nil {
		return u, nil
	}
	us, err := measure.UnitsFromName(s)
	if err != nil {
		return nil, err
	}
	for _, u := range us {
		if strings.EqualFold(u.Name, s) {
			return u, nil
		}
	}
	if len(us) == 1 {
		return us[0], nil
	}
	return nil, georef.Errorf(georef.InvalidUnit, "no unit %q", s)
}

func (p ParameterConfig) parameter() (*operation.Parameter, operation.Value, error) {
	param, ok := operation.ParameterFromName(p.Name)
	if !ok {
		if param, ok = operation.ParameterFromIdentifier(p.Name); !ok {
			return nil, operation.Value{}, georef.Errorf(georef.InvalidArgument, "no parameter %q", p.Name)
		}
	}
	u, err := unitOf(p.Unit)
	if err != nil {
		return nil, operation.Value{}, err
	}
	v, err := operation.ValueOf(p.Value, u)
	return param, v, err
}

// method finds the method whose identifier equals p.Method, or else the
// only method whose name contains it.
func (p ProjectedCRSConfig) method() (*operation.Method, error) {
	if p.Method == "" {
		return nil, nil
	}
	ms, err := operation.MethodsFromIdentifier(p.Method)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		if strings.EqualFold(m.Identifier(), p.Method) {
			return m, nil
		}
	}
	if ms, err = operation.MethodsFromName(p.Method); err != nil {
		return nil, err
	}
	if len(ms) != 1 {
		return nil, georef.Errorf(georef.InvalidArgument, "%d methods match %q", len(ms), p.Method)
	}
	return ms[0], nil
}

func (p ProjectedCRSConfig) coordinateSystem() (*reference.CoordinateSystem, error) {
	u, err := unitOf(p.Units)
	if err != nil || u == nil || u == measure.Metre {
		return reference.Cartesian2D, err
	}
	return reference.NewCoordinateSystem(p.Identifier+" cs", "Cartesian 2D CS. UoM: "+u.Name, reference.Cartesian,
		reference.Axis{Name: "Easting", Abbreviation: "E", Direction: reference.East, Unit: u},
		reference.Axis{Name: "Northing", Abbreviation: "N", Direction: reference.North, Unit: u})
}

func (p ProjectedCRSConfig) build(c *catalog.Catalog) (*reference.ProjectedCRS, error) {
	rs, err := c.Lookup(p.Base)
	if err != nil {
		return nil, err
	}
	base, ok := rs.(*reference.GeographicCRS)
	if !ok {
		return nil, georef.Errorf(georef.InvalidArgument, "base system %s is not geographic", rs.Identifier())
	}
	cs, err := p.coordinateSystem()
	if err != nil {
		return nil, err
	}
	m, err := p.method()
	if err != nil {
		return nil, err
	}
	params := make(operation.Parameters, len(p.Parameters))
	for _, pc := range p.Parameters {
		param, v, err := pc.parameter()
		if err != nil {
			return nil, err
		}
		params[param] = v
	}
	var proj reference.Projection
	if m != nil {
		op, err := operation.Projections.FromMethod(m, params, base.Datum().Ellipsoid(), base.AreaOfUse())
		if err != nil {
			return nil, err
		}
		if op != nil {
			proj = op
		}
	}
	if proj == nil && p.Proj4 == "" {
		return nil, georef.Errorf(georef.UnsupportedTransformation, "no implementation of method %q and no PROJ.4 definition", p.Method)
	}
	var opts []reference.Option
	if len(p.Aliases) > 0 {
		opts = append(opts, reference.WithAliases(p.Aliases...))
	}
	if p.Proj4 != "" {
		opts = append(opts, reference.WithProj4(p.Proj4))
	}
	return reference.NewProjectedCRS(p.Identifier, p.Name, base, cs, proj, base.AreaOfUse(), opts...)
}
