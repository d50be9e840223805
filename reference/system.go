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

// ReferenceSystemType is the kind of a reference system. It is derived
// from the coordinate system of the reference system.
type ReferenceSystemType int

// Reference system types.
const (
	UnknownType ReferenceSystemType = iota
	Geographic2D
	Geographic3D
	Geocentric
	Projected2D
	Projected3D
)

func (t ReferenceSystemType) String() string {
	switch t {
	case Geographic2D:
		return "Geographic2D"
	case Geographic3D:
		return "Geographic3D"
	case Geocentric:
		return "Geocentric"
	case Projected2D:
		return "Projected2D"
	case Projected3D:
		return "Projected3D"
	}
	return "Unknown"
}

// ReferenceSystem describes how raw coordinates map to positions on or
// near the Earth. Reference systems are immutable.
type ReferenceSystem interface {
	Identifier() string
	Name() string
	Aliases() []string
	Scope() string
	Remarks() string

	// Dimension is the number of axes of the coordinate system.
	Dimension() int
	Type() ReferenceSystemType
	CoordinateSystem() *CoordinateSystem
	AreaOfUse() *AreaOfUse

	// Proj4 returns the PROJ.4 definition of the system, or "" if it has none.
	Proj4() string

	// Equal reports whether the system is the same as o, by reference
	// or by value.
	Equal(o ReferenceSystem) bool
}

// Equal reports whether a and b are the same reference system. Two nil
// systems are equal.
func Equal(a, b ReferenceSystem) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Projection maps geographic coordinates to planar coordinates in metres
// and back. Implementations are immutable and safe for concurrent use.
type Projection interface {
	Identifier() string
	Name() string

	// MethodIdentifier returns the identifier of the operation method
	// implemented by the projection.
	MethodIdentifier() string

	Forward(GeoCoordinate) (Coordinate, error)
	Reverse(Coordinate) (GeoCoordinate, error)

	// Equal reports whether the projection implements the same method with
	// the same parameter values as o.
	Equal(o Projection) bool
}

// Option configures the optional metadata of a reference system.
type Option func(*crs)

// WithScope sets the scope of a reference system.
func WithScope(scope string) Option { return func(c *crs) { c.scope = scope } }

// WithRemarks sets the remarks of a reference system.
func WithRemarks(remarks string) Option { return func(c *crs) { c.remarks = remarks } }

// WithAliases sets the alternative names of a reference system.
func WithAliases(aliases ...string) Option {
	return func(c *crs) { c.aliases = append([]string(nil), aliases...) }
}

// WithProj4 sets the PROJ.4 definition of a reference system.
func WithProj4(definition string) Option { return func(c *crs) { c.proj4 = definition } }

// crs holds the fields shared by all reference systems.
type crs struct {
	IdentifiedObject
	scope string
	cs    *CoordinateSystem
	area  *AreaOfUse
	proj4 string
}

func newCRS(identifier, name string, cs *CoordinateSystem, area *AreaOfUse, opts []Option) (crs, error) {
	o, err := NewIdentifiedObject(identifier, name, "")
	if err != nil {
		return crs{}, err
	}
	c := crs{IdentifiedObject: o, cs: cs, area: area}
	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}

func (c *crs) Scope() string                       { return c.scope }
func (c *crs) CoordinateSystem() *CoordinateSystem { return c.cs }
func (c *crs) AreaOfUse() *AreaOfUse               { return c.area }
func (c *crs) Dimension() int                      { return c.cs.Dimension() }
func (c *crs) Proj4() string                       { return c.proj4 }
