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

package catalog

import (
	"strings"
	"sync"

	"github.com/spatialmodel/georef/reference"
)

func equalFold(a, b string) bool { return strings.EqualFold(a, b) }

var (
	projectedOnce sync.Once
	projected     []*reference.ProjectedCRS

	// WorldMillerCylindrical is the Miller cylindrical projection of WGS 84.
	WorldMillerCylindrical *reference.ProjectedCRS
	// PseudoMercator is the projection used by web mapping services.
	PseudoMercator *reference.ProjectedCRS
	// SphereEquidistantCylindrical is the equidistant cylindrical
	// projection of the authalic sphere.
	SphereEquidistantCylindrical *reference.ProjectedCRS
	// UTM33N is UTM zone 33N on WGS 84. It has no projection of its own
	// and is transformed through its PROJ.4 definition.
	UTM33N *reference.ProjectedCRS
)

func init() { Projected() }

// Projected returns the well-known projected systems.
func Projected() []*reference.ProjectedCRS {
	projectedOnce.Do(func() {
		WorldMillerCylindrical = mustProjected("ESRI::54003", "World_Miller_Cylindrical", reference.WGS84, "ESRI::54003", reference.World,
			reference.WithAliases("World Miller Cylindrical"),
			reference.WithScope("Very small scale mapping."),
			reference.WithProj4("+proj=mill +lat_0=0 +lon_0=0 +x_0=0 +y_0=0 +R_A +datum=WGS84 +units=m +no_defs"))
		PseudoMercator = mustProjected("EPSG::3857", "WGS 84 / Pseudo-Mercator", reference.WGS84, "EPSG::3856", reference.PseudoMercatorArea,
			reference.WithAliases("Web Mercator", "Google Maps Global Mercator"),
			reference.WithScope("Certain Web mapping and visualisation applications."),
			reference.WithProj4("+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +no_defs"))
		SphereEquidistantCylindrical = mustProjected("ESRI::53002", "Sphere_Equidistant_Cylindrical", reference.SphereGeographic, "ESRI::53002", reference.World,
			reference.WithAliases("Sphere Equidistant Cylindrical", "Plate Carree"),
			reference.WithProj4("+proj=eqc +lat_ts=0 +lat_0=0 +lon_0=0 +x_0=0 +y_0=0 +a=6371000 +b=6371000 +units=m +no_defs"))
		UTM33N = mustProjected("EPSG::32633", "WGS 84 / UTM zone 33N", reference.WGS84, "", utm33Area,
			reference.WithScope("Navigation and medium accuracy spatial referencing."),
			reference.WithProj4("+proj=utm +zone=33 +datum=WGS84 +units=m +no_defs"))
		projected = []*reference.ProjectedCRS{WorldMillerCylindrical, PseudoMercator, SphereEquidistantCylindrical, UTM33N}
	})
	return append([]*reference.ProjectedCRS(nil), projected...)
}

var utm33Area = func() *reference.AreaOfUse {
	a, err := reference.NewAreaOfUse("EPSG::1865", "World - N hemisphere - 12°E to 18°E", 0, 12, 84, 18)
	if err != nil {
		panic(err)
	}
	return a
}()

// mustProjected builds a projected system from a predefined projection,
// or from its PROJ.4 definition alone if projectionID is empty.
func mustProjected(id, name string, base *reference.GeographicCRS, projectionID string, area *reference.AreaOfUse, opts ...reference.Option) *reference.ProjectedCRS {
	var proj reference.Projection
	if projectionID != "" {
		p, err := ProjectionFromIdentifier(projectionID)
		if err != nil {
			panic(err)
		}
		proj = p
	}
	p, err := reference.NewProjectedCRS(id, name, base, reference.Cartesian2D, proj, area, opts...)
	if err != nil {
		panic(err)
	}
	return p
}
