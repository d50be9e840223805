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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/catalog"
	"github.com/spatialmodel/georef/geometry"
	"github.com/spatialmodel/georef/reference"
	"github.com/spatialmodel/georef/strategy"
	"gonum.org/v1/gonum/floats"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	c, err := catalog.New(catalog.Default().Systems()...)
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open("testdata/catalog.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := LoadCatalog(c, f); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestLoadCatalog(t *testing.T) {
	c := testCatalog(t)
	ed50, err := c.Lookup("European Datum 1950")
	if err != nil {
		t.Fatal(err)
	}
	if ed50.Identifier() != "EPSG::4230" || ed50.Type() != reference.Geographic2D {
		t.Errorf("ED50: %s %v", ed50.Identifier(), ed50.Type())
	}
	rs, err := c.Lookup("TEST::1")
	if err != nil {
		t.Fatal(err)
	}
	miller := rs.(*reference.ProjectedCRS)
	if miller.Base() != ed50 || miller.Projection() == nil {
		t.Fatal("TEST::1 is not a projection of ED50")
	}
	s, err := strategy.New(ed50, miller)
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind() != strategy.Forward {
		t.Errorf("kind %v", s.Kind())
	}
	p, err := s.Transform(reference.Coordinate{X: 10, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(p.X, 1000*3937/1200., 1e-6) || !floats.EqualWithinAbs(p.Y, 0, 1e-6) {
		t.Errorf("have %v", p)
	}

	rs, err = c.Lookup("TEST::2")
	if err != nil {
		t.Fatal(err)
	}
	if utm := rs.(*reference.ProjectedCRS); utm.Projection() != nil || utm.Proj4() == "" {
		t.Error("TEST::2 should only have a PROJ.4 definition")
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	for _, test := range []struct {
		name, toml string
		kind       georef.Kind
	}{
		{"syntax", `[[ProjectedCRS]`, georef.InvalidArgument},
		{"duplicate", `[[GeographicCRS]]
Identifier = "EPSG::4326"
Datum = "EPSG::6326"`, georef.InvalidArgument},
		{"unknown datum", `[[GeographicCRS]]
Identifier = "TEST::3"
Datum = "TEST::6000"`, georef.InvalidArgument},
		{"unknown base", `[[ProjectedCRS]]
Identifier = "TEST::3"
Base = "TEST::4000"
Method = "ESRI::54002"`, georef.InvalidArgument},
		{"projected base", `[[ProjectedCRS]]
Identifier = "TEST::3"
Base = "EPSG::3857"
Method = "ESRI::54002"`, georef.InvalidArgument},
		{"no implementation", `[[ProjectedCRS]]
Identifier = "TEST::3"
Base = "EPSG::4326"
Method = "EPSG::9807"`, georef.UnsupportedTransformation},
		{"unknown unit", `[[ProjectedCRS]]
Identifier = "TEST::3"
Base = "EPSG::4326"
Method = "ESRI::54002"
  [[ProjectedCRS.Parameters]]
  Name = "False easting"
  Value = 1.0
  Unit = "furlong"`, georef.InvalidUnit},
		{"wrong unit", `[[ProjectedCRS]]
Identifier = "TEST::3"
Base = "EPSG::4326"
Method = "ESRI::54002"
  [[ProjectedCRS.Parameters]]
  Name = "False easting"
  Value = 1.0
  Unit = "degree"
  [[ProjectedCRS.Parameters]]
  Name = "False northing"
  Value = 1.0
  Unit = "metre"
  [[ProjectedCRS.Parameters]]
  Name = "Central meridian"
  Value = 1.0
  Unit = "degree"`, georef.UnitMismatch},
		{"missing parameter", `[[ProjectedCRS]]
Identifier = "TEST::3"
Base = "EPSG::4326"
Method = "ESRI::54002"
  [[ProjectedCRS.Parameters]]
  Name = "False easting"
  Value = 1.0
  Unit = "metre"`, georef.MissingParameter},
	} {
		t.Run(test.name, func(t *testing.T) {
			c, err := catalog.New(catalog.Default().Systems()...)
			if err != nil {
				t.Fatal(err)
			}
			if err := LoadCatalog(c, strings.NewReader(test.toml)); georef.KindOf(err) != test.kind {
				t.Errorf("have %v, want %v", err, test.kind)
			}
		})
	}
}

func TestLoadCatalogNothingAddedOnError(t *testing.T) {
	c, err := catalog.New(catalog.Default().Systems()...)
	if err != nil {
		t.Fatal(err)
	}
	n := len(c.Systems())
	const file = `[[GeographicCRS]]
Identifier = "TEST::4"
Name = "Test geographic"
Datum = "EPSG::6326"

[[ProjectedCRS]]
Identifier = "TEST::5"
Base = "TEST::4"
Method = "ESRI::54002"`
	if err := LoadCatalog(c, strings.NewReader(file)); !georef.Is(err, georef.MissingParameter) {
		t.Fatalf("have %v, want MissingParameter", err)
	}
	if len(c.Systems()) != n {
		t.Errorf("have %d systems, want %d", len(c.Systems()), n)
	}
	if _, err := c.Lookup("TEST::4"); err == nil {
		t.Error("TEST::4 was added")
	}
}

func TestVersion(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	defer Root.SetOutput(nil)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := "GeoRef v" + georef.Version; !strings.Contains(buf.String(), want) {
		t.Errorf("have %q, want %q", buf.String(), want)
	}
}

func TestMethods(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	defer Root.SetOutput(nil)
	Root.SetArgs([]string{"methods", "mercator"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"EPSG::1024", "EPSG::9804", "EPSG::9807"} {
		if !strings.Contains(out, want) {
			t.Errorf("%s is not listed:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ESRI::54002") {
		t.Errorf("Miller is listed:\n%s", out)
	}
}

func TestSystems(t *testing.T) {
	Cfg.Set("config", "testdata/config.toml")
	defer Cfg.Set("config", "")
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	defer Root.SetOutput(nil)
	Root.SetArgs([]string{"systems", "ED50"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"EPSG::4230", "TEST::1", "TEST::2"} {
		if !strings.Contains(out, want) {
			t.Errorf("%s is not listed:\n%s", want, out)
		}
	}
	if strings.Contains(out, "EPSG::4326") {
		t.Errorf("WGS 84 is listed:\n%s", out)
	}
}

func TestTransform(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`{"type":"Feature","geometry":{"type":"Point","coordinates":[90,45]},"properties":{"id":"42"}}`)
	if err := Transform(in, &out, reference.WGS84, catalog.WorldMillerCylindrical, true, false); err != nil {
		t.Fatal(err)
	}
	g, err := geometry.DecodeGeoJSON(geometry.NewFactory(nil), out.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	c := g.(*geometry.Point).Coordinate()
	if !floats.EqualWithinAbs(c.X, 10018754.171, 1e-3) || !floats.EqualWithinAbs(c.Y, 5375776.715, 1e-3) {
		t.Errorf("have %v", c)
	}
	if g.Metadata()["id"] != "42" {
		t.Errorf("metadata %v", g.Metadata())
	}

	out.Reset()
	in = strings.NewReader(`{"type":"Point","coordinates":[0,90]}`)
	if err := Transform(in, &out, reference.WGS84, catalog.PseudoMercator, false, false); !georef.Is(err, georef.ComputationFault) {
		t.Errorf("have %v, want ComputationFault", err)
	}
	if out.Len() != 0 {
		t.Errorf("partial output %s", out.String())
	}
}

func TestTransformCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "georef")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	const input = `{"type":"FeatureCollection","features":[` +
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[10,0]},"properties":{"id":"a"}},` +
		`{"type":"Feature","geometry":{"type":"LineString","coordinates":[[10,0],[11,1]]},"properties":{"id":"b"}}]}`
	if err := ioutil.WriteFile(in, []byte(input), 0644); err != nil {
		t.Fatal(err)
	}

	Cfg.Set("config", "testdata/config.toml")
	Cfg.Set("input", in)
	Cfg.Set("output", out)
	Cfg.Set("source", "EPSG::4230")
	Cfg.Set("metadata", true)
	Cfg.Set("parallel", true)
	defer func() {
		for _, k := range []string{"config", "input", "output"} {
			Cfg.Set(k, "")
		}
		Cfg.Set("source", "EPSG::4326")
		Cfg.Set("metadata", false)
		Cfg.Set("parallel", false)
	}()
	Root.SetArgs([]string{"transform"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}

	b, err := ioutil.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	g, err := geometry.DecodeGeoJSON(geometry.NewFactory(nil), b)
	if err != nil {
		t.Fatal(err)
	}
	c := g.(*geometry.Collection)
	if c.Count() != 2 || c.Geometry(0).Metadata()["id"] != "a" || c.Geometry(1).Metadata()["id"] != "b" {
		t.Fatalf("have %s", b)
	}
	p := c.Geometry(0).(*geometry.Point).Coordinate()
	if !floats.EqualWithinAbs(p.X, 1000*3937/1200., 1e-6) || !floats.EqualWithinAbs(p.Y, 0, 1e-6) {
		t.Errorf("have %v", p)
	}
}
