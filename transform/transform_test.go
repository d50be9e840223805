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

package transform

import (
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/catalog"
	"github.com/spatialmodel/georef/geometry"
	"github.com/spatialmodel/georef/reference"
	"gonum.org/v1/gonum/floats"
)

type recorder struct{ entries []*logrus.Entry }

func (r *recorder) Levels() []logrus.Level { return logrus.AllLevels }

func (r *recorder) Fire(e *logrus.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func execute(t *testing.T, g geometry.Geometry, p Parameters) geometry.Geometry {
	t.Helper()
	tr, err := New(g, p)
	if err != nil {
		t.Fatal(err)
	}
	out, err := tr.Execute()
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func ring(t *testing.T, f geometry.Factory, xy ...float64) *geometry.LinearRing {
	t.Helper()
	cs := make([]reference.Coordinate, len(xy)/2)
	for i := range cs {
		cs[i] = reference.Coordinate{X: xy[2*i], Y: xy[2*i+1]}
	}
	r, err := f.CreateLinearRing(cs, nil)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestMissingTarget(t *testing.T) {
	p := geometry.NewFactory(reference.WGS84).CreatePoint(reference.Coordinate{}, nil)
	if _, err := New(p, Parameters{}); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("have %v, want InvalidArgument", err)
	}
}

func TestNilSource(t *testing.T) {
	out := execute(t, nil, Parameters{TargetReferenceSystem: reference.WGS84})
	if out != nil {
		t.Errorf("have %v, want nil", out)
	}
}

func TestIdentity(t *testing.T) {
	for _, rs := range []reference.ReferenceSystem{reference.WGS84, nil} {
		f := geometry.NewFactory(rs)
		poly, err := f.CreatePolygon(ring(t, f, 0, 0, 1, 0, 1, 1), nil, geometry.Metadata{"id": "42"})
		if err != nil {
			t.Fatal(err)
		}
		tr, err := New(poly, Parameters{TargetReferenceSystem: reference.WGS84})
		if err != nil {
			t.Fatal(err)
		}
		out, err := tr.Execute()
		if err != nil {
			t.Fatal(err)
		}
		if out != geometry.Geometry(poly) {
			t.Errorf("%v: the source was not returned as is", rs)
		}
		if len(tr.strategies) != 0 {
			t.Errorf("%v: a strategy was resolved", rs)
		}
	}
}

func TestPoint(t *testing.T) {
	f := geometry.NewFactory(reference.WGS84)
	out := execute(t, f.CreatePoint(reference.Coordinate{X: 90, Y: 45}, nil), Parameters{
		TargetReferenceSystem: catalog.WorldMillerCylindrical,
	})
	p, ok := out.(*geometry.Point)
	if !ok {
		t.Fatalf("have %T", out)
	}
	c := p.Coordinate()
	if !floats.EqualWithinAbs(c.X, 10018754.171, 1e-3) || !floats.EqualWithinAbs(c.Y, 5375776.715, 1e-3) {
		t.Errorf("have %v", c)
	}
	if p.ReferenceSystem() != catalog.WorldMillerCylindrical {
		t.Errorf("result is in %v", p.ReferenceSystem())
	}
}

func TestMetadataPreservation(t *testing.T) {
	f := geometry.NewFactory(reference.WGS84)
	p := f.CreatePoint(reference.Coordinate{X: 10, Y: 20}, geometry.Metadata{"id": "42"})
	for _, preserve := range []bool{true, false} {
		out := execute(t, p, Parameters{
			TargetReferenceSystem: catalog.WorldMillerCylindrical,
			MetadataPreservation:  preserve,
		})
		md := out.Metadata()
		if preserve && (len(md) != 1 || md["id"] != "42") {
			t.Errorf("preserved metadata: have %v", md)
		}
		if !preserve && len(md) != 0 {
			t.Errorf("dropped metadata: have %v", md)
		}
	}
}

func TestPolygon(t *testing.T) {
	f := geometry.NewFactory(reference.WGS84)
	shell := ring(t, f, -10, -10, 10, -10, 10, 10, -10, 10)
	for _, holes := range [][]*geometry.LinearRing{
		nil,
		{ring(t, f, -5, -5, -1, -5, -1, -1), ring(t, f, 1, 1, 5, 1, 5, 5)},
	} {
		poly, err := f.CreatePolygon(shell, holes, nil)
		if err != nil {
			t.Fatal(err)
		}
		out := execute(t, poly, Parameters{TargetReferenceSystem: catalog.PseudoMercator})
		p := out.(*geometry.Polygon)
		if p.HoleCount() != len(holes) {
			t.Errorf("have %d holes, want %d", p.HoleCount(), len(holes))
		}
		if p.Shell().CoordinateCount() != 5 {
			t.Errorf("shell has %d positions", p.Shell().CoordinateCount())
		}
		for i := 0; i < p.HoleCount(); i++ {
			if p.Hole(i).CoordinateCount() != holes[i].CoordinateCount() {
				t.Errorf("hole %d has %d positions", i, p.Hole(i).CoordinateCount())
			}
		}
	}
}

func nested(t *testing.T, f geometry.Factory) geometry.Geometry {
	var points []*geometry.Point
	for i := 0; i < 20; i++ {
		points = append(points, f.CreatePoint(reference.Coordinate{X: float64(i*9 - 90), Y: float64(i*4 - 40)}, geometry.Metadata{"i": i}))
	}
	mp, err := f.CreateMultiPoint(points, nil)
	if err != nil {
		t.Fatal(err)
	}
	ls, err := f.CreateLineString([]reference.Coordinate{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	mls, err := f.CreateMultiLineString([]*geometry.LineString{ls, ls}, nil)
	if err != nil {
		t.Fatal(err)
	}
	poly, err := f.CreatePolygon(ring(t, f, 0, 0, 1, 0, 1, 1), []*geometry.LinearRing{ring(t, f, 0.2, 0.1, 0.8, 0.1, 0.8, 0.7)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	mpoly, err := f.CreateMultiPolygon([]*geometry.Polygon{poly, poly}, nil)
	if err != nil {
		t.Fatal(err)
	}
	line := f.CreateLine(reference.Coordinate{X: -3}, reference.Coordinate{X: 3}, nil)
	tri := f.CreateTriangle(reference.Coordinate{}, reference.Coordinate{X: 1}, reference.Coordinate{Y: 1}, nil)
	inner, err := f.CreateGeometryCollection([]geometry.Geometry{line, tri}, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := f.CreateGeometryCollection([]geometry.Geometry{mp, mls, mpoly, inner}, geometry.Metadata{"name": "all"})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestParallel(t *testing.T) {
	src := nested(t, geometry.NewFactory(reference.WGS84))
	var want []byte
	for _, parallel := range []bool{false, true} {
		out := execute(t, src, Parameters{
			TargetReferenceSystem: reference.NAD27,
			MetadataPreservation:  true,
			Parallel:              parallel,
		})
		b, err := geometry.EncodeFeature(out)
		if err != nil {
			t.Fatal(err)
		}
		if want == nil {
			want = b
			c := out.(*geometry.Collection)
			mp := c.Geometry(0).(*geometry.MultiPoint)
			for i := 0; i < mp.Count(); i++ {
				if mp.Point(i).Metadata()["i"] != i {
					t.Errorf("point %d has metadata %v", i, mp.Point(i).Metadata())
				}
			}
			if _, ok := c.Geometry(3).(*geometry.Collection).Geometry(1).(*geometry.Triangle); !ok {
				t.Error("the triangle was not kept")
			}
			continue
		}
		if string(b) != string(want) {
			t.Errorf("parallel result differs:\n%s\n%s", b, want)
		}
	}
}

func TestGeometryFactory(t *testing.T) {
	f := geometry.NewFactory(reference.WGS84)
	target := geometry.NewFactory(catalog.WorldMillerCylindrical)
	out := execute(t, f.CreatePoint(reference.Coordinate{}, nil), Parameters{
		TargetReferenceSystem: catalog.WorldMillerCylindrical,
		GeometryFactory:       target,
	})
	if out.Factory() != geometry.Factory(target) {
		t.Error("the supplied factory was not used")
	}
}

func TestMixedSystems(t *testing.T) {
	wgs84 := geometry.NewFactory(reference.WGS84)
	nad27 := geometry.NewFactory(reference.NAD27)
	keep := nad27.CreatePoint(reference.Coordinate{X: -100, Y: 40}, nil)
	c, err := wgs84.CreateGeometryCollection([]geometry.Geometry{
		wgs84.CreatePoint(reference.Coordinate{X: -100, Y: 40}, nil),
		geometry.NewFactory(reference.ETRS89).CreatePoint(reference.Coordinate{X: 10, Y: 50}, nil),
		keep,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := execute(t, c, Parameters{TargetReferenceSystem: reference.NAD27}).(*geometry.Collection)
	if out.Geometry(2) != geometry.Geometry(keep) {
		t.Error("a member in the target system was not kept")
	}
	p := out.Geometry(0).(*geometry.Point).Coordinate()
	if !floats.EqualWithinAbs(p.X, -99.99958239347, 1e-9) || !floats.EqualWithinAbs(p.Y, 39.99999051566, 1e-9) {
		t.Errorf("shifted point: have %v", p)
	}
	for i := 0; i < 2; i++ {
		if out.Geometry(i).ReferenceSystem() != reference.NAD27 {
			t.Errorf("member %d is in %v", i, out.Geometry(i).ReferenceSystem())
		}
	}
}

func TestErrors(t *testing.T) {
	pole := geometry.NewFactory(reference.WGS84).CreatePoint(reference.Coordinate{X: 0, Y: 90}, nil)
	ok := geometry.NewFactory(reference.WGS84).CreatePoint(reference.Coordinate{X: 0, Y: 0}, nil)
	line, err := geometry.NewFactory(reference.WGS84).CreateMultiPoint([]*geometry.Point{ok, pole}, nil)
	if err != nil {
		t.Fatal(err)
	}
	sphere := geometry.NewFactory(reference.SphereGeographic).CreatePoint(reference.Coordinate{}, nil)
	for _, test := range []struct {
		name   string
		g      geometry.Geometry
		target reference.ReferenceSystem
		kind   georef.Kind
	}{
		{"pole", pole, catalog.PseudoMercator, georef.ComputationFault},
		{"one bad member", line, catalog.PseudoMercator, georef.ComputationFault},
		{"no datum shift", sphere, reference.NAD27, georef.UnsupportedTransformation},
		{"custom geometry", custom{ok}, catalog.PseudoMercator, georef.UnsupportedGeometryType},
	} {
		t.Run(test.name, func(t *testing.T) {
			for _, parallel := range []bool{false, true} {
				tr, err := New(test.g, Parameters{TargetReferenceSystem: test.target, Parallel: parallel})
				if err != nil {
					t.Fatal(err)
				}
				out, err := tr.Execute()
				if !georef.Is(err, test.kind) {
					t.Errorf("have %v, want %v", err, test.kind)
				}
				if out != nil {
					t.Errorf("a partial result was returned: %v", out)
				}
			}
		})
	}
}

type custom struct{ *geometry.Point }

func TestLog(t *testing.T) {
	l := logrus.New()
	l.Out = ioutil.Discard
	l.Level = logrus.DebugLevel
	r := new(recorder)
	l.Hooks.Add(r)

	f := geometry.NewFactory(reference.WGS84)
	ls, err := f.CreateLineString([]reference.Coordinate{{X: 1, Y: 2}, {X: 3, Y: 4}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := New(ls, Parameters{TargetReferenceSystem: catalog.PseudoMercator})
	if err != nil {
		t.Fatal(err)
	}
	tr.Log = l
	for i := 0; i < 2; i++ {
		if _, err := tr.Execute(); err != nil {
			t.Fatal(err)
		}
	}
	if len(r.entries) != 1 {
		t.Fatalf("have %d log entries, want 1", len(r.entries))
	}
	if r.entries[0].Data["strategy"] != "forward" {
		t.Errorf("logged %v", r.entries[0].Data)
	}
}

func TestAreaOfUseLog(t *testing.T) {
	l := logrus.New()
	l.Out = ioutil.Discard
	l.Level = logrus.DebugLevel
	r := new(recorder)
	l.Hooks.Add(r)

	f := geometry.NewFactory(reference.NAD27)
	ls, err := f.CreateLineString([]reference.Coordinate{{X: -100, Y: 40}, {X: 10, Y: 50}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := New(ls, Parameters{TargetReferenceSystem: reference.WGS84})
	if err != nil {
		t.Fatal(err)
	}
	tr.Log = l
	if _, err := tr.Execute(); err != nil {
		t.Fatal(err)
	}
	var outside []*logrus.Entry
	for _, e := range r.entries {
		if e.Message == "transform: coordinate is outside the area of use" {
			outside = append(outside, e)
		}
	}
	if len(outside) != 1 {
		t.Fatalf("have %d coordinates outside the area of use, want 1", len(outside))
	}
	if c := outside[0].Data["coordinate"].(reference.Coordinate); c.X != 10 || c.Y != 50 {
		t.Errorf("logged %v", c)
	}
}
