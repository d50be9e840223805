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
	"fmt"
	"io/ioutil"
	"sort"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/measure"
	"github.com/spatialmodel/georef/reference"
)

// recorder collects the log entries it is fired with.
type recorder struct {
	mu      sync.Mutex
	entries []*logrus.Entry
}

func (r *recorder) Levels() []logrus.Level { return logrus.AllLevels }

func (r *recorder) Fire(e *logrus.Entry) error {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
	return nil
}

func newTestLogger() (*logrus.Logger, *recorder) {
	r := new(recorder)
	l := logrus.New()
	l.Out = ioutil.Discard
	l.Level = logrus.DebugLevel
	l.Hooks.Add(r)
	return l, r
}

func identifiers[T Operation](ops []T) []string {
	ids := make([]string, len(ops))
	for i, op := range ops {
		ids[i] = op.Identifier()
	}
	sort.Strings(ids)
	return ids
}

func TestFactoryFromIdentifier(t *testing.T) {
	if _, err := Projections.FromIdentifier(""); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("empty identifier: have %v, want InvalidArgument", err)
	}
	if _, err := Projections.FromName(""); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("empty name: have %v, want InvalidArgument", err)
	}
	for _, test := range []struct {
		query  string
		byName bool
		want   []string
	}{
		{query: "54003", want: []string{"ESRI::54003"}},
		{query: "esri::", want: []string{"ESRI::53002", "ESRI::54003"}},
		{query: "cylindrical", byName: true, want: []string{"ESRI::53002", "ESRI::54003"}},
		{query: "pseudo-mercator", byName: true, want: []string{"EPSG::3856"}},
		{query: ".", want: nil},
		{query: "lambert", byName: true, want: nil},
	} {
		t.Run(test.query, func(t *testing.T) {
			var ops []Projection
			var err error
			if test.byName {
				ops, err = Projections.FromName(test.query)
			} else {
				ops, err = Projections.FromIdentifier(test.query)
			}
			if err != nil {
				t.Fatal(err)
			}
			if have := identifiers(ops); fmt.Sprint(have) != fmt.Sprint(test.want) {
				t.Errorf("have %v, want %v", have, test.want)
			}
		})
	}

	ops, err := GeocentricTransformations.FromName("NAD27")
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || ops[0].Identifier() != "EPSG::1173" {
		t.Fatalf("have %v, want EPSG::1173", identifiers(ops))
	}
	c, err := ops[0].Forward(reference.Coordinate{})
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equal(reference.Coordinate{X: -8, Y: 160, Z: 176}) {
		t.Errorf("translation: have %v", c)
	}
}

func TestFactoryFromMethod(t *testing.T) {
	full := zeroOrigin()
	ops, err := Projections.FromMethodName("cylindrical", full, testSphere, reference.World)
	if err != nil {
		t.Fatal(err)
	}
	if have := identifiers(ops); fmt.Sprint(have) != "[EPSG::1029 ESRI::54002]" {
		t.Errorf("all satisfied candidates: have %v", have)
	}
	if ops[0].Name() == "" {
		t.Error("operations should be named after their method")
	}

	ops, err = Projections.FromMethodName("cylindrical", millerParameters(0), testSphere, reference.World)
	if err != nil {
		t.Fatal(err)
	}
	if have := identifiers(ops); fmt.Sprint(have) != "[ESRI::54002]" {
		t.Errorf("unsatisfied candidates should be skipped: have %v", have)
	}

	noNorthing := millerParameters(0)
	delete(noNorthing, FalseNorthing)
	ops, err = Projections.FromMethodIdentifier("ESRI::54002", noNorthing, testSphere, reference.World)
	if err != nil || len(ops) != 0 {
		t.Errorf("missing parameter: have %v, %v; want no candidates and no error", identifiers(ops), err)
	}

	ops, err = Projections.FromMethodName("web mercator", full, reference.WGS84Ellipsoid, reference.World)
	if err != nil {
		t.Fatal(err)
	}
	if have := identifiers(ops); fmt.Sprint(have) != "[EPSG::1024]" {
		t.Errorf("alias: have %v", have)
	}

	if _, err := Projections.FromMethodIdentifier("", full, testSphere, reference.World); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("empty method identifier: have %v, want InvalidArgument", err)
	}
	if _, err := Projections.FromMethodName("", full, testSphere, reference.World); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("empty method name: have %v, want InvalidArgument", err)
	}
}

func TestFactorySwallowsCandidateFailures(t *testing.T) {
	logger, rec := newTestLogger()
	f := NewFactory[Projection]()
	f.Log = logger

	params := zeroOrigin()
	params[LatitudeOf1stStandardParallel] = AngleValue(measure.Degrees(90))
	ops, err := f.FromMethodName("cylindrical", params, testSphere, reference.World)
	if err != nil {
		t.Fatal(err)
	}
	if have := identifiers(ops); fmt.Sprint(have) != "[ESRI::54002]" {
		t.Errorf("have %v, want only the Miller projection", have)
	}
	if len(rec.entries) != 1 {
		t.Fatalf("have %d log entries, want 1", len(rec.entries))
	}
	if m := rec.entries[0].Data["method"]; m != "EPSG::1029" {
		t.Errorf("logged method: have %v, want EPSG::1029", m)
	}

	params[FalseEasting] = AngleValue(measure.Degrees(1))
	ops, err = f.FromMethodName("cylindrical", params, testSphere, reference.World)
	if err != nil || len(ops) != 0 {
		t.Errorf("have %v, %v; want no candidates and no error", identifiers(ops), err)
	}
	if len(rec.entries) != 3 {
		t.Errorf("have %d log entries, want 3", len(rec.entries))
	}
}

func TestFactoryFromMethodDirect(t *testing.T) {
	p, err := Projections.FromMethod(MillerCylindricalProjection, millerParameters(0), testSphere, reference.World)
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Identifier() != "ESRI::54002" || p.Name() != "Miller Cylindrical Projection" {
		t.Errorf("have %v", p)
	}

	p, err = Projections.FromMethod(TransverseMercator, Parameters{}, testSphere, reference.World)
	if err != nil || p != nil {
		t.Errorf("unimplemented method: have %v, %v; want nil, nil", p, err)
	}

	g, err := GeocentricTransformations.FromMethod(MillerCylindricalProjection, millerParameters(0), testSphere, reference.World)
	if err != nil || g != nil {
		t.Errorf("implementation of another type: have %v, %v; want nil, nil", g, err)
	}

	if _, err := Projections.FromMethod(nil, nil, testSphere, reference.World); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("nil method: have %v, want InvalidArgument", err)
	}
	noNorthing := millerParameters(0)
	delete(noNorthing, FalseNorthing)
	if _, err := Projections.FromMethod(MillerCylindricalProjection, noNorthing, testSphere, reference.World); !georef.Is(err, georef.MissingParameter) {
		t.Errorf("missing parameter: have %v, want MissingParameter", err)
	}
}

func TestRegistryConcurrentFirstAccess(t *testing.T) {
	r := new(registry)
	var methods []*Method
	for i := 0; i < 50; i++ {
		m, err := NewMethod(fmt.Sprintf("TEST::%d", i), "test", Conversion, nil)
		if err != nil {
			t.Fatal(err)
		}
		methods = append(methods, m)
		r.register(m, func(string, string, Parameters, *reference.Ellipsoid, *reference.AreaOfUse) (Operation, error) {
			return nil, nil
		})
	}
	var wg sync.WaitGroup
	counts := make([]int, 64)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n := 0
			for _, m := range methods {
				if _, ok := r.lookup(m); ok {
					n++
				}
			}
			counts[i] = n + len(r.registered())
		}(i)
	}
	wg.Wait()
	for i, n := range counts {
		if n != 2*len(methods) {
			t.Errorf("goroutine %d saw %d registrations, want %d", i, n, 2*len(methods))
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("registering after the first lookup should panic")
		}
	}()
	r.register(methods[0], func(string, string, Parameters, *reference.Ellipsoid, *reference.AreaOfUse) (Operation, error) {
		return nil, nil
	})
}

func TestImplementedMethods(t *testing.T) {
	want := map[*Method]bool{
		MillerCylindricalProjection:        true,
		PopularVisualisationPseudoMercator: true,
		EquidistantCylindricalSpherical:    true,
		GeographicGeocentricConversion:     true,
		GeocentricTranslations:             true,
		TransverseMercator:                 false,
		MercatorVariantA:                   false,
	}
	for m, w := range want {
		if have := IsImplemented(m); have != w {
			t.Errorf("%s: have %v, want %v", m.Name(), have, w)
		}
	}
	if n := len(ImplementedMethods()); n != 5 {
		t.Errorf("have %d implemented methods, want 5", n)
	}
}

func TestMethodLookup(t *testing.T) {
	for _, test := range []struct {
		query  string
		byName bool
		want   int
	}{
		{query: "mercator", byName: true, want: 3},
		{query: "WEB", byName: true, want: 1},
		{query: "(spherical)", byName: true, want: 1},
		{query: "EPSG::10", want: 3},
		{query: "esri", want: 1},
		{query: ".*", want: 0},
	} {
		var ms []*Method
		var err error
		if test.byName {
			ms, err = MethodsFromName(test.query)
		} else {
			ms, err = MethodsFromIdentifier(test.query)
		}
		if err != nil {
			t.Fatal(err)
		}
		if len(ms) != test.want {
			t.Errorf("%q: have %d methods, want %d", test.query, len(ms), test.want)
		}
	}
	if _, err := MethodsFromName(""); !georef.Is(err, georef.InvalidArgument) {
		t.Errorf("empty name: have %v, want InvalidArgument", err)
	}
}

func TestValue(t *testing.T) {
	v := LengthValue(measure.Feet(10))
	if _, err := v.Angle(); !georef.Is(err, georef.UnitMismatch) {
		t.Errorf("angle of a length: have %v, want UnitMismatch", err)
	}
	l, err := v.Length()
	if err != nil || !l.Equal(measure.Metres(10*measure.Foot.BaseMultiple)) {
		t.Errorf("have %v, %v; want 10ft", l, err)
	}
	if !v.Equal(LengthValue(measure.Metres(10*measure.Foot.BaseMultiple))) {
		t.Error("values should compare by base value")
	}
	if v.Equal(NumberValue(3.048)) {
		t.Error("values of different kinds should differ")
	}

	for _, test := range []struct {
		u    *measure.Unit
		kind ValueKind
	}{
		{measure.Metre, LengthKind},
		{measure.ArcSecond, AngleKind},
		{measure.PartsPerMillion, ScaleKind},
		{nil, NumberKind},
	} {
		v, err := ValueOf(1, test.u)
		if err != nil {
			t.Fatal(err)
		}
		if v.Kind() != test.kind {
			t.Errorf("%v: have %v, want %v", test.u, v.Kind(), test.kind)
		}
	}

	params := Parameters{FalseEasting: v}
	if _, err := params.Length(FalseNorthing); !georef.Is(err, georef.MissingParameter) {
		t.Errorf("missing: have %v, want MissingParameter", err)
	}
	if _, err := params.Scale(FalseEasting); !georef.Is(err, georef.UnitMismatch) {
		t.Errorf("mismatch: have %v, want UnitMismatch", err)
	}
	if _, err := NewParameter("TEST::1", "bad default", AngleKind, LengthValue(measure.LengthZero)); !georef.Is(err, georef.UnitMismatch) {
		t.Errorf("default of the wrong kind: have %v, want UnitMismatch", err)
	}
	if p, ok := ParameterFromName("central meridian"); !ok || p != LongitudeOfNaturalOrigin {
		t.Errorf("alias lookup: have %v", p)
	}
}
