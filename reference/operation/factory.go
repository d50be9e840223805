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
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/reference"
)

// Predefined is a ready-made operation that a Factory can return by
// identifier or name, such as a well-known projection.
type Predefined[T Operation] struct {
	Identifier string
	Name       string
	Create     func() (T, error)
}

// Factory creates operations of type T, either from its predefined
// entries or from the registered implementations of operation methods.
// Lookups by identifier or name match case-insensitively any entry that
// contains the query, and return every match that could be built.
type Factory[T Operation] struct {
	// Log receives the reasons why candidates were skipped. If it is
	// nil, the standard logger is used.
	Log logrus.FieldLogger

	predefined []Predefined[T]
	registry   *registry
}

// NewFactory returns a factory with the given predefined entries.
func NewFactory[T Operation](predefined ...Predefined[T]) *Factory[T] {
	return &Factory[T]{predefined: predefined}
}

func (f *Factory[T]) log() logrus.FieldLogger {
	if f.Log == nil {
		return logrus.StandardLogger()
	}
	return f.Log
}

func (f *Factory[T]) reg() *registry {
	if f.registry == nil {
		return defaultRegistry
	}
	return f.registry
}

// FromIdentifier returns the predefined operations whose identifier
// contains id.
func (f *Factory[T]) FromIdentifier(id string) ([]T, error) {
	if id == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "operation: the identifier is empty")
	}
	re := reference.Pattern(id)
	return f.fromPredefined(func(p Predefined[T]) bool { return re.MatchString(p.Identifier) })
}

// FromName returns the predefined operations whose name contains name.
func (f *Factory[T]) FromName(name string) ([]T, error) {
	if name == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "operation: the name is empty")
	}
	re := reference.Pattern(name)
	return f.fromPredefined(func(p Predefined[T]) bool { return re.MatchString(p.Name) })
}

func (f *Factory[T]) fromPredefined(match func(Predefined[T]) bool) ([]T, error) {
	var out []T
	for _, p := range f.predefined {
		if !match(p) {
			continue
		}
		op, err := p.Create()
		if err != nil {
			f.log().WithFields(logrus.Fields{
				"identifier": p.Identifier,
				"error":      err,
			}).Debug("operation: skipping predefined operation")
			continue
		}
		out = append(out, op)
	}
	return out, nil
}

// FromMethodIdentifier returns an operation for every implemented method
// whose identifier contains id and whose parameters are all present in
// params. Candidates that fail to build are skipped.
func (f *Factory[T]) FromMethodIdentifier(id string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) ([]T, error) {
	if id == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "operation: the method identifier is empty")
	}
	return f.fromMethods(func(m *Method) bool { return m.MatchesIdentifier(id) }, params, ellipsoid, area), nil
}

// FromMethodName returns an operation for every implemented method whose
// name or one of whose aliases contains name, and whose parameters are
// all present in params. Candidates that fail to build are skipped.
func (f *Factory[T]) FromMethodName(name string, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) ([]T, error) {
	if name == "" {
		return nil, georef.Errorf(georef.InvalidArgument, "operation: the method name is empty")
	}
	return f.fromMethods(func(m *Method) bool { return m.MatchesName(name) }, params, ellipsoid, area), nil
}

func (f *Factory[T]) fromMethods(match func(*Method) bool, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) []T {
	var out []T
	for _, m := range f.reg().registered() {
		if !match(m) || !params.Satisfies(m) {
			continue
		}
		op, ok, err := f.create(m, params, ellipsoid, area)
		if err != nil {
			f.log().WithFields(logrus.Fields{
				"method": m.Identifier(),
				"error":  err,
			}).Debug("operation: skipping candidate implementation")
			continue
		}
		if ok {
			out = append(out, op)
		}
	}
	return out
}

// FromMethod returns an operation implementing method. It returns the
// zero T and no error if no implementation of type T is registered for
// method.
func (f *Factory[T]) FromMethod(method *Method, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (T, error) {
	var zero T
	if method == nil {
		return zero, georef.Errorf(georef.InvalidArgument, "operation: the method is nil")
	}
	op, _, err := f.create(method, params, ellipsoid, area)
	if err != nil {
		return zero, err
	}
	return op, nil
}

// create builds an implementation of m named after m. ok is false if
// there is no implementation or it is not a T.
func (f *Factory[T]) create(m *Method, params Parameters, ellipsoid *reference.Ellipsoid, area *reference.AreaOfUse) (op T, ok bool, err error) {
	ctor, found := f.reg().lookup(m)
	if !found {
		return op, false, nil
	}
	o, err := ctor(m.Identifier(), m.Name(), params, ellipsoid, area)
	if err != nil {
		return op, false, err
	}
	op, ok = o.(T)
	return op, ok, nil
}
