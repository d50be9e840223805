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

package georef

import (
	"github.com/cockroachdb/errors"
)

// Kind classifies the errors returned by the packages of this module.
type Kind int

// These are the kinds of errors that can occur.
const (
	// Unknown is the kind of errors that were not produced by this module.
	Unknown Kind = iota

	// InvalidArgument indicates that a required input was nil or empty.
	InvalidArgument

	// InvalidUnit indicates that a unit of measurement has the wrong
	// quantity kind for the requested operation.
	InvalidUnit

	// MissingParameter indicates that a parameter required by an operation
	// method is absent from the supplied parameter values.
	MissingParameter

	// UnitMismatch indicates that a parameter value has a different
	// measurement kind than the one declared by the operation method.
	UnitMismatch

	// UnsupportedTransformation indicates that there is no registered
	// path between two reference systems.
	UnsupportedTransformation

	// UnsupportedGeometryType indicates a geometry variant that cannot be
	// transformed.
	UnsupportedGeometryType

	// ComputationFault indicates a numeric transform that produced a
	// non-finite or domain-invalid result.
	ComputationFault
)

// Sentinel errors, one for each Kind. Errors created by Errorf are marked
// with the sentinel of their kind, so that errors.Is can be used to test
// for a kind through any number of wrapping layers.
var (
	ErrInvalidArgument           = errors.New("invalid argument")
	ErrInvalidUnit               = errors.New("invalid unit of measurement")
	ErrMissingParameter          = errors.New("missing parameter")
	ErrUnitMismatch              = errors.New("unit mismatch")
	ErrUnsupportedTransformation = errors.New("unsupported transformation")
	ErrUnsupportedGeometryType   = errors.New("unsupported geometry type")
	ErrComputationFault          = errors.New("computation fault")
)

var sentinels = map[Kind]error{
	InvalidArgument:           ErrInvalidArgument,
	InvalidUnit:               ErrInvalidUnit,
	MissingParameter:          ErrMissingParameter,
	UnitMismatch:              ErrUnitMismatch,
	UnsupportedTransformation: ErrUnsupportedTransformation,
	UnsupportedGeometryType:   ErrUnsupportedGeometryType,
	ComputationFault:          ErrComputationFault,
}

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidUnit:
		return "InvalidUnit"
	case MissingParameter:
		return "MissingParameter"
	case UnitMismatch:
		return "UnitMismatch"
	case UnsupportedTransformation:
		return "UnsupportedTransformation"
	case UnsupportedGeometryType:
		return "UnsupportedGeometryType"
	case ComputationFault:
		return "ComputationFault"
	default:
		return "Unknown"
	}
}

// Errorf creates a new error of the given kind.
func Errorf(kind Kind, format string, args ...interface{}) error {
	err := errors.NewWithDepthf(1, format, args...)
	if s, ok := sentinels[kind]; ok {
		return errors.Mark(err, s)
	}
	return err
}

// KindOf returns the kind of err, or Unknown if err was not created
// by Errorf.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	for k, s := range sentinels {
		if errors.Is(err, s) {
			return k
		}
	}
	return Unknown
}

// Is reports whether err is of the given kind.
func Is(err error, kind Kind) bool {
	s, ok := sentinels[kind]
	return ok && errors.Is(err, s)
}
