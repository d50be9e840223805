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
	"testing"

	"github.com/cockroachdb/errors"
)

func TestErrorKinds(t *testing.T) {
	for kind := range sentinels {
		t.Run(kind.String(), func(t *testing.T) {
			err := Errorf(kind, "value %d", 42)
			if have := KindOf(err); have != kind {
				t.Errorf("have kind %v, want %v", have, kind)
			}
			wrapped := errors.Wrap(err, "outer")
			if !Is(wrapped, kind) {
				t.Errorf("wrapped error lost its kind: %v", wrapped)
			}
			if err.Error() != "value 42" {
				t.Errorf("have message %q", err.Error())
			}
		})
	}
}

func TestKindOfForeignError(t *testing.T) {
	if k := KindOf(errors.New("other")); k != Unknown {
		t.Errorf("have %v, want Unknown", k)
	}
	if k := KindOf(nil); k != Unknown {
		t.Errorf("have %v, want Unknown", k)
	}
	if Is(errors.New("other"), Unknown) {
		t.Error("Unknown should never match")
	}
}
