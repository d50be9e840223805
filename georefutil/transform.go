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
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/georef/geometry"
	"github.com/spatialmodel/georef/reference"
	"github.com/spatialmodel/georef/transform"
	"github.com/spf13/cobra"
)

// Transform reads GeoJSON in the source reference system from r and
// writes it in the target reference system to w. If metadata is true,
// feature properties are kept and the output is written as features.
func Transform(r io.Reader, w io.Writer, source, target reference.ReferenceSystem, metadata, parallel bool) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	g, err := geometry.DecodeGeoJSON(geometry.NewFactory(source), data)
	if err != nil {
		return err
	}
	tr, err := transform.New(g, transform.Parameters{
		TargetReferenceSystem: target,
		MetadataPreservation:  metadata,
		Parallel:              parallel,
	})
	if err != nil {
		return err
	}
	out, err := tr.Execute()
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"geometry": out.GeometryType(),
		"source":   source.Identifier(),
		"target":   target.Identifier(),
	}).Debug("georef: transformed")
	var b []byte
	if metadata {
		b, err = geometry.EncodeFeature(out)
	} else {
		b, err = geometry.EncodeGeoJSON(out)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// openInput opens the named file, or standard input if name is empty.
func openInput(name string) (io.Reader, func() error, error) {
	if name == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("georef: problem opening input: %v", err)
	}
	return f, f.Close, nil
}

// createOutput creates the named file, or returns the output of cmd if
// name is empty.
func createOutput(name string, cmd *cobra.Command) (io.Writer, func() error, error) {
	if name == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	if _, err := os.Stat(filepath.Dir(name)); err != nil {
		return nil, nil, fmt.Errorf("georef: the output directory doesn't exist: %v", err)
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, fmt.Errorf("georef: problem creating output: %v", err)
	}
	return f, f.Close, nil
}
