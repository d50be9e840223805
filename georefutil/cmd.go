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

// Package georefutil holds the command-line interface of GeoRef.
package georefutil

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/georef"
	"github.com/spatialmodel/georef/catalog"
	"github.com/spatialmodel/georef/reference"
	"github.com/spatialmodel/georef/reference/operation"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Catalog holds the reference systems known to the commands: the
// well-known systems plus those of the --catalog file.
var Catalog *catalog.Catalog

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose turns on debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "catalog",
			usage: `
              catalog specifies a TOML file declaring additional reference
              systems. Its systems can be used wherever a reference system
              identifier is expected.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "input",
			usage: `
              input specifies the GeoJSON file to transform. The default
              is standard input.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{transformCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the file the transformed GeoJSON is written
              to. The default is standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{transformCmd.Flags()},
		},
		{
			name: "source",
			usage: `
              source specifies the identifier, name or alias of the
              reference system of the input.`,
			shorthand:  "s",
			defaultVal: "EPSG::4326",
			flagsets:   []*pflag.FlagSet{transformCmd.Flags()},
		},
		{
			name: "target",
			usage: `
              target specifies the identifier, name or alias of the
              reference system of the output.`,
			shorthand:  "t",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{transformCmd.Flags()},
		},
		{
			name: "metadata",
			usage: `
              metadata specifies whether feature properties are kept. If it
              is true the output is written as GeoJSON features.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{transformCmd.Flags()},
		},
		{
			name: "parallel",
			usage: `
              parallel specifies whether the members of collections are
              transformed concurrently.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{transformCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GEOREF")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(methodsCmd)
	Root.AddCommand(systemsCmd)
	Root.AddCommand(transformCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// sets up logging and loads the reference system catalog.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("georef: problem reading configuration file: %v", err)
		}
	}
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cast.ToBool(Cfg.Get("verbose")) {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	c, err := catalog.New(catalog.Default().Systems()...)
	if err != nil {
		return err
	}
	if path := os.ExpandEnv(Cfg.GetString("catalog")); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("georef: problem opening catalog file: %v", err)
		}
		defer f.Close()
		if err := LoadCatalog(c, f); err != nil {
			return err
		}
	}
	Catalog = c
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "georef",
	Short: "Transforms coordinates between reference systems.",
	Long: `GeoRef transforms geometries between coordinate reference systems.
Use the subcommands specified below to access its functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GEOREF_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of GeoRef.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("GeoRef v%s\n", georef.Version)
	},
	DisableAutoGenTag: true,
}

var methodsCmd = &cobra.Command{
	Use:   "methods [pattern]",
	Short: "List coordinate operation methods",
	Long: `methods lists the coordinate operation methods whose name or alias contains
pattern, or all methods if no pattern is given, and whether each one is implemented.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		methods := operation.Methods
		if len(args) == 1 {
			var err error
			if methods, err = operation.MethodsFromName(args[0]); err != nil {
				return err
			}
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTIFIER\tNAME\tKIND\tIMPLEMENTED")
		for _, m := range methods {
			fmt.Fprintf(w, "%s\t%s\t%v\t%t\n", m.Identifier(), m.Name(), m.Kind(), operation.IsImplemented(m))
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

var systemsCmd = &cobra.Command{
	Use:   "systems [pattern]",
	Short: "List reference systems",
	Long: `systems lists the reference systems whose identifier, name or alias contains
pattern, or all systems if no pattern is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		systems := Catalog.Systems()
		if len(args) == 1 {
			ids, err := Catalog.FromIdentifier(args[0])
			if err != nil {
				return err
			}
			names, err := Catalog.FromName(args[0])
			if err != nil {
				return err
			}
			systems = merge(ids, names)
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTIFIER\tNAME\tTYPE")
		for _, s := range systems {
			fmt.Fprintf(w, "%s\t%s\t%v\n", s.Identifier(), s.Name(), s.Type())
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

// merge returns the systems of a followed by those of b that are not in a.
func merge(a, b []reference.ReferenceSystem) []reference.ReferenceSystem {
	seen := make(map[reference.ReferenceSystem]bool, len(a))
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		if !seen[s] {
			a = append(a, s)
			seen[s] = true
		}
	}
	return a
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform a GeoJSON geometry",
	Long: `transform reads a GeoJSON geometry, feature or feature collection in the
source reference system and writes it in the target reference system.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := Catalog.Lookup(Cfg.GetString("source"))
		if err != nil {
			return err
		}
		if Cfg.GetString("target") == "" {
			return fmt.Errorf("georef: the target reference system is not set")
		}
		target, err := Catalog.Lookup(Cfg.GetString("target"))
		if err != nil {
			return err
		}
		in, closeIn, err := openInput(os.ExpandEnv(Cfg.GetString("input")))
		if err != nil {
			return err
		}
		defer closeIn()
		out, closeOut, err := createOutput(os.ExpandEnv(Cfg.GetString("output")), cmd)
		if err != nil {
			return err
		}
		if err := Transform(in, out, source, target, cast.ToBool(Cfg.Get("metadata")), cast.ToBool(Cfg.Get("parallel"))); err != nil {
			closeOut()
			return err
		}
		return closeOut()
	},
	DisableAutoGenTag: true,
}
