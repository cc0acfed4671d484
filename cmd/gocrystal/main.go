/*
 * main.go, part of gocrystal.
 *
 * Copyright 2026 The gocrystal authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//gocrystal builds simple, body centred and face centred cubic crystals and
//reports their nearest neighbors under periodic boundary conditions.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	crystal "github.com/rmera/gocrystal"
)

func main() {
	element := flag.String("element", "Si", "Chemical symbol of the atoms in the crystal")
	dims := flag.String("dims", "2,2,2", "Number of unit cells along x, y and z, comma-separated")
	a := flag.Float64("a", 3, "Lattice constant, in A")
	kinds := flag.String("kinds", "sc,bcc,fcc", "Comma-separated structures to build (sc, bcc, fcc)")
	tolerance := flag.Float64("tolerance", -1, "Added to the nearest-neighbor distance to get the cutoff. Negative uses the default for each structure")
	primitive := flag.Bool("primitive", false, "Also report the reciprocal vectors and volumes of the primitive cells")
	cfgFile := flag.String("config", "", "TOML file with the parameters. Flags given explicitly override it")
	verbose := flag.Bool("v", false, "Log the construction of each crystal")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("gocrystal: ")

	conf := DefaultConfig()
	if *cfgFile != "" {
		if err := conf.LoadFile(*cfgFile); err != nil {
			log.Fatal(err)
		}
	}
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "element":
			conf.Element = *element
		case "dims":
			var d []int
			if d, err = parseDims(*dims); err == nil {
				conf.Dims = d
			}
		case "a":
			conf.LatticeConstant = *a
		case "kinds":
			conf.Structures = parseList(*kinds)
		case "tolerance":
			conf.Tolerance = *tolerance
		case "primitive":
			conf.Primitive = *primitive
		case "v":
			conf.Verbose = *verbose
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := run(conf, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

//run builds all the crystals in conf, each in its own goroutine, and
//writes their summaries to w in the order they were requested.
func run(conf *Config, w io.Writer) error {
	kinds, err := conf.Kinds()
	if err != nil {
		return err
	}
	dims, err := conf.Dims3()
	if err != nil {
		return err
	}
	crystals := make([]*crystal.Crystal, len(kinds))
	errs := make([]error, len(kinds))
	var wg sync.WaitGroup
	for i, k := range kinds {
		wg.Add(1)
		go func(i int, k crystal.Kind) {
			defer wg.Done()
			crystals[i], errs[i] = crystal.New(conf.Element, k, dims, conf.LatticeConstant, conf.Options())
		}(i, k)
	}
	wg.Wait()
	for i, c := range crystals {
		if errs[i] != nil {
			return fmt.Errorf("building %s: %w", kinds[i], errs[i])
		}
		fmt.Fprintf(w, "%s\n\n", crystal.Summarize(c))
	}
	if !conf.Primitive {
		return nil
	}
	for _, k := range kinds {
		pv, err := crystal.PrimitiveVectors(k, conf.LatticeConstant)
		if err != nil {
			return err
		}
		rv, vol, err := crystal.Reciprocal(pv)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "For a primitive %s cell with a = %.4f, the reciprocal vectors are %v and the volume is %.4f\n\n", k, conf.LatticeConstant, rv, vol)
	}
	return nil
}
