/*
 * config.go, part of gocrystal.
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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	crystal "github.com/rmera/gocrystal"
)

//Config contains the parameters for a gocrystal run. It can be read
//from a TOML file.
type Config struct {
	Element         string   `toml:"element"`
	Dims            []int    `toml:"dims"`
	LatticeConstant float64  `toml:"lattice_constant"`
	Structures      []string `toml:"structures"`
	Tolerance       float64  `toml:"tolerance"` //negative means the default of each structure
	Primitive       bool     `toml:"primitive"`
	Verbose         bool     `toml:"verbose"`
}

//DefaultConfig returns the default parameters: silicon
//in 2x2x2 cells with a lattice constant of 3, in all three structures.
func DefaultConfig() *Config {
	return &Config{
		Element:         "Si",
		Dims:            []int{2, 2, 2},
		LatticeConstant: 3,
		Structures:      []string{"sc", "bcc", "fcc"},
		Tolerance:       -1,
	}
}

//LoadFile reads the TOML file path and replaces the parameters of C
//with the ones present in the file. The others are left as they are.
func (C *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	if err := dec.Decode(C); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if len(C.Dims) != 3 {
		return fmt.Errorf("config %s: length of dims isn't equal to 3 but %d", path, len(C.Dims))
	}
	return nil
}

//Kinds returns the crystal structures requested.
func (C *Config) Kinds() ([]crystal.Kind, error) {
	ret := make([]crystal.Kind, 0, len(C.Structures))
	for _, s := range C.Structures {
		k, err := crystal.ParseKind(s)
		if err != nil {
			return nil, err
		}
		ret = append(ret, k)
	}
	return ret, nil
}

//Dims3 returns the dimensions as an array.
func (C *Config) Dims3() ([3]int, error) {
	var d [3]int
	if len(C.Dims) != 3 {
		return d, fmt.Errorf("3 dimensions are needed, got %d", len(C.Dims))
	}
	copy(d[:], C.Dims)
	return d, nil
}

//Options returns the crystal building options for C.
func (C *Config) Options() *crystal.Options {
	O := crystal.DefaultOptions()
	O.Tolerance(C.Tolerance)
	O.Verbose(C.Verbose)
	return O
}

//parseDims parses a comma-separated list of integers, like "2,2,2".
func parseDims(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	ret := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", f, err)
		}
		ret = append(ret, n)
	}
	return ret, nil
}

func parseList(s string) []string {
	fields := strings.Split(s, ",")
	ret := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			ret = append(ret, f)
		}
	}
	return ret
}
