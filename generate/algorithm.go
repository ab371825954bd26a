// SPDX-License-Identifier: MIT
// Package: labyrinth/generate
//
// algorithm.go — algorithm selection by value or name.

package generate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// Algorithm selects a generator for Generate.
type Algorithm uint8

const (
	// AlgorithmBacktracker selects Backtracker (randomized depth-first search).
	AlgorithmBacktracker Algorithm = iota + 1
	// AlgorithmPrim selects Prim (randomized frontier growth).
	AlgorithmPrim
	// AlgorithmWilson selects Wilson (loop-erased random walks).
	AlgorithmWilson
)

// Method names used as error prefixes.
const (
	methodBacktracker = "Backtracker"
	methodPrim        = "Prim"
	methodWilson      = "Wilson"
	methodGenerate    = "Generate"
)

// Algorithms lists every supported algorithm in a fixed order.
var Algorithms = []Algorithm{AlgorithmBacktracker, AlgorithmPrim, AlgorithmWilson}

// String returns the canonical command-line name: "dfs", "prim" or "wilson".
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBacktracker:
		return "dfs"
	case AlgorithmPrim:
		return "prim"
	case AlgorithmWilson:
		return "wilson"
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm. "dfs" and
// "backtracker" both select AlgorithmBacktracker.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "backtracker":
		return AlgorithmBacktracker, nil
	case "prim":
		return AlgorithmPrim, nil
	case "wilson":
		return AlgorithmWilson, nil
	}
	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// MarshalText encodes a as its canonical name.
func (a Algorithm) MarshalText() ([]byte, error) {
	switch a {
	case AlgorithmBacktracker, AlgorithmPrim, AlgorithmWilson:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("MarshalText(%d): %w", uint8(a), ErrUnknownAlgorithm)
}

// UnmarshalText decodes a name accepted by ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Generate runs the generator selected by algo. An unknown algo is reported
// with ErrUnknownAlgorithm before the dimensions are looked at.
func Generate(algo Algorithm, width, height int, opts ...Option) (*maze.Grid, error) {
	switch algo {
	case AlgorithmBacktracker:
		return Backtracker(width, height, opts...)
	case AlgorithmPrim:
		return Prim(width, height, opts...)
	case AlgorithmWilson:
		return Wilson(width, height, opts...)
	}
	return nil, fmt.Errorf("%s: %s: %w", methodGenerate, algo, ErrUnknownAlgorithm)
}
