// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package strategy_test

import (
	"testing"

	"github.com/bytemare/sike/internal/strategy"
)

func TestCompute_P434Head(t *testing.T) {
	s := strategy.Compute(107, 5633, 5461)

	if len(s) != 107 {
		t.Fatalf("want 107 entries, got %d", len(s))
	}

	head := []int{48, 28, 16, 8, 4, 2, 1, 1, 2, 1}
	for i, want := range head {
		if s[i] != want {
			t.Fatalf("entry %d: want %d, got %d", i, want, s[i])
		}
	}
}

func TestCompute_Sizes(t *testing.T) {
	cases := []struct {
		name string
		n    int
	}{
		{"p434 two-torsion", 107},
		{"p434 three-torsion", 136},
		{"p503 two-torsion", 124},
		{"p503 three-torsion", 158},
		{"p610 two-torsion", 151},
		{"p610 three-torsion", 191},
		{"p751 two-torsion", 185},
		{"p751 three-torsion", 238},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := strategy.Compute(c.n, 5633, 5461)
			if len(s) != c.n {
				t.Fatalf("want %d entries, got %d", c.n, len(s))
			}

			for i, v := range s {
				if v < 1 || v >= c.n {
					t.Fatalf("entry %d out of range: %d", i, v)
				}
			}
		})
	}
}

func TestCompute_Degenerate(t *testing.T) {
	if s := strategy.Compute(1, 1, 1); len(s) != 1 || s[0] != 1 {
		t.Fatalf("size 1 must be [1], got %v", s)
	}

	// with free isogeny evaluations the tree degenerates into a comb
	s := strategy.Compute(8, 1, 0)
	for i, v := range s {
		if v != 1 {
			t.Fatalf("entry %d: want 1, got %d", i, v)
		}
	}
}
