// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package params_test

import (
	"math/big"
	"testing"

	"github.com/bytemare/sike/internal/isogeny"
	"github.com/bytemare/sike/internal/params"
	"github.com/bytemare/sike/internal/strategy"
)

const (
	twoTorsionP, twoTorsionQ     = 5633, 5461
	threeTorsionP, threeTorsionQ = 5322, 5282
)

var instantiations = []func() *isogeny.Params{params.P434, params.P503, params.P610, params.P751}

func TestParams_PrimeStructure(t *testing.T) {
	for _, get := range instantiations {
		p := get()

		t.Run(p.Name, func(t *testing.T) {
			want := new(big.Int).Lsh(big.NewInt(1), uint(p.E2))
			want.Mul(want, new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(p.E3)), nil))
			want.Sub(want, big.NewInt(1))

			if p.Field.Fp().Order().Cmp(want) != 0 {
				t.Fatal("prime must be 2^e2 * 3^e3 - 1")
			}
		})
	}
}

func TestParams_Keyspaces(t *testing.T) {
	for _, get := range instantiations {
		p := get()

		t.Run(p.Name, func(t *testing.T) {
			if want := (p.E2 + 7) / 8; p.Keyspace2 != want {
				t.Fatalf("keyspace2: want %d, got %d", want, p.Keyspace2)
			}

			order3 := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(p.E3)), nil)
			if want := (order3.BitLen() + 7) / 8; p.Keyspace3 != want {
				t.Fatalf("keyspace3: want %d, got %d", want, p.Keyspace3)
			}

			if p.SecParam%8 != 0 || p.MaskLength() != p.SecParam/8 {
				t.Fatal("mask length must be secparam/8")
			}
		})
	}
}

func TestParams_BasePoints(t *testing.T) {
	for _, get := range instantiations {
		p := get()

		t.Run(p.Name, func(t *testing.T) {
			f := p.Field

			if f.IsZero(p.XP2) || f.IsZero(p.XQ2) || f.IsZero(p.XR2) ||
				f.IsZero(p.XP3) || f.IsZero(p.XQ3) || f.IsZero(p.XR3) {
				t.Fatal("base point x-coordinates must be nonzero")
			}
		})
	}
}

// TestParams_StrategiesMatchDynamicProgram verifies the bundled strategies
// are exactly the dynamic program outputs for the submission weights.
func TestParams_StrategiesMatchDynamicProgram(t *testing.T) {
	for _, get := range instantiations {
		p := get()

		t.Run(p.Name, func(t *testing.T) {
			if want := p.E2/2 - 1; len(p.Strategy2) != want {
				t.Fatalf("strategy2 length: want %d, got %d", want, len(p.Strategy2))
			}

			if want := p.E3 - 1; len(p.Strategy3) != want {
				t.Fatalf("strategy3 length: want %d, got %d", want, len(p.Strategy3))
			}

			computed := strategy.Compute(len(p.Strategy2), twoTorsionP, twoTorsionQ)
			for i := range computed {
				if computed[i] != p.Strategy2[i] {
					t.Fatalf("strategy2 entry %d: want %d, got %d", i, computed[i], p.Strategy2[i])
				}
			}

			computed = strategy.Compute(len(p.Strategy3), threeTorsionP, threeTorsionQ)
			for i := range computed {
				if computed[i] != p.Strategy3[i] {
					t.Fatalf("strategy3 entry %d: want %d, got %d", i, computed[i], p.Strategy3[i])
				}
			}
		})
	}
}

func TestParams_Singleton(t *testing.T) {
	if params.P434() != params.P434() {
		t.Fatal("parameters must be built once")
	}
}
