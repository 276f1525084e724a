// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package params bundles the public parameters of the four SIKE
// instantiations. Each parameter set is parsed from its hex literals once,
// on first use.
package params

import (
	"math/big"

	"github.com/bytemare/sike/internal/field"
	"github.com/bytemare/sike/internal/isogeny"
)

// instantiation gathers the literal constants of one parameter set.
type instantiation struct {
	name     string
	prime    string
	coords   [12]string // xP2, xQ2, xR2, xP3, xQ3, xR3, two components each
	s2, s3   []int
	secParam int
	e2, e3   int
}

func build(i *instantiation) *isogeny.Params {
	prime := field.String2Int(i.prime)
	ext := field.NewExtension(&prime)

	order3 := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(i.e3)), nil)

	return &isogeny.Params{
		Field:     ext,
		Name:      i.name,
		SecParam:  i.secParam,
		Keyspace2: (i.e2 + 7) / 8,
		Keyspace3: (order3.BitLen() + 7) / 8,
		E2:        i.e2,
		E3:        i.e3,
		XP2:       ext.FromStrings(i.coords[0], i.coords[1]),
		XQ2:       ext.FromStrings(i.coords[2], i.coords[3]),
		XR2:       ext.FromStrings(i.coords[4], i.coords[5]),
		XP3:       ext.FromStrings(i.coords[6], i.coords[7]),
		XQ3:       ext.FromStrings(i.coords[8], i.coords[9]),
		XR3:       ext.FromStrings(i.coords[10], i.coords[11]),
		Strategy2: i.s2,
		Strategy3: i.s3,
	}
}
