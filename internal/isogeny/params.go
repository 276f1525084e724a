// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package isogeny

import (
	"github.com/bytemare/sike/internal/field"
)

// Params holds the public parameters of one SIKE instantiation. A Params
// value is immutable after construction and may be shared freely.
type Params struct {
	// Field is the quadratic extension all coordinates live in.
	Field *field.Extension

	// Name is the instantiation identifier, e.g. "SIKEp434".
	Name string

	// SecParam is the security parameter in bits.
	SecParam int

	// Keyspace2 and Keyspace3 are the secret key lengths in bytes for the
	// 2-torsion and 3-torsion.
	Keyspace2, Keyspace3 int

	// E2 and E3 are the torsion exponents of p = 2^e2 * 3^e3 - 1.
	E2, E3 int

	// Base point x-coordinates of the 2-torsion basis (P2, Q2, Q2-P2) and the
	// 3-torsion basis (P3, Q3, Q3-P3) on the starting curve.
	XP2, XQ2, XR2 field.Element
	XP3, XQ3, XR3 field.Element

	// Strategy2 and Strategy3 are the optional traversal strategies of the
	// 2^e2 and 3^e3 walks. A nil strategy selects the naive walk.
	Strategy2, Strategy3 []int
}

// MaskLength returns the byte length of messages, masks and derived keys.
func (p *Params) MaskLength() int {
	return p.SecParam / 8
}
