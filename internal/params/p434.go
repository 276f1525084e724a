// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package params

import (
	"sync"

	"github.com/bytemare/sike/internal/isogeny"
)

// SIKEp434: p = 2^216 * 3^137 - 1, NIST security level 1.
const (
	p434Prime = "0x2341f271773446cfc5fd681c520567bc65c783158aea3fdc1767ae2ffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	p434XP20 = "0x3ccfc5e1f050030363e6920a0f7a4c6c71e63de63a0e6475af621995705f7c84500cb2bb61e950e19eab8661d25c4a50ed279646cb48"
	p434XP21 = "0x1ad1c1cae7840edda6d8a924520f60e573d3b9dfac6d189941cb22326d284a8816cc4249410fe80d68047d823c97d705246f869e3ea50"

	p434XQ20 = "0xc7461738340efcf09ce388f666eb38f7f3afd42dc0b664d9f461f31aa2edc6b4ab71bd42f4d7c058e13f64b237ef7ddd2abc0deb0c6c"
	p434XQ21 = "0x25de37157f50d75d320dd0682ab4a67e471586fbc2d31aa32e6957fa2b2614c4cd40a1e27283eaaf4272ae517847197432e2d61c85f5"

	p434XR20 = "0x9db40748b90f6efea827b3a5bcf9eb87a557508177096192ea57fe83625d0a1e73ccd0cfc938ef0d6038673e23d98bd385d9bd0171ae"
	p434XR21 = "0x206a8524488eb0e692a1bbd4ddde523ad8a62d060f14b6d87d515426a88bc50c9fffbb6758d57f37ec7ba4528512761c7e1d1655a3345"

	p434XP30 = "0x20ed981a41524bcf62586f4508597c951b8dbdd4ee7b088bb74f46f18460ea89011d3d362b3d524591295bf5a45fdca2db99ced1b4629"
	p434XP31 = "0x0"

	p434XQ30 = "0xa45d41fe6a7ff2d7e6130cc81f789f7da541eade07704afa0c4d07b18273a69703c638e549d646a515b617ce99e06dd03675495bd03"
	p434XQ31 = "0x0"

	p434XR30 = "0x1d8a1b1693532c36f295669b1ae0411a05886c2cfa51e5978be7dea8dcd985c3d0413330029d9c12cb878566c8f1bbc54e7692a602310"
	p434XR31 = "0x7a23dec38ee173a2539f15c818ae61b6d290283f1c0f0f8e667fc7816a56b60878dbc023a58c7c8c6eed11385eae952998bb0f73a87a"
)

// Reference traversal strategies for SIKEp434, outputs of the strategy
// dynamic program for the submission weights.
var (
	p434TwoTorsionStrategy = []int{
		48, 28, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
		1, 12, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 21, 12, 7, 4,
		2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1,
		1, 1, 4, 2, 1, 1, 1, 2, 1, 1,
	}

	p434ThreeTorsionStrategy = []int{
		65, 33, 17, 9, 5, 4, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 1, 2, 1,
		1, 4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1,
		4, 2, 1, 1, 2, 1, 1, 32, 16, 8, 4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1,
		4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2,
		1, 1, 2, 1, 1,
	}
)

var (
	p434Once   sync.Once
	p434Params *isogeny.Params
)

// P434 returns the SIKEp434 public parameters.
func P434() *isogeny.Params {
	p434Once.Do(func() {
		p434Params = build(&instantiation{
			name:     "SIKEp434",
			prime:    p434Prime,
			coords: [12]string{
				p434XP20, p434XP21,
				p434XQ20, p434XQ21,
				p434XR20, p434XR21,
				p434XP30, p434XP31,
				p434XQ30, p434XQ31,
				p434XR30, p434XR31,
			},
			s2:       p434TwoTorsionStrategy,
			s3:       p434ThreeTorsionStrategy,
			secParam: 128,
			e2:       216,
			e3:       137,
		})
	})

	return p434Params
}
