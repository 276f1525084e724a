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

// SIKEp751: p = 2^372 * 3^239 - 1, NIST security level 5.
const (
	p751Prime = "0x6fe5d541f71c0e12909f97badc668562b5045cb25748084e9867d6ebe876da959b1a13f7cc76e3ec968549f878a8eeafffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	p751XP20 = "0x4514f8cc94b140f24874f8b87281fa6004ca5b3637c68ac0c0bdb29838051f385fbbcc300bbb24bfbbf6710d7dc8b29acb81e429bd1bd5629ad0ecad7c90622f6bb801d0337ee6bc78a7f12fdcb09decfae8bfd643c89c3bac1d87f8b6fa"
	p751XP21 = "0x158abf500b5914b3a96ced5fdb37d6dd925f2d6e4f7fea3cc16e1085754077737ea6f8cc74938d971da289dcf2435bcac1897d2627693f9bb167dc01be34ac494c60b8a0f65a28d7a31ea0d54640653a8099ce5a84e4f0168d818af02041"

	p751XQ20 = "0x1723d2bfa01a78bf4e39e3a333f8a7e0b415a17f208d3419e7591d59d8abdb7ee6d2b2dfcb21ac29a40f837983c0f057fd041ad93237704f1597d87f074f682961a38b5489d1019924f8a0ef5e4f1b2e64a7ba536e219f5090f76276290e"
	p751XQ21 = "0x2569d7eafb6c60b244ef49e05b5e23f73c4f44169a7e02405e90ceb680cb0756054ac0e3dce95e2950334262cc973235c2f87d89500bcd465b078bd0debdf322a2f86aedfdcfee65c09377efba0c5384dd837bedb710209fbc8ddb8c35c7"

	p751XR20 = "0x6066e07f3c0d964e8bc963519fac8397df477aea9a067f3be343bc53c883af29ccf008e5a30719a29357a8c33eb3600cd078af1c40ed5792763a4d213ebde44cc623195c387e0201e7231c529a15af5ab743ee9e7c9c37af3051167525bb"
	p751XR21 = "0x50e30c2c06494249bc4a144eb5f31212bd05a2af0cb3064c322fc3604fc5f5fe3a08fb3a02b05a48557e15c992254ffc8910b72b8e1328b4893cdcfbfc003878881ce390d909e39f83c5006e0ae979587775443483d13c65b107fada5165"

	p751XP30 = "0x6b3fde36f3c3d47de440d19118ed6d81f253dc91048e22892f984e960e26598c2c1193279777865c160b34b21a87a5945233c0cfd71017b721a37143ebd0be783a98a329ac1bcb0a54d1b37fb2351da39a62f6f39bdb183898fa0ca82222"
	p751XP31 = "0x0"

	p751XQ30 = "0x6b59f8e84ba818cce17fbd31b92388e28985c96a2ec8a7c60e0b5d6a3ffeb3d3076f83de726d6e014990d473f1c51c85fafef6f059aeaf7c454b9cd1acfdb53775aad59521940e3a2c389282c3ad76c43a38380a5324eba203b5493e73d6"
	p751XQ31 = "0x0"

	p751XR30 = "0x506f69280b01f267c12e1c3b3c38c524e78278626156ec294bdcd58deef0a7d2da0fedeb4696f19502ac29c2d7233f21aec8b21bf713b0661234fa972acbc7b99929f2ed0dea4e4b98a61706c43ab2147cfc523f2c36cb01461d73b74b62"
	p751XR31 = "0x3e4c35bf3944d44d2a3b779f8a37cfb4995dba266e3e55b581bf52e36e3b4129a9096f195ce24dbd829e401c4620e16f1669fd32e4e3096c2e9d833a62bbfb847b977ecee3b293832798b15ee09c6fa0fbfa6592808748912e7d0c33172a"
)

// Reference traversal strategies for SIKEp751, outputs of the strategy
// dynamic program for the submission weights.
var (
	p751TwoTorsionStrategy = []int{
		80, 48, 27, 15, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1,
		1, 12, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 21, 12, 7, 4, 2,
		1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1,
		1, 4, 2, 1, 1, 1, 2, 1, 1, 33, 20, 12, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1,
		1, 2, 1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 1, 2, 1,
		1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
	}

	p751ThreeTorsionStrategy = []int{
		112, 63, 32, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2,
		1, 1, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
		31, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
		15, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 49, 31,
		16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 15, 8,
		4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 21, 12, 8, 4, 2,
		1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1,
		1, 1, 4, 2, 1, 1, 1, 2, 1, 1,
	}
)

var (
	p751Once   sync.Once
	p751Params *isogeny.Params
)

// P751 returns the SIKEp751 public parameters.
func P751() *isogeny.Params {
	p751Once.Do(func() {
		p751Params = build(&instantiation{
			name:     "SIKEp751",
			prime:    p751Prime,
			coords: [12]string{
				p751XP20, p751XP21,
				p751XQ20, p751XQ21,
				p751XR20, p751XR21,
				p751XP30, p751XP31,
				p751XQ30, p751XQ31,
				p751XR30, p751XR31,
			},
			s2:       p751TwoTorsionStrategy,
			s3:       p751ThreeTorsionStrategy,
			secParam: 256,
			e2:       372,
			e3:       239,
		})
	})

	return p751Params
}
