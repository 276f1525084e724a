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

// SIKEp610: p = 2^305 * 3^192 - 1, NIST security level 3.
const (
	p610Prime = "0x27bf6a768819010c251e7d88cb255b2fa10c4252a9ae7bf45048ff9abb1784de8aa5ab02e6e01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	p610XP20 = "0x1b368bc6019b46cd802129209b3e65b98bc64a92bc4db2f9f3ac96b97a1b9c124df549b528f18beecb1666d27d47530435e84221272f3a97fb80527d8f8a359f8f1598d365744ca3070a5f26c"
	p610XP21 = "0x1459685dca7112d1f6030dbc98f2c9cbb41617b6ad913e6523416ccbd8ed9c7841d97df83092b9b3f2af00d62e08dad8fa743cbcccc1782be0186a3432d3c97c37ca16873bede01f0637c1aa2"

	p610XQ20 = "0x25da39ec90cdfb9bc0f772cda52cb8b5a9f478d7af8dbba0aeb3e52432822dd88c38f4e3aec0746e56149f1fe89707c77f8ba4134568629724f4a8e34b06bfe5c5e66e0867ec38b283798b8a"
	p610XQ21 = "0x2250e1959256ae502428338cb4715399551aec78d8935b2dc73fcdcfbdb1a0118a2d3ef03489ba6f637b1c7fee7e5f31340a1a537b76b5b736b4cdd284918918e8c986fc02741fb8c98f0a0ed"

	p610XR20 = "0x1b36a006d05f9e370d5078cca54a16845b2bff737c865368707c0dbbe9f5a62a9b9c79adf11932a9fa4806210e25c92db019cc146706dfbc7fa2638ecc4343c1e390426faa7f2f07fda163fb5"
	p610XR21 = "0x183c9abf2297ca69699357f58fed92553436bbeba2c3600d89522e7009d19ea5d6c18cff993aa3aa33923ed93592b0637ed0b33adf12388ae912bc4ae4749e2df3c3292994dcf37747518a992"

	p610XP30 = "0x21aaca6b98200a5b368abe1f42beae3e3a65741639bf024cfc46a2bc4050a9b6d9bbad7d873a9fffd7649274af397889e1f00639b0f1b5c218567044cce26383c57231c5e08987f8f10944c8a"
	p610XP31 = "0x0"

	p610XQ30 = "0x1101a3613f30bba66e88a42771d9ea02acfcfa6c5428d7ee19747796e4e4eb17d013874926690f618b0fa959e14535e568e33a0176906ba4e7c15780f2b81bfb87cbff19922f3008822457e11"
	p610XQ31 = "0x0"

	p610XR30 = "0xd0ad354633d15046aaa488ce2d4fa29a28eb534b76d979f7ef3e27e97fe232c0a90b685519f68eede254e6557d4527a6412a057b69d15655f63a18b7af67fc8c79f70b71246ec6c29c7179ed"
	p610XR31 = "0xffb3fec9d239e64a9877dc3ebd98ef7c2db6706addc292f8ce9fd371d616af323c7c7f8c56f333219d5722b60f99b0df82de51d12d9ab4026792eb29a4ace11d9ba13f60c406c71a4860e027"
)

// Reference traversal strategies for SIKEp610, outputs of the strategy
// dynamic program for the submission weights.
var (
	p610TwoTorsionStrategy = []int{
		66, 38, 21, 12, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 9, 5, 3,
		2, 1, 1, 1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 17, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 4, 2, 1,
		1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 32, 16, 8, 4, 2, 2, 1, 1, 1, 2, 1, 1,
		4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2,
		1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
	}

	p610ThreeTorsionStrategy = []int{
		86, 48, 27, 15, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1,
		1, 12, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 21, 12, 7, 4, 2,
		1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1,
		1, 4, 2, 1, 1, 1, 2, 1, 1, 38, 21, 12, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1, 1,
		1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 17, 9, 5, 3, 2, 1, 1, 1,
		1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
	}
)

var (
	p610Once   sync.Once
	p610Params *isogeny.Params
)

// P610 returns the SIKEp610 public parameters.
func P610() *isogeny.Params {
	p610Once.Do(func() {
		p610Params = build(&instantiation{
			name:     "SIKEp610",
			prime:    p610Prime,
			coords: [12]string{
				p610XP20, p610XP21,
				p610XQ20, p610XQ21,
				p610XR20, p610XR21,
				p610XP30, p610XP31,
				p610XQ30, p610XQ31,
				p610XR30, p610XR31,
			},
			s2:       p610TwoTorsionStrategy,
			s3:       p610ThreeTorsionStrategy,
			secParam: 192,
			e2:       305,
			e3:       192,
		})
	})

	return p610Params
}
