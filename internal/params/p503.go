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

// SIKEp503: p = 2^250 * 3^159 - 1, NIST security level 2.
const (
	p503Prime = "0x4066f541811e1e6045c6bdda77a4d01b9bf6c87b7e7daf13085bda2211e7a0abffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	p503XP20 = "0x2ed31a03825fa14bc1d92c503c061d843223e611a92d7c5fbec0f2c915ee7eee73374df6a1161ea00cdcb786155e21fd38220c3772ce670bc68274b851678"
	p503XP21 = "0x1ee4e4e9448fbbab4b5baef280a99b7bf86a1ce05d55bd603c3ba9d7c08fd8de7968b49a78851ffbc6d0a17cb2fa1b57f3babef87720dd9a489b5581f915d2"

	p503XQ20 = "0x325cf6a8e2c6183a8b9932198039a7f965ba8587b67925d08d809dbf9a69de1b621f7f134fa2dab82ff5a2615f92cc71419fffaaf86a290d604ab167616461"
	p503XQ21 = "0x3e7b0494c8e60a8b72308ae09ed34845b34ea0911e356b77a11872cf7feeff745d98d0624097bc1ad7cd2adf7ffc2c1aa5ba3c6684b964fa555a0715e57db1"

	p503XR20 = "0x2f65e800dfb8a171d45959df310d6aa3c26c80c830be5f757cb75740fbfa7ea74b782bfe4cb257f6dfe1ecd049bab397f0c4c8ee64bfc18b5f1b5261e51c28"
	p503XR21 = "0x2dcdf612c49b043c32b65adcedfba73e10376e7018493fbbd22619d4719c1745adeee12081fefdc9c0bf0599d0f4031c717dfbc8e9f996b8bd48492a22703a"

	p503XP30 = "0x14883cfb688d1b7796e6b82ce62aa312c5c602afe5bad5a9d4417bc6625dee6dfa90bb2b3d500b317cece0798d3a56a1854fa2e382586539fc39b5c33de2ac"
	p503XP31 = "0x0"

	p503XQ30 = "0x1c61138f10843ca32a97f8bc94c9449943180fad63797fec4c544e49cd881ade23082ff1c4c25b1b6d9986b69664b1ed41ad5ba8d0c743999a384e36da314f"
	p503XQ31 = "0x0"

	p503XR30 = "0x3d5a2f214960f56c9b3df56510647b066a4a9948bb8c65394d0d8b37ade2f860faf389f88f98a7637214d378ea28da6408424444e8bf63eff6412b3ab187b8"
	p503XR31 = "0x95d849ed31949f06850b0724adf04aaa72687fb6bca53c8130a7c1cfd319ace338008189b88d307adb3f159a840b1cd6bbd69e346f5cfcdf0c4e797247ac5"
)

// Reference traversal strategies for SIKEp503, outputs of the strategy
// dynamic program for the submission weights.
var (
	p503TwoTorsionStrategy = []int{
		61, 32, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
		1, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 29,
		16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 13, 8,
		4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 5, 4, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1,
	}

	p503ThreeTorsionStrategy = []int{
		71, 38, 21, 13, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 5, 4, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1, 9,
		5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 17, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 4,
		2, 1, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 33, 17, 9, 5, 3, 2, 1, 1, 1, 1,
		2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1,
		1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
	}
)

var (
	p503Once   sync.Once
	p503Params *isogeny.Params
)

// P503 returns the SIKEp503 public parameters.
func P503() *isogeny.Params {
	p503Once.Do(func() {
		p503Params = build(&instantiation{
			name:     "SIKEp503",
			prime:    p503Prime,
			coords: [12]string{
				p503XP20, p503XP21,
				p503XQ20, p503XQ21,
				p503XR20, p503XR21,
				p503XP30, p503XP31,
				p503XQ30, p503XQ31,
				p503XR30, p503XR31,
			},
			s2:       p503TwoTorsionStrategy,
			s3:       p503ThreeTorsionStrategy,
			secParam: 192,
			e2:       250,
			e3:       159,
		})
	})

	return p503Params
}
