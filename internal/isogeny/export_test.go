// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package isogeny

// Bridges for the external tests.
var (
	Ladder3pt       = (*Engine).ladder3pt
	TwoEIsoStrategy = (*Engine).twoEIsoStrategy
)
