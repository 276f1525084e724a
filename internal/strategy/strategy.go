// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package strategy computes optimal traversal strategies for isogeny walks
// with the De Feo-Jao-Plut dynamic program.
package strategy

// Compute returns the minimum-cost balanced traversal strategy of size n for
// a scalar multiplication step of cost p and an isogeny evaluation of cost q.
// Cost ties resolve to the smaller left-branch pivot.
func Compute(n int, p, q uint64) []int {
	s := make([][]int, 1, n+1)
	s[0] = []int{}

	c := make([]uint64, 2, n+2)

	for i := 2; i <= n+1; i++ {
		ui := uint64(i)

		best := uint64(0)
		pivot := 0

		for b := 1; b < i; b++ {
			cost := c[i-b] + c[b] + uint64(b)*p + (ui-uint64(b))*q
			if pivot == 0 || cost < best {
				best = cost
				pivot = b
			}
		}

		next := make([]int, 0, i-1)
		next = append(next, pivot)
		next = append(next, s[i-pivot-1]...)
		next = append(next, s[pivot-1]...)

		s = append(s, next)
		c = append(c, best)
	}

	return s[len(s)-1]
}
