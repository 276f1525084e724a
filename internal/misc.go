// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import "io"

// Concatenate takes the variadic array of input and returns a concatenation of it.
func Concatenate(length int, input ...[]byte) []byte {
	if len(input) == 1 {
		return input[0]
	}

	buf := make([]byte, 0, length)
	for _, in := range input {
		buf = append(buf, in...)
	}

	return buf
}

// RandomBytes fills a fresh buffer of length bytes from src.
func RandomBytes(src io.Reader, length int) ([]byte, error) {
	r := make([]byte, length)
	if _, err := io.ReadFull(src, r); err != nil {
		return nil, ErrRandom
	}

	return r, nil
}

// Wipe overwrites the buffer with zero bytes.
func Wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
