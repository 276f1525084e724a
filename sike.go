// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike

import (
	"sync"

	"github.com/bytemare/sike/internal"
	"github.com/bytemare/sike/internal/isogeny"
	"github.com/bytemare/sike/internal/params"
)

// Scheme identifies a SIKE instantiation.
type Scheme byte

const (
	// P434 identifies SIKEp434, matching NIST security level 1.
	P434 Scheme = 1 + iota

	// P503 identifies SIKEp503, matching NIST security level 2.
	P503

	// P610 identifies SIKEp610, matching NIST security level 3.
	P610

	// P751 identifies SIKEp751, matching NIST security level 5.
	P751

	maxID
)

var (
	once    [maxID - 1]sync.Once
	schemes [maxID - 1]*isogeny.Params

	errInvalidID = internal.ParameterError("invalid scheme identifier")
)

// Exported error values of the package. Operational failures wrap one of
// these.
var (
	// ErrInvalidPublicKey is returned on a public key with a zero
	// x-coordinate or with bytes that do not deserialise.
	ErrInvalidPublicKey = internal.ErrInvalidPublicKey

	// ErrHashLength is returned when the mask length does not match the
	// plaintext length.
	ErrHashLength = internal.ErrHashLength

	// ErrRandom is returned when the random byte source fails.
	ErrRandom = internal.ErrRandom

	// ErrCiphertextSize is returned on ciphertext bytes of impossible length.
	ErrCiphertextSize = internal.ErrCiphertextSize
)

// Available reports whether the given Scheme is linked into the binary.
func (s Scheme) Available() bool {
	return 0 < s && s < maxID
}

// String returns the scheme identifier, e.g. "SIKEp434".
func (s Scheme) String() string {
	return s.get().Name
}

// get returns the scheme's parameters, built on first use. The construction
// is pure, lazy initialisation is observably identical to eager.
func (s Scheme) get() *isogeny.Params {
	if !s.Available() {
		panic(errInvalidID)
	}

	once[s-1].Do(func() {
		switch s {
		case P434:
			schemes[s-1] = params.P434()
		case P503:
			schemes[s-1] = params.P503()
		case P610:
			schemes[s-1] = params.P610()
		case P751:
			schemes[s-1] = params.P751()
		}
	})

	return schemes[s-1]
}
