// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package hash wraps the extendable-output functions of the SHA-3 family
// behind a small registry with arbitrary-length absorb-then-squeeze hashing.
package hash

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// Extendable identifies Extendable-Output Functions.
type Extendable byte

const (
	// SHAKE128 identifies the SHAKE128 Extendable-Output Function.
	SHAKE128 Extendable = 1 + iota

	// SHAKE256 identifies the SHAKE256 Extendable-Output Function.
	SHAKE256

	maxXOF

	// string IDs for the hash functions.
	shake128 = "SHAKE128"
	shake256 = "SHAKE256"

	// block size in bytes.
	blockSHAKE128 = 1344 / 8
	blockSHAKE256 = 1088 / 8
)

type params struct {
	newHashFunc func() sha3.ShakeHash
	name        string
	blockSize   int
	security    int
}

var registeredXOF map[Extendable]*params

// Get returns a pointer to an initialized ExtendableHash structure for the
// according XOF primitive.
func (e Extendable) Get() *ExtendableHash {
	p := registeredXOF[e]

	return &ExtendableHash{Extendable: e, xof: p.newHashFunc()}
}

// Available reports whether the given hash function is linked into the binary.
func (e Extendable) Available() bool {
	return e < maxXOF && registeredXOF[e] != nil
}

// BlockSize returns the hash's block size.
func (e Extendable) BlockSize() int {
	return registeredXOF[e].blockSize
}

// Extendable returns whether the hash function is extendable, therefore
// always true.
func (e Extendable) Extendable() bool {
	return true
}

// Hash returns the size-byte hash of the concatenated input arguments.
func (e Extendable) Hash(size int, input ...[]byte) []byte {
	return e.Get().Hash(size, input...)
}

// SecurityLevel returns the hash function's bit security level.
func (e Extendable) SecurityLevel() int {
	return registeredXOF[e].security
}

// String returns the hash function's common name.
func (e Extendable) String() string {
	return registeredXOF[e].name
}

func (e Extendable) register(f func() sha3.ShakeHash, name string, blockSize, security int) {
	registeredXOF[e] = &params{
		newHashFunc: f,
		name:        name,
		blockSize:   blockSize,
		security:    security,
	}
}

func init() {
	registeredXOF = make(map[Extendable]*params)

	SHAKE128.register(sha3.NewShake128, shake128, blockSHAKE128, 128)
	SHAKE256.register(sha3.NewShake256, shake256, blockSHAKE256, 256)
}

// ExtendableHash wraps an extendable output function.
type ExtendableHash struct {
	Extendable
	xof sha3.ShakeHash
}

// Hash absorbs the input arguments in order and squeezes size bytes.
func (h *ExtendableHash) Hash(size int, input ...[]byte) []byte {
	h.Reset()

	for _, i := range input {
		_, _ = h.xof.Write(i)
	}

	output := make([]byte, size)
	_, _ = h.xof.Read(output)

	return output
}

// Write implements io.Writer. It absorbs more data into the hash's state and
// panics if called after Read.
func (h *ExtendableHash) Write(p []byte) (n int, err error) {
	return h.xof.Write(p)
}

// Read returns size bytes from the current hash.
func (h *ExtendableHash) Read(size int) []byte {
	output := make([]byte, size)
	_, _ = h.xof.Read(output)

	return output
}

// Reset resets the hash to its initial state.
func (h *ExtendableHash) Reset() {
	h.xof.Reset()
}

var _ io.Writer = (*ExtendableHash)(nil)
