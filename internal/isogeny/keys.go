// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package isogeny

import (
	"github.com/bytemare/sike/internal"
	"github.com/bytemare/sike/internal/field"
)

// SecretKey is an opaque byte string driving an isogeny walk. The bytes are
// interpreted as a little-endian integer when used as a ladder scalar.
type SecretKey struct {
	key []byte
}

// NewSecretKey returns a secret key over a copy of the given bytes.
func NewSecretKey(key []byte) *SecretKey {
	k := make([]byte, len(key))
	copy(k, key)

	return &SecretKey{key: k}
}

// Bytes returns a copy of the raw key bytes.
func (k *SecretKey) Bytes() []byte {
	out := make([]byte, len(k.key))
	copy(out, k.key)

	return out
}

// Bits returns the scalar bit sequence in most-significant-bit-first order
// after byte reversal, i.e. the big-endian bit expansion of the key bytes
// read as a little-endian integer. The ladder consumes it back to front.
func (k *SecretKey) Bits() []uint8 {
	bits := make([]uint8, 0, 8*len(k.key))

	for i := len(k.key) - 1; i >= 0; i-- {
		for j := 7; j >= 0; j-- {
			bits = append(bits, (k.key[i]>>uint(j))&1)
		}
	}

	return bits
}

// Wipe overwrites the key material.
func (k *SecretKey) Wipe() {
	internal.Wipe(k.key)
}

// PublicKey is the triple of x-coordinates (phi(P), phi(Q), phi(Q-P)) of the
// opposite-torsion basis under the secret isogeny phi.
type PublicKey struct {
	f          *field.Extension
	x1, x2, x3 field.Element
}

// NewPublicKey returns the public key over the three given x-coordinates.
func NewPublicKey(f *field.Extension, x1, x2, x3 field.Element) *PublicKey {
	return &PublicKey{f: f, x1: x1, x2: x2, x3: x3}
}

// DecodePublicKey rebuilds a public key from the concatenation of its three
// serialised elements.
func DecodePublicKey(f *field.Extension, data []byte) (*PublicKey, error) {
	n := f.ElementLength()
	if len(data) != 3*n {
		return nil, internal.ErrInvalidPublicKey
	}

	return &PublicKey{
		f:  f,
		x1: f.SetBytes(data[:n]),
		x2: f.SetBytes(data[n : 2*n]),
		x3: f.SetBytes(data[2*n:]),
	}, nil
}

// Bytes returns the three serialised elements in order x1, x2, x3.
func (pk *PublicKey) Bytes() []byte {
	n := pk.f.ElementLength()

	return internal.Concatenate(3*n, pk.f.Bytes(pk.x1), pk.f.Bytes(pk.x2), pk.f.Bytes(pk.x3))
}

// Equal returns whether both public keys hold the same coordinates.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.f.AreEqual(pk.x1, other.x1) &&
		pk.f.AreEqual(pk.x2, other.x2) &&
		pk.f.AreEqual(pk.x3, other.x3)
}
