// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike

import (
	"github.com/bytemare/sike/internal"
	"github.com/bytemare/sike/internal/isogeny"
)

// SecretKey is a PKE decryption key: an opaque byte string on the 3-torsion
// keyspace.
type SecretKey struct {
	Scheme Scheme `json:"scheme" msgpack:"scheme"`
	Key    []byte `json:"key" msgpack:"key"`
}

// Wipe overwrites the key material. Best effort, the garbage collector gives
// no guarantee on earlier copies.
func (k *SecretKey) Wipe() {
	internal.Wipe(k.Key)
}

// PublicKey is a PKE encryption key: the three serialised x-coordinates
// (phi(P2), phi(Q2), phi(Q2-P2)) of the 2-torsion basis under the key
// owner's secret 3-torsion isogeny phi.
type PublicKey struct {
	Scheme Scheme `json:"scheme" msgpack:"scheme"`
	Key    []byte `json:"key" msgpack:"key"`
}

// Bytes returns the serialised public key: three byte strings in order
// x1, x2, x3.
func (k *PublicKey) Bytes() []byte {
	out := make([]byte, len(k.Key))
	copy(out, k.Key)

	return out
}

// DecodePublicKey returns the public key over the given bytes, three
// serialised field elements.
func (s Scheme) DecodePublicKey(data []byte) (*PublicKey, error) {
	if _, err := isogeny.DecodePublicKey(s.get().Field, data); err != nil {
		return nil, err
	}

	key := make([]byte, len(data))
	copy(key, data)

	return &PublicKey{Scheme: s, Key: key}, nil
}

// KeyPair is the private output of KEM key generation: the fallback secret s
// for implicit rejection, the PKE secret key, and the matching public key.
type KeyPair struct {
	Public *PublicKey `json:"pub" msgpack:"pub"`
	Scheme Scheme     `json:"scheme" msgpack:"scheme"`
	S      []byte     `json:"s" msgpack:"s"`
	Key    []byte     `json:"key" msgpack:"key"`
}

// Wipe overwrites the secret parts of the key pair.
func (k *KeyPair) Wipe() {
	internal.Wipe(k.S)
	internal.Wipe(k.Key)
}

// Ciphertext is a PKE or KEM ciphertext: the serialised ephemeral 2-torsion
// public key c0 and the message mask c1.
type Ciphertext struct {
	C0 []byte `json:"c0" msgpack:"c0"`
	C1 []byte `json:"c1" msgpack:"c1"`
}

// Bytes returns the serialisation c0 || c1.
func (c *Ciphertext) Bytes() []byte {
	return internal.Concatenate(len(c.C0)+len(c.C1), c.C0, c.C1)
}

// ParseCiphertext splits data into the public key part and the mask part of
// a ciphertext.
func (s Scheme) ParseCiphertext(data []byte) (*Ciphertext, error) {
	p := s.get()
	n := 3 * p.Field.ElementLength()

	if len(data) != n+p.MaskLength() {
		return nil, internal.ErrCiphertextSize
	}

	c0 := make([]byte, n)
	copy(c0, data[:n])
	c1 := make([]byte, p.MaskLength())
	copy(c1, data[n:])

	return &Ciphertext{C0: c0, C1: c1}, nil
}
