// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike

import (
	"crypto/rand"
	"io"

	"github.com/bytemare/sike/hash"
	"github.com/bytemare/sike/internal"
	"github.com/bytemare/sike/internal/isogeny"
)

// PKE is the IND-CPA public key encryption scheme of a SIKE instantiation.
// A PKE is read-only after construction and safe for concurrent use, except
// for SetRandomSource.
type PKE struct {
	random io.Reader
	params *isogeny.Params
	engine *isogeny.Engine
	scheme Scheme
}

// PKE returns the public key encryption scheme of s.
func (s Scheme) PKE() *PKE {
	p := s.get()

	return &PKE{
		random: rand.Reader,
		params: p,
		engine: isogeny.NewEngine(p),
		scheme: s,
	}
}

// SetRandomSource replaces the default crypto/rand source. Injecting a
// deterministic reader reproduces a run byte for byte: Gen draws keyspace3
// bytes, Enc draws keyspace2 bytes.
func (p *PKE) SetRandomSource(r io.Reader) {
	p.random = r
}

// Gen samples a 3-torsion secret key and computes the matching public key.
func (p *PKE) Gen() (*SecretKey, *PublicKey, error) {
	key, err := internal.RandomBytes(p.random, p.params.Keyspace3)
	if err != nil {
		return nil, nil, err
	}

	sk3 := isogeny.NewSecretKey(key)
	defer sk3.Wipe()

	pk3, err := p.engine.Isogen3(sk3)
	if err != nil {
		return nil, nil, err
	}

	return &SecretKey{Scheme: p.scheme, Key: key},
		&PublicKey{Scheme: p.scheme, Key: pk3.Bytes()}, nil
}

// Enc encrypts a message of secparam/8 bytes under the peer's public key
// with a fresh ephemeral 2-torsion key.
func (p *PKE) Enc(pk *PublicKey, message []byte) (*Ciphertext, error) {
	peer, err := isogeny.DecodePublicKey(p.params.Field, pk.Key)
	if err != nil {
		return nil, err
	}

	key, err := internal.RandomBytes(p.random, p.params.Keyspace2)
	if err != nil {
		return nil, err
	}

	sk2 := isogeny.NewSecretKey(key)
	defer sk2.Wipe()
	defer internal.Wipe(key)

	return p.encrypt(peer, message, sk2)
}

// encrypt is the deterministic encryption core shared with the KEM: the
// ephemeral key is an input.
func (p *PKE) encrypt(peer *isogeny.PublicKey, message []byte, sk2 *isogeny.SecretKey) (*Ciphertext, error) {
	c0, err := p.engine.Isogen2(sk2)
	if err != nil {
		return nil, err
	}

	j, err := p.engine.Isoex2(sk2, peer)
	if err != nil {
		return nil, err
	}

	mask := hash.SHAKE256.Hash(p.params.MaskLength(), p.params.Field.Bytes(j))
	if len(mask) != len(message) {
		return nil, internal.ErrHashLength
	}

	return &Ciphertext{C0: c0.Bytes(), C1: xor(message, mask)}, nil
}

// Dec recovers the message masked in the ciphertext.
func (p *PKE) Dec(sk *SecretKey, c *Ciphertext) ([]byte, error) {
	c0, err := isogeny.DecodePublicKey(p.params.Field, c.C0)
	if err != nil {
		return nil, err
	}

	sk3 := isogeny.NewSecretKey(sk.Key)
	defer sk3.Wipe()

	j, err := p.engine.Isoex3(sk3, c0)
	if err != nil {
		return nil, err
	}

	mask := hash.SHAKE256.Hash(p.params.MaskLength(), p.params.Field.Bytes(j))
	if len(mask) != len(c.C1) {
		return nil, internal.ErrHashLength
	}

	return xor(mask, c.C1), nil
}

func xor(x, y []byte) []byte {
	out := make([]byte, len(x))
	for i := range x {
		out[i] = x[i] ^ y[i]
	}

	return out
}
