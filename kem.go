// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike

import (
	"crypto/subtle"
	"io"

	"github.com/bytemare/sike/hash"
	"github.com/bytemare/sike/internal"
	"github.com/bytemare/sike/internal/isogeny"
)

// KEM is the IND-CCA key encapsulation mechanism of a SIKE instantiation,
// the Hofheinz-Hoevelmanns-Kiltz transform of the PKE.
type KEM struct {
	pke *PKE
}

// KEM returns the key encapsulation mechanism of s.
func (s Scheme) KEM() *KEM {
	return &KEM{pke: s.PKE()}
}

// SetRandomSource replaces the default crypto/rand source. Injecting a
// deterministic reader reproduces a run byte for byte: Keygen draws
// keyspace3 bytes then secparam/8 bytes of the fallback secret, Encaps draws
// secparam/8 bytes of the message.
func (k *KEM) SetRandomSource(r io.Reader) {
	k.pke.SetRandomSource(r)
}

// Keygen generates the KEM key pair: the PKE keys and the fallback secret s
// mixed into rejected decapsulations.
func (k *KEM) Keygen() (*KeyPair, error) {
	sk3, pk3, err := k.pke.Gen()
	if err != nil {
		return nil, err
	}

	s, err := internal.RandomBytes(k.pke.random, k.pke.params.MaskLength())
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		Scheme: k.pke.scheme,
		S:      s,
		Key:    sk3.Key,
		Public: pk3,
	}, nil
}

// Encaps derives a fresh shared key for the holder of pk and returns its
// encapsulation.
func (k *KEM) Encaps(pk *PublicKey) (*Ciphertext, []byte, error) {
	peer, err := isogeny.DecodePublicKey(k.pke.params.Field, pk.Key)
	if err != nil {
		return nil, nil, err
	}

	n := k.pke.params.MaskLength()

	m, err := internal.RandomBytes(k.pke.random, n)
	if err != nil {
		return nil, nil, err
	}
	defer internal.Wipe(m)

	// r = G(m || pk), the deterministic ephemeral 2-torsion key.
	r := hash.SHAKE256.Hash(n, m, pk.Key)
	sk2 := isogeny.NewSecretKey(r)
	defer sk2.Wipe()
	defer internal.Wipe(r)

	c, err := k.pke.encrypt(peer, m, sk2)
	if err != nil {
		return nil, nil, err
	}

	key := hash.SHAKE256.Hash(n, m, c.C0, c.C1)

	return c, key, nil
}

// Decaps recovers the shared key encapsulated in c. A ciphertext that fails
// re-encryption yields H(s || c) instead of an error, the mismatch is only
// observable through the derived key.
func (k *KEM) Decaps(kp *KeyPair, c *Ciphertext) ([]byte, error) {
	n := k.pke.params.MaskLength()

	m, err := k.pke.Dec(&SecretKey{Scheme: kp.Scheme, Key: kp.Key}, c)
	if err != nil {
		return nil, err
	}
	defer internal.Wipe(m)

	r := hash.SHAKE256.Hash(n, m, kp.Public.Key)
	sk2 := isogeny.NewSecretKey(r)
	defer sk2.Wipe()
	defer internal.Wipe(r)

	c0, err := k.pke.engine.Isogen2(sk2)
	if err != nil {
		return nil, err
	}

	// Branch-free select of the hash preimage: m on re-encryption match, the
	// fallback secret s otherwise.
	same := subtle.ConstantTimeCompare(c0.Bytes(), c.C0)

	pre := make([]byte, n)
	for i := range pre {
		pre[i] = byte(subtle.ConstantTimeSelect(same, int(m[i]), int(kp.S[i])))
	}
	defer internal.Wipe(pre)

	return hash.SHAKE256.Hash(n, pre, c.C0, c.C1), nil
}
