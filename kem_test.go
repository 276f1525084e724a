// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/sike"
	"github.com/bytemare/sike/hash"
)

func TestKEM_RoundTrip(t *testing.T) {
	testSchemes(t, func(t *testing.T, s sike.Scheme) {
		kem := s.KEM()

		kp, err := kem.Keygen()
		require.NoError(t, err)

		c, key, err := kem.Encaps(kp.Public)
		require.NoError(t, err)
		require.Len(t, key, maskLengths[s])

		recovered, err := kem.Decaps(kp, c)
		require.NoError(t, err)
		assert.Equal(t, key, recovered)
	})
}

func TestKEM_P503(t *testing.T) {
	if testing.Short() {
		t.Skip("long KEM round trip")
	}

	kem := sike.P503.KEM()

	kp, err := kem.Keygen()
	require.NoError(t, err)

	c, key, err := kem.Encaps(kp.Public)
	require.NoError(t, err)

	recovered, err := kem.Decaps(kp, c)
	require.NoError(t, err)
	assert.Equal(t, key, recovered)
}

// TestKEM_ImplicitRejection tampers with the mask part of a ciphertext: the
// re-encryption check fails, and decapsulation silently returns
// H(s || c') instead of an error.
func TestKEM_ImplicitRejection(t *testing.T) {
	scheme := sike.P610
	if testing.Short() {
		scheme = sike.P434
	}

	kem := scheme.KEM()

	kp, err := kem.Keygen()
	require.NoError(t, err)

	c, key, err := kem.Encaps(kp.Public)
	require.NoError(t, err)

	tampered := &sike.Ciphertext{C0: c.C0, C1: append([]byte{c.C1[0] ^ 1}, c.C1[1:]...)}

	rejected, err := kem.Decaps(kp, tampered)
	require.NoError(t, err, "rejection must be silent")
	assert.NotEqual(t, key, rejected)

	want := hash.SHAKE256.Hash(maskLengths[scheme], kp.S, tampered.C0, tampered.C1)
	assert.Equal(t, want, rejected, "rejection must derive from the fallback secret")
}

// sequenceReader is a deterministic random source for reproducibility tests.
type sequenceReader struct {
	next  byte
	count int
}

func (r *sequenceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}

	r.count += len(p)

	return len(p), nil
}

// TestKEM_DeterministicSource checks the documented draw order: Keygen
// consumes keyspace3 bytes then secparam/8 bytes, Encaps consumes
// secparam/8 bytes.
func TestKEM_DeterministicSource(t *testing.T) {
	run := func() (*sike.KeyPair, *sike.Ciphertext, []byte, *sequenceReader) {
		kem := sike.P434.KEM()
		src := &sequenceReader{}
		kem.SetRandomSource(src)

		kp, err := kem.Keygen()
		require.NoError(t, err)

		c, key, err := kem.Encaps(kp.Public)
		require.NoError(t, err)

		return kp, c, key, src
	}

	kp1, c1, key1, src1 := run()
	kp2, c2, key2, _ := run()

	assert.Equal(t, kp1.Key, kp2.Key)
	assert.Equal(t, kp1.S, kp2.S)
	assert.Equal(t, kp1.Public.Key, kp2.Public.Key)
	assert.Equal(t, c1.Bytes(), c2.Bytes())
	assert.Equal(t, key1, key2)

	// keyspace3 + s + m for SIKEp434
	assert.Equal(t, 28+16+16, src1.count)
}

func TestKeyPair_Wipe(t *testing.T) {
	kem := sike.P434.KEM()

	kp, err := kem.Keygen()
	require.NoError(t, err)

	kp.Wipe()

	for _, b := range append(kp.S, kp.Key...) {
		require.Zero(t, b)
	}
}

func Example() {
	kem := sike.P434.KEM()

	// Alice generates a key pair and publishes kp.Public.
	kp, err := kem.Keygen()
	if err != nil {
		panic(err)
	}

	// Bob encapsulates a fresh shared key under Alice's public key.
	c, key, err := kem.Encaps(kp.Public)
	if err != nil {
		panic(err)
	}

	// Alice decapsulates the same key from the ciphertext.
	recovered, err := kem.Decaps(kp, c)
	if err != nil {
		panic(err)
	}

	fmt.Println(bytes.Equal(key, recovered))
	// Output: true
}
