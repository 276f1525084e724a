// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package sike_test

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/sike"
)

var maskLengths = map[sike.Scheme]int{
	sike.P434: 16,
	sike.P503: 24,
	sike.P610: 24,
	sike.P751: 32,
}

func TestPKE_RoundTrip(t *testing.T) {
	testSchemes(t, func(t *testing.T, s sike.Scheme) {
		pke := s.PKE()

		sk, pk, err := pke.Gen()
		require.NoError(t, err)

		message := make([]byte, maskLengths[s])
		_, err = rand.Read(message)
		require.NoError(t, err)

		c, err := pke.Enc(pk, message)
		require.NoError(t, err)

		recovered, err := pke.Dec(sk, c)
		require.NoError(t, err)
		assert.Equal(t, message, recovered)
	})
}

func TestPKE_ZeroMessage(t *testing.T) {
	pke := sike.P434.PKE()

	sk, pk, err := pke.Gen()
	require.NoError(t, err)

	message := make([]byte, 16)

	c, err := pke.Enc(pk, message)
	require.NoError(t, err)

	recovered, err := pke.Dec(sk, c)
	require.NoError(t, err)
	assert.Equal(t, message, recovered)
}

func TestPKE_MessageLength(t *testing.T) {
	pke := sike.P434.PKE()

	_, pk, err := pke.Gen()
	require.NoError(t, err)

	_, err = pke.Enc(pk, make([]byte, 15))
	assert.ErrorIs(t, err, sike.ErrHashLength)

	_, err = pke.Enc(pk, make([]byte, 17))
	assert.ErrorIs(t, err, sike.ErrHashLength)
}

func TestPKE_InvalidPublicKey(t *testing.T) {
	pke := sike.P434.PKE()

	_, pk, err := pke.Gen()
	require.NoError(t, err)

	// zero x-coordinates survive decoding but fail curve recovery
	zero := &sike.PublicKey{Scheme: sike.P434, Key: make([]byte, len(pk.Key))}

	_, err = pke.Enc(zero, make([]byte, 16))
	assert.ErrorIs(t, err, sike.ErrInvalidPublicKey)
}

func TestPKE_CiphertextShape(t *testing.T) {
	testSchemes(t, func(t *testing.T, s sike.Scheme) {
		pke := s.PKE()

		_, pk, err := pke.Gen()
		require.NoError(t, err)

		c, err := pke.Enc(pk, make([]byte, maskLengths[s]))
		require.NoError(t, err)

		assert.Equal(t, len(pk.Key), len(c.C0), "c0 is an ephemeral public key")
		assert.Equal(t, maskLengths[s], len(c.C1))
	})
}

func ExampleScheme_PKE() {
	pke := sike.P434.PKE()

	// The receiver generates a key pair and publishes pk.
	sk, pk, err := pke.Gen()
	if err != nil {
		panic(err)
	}

	message := []byte("0123456789abcdef")

	c, err := pke.Enc(pk, message)
	if err != nil {
		panic(err)
	}

	recovered, err := pke.Dec(sk, c)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(recovered))
	// Output: 0123456789abcdef
}
