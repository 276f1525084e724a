// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/bytemare/sike/hash"
)

// NIST XOF vectors for the empty input, and SHAKE256 of "abc".
const (
	shake256Empty = "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f" +
		"d75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be"
	shake128Empty = "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"
	shake256Abc   = "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func TestSHAKE256_EmptyVector(t *testing.T) {
	want := mustHex(t, shake256Empty)

	if got := hash.SHAKE256.Hash(len(want)); !bytes.Equal(got, want) {
		t.Fatalf("want %x, got %x", want, got)
	}
}

func TestSHAKE128_EmptyVector(t *testing.T) {
	want := mustHex(t, shake128Empty)

	if got := hash.SHAKE128.Hash(len(want)); !bytes.Equal(got, want) {
		t.Fatalf("want %x, got %x", want, got)
	}
}

func TestSHAKE256_Absorb(t *testing.T) {
	want := mustHex(t, shake256Abc)

	// multiple inputs are absorbed as their concatenation
	if got := hash.SHAKE256.Hash(len(want), []byte("ab"), []byte("c")); !bytes.Equal(got, want) {
		t.Fatalf("want %x, got %x", want, got)
	}
}

func TestSHAKE256_Streaming(t *testing.T) {
	oneShot := hash.SHAKE256.Hash(64, []byte("abc"))

	h := hash.SHAKE256.Get()
	if _, err := h.Write([]byte("abc")); err != nil {
		t.Fatal(err)
	}

	streamed := append(h.Read(32), h.Read(32)...)
	if !bytes.Equal(oneShot, streamed) {
		t.Fatal("split squeezes must match a single squeeze")
	}
}

func TestExtendable_Properties(t *testing.T) {
	if !hash.SHAKE256.Available() || !hash.SHAKE128.Available() {
		t.Fatal("SHAKE functions must be available")
	}

	if hash.SHAKE256.BlockSize() != 136 {
		t.Fatalf("SHAKE256 rate must be 136 bytes, got %d", hash.SHAKE256.BlockSize())
	}

	if hash.SHAKE128.BlockSize() != 168 {
		t.Fatalf("SHAKE128 rate must be 168 bytes, got %d", hash.SHAKE128.BlockSize())
	}

	if hash.SHAKE256.String() != "SHAKE256" || !hash.SHAKE256.Extendable() {
		t.Fatal("identification failed")
	}

	if hash.SHAKE256.SecurityLevel() != 256 {
		t.Fatal("security level mismatch")
	}
}
