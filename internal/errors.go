// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal provides the error helpers and shared values of the sike
// packages.
package internal

import (
	"errors"
	"fmt"
)

const (
	errParams = "parameter error"
	errCrypto = "cryptographic error"
)

// ParameterError returns an error indicating an error with parameters.
func ParameterError(err string) error {
	return NewError(errParams, err)
}

// CryptoError returns an error raised during a cryptographic computation.
func CryptoError(err string) error {
	return NewError(errCrypto, err)
}

// NewError returns an error prefixed with prefix and embedding err as an error.
func NewError(prefix, err string) error {
	return fmt.Errorf("%s : %w", prefix, errors.New(err))
}

var (
	// ErrInvalidPublicKey indicates a public key with a zero x-coordinate or
	// bytes that do not deserialise to one.
	ErrInvalidPublicKey = CryptoError("invalid public key")

	// ErrHashLength indicates a mask whose length does not match the plaintext.
	ErrHashLength = CryptoError("hash output length does not match message length")

	// ErrRandom indicates a failure of the random byte source.
	ErrRandom = CryptoError("random byte source failure")

	// ErrInvalidStrategy indicates a traversal strategy whose length does not
	// match the walk, or whose pivot does not fit below a tree node. It is used
	// in panics, an invalid strategy is fatal.
	ErrInvalidStrategy = ParameterError("invalid strategy length")

	// ErrInvertZero indicates an attempt to invert the zero field element.
	ErrInvertZero = CryptoError("inverse of zero is undefined")

	// ErrCiphertextSize indicates ciphertext bytes of impossible length.
	ErrCiphertextSize = ParameterError("invalid ciphertext length")
)
