// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field provides modular arithmetic over the SIDH primes and their
// quadratic extensions.
package field

import (
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// String2Int returns a big.Int representation of the integer s.
func String2Int(s string) big.Int {
	if p, _ := new(big.Int).SetString(s, 0); p != nil {
		return *p
	}

	panic("invalid string to convert")
}

// Field represents the prime field of a SIDH prime p = 2^e2 * 3^e3 - 1.
// All stored elements are canonical, in [0, p).
type Field struct {
	order   *big.Int
	pMinus2 *big.Int // used for Field big.Int inversion
	byteLen int
}

// NewField returns a newly instantiated field for the given prime order.
func NewField(prime *big.Int) Field {
	// pMinus2 is used for modular inversion.
	pMinus2 := big.NewInt(2)
	pMinus2.Sub(prime, pMinus2)

	return Field{
		order:   prime,
		pMinus2: pMinus2,
		byteLen: (prime.BitLen() + 7) / 8,
	}
}

// Zero returns the zero big.Int of the finite Field.
func (f Field) Zero() *big.Int {
	return zero
}

// One returns one big.Int of the finite Field.
func (f Field) One() *big.Int {
	return one
}

// Order returns the size of the Field.
func (f Field) Order() *big.Int {
	return f.order
}

// BitLen of the order.
func (f Field) BitLen() int {
	return f.order.BitLen()
}

// ByteLen returns the length of a serialised element, without leading-zero
// elision.
func (f Field) ByteLen() int {
	return f.byteLen
}

// AreEqual returns whether both elements are equal.
func (f Field) AreEqual(f1, f2 *big.Int) bool {
	return f.IsZero(f.Sub(&big.Int{}, f1, f2))
}

// IsZero returns whether the big.Int is equivalent to zero.
func (f Field) IsZero(e *big.Int) bool {
	return e.Sign() == 0
}

// IsEqual returns whether the two fields have the same order.
func (f Field) IsEqual(f2 *Field) bool {
	return f.order.Cmp(f2.order) == 0
}

// Mod reduces x modulo the field order.
func (f Field) Mod(x *big.Int) *big.Int {
	return x.Mod(x, f.order)
}

// Add sets res to x + y modulo the field order.
func (f Field) Add(res, x, y *big.Int) *big.Int {
	return f.Mod(res.Add(x, y))
}

// Sub sets res to x - y modulo the field order.
func (f Field) Sub(res, x, y *big.Int) *big.Int {
	return f.Mod(res.Sub(x, y))
}

// Neg sets res to -x modulo the field order. Zero is its own negation.
func (f Field) Neg(res, x *big.Int) *big.Int {
	return f.Mod(res.Neg(x))
}

// Mul sets res to the multiplication of x and y modulo the field order.
func (f Field) Mul(res, x, y *big.Int) *big.Int {
	return f.Mod(res.Mul(x, y))
}

// Square sets res to x * x modulo the field order.
func (f Field) Square(res, x *big.Int) *big.Int {
	return f.Mod(res.Mul(x, x))
}

// Inv sets res to the modular inverse of x mod the field order, using
// Fermat's little theorem. The inverse of zero is undefined, callers must
// test for it.
func (f Field) Inv(res, x *big.Int) *big.Int {
	return f.Exponent(res, x, f.pMinus2)
}

// Exponent sets res to x^n mod the field order.
func (f Field) Exponent(res, x, n *big.Int) *big.Int {
	return res.Exp(x, n, f.order)
}

// Bytes returns the big-endian fixed-width encoding of x.
func (f Field) Bytes(x *big.Int) []byte {
	return x.FillBytes(make([]byte, f.byteLen))
}

// SetBytes interprets data as a big-endian unsigned integer, reduced modulo
// the field order.
func (f Field) SetBytes(data []byte) *big.Int {
	return f.Mod(new(big.Int).SetBytes(data))
}
