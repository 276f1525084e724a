// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package field

import (
	"math/big"

	"github.com/bytemare/sike/internal"
)

// Extension is the quadratic extension F_{p^2} = F_p[i]/(i^2 + 1).
type Extension struct {
	fp   Field
	half int // serialised component length, padded to a power of two
}

// Element is a value a + b*i of a quadratic extension field. Operations
// never mutate their operands and always produce fresh elements.
type Element struct {
	a, b *big.Int
}

// NewExtension returns the quadratic extension of the prime field of order
// prime.
func NewExtension(prime *big.Int) *Extension {
	fp := NewField(prime)

	half := 1
	for half < fp.ByteLen() {
		half <<= 1
	}

	return &Extension{fp: fp, half: half}
}

// Fp returns the base prime field.
func (e *Extension) Fp() Field {
	return e.fp
}

// ElementLength returns the byte size of an encoded element.
func (e *Extension) ElementLength() int {
	return 2 * e.half
}

// Zero returns the additive identity.
func (e *Extension) Zero() Element {
	return Element{a: new(big.Int), b: new(big.Int)}
}

// One returns the multiplicative identity.
func (e *Extension) One() Element {
	return e.Int(1)
}

// Int returns the small integer n embedded in the extension field.
func (e *Extension) Int(n uint64) Element {
	return Element{a: e.fp.Mod(new(big.Int).SetUint64(n)), b: new(big.Int)}
}

// FromStrings builds an element from the two hex literals of its components.
// It panics on an invalid literal, bad bundled constants are fatal.
func (e *Extension) FromStrings(a, b string) Element {
	ia := String2Int(a)
	ib := String2Int(b)

	return Element{a: e.fp.Mod(&ia), b: e.fp.Mod(&ib)}
}

// IsZero returns whether x is the zero element.
func (e *Extension) IsZero(x Element) bool {
	return e.fp.IsZero(x.a) && e.fp.IsZero(x.b)
}

// AreEqual returns whether x and y represent the same element.
func (e *Extension) AreEqual(x, y Element) bool {
	return e.fp.AreEqual(x.a, y.a) && e.fp.AreEqual(x.b, y.b)
}

// Add returns x + y.
func (e *Extension) Add(x, y Element) Element {
	return Element{
		a: e.fp.Add(&big.Int{}, x.a, y.a),
		b: e.fp.Add(&big.Int{}, x.b, y.b),
	}
}

// Sub returns x - y.
func (e *Extension) Sub(x, y Element) Element {
	return Element{
		a: e.fp.Sub(&big.Int{}, x.a, y.a),
		b: e.fp.Sub(&big.Int{}, x.b, y.b),
	}
}

// Neg returns -x.
func (e *Extension) Neg(x Element) Element {
	return Element{
		a: e.fp.Neg(&big.Int{}, x.a),
		b: e.fp.Neg(&big.Int{}, x.b),
	}
}

// Conjugate returns a - b*i for x = a + b*i.
func (e *Extension) Conjugate(x Element) Element {
	return Element{
		a: new(big.Int).Set(x.a),
		b: e.fp.Neg(&big.Int{}, x.b),
	}
}

// Mul returns the schoolbook product (ac - bd) + (ad + bc)i.
func (e *Extension) Mul(x, y Element) Element {
	ac := e.fp.Mul(&big.Int{}, x.a, y.a)
	bd := e.fp.Mul(&big.Int{}, x.b, y.b)
	ad := e.fp.Mul(&big.Int{}, x.a, y.b)
	bc := e.fp.Mul(&big.Int{}, x.b, y.a)

	return Element{
		a: e.fp.Sub(&big.Int{}, ac, bd),
		b: e.fp.Add(&big.Int{}, ad, bc),
	}
}

// Square returns x * x.
func (e *Extension) Square(x Element) Element {
	return e.Mul(x, x)
}

// Inv returns 1/x through the norm: (a + bi)^-1 = (a - bi) / (a^2 + b^2).
// Inverting zero is undefined and reported as an error.
func (e *Extension) Inv(x Element) (Element, error) {
	if e.IsZero(x) {
		return Element{}, internal.ErrInvertZero
	}

	asq := e.fp.Square(&big.Int{}, x.a)
	bsq := e.fp.Square(&big.Int{}, x.b)
	norm := e.fp.Add(&big.Int{}, asq, bsq)
	ninv := e.fp.Inv(&big.Int{}, norm)

	return Element{
		a: e.fp.Mul(&big.Int{}, ninv, x.a),
		b: e.fp.Mul(&big.Int{}, ninv, e.fp.Neg(&big.Int{}, x.b)),
	}, nil
}

// Div returns x / y.
func (e *Extension) Div(x, y Element) (Element, error) {
	yinv, err := e.Inv(y)
	if err != nil {
		return Element{}, err
	}

	return e.Mul(x, yinv), nil
}

// Bytes returns the serialisation of x: both components big-endian, each
// left-padded to the extension's power-of-two component length.
func (e *Extension) Bytes(x Element) []byte {
	out := make([]byte, 2*e.half)
	x.a.FillBytes(out[:e.half])
	x.b.FillBytes(out[e.half:])

	return out
}

// SetBytes splits data in two halves and loads them as the big-endian
// components of an element, reduced into the field.
func (e *Extension) SetBytes(data []byte) Element {
	n := len(data) / 2

	return Element{
		a: e.fp.SetBytes(data[:n]),
		b: e.fp.SetBytes(data[n:]),
	}
}
