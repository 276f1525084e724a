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

// Curve is a projective (A : C) Montgomery curve C*y^2 = x^3 + (A/C)*x^2 + x.
// Depending on the walk, the same pair also carries the plus form
// (A+2C : 4C) or the plus-minus form (A+2C : A-2C).
type Curve struct {
	A, C field.Element
}

// StartingCurve returns the public starting curve y^2 = x^3 + 6x^2 + x.
func (e *Engine) StartingCurve() Curve {
	return Curve{A: e.f.Int(6), C: e.f.One()}
}

// CurvePlus converts a standard form curve to (A+2C : 4C), the form consumed
// by the 4-isogeny chain.
func (e *Engine) CurvePlus(c Curve) Curve {
	twoC := e.f.Add(c.C, c.C)

	return Curve{
		A: e.f.Add(c.A, twoC),
		C: e.f.Add(twoC, twoC),
	}
}

// CurvePlusMinus converts a standard form curve to (A+2C : A-2C), the form
// consumed by the 3-isogeny chain.
func (e *Engine) CurvePlusMinus(c Curve) Curve {
	twoC := e.f.Add(c.C, c.C)

	return Curve{
		A: e.f.Add(c.A, twoC),
		C: e.f.Sub(c.A, twoC),
	}
}

// JInvariant computes the Montgomery j-invariant
// 256 * (A^2/C^2 - 3)^3 / (A^2/C^2 - 4) with 15 field operations (four
// squarings, three multiplications, additions and subtractions) and a single
// inversion.
func (e *Engine) JInvariant(c Curve) (field.Element, error) {
	f := e.f

	j := f.Square(c.A)
	t1 := f.Square(c.C)
	t0 := f.Add(t1, t1)
	t0 = f.Sub(j, t0)
	t0 = f.Sub(t0, t1)
	j = f.Sub(t0, t1)
	t1 = f.Square(t1)
	j = f.Mul(j, t1)
	t0 = f.Add(t0, t0)
	t0 = f.Add(t0, t0)
	t1 = f.Square(t0)
	t0 = f.Mul(t0, t1)
	t0 = f.Add(t0, t0)
	t0 = f.Add(t0, t0)

	j, err := f.Inv(j)
	if err != nil {
		return field.Element{}, err
	}

	return f.Mul(t0, j), nil
}

// JInvariantReference computes the j-invariant with the straightforward
// formula. It is retained to cross-check the optimised version.
func (e *Engine) JInvariantReference(c Curve) (field.Element, error) {
	f := e.f

	a, err := f.Div(c.A, c.C)
	if err != nil {
		return field.Element{}, err
	}

	t0 := f.Square(a)
	j := f.Sub(t0, f.Int(3))
	t1 := f.Square(j)
	j = f.Mul(j, t1)

	for i := 0; i < 8; i++ {
		j = f.Add(j, j)
	}

	t0 = f.Sub(t0, f.Int(4))

	t0, err = f.Inv(t0)
	if err != nil {
		return field.Element{}, err
	}

	return f.Mul(j, t0), nil
}

// CurveFromPublicKey recovers the curve a public key lives on. It fails with
// an invalid public key error when any of the three x-coordinates is zero.
func (e *Engine) CurveFromPublicKey(pk *PublicKey) (Curve, error) {
	f := e.f
	xp, xq, xr := pk.x1, pk.x2, pk.x3

	if f.IsZero(xp) || f.IsZero(xq) || f.IsZero(xr) {
		return Curve{}, internal.ErrInvalidPublicKey
	}

	num := f.Sub(f.Sub(f.Sub(f.One(), f.Mul(xp, xq)), f.Mul(xp, xr)), f.Mul(xq, xr))
	num = f.Square(num)
	den := f.Mul(f.Mul(f.Mul(f.Int(4), xp), xq), xr)

	frac, err := f.Div(num, den)
	if err != nil {
		return Curve{}, internal.ErrInvalidPublicKey
	}

	a := f.Sub(f.Sub(f.Sub(frac, xp), xq), xr)

	return Curve{A: a, C: f.One()}, nil
}

// FromPoints recovers the Montgomery coefficient from the x-coordinates of
// P, Q and Q-P. The walks and key exchanges do not call it, public keys are
// recovered with CurveFromPublicKey; the operation order is fixed.
func (e *Engine) FromPoints(xp, xq, xqmp field.Element) (Curve, error) {
	f := e.f

	t1 := f.Add(xp, xq)
	t0 := f.Mul(xp, xq)
	a := f.Mul(xqmp, t1)
	a = f.Add(a, t0)
	t0 = f.Mul(t0, xqmp)
	a = f.Sub(a, f.One())
	t0 = f.Add(t0, t0)
	t1 = f.Add(t1, xqmp)
	t0 = f.Add(t0, t0)
	a = f.Square(a)

	t0, err := f.Inv(t0)
	if err != nil {
		return Curve{}, internal.ErrInvalidPublicKey
	}

	a = f.Mul(a, t0)
	a = f.Sub(a, t1)

	return Curve{A: a, C: f.One()}, nil
}
