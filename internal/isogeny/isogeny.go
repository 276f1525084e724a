// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package isogeny

import (
	"github.com/bytemare/sike/internal/field"
)

// Isogen2 computes the public key of sk on the 2-torsion: the 3-torsion
// basis pushed through the 2^e2 isogeny with kernel P2 + [sk]Q2.
func (e *Engine) Isogen2(sk *SecretKey) (*PublicKey, error) {
	curve := e.StartingCurve()
	opt := []Point{
		e.pointFromX(e.p.XP3),
		e.pointFromX(e.p.XQ3),
		e.pointFromX(e.p.XR3),
	}

	s, err := e.ladder3pt(sk, e.p.XP2, e.p.XQ2, e.p.XR2, curve)
	if err != nil {
		return nil, err
	}

	_, opt = e.walkTwo(s, opt, e.CurvePlus(curve))

	return e.publicKeyFromPoints(opt)
}

// Isogen3 computes the public key of sk on the 3-torsion: the 2-torsion
// basis pushed through the 3^e3 isogeny with kernel P3 + [sk]Q3.
func (e *Engine) Isogen3(sk *SecretKey) (*PublicKey, error) {
	curve := e.StartingCurve()
	opt := []Point{
		e.pointFromX(e.p.XP2),
		e.pointFromX(e.p.XQ2),
		e.pointFromX(e.p.XR2),
	}

	s, err := e.ladder3pt(sk, e.p.XP3, e.p.XQ3, e.p.XR3, curve)
	if err != nil {
		return nil, err
	}

	_, opt = e.walkThree(s, opt, e.CurvePlusMinus(curve))

	return e.publicKeyFromPoints(opt)
}

// Isoex2 computes the shared j-invariant on the 2-torsion from sk and the
// peer's 3-torsion public key.
func (e *Engine) Isoex2(sk *SecretKey, pk *PublicKey) (field.Element, error) {
	f := e.f

	curve, err := e.CurveFromPublicKey(pk)
	if err != nil {
		return field.Element{}, err
	}

	s, err := e.ladder3pt(sk, pk.x1, pk.x2, pk.x3, curve)
	if err != nil {
		return field.Element{}, err
	}

	plus, _ := e.walkTwo(s, nil, e.CurvePlus(curve))

	// back to standard form: (4*A24+ - 2*C24 : C24)
	std := Curve{
		A: f.Sub(f.Mul(f.Int(4), plus.A), f.Add(plus.C, plus.C)),
		C: plus.C,
	}

	return e.JInvariant(std)
}

// Isoex3 computes the shared j-invariant on the 3-torsion from sk and the
// peer's 2-torsion public key.
func (e *Engine) Isoex3(sk *SecretKey, pk *PublicKey) (field.Element, error) {
	f := e.f

	curve, err := e.CurveFromPublicKey(pk)
	if err != nil {
		return field.Element{}, err
	}

	s, err := e.ladder3pt(sk, pk.x1, pk.x2, pk.x3, curve)
	if err != nil {
		return field.Element{}, err
	}

	pm, _ := e.walkThree(s, nil, e.CurvePlusMinus(curve))

	// back to standard form: (2*(A24+ + A24-) : A24+ - A24-)
	std := Curve{
		A: f.Mul(f.Int(2), f.Add(pm.A, pm.C)),
		C: f.Sub(pm.A, pm.C),
	}

	return e.JInvariant(std)
}

// publicKeyFromPoints normalises the three walked basis points into a
// public key.
func (e *Engine) publicKeyFromPoints(points []Point) (*PublicKey, error) {
	x := make([]field.Element, len(points))

	for i, p := range points {
		affine, err := e.Affine(p)
		if err != nil {
			return nil, err
		}

		x[i] = affine
	}

	return NewPublicKey(e.f, x[0], x[1], x[2]), nil
}
