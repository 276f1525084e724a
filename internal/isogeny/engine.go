// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package isogeny implements x-only Montgomery curve arithmetic and the
// 2^e2 and 3^e3 isogeny walks of SIKE. The projective formulas follow the
// SIKE reference algorithms with the exact operation count and ordering.
package isogeny

import (
	"github.com/bytemare/sike/internal/field"
)

// Engine computes isogeny walks for one instantiation. All state is
// parameter-passed, an Engine is read-only after construction and safe for
// concurrent use.
type Engine struct {
	f *field.Extension
	p *Params
}

// NewEngine returns an engine over the given public parameters.
func NewEngine(p *Params) *Engine {
	return &Engine{f: p.Field, p: p}
}

// Params returns the engine's public parameters.
func (e *Engine) Params() *Params {
	return e.p
}

// Field returns the engine's coordinate field.
func (e *Engine) Field() *field.Extension {
	return e.f
}

// xDBL doubles p on a curve in plus form (A24+ : C24).
func (e *Engine) xDBL(p Point, c Curve) Point {
	f := e.f

	t0 := f.Sub(p.X, p.Z)
	t1 := f.Add(p.X, p.Z)
	t0 = f.Square(t0)
	t1 = f.Square(t1)
	z := f.Mul(c.C, t0)
	x := f.Mul(z, t1)
	t1 = f.Sub(t1, t0)
	t0 = f.Mul(c.A, t1)
	z = f.Add(z, t0)
	z = f.Mul(z, t1)

	return Point{X: x, Z: z}
}

// xDBLe returns [2^n]p. n = 0 is the identity.
func (e *Engine) xDBLe(p Point, n int, c Curve) Point {
	for i := 0; i < n; i++ {
		p = e.xDBL(p, c)
	}

	return p
}

// xDBLADD returns (2p, p+q) given the difference q - p, with
// a24 = (A+2C)/(4C).
func (e *Engine) xDBLADD(p, q, qmp Point, a24 field.Element) (Point, Point) {
	f := e.f

	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	x2 := f.Square(t0)
	t2 := f.Sub(q.X, q.Z)
	xpq := f.Add(q.X, q.Z)
	t0 = f.Mul(t0, t2)
	z2 := f.Square(t1)
	t1 = f.Mul(t1, xpq)
	t2 = f.Sub(x2, z2)
	x2 = f.Mul(x2, z2)
	xpq = f.Mul(t2, a24)
	zpq := f.Sub(t0, t1)
	z2 = f.Add(xpq, z2)
	xpq = f.Add(t0, t1)
	z2 = f.Mul(z2, t2)
	zpq = f.Square(zpq)
	xpq = f.Square(xpq)
	zpq = f.Mul(qmp.X, zpq)
	xpq = f.Mul(qmp.Z, xpq)

	return Point{X: x2, Z: z2}, Point{X: xpq, Z: zpq}
}

// xTPL triples p on a curve in plus-minus form (A24+ : A24-).
func (e *Engine) xTPL(p Point, c Curve) Point {
	f := e.f

	t0 := f.Sub(p.X, p.Z)
	t2 := f.Square(t0)
	t1 := f.Add(p.X, p.Z)
	t3 := f.Square(t1)
	t4 := f.Add(t1, t0)
	t0 = f.Sub(t1, t0)
	t1 = f.Square(t4)
	t1 = f.Sub(t1, t3)
	t1 = f.Sub(t1, t2)
	t5 := f.Mul(t3, c.A)
	t3 = f.Mul(t5, t3)
	t6 := f.Mul(t2, c.C)
	t2 = f.Mul(t2, t6)
	t3 = f.Sub(t2, t3)
	t2 = f.Sub(t5, t6)
	t1 = f.Mul(t2, t1)
	t2 = f.Add(t3, t1)
	t2 = f.Square(t2)
	x := f.Mul(t2, t4)
	t1 = f.Sub(t3, t1)
	t1 = f.Square(t1)
	z := f.Mul(t1, t0)

	return Point{X: x, Z: z}
}

// xTPLe returns [3^n]p.
func (e *Engine) xTPLe(p Point, n int, c Curve) Point {
	for i := 0; i < n; i++ {
		p = e.xTPL(p, c)
	}

	return p
}

// ladder3pt computes P + [m]Q from the x-coordinates of P, Q and Q-P on a
// curve in standard (A : C) form. The scalar is consumed least significant
// bit first.
func (e *Engine) ladder3pt(m *SecretKey, xP, xQ, xQmP field.Element, c Curve) (Point, error) {
	f := e.f

	p0 := e.pointFromX(xQ)
	p1 := e.pointFromX(xP)
	p2 := e.pointFromX(xQmP)

	twoC := f.Add(c.C, c.C)

	a24, err := f.Div(f.Add(c.A, twoC), f.Add(twoC, twoC))
	if err != nil {
		return Point{}, err
	}

	bits := m.Bits()
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] == 1 {
			p0, p1 = e.xDBLADD(p0, p1, p2, a24)
		} else {
			p0, p2 = e.xDBLADD(p0, p2, p1, a24)
		}
	}

	return p1, nil
}

// iso2Curve computes the codomain of the 2-isogeny with kernel p, a point of
// order 2, as a plus form curve.
func (e *Engine) iso2Curve(p Point) Curve {
	f := e.f

	a := f.Square(p.X)
	c := f.Square(p.Z)
	a = f.Sub(c, a)

	return Curve{A: a, C: c}
}

// iso2Eval pushes q through the 2-isogeny with kernel p.
func (e *Engine) iso2Eval(p, q Point) Point {
	f := e.f

	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	t2 := f.Add(q.X, q.Z)
	t3 := f.Sub(q.X, q.Z)
	t0 = f.Mul(t0, t3)
	t1 = f.Mul(t1, t2)
	t2 = f.Add(t0, t1)
	t3 = f.Sub(t0, t1)

	return Point{X: f.Mul(q.X, t2), Z: f.Mul(q.Z, t3)}
}

// iso4Curve computes the codomain of the 4-isogeny with kernel p, a point of
// order 4, as a plus form curve, along with the evaluation constants.
func (e *Engine) iso4Curve(p Point) (Curve, field.Element, field.Element, field.Element) {
	f := e.f

	k2 := f.Sub(p.X, p.Z)
	k3 := f.Add(p.X, p.Z)
	k1 := f.Square(p.Z)
	k1 = f.Add(k1, k1)
	c := f.Square(k1)
	k1 = f.Add(k1, k1)
	a := f.Square(p.X)
	a = f.Add(a, a)
	a = f.Square(a)

	return Curve{A: a, C: c}, k1, k2, k3
}

// iso4Eval pushes q through the 4-isogeny described by (k1, k2, k3).
func (e *Engine) iso4Eval(k1, k2, k3 field.Element, q Point) Point {
	f := e.f

	t0 := f.Add(q.X, q.Z)
	t1 := f.Sub(q.X, q.Z)
	x := f.Mul(t0, k2)
	z := f.Mul(t1, k3)
	t0 = f.Mul(t0, t1)
	t0 = f.Mul(t0, k1)
	t1 = f.Add(x, z)
	z = f.Sub(x, z)
	t1 = f.Square(t1)
	z = f.Square(z)
	x = f.Add(t0, t1)
	t0 = f.Sub(z, t0)

	return Point{X: f.Mul(x, t1), Z: f.Mul(z, t0)}
}

// iso3Curve computes the codomain of the 3-isogeny with kernel p, a point of
// order 3, as a plus-minus form curve, along with the evaluation constants.
func (e *Engine) iso3Curve(p Point) (Curve, field.Element, field.Element) {
	f := e.f

	k1 := f.Sub(p.X, p.Z)
	t0 := f.Square(k1)
	k2 := f.Add(p.X, p.Z)
	t1 := f.Square(k2)
	t2 := f.Add(t0, t1)
	t3 := f.Add(k1, k2)
	t3 = f.Square(t3)
	t3 = f.Sub(t3, t2)
	t2 = f.Add(t1, t3)
	t3 = f.Add(t3, t0)
	t4 := f.Add(t3, t0)
	t4 = f.Add(t4, t4)
	t4 = f.Add(t1, t4)
	c := f.Mul(t2, t4)
	t4 = f.Add(t1, t2)
	t4 = f.Add(t4, t4)
	t4 = f.Add(t0, t4)
	t4 = f.Mul(t3, t4)
	t0 = f.Sub(t4, c)
	a := f.Add(c, t0)

	return Curve{A: a, C: c}, k1, k2
}

// iso3Eval pushes q through the 3-isogeny described by (k1, k2).
func (e *Engine) iso3Eval(q Point, k1, k2 field.Element) Point {
	f := e.f

	t0 := f.Add(q.X, q.Z)
	t1 := f.Sub(q.X, q.Z)
	t0 = f.Mul(k1, t0)
	t1 = f.Mul(k2, t1)
	t2 := f.Add(t0, t1)
	t0 = f.Sub(t1, t0)
	t2 = f.Square(t2)
	t0 = f.Square(t0)

	return Point{X: f.Mul(q.X, t2), Z: f.Mul(q.Z, t0)}
}
