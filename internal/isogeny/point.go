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

// Point is a projective (X : Z) x-coordinate on a Montgomery curve. Z = 0
// denotes the neutral element at infinity. Points are values, operations
// consume and produce fresh points without aliasing.
type Point struct {
	X, Z field.Element
}

// pointFromX returns the point (x : 1).
func (e *Engine) pointFromX(x field.Element) Point {
	return Point{X: x, Z: e.f.One()}
}

// IsInfinity returns whether the point is the neutral element.
func (e *Engine) IsInfinity(p Point) bool {
	return e.f.IsZero(p.Z)
}

// PointsEqual compares the affine x-coordinates X1/Z1 and X2/Z2 without
// dividing. Two points at infinity are equal, infinity never equals a finite
// point.
func (e *Engine) PointsEqual(p, q Point) bool {
	if e.IsInfinity(p) || e.IsInfinity(q) {
		return e.IsInfinity(p) && e.IsInfinity(q)
	}

	return e.f.AreEqual(e.f.Mul(p.X, q.Z), e.f.Mul(q.X, p.Z))
}

// Affine returns the affine x-coordinate X/Z of a finite point.
func (e *Engine) Affine(p Point) (field.Element, error) {
	return e.f.Div(p.X, p.Z)
}
