// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package isogeny_test

import (
	"crypto/rand"
	"testing"

	"github.com/bytemare/sike/internal/field"
	"github.com/bytemare/sike/internal/isogeny"
	"github.com/bytemare/sike/internal/params"
)

var instantiations = []func() *isogeny.Params{params.P434, params.P503, params.P610, params.P751}

// testInstantiations runs f for every parameter set, restricted to p434 in
// short mode for the heavier walks.
func testInstantiations(t *testing.T, short bool, f func(t *testing.T, e *isogeny.Engine)) {
	for i, get := range instantiations {
		p := get()

		if short && testing.Short() && i > 0 {
			continue
		}

		t.Run(p.Name, func(t *testing.T) {
			f(t, isogeny.NewEngine(p))
		})
	}
}

func randomSecretKey(t *testing.T, size int) *isogeny.SecretKey {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		t.Fatal(err)
	}

	return isogeny.NewSecretKey(buf)
}

func fromX(f *field.Extension, x field.Element) isogeny.Point {
	return isogeny.Point{X: x, Z: f.One()}
}

// naiveEngine returns an engine over a parameter copy without strategies,
// selecting the naive walks.
func naiveEngine(e *isogeny.Engine) *isogeny.Engine {
	p := *e.Params()
	p.Strategy2 = nil
	p.Strategy3 = nil

	return isogeny.NewEngine(&p)
}

func TestStartingCurve_JInvariant(t *testing.T) {
	testInstantiations(t, false, func(t *testing.T, e *isogeny.Engine) {
		f := e.Field()
		want := f.Int(287496)

		j, err := e.JInvariant(e.StartingCurve())
		if err != nil {
			t.Fatal(err)
		}

		if !f.AreEqual(j, want) {
			t.Fatal("j(E0) must be 287496")
		}

		j, err = e.JInvariantReference(e.StartingCurve())
		if err != nil {
			t.Fatal(err)
		}

		if !f.AreEqual(j, want) {
			t.Fatal("reference j(E0) must be 287496")
		}
	})
}

func TestJInvariant_Equivalence(t *testing.T) {
	testInstantiations(t, false, func(t *testing.T, e *isogeny.Engine) {
		f := e.Field()

		for i := 0; i < 5; i++ {
			buf := make([]byte, f.ElementLength())
			if _, err := rand.Read(buf); err != nil {
				t.Fatal(err)
			}

			c := isogeny.Curve{A: f.SetBytes(buf), C: f.One()}

			opt, err := e.JInvariant(c)
			if err != nil {
				t.Fatal(err)
			}

			ref, err := e.JInvariantReference(c)
			if err != nil {
				t.Fatal(err)
			}

			if !f.AreEqual(opt, ref) {
				t.Fatal("optimised and reference j-invariants must agree")
			}
		}
	})
}

func TestPoint_Equality(t *testing.T) {
	e := isogeny.NewEngine(params.P434())
	f := e.Field()

	finite := fromX(f, f.Int(42))
	scaled := isogeny.Point{X: f.Mul(finite.X, f.Int(7)), Z: f.Int(7)}
	infinity := isogeny.Point{X: f.One(), Z: f.Zero()}
	infinity2 := isogeny.Point{X: f.Int(3), Z: f.Zero()}

	if !e.PointsEqual(finite, scaled) {
		t.Fatal("projectively equal points must compare equal")
	}

	if !e.PointsEqual(infinity, infinity2) {
		t.Fatal("two points at infinity must compare equal")
	}

	if e.PointsEqual(finite, infinity) || e.PointsEqual(infinity, finite) {
		t.Fatal("infinity must not equal a finite point")
	}

	if !e.IsInfinity(infinity) || e.IsInfinity(finite) {
		t.Fatal("infinity detection failed")
	}
}

// TestFromPoints checks the curve recovery helper against the known
// starting curve: both torsion bases lie on E0, so the recovered
// coefficient must be 6.
func TestFromPoints(t *testing.T) {
	testInstantiations(t, false, func(t *testing.T, e *isogeny.Engine) {
		f := e.Field()
		p := e.Params()
		six := f.Int(6)

		c, err := e.FromPoints(p.XP2, p.XQ2, p.XR2)
		if err != nil {
			t.Fatal(err)
		}

		if !f.AreEqual(c.A, six) || !f.AreEqual(c.C, f.One()) {
			t.Fatal("2-torsion basis must recover the starting curve")
		}

		c, err = e.FromPoints(p.XP3, p.XQ3, p.XR3)
		if err != nil {
			t.Fatal(err)
		}

		if !f.AreEqual(c.A, six) {
			t.Fatal("3-torsion basis must recover the starting curve")
		}
	})
}

func TestCurveFromPublicKey_ZeroCoordinate(t *testing.T) {
	e := isogeny.NewEngine(params.P434())
	f := e.Field()

	pk := isogeny.NewPublicKey(f, f.Zero(), f.Int(2), f.Int(3))
	if _, err := e.CurveFromPublicKey(pk); err == nil {
		t.Fatal("a zero x-coordinate must be rejected")
	}
}

func TestSecretKey_Bits(t *testing.T) {
	// 0x8001 as a little-endian byte string: low bit and top bit set.
	k := isogeny.NewSecretKey([]byte{0x01, 0x80})

	bits := k.Bits()
	if len(bits) != 16 {
		t.Fatalf("want 16 bits, got %d", len(bits))
	}

	if bits[0] != 1 || bits[15] != 1 {
		t.Fatal("top and bottom bits must be set")
	}

	for i := 1; i < 15; i++ {
		if bits[i] != 0 {
			t.Fatalf("bit %d must be clear", i)
		}
	}
}

func TestSecretKey_Wipe(t *testing.T) {
	k := isogeny.NewSecretKey([]byte{1, 2, 3})
	k.Wipe()

	for _, b := range k.Bytes() {
		if b != 0 {
			t.Fatal("wiped key must read zero")
		}
	}
}

func TestPublicKey_SerializationRoundTrip(t *testing.T) {
	testInstantiations(t, true, func(t *testing.T, e *isogeny.Engine) {
		sk := randomSecretKey(t, e.Params().Keyspace3)

		pk, err := e.Isogen3(sk)
		if err != nil {
			t.Fatal(err)
		}

		decoded, err := isogeny.DecodePublicKey(e.Field(), pk.Bytes())
		if err != nil {
			t.Fatal(err)
		}

		if !pk.Equal(decoded) {
			t.Fatal("decoding must invert encoding")
		}

		if _, err = isogeny.DecodePublicKey(e.Field(), pk.Bytes()[1:]); err == nil {
			t.Fatal("truncated bytes must be rejected")
		}
	})
}

// TestKeyExchange_Commutes is the core isogeny property: both sides derive
// the same j-invariant.
func TestKeyExchange_Commutes(t *testing.T) {
	testInstantiations(t, true, func(t *testing.T, e *isogeny.Engine) {
		p := e.Params()
		sk2 := randomSecretKey(t, p.Keyspace2)
		sk3 := randomSecretKey(t, p.Keyspace3)

		pk2, err := e.Isogen2(sk2)
		if err != nil {
			t.Fatal(err)
		}

		pk3, err := e.Isogen3(sk3)
		if err != nil {
			t.Fatal(err)
		}

		j2, err := e.Isoex2(sk2, pk3)
		if err != nil {
			t.Fatal(err)
		}

		j3, err := e.Isoex3(sk3, pk2)
		if err != nil {
			t.Fatal(err)
		}

		if !e.Field().AreEqual(j2, j3) {
			t.Fatal("key exchange must commute")
		}
	})
}

// TestWalks_NaiveMatchesStrategy compares the naive and strategy-driven
// walks on identical inputs.
func TestWalks_NaiveMatchesStrategy(t *testing.T) {
	testInstantiations(t, true, func(t *testing.T, e *isogeny.Engine) {
		naive := naiveEngine(e)
		p := e.Params()

		sk2 := randomSecretKey(t, p.Keyspace2)
		sk3 := randomSecretKey(t, p.Keyspace3)

		pk2, err := e.Isogen2(sk2)
		if err != nil {
			t.Fatal(err)
		}

		pk2n, err := naive.Isogen2(sk2)
		if err != nil {
			t.Fatal(err)
		}

		if !pk2.Equal(pk2n) {
			t.Fatal("2-torsion walks must agree on the pushed basis")
		}

		pk3, err := e.Isogen3(sk3)
		if err != nil {
			t.Fatal(err)
		}

		pk3n, err := naive.Isogen3(sk3)
		if err != nil {
			t.Fatal(err)
		}

		if !pk3.Equal(pk3n) {
			t.Fatal("3-torsion walks must agree on the pushed basis")
		}

		j, err := e.Isoex2(sk2, pk3)
		if err != nil {
			t.Fatal(err)
		}

		jn, err := naive.Isoex2(sk2, pk3)
		if err != nil {
			t.Fatal(err)
		}

		if !e.Field().AreEqual(j, jn) {
			t.Fatal("2-torsion walks must agree on the j-invariant")
		}

		j, err = e.Isoex3(sk3, pk2)
		if err != nil {
			t.Fatal(err)
		}

		jn, err = naive.Isoex3(sk3, pk2)
		if err != nil {
			t.Fatal(err)
		}

		if !e.Field().AreEqual(j, jn) {
			t.Fatal("3-torsion walks must agree on the j-invariant")
		}
	})
}

func TestWalks_InvalidStrategy(t *testing.T) {
	e := isogeny.NewEngine(params.P434())
	p := e.Params()

	s, err := isogeny.Ladder3pt(e, randomSecretKey(t, p.Keyspace2), p.XP2, p.XQ2, p.XR2, e.StartingCurve())
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("an invalid strategy must be fatal")
		}
	}()

	isogeny.TwoEIsoStrategy(e, s, nil, e.CurvePlus(e.StartingCurve()), []int{1, 2, 3})
}

func TestCurve_SerializationRoundTrip(t *testing.T) {
	e := isogeny.NewEngine(params.P434())
	f := e.Field()

	c := e.StartingCurve()

	restored := isogeny.Curve{
		A: f.SetBytes(f.Bytes(c.A)),
		C: f.SetBytes(f.Bytes(c.C)),
	}

	if !f.AreEqual(c.A, restored.A) || !f.AreEqual(c.C, restored.C) {
		t.Fatal("decoding must invert encoding")
	}
}
