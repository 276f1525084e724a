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

// walkEntry is a pending node of a strategy traversal: a point and the
// number of tree levels below it.
type walkEntry struct {
	height int
	point  Point
}

// peelTwo applies the single leading 2-isogeny of a 2^e2 walk with odd e2.
// The kernel is the order-2 point below s.
func (e *Engine) peelTwo(s Point, opt []Point, c Curve) (Curve, Point, []Point) {
	t := e.xDBLe(s, e.p.E2-1, c)
	c = e.iso2Curve(t)
	s = e.iso2Eval(t, s)

	for i := range opt {
		opt[i] = e.iso2Eval(t, opt[i])
	}

	return c, s, opt
}

// twoEIso computes the 2^e2 isogeny with kernel s, pushing the optional
// points through every step. The curve is given and returned in plus form.
func (e *Engine) twoEIso(s Point, opt []Point, c Curve) (Curve, []Point) {
	n := e.p.E2

	if n%2 == 1 {
		c, s, opt = e.peelTwo(s, opt, c)
		n--
	}

	for k := n - 2; k >= 0; k -= 2 {
		t := e.xDBLe(s, k, c)

		var k1, k2, k3 field.Element
		c, k1, k2, k3 = e.iso4Curve(t)

		s = e.iso4Eval(k1, k2, k3, s)

		for i := range opt {
			opt[i] = e.iso4Eval(k1, k2, k3, opt[i])
		}
	}

	return c, opt
}

// twoEIsoStrategy computes the 2^e2 isogeny with kernel s following the
// given traversal strategy. One tree level is a 4-isogeny, so a pivot of
// s_i moves 2*s_i doublings. Panics on an invalid strategy, which is fatal.
func (e *Engine) twoEIsoStrategy(s Point, opt []Point, c Curve, strat []int) (Curve, []Point) {
	if len(strat) != e.p.E2/2-1 {
		panic(internal.ErrInvalidStrategy)
	}

	if e.p.E2%2 == 1 {
		c, s, opt = e.peelTwo(s, opt, c)
	}

	stack := make([]walkEntry, 0, len(strat)+1)
	stack = append(stack, walkEntry{height: e.p.E2 / 2, point: s})

	i := 1

	for len(stack) > 0 {
		si := 1
		if i <= len(strat) {
			si = strat[i-1]
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case top.height == 1:
			var k1, k2, k3 field.Element
			c, k1, k2, k3 = e.iso4Curve(top.point)

			for j := range stack {
				stack[j] = walkEntry{
					height: stack[j].height - 1,
					point:  e.iso4Eval(k1, k2, k3, stack[j].point),
				}
			}

			for j := range opt {
				opt[j] = e.iso4Eval(k1, k2, k3, opt[j])
			}
		case top.height > si:
			stack = append(stack, top)
			stack = append(stack, walkEntry{
				height: top.height - si,
				point:  e.xDBLe(top.point, 2*si, c),
			})
			i++
		default:
			panic(internal.ErrInvalidStrategy)
		}
	}

	return c, opt
}

// threeEIso computes the 3^e3 isogeny with kernel s. The curve is given and
// returned in plus-minus form.
func (e *Engine) threeEIso(s Point, opt []Point, c Curve) (Curve, []Point) {
	for k := e.p.E3 - 1; k >= 0; k-- {
		t := e.xTPLe(s, k, c)

		var k1, k2 field.Element
		c, k1, k2 = e.iso3Curve(t)

		s = e.iso3Eval(s, k1, k2)

		for i := range opt {
			opt[i] = e.iso3Eval(opt[i], k1, k2)
		}
	}

	return c, opt
}

// threeEIsoStrategy computes the 3^e3 isogeny with kernel s following the
// given traversal strategy. Panics on an invalid strategy, which is fatal.
func (e *Engine) threeEIsoStrategy(s Point, opt []Point, c Curve, strat []int) (Curve, []Point) {
	if len(strat) != e.p.E3-1 {
		panic(internal.ErrInvalidStrategy)
	}

	stack := make([]walkEntry, 0, len(strat)+1)
	stack = append(stack, walkEntry{height: e.p.E3, point: s})

	i := 1

	for len(stack) > 0 {
		si := 1
		if i <= len(strat) {
			si = strat[i-1]
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case top.height == 1:
			var k1, k2 field.Element
			c, k1, k2 = e.iso3Curve(top.point)

			for j := range stack {
				stack[j] = walkEntry{
					height: stack[j].height - 1,
					point:  e.iso3Eval(stack[j].point, k1, k2),
				}
			}

			for j := range opt {
				opt[j] = e.iso3Eval(opt[j], k1, k2)
			}
		case top.height > si:
			stack = append(stack, top)
			stack = append(stack, walkEntry{
				height: top.height - si,
				point:  e.xTPLe(top.point, si, c),
			})
			i++
		default:
			panic(internal.ErrInvalidStrategy)
		}
	}

	return c, opt
}

// walkTwo runs the 2^e2 walk, strategy-driven when the parameters carry one.
func (e *Engine) walkTwo(s Point, opt []Point, c Curve) (Curve, []Point) {
	if e.p.Strategy2 != nil {
		return e.twoEIsoStrategy(s, opt, c, e.p.Strategy2)
	}

	return e.twoEIso(s, opt, c)
}

// walkThree runs the 3^e3 walk, strategy-driven when the parameters carry one.
func (e *Engine) walkThree(s Point, opt []Point, c Curve) (Curve, []Point) {
	if e.p.Strategy3 != nil {
		return e.threeEIsoStrategy(s, opt, c, e.p.Strategy3)
	}

	return e.threeEIso(s, opt, c)
}
