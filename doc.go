// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package sike implements the Supersingular Isogeny Key Encapsulation scheme
// over the four NIST submission parameter sets SIKEp434, SIKEp503, SIKEp610
// and SIKEp751.
//
// The package exposes the IND-CPA public key encryption scheme (PKE) and the
// IND-CCA key encapsulation mechanism (KEM) built from it with the
// Hofheinz-Hoevelmanns-Kiltz transform.
//
// SIKE was broken by the Castryck-Decru key recovery attack in 2022. This
// implementation is of educational and historical value only, and must not be
// used to protect data.
package sike
