// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package encoding provides encoding and decoding of key material and
// ciphertexts in different formats.
package encoding

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"github.com/bytemare/sike/internal"
)

// Encoding identifies referenced encoding formats.
type Encoding byte

const (
	// JSON encoding.
	JSON Encoding = 1 + iota

	// Gob encoding.
	Gob

	// MessagePack encoding.
	MessagePack

	maxID

	// Default is the default encoding used when none specified.
	Default = JSON

	sJSON    = "JSON"
	sGob     = "Gob"
	sMsgPack = "MessagePack"
)

type (
	encoder func(v interface{}) ([]byte, error)
	decoder func(encoded []byte, receiver interface{}) (interface{}, error)
)

var (
	encoders map[Encoding]encoder
	decoders map[Encoding]decoder

	errInvalidID    = internal.ParameterError("invalid encoding identifier")
	errNotAvailable = internal.ParameterError("encoding is not available")
)

func (e Encoding) register(enc encoder, dec decoder) {
	encoders[e] = enc
	decoders[e] = dec
}

// Available returns nil if the encoding is available, and an error if not.
func (e Encoding) Available() error {
	if e == 0 || e >= maxID {
		return errInvalidID
	}

	if _, ok := encoders[e]; !ok {
		return errNotAvailable
	}

	return nil
}

// String returns the encoding's name.
func (e Encoding) String() string {
	switch e {
	case JSON:
		return sJSON
	case Gob:
		return sGob
	case MessagePack:
		return sMsgPack
	default:
		return ""
	}
}

// Encode returns the encoding of v in the receiver's format.
func (e Encoding) Encode(v interface{}) ([]byte, error) {
	if err := e.Available(); err != nil {
		return nil, err
	}

	return encoders[e](v)
}

// Decode returns the receiver struct filled with the decoding of the encoded
// input. Returns an error if it fails.
func (e Encoding) Decode(encoded []byte, receiver interface{}) (interface{}, error) {
	if err := e.Available(); err != nil {
		return nil, err
	}

	return decoders[e](encoded, receiver)
}

func init() {
	encoders = make(map[Encoding]encoder)
	decoders = make(map[Encoding]decoder)

	JSON.register(json.Marshal, jsonDecode)
	Gob.register(gobEncode, gobDecode)
	MessagePack.register(msgPackEncode, msgPackDecode)
}

func jsonDecode(encoded []byte, receiver interface{}) (interface{}, error) {
	err := json.Unmarshal(encoded, receiver)

	return receiver, err
}

func gobEncode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer

	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func gobDecode(encoded []byte, receiver interface{}) (interface{}, error) {
	dec := gob.NewDecoder(bytes.NewReader(encoded))
	err := dec.Decode(receiver)

	return receiver, err
}
