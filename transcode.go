// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package cabby

import "bytes"

// ConvertJSONToCBOR parses a single JSON value from 8-bit code units and
// returns its constrained-CBOR encoding.  On failure it returns a
// *ParseError carrying the error kind and byte position.
func ConvertJSONToCBOR(platform Platform, json []byte) ([]byte, error) {
	var out bytes.Buffer
	var status Status
	encoder := NewJSONToCBOREncoder(&out, &status)
	ParseJSON(platform, json, encoder)
	if !status.OK() {
		return nil, &ParseError{Status: status}
	}
	return out.Bytes(), nil
}

// ConvertJSON16ToCBOR is ConvertJSONToCBOR for 16-bit code units.
func ConvertJSON16ToCBOR(platform Platform, json []uint16) ([]byte, error) {
	var out bytes.Buffer
	var status Status
	encoder := NewJSONToCBOREncoder(&out, &status)
	ParseJSON16(platform, json, encoder)
	if !status.OK() {
		return nil, &ParseError{Status: status}
	}
	return out.Bytes(), nil
}

// ConvertCBORToJSON parses a constrained-CBOR document and returns its
// canonical JSON rendering.  On failure it returns a *ParseError carrying
// the error kind and byte position.
func ConvertCBORToJSON(platform Platform, cbor []byte) ([]byte, error) {
	var out bytes.Buffer
	var status Status
	writer := NewJSONWriter(platform, &out, &status)
	ParseCBOR(cbor, writer)
	if !status.OK() {
		return nil, &ParseError{Status: status}
	}
	return out.Bytes(), nil
}
