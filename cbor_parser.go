// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package cabby

// cborStackLimit bounds container nesting in a CBOR document, mirroring the
// JSON parser's limit.
const cborStackLimit = 1000

// ParseCBOR validates and parses a document in the constrained CBOR profile,
// delivering events to handler.  The document must be non-empty and begin
// with an indefinite-length map.  On error the handler receives a single
// HandleError carrying the byte offset at which parsing stopped, and no
// further events.
func ParseCBOR(in []byte, handler Handler) {
	p := &cborParser{h: handler, total: len(in)}
	if len(in) == 0 {
		p.fail(CBORNoInput, in)
		return
	}
	if in[0] != cborIndefiniteMapByte {
		p.fail(CBORInvalidStartByte, in)
		return
	}
	handler.HandleObjectBegin()
	p.parseMapBody(in[1:], 1)
}

type cborParser struct {
	h     Handler
	total int
	err   bool
}

// pos is the byte offset of the front of the remaining input.
func (p *cborParser) pos(in []byte) int64 {
	return int64(p.total - len(in))
}

func (p *cborParser) fail(kind ErrorKind, in []byte) []byte {
	if !p.err {
		p.err = true
		p.h.HandleError(Status{Err: kind, Pos: p.pos(in)})
	}
	return nil
}

// parseValue parses one item at the front of in and returns the remaining
// bytes.  On error it returns nil.
func (p *cborParser) parseValue(in []byte, depth int) []byte {
	if depth > cborStackLimit {
		return p.fail(CBORStackLimitExceeded, in)
	}
	if len(in) == 0 {
		return p.fail(CBORUnexpectedEOFExpectedValue, in)
	}

	switch in[0] {
	case cborTrueByte:
		p.h.HandleBool(true)
		return in[1:]
	case cborFalseByte:
		p.h.HandleBool(false)
		return in[1:]
	case cborNullByte:
		p.h.HandleNull()
		return in[1:]
	case cborDoubleByte:
		value, rest, ok := DecodeDouble(in)
		if !ok {
			return p.fail(CBORInvalidDouble, in)
		}
		p.h.HandleDouble(value)
		return rest
	case cborIndefiniteArrayByte:
		p.h.HandleArrayBegin()
		return p.parseArrayBody(in[1:], depth+1)
	case cborIndefiniteMapByte:
		p.h.HandleObjectBegin()
		return p.parseMapBody(in[1:], depth+1)
	}

	switch in[0] & majorTypeMask {
	case majorUnsigned, majorNegative:
		value, rest, ok := DecodeSigned(in)
		if !ok {
			return p.fail(CBORInvalidSigned, in)
		}
		p.h.HandleInt(value)
		return rest
	case majorByteString:
		chars, rest, ok := DecodeUTF16String(in)
		if !ok {
			return p.fail(CBORInvalidString16, in)
		}
		p.h.HandleString(chars)
		return rest
	}
	// STRING, definite-length ARRAY/MAP, TAG, and other simple values are
	// outside the profile.
	return p.fail(CBORUnsupportedValue, in)
}

// parseArrayBody parses items after an indefinite-array start byte until the
// stop byte.
func (p *cborParser) parseArrayBody(in []byte, depth int) []byte {
	for {
		if len(in) == 0 {
			return p.fail(CBORUnexpectedEOFInArray, in)
		}
		if in[0] == cborStopByte {
			p.h.HandleArrayEnd()
			return in[1:]
		}
		in = p.parseValue(in, depth)
		if p.err {
			return nil
		}
	}
}

// parseMapBody parses strict (key, value) pairs after an indefinite-map
// start byte until the stop byte.  Keys must be BYTE_STRING items.
func (p *cborParser) parseMapBody(in []byte, depth int) []byte {
	for {
		if len(in) == 0 {
			return p.fail(CBORUnexpectedEOFInMap, in)
		}
		if in[0] == cborStopByte {
			p.h.HandleObjectEnd()
			return in[1:]
		}
		if in[0]&majorTypeMask != majorByteString {
			return p.fail(CBORInvalidMapKey, in)
		}
		key, rest, ok := DecodeUTF16String(in)
		if !ok {
			return p.fail(CBORInvalidString16, in)
		}
		p.h.HandleString(key)
		in = p.parseValue(rest, depth)
		if p.err {
			return nil
		}
	}
}
