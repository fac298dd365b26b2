// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package cabby

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Major types per RFC 7049 section 2.1, pre-shifted into the high 3 bits of
// the initial byte.
const (
	majorUnsigned    byte = iota << 5 // positive integers
	majorNegative                     // negative integers
	majorByteString                   // in this profile: UTF-16 code units, LSB first
	majorString                       // UTF-8 text, rejected by this profile
	majorArray                        // definite-length arrays, rejected
	majorMap                          // definite-length maps, rejected
	majorTag                          // tags, rejected
	majorSimpleValue                  // simple values and doubles
)

const (
	majorTypeMask       byte = 0xe0
	additionalInfoMask  byte = 0x1f
	additionalInfo1Byte byte = 24
	additionalInfo2Byte byte = 25
	additionalInfo4Byte byte = 26
	additionalInfo8Byte byte = 27
	// additional info 28-30 is reserved; 31 marks indefinite length.
	additionalInfoIndefinite byte = 31
)

// Initial bytes for the singleton items of the profile.
const (
	cborFalseByte           = majorSimpleValue | 20
	cborTrueByte            = majorSimpleValue | 21
	cborNullByte            = majorSimpleValue | 22
	cborDoubleByte          = majorSimpleValue | additionalInfo8Byte
	cborIndefiniteArrayByte = majorArray | additionalInfoIndefinite
	cborIndefiniteMapByte   = majorMap | additionalInfoIndefinite
	cborStopByte            = majorSimpleValue | additionalInfoIndefinite
)

func encodeInitialByte(major, additionalInfo byte) byte {
	return major | additionalInfo&additionalInfoMask
}

// writeItemStart writes the initial byte and any length/value payload for an
// item of the given major type, choosing the shortest encoding: inline for
// 0..23, then 1, 2, 4, or 8 big-endian payload bytes.
func writeItemStart(major byte, value uint64, out *bytes.Buffer) {
	switch {
	case value < 24:
		out.WriteByte(encodeInitialByte(major, byte(value)))
	case value <= math.MaxUint8:
		out.WriteByte(encodeInitialByte(major, additionalInfo1Byte))
		out.WriteByte(byte(value))
	case value <= math.MaxUint16:
		var payload [2]byte
		binary.BigEndian.PutUint16(payload[:], uint16(value))
		out.WriteByte(encodeInitialByte(major, additionalInfo2Byte))
		out.Write(payload[:])
	case value <= math.MaxUint32:
		var payload [4]byte
		binary.BigEndian.PutUint32(payload[:], uint32(value))
		out.WriteByte(encodeInitialByte(major, additionalInfo4Byte))
		out.Write(payload[:])
	default:
		var payload [8]byte
		binary.BigEndian.PutUint64(payload[:], value)
		out.WriteByte(encodeInitialByte(major, additionalInfo8Byte))
		out.Write(payload[:])
	}
}

// readItemStart reads the initial byte and payload of a definite-length item,
// returning the major type, the value (or size), and the remaining bytes.
// Reserved additional info values (28-30) and the indefinite marker (31) are
// rejected, as is a truncated payload.
func readItemStart(in []byte) (major byte, value uint64, rest []byte, ok bool) {
	if len(in) == 0 {
		return 0, 0, nil, false
	}
	initial := in[0]
	major = initial & majorTypeMask
	additionalInfo := initial & additionalInfoMask
	if additionalInfo < 24 {
		return major, uint64(additionalInfo), in[1:], true
	}
	switch additionalInfo {
	case additionalInfo1Byte:
		if len(in) < 2 {
			return 0, 0, nil, false
		}
		return major, uint64(in[1]), in[2:], true
	case additionalInfo2Byte:
		if len(in) < 3 {
			return 0, 0, nil, false
		}
		return major, uint64(binary.BigEndian.Uint16(in[1:3])), in[3:], true
	case additionalInfo4Byte:
		if len(in) < 5 {
			return 0, 0, nil, false
		}
		return major, uint64(binary.BigEndian.Uint32(in[1:5])), in[5:], true
	case additionalInfo8Byte:
		if len(in) < 9 {
			return 0, 0, nil, false
		}
		return major, binary.BigEndian.Uint64(in[1:9]), in[9:], true
	}
	return 0, 0, nil, false
}

// EncodeUnsigned appends value to out as UNSIGNED (major type 0), using the
// shortest encoding.
func EncodeUnsigned(value uint64, out *bytes.Buffer) {
	writeItemStart(majorUnsigned, value, out)
}

// DecodeUnsigned decodes an UNSIGNED item from the front of in, returning
// the value and the remaining bytes.
func DecodeUnsigned(in []byte) (uint64, []byte, bool) {
	major, value, rest, ok := readItemStart(in)
	if !ok || major != majorUnsigned {
		return 0, nil, false
	}
	return value, rest, true
}

// EncodeNegative appends value, which must be negative, to out as NEGATIVE
// (major type 1) with payload -(value+1).
func EncodeNegative(value int64, out *bytes.Buffer) {
	writeItemStart(majorNegative, uint64(-(value + 1)), out)
}

// DecodeNegative decodes a NEGATIVE item from the front of in.
func DecodeNegative(in []byte) (int64, []byte, bool) {
	major, payload, rest, ok := readItemStart(in)
	if !ok || major != majorNegative || payload > math.MaxInt64 {
		return 0, nil, false
	}
	return -int64(payload) - 1, rest, true
}

// EncodeSigned appends value to out as UNSIGNED if non-negative, NEGATIVE
// otherwise.
func EncodeSigned(value int32, out *bytes.Buffer) {
	if value >= 0 {
		EncodeUnsigned(uint64(value), out)
	} else {
		EncodeNegative(int64(value), out)
	}
}

// DecodeSigned decodes either an UNSIGNED or a NEGATIVE item from the front
// of in, failing if the value does not fit int32.
func DecodeSigned(in []byte) (int32, []byte, bool) {
	major, payload, rest, ok := readItemStart(in)
	if !ok {
		return 0, nil, false
	}
	switch major {
	case majorUnsigned:
		if payload > math.MaxInt32 {
			return 0, nil, false
		}
		return int32(payload), rest, true
	case majorNegative:
		// -(payload+1) must be >= math.MinInt32.
		if payload > math.MaxInt32 {
			return 0, nil, false
		}
		return int32(-int64(payload) - 1), rest, true
	}
	return 0, nil, false
}

// EncodeUTF16String appends chars to out as BYTE_STRING (major type 2) with
// length 2*len(chars).  Each code unit is written least significant byte
// first; the wire order is fixed regardless of host endianness.
func EncodeUTF16String(chars []uint16, out *bytes.Buffer) {
	writeItemStart(majorByteString, uint64(2*len(chars)), out)
	for _, c := range chars {
		out.WriteByte(byte(c))
		out.WriteByte(byte(c >> 8))
	}
}

// DecodeUTF16String decodes a BYTE_STRING item from the front of in into
// UTF-16 code units, interpreting the leading byte of each pair as the least
// significant.  Odd payload lengths and non-BYTE_STRING majors fail.
func DecodeUTF16String(in []byte) ([]uint16, []byte, bool) {
	major, numBytes, rest, ok := readItemStart(in)
	if !ok || major != majorByteString {
		return nil, nil, false
	}
	if uint64(len(rest)) < numBytes || numBytes&1 == 1 {
		return nil, nil, false
	}
	chars := make([]uint16, 0, numBytes/2)
	for i := uint64(0); i < numBytes; i += 2 {
		chars = append(chars, uint16(rest[i+1])<<8|uint16(rest[i]))
	}
	return chars, rest[numBytes:], true
}

// EncodeDouble appends value to out as major type 7 with additional info 27,
// followed by 8 bytes of big-endian IEEE-754 binary64.
func EncodeDouble(value float64, out *bytes.Buffer) {
	var payload [8]byte
	binary.BigEndian.PutUint64(payload[:], math.Float64bits(value))
	out.WriteByte(cborDoubleByte)
	out.Write(payload[:])
}

// DecodeDouble decodes a double item from the front of in.
func DecodeDouble(in []byte) (float64, []byte, bool) {
	if len(in) < 9 || in[0] != cborDoubleByte {
		return 0, nil, false
	}
	return math.Float64frombits(binary.BigEndian.Uint64(in[1:9])), in[9:], true
}
