// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package cabby

import "fmt"

// ErrorKind identifies a parse or decode failure.  The set is closed: every
// distinct failure mode has exactly one kind.
type ErrorKind int

const (
	NoError ErrorKind = iota

	// JSON parser errors.
	JSONUnprocessedInputRemains
	JSONStackLimitExceeded
	JSONNoInput
	JSONInvalidToken
	JSONInvalidNumber
	JSONInvalidString
	JSONUnexpectedArrayEnd
	JSONCommaOrArrayEndExpected
	JSONStringLiteralExpected
	JSONColonExpected
	JSONUnexpectedObjectEnd
	JSONCommaOrObjectEndExpected
	JSONValueExpected

	// CBOR parser and decoder errors.
	CBORNoInput
	CBORInvalidStartByte
	CBORUnexpectedEOFExpectedValue
	CBORUnexpectedEOFInArray
	CBORUnexpectedEOFInMap
	CBORInvalidMapKey
	CBORStackLimitExceeded
	CBORUnsupportedValue
	CBORInvalidString16
	CBORInvalidDouble
	CBORInvalidSigned
)

var errorKindNames = map[ErrorKind]string{
	NoError:                        "no error",
	JSONUnprocessedInputRemains:    "JSON: unprocessed input remains",
	JSONStackLimitExceeded:         "JSON: stack limit exceeded",
	JSONNoInput:                    "JSON: no input",
	JSONInvalidToken:               "JSON: invalid token",
	JSONInvalidNumber:              "JSON: invalid number",
	JSONInvalidString:              "JSON: invalid string",
	JSONUnexpectedArrayEnd:         "JSON: unexpected array end",
	JSONCommaOrArrayEndExpected:    "JSON: comma or array end expected",
	JSONStringLiteralExpected:      "JSON: string literal expected",
	JSONColonExpected:              "JSON: colon expected",
	JSONUnexpectedObjectEnd:        "JSON: unexpected object end",
	JSONCommaOrObjectEndExpected:   "JSON: comma or object end expected",
	JSONValueExpected:              "JSON: value expected",
	CBORNoInput:                    "CBOR: no input",
	CBORInvalidStartByte:           "CBOR: invalid start byte",
	CBORUnexpectedEOFExpectedValue: "CBOR: unexpected EOF, expected value",
	CBORUnexpectedEOFInArray:       "CBOR: unexpected EOF in array",
	CBORUnexpectedEOFInMap:         "CBOR: unexpected EOF in map",
	CBORInvalidMapKey:              "CBOR: invalid map key",
	CBORStackLimitExceeded:         "CBOR: stack limit exceeded",
	CBORUnsupportedValue:           "CBOR: unsupported value",
	CBORInvalidString16:            "CBOR: invalid UTF-16 string",
	CBORInvalidDouble:              "CBOR: invalid double",
	CBORInvalidSigned:              "CBOR: invalid signed integer",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// NoPos marks a Status whose byte position is unknown.
const NoPos int64 = -1

// Status is the result of a parse or decode run.  On failure, Pos is the
// 0-based byte offset within the original input at which the error was
// detected, or NoPos if unknown.  For 16-bit JSON input, the byte offset of a
// code unit is twice its index.
type Status struct {
	Err ErrorKind
	Pos int64
}

// OK reports whether the run succeeded.
func (s Status) OK() bool { return s.Err == NoError }

func (s Status) String() string {
	if s.OK() {
		return "ok"
	}
	return fmt.Sprintf("%s at position %d", s.Err, s.Pos)
}

// ParseError records a JSON or CBOR parsing failure, carrying the error kind
// and byte position of the underlying Status.
type ParseError struct {
	Status Status
}

func (pe *ParseError) Error() string { return "parse error: " + pe.Status.String() }
