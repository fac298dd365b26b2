// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package cabby

import "bytes"

type jsonToCBOREncoder struct {
	out    *bytes.Buffer
	status *Status
	done   bool
}

// NewJSONToCBOREncoder returns a Handler that renders events as constrained
// CBOR appended to out: indefinite-length containers, UTF-16 byte strings,
// int32 integers, and binary64 doubles.  The buffer and status slot remain
// owned by the caller.  If an error event arrives, the encoder records it in
// status, clears out, and swallows all subsequent events.
func NewJSONToCBOREncoder(out *bytes.Buffer, status *Status) Handler {
	*status = Status{}
	return &jsonToCBOREncoder{out: out, status: status}
}

func (e *jsonToCBOREncoder) HandleObjectBegin() {
	if e.done {
		return
	}
	e.out.WriteByte(cborIndefiniteMapByte)
}

func (e *jsonToCBOREncoder) HandleObjectEnd() {
	if e.done {
		return
	}
	e.out.WriteByte(cborStopByte)
}

func (e *jsonToCBOREncoder) HandleArrayBegin() {
	if e.done {
		return
	}
	e.out.WriteByte(cborIndefiniteArrayByte)
}

func (e *jsonToCBOREncoder) HandleArrayEnd() {
	if e.done {
		return
	}
	e.out.WriteByte(cborStopByte)
}

func (e *jsonToCBOREncoder) HandleString(chars []uint16) {
	if e.done {
		return
	}
	EncodeUTF16String(chars, e.out)
}

func (e *jsonToCBOREncoder) HandleInt(value int32) {
	if e.done {
		return
	}
	EncodeSigned(value, e.out)
}

func (e *jsonToCBOREncoder) HandleDouble(value float64) {
	if e.done {
		return
	}
	EncodeDouble(value, e.out)
}

func (e *jsonToCBOREncoder) HandleBool(value bool) {
	if e.done {
		return
	}
	if value {
		e.out.WriteByte(cborTrueByte)
	} else {
		e.out.WriteByte(cborFalseByte)
	}
}

func (e *jsonToCBOREncoder) HandleNull() {
	if e.done {
		return
	}
	e.out.WriteByte(cborNullByte)
}

func (e *jsonToCBOREncoder) HandleError(status Status) {
	if e.done {
		return
	}
	e.done = true
	*e.status = status
	e.out.Reset()
}
