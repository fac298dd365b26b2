// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package cabby

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// recorder is a Handler that captures events as readable strings, so tests
// can compare whole event streams with a single string equality.
type recorder struct {
	events  []string
	status  Status
	errored bool
}

func (r *recorder) add(s string) {
	r.events = append(r.events, s)
}

func (r *recorder) HandleObjectBegin() { r.add("ObjectBegin") }
func (r *recorder) HandleObjectEnd()   { r.add("ObjectEnd") }
func (r *recorder) HandleArrayBegin()  { r.add("ArrayBegin") }
func (r *recorder) HandleArrayEnd()    { r.add("ArrayEnd") }

func (r *recorder) HandleString(chars []uint16) {
	r.add(fmt.Sprintf("String(%s)", formatUTF16(chars)))
}

func (r *recorder) HandleInt(value int32) {
	r.add(fmt.Sprintf("Int(%d)", value))
}

func (r *recorder) HandleDouble(value float64) {
	r.add(fmt.Sprintf("Double(%s)", DefaultPlatform().DToStr(value)))
}

func (r *recorder) HandleBool(value bool) {
	r.add(fmt.Sprintf("Bool(%t)", value))
}

func (r *recorder) HandleNull() { r.add("Null") }

func (r *recorder) HandleError(status Status) {
	r.status = status
	r.errored = true
	r.add(fmt.Sprintf("Error(%s, pos=%d)", status.Err, status.Pos))
}

func (r *recorder) joined() string {
	return strings.Join(r.events, "; ")
}

// formatUTF16 renders printable ASCII sequences as text and anything else as
// space-separated hex code units, so unbalanced surrogates stay comparable.
func formatUTF16(chars []uint16) string {
	ascii := true
	for _, c := range chars {
		if c < 0x20 || c > 0x7e {
			ascii = false
			break
		}
	}
	if ascii {
		b := make([]byte, len(chars))
		for i, c := range chars {
			b[i] = byte(c)
		}
		return string(b)
	}
	parts := make([]string, len(chars))
	for i, c := range chars {
		parts[i] = fmt.Sprintf("%04x", c)
	}
	return "u16:" + strings.Join(parts, " ")
}

// utf16Units converts a Go string to UTF-16 code units, including surrogate
// pairs for runes outside the BMP.
func utf16Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func parseJSONEvents(input string) *recorder {
	r := &recorder{}
	ParseJSON(DefaultPlatform(), []byte(input), r)
	return r
}

func parseJSON16Events(input string) *recorder {
	r := &recorder{}
	ParseJSON16(DefaultPlatform(), utf16Units(input), r)
	return r
}

func parseCBOREvents(input []byte) *recorder {
	r := &recorder{}
	ParseCBOR(input, r)
	return r
}
