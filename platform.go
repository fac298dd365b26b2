// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package cabby

import "strconv"

// Platform supplies the host's locale-independent numeric conversions.  Every
// parse takes a Platform explicitly; there is no process-wide instance.
type Platform interface {
	// StrToD parses an ASCII decimal representation into a float64.  It
	// reports false on range errors or if chars has trailing characters
	// beyond the number.
	StrToD(chars []byte) (float64, bool)

	// DToStr formats a float64 in a decimal form adequate for JSON, with no
	// locale-dependent separators.  The form must be accepted by StrToD on
	// the reverse path.
	DToStr(value float64) []byte
}

type defaultPlatform struct{}

// DefaultPlatform returns a Platform backed by strconv, which is
// locale-independent by construction.
func DefaultPlatform() Platform { return defaultPlatform{} }

func (defaultPlatform) StrToD(chars []byte) (float64, bool) {
	value, err := strconv.ParseFloat(string(chars), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func (defaultPlatform) DToStr(value float64) []byte {
	return strconv.AppendFloat(nil, value, 'g', -1, 64)
}
