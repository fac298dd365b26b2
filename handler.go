// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package cabby

// Handler receives SAX-style events from a parser, in document order.  For
// objects the order is Begin, key 0, value 0, key 1, value 1, ..., End, where
// every key is a HandleString event.
//
// A parse run delivers either a balanced event stream followed by natural
// termination, or a single HandleError call.  A parser never emits events
// after HandleError, and a handler must ignore any that arrive anyway.
type Handler interface {
	HandleObjectBegin()
	HandleObjectEnd()
	HandleArrayBegin()
	HandleArrayEnd()

	// HandleString delivers an owned sequence of UTF-16 code units.  The
	// sequence is unvalidated: surrogate pairs may be unbalanced.
	HandleString(chars []uint16)

	HandleInt(value int32)
	HandleDouble(value float64)
	HandleBool(value bool)
	HandleNull()

	// HandleError delivers the terminal status of a failed parse, including
	// the byte position at which the error was detected.
	HandleError(status Status)
}
