// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package cabby provides a pair of interoperable streaming codecs: a JSON
// parser and a CBOR (RFC 7049) codec, joined by a SAX-style event interface
// so that either format can be transcoded into the other by piping events.
//
// The JSON parser accepts 8-bit or 16-bit code units and delivers events to
// a Handler.  Two handlers are provided: a writer that renders events as
// canonical JSON text, and an encoder that renders events as CBOR.  Piping
// the JSON parser into the CBOR encoder converts JSON to CBOR; piping the
// CBOR parser into the JSON writer converts back.  The one-shot helpers
// ConvertJSONToCBOR and ConvertCBORToJSON wire up these pipes for callers
// that do not want to manage handlers themselves.
//
// # CBOR profile
//
// The CBOR side is a strict subset of RFC 7049, restricted to what is needed
// to round-trip the JSON data model.  A document is an indefinite-length map;
// nested containers are also indefinite-length.  Scalars are limited to
// integers in the int32 range, IEEE-754 doubles, booleans, null, and strings
// carried as BYTE_STRING items holding UTF-16 code units, least significant
// byte first.  Strings are not validated: unbalanced surrogate halves are
// preserved verbatim on every path.
//
// # JSON extensions
//
// On input only, the JSON parser accepts line comments ("// ...") and block
// comments ("/* ... */") between tokens, treating them as white space.  The
// writer never emits comments and always escapes characters outside the
// printable ASCII range: \b, \f, \n, \r and \t in their short forms, all
// others as \uXXXX.
//
// # Testing
//
// Cabby's CBOR output is checked for RFC 7049 well-formedness against the
// fxamacker/cbor reference implementation, and comment handling is checked
// against tidwall/jsonc.  The round-trip invariants (JSON canonicalization
// idempotence and event-stream identity through the CBOR pipe) are also
// exercised by fuzz targets.
package cabby
