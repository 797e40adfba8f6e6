// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sharecodec turns an answer set into the token carried by share links
and draft storage, and back.

# Token Format

A token is the payload's JSON text, UTF-8 encoded, in base64 with the URL
alphabet and no padding:

	token, err := sharecodec.Encode(payload)
	link := base + "?data=" + token

The JSON layout is fixed:

	{"userName":"...","questions":[...],"answers":{"1":["..."]},"custom":[...]}

userName is omitted when empty. questions is omitted when the payload has no
catalog.

# Decoding

Decode accepts what Encode produces plus what older links and URL layers hand
back: padded tokens, standard "+" and "/" characters, leftover percent escapes,
and "+" turned into a space by form decoding.

	payload, err := sharecodec.Decode(r.URL.Query().Get("data"))

# Shapes

Links made before the catalog was embedded have no questions field. They decode
with Payload.Questions == nil; the caller substitutes its own catalog.

	if sharecodec.ShapeOf(payload) == sharecodec.ShapeLegacy {
		questions = catalog.Default().Questions
	}

# Errors

Every decode failure is a *DecodeError in exactly one category:

  - ErrMalformedToken: bad characters, bad escapes, length 1 mod 4
  - ErrInvalidEncoding: base64 rejected the input
  - ErrInvalidText: decoded bytes are not UTF-8
  - ErrInvalidStructure: not JSON, or answers missing or mis-shaped

A failed Decode always returns the zero Payload.
*/
package sharecodec
