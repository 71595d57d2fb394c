// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package chunk contains the record type PNG-style containers are
// built from, along with the 4-byte type codes that name them.
//
// A serialized chunk has a fixed 8-byte header, a variable-length
// payload, and a 4-byte trailer:
//
//	 0    1    2    3    4    5    6    7
//	+----+----+----+----+----+----+----+----+
//	| payload length    | type code         |
//	+----+----+----+----+----+----+----+----+
//	| payload...                            |
//	+----+----+----+----+----+----+----+----+
//	| payload...        | crc32             |
//	+----+----+----+----+----+----+----+----+
//
// All integers are big-endian.  The CRC is CRC-32/ISO-HDLC (the IEEE
// polynomial) calculated over the type code followed by the payload; the
// length is not covered.  This matches the PNG specification, so chunks
// written here can be read by any PNG decoder and vice versa.
//
// Type codes are four ASCII letters.  Bit 5 (0x20, lowercase) of each
// letter carries a property:
//
//	byte 0: ancillary (lowercase) or critical (uppercase)
//	byte 1: private (lowercase) or public (uppercase)
//	byte 2: reserved, must be uppercase for the code to be valid
//	byte 3: safe-to-copy (lowercase) or unsafe-to-copy (uppercase)
package chunk
