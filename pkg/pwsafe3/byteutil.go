package pwsafe3

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

// leUint16 decodes a little-endian 16-bit integer. Callers must ensure
// len(b) >= 2.
func leUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

// leUint32 decodes a little-endian 32-bit integer. Callers must ensure
// len(b) >= 4.
func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// decodeUTF8 validates that b is well-formed UTF-8 and returns it as a
// string. Invalid UTF-8 is a fatal parse error per spec.
func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", newErr(ErrInvalidUtf8InStringField, nil)
	}
	return string(b), nil
}

// decodeUUID interprets 16 raw bytes as a UUID. The PWS3 format stores
// UUIDs as opaque 16-byte payloads with no particular byte-order
// convention beyond "16 raw bytes", so this is a direct reinterpretation.
func decodeUUID(b []byte) (uuid.UUID, error) {
	if len(b) != 16 {
		return uuid.UUID{}, newErr(ErrUnexpectedEndOfPlaintext, nil)
	}
	var u uuid.UUID
	copy(u[:], b)
	return u, nil
}
