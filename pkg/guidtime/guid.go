// Package guidtime implements the fixed-layout GUID, FILETIME and FAT
// date/time decoders (§4.2), grounded on the teacher's
// pkg/encoding.DecodeDirectoryTime (bounds-checked fixed-layout timestamp
// decode) and pkg/rockridge's POSIX-entry field-by-field unmarshal style.
package guidtime

import (
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
	"github.com/google/uuid"
)

// GUID is a 16-byte Windows GUID, decoded from its mixed-endian wire
// layout (Data1 u32 LE, Data2/Data3 u16 LE, Data4 8 bytes big-endian).
type GUID [16]byte

// DecodeGUID reads a 16-byte GUID at off.
func DecodeGUID(buf []byte, off int) (GUID, error) {
	raw, err := primitives.Bytes(buf, off, 16)
	if err != nil {
		return GUID{}, ferr.Wrap(ferr.OutOfBounds, "guid read out of bounds", err)
	}
	var g GUID

	// Reassemble into RFC 4122 big-endian component order so the
	// google/uuid canonical formatter can be reused for presentation.
	g[0], g[1], g[2], g[3] = raw[3], raw[2], raw[1], raw[0]
	g[4], g[5] = raw[5], raw[4]
	g[6], g[7] = raw[7], raw[6]
	copy(g[8:16], raw[8:16])
	return g, nil
}

// String returns the canonical lowercase
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (g GUID) String() string {
	return uuid.UUID(g).String()
}

// IsZero reports whether g is the all-zero GUID.
func (g GUID) IsZero() bool {
	for _, b := range g {
		if b != 0 {
			return false
		}
	}
	return true
}

// Bytes returns the canonical big-endian-component 16-byte form (§4.8:
// "Identifier/GUID accessors produce 16-byte big-endian-canonical arrays").
func (g GUID) Bytes() [16]byte {
	return [16]byte(g)
}
