// Package primitives implements the bounds-safe little-endian reads the
// decoders in this module use for multi-byte fields and string scans
// (§4.1). Grounded on the teacher's bounds-checked
// pkg/encoding helpers (UnmarshalInt32LSBMSB et al.), adapted from
// ECMA-119's both-byte-order encoding to this format's plain
// little-endian layout.
package primitives

import (
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
)

// U16LE reads a little-endian uint16 at off.
func U16LE(buf []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(buf) {
		return 0, ferr.New(ferr.OutOfBounds, "u16_le read out of bounds")
	}
	return uint16(buf[off]) | uint16(buf[off+1])<<8, nil
}

// U32LE reads a little-endian uint32 at off.
func U32LE(buf []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(buf) {
		return 0, ferr.New(ferr.OutOfBounds, "u32_le read out of bounds")
	}
	return uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24, nil
}

// U64LE reads a little-endian uint64 at off.
func U64LE(buf []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, ferr.New(ferr.OutOfBounds, "u64_le read out of bounds")
	}
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(buf[off+i])
	}
	return v, nil
}

// Bytes returns a bounded slice buf[off:off+n], copying nothing (the
// caller owns copying when the slice must outlive buf).
func Bytes(buf []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(buf) {
		return nil, ferr.New(ferr.OutOfBounds, "bounded slice out of bounds")
	}
	return buf[off : off+n], nil
}

// Eq reports whether buf[off:off+len(literal)] equals literal, a fixed
// ASCII magic such as "AugM" or "GFSI".
func Eq(buf []byte, off int, literal string) bool {
	if off < 0 || off+len(literal) > len(buf) {
		return false
	}
	return string(buf[off:off+len(literal)]) == literal
}

// ScanUTF16Nul returns the byte length of a UTF-16LE run starting at off,
// including the trailing u16 0, bounded by maxLen (§4.1's 64 MiB cap).
func ScanUTF16Nul(buf []byte, off, maxLen int) (int, error) {
	if off < 0 || off > len(buf) {
		return 0, ferr.New(ferr.OutOfBounds, "scan_utf16_nul start out of bounds")
	}
	for i := off; i+1 < len(buf); i += 2 {
		length := i + 2 - off
		if length > maxLen {
			return 0, ferr.New(ferr.Oversize, "utf16 string exceeds maximum length")
		}
		if buf[i] == 0 && buf[i+1] == 0 {
			return length, nil
		}
	}
	return 0, ferr.New(ferr.Truncated, "scan_utf16_nul: no terminator before end of buffer")
}

// ScanAnsiNul returns the byte length of an ANSI run starting at off,
// including the trailing u8 0, bounded by maxLen.
func ScanAnsiNul(buf []byte, off, maxLen int) (int, error) {
	if off < 0 || off > len(buf) {
		return 0, ferr.New(ferr.OutOfBounds, "scan_ansi_nul start out of bounds")
	}
	for i := off; i < len(buf); i++ {
		length := i + 1 - off
		if length > maxLen {
			return 0, ferr.New(ferr.Oversize, "ansi string exceeds maximum length")
		}
		if buf[i] == 0 {
			return length, nil
		}
	}
	return 0, ferr.New(ferr.Truncated, "scan_ansi_nul: no terminator before end of buffer")
}
