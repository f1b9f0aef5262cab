// Package strtext locates and decodes NUL-terminated ANSI or UTF-16LE
// string runs inside a shared buffer (§4.3), grounded on the teacher's
// bounds-checked field extraction in pkg/directory.DirectoryRecord.Unmarshal
// (copy-then-own semantics) generalized into a standalone extractor.
package strtext

import (
	"unicode/utf16"

	"github.com/forensicfmt/fwsi-go/pkg/codepage"
	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
)

// Encoding selects how a string run is decoded.
type Encoding int

const (
	// Ansi decodes bytes up to a NUL using a codepage; a run with no NUL
	// before the end of the buffer is a Truncated error.
	Ansi Encoding = iota
	// Utf16Le decodes u16 pairs up to a NUL pair; a run with no NUL pair
	// before the end of the buffer is a Truncated error.
	Utf16Le
)

// Extracted is an owned, decoded string plus the byte span it occupied
// (including its NUL terminator) in the source buffer.
type Extracted struct {
	Value string
	Size  int // bytes consumed from the source buffer, including terminator
}

// Extract decodes a string run starting at off. cp is ignored for
// Utf16Le. codec may be nil, in which case Ansi strings fall back to
// codepage.Latin1{} (§4.3).
func Extract(buf []byte, off int, enc Encoding, cp int, codec codepage.Codepage, maxLen int) (Extracted, error) {
	if maxLen <= 0 {
		maxLen = consts.MaxStringLength
	}
	switch enc {
	case Utf16Le:
		return extractUTF16(buf, off, maxLen)
	default:
		return extractAnsi(buf, off, cp, codec, maxLen)
	}
}

func extractAnsi(buf []byte, off int, cp int, codec codepage.Codepage, maxLen int) (Extracted, error) {
	size, err := primitives.ScanAnsiNul(buf, off, maxLen)
	if err != nil {
		return Extracted{}, err
	}
	raw, err := primitives.Bytes(buf, off, size-1) // exclude the NUL
	if err != nil {
		return Extracted{}, err
	}
	if codec == nil {
		codec = codepage.Latin1{}
	}
	s, err := codec.Decode(cp, raw)
	if err != nil {
		return Extracted{}, ferr.Wrap(ferr.InvalidArgument, "codepage decode failed", err)
	}
	return Extracted{Value: s, Size: size}, nil
}

func extractUTF16(buf []byte, off int, maxLen int) (Extracted, error) {
	size, err := primitives.ScanUTF16Nul(buf, off, maxLen)
	if err != nil {
		return Extracted{}, err
	}
	raw, err := primitives.Bytes(buf, off, size-2) // exclude the NUL pair
	if err != nil {
		return Extracted{}, err
	}

	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}
	// utf16.Decode replaces ill-formed surrogates with U+FFFD on its own.
	runes := utf16.Decode(units)
	return Extracted{Value: string(runes), Size: size}, nil
}
