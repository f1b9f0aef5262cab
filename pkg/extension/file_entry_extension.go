package extension

import (
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
	"github.com/forensicfmt/fwsi-go/pkg/strtext"
)

// FileEntryExtensionPayload is the payload of a 0xbeef0004 block (§4.4,
// the richest extension block): NTFS timestamps, the MFT file reference,
// and the long/localized names that don't fit the fixed FileEntry layout.
type FileEntryExtensionPayload struct {
	FATCreationTime uint32
	FATAccessTime   uint32
	FileReference   *uint64
	LongName        *string
	LocalizedName   *string
	ChecksumOK      bool // offset-to-version back-reference agreement (§4.4 step 7)
}

func (FileEntryExtensionPayload) isExtensionPayload() {}

// parseFileEntryExtension implements the 0xbeef0004 algorithm of §4.4,
// steps 1-7. body is the block data following the shared 8-byte header
// (size/version/signature); versionTag is that header's version field.
func parseFileEntryExtension(body []byte, versionTag uint16, ctx Context) (Payload, error) {
	if len(body) < 10 {
		return nil, ferr.New(ferr.Unsupported, "0xbeef0004 block too small for fixed fields")
	}

	// Step 1: fat_creation_time, fat_access_time.
	creation, err := primitives.U32LE(body, 0)
	if err != nil {
		return nil, err
	}
	access, err := primitives.U32LE(body, 4)
	if err != nil {
		return nil, err
	}

	// Step 2/6: 2 reserved bytes normally; version 9 widens this to a u32
	// "extra" field, version 8 reinterprets the same u16 as meaningful but
	// keeps its size.
	cursor := 8
	switch versionTag {
	case 9:
		cursor += 4
	default:
		cursor += 2
	}
	if cursor > len(body) {
		return nil, ferr.New(ferr.Unsupported, "0xbeef0004 block truncated before reserved field")
	}

	// Step 3: file_reference, only for version >= 7.
	var fileRef *uint64
	if versionTag >= 7 {
		if cursor+16 > len(body) {
			return nil, ferr.New(ferr.Unsupported, "0xbeef0004 block truncated before file reference")
		}
		v, err := primitives.U64LE(body, cursor)
		if err != nil {
			return nil, err
		}
		fileRef = &v
		cursor += 16 // u64 file_reference + 8 reserved bytes
	}

	payload := FileEntryExtensionPayload{
		FATCreationTime: creation,
		FATAccessTime:   access,
		FileReference:   fileRef,
		ChecksumOK:      true,
	}

	// Step 4: long name, version >= 3.
	if versionTag < 3 {
		return payload, nil
	}
	longNameOffset := cursor
	extracted, err := strtext.Extract(body, cursor, strtext.Utf16Le, 0, nil, ctx.MaxLen)
	if err != nil {
		// A truncated long-name region is non-fatal to the item: the block
		// itself is Unsupported and retained as Unknown by the caller.
		return nil, ferr.Wrap(ferr.Unsupported, "0xbeef0004 long name truncated", err)
	}
	longName := extracted.Value
	payload.LongName = &longName
	cursor += extracted.Size

	// Step 5: localized name, version >= 3 and more bytes remain than the
	// 2-byte trailing offset-to-version field read in step 7.
	if len(body)-cursor > 2 {
		enc := strtext.Ansi
		if versionTag >= 7 {
			enc = strtext.Utf16Le
		}
		loc, err := strtext.Extract(body, cursor, enc, ctx.Codepage, ctx.Codec, ctx.MaxLen)
		if err == nil {
			localized := loc.Value
			payload.LocalizedName = &localized
			cursor += loc.Size
		}
	}

	// Step 7: trailing u16 offset-to-version back-reference. Its value
	// should equal the byte offset of the `version` field (2) within the
	// block; disagreement is ChecksumMismatch, non-fatal (§7).
	if len(body)-cursor >= 2 {
		offsetField, err := primitives.U16LE(body, cursor)
		if err == nil {
			const versionFieldOffset = 2
			if offsetField != versionFieldOffset {
				payload.ChecksumOK = false
				mismatch := ferr.New(ferr.ChecksumMismatch, "0xbeef0004 offset-to-version mismatch")
				if ctx.StrictMode {
					return nil, mismatch
				}
				ctx.trace("0xbeef0004 offset-to-version mismatch", "got", offsetField, "want", versionFieldOffset)
				if ctx.Observer != nil {
					ctx.Observer.ChecksumMismatch(mismatch, "offset-to-version mismatch", "got", offsetField)
				}
			}
		}
	}

	return payload, nil
}
