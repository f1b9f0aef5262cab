package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
	"github.com/forensicfmt/fwsi-go/pkg/strtext"
)

// FileEntryPayload is the 0x30-0x3f class_type family (§4.5): file and
// directory entries, grounded on the teacher's
// pkg/directory.DirectoryRecord fixed-header-plus-name layout.
type FileEntryPayload struct {
	IsDirectory          bool
	FileSize             uint32
	FATModificationTime  uint32
	FileAttributeFlags   uint16
	PrimaryName          string
}

func (FileEntryPayload) Kind() Kind { return FileEntry }

// DecodeFileEntry reads the fixed 11-byte header (unknown flags byte,
// file_size, fat_modification_time, file_attribute_flags) starting at
// body offset 3, then the primary name in ANSI or UTF-16LE depending on
// the class_type unicode bit (raw[2]&0x04).
func DecodeFileEntry(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 3 {
		return Decoded{}, ferr.New(ferr.Unsupported, "file entry item shorter than class_type field")
	}
	classType := raw[2]

	if len(raw) < 16 {
		return Decoded{}, ferr.New(ferr.Unsupported, "file entry item shorter than fixed layout")
	}

	fileSize, err := primitives.U32LE(raw, 4)
	if err != nil {
		return Decoded{}, err
	}
	modTime, err := primitives.U32LE(raw, 8)
	if err != nil {
		return Decoded{}, err
	}
	attrFlags, err := primitives.U16LE(raw, 12)
	if err != nil {
		return Decoded{}, err
	}

	enc := strtext.Ansi
	if classType&consts.FileEntryUnicodeBit != 0 {
		enc = strtext.Utf16Le
	}
	extracted, err := strtext.Extract(raw, 14, enc, ctx.Codepage, ctx.Codec, ctx.MaxLen)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "file entry primary name truncated", err)
	}

	cursor := 14 + extracted.Size
	// Names are stored at even offsets; a single pad byte follows an
	// odd-length ANSI name so the trailing extension block chain starts
	// word-aligned.
	if enc == strtext.Ansi && cursor%2 != 0 && cursor < len(raw) {
		cursor++
	}

	return Decoded{
		Payload: FileEntryPayload{
			IsDirectory:         classType&consts.FileEntryDirectoryBit != 0,
			FileSize:            fileSize,
			FATModificationTime: modTime,
			FileAttributeFlags:  attrFlags,
			PrimaryName:         extracted.Value,
		},
		Consumed: cursor,
	}, nil
}
