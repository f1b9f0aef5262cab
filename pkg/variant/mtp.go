package variant

import (
	"time"

	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/guidtime"
	"github.com/forensicfmt/fwsi-go/pkg/strtext"
)

// mtpVolumeSubType distinguishes an MTP volume item from an MTP file
// entry item; both share class_type 0x52 and are told apart by the byte
// immediately following it (§4.5).
const mtpVolumeSubType byte = 0x00

// MTPVolumePayload is the MTP device/volume item: a UTF-16LE volume
// name with no further fixed fields.
type MTPVolumePayload struct {
	Name string
}

func (MTPVolumePayload) Kind() Kind { return MTPVolume }

// MTPFileEntryPayload is the MTP object item: an object identifier
// string, creation/modification FILETIMEs, and the object's display
// name, all UTF-16LE (the MTP protocol itself is Unicode-only).
type MTPFileEntryPayload struct {
	ObjectIdentifier string
	CreationTime     time.Time
	HasCreationTime  bool
	ModificationTime time.Time
	HasModification  bool
	Name             string
}

func (MTPFileEntryPayload) Kind() Kind { return MTPFileEntry }

// DecodeMTP dispatches between the volume and file-entry sub-variants on
// the byte at body offset 3.
func DecodeMTP(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 4 {
		return Decoded{}, ferr.New(ferr.Unsupported, "mtp item shorter than sub-type field")
	}
	if raw[3] == mtpVolumeSubType {
		return decodeMTPVolume(raw, ctx)
	}
	return decodeMTPFileEntry(raw, ctx)
}

func decodeMTPVolume(raw []byte, ctx Context) (Decoded, error) {
	name, err := strtext.Extract(raw, 4, strtext.Utf16Le, 0, nil, ctx.MaxLen)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "mtp volume name truncated", err)
	}
	return Decoded{
		Payload:  MTPVolumePayload{Name: name.Value},
		Consumed: 4 + name.Size,
	}, nil
}

func decodeMTPFileEntry(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 20 {
		return Decoded{}, ferr.New(ferr.Unsupported, "mtp file entry shorter than fixed layout")
	}
	objectID, err := strtext.Extract(raw, 4, strtext.Utf16Le, 0, nil, ctx.MaxLen)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "mtp object identifier truncated", err)
	}
	cursor := 4 + objectID.Size

	created, hasCreated, err := guidtime.DecodeFiletime(raw, cursor)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "mtp creation filetime out of bounds", err)
	}
	cursor += 8

	modified, hasModified, err := guidtime.DecodeFiletime(raw, cursor)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "mtp modification filetime out of bounds", err)
	}
	cursor += 8

	name, err := strtext.Extract(raw, cursor, strtext.Utf16Le, 0, nil, ctx.MaxLen)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "mtp object name truncated", err)
	}
	cursor += name.Size

	return Decoded{
		Payload: MTPFileEntryPayload{
			ObjectIdentifier: objectID.Value,
			CreationTime:     created,
			HasCreationTime:  hasCreated,
			ModificationTime: modified,
			HasModification:  hasModified,
			Name:             name.Value,
		},
		Consumed: cursor,
	}, nil
}
