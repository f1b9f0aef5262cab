package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/strtext"
)

// NetworkLocationPayload is the 0x40-0x4f class_type family (§4.5): a
// UNC/network share location with optionally-present description and
// comment strings gated by flag bits (SUPPLEMENTED FEATURES §5 adds
// HasDriveLetter, read from the same flags byte).
type NetworkLocationPayload struct {
	Flags       byte
	Location    string
	Description *string
	Comment     *string
}

func (NetworkLocationPayload) Kind() Kind { return NetworkLocation }

// HasDriveLetter reports whether the location was mapped to a local
// drive letter (SUPPLEMENTED FEATURES §5, libfwsi_network_location.c).
func (p NetworkLocationPayload) HasDriveLetter() bool {
	return p.Flags&consts.NetworkLocationHasDriveLetterBit != 0
}

// DecodeNetworkLocation reads the flags byte at body offset 4 (offset 3
// is an unused byte, libfwsi_network_location_values_read_data), the
// mandatory ANSI location string starting at offset 5, and then the
// description/comment strings present only when their flag bit is set.
func DecodeNetworkLocation(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 6 {
		return Decoded{}, ferr.New(ferr.Unsupported, "network location item shorter than fixed layout")
	}
	flags := raw[4]

	loc, err := strtext.Extract(raw, 5, strtext.Ansi, ctx.Codepage, ctx.Codec, ctx.MaxLen)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "network location string truncated", err)
	}
	cursor := 5 + loc.Size

	payload := NetworkLocationPayload{Flags: flags, Location: loc.Value}

	if flags&consts.NetworkLocationHasDescriptionBit != 0 {
		desc, err := strtext.Extract(raw, cursor, strtext.Ansi, ctx.Codepage, ctx.Codec, ctx.MaxLen)
		if err != nil {
			return Decoded{}, ferr.Wrap(ferr.Unsupported, "network location description truncated", err)
		}
		value := desc.Value
		payload.Description = &value
		cursor += desc.Size
	}

	if flags&consts.NetworkLocationHasCommentBit != 0 {
		comment, err := strtext.Extract(raw, cursor, strtext.Ansi, ctx.Codepage, ctx.Codec, ctx.MaxLen)
		if err != nil {
			return Decoded{}, ferr.Wrap(ferr.Unsupported, "network location comment truncated", err)
		}
		value := comment.Value
		payload.Comment = &value
		cursor += comment.Size
	}

	return Decoded{Payload: payload, Consumed: cursor}, nil
}
