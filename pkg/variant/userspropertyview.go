package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/guidtime"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
)

// UsersPropertyViewPayload is the class_type 0x7a/0xb1 item (§4.5): a
// known-folder GUID followed by an opaque property-store payload that
// this library retains verbatim rather than interpreting (the property
// system's own schema is out of scope, matching 0xbeef0005's treatment).
type UsersPropertyViewPayload struct {
	Signature             [4]byte
	KnownFolderIdentifier *guidtime.GUID
	PropertyStore         []byte
}

func (UsersPropertyViewPayload) Kind() Kind { return UsersPropertyView }

// usersPropertyViewHasGUIDBit gates the optional known-folder GUID off
// the offset-3 flags byte, modeled on the flag-gated optional strings
// NetworkLocation uses elsewhere in this format (no retrieved original_source has the real bit for this variant
// — DESIGN.md records this as an open decision).
const usersPropertyViewHasGUIDBit = 0x01

// DecodeUsersPropertyView reads the flags byte at offset 3, the 4-byte
// signature at offset 4 (§4.5: "signature byte pattern at offset 4",
// captured but not matched against a known magic — none was retrievable),
// an optional 16-byte known-folder GUID gated by
// usersPropertyViewHasGUIDBit, and then a u32-length-prefixed
// property-store blob.
func DecodeUsersPropertyView(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 8 {
		return Decoded{}, ferr.New(ferr.Unsupported, "users property view item shorter than signature field")
	}
	flags := raw[3]
	var sig [4]byte
	copy(sig[:], raw[4:8])

	payload := UsersPropertyViewPayload{Signature: sig}
	cursor := 8

	if flags&usersPropertyViewHasGUIDBit != 0 {
		if len(raw) < cursor+16 {
			return Decoded{}, ferr.New(ferr.Unsupported, "users property view guid out of bounds")
		}
		guid, err := guidtime.DecodeGUID(raw, cursor)
		if err != nil {
			return Decoded{}, ferr.Wrap(ferr.Unsupported, "users property view guid out of bounds", err)
		}
		payload.KnownFolderIdentifier = &guid
		cursor += 16
	}

	if len(raw) < cursor+4 {
		return Decoded{}, ferr.New(ferr.Unsupported, "users property view missing property store length prefix")
	}
	length, err := primitives.U32LE(raw, cursor)
	if err != nil {
		return Decoded{}, err
	}
	cursor += 4

	if cursor+int(length) > len(raw) {
		return Decoded{}, ferr.New(ferr.Truncated, "users property view property store overruns item")
	}
	payload.PropertyStore = append([]byte(nil), raw[cursor:cursor+int(length)]...)
	cursor += int(length)

	return Decoded{Payload: payload, Consumed: cursor}, nil
}
