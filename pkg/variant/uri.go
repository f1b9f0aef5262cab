package variant

import (
	"time"

	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/guidtime"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
	"github.com/forensicfmt/fwsi-go/pkg/strtext"
)

// URIHasURLFlag marks that a URI string trails the fixed layout. No
// retrieved original_source file documents this variant's flags field
// (libfwsi_uri_sub_values.c describes a different, flagless sub-item), so
// the bit position is an undecided open question (DESIGN.md) rather than
// a grounded fact; this is this library's arbitrary but fixed choice.
const URIHasURLFlag uint32 = 0x00000002

// URIPayload is the 0x61 class_type item (§4.5): a URI shell item
// carrying flags, a modification FILETIME at body offset 22, and an
// optional trailing URL gated by URIHasURLFlag.
type URIPayload struct {
	Flags                uint32
	ModificationTime     time.Time
	HasModificationTime  bool
	URL                  *string
}

func (URIPayload) Kind() Kind { return URI }

// DecodeURI requires at least 38 bytes (§4.5): anything shorter is
// Unsupported rather than a hard parse failure, since the variant is
// still identifiable by class_type.
func DecodeURI(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 38 {
		return Decoded{}, ferr.New(ferr.Unsupported, "uri item shorter than fixed layout")
	}

	flags, err := primitives.U32LE(raw, 3)
	if err != nil {
		return Decoded{}, err
	}

	modTime, hasModTime, err := guidtime.DecodeFiletime(raw, 22)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "uri modification filetime out of bounds", err)
	}

	payload := URIPayload{
		Flags:               flags,
		ModificationTime:    modTime,
		HasModificationTime: hasModTime,
	}
	cursor := 30

	if flags&URIHasURLFlag != 0 {
		url, err := strtext.Extract(raw, cursor, strtext.Utf16Le, 0, nil, ctx.MaxLen)
		if err != nil {
			return Decoded{}, ferr.Wrap(ferr.Unsupported, "uri url truncated", err)
		}
		value := url.Value
		payload.URL = &value
		cursor += url.Size
	}

	return Decoded{Payload: payload, Consumed: cursor}, nil
}
