package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/guidtime"
)

// DelegateItemPayload is the class_type 0x74 item (§4.5): a wrapper item
// that forwards to an inner shell item and a handler GUID; the inner
// item is retained raw since its own class_type drives its decode and
// this package does not recurse into the dispatcher.
type DelegateItemPayload struct {
	ItemIdentifier    guidtime.GUID
	HandlerIdentifier guidtime.GUID
	InnerItem         []byte
}

func (DelegateItemPayload) Kind() Kind { return Delegate }

// DecodeDelegateItem reads the item GUID at body offset 3 and the
// handler GUID at offset 19, retaining whatever trails as the inner
// item's raw bytes.
func DecodeDelegateItem(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 35 {
		return Decoded{}, ferr.New(ferr.Unsupported, "delegate item shorter than fixed layout")
	}
	itemGUID, err := guidtime.DecodeGUID(raw, 3)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "delegate item guid out of bounds", err)
	}
	handlerGUID, err := guidtime.DecodeGUID(raw, 19)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "delegate handler guid out of bounds", err)
	}

	var inner []byte
	if len(raw) > 35 {
		inner = append([]byte(nil), raw[35:]...)
	}

	return Decoded{
		Payload: DelegateItemPayload{
			ItemIdentifier:    itemGUID,
			HandlerIdentifier: handlerGUID,
			InnerItem:         inner,
		},
		Consumed: len(raw),
	}, nil
}
