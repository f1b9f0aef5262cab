package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/guidtime"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
)

// ControlPanelCategoryPayload is the class_type 0x00 item carrying the
// 0x39de2184 signature and a category identifier 0-11 (§4.5).
type ControlPanelCategoryPayload struct {
	Identifier uint32
}

func (ControlPanelCategoryPayload) Kind() Kind { return ControlPanelCategory }

// Label returns the Control Panel category label for Identifier, or ""
// if it falls outside the known 0-11 range (SUPPLEMENTED FEATURES §1).
func (p ControlPanelCategoryPayload) Label() string {
	return consts.ControlPanelCategoryLabels[p.Identifier]
}

// DecodeControlPanelCategory reads the signature at body offset 4 (offset
// 3 is an unused byte between class_type and the signature, per the
// fixture `0c 00 00 ?? 84 21 de 39 05 00 00 00`) and the category
// identifier at offset 8.
func DecodeControlPanelCategory(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 12 {
		return Decoded{}, ferr.New(ferr.Unsupported, "control panel category item shorter than fixed layout")
	}
	signature, err := primitives.U32LE(raw, 4)
	if err != nil {
		return Decoded{}, err
	}
	if signature != consts.ControlPanelCategorySignature {
		return Decoded{}, ferr.New(ferr.SignatureMismatch, "control panel category signature mismatch")
	}
	identifier, err := primitives.U32LE(raw, 8)
	if err != nil {
		return Decoded{}, err
	}
	return Decoded{
		Payload:  ControlPanelCategoryPayload{Identifier: identifier},
		Consumed: 12,
	}, nil
}

// ControlPanelItemPayload is the class_type 0x71 item: a control panel
// applet identified by its GUID at body offset 14.
type ControlPanelItemPayload struct {
	Identifier guidtime.GUID
}

func (ControlPanelItemPayload) Kind() Kind { return ControlPanelItem }

// DecodeControlPanelItem reads the 16-byte applet GUID at body offset 14
// (§4.5): the bytes preceding it mirror a FileEntry-shaped header that
// this variant does not otherwise interpret.
func DecodeControlPanelItem(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 30 {
		return Decoded{}, ferr.New(ferr.Unsupported, "control panel item shorter than fixed layout")
	}
	guid, err := guidtime.DecodeGUID(raw, 14)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "control panel item guid out of bounds", err)
	}
	return Decoded{
		Payload:  ControlPanelItemPayload{Identifier: guid},
		Consumed: 30,
	}, nil
}
