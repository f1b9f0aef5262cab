package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
)

// CDBurnPayload is the "AugM"-signed class_type 0x01 item (§4.5): a CD
// burn staging-folder entry carrying a raw embedded sub-item-list, kept
// as raw bytes; nothing in this module decodes it — the
// original implementation itself never parses this sub-list either,
// libfwsi_cdburn_values.c:247 only notes it as a TODO.
type CDBurnPayload struct {
	Discriminator     uint32
	SubItemListOffset int // 0 when Discriminator is neither 2 nor 4
	SubItemList       []byte
}

func (CDBurnPayload) Kind() Kind { return CDBurn }

// DecodeCDBurn reads the "AugM" signature at body offset 4 and the
// discriminator u32 at offset 8 (libfwsi_cdburn_values_read_data):
// discriminator 2 places the embedded sub-item-list at offset 16,
// discriminator 4 places it at offset 20; any other value means no
// sub-list is present (SUPPLEMENTED FEATURES §6).
func DecodeCDBurn(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 18 || !primitives.Eq(raw, 4, consts.CDBurnSignature) {
		return Decoded{}, ferr.New(ferr.SignatureMismatch, "cd burn signature mismatch")
	}

	discriminator, err := primitives.U32LE(raw, 8)
	if err != nil {
		return Decoded{}, err
	}

	payload := CDBurnPayload{Discriminator: discriminator}

	var offset int
	switch discriminator {
	case 2:
		offset = 16
	case 4:
		offset = 20
	}
	if offset > 0 && offset <= len(raw) {
		payload.SubItemListOffset = offset
		payload.SubItemList = append([]byte(nil), raw[offset:]...)
	}

	return Decoded{Payload: payload, Consumed: len(raw)}, nil
}
