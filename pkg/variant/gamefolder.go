package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/guidtime"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
)

// GameFolderPayload is the "GFSI"-signed class_type 0x01 item (§4.5): a
// game-library folder entry identified by GUID, with trailing
// implementation-defined bytes retained verbatim (SUPPLEMENTED FEATURES
// §7 adds ExtraData rather than discarding them, since
// libfwsi_game_folder_values.c only ever debug-prints the trailing u64).
type GameFolderPayload struct {
	Identifier guidtime.GUID
	Unknown    uint64
	extraData  []byte
}

func (GameFolderPayload) Kind() Kind { return GameFolder }

// ExtraData returns any bytes trailing the fixed GUID+u64 layout
// (SUPPLEMENTED FEATURES §7).
func (p GameFolderPayload) ExtraData() []byte { return p.extraData }

// DecodeGameFolder reads the "GFSI" signature at body offset 4, the
// 16-byte identifier GUID at offset 8, and a trailing u64 at offset 24
// (libfwsi_game_folder_values_read_data: data_size >= 32).
func DecodeGameFolder(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 32 || !primitives.Eq(raw, 4, consts.GameFolderSignature) {
		return Decoded{}, ferr.New(ferr.SignatureMismatch, "game folder signature mismatch")
	}

	guid, err := guidtime.DecodeGUID(raw, 8)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "game folder guid out of bounds", err)
	}
	unknown, err := primitives.U64LE(raw, 24)
	if err != nil {
		return Decoded{}, err
	}

	var extra []byte
	if len(raw) > 32 {
		extra = append([]byte(nil), raw[32:]...)
	}

	return Decoded{
		Payload: GameFolderPayload{
			Identifier: guid,
			Unknown:    unknown,
			extraData:  extra,
		},
		Consumed: len(raw),
	}, nil
}
