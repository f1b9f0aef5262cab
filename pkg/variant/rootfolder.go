package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/guidtime"
)

// RootFolderPayload is the fixed 20-byte layout
// {type:u8, sort_index:u8, guid:[u8;16]} (§4.5).
type RootFolderPayload struct {
	SortIndex             uint8
	ShellFolderIdentifier guidtime.GUID
}

func (RootFolderPayload) Kind() Kind { return RootFolder }

// DecodeRootFolder expects raw to begin at offset 0 of the item body
// (raw[2] is the class_type already classified by the dispatcher).
func DecodeRootFolder(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 20 {
		return Decoded{}, ferr.New(ferr.Unsupported, "root folder item shorter than fixed layout")
	}
	sortIndex := raw[3]
	guid, err := guidtime.DecodeGUID(raw, 4)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "root folder guid out of bounds", err)
	}
	return Decoded{
		Payload:  RootFolderPayload{SortIndex: sortIndex, ShellFolderIdentifier: guid},
		Consumed: 20,
	}, nil
}
