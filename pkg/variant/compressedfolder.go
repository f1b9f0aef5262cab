package variant

import "github.com/forensicfmt/fwsi-go/pkg/ferr"

// CompressedFolderPayload marks a zip/cab compressed-folder item. The
// format carries no additional fixed fields beyond class_type itself;
// any distinguishing data lives in trailing extension blocks (§4.5).
type CompressedFolderPayload struct{}

func (CompressedFolderPayload) Kind() Kind { return CompressedFolder }

// DecodeCompressedFolder consumes nothing beyond the 3-byte shared
// header; extension blocks, if present, are parsed by the dispatcher.
func DecodeCompressedFolder(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 3 {
		return Decoded{}, ferr.New(ferr.Unsupported, "compressed folder item shorter than class_type field")
	}
	return Decoded{Payload: CompressedFolderPayload{}, Consumed: 3}, nil
}
