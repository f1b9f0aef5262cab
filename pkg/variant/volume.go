package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/guidtime"
	"github.com/forensicfmt/fwsi-go/pkg/strtext"
)

// VolumePayload covers the 0x20/0x2e/0x2f class_type family (§4.5): either
// a shell-folder GUID volume, a volume identified by drive letter/name, or
// a bare removable/fixed-drive volume.
type VolumePayload struct {
	ShellFolderIdentifier *guidtime.GUID
	Name                  *string
}

func (VolumePayload) Kind() Kind { return Volume }

// DecodeVolume dispatches on class_type (raw[2]) among the volume
// subvariants. raw begins at item offset 0, with the 2-byte size prefix
// still in place, so class_type is raw[2].
func DecodeVolume(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 3 {
		return Decoded{}, ferr.New(ferr.Unsupported, "volume item shorter than class_type field")
	}
	classType := raw[2]

	switch {
	case classType == consts.ClassTypeVolumeByName:
		return decodeVolumeByName(raw, ctx)
	case classType == consts.ClassTypeVolumeGUID:
		return decodeVolumeGUID(raw, ctx)
	default:
		return decodeVolumeDrive(raw, ctx)
	}
}

// decodeVolumeGUID handles class_type 0x20 only (My Computer): a 16-byte
// shell-folder GUID at body offset 14. Every other class_type in
// 0x20-0x2f besides 0x2e is a plain fixed/removable-drive volume and goes
// through decodeVolumeDrive instead.
func decodeVolumeGUID(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 30 {
		return Decoded{}, ferr.New(ferr.Unsupported, "guid volume item shorter than fixed layout")
	}
	guid, err := guidtime.DecodeGUID(raw, 14)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "volume guid out of bounds", err)
	}
	return Decoded{
		Payload:  VolumePayload{ShellFolderIdentifier: &guid},
		Consumed: 30,
	}, nil
}

// decodeVolumeByName handles class_type 0x2e: an ANSI drive/volume name
// starting immediately at body offset 3.
func decodeVolumeByName(raw []byte, ctx Context) (Decoded, error) {
	extracted, err := strtext.Extract(raw, 3, strtext.Ansi, ctx.Codepage, ctx.Codec, ctx.MaxLen)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "volume-by-name string truncated", err)
	}
	name := extracted.Value
	return Decoded{
		Payload:  VolumePayload{Name: &name},
		Consumed: 3 + extracted.Size,
	}, nil
}

// decodeVolumeDrive handles the generic removable/fixed drive variants: a
// short ANSI drive string ("C:\") immediately following the class_type
// byte. Any bytes after the string are left to the dispatcher's
// extension-block walk.
func decodeVolumeDrive(raw []byte, ctx Context) (Decoded, error) {
	extracted, err := strtext.Extract(raw, 3, strtext.Ansi, ctx.Codepage, ctx.Codec, ctx.MaxLen)
	if err != nil {
		return Decoded{}, ferr.Wrap(ferr.Unsupported, "drive volume string truncated", err)
	}
	name := extracted.Value
	return Decoded{
		Payload:  VolumePayload{Name: &name},
		Consumed: 3 + extracted.Size,
	}, nil
}
