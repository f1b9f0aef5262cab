// Package variant implements the item-variant decoder set (§4.5),
// grounded on the teacher's pkg/directory.DirectoryRecord.Unmarshal
// (fixed-layout header fields decoded with per-field bounds checks, name
// extraction chosen by an encoding flag) and pkg/descriptor's fixed
// volume-descriptor-header decoders (signature-gated fixed records).
package variant

import (
	"github.com/forensicfmt/fwsi-go/pkg/codepage"
	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/observer"
)

var errShortItem = ferr.New(ferr.Unsupported, "item shorter than class_type field")

// Kind is the logical item-type tag (§3: Item.item_type).
type Kind int

const (
	Unknown Kind = iota
	RootFolder
	Volume
	FileEntry
	NetworkLocation
	CompressedFolder
	ControlPanel
	ControlPanelCategory
	ControlPanelItem
	Delegate
	URI
	UsersPropertyView
	CDBurn
	GameFolder
	MTPFileEntry
	MTPVolume
)

func (k Kind) String() string {
	switch k {
	case RootFolder:
		return "RootFolder"
	case Volume:
		return "Volume"
	case FileEntry:
		return "FileEntry"
	case NetworkLocation:
		return "NetworkLocation"
	case CompressedFolder:
		return "CompressedFolder"
	case ControlPanel:
		return "ControlPanel"
	case ControlPanelCategory:
		return "ControlPanelCategory"
	case ControlPanelItem:
		return "ControlPanelItem"
	case Delegate:
		return "Delegate"
	case URI:
		return "URI"
	case UsersPropertyView:
		return "UsersPropertyView"
	case CDBurn:
		return "CDBurn"
	case GameFolder:
		return "GameFolder"
	case MTPFileEntry:
		return "MTPFileEntry"
	case MTPVolume:
		return "MTPVolume"
	default:
		return "Unknown"
	}
}

// Context carries the collaborators a variant decoder needs: the ANSI
// codepage to decode with, the Codepage collaborator itself (possibly
// nil, §4.3), the debug Observer (possibly nil), and the string-length
// cap.
type Context struct {
	Codepage int
	Codec    codepage.Codepage
	Observer *observer.Observer
	MaxLen   int
}

func (c Context) trace(msg string, kv ...interface{}) {
	if c.Observer != nil {
		c.Observer.Trace(msg, kv...)
	}
}

// Payload is the tagged variant carried by an Item (§3).
type Payload interface {
	Kind() Kind
}

// Decoded is the result of a successful variant decode: the payload and
// the number of bytes of raw the fixed variant body consumed — the
// dispatcher starts extension-block parsing at this cursor (§4.6 step 3).
type Decoded struct {
	Payload  Payload
	Consumed int
}

// Dispatch classifies raw by class_type (raw[2], §4.6's classification
// table) and decodes the matching variant. raw is the item body
// beginning at its 2-byte size prefix; the size prefix itself is not
// reinterpreted here. Ties are broken in class_type order: CDBurn and
// GameFolder share class_type 0x01 and are told apart by their embedded
// signature, trying CDBurn first.
func Dispatch(raw []byte, ctx Context) (Decoded, error) {
	if len(raw) < 3 {
		return Decoded{}, errShortItem
	}
	classType := raw[2]

	switch {
	case classType == consts.ClassTypeControlPanelCategory:
		if d, err := DecodeControlPanelCategory(raw, ctx); err == nil {
			return d, nil
		}
		return Decoded{Payload: UnknownPayload{}, Consumed: len(raw)}, nil

	case classType == consts.ClassTypeCDBurnOrGameFolder:
		if d, err := DecodeCDBurn(raw, ctx); err == nil {
			return d, nil
		}
		if d, err := DecodeGameFolder(raw, ctx); err == nil {
			return d, nil
		}
		return Decoded{Payload: UnknownPayload{}, Consumed: len(raw)}, nil

	case classType >= consts.ClassTypeRootFolderLow && classType <= consts.ClassTypeRootFolderHigh:
		return DecodeRootFolder(raw, ctx)

	case classType >= consts.ClassTypeVolumeLow && classType <= consts.ClassTypeVolumeHigh:
		return DecodeVolume(raw, ctx)

	case classType >= consts.ClassTypeFileEntryLow && classType <= consts.ClassTypeFileEntryHigh:
		return DecodeFileEntry(raw, ctx)

	case classType >= consts.ClassTypeNetworkLow && classType <= consts.ClassTypeNetworkHigh,
		classType == consts.ClassTypeNetworkLocationAlt:
		if d, err := DecodeNetworkLocation(raw, ctx); err == nil {
			return d, nil
		}
		if d, err := DecodeCompressedFolder(raw, ctx); err == nil {
			return d, nil
		}
		return Decoded{Payload: UnknownPayload{}, Consumed: len(raw)}, nil

	case classType == consts.ClassTypeMTP:
		return DecodeMTP(raw, ctx)

	case classType == consts.ClassTypeURI:
		return DecodeURI(raw, ctx)

	case classType == consts.ClassTypeControlPanel:
		return DecodeControlPanelItem(raw, ctx)

	case classType == consts.ClassTypeDelegate:
		return DecodeDelegateItem(raw, ctx)

	case classType == consts.ClassTypeUsersPropertyView1, classType == consts.ClassTypeUsersPropertyView2:
		return DecodeUsersPropertyView(raw, ctx)

	default:
		return Decoded{Payload: UnknownPayload{}, Consumed: len(raw)}, nil
	}
}
