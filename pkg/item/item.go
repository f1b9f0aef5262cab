// Package item implements the single-item decoder (§4.6), grounded on
// the teacher's pkg/directory.DirectoryRecord.Unmarshal (read a fixed
// header, branch on a type/flags byte, then walk an optional trailing
// system-use region) generalized to this format's class_type dispatch
// and extension-block chain.
package item

import (
	"github.com/forensicfmt/fwsi-go/pkg/codepage"
	"github.com/forensicfmt/fwsi-go/pkg/extension"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/observer"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
	"github.com/forensicfmt/fwsi-go/pkg/variant"
)

// Item is a single decoded shell item (§3): its classification, the
// decoded payload for that classification, any trailing extension
// blocks, and the exact raw bytes it was parsed from.
type Item struct {
	Raw             []byte
	ClassType       byte
	ItemType        variant.Kind
	Payload         variant.Payload
	ExtensionBlocks []*extension.Block
}

// Context carries the collaborators threaded through a decode: the
// ANSI codepage and its Codepage collaborator, the debug Observer, the
// string-length cap, and whether a checksum disagreement demotes the
// extension block to Unknown (the item decode itself still succeeds).
type Context struct {
	Codepage   int
	Codec      codepage.Codepage
	Observer   *observer.Observer
	MaxLen     int
	StrictMode bool
}

func (c Context) variantContext() variant.Context {
	return variant.Context{Codepage: c.Codepage, Codec: c.Codec, Observer: c.Observer, MaxLen: c.MaxLen}
}

func (c Context) extensionContext() extension.Context {
	return extension.Context{
		Codepage:   c.Codepage,
		Codec:      c.Codec,
		Observer:   c.Observer,
		MaxLen:     c.MaxLen,
		StrictMode: c.StrictMode,
	}
}

// Decode implements §4.6: read the u16 size prefix, classify by
// class_type, decode the matching variant body, then walk any trailing
// extension-block chain starting where the variant decoder stopped.
// raw is the exact span of one item, size prefix included — the caller
// (the list walker, or the root Decode entry point) is responsible for
// slicing that span out of a larger stream. A two-byte item (the size
// prefix with no class_type byte) is valid and classifies as Unknown
// (§4.6 step 1) rather than erroring.
func Decode(raw []byte, ctx Context) (*Item, error) {
	if len(raw) < 2 {
		return nil, ferr.New(ferr.Truncated, "item shorter than size prefix")
	}
	size, err := primitives.U16LE(raw, 0)
	if err != nil {
		return nil, err
	}
	if int(size) > len(raw) {
		return nil, ferr.New(ferr.Truncated, "item declares more bytes than are available")
	}
	if int(size) < 2 {
		return nil, ferr.New(ferr.InvalidArgument, "item size smaller than minimum header")
	}
	body := raw[:size]

	var classType byte
	var decoded variant.Decoded
	if len(body) < 3 {
		decoded = variant.Decoded{Payload: variant.UnknownPayload{}, Consumed: len(body)}
	} else {
		classType = body[2]
		decoded, err = variant.Dispatch(body, ctx.variantContext())
		if err != nil {
			ctx.trace("variant decode failed, falling back to unknown", "classType", classType, "error", err)
			decoded = variant.Decoded{Payload: variant.UnknownPayload{}, Consumed: len(body)}
		}
	}

	it := &Item{
		Raw:       append([]byte(nil), body...),
		ClassType: classType,
		ItemType:  decoded.Payload.Kind(),
		Payload:   decoded.Payload,
	}

	if decoded.Consumed < len(body) {
		blocks, err := extension.ParseChain(body, decoded.Consumed, ctx.extensionContext())
		if err != nil {
			ctx.trace("extension chain parse failed", "error", err)
		}
		it.ExtensionBlocks = blocks
	}

	return it, nil
}

func (c Context) trace(msg string, kv ...interface{}) {
	if c.Observer != nil {
		c.Observer.Trace(msg, kv...)
	}
}
