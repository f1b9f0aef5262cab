package item

import (
	"testing"

	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/observer"
	"github.com/forensicfmt/fwsi-go/pkg/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u16le(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func u32le(v uint32) []byte { return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)} }

func withSizePrefix(body []byte) []byte {
	full := append(u16le(uint16(len(body)+2)), body...)
	return full
}

func testCtx() Context { return Context{Observer: observer.Discard(), MaxLen: 256} }

func TestDecodeRootFolderWithNoExtensionBlocks(t *testing.T) {
	body := append([]byte{consts.ClassTypeRootFolderHigh, 0x00}, make([]byte, 16)...)
	raw := withSizePrefix(body)

	it, err := Decode(raw, testCtx())
	require.NoError(t, err)
	assert.Equal(t, variant.RootFolder, it.ItemType)
	assert.Empty(t, it.ExtensionBlocks)
	assert.Equal(t, int(raw[0])|int(raw[1])<<8, len(it.Raw))
}

func TestDecodeControlPanelCategoryWithExtensionChain(t *testing.T) {
	body := []byte{consts.ClassTypeControlPanelCategory, 0} // offset3 is an unused byte
	body = append(body, u32le(consts.ControlPanelCategorySignature)...)
	body = append(body, u32le(3)...)

	// Append a 0xbeef0003 extension block (8-byte header + 16-byte guid
	// body) and a zero-size sentinel.
	ext := u16le(24)
	ext = append(ext, u16le(1)...)
	ext = append(ext, u32le(consts.SignatureBeef0003)...)
	ext = append(ext, make([]byte, 16)...)
	ext = append(ext, u16le(0)...)

	raw := withSizePrefix(append(body, ext...))

	it, err := Decode(raw, testCtx())
	require.NoError(t, err)
	assert.Equal(t, variant.ControlPanelCategory, it.ItemType)
	require.Len(t, it.ExtensionBlocks, 1)
	assert.Equal(t, consts.SignatureBeef0003, it.ExtensionBlocks[0].Signature)
}

func TestDecodeTwoByteItemIsUnknown(t *testing.T) {
	raw := u16le(2)
	it, err := Decode(raw, testCtx())
	require.NoError(t, err)
	assert.Equal(t, variant.Unknown, it.ItemType)
	assert.Equal(t, byte(0), it.ClassType)
}

func TestDecodeTruncatedItemSize(t *testing.T) {
	raw := append(u16le(100), consts.ClassTypeRootFolderLow, 0)
	_, err := Decode(raw, testCtx())
	require.Error(t, err)
}

func TestDecodeUnknownClassTypeFallsBack(t *testing.T) {
	body := []byte{0xee, 0, 0, 0}
	raw := withSizePrefix(body)

	it, err := Decode(raw, testCtx())
	require.NoError(t, err)
	assert.Equal(t, variant.Unknown, it.ItemType)
}
