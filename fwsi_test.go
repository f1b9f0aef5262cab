package fwsi

import (
	"testing"
	"time"

	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/extension"
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/guidtime"
	"github.com/forensicfmt/fwsi-go/pkg/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u16le(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func u32le(v uint32) []byte { return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)} }
func u64le(v uint64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}
func ansiNul(s string) []byte { return append([]byte(s), 0) }
func utf16leNul(s string) []byte {
	var out []byte
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return append(out, 0, 0)
}

// S1 — CD-burn staging list header.
func TestScenarioCDBurnStagingList(t *testing.T) {
	raw := []byte{0xc0, 0x00, 0x01, 0x00, 0x41, 0x75, 0x67, 0x4d, 0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}
	raw = append(raw, make([]byte, 194-len(raw))...)

	it, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), it.ClassType)
	assert.Equal(t, variant.CDBurn, it.ItemType)
	cb := it.Payload.(variant.CDBurnPayload)
	assert.Equal(t, uint32(4), cb.Discriminator)
}

// S2 — File-entry with long-name 0xbeef0004 block.
func TestScenarioFileEntryWithLongNameBlock(t *testing.T) {
	fatDate := uint16(28<<9 | 1<<5 | 2)
	fatTime := uint16(3<<11 | 4<<5 | 2)
	fatRaw := uint32(fatDate)<<16 | uint32(fatTime)

	body := []byte{0x32, 0} // class_type file entry, offset3 unused byte
	body = append(body, u32le(512)...)
	body = append(body, u32le(fatRaw)...)
	body = append(body, u16le(0x20)...)
	body = append(body, ansiNul("README.TXT")...) // 11 bytes, odd cursor -> pad follows
	body = append(body, 0)                         // pad byte, word-aligns the extension chain

	blockBody := append(u32le(0), u32le(0)...) // fat creation/access time, both unset
	blockBody = append(blockBody, 0, 0)        // reserved (version 8)
	blockBody = append(blockBody, u64le(0x0001000000000005)...)
	blockBody = append(blockBody, make([]byte, 8)...) // reserved trailing the file reference
	blockBody = append(blockBody, utf16leNul("Readme.txt")...)

	block := append(u16le(uint16(8+len(blockBody))), u16le(8)...)
	block = append(block, u32le(consts.SignatureBeef0004)...)
	block = append(block, blockBody...)

	body = append(body, block...)
	body = append(body, 0, 0) // extension chain sentinel

	raw := append(u16le(uint16(2+len(body))), body...)

	it, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, variant.FileEntry, it.ItemType)
	fe := it.Payload.(variant.FileEntryPayload)
	assert.Equal(t, uint32(512), fe.FileSize)
	assert.Equal(t, "README.TXT", fe.PrimaryName)

	modTime, ok, err := guidtime.DecodeFATTime(u32le(fatRaw), 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Date(2008, time.January, 2, 3, 4, 4, 0, time.Local), modTime)

	require.Len(t, it.ExtensionBlocks, 1)
	fex := it.ExtensionBlocks[0].Payload.(extension.FileEntryExtensionPayload)
	require.NotNil(t, fex.LongName)
	assert.Equal(t, "Readme.txt", *fex.LongName)
	require.NotNil(t, fex.FileReference)
	assert.Equal(t, uint64(0x0001000000000005), *fex.FileReference)
}

// S3 — Control-panel category.
func TestScenarioControlPanelCategory(t *testing.T) {
	body := []byte{0x00, 0x00} // offset3 unused byte
	body = append(body, u32le(0x39de2184)...)
	body = append(body, u32le(5)...)
	raw := append(u16le(uint16(2+len(body))), body...)

	it, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, variant.ControlPanelCategory, it.ItemType)
	cc := it.Payload.(variant.ControlPanelCategoryPayload)
	assert.Equal(t, uint32(5), cc.Identifier)
	assert.Equal(t, "System and Security", cc.Label())
}

func controlPanelCategoryItem(id uint32) []byte {
	body := []byte{0x00, 0x00}
	body = append(body, u32le(0x39de2184)...)
	body = append(body, u32le(id)...)
	return append(u16le(uint16(2+len(body))), body...)
}

// S4 — Network location with flags.
func TestScenarioNetworkLocationWithFlags(t *testing.T) {
	body := []byte{consts.ClassTypeNetworkLow + 1, 0} // offset3 unused byte
	body = append(body, 0xc0)
	body = append(body, ansiNul(`\\server\share`)...)
	body = append(body, ansiNul("Docs")...)
	body = append(body, ansiNul("shared drive")...)
	body = append(body, u16le(0)...) // trailing u16, ignored

	raw := append(u16le(uint16(2+len(body))), body...)

	it, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, variant.NetworkLocation, it.ItemType)
	nl := it.Payload.(variant.NetworkLocationPayload)
	assert.Equal(t, `\\server\share`, nl.Location)
	require.NotNil(t, nl.Description)
	assert.Equal(t, "Docs", *nl.Description)
	require.NotNil(t, nl.Comment)
	assert.Equal(t, "shared drive", *nl.Comment)
}

// S5 — List terminator.
func TestScenarioListTerminator(t *testing.T) {
	stream := append(controlPanelCategoryItem(1), controlPanelCategoryItem(2)...)
	stream = append(stream, 0, 0)

	list, err := DecodeList(stream)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count())
}

// S6 — Truncated size prefix.
func TestScenarioTruncatedSizePrefix(t *testing.T) {
	stream := append(u16le(288), make([]byte, 98)...)

	list, err := DecodeList(stream)
	require.Error(t, err)
	var fe *ferr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ferr.Truncated, fe.Kind)
	assert.Equal(t, 0, list.Count())
}
