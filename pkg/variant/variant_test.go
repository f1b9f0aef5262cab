package variant

import (
	"testing"

	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/observer"
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

func testCtx() Context { return Context{Observer: observer.Discard(), MaxLen: 256} }

func TestDecodeRootFolder(t *testing.T) {
	raw := append([]byte{0, 0, 0x1f, 0x42}, make([]byte, 16)...)
	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	rf := d.Payload.(RootFolderPayload)
	assert.Equal(t, uint8(0x42), rf.SortIndex)
	assert.Equal(t, 20, d.Consumed)
}

func TestDecodeVolumeGUIDMyComputer(t *testing.T) {
	raw := append([]byte{0, 0, 0x20}, make([]byte, 11)...) // pad up to offset 14
	raw = append(raw, make([]byte, 16)...)                 // shell-folder guid

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	v := d.Payload.(VolumePayload)
	require.NotNil(t, v.ShellFolderIdentifier)
	assert.Equal(t, 30, d.Consumed)
}

func TestDecodeVolumeDrive(t *testing.T) {
	raw := []byte{0, 0, 0x23}
	raw = append(raw, ansiNul(`C:\`)...)

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	v := d.Payload.(VolumePayload)
	assert.Nil(t, v.ShellFolderIdentifier)
	require.NotNil(t, v.Name)
	assert.Equal(t, `C:\`, *v.Name)
}

func TestDecodeVolumeByName(t *testing.T) {
	raw := []byte{0, 0, 0x2e}
	raw = append(raw, ansiNul(`D:\Data`)...)

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	v := d.Payload.(VolumePayload)
	require.NotNil(t, v.Name)
	assert.Equal(t, `D:\Data`, *v.Name)
}

func TestDecodeFileEntryUnicodeName(t *testing.T) {
	raw := []byte{0, 0, 0x35, 0} // class_type: file entry, unicode bit set; offset3 unused flags byte
	raw = append(raw, u32le(1024)...)
	raw = append(raw, u32le(0)...)
	raw = append(raw, u16le(0)...)
	raw = append(raw, utf16leNul("Readme.txt")...)

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	fe := d.Payload.(FileEntryPayload)
	assert.Equal(t, "Readme.txt", fe.PrimaryName)
	assert.True(t, fe.IsDirectory)
	assert.Equal(t, uint32(1024), fe.FileSize)
}

func TestDecodeFileEntryAnsiNamePad(t *testing.T) {
	raw := []byte{0, 0, 0x30, 0}
	raw = append(raw, u32le(1)...)
	raw = append(raw, u32le(0)...)
	raw = append(raw, u16le(0)...)
	raw = append(raw, ansiNul("ab")...) // "ab\0" is 3 bytes: consumed would land odd, needs pad
	raw = append(raw, 0)                 // pad byte

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	fe := d.Payload.(FileEntryPayload)
	assert.Equal(t, "ab", fe.PrimaryName)
	assert.Equal(t, len(raw), d.Consumed)
}

func TestDecodeNetworkLocationWithFlags(t *testing.T) {
	raw := []byte{0, 0, 0x40, 0, 0xc8} // offset3 unused, flags@4: description + comment + drive letter bits
	raw = append(raw, ansiNul(`\\server\share`)...)
	raw = append(raw, ansiNul("desc")...)
	raw = append(raw, ansiNul("comment")...)

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	nl := d.Payload.(NetworkLocationPayload)
	assert.Equal(t, `\\server\share`, nl.Location)
	require.NotNil(t, nl.Description)
	assert.Equal(t, "desc", *nl.Description)
	require.NotNil(t, nl.Comment)
	assert.Equal(t, "comment", *nl.Comment)
	assert.True(t, nl.HasDriveLetter())
}

func TestDecodeControlPanelCategory(t *testing.T) {
	raw := []byte{0, 0, 0x00, 0} // offset3 is an unused byte before the signature
	raw = append(raw, u32le(0x39de2184)...)
	raw = append(raw, u32le(5)...)

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	cc := d.Payload.(ControlPanelCategoryPayload)
	assert.Equal(t, uint32(5), cc.Identifier)
	assert.Equal(t, "System and Security", cc.Label())
}

func TestDecodeCDBurnDiscriminatorFour(t *testing.T) {
	raw := []byte{0xc0, 0x00, 0x01, 0x00, 0x41, 0x75, 0x67, 0x4d, 0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}
	raw = append(raw, make([]byte, 8)...) // pad out to offset 20 for the sub-list region

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	cb := d.Payload.(CDBurnPayload)
	assert.Equal(t, uint32(4), cb.Discriminator)
	assert.Equal(t, 20, cb.SubItemListOffset)
}

func TestDecodeCDBurnDiscriminatorTwo(t *testing.T) {
	raw := []byte{0, 0, 0x01, 0}
	raw = append(raw, []byte("AugM")...)
	raw = append(raw, u32le(2)...)
	raw = append(raw, make([]byte, 4)...) // unknown3
	raw = append(raw, u16le(0)...)        // sub-list at offset 16

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	cb := d.Payload.(CDBurnPayload)
	assert.Equal(t, 16, cb.SubItemListOffset)
}

func TestDecodeGameFolderExtraData(t *testing.T) {
	raw := []byte{0, 0, 0x01, 0}
	raw = append(raw, []byte("GFSI")...)
	raw = append(raw, make([]byte, 16)...) // guid
	raw = append(raw, u64le(7)...)
	raw = append(raw, []byte("extra")...)

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	gf := d.Payload.(GameFolderPayload)
	assert.Equal(t, uint64(7), gf.Unknown)
	assert.Equal(t, []byte("extra"), gf.ExtraData())
}

func TestDecodeUsersPropertyViewWithGUIDAndBlob(t *testing.T) {
	raw := []byte{0, 0, consts.ClassTypeUsersPropertyView1, usersPropertyViewHasGUIDBit}
	raw = append(raw, []byte{0xaa, 0xbb, 0xcc, 0xdd}...) // signature
	raw = append(raw, make([]byte, 16)...)               // known-folder guid
	raw = append(raw, u32le(3)...)                       // property store length prefix
	raw = append(raw, []byte("xyz")...)
	raw = append(raw, []byte("trailing garbage not part of the blob")...)

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	upv := d.Payload.(UsersPropertyViewPayload)
	require.NotNil(t, upv.KnownFolderIdentifier)
	assert.Equal(t, []byte("xyz"), upv.PropertyStore)
	assert.Equal(t, 31, d.Consumed)
}

func TestDecodeUsersPropertyViewNoGUID(t *testing.T) {
	raw := []byte{0, 0, consts.ClassTypeUsersPropertyView2, 0}
	raw = append(raw, []byte{0, 0, 0, 0}...) // signature
	raw = append(raw, u32le(0)...)           // empty property store
	raw = append(raw, []byte("extra")...)

	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	upv := d.Payload.(UsersPropertyViewPayload)
	assert.Nil(t, upv.KnownFolderIdentifier)
	assert.Empty(t, upv.PropertyStore)
	assert.Equal(t, 12, d.Consumed)
}

func TestDecodeUnknownClassType(t *testing.T) {
	raw := []byte{0, 0, 0xee, 0, 0, 0}
	d, err := Dispatch(raw, testCtx())
	require.NoError(t, err)
	assert.IsType(t, UnknownPayload{}, d.Payload)
}

func TestDecodeCompressedFolder(t *testing.T) {
	raw := []byte{0, 0, 0x35}
	d, err := DecodeCompressedFolder(raw, testCtx())
	require.NoError(t, err)
	assert.IsType(t, CompressedFolderPayload{}, d.Payload)
	assert.Equal(t, 3, d.Consumed)
}

func TestDecodeURITooShortIsUnsupported(t *testing.T) {
	raw := make([]byte, 10)
	_, err := DecodeURI(raw, testCtx())
	require.Error(t, err)
}

func TestDecodeURIWithURL(t *testing.T) {
	raw := make([]byte, 30)
	raw[2] = 0x61
	copy(raw[3:7], u32le(URIHasURLFlag))
	copy(raw[22:30], u64le(0)) // unset filetime
	raw = append(raw, utf16leNul("http://example.com")...)

	d, err := DecodeURI(raw, testCtx())
	require.NoError(t, err)
	u := d.Payload.(URIPayload)
	assert.False(t, u.HasModificationTime)
	require.NotNil(t, u.URL)
	assert.Equal(t, "http://example.com", *u.URL)
}
