// Package consts holds fixed values from the shell item wire format:
// extension-block signatures, class-type bit masks, codepage identifiers
// and the control-panel category label table.
package consts

// Extension-block signatures (ExtensionBlock.signature, a little-endian u32
// read from offset 4 of the block header).
const (
	SignatureBeef0000 uint32 = 0xbeef0000
	SignatureBeef0003 uint32 = 0xbeef0003
	SignatureBeef0004 uint32 = 0xbeef0004
	SignatureBeef0005 uint32 = 0xbeef0005
	SignatureBeef0006 uint32 = 0xbeef0006
	SignatureBeef0013 uint32 = 0xbeef0013
	SignatureBeef0014 uint32 = 0xbeef0014
	SignatureBeef0019 uint32 = 0xbeef0019
	SignatureBeef0025 uint32 = 0xbeef0025
	SignatureBeef0026 uint32 = 0xbeef0026
)

// ExtensionBlockHeaderSize is the fixed u16 size + u16 version + u32
// signature header every extension block begins with.
const ExtensionBlockHeaderSize = 8

// MaxStringLength is the default hard cap (§4.1) on any scanned string;
// it exists to keep adversarial input from driving an unbounded
// allocation. Overridable via fwsi.WithMaxStringLength.
const MaxStringLength = 64 * 1024 * 1024

// Fixed signatures embedded inside specific item variants.
const (
	ControlPanelCategorySignature uint32 = 0x39de2184
	CDBurnSignature                      = "AugM"
	GameFolderSignature                  = "GFSI"
)

// CURIClassIdentifier marks a custom-URI property-bag extension inside a
// 0xbeef0014 block (§4.4).
const CURIClassIdentifier = "df2fce13-25ec-45bb-9d4c-cecd47c2430c"

// Class-type bit masks (raw[2] of an item, §4.6).
const (
	ClassTypeControlPanelCategory byte = 0x00
	ClassTypeCDBurnOrGameFolder   byte = 0x01
	ClassTypeRootFolderLow        byte = 0x10
	ClassTypeRootFolderHigh       byte = 0x1f
	ClassTypeVolumeLow            byte = 0x20
	ClassTypeVolumeHigh           byte = 0x2f
	ClassTypeVolumeGUID           byte = 0x20
	ClassTypeVolumeByName         byte = 0x2e
	ClassTypeFileEntryLow         byte = 0x30
	ClassTypeFileEntryHigh        byte = 0x3f
	ClassTypeNetworkLow           byte = 0x40
	ClassTypeNetworkHigh          byte = 0x4f
	ClassTypeMTP                  byte = 0x52
	ClassTypeURI                  byte = 0x61
	ClassTypeControlPanel         byte = 0x71
	ClassTypeDelegate             byte = 0x74
	ClassTypeUsersPropertyView1   byte = 0x7a
	ClassTypeUsersPropertyView2   byte = 0xb1
	ClassTypeNetworkLocationAlt   byte = 0xc3
)

// FileEntry directory bit and encoding bit of class_type (§4.5).
const (
	FileEntryDirectoryBit byte = 0x01
	FileEntryUnicodeBit   byte = 0x04
)

// Network-location flag bits (§4.5, SUPPLEMENTED FEATURES §5).
const (
	NetworkLocationHasDescriptionBit byte = 0x80
	NetworkLocationHasCommentBit     byte = 0x40
	NetworkLocationHasDriveLetterBit byte = 0x08
)

// Codepage identifiers (§6). Default is Windows1252.
const (
	CodepageASCII      = 20127
	CodepageKOI8R       = 20866
	CodepageKOI8U       = 21866
	CodepageWindows874  = 874
	CodepageWindows932  = 932
	CodepageWindows936  = 936
	CodepageWindows949  = 949
	CodepageWindows950  = 950
	CodepageWindows1250 = 1250
	CodepageWindows1251 = 1251
	CodepageWindows1252 = 1252
	CodepageWindows1253 = 1253
	CodepageWindows1254 = 1254
	CodepageWindows1255 = 1255
	CodepageWindows1256 = 1256
	CodepageWindows1257 = 1257
	CodepageWindows1258 = 1258

	DefaultCodepage = CodepageWindows1252
)

// ISO88591Base is the first of the ISO-8859-1..16 range (28591..28606,
// skipping 28602, per §6).
const ISO88591Base = 28591

// IsISO8859 reports whether id falls in the ISO-8859-1..16 codepage range.
func IsISO8859(id int) bool {
	if id == ISO88591Base+11 { // 28602 is not assigned
		return false
	}
	return id >= ISO88591Base && id <= ISO88591Base+15
}

// ControlPanelCategoryLabels maps the 0-11 identifiers to their Control
// Panel category label (Glossary; SUPPLEMENTED FEATURES §1).
var ControlPanelCategoryLabels = map[uint32]string{
	0:  "All",
	1:  "Appearance and Personalization",
	2:  "Hardware and Sound",
	3:  "Network and Internet",
	4:  "Sounds Speech and Audio Devices",
	5:  "System and Security",
	6:  "Clock Language and Region",
	7:  "Ease of Access",
	8:  "Programs",
	9:  "User Accounts",
	10: "Security Center",
	11: "Mobile PC",
}
