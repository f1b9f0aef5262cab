// Package codepage defines the ANSI->Unicode conversion collaborator
// (§1, §9): the core only carries a codepage identifier and calls into
// this abstract interface. The actual per-codepage translation tables
// (Windows-125x, KOI8-R/U, ISO-8859-*) are an external concern; this
// package ships only the interface and a Latin-1 fallback so the core
// works with zero configuration.
package codepage

import "github.com/forensicfmt/fwsi-go/pkg/consts"

// Codepage decodes ANSI bytes under a given codepage identifier into a
// Go string. Implementations must not panic on malformed input.
type Codepage interface {
	Decode(codepageID int, raw []byte) (string, error)
}

// Latin1 is the zero-configuration fallback used when no Codepage
// collaborator is attached: every byte maps directly to the Unicode code
// point of the same value (§4.3: "if the codepage collaborator is absent,
// return the raw bytes as Latin-1").
type Latin1 struct{}

func (Latin1) Decode(_ int, raw []byte) (string, error) {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

// IsSupported reports whether id is one of the enumerated codepages in §6.
func IsSupported(id int) bool {
	switch id {
	case consts.CodepageASCII, consts.CodepageKOI8R, consts.CodepageKOI8U,
		consts.CodepageWindows874, consts.CodepageWindows932, consts.CodepageWindows936,
		consts.CodepageWindows949, consts.CodepageWindows950,
		consts.CodepageWindows1250, consts.CodepageWindows1251, consts.CodepageWindows1252,
		consts.CodepageWindows1253, consts.CodepageWindows1254, consts.CodepageWindows1255,
		consts.CodepageWindows1256, consts.CodepageWindows1257, consts.CodepageWindows1258:
		return true
	}
	return consts.IsISO8859(id)
}
