// Package fwsi decodes the Windows Shell Item and Shell Item List binary
// formats: the structures embedded in LNK shortcuts, jump lists, and MRU
// registry values that record where a shell object used to point.
package fwsi

import (
	"github.com/forensicfmt/fwsi-go/pkg/codepage"
	"github.com/forensicfmt/fwsi-go/pkg/consts"
	"github.com/forensicfmt/fwsi-go/pkg/item"
	"github.com/forensicfmt/fwsi-go/pkg/itemlist"
	"github.com/forensicfmt/fwsi-go/pkg/observer"
	"github.com/go-logr/logr"
)

// Options holds the decode-time configuration every entry point
// threads through to the variant and extension-block decoders.
type Options struct {
	codepage        int
	codec           codepage.Codepage
	logger          logr.Logger
	strictChecksum  bool
	maxStringLength int
}

// Option configures an Options value.
type Option func(*Options)

// WithCodepage sets the ANSI codepage identifier used for non-Unicode
// string fields (§6). Defaults to Windows-1252.
func WithCodepage(id int) Option {
	return func(o *Options) { o.codepage = id }
}

// WithCodec attaches a codepage.Codepage collaborator for decoding ANSI
// strings under the configured codepage. Without one, ANSI strings
// decode as Latin-1 (§4.3).
func WithCodec(codec codepage.Codepage) Option {
	return func(o *Options) { o.codec = codec }
}

// WithLogger attaches a logr.Logger; decoders report through it via the
// Observer collaborator (§9). Without one, decoding runs silently.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// WithStrictChecksum changes how a ChecksumMismatch (the 0xbeef0004
// offset-to-version back-reference, §4.4 step 7) is handled: instead of
// being reported through the Observer with the decoded values kept, it
// fails that block's decode, so the block is kept with
// extension.UnknownPayload. Decode and DecodeList still succeed; the
// mismatch is not returned to the caller as an error.
func WithStrictChecksum(strict bool) Option {
	return func(o *Options) { o.strictChecksum = strict }
}

// WithMaxStringLength caps any scanned string (§4.1).
// Zero or negative falls back to the package default.
func WithMaxStringLength(n int) Option {
	return func(o *Options) { o.maxStringLength = n }
}

func resolve(opts []Option) Options {
	o := Options{codepage: consts.DefaultCodepage, maxStringLength: consts.MaxStringLength}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) itemContext() item.Context {
	return item.Context{
		Codepage:   o.codepage,
		Codec:      o.codec,
		Observer:   observer.New(o.logger),
		MaxLen:     o.maxStringLength,
		StrictMode: o.strictChecksum,
	}
}

// Decode parses a single shell item from raw, which must begin with the
// item's u16 size prefix (§4.6).
func Decode(raw []byte, opts ...Option) (*item.Item, error) {
	o := resolve(opts)
	return item.Decode(raw, o.itemContext())
}

// DecodeList parses a shell item list from stream, walking items until
// the zero-length sentinel or end of stream (§4.7).
func DecodeList(stream []byte, opts ...Option) (*itemlist.ItemList, error) {
	o := resolve(opts)
	return itemlist.Decode(stream, o.itemContext())
}
