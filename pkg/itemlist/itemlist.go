// Package itemlist implements the shell item list walker (§4.7),
// grounded on the teacher's pkg/directory walk in pkg/iso9660 (read a
// length-prefixed record, recurse until a sentinel or end-of-sector,
// retaining whatever was already decoded when the stream runs out).
package itemlist

import (
	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/item"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
)

// ItemList is an ordered sequence of decoded items (§3): a shortcut's
// target chain, a jump-list entry, or an MRU registry value's payload.
type ItemList struct {
	Items []*item.Item
}

// Decode walks stream from offset 0 (§4.7): read a u16 size, 0 means the
// list sentinel and ends the walk; otherwise slice that many bytes,
// decode them as one item (§4.6), and advance. A Truncated read is
// fatal to the walk but not to the items already decoded — they are
// still returned alongside the error.
func Decode(stream []byte, ctx item.Context) (*ItemList, error) {
	list := &ItemList{}
	cursor := 0

	for {
		if len(stream)-cursor < 2 {
			return list, nil
		}
		size, err := primitives.U16LE(stream, cursor)
		if err != nil {
			return list, nil
		}
		if size == 0 {
			return list, nil
		}
		if int(size) < 2 || cursor+int(size) > len(stream) {
			return list, ferr.New(ferr.Truncated, "item list entry truncated before its declared size")
		}

		raw, err := primitives.Bytes(stream, cursor, int(size))
		if err != nil {
			return list, ferr.Wrap(ferr.Truncated, "item list entry out of bounds", err)
		}

		it, err := item.Decode(raw, ctx)
		if err != nil {
			return list, ferr.Wrap(ferr.Truncated, "item list entry failed to decode", err)
		}
		list.Items = append(list.Items, it)
		cursor += int(size)
	}
}

// Bytes reserializes the list back into its wire form (SUPPLEMENTED
// FEATURES §8): the concatenation of every item's retained raw span
// followed by the zero-length sentinel. It is not guaranteed to be
// byte-identical to input that had trailing padding after the sentinel.
func (l *ItemList) Bytes() []byte {
	var out []byte
	for _, it := range l.Items {
		out = append(out, it.Raw...)
	}
	return append(out, 0, 0)
}

// Count returns the number of decoded items (§4.8 accessor layer).
func (l *ItemList) Count() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Get returns the item at i, or an OutOfBounds error (§4.8).
func (l *ItemList) Get(i int) (*item.Item, error) {
	if l == nil || i < 0 || i >= len(l.Items) {
		return nil, ferr.New(ferr.OutOfBounds, "item list index out of bounds")
	}
	return l.Items[i], nil
}
