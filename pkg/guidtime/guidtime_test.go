package guidtime

import (
	"testing"
	"time"
)

func TestDecodeGUID(t *testing.T) {
	// df2fce13-25ec-45bb-9d4c-cecd47c2430c laid out in Windows mixed-endian
	// wire order (Data1/2/3 little-endian, Data4 big-endian bytes).
	buf := []byte{
		0x13, 0xce, 0x2f, 0xdf,
		0xec, 0x25,
		0xbb, 0x45,
		0x9d, 0x4c, 0xce, 0xcd, 0x47, 0xc2, 0x43, 0x0c,
	}
	g, err := DecodeGUID(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := g.String(), "df2fce13-25ec-45bb-9d4c-cecd47c2430c"; got != want {
		t.Errorf("GUID.String() = %q, want %q", got, want)
	}
	if g.IsZero() {
		t.Error("non-zero GUID reported as zero")
	}

	zero := GUID{}
	if !zero.IsZero() {
		t.Error("zero GUID not reported as zero")
	}
}

func TestDecodeFiletimeZeroIsUnset(t *testing.T) {
	buf := make([]byte, 8)
	_, ok, err := DecodeFiletime(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("zero FILETIME should decode as unset")
	}
}

func TestDecodeFiletimeValue(t *testing.T) {
	// 2008-01-02 03:04:05 UTC, encoded as 100ns ticks since 1601-01-01.
	want := time.Date(2008, time.January, 2, 3, 4, 5, 0, time.UTC)
	ticks := uint64(want.Unix()-filetimeEpoch.Unix()) * 10000000
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(ticks >> (8 * i))
	}

	got, ok, err := DecodeFiletime(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	if !got.Equal(want) {
		t.Errorf("DecodeFiletime = %v, want %v", got, want)
	}
}

func TestDecodeFATTimeZeroIsUnset(t *testing.T) {
	buf := make([]byte, 4)
	_, ok, err := DecodeFATTime(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("zero FAT time should decode as unset")
	}
}

func TestDecodeFATTimeValue(t *testing.T) {
	// 2008-01-02 03:04:04 (FAT 2-second resolution truncates :05 to :04)
	year := uint16(2008-1980) << 9
	month := uint16(1) << 5
	day := uint16(2)
	date := year | month | day

	hour := uint16(3) << 11
	minute := uint16(4) << 5
	second := uint16(5 / 2)
	tm := hour | minute | second

	raw := uint32(date)<<16 | uint32(tm)
	buf := []byte{byte(raw), byte(raw >> 8), byte(raw >> 16), byte(raw >> 24)}

	got, ok, err := DecodeFATTime(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	want := time.Date(2008, time.January, 2, 3, 4, 4, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("DecodeFATTime = %v, want %v", got, want)
	}
}
