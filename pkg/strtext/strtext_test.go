package strtext

import (
	"testing"

	"github.com/forensicfmt/fwsi-go/pkg/ferr"
)

func TestExtractAnsiLatin1Fallback(t *testing.T) {
	buf := append([]byte("README.TXT"), 0, 'x', 'x')
	got, err := Extract(buf, 0, Ansi, 1252, nil, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != "README.TXT" {
		t.Errorf("Value = %q, want README.TXT", got.Value)
	}
	if got.Size != len("README.TXT")+1 {
		t.Errorf("Size = %d, want %d", got.Size, len("README.TXT")+1)
	}
}

func TestExtractUTF16LE(t *testing.T) {
	name := "Readme.txt"
	buf := make([]byte, 0, len(name)*2+2)
	for _, r := range name {
		buf = append(buf, byte(r), 0)
	}
	buf = append(buf, 0, 0)

	got, err := Extract(buf, 0, Utf16Le, 0, nil, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != name {
		t.Errorf("Value = %q, want %q", got.Value, name)
	}
	if got.Size != len(buf) {
		t.Errorf("Size = %d, want %d", got.Size, len(buf))
	}
}

func TestExtractUTF16IllFormedSurrogate(t *testing.T) {
	// An unpaired high surrogate (0xD800) followed by the NUL terminator.
	buf := []byte{0x00, 0xd8, 0x00, 0x00}
	got, err := Extract(buf, 0, Utf16Le, 0, nil, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != "�" {
		t.Errorf("Value = %q, want replacement character", got.Value)
	}
}

func TestExtractOversize(t *testing.T) {
	buf := make([]byte, 100)
	for i := range buf {
		buf[i] = 'A' // no NUL anywhere, so the cap is reached first
	}
	if _, err := Extract(buf, 0, Ansi, 1252, nil, 4); !ferr.Is(err, ferr.Oversize) {
		t.Errorf("expected Oversize, got %v", err)
	}
}
