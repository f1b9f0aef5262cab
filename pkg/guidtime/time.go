package guidtime

import (
	"time"

	"github.com/forensicfmt/fwsi-go/pkg/ferr"
	"github.com/forensicfmt/fwsi-go/pkg/primitives"
)

// filetimeEpoch is 1601-01-01 00:00:00 UTC, the FILETIME anchor.
var filetimeEpoch = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// DecodeFiletime reads a little-endian u64 FILETIME (100ns ticks since
// 1601-01-01 UTC) at off. Zero denotes "unset" and decodes to the zero
// time.Time with ok=false, per §4.2.
func DecodeFiletime(buf []byte, off int) (t time.Time, ok bool, err error) {
	raw, err := primitives.U64LE(buf, off)
	if err != nil {
		return time.Time{}, false, ferr.Wrap(ferr.OutOfBounds, "filetime read out of bounds", err)
	}
	if raw == 0 {
		return time.Time{}, false, nil
	}
	// Go through Unix seconds: a time.Duration spans only about 292 years,
	// too short for the distance from 1601 to present-day dates.
	const ticksPerSecond = 10000000
	secs := int64(raw/ticksPerSecond) + filetimeEpoch.Unix()
	nanos := int64(raw%ticksPerSecond) * 100
	return time.Unix(secs, nanos).UTC(), true, nil
}

// DecodeFATTime reads a packed 32-bit FAT date/time at off: high 16 bits
// date, low 16 bits time, 2-second resolution, local time with no zone
// information. Zero denotes "unset" per §4.2.
func DecodeFATTime(buf []byte, off int) (t time.Time, ok bool, err error) {
	raw, err := primitives.U32LE(buf, off)
	if err != nil {
		return time.Time{}, false, ferr.Wrap(ferr.OutOfBounds, "fat time read out of bounds", err)
	}
	if raw == 0 {
		return time.Time{}, false, nil
	}

	date := uint16(raw >> 16)
	tm := uint16(raw & 0xffff)

	year := int(date>>9) + 1980
	month := time.Month((date >> 5) & 0x0f)
	day := int(date & 0x1f)
	hour := int(tm >> 11)
	minute := int((tm >> 5) & 0x3f)
	second := int(tm&0x1f) * 2

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false, ferr.New(ferr.InvalidArgument, "invalid FAT date/time field")
	}

	return time.Date(year, month, day, hour, minute, second, 0, time.Local), true, nil
}
