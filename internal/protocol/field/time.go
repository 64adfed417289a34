package field

import (
	"strconv"
	"strings"
	"time"

	"github.com/danmuck/lsewire/internal/protocol/render"
)

const utcLayout = "20060102-15:04:05"

// maxPrecision bounds the sub-second digits of TransactionTime.Format.
const maxPrecision = 9

// formatUTC renders seconds since the epoch, or "" when the calendar year
// falls outside 0..9999.
func formatUTC(sec int64) string {
	t := time.Unix(sec, 0).UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return ""
	}
	return t.Format(utcLayout)
}

// ExpirationTime is seconds since the epoch in 32 bits.
type ExpirationTime uint32

// ExpirationTimeOf truncates t to whole seconds.
func ExpirationTimeOf(t time.Time) ExpirationTime {
	return ExpirationTime(t.Unix())
}

// Parse scans a leading seconds literal; malformed input yields zero.
func (e *ExpirationTime) Parse(s string) {
	v, _ := scanUnsigned(s, 32)
	*e = ExpirationTime(v)
}

func (e ExpirationTime) Time() time.Time {
	return time.Unix(int64(e), 0).UTC()
}

// String renders YYYYMMDD-HH:MM:SS in UTC.
func (e ExpirationTime) String() string {
	return formatUTC(int64(e))
}

func (e ExpirationTime) JSON(bool) string {
	return render.Quote(e.String())
}

func (ExpirationTime) IsNull() bool { return false }

func (ExpirationTime) Size() int { return 4 }

func (e ExpirationTime) Encode(b []byte) int {
	ByteOrder.PutUint32(b, uint32(e))
	return 4
}

func (e *ExpirationTime) Decode(b []byte) int {
	*e = ExpirationTime(ByteOrder.Uint32(b))
	return 4
}

// TransactionTime packs seconds in the low 32 bits and microseconds in the
// high 32 bits.
type TransactionTime uint64

// NewTransactionTime packs sec and usec.
func NewTransactionTime(sec, usec uint32) TransactionTime {
	return TransactionTime(uint64(usec)<<32 | uint64(sec))
}

// TransactionTimeOf packs t at microsecond resolution.
func TransactionTimeOf(t time.Time) TransactionTime {
	return NewTransactionTime(uint32(t.Unix()), uint32(t.Nanosecond()/1000))
}

// Parse scans a leading packed literal; malformed input yields zero.
func (tt *TransactionTime) Parse(s string) {
	v, _ := scanUnsigned(s, 64)
	*tt = TransactionTime(v)
}

func (tt TransactionTime) Seconds() uint32 {
	return uint32(tt & 0xffffffff)
}

func (tt TransactionTime) Micros() uint32 {
	return uint32(tt >> 32)
}

// Time returns the UTC instant. Microsecond values beyond one second are
// carried into the seconds.
func (tt TransactionTime) Time() time.Time {
	return time.Unix(int64(tt.Seconds()), int64(tt.Micros())*1000).UTC()
}

// Format renders YYYYMMDD-HH:MM:SS followed by precision sub-second digits.
//
// precision is clamped to [0,9]. Only six microsecond digits exist; further
// requested digits are zeros.
func (tt TransactionTime) Format(precision int) string {
	out := formatUTC(int64(tt.Seconds()))
	if out == "" {
		return ""
	}
	precision = min(max(precision, 0), maxPrecision)
	if precision == 0 {
		return out
	}
	usec := strconv.FormatUint(uint64(tt.Micros()), 10)
	if len(usec) < 6 {
		usec = strings.Repeat("0", 6-len(usec)) + usec
	}
	usec = usec[:6]
	if precision <= 6 {
		return out + "." + usec[:precision]
	}
	return out + "." + usec + strings.Repeat("0", precision-6)
}

func (tt TransactionTime) String() string {
	return tt.Format(6)
}

func (tt TransactionTime) JSON(bool) string {
	return render.Quote(tt.String())
}

func (TransactionTime) IsNull() bool { return false }

func (TransactionTime) Size() int { return 8 }

func (tt TransactionTime) Encode(b []byte) int {
	ByteOrder.PutUint64(b, uint64(tt))
	return 8
}

func (tt *TransactionTime) Decode(b []byte) int {
	*tt = TransactionTime(ByteOrder.Uint64(b))
	return 8
}
