package field

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExpirationTimeRendering(t *testing.T) {
	e := ExpirationTime(0)
	require.Equal(t, "19700101-00:00:00", e.String())

	e = ExpirationTimeOf(time.Date(2024, time.March, 5, 17, 30, 1, 0, time.UTC))
	require.Equal(t, "20240305-17:30:01", e.String())
	require.Equal(t, `"20240305-17:30:01"`, e.JSON(false))
	require.Equal(t, "20240305-17:30:01", e.Time().Format(utcLayout))
}

func TestExpirationTimeParse(t *testing.T) {
	var e ExpirationTime
	e.Parse("86400s")
	require.Equal(t, "19700102-00:00:00", e.String())
	e.Parse("later")
	require.Equal(t, ExpirationTime(0), e)
}

func TestExpirationTimeWire(t *testing.T) {
	b := make([]byte, 4)
	ExpirationTime(0x0a0b0c0d).Encode(b)
	require.Equal(t, []byte{0x0d, 0x0c, 0x0b, 0x0a}, b)
	var out ExpirationTime
	require.Equal(t, 4, out.Decode(b))
	require.Equal(t, ExpirationTime(0x0a0b0c0d), out)
}

func TestFormatUTCOutOfRange(t *testing.T) {
	require.Equal(t, "", formatUTC(1<<40))
	require.Equal(t, "", formatUTC(-(1 << 40)))
}

func TestTransactionTimePacking(t *testing.T) {
	tt := NewTransactionTime(1700000000, 123456)
	require.Equal(t, uint32(1700000000), tt.Seconds())
	require.Equal(t, uint32(123456), tt.Micros())
	require.Equal(t, TransactionTime(uint64(123456)<<32|1700000000), tt)
}

func TestTransactionTimeFormat(t *testing.T) {
	tt := NewTransactionTime(1700000000, 42)
	tests := []struct {
		precision int
		want      string
	}{
		{precision: -3, want: "20231114-22:13:20"},
		{precision: 0, want: "20231114-22:13:20"},
		{precision: 3, want: "20231114-22:13:20.000"},
		{precision: 6, want: "20231114-22:13:20.000042"},
		{precision: 8, want: "20231114-22:13:20.00004200"},
		{precision: 9, want: "20231114-22:13:20.000042000"},
		{precision: 15, want: "20231114-22:13:20.000042000"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tt.Format(tc.precision), "precision %d", tc.precision)
	}
	require.Equal(t, "20231114-22:13:20.000042", tt.String())
	require.Equal(t, `"20231114-22:13:20.000042"`, tt.JSON(true))
}

func TestTransactionTimeWideMicros(t *testing.T) {
	tt := NewTransactionTime(0, 1234567)
	require.Equal(t, "19700101-00:00:00.123456", tt.String())
	require.Equal(t, "19700101-00:00:00.123456000", tt.Format(9))
	require.Equal(t, "19700101-00:00:00.12", tt.Format(2))
}

func TestTransactionTimeOf(t *testing.T) {
	at := time.Date(2025, time.January, 2, 3, 4, 5, 678901234, time.UTC)
	tt := TransactionTimeOf(at)
	require.Equal(t, "20250102-03:04:05.678901", tt.String())
	require.True(t, tt.Time().Equal(at.Truncate(time.Microsecond)))
}

func TestTransactionTimeWire(t *testing.T) {
	tt := NewTransactionTime(7, 9)
	b := make([]byte, tt.Size())
	tt.Encode(b)
	require.Equal(t, []byte{7, 0, 0, 0, 9, 0, 0, 0}, b)
	var out TransactionTime
	out.Decode(b)
	require.Equal(t, tt, out)
}
