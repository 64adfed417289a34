package frame

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/danmuck/lsewire/internal/protocol/message"
	"github.com/danmuck/lsewire/internal/testutil/testlog"
	"github.com/rs/zerolog/log"
)

func orderWithID(id string) *message.NewOrder {
	m := message.NewNewOrder()
	m.ClientOrderID.Set(id)
	return m
}

func TestWriteReadFrameRoundTrip(t *testing.T) {
	in := orderWithID("ORD-1")
	var buf bytes.Buffer
	if err := WriteMessage(&buf, in, DefaultLimits()); err != nil {
		t.Fatalf("write message: %v", err)
	}
	out, err := ReadFrame(&buf, DefaultLimits())
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if !bytes.Equal(out, message.Marshal(in)) {
		t.Fatalf("frame mismatch")
	}
}

func TestReaderStream(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	for _, id := range []string{"A", "B"} {
		if err := WriteMessage(&buf, orderWithID(id), DefaultLimits()); err != nil {
			t.Fatalf("write message: %v", err)
		}
	}
	if err := WriteMessage(&buf, message.NewExecutionReport(), DefaultLimits()); err != nil {
		t.Fatalf("write message: %v", err)
	}

	r := NewReader(&buf, message.DefaultRegistry(), DefaultLimits(), log.Logger)
	var names []string
	for {
		m, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		names = append(names, m.Name())
	}
	if len(names) != 3 || names[0] != "NewOrder" || names[2] != "ExecutionReport" {
		t.Fatalf("unexpected messages: %v", names)
	}
	if r.Count() != 3 {
		t.Fatalf("count: %d", r.Count())
	}
}

func TestReadFrameShortHeader(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader([]byte{message.StartByte, 2}), DefaultLimits())
	if !errors.Is(err, ErrShortHeader) {
		t.Fatalf("expected ErrShortHeader, got %v", err)
	}
}

func TestReadFrameEmptyIsEOF(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader(nil), DefaultLimits())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReadFrameBadStart(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader([]byte{0x7f, 1, 0, 'D'}), DefaultLimits())
	if !errors.Is(err, ErrBadStart) {
		t.Fatalf("expected ErrBadStart, got %v", err)
	}
}

func TestReadFrameBadLength(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader([]byte{message.StartByte, 0, 0, 'D'}), DefaultLimits())
	if !errors.Is(err, ErrBadLength) {
		t.Fatalf("expected ErrBadLength, got %v", err)
	}
}

func TestReadFrameTooLarge(t *testing.T) {
	b := message.Marshal(orderWithID("X"))
	_, err := ReadFrame(bytes.NewReader(b), Limits{MaxMessageBytes: 64})
	if !errors.Is(err, ErrMessageTooLarge) {
		t.Fatalf("expected ErrMessageTooLarge, got %v", err)
	}
	if err := WriteMessage(io.Discard, orderWithID("X"), Limits{MaxMessageBytes: 64}); !errors.Is(err, ErrMessageTooLarge) {
		t.Fatalf("expected ErrMessageTooLarge on write, got %v", err)
	}
}

func TestReadFrameTruncatedBody(t *testing.T) {
	b := message.Marshal(orderWithID("X"))
	_, err := ReadFrame(bytes.NewReader(b[:60]), DefaultLimits())
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestErrorReason(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader([]byte{0x7f, 1, 0, 'D'}), DefaultLimits())
	if got := errorReason(err); got != "bad_start" {
		t.Fatalf("reason: %s", got)
	}
	b := message.Marshal(orderWithID("X"))
	_, err = ReadFrame(bytes.NewReader(b[:60]), DefaultLimits())
	if got := errorReason(err); got != "truncated" {
		t.Fatalf("reason: %s", got)
	}
}
