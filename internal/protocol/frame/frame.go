// Package frame splits a byte stream into whole messages using the
// header start byte and length.
package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/lsewire/internal/observability"
	"github.com/danmuck/lsewire/internal/protocol/message"
	"github.com/rs/zerolog"
)

var (
	ErrBadStart        = errors.New("frame: bad start byte")
	ErrShortHeader     = errors.New("frame: short message header")
	ErrBadLength       = errors.New("frame: length smaller than header")
	ErrMessageTooLarge = errors.New("frame: message too large")
)

// Limits constrains frame decode/encode memory use.
type Limits struct {
	MaxMessageBytes int
}

func DefaultLimits() Limits {
	return Limits{MaxMessageBytes: 64 * 1024}
}

// ReadFrame reads one whole message image from r.
//
// io.EOF is returned only when r ends before the first header byte.
func ReadFrame(r io.Reader, limits Limits) ([]byte, error) {
	var head [message.HeaderSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortHeader
		}
		return nil, err
	}
	if head[0] != message.StartByte {
		return nil, fmt.Errorf("%w: 0x%02x", ErrBadStart, head[0])
	}

	h, err := message.ParseHeader(head[:])
	if err != nil {
		return nil, err
	}
	size := h.MessageSize()
	if size < message.HeaderSize {
		return nil, ErrBadLength
	}
	if size > limits.MaxMessageBytes {
		return nil, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, size, limits.MaxMessageBytes)
	}

	buf := make([]byte, size)
	copy(buf, head[:])
	if _, err := io.ReadFull(r, buf[message.HeaderSize:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("frame: read body: %w", err)
	}
	return buf, nil
}

// WriteMessage writes the wire image of m to w.
func WriteMessage(w io.Writer, m message.Message, limits Limits) error {
	if m.Size() > limits.MaxMessageBytes {
		return ErrMessageTooLarge
	}
	_, err := w.Write(message.Marshal(m))
	return err
}

// Reader decodes consecutive messages from a stream.
type Reader struct {
	r        *bufio.Reader
	registry *message.Registry
	limits   Limits
	logger   zerolog.Logger
	count    int
}

func NewReader(r io.Reader, registry *message.Registry, limits Limits, logger zerolog.Logger) *Reader {
	return &Reader{
		r:        bufio.NewReader(r),
		registry: registry,
		limits:   limits,
		logger:   logger.With().Str("component", "frame").Logger(),
	}
}

// Next returns the next message, or io.EOF at a clean end of stream.
func (r *Reader) Next() (message.Message, error) {
	b, err := ReadFrame(r.r, r.limits)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			observability.RecordFrameError(errorReason(err))
			r.logger.Error().Err(err).Int("index", r.count).Msg("read frame failed")
		}
		return nil, err
	}
	m, err := r.registry.Decode(b)
	if err != nil {
		observability.RecordFrameError(errorReason(err))
		return nil, err
	}
	observability.RecordDecoded(m.Name(), len(b))
	r.logger.Trace().Int("index", r.count).Str("layout", m.Name()).Int("size", len(b)).Msg("frame decoded")
	r.count++
	return m, nil
}

// Count is the number of messages returned so far.
func (r *Reader) Count() int {
	return r.count
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, ErrBadStart):
		return "bad_start"
	case errors.Is(err, ErrShortHeader):
		return "short_header"
	case errors.Is(err, ErrBadLength):
		return "bad_length"
	case errors.Is(err, ErrMessageTooLarge):
		return "too_large"
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, message.ErrTruncated):
		return "truncated"
	default:
		return "io"
	}
}
