package message

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Constructor returns a fresh message with its header and widths set.
type Constructor func() Message

// Registry maps header type codes to layouts. It is read-only once built.
type Registry struct {
	byType map[byte]Constructor
	logger zerolog.Logger
}

func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		byType: make(map[byte]Constructor),
		logger: logger.With().Str("component", "registry").Logger(),
	}
}

// DefaultRegistry knows every layout in this package.
func DefaultRegistry() *Registry {
	r := NewRegistry(log.Logger)
	r.Register(TypeNewOrder, func() Message { return NewNewOrder() })
	r.Register(TypeExecutionReport, func() Message { return NewExecutionReport() })
	return r
}

// Register binds messageType to c, replacing any earlier binding.
func (r *Registry) Register(messageType byte, c Constructor) {
	r.byType[messageType] = c
}

// New returns a fresh message for messageType.
func (r *Registry) New(messageType byte) (Message, bool) {
	c, ok := r.byType[messageType]
	if !ok {
		return nil, false
	}
	return c(), true
}

// Types returns the registered type codes.
func (r *Registry) Types() []byte {
	out := make([]byte, 0, len(r.byType))
	for t := range r.byType {
		out = append(out, t)
	}
	return out
}

// Decode reads one message from the start of b.
//
// A type code with no registered layout decodes as Unknown, sized by the
// header length.
func (r *Registry) Decode(b []byte) (Message, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}
	code := h.Type.Byte()
	m, ok := r.New(code)
	if !ok {
		r.logger.Warn().Str("type", fmt.Sprintf("%q", code)).Int("size", h.MessageSize()).Msg("unregistered message type")
		m = NewUnknown(h)
	} else if h.MessageSize() != m.Size() {
		r.logger.Debug().
			Str("layout", m.Name()).
			Int("declared", h.MessageSize()).
			Int("layout_size", m.Size()).
			Msg("header length differs from layout size")
	}
	if err := Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", m.Name(), err)
	}
	return m, nil
}
