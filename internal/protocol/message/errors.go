package message

import "errors"

var (
	ErrShortBuffer = errors.New("protocol: buffer shorter than message")
	ErrTruncated   = errors.New("protocol: truncated message")
)
