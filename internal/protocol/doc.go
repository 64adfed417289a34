// Package protocol groups the order entry wire contract.
//
// Ownership boundary:
// - field: fixed-width primitives and their byte codecs
// - enum: closed code vocabularies
// - render: stream and JSON rendering
// - message: header, layouts and the type registry
// - frame: splitting a byte stream into messages
package protocol
