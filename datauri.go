package jpegorient

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDataURI is returned for strings which aren't of the form
// "data:<mime type>;base64,<payload>".
var ErrMalformedDataURI = errors.New("malformed data URI")

const dataScheme = "data:"

// DefaultChunkSize is the number of bytes handed to the base64 encoder
// at a time.
const DefaultChunkSize = 8192

// Blob is a byte buffer with a MIME type.
type Blob struct {
	Data []byte
	Type string
}

// NewBlob creates a Blob holding a copy of data.
func NewBlob(data []byte, mimeType string) Blob {
	cpy := make([]byte, len(data))
	copy(cpy, data)
	return Blob{Data: cpy, Type: mimeType}
}

// Codec converts between byte buffers and base64 data URIs.
type Codec struct {
	Encoding  *base64.Encoding
	ChunkSize int
}

// DefaultCodec uses standard base64 with padding, as in RFC 2397.
var DefaultCodec = Codec{Encoding: base64.StdEncoding, ChunkSize: DefaultChunkSize}

// Nil Encoding means standard base64.
func (c Codec) encoding() *base64.Encoding {
	if c.Encoding == nil {
		return base64.StdEncoding
	}
	return c.Encoding
}

// Decode a payload, also accepting one whose final '=' padding is missing.
func (c Codec) decodePayload(payload string) ([]byte, error) {
	enc := c.encoding()
	buf, err := enc.DecodeString(payload)
	if err != nil && len(payload)%4 != 0 {
		if raw, rawErr := enc.WithPadding(base64.NoPadding).DecodeString(payload); rawErr == nil {
			return raw, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("data URI payload: %w", err)
	}
	return buf, nil
}

// Encode returns a data URI with buf as its payload. The buffer is
// encoded ChunkSize bytes at a time.
func (c Codec) Encode(buf []byte, mimeType string) string {
	chunk := c.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	var sb strings.Builder
	sb.Grow(len(dataScheme) + len(mimeType) + len(";base64,") + c.encoding().EncodedLen(len(buf)))
	sb.WriteString(dataScheme)
	sb.WriteString(mimeType)
	sb.WriteString(";base64,")
	// The encoder carries partial 3-byte groups between writes, so
	// the chunk size needn't be a multiple of 3.
	enc := base64.NewEncoder(c.encoding(), &sb)
	for len(buf) > 0 {
		n := chunk
		if n > len(buf) {
			n = len(buf)
		}
		enc.Write(buf[:n]) // strings.Builder doesn't fail
		buf = buf[n:]
	}
	enc.Close()
	return sb.String()
}

// Decode returns the payload of a data URI. The MIME type is ignored.
func (c Codec) Decode(uri string) ([]byte, error) {
	_, payload, err := splitDataURI(uri)
	if err != nil {
		return nil, err
	}
	return c.decodePayload(payload)
}

// DecodeBlob returns the payload of a data URI with its MIME type.
func (c Codec) DecodeBlob(uri string) (Blob, error) {
	header, payload, err := splitDataURI(uri)
	if err != nil {
		return Blob{}, err
	}
	mimeType, _, found := strings.Cut(header, ";")
	if !found {
		return Blob{}, fmt.Errorf("%w: no ';' after MIME type", ErrMalformedDataURI)
	}
	buf, err := c.decodePayload(payload)
	if err != nil {
		return Blob{}, err
	}
	return Blob{Data: buf, Type: mimeType}, nil
}

// Split a data URI into the part between "data:" and the last comma, and
// the payload following it.
func splitDataURI(uri string) (string, string, error) {
	if !IsDataURI(uri) {
		return "", "", fmt.Errorf("%w: missing %q prefix", ErrMalformedDataURI, dataScheme)
	}
	rest := uri[len(dataScheme):]
	comma := strings.LastIndexByte(rest, ',')
	if comma < 0 {
		return "", "", fmt.Errorf("%w: no ',' before payload", ErrMalformedDataURI)
	}
	return rest[:comma], rest[comma+1:], nil
}

// IsDataURI reports whether s starts with the data scheme, in any case.
func IsDataURI(s string) bool {
	return len(s) >= len(dataScheme) && strings.EqualFold(s[:len(dataScheme)], dataScheme)
}

// EncodeDataURI encodes buf as a data URI using DefaultCodec.
func EncodeDataURI(buf []byte, mimeType string) string {
	return DefaultCodec.Encode(buf, mimeType)
}

// DecodeDataURI decodes a data URI's payload using DefaultCodec.
func DecodeDataURI(uri string) ([]byte, error) {
	return DefaultCodec.Decode(uri)
}

// DecodeDataURIToBlob decodes a data URI's payload and MIME type using
// DefaultCodec.
func DecodeDataURIToBlob(uri string) (Blob, error) {
	return DefaultCodec.DecodeBlob(uri)
}
