package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Codec is a reversible string compressor plus binary-to-text encoder.
// Decompress(Compress(x)) must equal x for every finite input.
type Codec interface {
	// Compress shrinks text into a binary blob plus an auxiliary mapping.
	// The mapping may be empty when the blob is self-describing.
	Compress(text string) (blob []byte, mapping string, err error)
	// Decompress restores the original text from a blob and its mapping.
	Decompress(blob []byte, mapping string) (string, error)
	// EncodeToText converts a binary blob into storage-safe text.
	EncodeToText(blob []byte) string
	// DecodeFromText reverses EncodeToText.
	DecodeFromText(text string) ([]byte, error)
}

// flateCodec implements Codec with DEFLATE compression and base64 encoding.
type flateCodec struct {
	level int
}

// NewFlate returns the default codec (best-compression DEFLATE + base64).
func NewFlate() Codec {
	return &flateCodec{level: flate.BestCompression}
}

func (c *flateCodec) Compress(text string) ([]byte, string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, c.level)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create flate writer: %w", err)
	}
	if _, err := w.Write([]byte(text)); err != nil {
		return nil, "", fmt.Errorf("failed to compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to flush compressor: %w", err)
	}
	// DEFLATE blobs embed their own symbol tables; no external mapping.
	return buf.Bytes(), "", nil
}

func (c *flateCodec) Decompress(blob []byte, mapping string) (string, error) {
	_ = mapping
	r := flate.NewReader(bytes.NewReader(blob))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to decompress: %w", err)
	}
	return string(out), nil
}

func (c *flateCodec) EncodeToText(blob []byte) string {
	return base64.StdEncoding.EncodeToString(blob)
}

func (c *flateCodec) DecodeFromText(text string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode text blob: %w", err)
	}
	return blob, nil
}
