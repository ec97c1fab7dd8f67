// Package codec provides the reversible text codec used to fit record maps
// into the bounded profile storage slot.
//
// The codec is treated as a black box by its callers: Compress/Decompress
// must round-trip exactly for any finite input, and EncodeToText/
// DecodeFromText turn the binary blob into something safe to store in a
// plain string slot.
//
// # Implementation
//
// The default implementation compresses with DEFLATE (klauspost/compress)
// and encodes with standard base64. DEFLATE carries its own Huffman tables
// inside the blob, so the auxiliary mapping returned by Compress is empty;
// the envelope format still transports it for codecs that need one.
//
// # Usage
//
//	c := codec.NewFlate()
//	blob, mapping, _ := c.Compress(jsonString)
//	text := c.EncodeToText(blob)
package codec
