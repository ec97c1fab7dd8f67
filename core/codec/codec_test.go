package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlateCodec_RoundTrip(t *testing.T) {
	c := NewFlate()

	tests := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"Short", "hello"},
		{"RecordMap", `{"e0":["melvorD:Sword","abc"],"e1":["melvorD:Shield","xyz"]}`},
		{"Unicode", "runes: ᚠᚢᚦ — 符文"},
		{"Repetitive", strings.Repeat(`{"e0":["melvorD:Sword","abc"]}`, 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, mapping, err := c.Compress(tt.text)
			require.NoError(t, err)

			got, err := c.Decompress(blob, mapping)
			require.NoError(t, err)
			assert.Equal(t, tt.text, got)
		})
	}
}

func TestFlateCodec_TextEncoding(t *testing.T) {
	c := NewFlate()

	blob := []byte{0x00, 0xff, 0x10, 0x80, 0x7f}
	text := c.EncodeToText(blob)

	// Storage slots hold plain strings; the encoded form must stay printable ASCII.
	for _, r := range text {
		assert.True(t, r >= '+' && r <= 'z', "unexpected rune %q in encoded text", r)
	}

	got, err := c.DecodeFromText(text)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestFlateCodec_DecodeFromText_Invalid(t *testing.T) {
	c := NewFlate()

	_, err := c.DecodeFromText("not%%base64!!")
	assert.Error(t, err)
}

func TestFlateCodec_CompressionShrinksRepetitiveInput(t *testing.T) {
	c := NewFlate()

	text := strings.Repeat(`{"e7":["melvorF:DragonPlatebody","mkp"]}`, 100)
	blob, _, err := c.Compress(text)
	require.NoError(t, err)
	assert.Less(t, len(blob), len(text))
}
