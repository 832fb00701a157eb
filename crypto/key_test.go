package crypto

import (
	"bytes"
	"encoding/binary"
	"testing"

	b58 "github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
)

// test encode/decode roundtrip of both key types
func TestKeyRoundtrip(t *testing.T) {
	for _, code := range []KeyType{KeyTypeAccountID, KeyTypeSeed} {
		tk := &DexKey{Code: code}
		copy(tk.Hash[:], []byte("05319d6e01057b489715b5c0cf9562059595a6d2"))

		b58code := EncodeKey(tk)
		assert.Equal(t, true, IsValidKey(b58code))

		decoded, err := DecodeKey(b58code)
		assert.Equal(t, nil, err)
		assert.Equal(t, tk, decoded)
	}
}

// test validity of supplied key
func TestKeyValidity(t *testing.T) {
	// test empty key string
	assert.Equal(t, false, IsValidKey(""))

	// test non-base58 key string
	assert.Equal(t, false, IsValidKey("0OIl"))

	// construct an invalid key type
	tk := DexKey{Code: KeyType(128)}
	copy(tk.Hash[:], []byte("05319d6e01057b489715b5c0cf9562059595a6d2"))

	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, tk)

	b58code := b58.Encode(buf.Bytes())
	assert.Equal(t, false, IsValidKey(b58code))
}
