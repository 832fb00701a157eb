package crypto

import (
	"bytes"
	"encoding/binary"
	"errors"

	b58 "github.com/mr-tron/base58/base58"
)

type KeyType uint8

// enumeration of key type
const (
	_ KeyType = iota // skip zero
	KeyTypeAccountID
	KeyTypeSeed
)

var (
	ErrInvalidKey = errors.New("invalid key string")
)

// DexKey is the internal representation of various key hashes,
// Code identifies the type of a certain key hash.
type DexKey struct {
	Code KeyType
	Hash [32]byte
}

// DecodeKey decodes a base58 encoded key string to DexKey.
func DecodeKey(key string) (*DexKey, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	b, err := b58.Decode(key)
	if err != nil {
		return nil, ErrInvalidKey
	}

	var dexKey DexKey
	r := bytes.NewReader(b)
	err = binary.Read(r, binary.BigEndian, &dexKey)
	if err != nil {
		return nil, ErrInvalidKey
	}

	switch dexKey.Code {
	case KeyTypeAccountID:
		fallthrough
	case KeyTypeSeed:
		return &dexKey, nil
	}
	return nil, ErrInvalidKey
}

// EncodeKey encodes a DexKey to a base58 encoded key string.
func EncodeKey(dexKey *DexKey) string {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, dexKey)
	return b58.Encode(buf.Bytes())
}

// IsValidKey checks the validity of the supplied key string.
func IsValidKey(key string) bool {
	if _, err := DecodeKey(key); err != nil {
		return false
	}
	return true
}
