package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

// test keypair generation
func TestKeypair(t *testing.T) {
	publicKey, seed, err := GetAccountKeypair()
	assert.Equal(t, nil, err)

	pk, err := DecodeKey(publicKey)
	assert.Equal(t, nil, err)
	assert.Equal(t, KeyTypeAccountID, pk.Code)

	sd, err := DecodeKey(seed)
	assert.Equal(t, nil, err)
	assert.Equal(t, KeyTypeSeed, sd.Code)
}

// test deterministic keypair derivation from seed
func TestKeypairFromSeed(t *testing.T) {
	seed, err := hex.DecodeString("3ac371907afa714b434af49b7a215fd1010d8561c22ef987a47e078549ef21a9")
	assert.Equal(t, nil, err)

	publicKey1, seedKey1, err := GetAccountKeypairFromSeed(seed)
	assert.Equal(t, nil, err)
	publicKey2, seedKey2, err := GetAccountKeypairFromSeed(seed)
	assert.Equal(t, nil, err)

	assert.Equal(t, publicKey1, publicKey2)
	assert.Equal(t, seedKey1, seedKey2)

	// seed of the wrong length is rejected
	_, _, err = GetAccountKeypairFromSeed(seed[:16])
	assert.NotEqual(t, nil, err)
}
