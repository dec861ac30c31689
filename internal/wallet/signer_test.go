package wallet

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"

	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known development key, never used with real funds.
const (
	testKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestNewKeySigner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		hexKey  string
		wantErr bool
	}{
		{"with 0x prefix", testKey, false},
		{"without prefix", strings.TrimPrefix(testKey, "0x"), false},
		{"not hex", "0xzz974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", true},
		{"too short", "0xac0974", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := NewKeySigner(tt.hexKey)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testAddress, s.Account())
		})
	}
}

func TestSignMessageRecovers(t *testing.T) {
	t.Parallel()

	s, err := NewKeySigner(testKey)
	require.NoError(t, err)

	sigHex, err := s.SignMessage(context.Background(), "bind-challenge-1234")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(sigHex, "0x"))

	sig, err := hex.DecodeString(sigHex[2:])
	require.NoError(t, err)
	require.Len(t, sig, 65)

	// Rotate r || s || v back to the recovery-code-first layout and recover
	// the signing key from the same envelope hash.
	compact := make([]byte, 65)
	compact[0] = sig[64]
	copy(compact[1:], sig[:64])

	pub, _, err := secpecdsa.RecoverCompact(compact, personalHash("bind-challenge-1234"))
	require.NoError(t, err)
	assert.Equal(t, testAddress, pubKeyAddress(pub))
}

func TestSignMessageDistinctPerMessage(t *testing.T) {
	t.Parallel()

	s, err := NewKeySigner(testKey)
	require.NoError(t, err)

	sig1, err := s.SignMessage(context.Background(), "challenge-a")
	require.NoError(t, err)
	sig2, err := s.SignMessage(context.Background(), "challenge-b")
	require.NoError(t, err)
	assert.NotEqual(t, sig1, sig2)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LUCKY_GATES_TEST_KEY", testKey)

	s, err := FromEnv("LUCKY_GATES_TEST_KEY")
	require.NoError(t, err)
	assert.Equal(t, testAddress, s.Account())

	_, err = FromEnv("LUCKY_GATES_TEST_KEY_UNSET")
	assert.ErrorIs(t, err, ErrNoKey)
}

func TestChecksumAddress(t *testing.T) {
	t.Parallel()

	// EIP-55 reference vectors.
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}

	for _, want := range vectors {
		raw, err := hex.DecodeString(strings.ToLower(want[2:]))
		require.NoError(t, err)
		assert.Equal(t, want, checksumAddress(raw))
	}
}

func TestNoneProvider(t *testing.T) {
	t.Parallel()

	var n None
	assert.Empty(t, n.Account())

	_, err := n.SignMessage(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNoKey)
}
