package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// ErrNoKey means no signing key is configured for this client.
var ErrNoKey = errors.New("wallet: no signing key configured")

// KeySigner signs bind challenges with a local secp256k1 key, producing the
// same personal-sign signatures a browser wallet would.
type KeySigner struct {
	key     *secp256k1.PrivateKey
	account string
}

// NewKeySigner parses a hex-encoded private key, with or without the 0x
// prefix.
func NewKeySigner(hexKey string) (*KeySigner, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("wallet: decode private key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("wallet: private key must be 32 bytes, got %d", len(raw))
	}
	key := secp256k1.PrivKeyFromBytes(raw)
	return &KeySigner{
		key:     key,
		account: pubKeyAddress(key.PubKey()),
	}, nil
}

// FromEnv builds a signer from the named environment variable. Returns
// ErrNoKey when the variable is unset or empty.
func FromEnv(name string) (*KeySigner, error) {
	hexKey := os.Getenv(name)
	if hexKey == "" {
		return nil, ErrNoKey
	}
	return NewKeySigner(hexKey)
}

// Account returns the EIP-55 checksummed address for the key.
func (s *KeySigner) Account() string {
	return s.account
}

// SignMessage produces a personal-sign signature over the challenge,
// hex-encoded as r || s || v.
func (s *KeySigner) SignMessage(_ context.Context, message string) (string, error) {
	sig := secpecdsa.SignCompact(s.key, personalHash(message), false)
	// SignCompact puts the recovery code first; rotate to r || s || v.
	out := make([]byte, 65)
	copy(out, sig[1:])
	out[64] = sig[0]
	return "0x" + hex.EncodeToString(out), nil
}

// personalHash applies the EIP-191 personal-message envelope before hashing.
func personalHash(message string) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte("\x19Ethereum Signed Message:\n" + strconv.Itoa(len(message))))
	h.Write([]byte(message))
	return h.Sum(nil)
}

func pubKeyAddress(pub *secp256k1.PublicKey) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(pub.SerializeUncompressed()[1:])
	return checksumAddress(h.Sum(nil)[12:])
}

// checksumAddress renders a 20-byte address with the EIP-55 mixed-case
// checksum: a hex letter is uppercased when the corresponding nibble of the
// keccak hash of the lowercase address is >= 8.
func checksumAddress(addr []byte) string {
	lower := hex.EncodeToString(addr)
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	mask := hex.EncodeToString(h.Sum(nil))

	out := []byte(lower)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && mask[i] >= '8' {
			out[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(out)
}
