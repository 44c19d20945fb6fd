package config

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// ParseOperatorKey parses a secret key written as comma separated byte
// values, the format of a keygen JSON file without its brackets.
func ParseOperatorKey(secret string) (solana.PrivateKey, error) {
	secret = strings.TrimSpace(secret)
	secret = strings.TrimPrefix(secret, "[")
	secret = strings.TrimSuffix(secret, "]")
	if secret == "" {
		return nil, errors.New("empty secret key")
	}

	parts := strings.Split(secret, ",")
	if len(parts) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("expected %d bytes, got %d", ed25519.PrivateKeySize, len(parts))
	}

	key := make([]byte, len(parts))
	for i, part := range parts {
		b, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("byte %d: %w", i, err)
		}
		key[i] = byte(b)
	}

	// the trailing half of a keypair is its public key
	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	if !derived.Equal(ed25519.PrivateKey(key)) {
		return nil, errors.New("public key half does not match seed")
	}
	return solana.PrivateKey(key), nil
}
