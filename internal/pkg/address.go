package pkg

import (
	"errors"

	"github.com/gagliardetto/solana-go"
)

var errEmptyAddress = errors.New("empty address")

// ParseAddress decodes a base58 encoded 32 byte account key.
func ParseAddress(s string) (solana.PublicKey, error) {
	if s == "" {
		return solana.PublicKey{}, errEmptyAddress
	}
	return solana.PublicKeyFromBase58(s)
}

func IsValidAddress(s string) bool {
	_, err := ParseAddress(s)
	return err == nil
}
