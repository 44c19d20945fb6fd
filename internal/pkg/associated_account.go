package pkg

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
)

var (
	TokenProgramID           = solana.TokenProgramID
	AssociatedTokenProgramID = solana.SPLAssociatedTokenAccountProgramID
)

// FindAssociatedTokenAddress derives the token account that holds mint for
// owner. The bump search walks nonces down from 255 and returns the first
// seed set whose hash lands off the ed25519 curve.
func FindAssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	addr, nonce, err := solana.FindProgramAddress(
		[][]byte{
			owner[:],
			TokenProgramID[:],
			mint[:],
		},
		AssociatedTokenProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive associated token address: %w", err)
	}
	return addr, nonce, nil
}

// NewCreateAssociatedAccountInstruction creates the associated token account
// of owner for mint, funded by payer.
func NewCreateAssociatedAccountInstruction(payer, owner, mint solana.PublicKey) solana.Instruction {
	return associatedtokenaccount.NewCreateInstruction(payer, owner, mint).Build()
}
