package pkg

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

const (
	TransferDiscriminator uint8 = 3
	TransferDataLength          = 9
)

type TransferParams struct {
	Source      solana.PublicKey
	Destination solana.PublicKey
	Owner       solana.PublicKey
	Amount      uint64
}

// NewTransferInstruction encodes a token program Transfer: one discriminator
// byte followed by the little-endian u64 amount.
func NewTransferInstruction(p TransferParams) solana.Instruction {
	return solana.NewInstruction(
		TokenProgramID,
		solana.AccountMetaSlice{
			{PublicKey: p.Source, IsSigner: false, IsWritable: true},
			{PublicKey: p.Destination, IsSigner: false, IsWritable: true},
			{PublicKey: p.Owner, IsSigner: true, IsWritable: false},
		},
		EncodeTransferData(p.Amount),
	)
}

func EncodeTransferData(amount uint64) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	// writes into a bytes.Buffer do not fail
	_ = enc.WriteUint8(TransferDiscriminator)
	_ = enc.WriteUint64(amount, bin.LE)
	return buf.Bytes()
}

func DecodeTransferData(data []byte) (uint8, uint64, error) {
	if len(data) != TransferDataLength {
		return 0, 0, fmt.Errorf("invalid transfer data length: expected %d, got %d", TransferDataLength, len(data))
	}
	dec := bin.NewBinDecoder(data)
	discriminator, err := dec.ReadUint8()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read discriminator: %w", err)
	}
	amount, err := dec.ReadUint64(bin.LE)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read amount: %w", err)
	}
	return discriminator, amount, nil
}
