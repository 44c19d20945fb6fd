package pkg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

type AccountInfo struct {
	Owner    solana.PublicKey
	Lamports uint64
	Data     []byte
}

// Ledger is the subset of the cluster RPC the faucet talks to.
// GetAccountInfo returns a nil AccountInfo and no error for unknown accounts.
type Ledger interface {
	RequestAirdrop(ctx context.Context, to solana.PublicKey, lamports uint64) (string, error)
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*AccountInfo, error)
	RecentBlockhash(ctx context.Context) (solana.Hash, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (string, error)
}

type RPCLedger struct {
	rpcClient  *rpc.Client
	commitment rpc.CommitmentType
}

func NewRPCLedger(rpcURL string) *RPCLedger {
	return &RPCLedger{
		rpcClient:  rpc.New(rpcURL),
		commitment: rpc.CommitmentFinalized,
	}
}

// ClusterRPC maps a cluster name to its public RPC endpoint.
func ClusterRPC(network string) (string, error) {
	switch strings.ToLower(network) {
	case "devnet":
		return rpc.DevNet.RPC, nil
	case "testnet":
		return rpc.TestNet.RPC, nil
	case "mainnet-beta", "mainnet":
		return rpc.MainNetBeta.RPC, nil
	case "localnet", "localhost":
		return rpc.LocalNet.RPC, nil
	default:
		return "", fmt.Errorf("unknown network: %q", network)
	}
}

func (l *RPCLedger) RequestAirdrop(ctx context.Context, to solana.PublicKey, lamports uint64) (string, error) {
	sig, err := l.rpcClient.RequestAirdrop(ctx, to, lamports, l.commitment)
	if err != nil {
		return "", fmt.Errorf("failed to request airdrop: %s", rpcMessage(err))
	}
	return sig.String(), nil
}

func (l *RPCLedger) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*AccountInfo, error) {
	res, err := l.rpcClient.GetAccountInfo(ctx, account)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account info: %w", err)
	}
	if res == nil || res.Value == nil {
		return nil, nil
	}

	var data []byte
	if res.Value.Data != nil {
		data = res.Value.Data.GetBinary()
	}

	return &AccountInfo{
		Owner:    res.Value.Owner,
		Lamports: res.Value.Lamports,
		Data:     data,
	}, nil
}

func (l *RPCLedger) RecentBlockhash(ctx context.Context) (solana.Hash, error) {
	block, err := l.rpcClient.GetLatestBlockhash(ctx, l.commitment)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}
	if block == nil || block.Value == nil {
		return solana.Hash{}, fmt.Errorf("failed to get recent blockhash: empty response")
	}
	return block.Value.Blockhash, nil
}

func (l *RPCLedger) SendTransaction(ctx context.Context, tx *solana.Transaction) (string, error) {
	sig, err := l.rpcClient.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: l.commitment,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %s", rpcMessage(err))
	}
	return sig.String(), nil
}

// rpcMessage prefers the node's own error text over the transport wrapping.
func rpcMessage(err error) string {
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Message
	}
	return err.Error()
}
