package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"github.com/MatrixETF/solana-airdrop/internal/entity"
	"github.com/MatrixETF/solana-airdrop/internal/pkg"
)

type airdropCall struct {
	to       solana.PublicKey
	lamports uint64
}

type fakeLedger struct {
	accounts  map[solana.PublicKey]*pkg.AccountInfo
	blockhash solana.Hash

	airdropErr   error
	lookupErr    error
	lookupErrAt  int // 1-based lookup that fails; 0 fails every lookup
	blockhashErr error
	sendErr      error

	airdrops []airdropCall
	lookups  []solana.PublicKey
	sent     []*solana.Transaction
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		accounts:  make(map[solana.PublicKey]*pkg.AccountInfo),
		blockhash: solana.Hash{7, 7, 7},
	}
}

func (l *fakeLedger) RequestAirdrop(_ context.Context, to solana.PublicKey, lamports uint64) (string, error) {
	if l.airdropErr != nil {
		return "", l.airdropErr
	}
	l.airdrops = append(l.airdrops, airdropCall{to: to, lamports: lamports})
	return fmt.Sprintf("airdrop-%d", len(l.airdrops)), nil
}

func (l *fakeLedger) GetAccountInfo(_ context.Context, account solana.PublicKey) (*pkg.AccountInfo, error) {
	l.lookups = append(l.lookups, account)
	if l.lookupErr != nil && (l.lookupErrAt == 0 || len(l.lookups) == l.lookupErrAt) {
		return nil, l.lookupErr
	}
	return l.accounts[account], nil
}

func (l *fakeLedger) RecentBlockhash(context.Context) (solana.Hash, error) {
	if l.blockhashErr != nil {
		return solana.Hash{}, l.blockhashErr
	}
	return l.blockhash, nil
}

func (l *fakeLedger) SendTransaction(_ context.Context, tx *solana.Transaction) (string, error) {
	l.sent = append(l.sent, tx)
	if l.sendErr != nil {
		return "", l.sendErr
	}
	return tx.Signatures[0].String(), nil
}

func (l *fakeLedger) calls() int {
	return len(l.airdrops) + len(l.lookups) + len(l.sent)
}

type mapCache struct {
	items map[string]entity.MintInfo
}

func (c *mapCache) GetMint(_ context.Context, mint string) (entity.MintInfo, error) {
	info, ok := c.items[mint]
	if !ok {
		return entity.MintInfo{}, ErrCacheMiss
	}
	return info, nil
}

func (c *mapCache) SetMint(_ context.Context, info entity.MintInfo) error {
	c.items[info.Mint] = info
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
