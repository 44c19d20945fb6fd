package usecase

import (
	"context"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/sirupsen/logrus"

	"github.com/MatrixETF/solana-airdrop/internal/entity"
	"github.com/MatrixETF/solana-airdrop/internal/pkg"
)

var ErrCacheMiss = errors.New("cache miss")

type MintCache interface {
	GetMint(ctx context.Context, mint string) (entity.MintInfo, error)
	SetMint(ctx context.Context, info entity.MintInfo) error
}

// CoinInfoService checks the configured coin table against the mints on the
// ledger. The cache is optional.
type CoinInfoService struct {
	ledger pkg.Ledger
	cache  MintCache
	logger *logrus.Logger
}

func NewCoinInfoService(ledger pkg.Ledger, cache MintCache, logger *logrus.Logger) *CoinInfoService {
	return &CoinInfoService{
		ledger: ledger,
		cache:  cache,
		logger: logger,
	}
}

func (s *CoinInfoService) FetchMintInfo(ctx context.Context, mint solana.PublicKey) (entity.MintInfo, error) {
	if s.cache != nil {
		cached, err := s.cache.GetMint(ctx, mint.String())
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.logger.WithError(err).WithField("mint", mint.String()).Warn("mint cache read failed")
		}
	}

	account, err := s.ledger.GetAccountInfo(ctx, mint)
	if err != nil {
		return entity.MintInfo{}, fmt.Errorf("failed to get mint account: %w", err)
	}
	if account == nil {
		return entity.MintInfo{}, fmt.Errorf("mint account not found: %s", mint)
	}
	if !account.Owner.Equals(pkg.TokenProgramID) {
		return entity.MintInfo{}, fmt.Errorf("mint %s is owned by %s, not the token program", mint, account.Owner)
	}

	var mintData token.Mint
	if err := mintData.UnmarshalWithDecoder(bin.NewBinDecoder(account.Data)); err != nil {
		return entity.MintInfo{}, fmt.Errorf("failed to decode mint %s: %w", mint, err)
	}

	info := entity.MintInfo{
		Mint:     mint.String(),
		Owner:    account.Owner.String(),
		Decimals: mintData.Decimals,
		Supply:   mintData.Supply,
	}

	if s.cache != nil {
		if err := s.cache.SetMint(ctx, info); err != nil {
			s.logger.WithError(err).WithField("mint", mint.String()).Warn("mint cache write failed")
		}
	}
	return info, nil
}

// Verify reports every coin in the table. A wrapped coin is verified when its
// mint exists and its on-chain decimals match the table, and carries the
// on-chain supply whenever the mint could be read. Failures are logged and
// never fatal.
func (s *CoinInfoService) Verify(ctx context.Context, coins entity.CoinTable) []entity.CoinInfo {
	all := coins.All()
	out := make([]entity.CoinInfo, 0, len(all))

	for _, coin := range all {
		info := entity.CoinInfo{
			Symbol:   coin.Symbol,
			Name:     coin.Name,
			Decimals: coin.Decimals,
			Mint:     coin.Mint,
			Verified: coin.IsNative(),
		}

		if !coin.IsNative() {
			info.Supply, info.Verified = s.verifyCoin(ctx, coin)
		}
		out = append(out, info)
	}
	return out
}

func (s *CoinInfoService) verifyCoin(ctx context.Context, coin entity.Coin) (uint64, bool) {
	log := s.logger.WithFields(logrus.Fields{
		"coin": coin.Symbol,
		"mint": coin.Mint,
	})

	mint, err := solana.PublicKeyFromBase58(coin.Mint)
	if err != nil {
		log.WithError(err).Warn("invalid mint address")
		return 0, false
	}

	mintInfo, err := s.FetchMintInfo(ctx, mint)
	if err != nil {
		log.WithError(err).Warn("mint verification failed")
		return 0, false
	}

	if mintInfo.Decimals != coin.Decimals {
		log.WithFields(logrus.Fields{
			"configured": coin.Decimals,
			"onchain":    mintInfo.Decimals,
		}).Warn("mint decimals mismatch")
		return mintInfo.Supply, false
	}
	return mintInfo.Supply, true
}
