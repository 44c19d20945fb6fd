package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"github.com/MatrixETF/solana-airdrop/internal/entity"
	"github.com/MatrixETF/solana-airdrop/internal/pkg"
)

type Faucet struct {
	ledger   pkg.Ledger
	coins    entity.CoinTable
	operator solana.PrivateKey
	logger   *logrus.Logger
}

func NewFaucet(
	ledger pkg.Ledger,
	coins entity.CoinTable,
	operator solana.PrivateKey,
	logger *logrus.Logger,
) *Faucet {
	return &Faucet{
		ledger:   ledger,
		coins:    coins,
		operator: operator,
		logger:   logger,
	}
}

func (f *Faucet) Operator() solana.PublicKey {
	return f.operator.PublicKey()
}

// Airdrop sends one whole unit of req.Coin to req.Address and returns the
// transaction signature. Errors are *InputError, *SubmitError or *LedgerError.
func (f *Faucet) Airdrop(ctx context.Context, req entity.TransferRequest) (string, error) {
	coin, address, err := f.validate(req)
	if err != nil {
		return "", err
	}

	log := f.logger.WithFields(logrus.Fields{
		"coin":    coin.Symbol,
		"address": address.String(),
	})

	var txID string
	if coin.IsNative() {
		txID, err = f.ledger.RequestAirdrop(ctx, address, coin.OneUnit())
		if err != nil {
			err = &SubmitError{Err: err}
		}
	} else {
		txID, err = f.transfer(ctx, coin, address)
	}
	if err != nil {
		log.WithError(err).Warn("airdrop failed")
		return "", err
	}

	log.WithField("txid", txID).Info("airdrop submitted")
	return txID, nil
}

func (f *Faucet) validate(req entity.TransferRequest) (entity.Coin, solana.PublicKey, error) {
	if req.Address == "" || req.Coin == "" {
		return entity.Coin{}, solana.PublicKey{}, ErrParameterRequired
	}

	address, err := pkg.ParseAddress(req.Address)
	if err != nil {
		return entity.Coin{}, solana.PublicKey{}, ErrInvalidAddress
	}

	coin, ok := f.coins.Lookup(req.Coin)
	if !ok {
		return entity.Coin{}, solana.PublicKey{}, ErrCoinNotSupported
	}
	return coin, address, nil
}

func (f *Faucet) transfer(ctx context.Context, coin entity.Coin, address solana.PublicKey) (string, error) {
	plan, err := f.resolvePlan(ctx, coin, address)
	if err != nil {
		return "", err
	}

	blockhash, err := f.ledger.RecentBlockhash(ctx)
	if err != nil {
		return "", &LedgerError{Op: "fetch blockhash", Err: err}
	}

	destination, err := f.ledger.GetAccountInfo(ctx, plan.Destination)
	if err != nil {
		return "", &LedgerError{Op: "look up destination", Err: err}
	}
	plan.CreateDestination = destination == nil

	tx, err := BuildTransaction(plan, blockhash)
	if err != nil {
		return "", &LedgerError{Op: "build transaction", Err: err}
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(f.operator.PublicKey()) {
			return &f.operator
		}
		return nil
	})
	if err != nil {
		return "", &LedgerError{Op: "sign transaction", Err: err}
	}

	txID, err := f.ledger.SendTransaction(ctx, tx)
	if err != nil {
		return "", &SubmitError{Err: err}
	}
	return txID, nil
}

// resolvePlan picks the source and destination token accounts. A recipient
// that is absent from the ledger or holds no data is a plain wallet, so the
// transfer goes to its associated token account instead.
func (f *Faucet) resolvePlan(ctx context.Context, coin entity.Coin, address solana.PublicKey) (entity.TransferPlan, error) {
	mint, err := solana.PublicKeyFromBase58(coin.Mint)
	if err != nil {
		return entity.TransferPlan{}, &LedgerError{Op: "parse mint", Err: fmt.Errorf("%s: %w", coin.Symbol, err)}
	}

	owner := f.operator.PublicKey()
	source, _, err := pkg.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return entity.TransferPlan{}, &LedgerError{Op: "resolve source", Err: err}
	}

	plan := entity.TransferPlan{
		Mint:        mint,
		Source:      source,
		Destination: address,
		Owner:       owner,
		Amount:      coin.OneUnit(),
	}

	info, err := f.ledger.GetAccountInfo(ctx, address)
	if err != nil {
		return entity.TransferPlan{}, &LedgerError{Op: "look up recipient", Err: err}
	}
	if info == nil || len(info.Data) == 0 {
		userOwner := address
		plan.UserOwner = &userOwner
		plan.Destination, _, err = pkg.FindAssociatedTokenAddress(address, mint)
		if err != nil {
			return entity.TransferPlan{}, &LedgerError{Op: "resolve destination", Err: err}
		}
	}
	return plan, nil
}

var errMissingUserOwner = errors.New("destination account is missing and its owner is unknown")

// BuildTransaction assembles the unsigned transfer, prefixed by an account
// creation when plan.CreateDestination is set. The operator pays fees.
func BuildTransaction(plan entity.TransferPlan, blockhash solana.Hash) (*solana.Transaction, error) {
	instructions := make([]solana.Instruction, 0, 2)

	if plan.CreateDestination {
		if plan.UserOwner == nil {
			return nil, errMissingUserOwner
		}
		instructions = append(instructions, pkg.NewCreateAssociatedAccountInstruction(plan.Owner, *plan.UserOwner, plan.Mint))
	}

	instructions = append(instructions, pkg.NewTransferInstruction(pkg.TransferParams{
		Source:      plan.Source,
		Destination: plan.Destination,
		Owner:       plan.Owner,
		Amount:      plan.Amount,
	}))

	tx, err := solana.NewTransaction(
		instructions,
		blockhash,
		solana.TransactionPayer(plan.Owner),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}
