package usecase

import "fmt"

// InputError is a request problem detected before any ledger call.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

var (
	ErrParameterRequired = &InputError{Message: "Parameter Required"}
	ErrInvalidAddress    = &InputError{Message: "Invalid address"}
	ErrCoinNotSupported  = &InputError{Message: "Coin not supported"}
)

// SubmitError is a failure reported by the ledger for the final airdrop or
// transaction submission. Its text is the ledger's message.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string {
	return e.Err.Error()
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// LedgerError is any other failure while preparing a transfer.
type LedgerError struct {
	Op  string
	Err error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}
