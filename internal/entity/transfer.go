package entity

import "github.com/gagliardetto/solana-go"

type TransferRequest struct {
	Address string `json:"address"`
	Coin    string `json:"coin"`
}

type AirdropResponse struct {
	Success bool   `json:"success"`
	TxID    string `json:"txid"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// TransferPlan is resolved per request and never persisted.
type TransferPlan struct {
	Mint        solana.PublicKey
	Source      solana.PublicKey
	Destination solana.PublicKey
	Owner       solana.PublicKey
	// UserOwner is set only when Destination was derived from a plain wallet.
	UserOwner         *solana.PublicKey
	Amount            uint64
	CreateDestination bool
}
