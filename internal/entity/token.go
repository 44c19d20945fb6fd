package entity

// MintInfo is the on-chain view of a token mint, cached under the
// "tokenData" redis hash keyed by mint address.
type MintInfo struct {
	Mint     string `json:"mint"`
	Owner    string `json:"owner"`
	Decimals uint8  `json:"decimals"`
	Supply   uint64 `json:"supply"`
}

type CoinInfo struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
	Mint     string `json:"mint,omitempty"`
	Supply   uint64 `json:"supply,omitempty"`
	Verified bool   `json:"verified"`
}
