package entity

import (
	"math"
	"sort"
)

const NativeSymbol = "SOL"

type Coin struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
	Mint     string `json:"mint,omitempty"`
}

func (c Coin) IsNative() bool {
	return c.Mint == ""
}

// OneUnit returns one whole coin in base units. Decimals above 19 do not fit
// in a uint64 and saturate.
func (c Coin) OneUnit() uint64 {
	unit := uint64(1)
	for i := uint8(0); i < c.Decimals; i++ {
		if unit > math.MaxUint64/10 {
			return math.MaxUint64
		}
		unit *= 10
	}
	return unit
}

// CoinTable is an immutable set of supported coins keyed by symbol.
type CoinTable struct {
	coins map[string]Coin
}

func NewCoinTable(coins ...Coin) CoinTable {
	m := make(map[string]Coin, len(coins))
	for _, c := range coins {
		m[c.Symbol] = c
	}
	return CoinTable{coins: m}
}

func DefaultCoins() CoinTable {
	return NewCoinTable(
		Coin{
			Symbol:   NativeSymbol,
			Name:     "Solana",
			Decimals: 9,
		},
		Coin{
			Symbol:   "WSOL",
			Name:     "Wrapped Solana",
			Decimals: 9,
			Mint:     "8RyDQRkxSNkxSrrCSJVu3ictHZsQX7KikpcHFjdCTRZc",
		},
		Coin{
			Symbol:   "BTC",
			Name:     "Wrapped Bitcoin",
			Decimals: 6,
			Mint:     "Amp5SCa8MaC8bPAqbCbAwoT4RjXtX6baLoqBQQZQuVSv",
		},
		Coin{
			Symbol:   "ETH",
			Name:     "Wrapped Ethereum",
			Decimals: 6,
			Mint:     "3FFTeEfJXaLauvywf5rc8Q3vmdnVrbRkMdKyxs1eVZ3M",
		},
	)
}

func (t CoinTable) Lookup(symbol string) (Coin, bool) {
	c, ok := t.coins[symbol]
	return c, ok
}

// All returns the coins sorted by symbol.
func (t CoinTable) All() []Coin {
	out := make([]Coin, 0, len(t.coins))
	for _, c := range t.coins {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

func (t CoinTable) Symbols() []string {
	all := t.All()
	out := make([]string, len(all))
	for i, c := range all {
		out[i] = c.Symbol
	}
	return out
}
