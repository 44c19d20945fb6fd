package config

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatrixETF/solana-airdrop/internal/logging"
)

func byteList(key solana.PrivateKey) string {
	parts := make([]string, len(key))
	for i, b := range key {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ",")
}

func newKey(t *testing.T) solana.PrivateKey {
	t.Helper()
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return key
}

func TestParseOperatorKey(t *testing.T) {
	key := newKey(t)

	parsed, err := ParseOperatorKey(byteList(key))
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), parsed.PublicKey())

	parsed, err = ParseOperatorKey("[" + strings.ReplaceAll(byteList(key), ",", ", ") + "]")
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), parsed.PublicKey())
}

func TestParseOperatorKey_Errors(t *testing.T) {
	key := newKey(t)
	tampered := append(solana.PrivateKey{}, key...)
	tampered[63] ^= 0xff

	cases := map[string]string{
		"empty":       "",
		"short":       "1,2,3",
		"not numbers": strings.Repeat("a,", 63) + "a",
		"overflow":    "256" + strings.Repeat(",1", 63),
		"mismatched":  byteList(tampered),
	}
	for name, secret := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseOperatorKey(secret)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	key := newKey(t)
	t.Setenv("PRIVATE_KEY", byteList(key))
	t.Setenv("NETWORK", "testnet")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("RPC_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "MatrixETF", cfg.ServiceName)
	assert.Equal(t, rpc.TestNet.RPC, cfg.RPCEndpoint)
	assert.Equal(t, logging.LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, key.PublicKey(), cfg.Operator.PublicKey())
}

func TestLoad_RPCOverride(t *testing.T) {
	t.Setenv("PRIVATE_KEY", byteList(newKey(t)))
	t.Setenv("NETWORK", "custom")
	t.Setenv("RPC_URL", "http://127.0.0.1:8899")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8899", cfg.RPCEndpoint)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing private key", func(t *testing.T) {
		t.Setenv("PRIVATE_KEY", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown network", func(t *testing.T) {
		t.Setenv("PRIVATE_KEY", byteList(newKey(t)))
		t.Setenv("NETWORK", "dogenet")
		t.Setenv("RPC_URL", "")
		_, err := Load()
		assert.ErrorContains(t, err, "NETWORK")
	})
}
