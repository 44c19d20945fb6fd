package redisClient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MatrixETF/solana-airdrop/internal/entity"
	"github.com/MatrixETF/solana-airdrop/internal/usecase"
)

const tokenDataKey = "tokenData"

func InitRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// MintCache stores mint metadata as JSON values in a single redis hash.
type MintCache struct {
	rdb *redis.Client
}

func NewMintCache(rdb *redis.Client) *MintCache {
	return &MintCache{rdb: rdb}
}

func (c *MintCache) GetMint(ctx context.Context, mint string) (entity.MintInfo, error) {
	val, err := c.rdb.HGet(ctx, tokenDataKey, mint).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.MintInfo{}, usecase.ErrCacheMiss
		}
		return entity.MintInfo{}, fmt.Errorf("failed to read mint %s: %w", mint, err)
	}

	var data entity.MintInfo
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return entity.MintInfo{}, fmt.Errorf("failed to decode mint %s: %w", mint, err)
	}
	return data, nil
}

func (c *MintCache) SetMint(ctx context.Context, info entity.MintInfo) error {
	jsonData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode mint %s: %w", info.Mint, err)
	}

	if err := c.rdb.HSet(ctx, tokenDataKey, info.Mint, jsonData).Err(); err != nil {
		return fmt.Errorf("failed to write mint %s: %w", info.Mint, err)
	}
	return nil
}
