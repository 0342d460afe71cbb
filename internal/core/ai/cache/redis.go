package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"fridge-planner/internal/infrastructure/config"
	"fridge-planner/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisCache Redis ベースの二次キャッシュ
// プロセス再起動をまたいで AI 応答を保持したい場合に有効化する
type RedisCache struct {
	client *redis.Client
	config *config.RedisConfig
}

// NewRedisCache Redis キャッシュを生成する。無効設定なら nil を返す
func NewRedisCache(cfg *config.RedisConfig) (*RedisCache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis キャッシュに接続", zap.String("addr", cfg.Addr))

	return &RedisCache{
		client: client,
		config: cfg,
	}, nil
}

// Get キャッシュされた応答を取得する
func (c *RedisCache) Get(ctx context.Context, prompt, imageData string) (string, error) {
	key := c.generateKey(prompt, imageData)

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("cache miss")
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	return data, nil
}

// Set 応答をキャッシュする
func (c *RedisCache) Set(ctx context.Context, prompt, imageData, content string) error {
	key := c.generateKey(prompt, imageData)

	if err := c.client.Set(ctx, key, content, c.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// Close Redis 接続を閉じる
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// generateKey プロンプトと画像のハッシュからキーを作る
func (c *RedisCache) generateKey(prompt, imageData string) string {
	hash := sha256.Sum256([]byte(prompt + "|" + imageData))
	return "ai:response:" + hex.EncodeToString(hash[:])
}
