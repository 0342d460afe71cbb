package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fridge-planner/internal/core/ai/cache"
	aiimage "fridge-planner/internal/core/ai/image"
	"fridge-planner/internal/core/ai/provider"
	"fridge-planner/internal/core/ai/queue"
	"fridge-planner/internal/core/image"
	"fridge-planner/internal/infrastructure/config"
	"fridge-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// Response AI 応答
type Response struct {
	Content  string
	CacheHit bool
}

// Service AI ファサード
// プロバイダ呼び出しの前後でキャッシュ・キュー・画像処理をまとめて面倒を見る
type Service struct {
	config       *config.Config
	provider     provider.Provider
	queueManager *queue.Manager
	cacheManager *cache.Manager
	redisCache   *cache.RedisCache
	imageSvc     *image.Service
	imageProc    *aiimage.Processor
	mu           sync.Mutex
	lastRequest  time.Time
}

// NewService AI ファサードを生成する
func NewService(cfg *config.Config, p provider.Provider, cacheManager *cache.Manager, redisCache *cache.RedisCache) (*Service, error) {
	if p == nil {
		return nil, errors.New("provider is required")
	}

	imageSvc := image.NewService(cfg.Image.MaxSizeBytes)
	imageProc := aiimage.NewProcessor(cfg.Image.MaxSizeBytes)

	queueManager := queue.NewManager(cfg)
	queueManager.Start(p)

	return &Service{
		config:       cfg,
		provider:     p,
		queueManager: queueManager,
		cacheManager: cacheManager,
		redisCache:   redisCache,
		imageSvc:     imageSvc,
		imageProc:    imageProc,
	}, nil
}

// ProcessRequest プロンプト（と任意の画像）から AI 応答を取得する
func (s *Service) ProcessRequest(ctx context.Context, prompt string, imageData string) (*Response, error) {
	if err := s.checkRequestRate(); err != nil {
		return nil, err
	}

	var processedImageData string
	if imageData != "" {
		// URL 以外は data URI に正規化してから軽量検証する
		if !strings.HasPrefix(imageData, "http://") && !strings.HasPrefix(imageData, "https://") {
			formatted, err := s.imageProc.FormatImageData(imageData)
			if err != nil {
				return nil, fmt.Errorf("failed to format image data: %w", err)
			}
			if err := s.imageProc.Validate(formatted); err != nil {
				return nil, fmt.Errorf("invalid image data: %w", err)
			}
			imageData = formatted
		}

		var err error
		processedImageData, err = s.imageSvc.ProcessImage(imageData)
		if err != nil {
			return nil, fmt.Errorf("failed to process image: %w", err)
		}
	}

	// キャッシュキーは空白差で揺れないよう正規化したプロンプトを使う
	cacheKey := normalizePrompt(prompt)

	if s.cacheManager != nil {
		if val, err := s.cacheManager.Get(ctx, cacheKey, processedImageData); err == nil && val != "" {
			common.LogCacheHit("memory", cacheKey)
			return &Response{Content: val, CacheHit: true}, nil
		}
	}
	if s.redisCache != nil {
		if val, err := s.redisCache.Get(ctx, cacheKey, processedImageData); err == nil && val != "" {
			common.LogCacheHit("redis", cacheKey)
			if s.cacheManager != nil {
				_ = s.cacheManager.Set(ctx, cacheKey, processedImageData, val)
			}
			return &Response{Content: val, CacheHit: true}, nil
		}
	}
	common.LogCacheMiss("ai", cacheKey)

	start := time.Now()
	resp, err := s.queueManager.Dispatch(ctx, &provider.Request{
		Prompt:    prompt,
		ImageData: processedImageData,
	})
	common.LogAICall(prompt, time.Since(start), err, "")
	if err != nil {
		return nil, err
	}

	if s.cacheManager != nil {
		_ = s.cacheManager.Set(ctx, cacheKey, processedImageData, resp.Content)
	}
	if s.redisCache != nil {
		if err := s.redisCache.Set(ctx, cacheKey, processedImageData, resp.Content); err != nil {
			common.LogWarn("Redis キャッシュ保存失敗", zap.Error(err))
		}
	}

	return &Response{Content: resp.Content}, nil
}

// QueueStatus キューの現在状態を返す
func (s *Service) QueueStatus() *queue.Status {
	return s.queueManager.GetQueueStatus()
}

// Close ファサード配下のリソースを閉じる
func (s *Service) Close() error {
	s.queueManager.Close()
	if s.redisCache != nil {
		_ = s.redisCache.Close()
	}
	return s.provider.Close()
}

// checkRequestRate 最小リクエスト間隔を保証する
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.config.RateLimit.Enabled && now.Sub(s.lastRequest) < s.config.RateLimit.Window {
		return errors.New("request rate limit exceeded")
	}

	s.lastRequest = now
	return nil
}

// normalizePrompt 空白・タブ・改行を除去してキャッシュキーを安定させる
func normalizePrompt(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	prompt = strings.ReplaceAll(prompt, "\t", "")
	prompt = strings.ReplaceAll(prompt, "\n", "")
	return strings.Join(strings.Fields(prompt), "")
}
