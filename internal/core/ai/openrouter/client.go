package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fridge-planner/internal/core/ai/provider"
	"fridge-planner/internal/infrastructure/config"
	"fridge-planner/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://openrouter.ai/api/v1"

// Client OpenRouter API クライアント
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient OpenRouter クライアントを生成する
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.OpenRouter.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenRouter.APIKey)).
		SetHeader("HTTP-Referer", "https://fridge-planner.app").
		SetHeader("X-Title", "Fridge Planner")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Generate チャット補完を呼び出して応答を返す
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	msgContent := []map[string]interface{}{
		{
			"type": "text",
			"text": req.Prompt,
		},
	}
	if req.ImageData != "" {
		url := req.ImageData
		if !strings.HasPrefix(url, "data:image/") {
			url = fmt.Sprintf("data:image/jpeg;base64,%s", url)
		}
		msgContent = append(msgContent, map[string]interface{}{
			"type": "image_url",
			"image_url": map[string]string{
				"url": url,
			},
		})
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.config.OpenRouter.MaxTokens
	}

	body := map[string]interface{}{
		"model": c.config.OpenRouter.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": msgContent,
			},
		},
		"max_tokens":  maxTokens,
		"temperature": req.Temperature,
	}

	common.LogInfo("OpenRouter へリクエスト送信",
		zap.String("model", c.config.OpenRouter.Model),
		zap.Int("prompt_length", len(req.Prompt)),
		zap.Bool("has_image", req.ImageData != ""),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")

	if err != nil {
		common.LogError("OpenRouter リクエスト失敗",
			zap.Error(err),
			zap.String("model", c.config.OpenRouter.Model),
		)
		return nil, fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("OpenRouter がエラーを返却",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("response", sanitizeBody(resp.String())),
		)
		return nil, fmt.Errorf("OpenRouter API returned status %d: %s", resp.StatusCode(), sanitizeBody(resp.String()))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage provider.Usage `json:"usage"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenRouter response")
	}

	content := result.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("empty content in OpenRouter response")
	}

	common.LogInfo("OpenRouter 応答受信",
		zap.String("model", c.config.OpenRouter.Model),
		zap.Int("content_length", len(content)),
		zap.Int("total_tokens", result.Usage.TotalTokens),
	)

	return &provider.Response{
		Content: content,
		Usage:   result.Usage,
	}, nil
}

// GetModel 使用中のモデル名
func (c *Client) GetModel() string {
	return c.config.OpenRouter.Model
}

// GetTimeout リクエストタイムアウト
func (c *Client) GetTimeout() time.Duration {
	return c.config.OpenRouter.Timeout
}

// Close アイドル接続を閉じる
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}

// sanitizeBody ログ出力用に画像データを取り除く
func sanitizeBody(body string) string {
	if strings.Contains(body, "data:image/") || strings.Contains(body, "base64") {
		return "[IMAGE_DATA_REMOVED]"
	}
	return body
}
