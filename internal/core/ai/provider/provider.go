package provider

import (
	"context"
	"time"
)

// Request AI プロバイダへのリクエスト
type Request struct {
	Prompt      string  `json:"prompt"`
	ImageData   string  `json:"image_data,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// Usage トークン使用量
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response AI プロバイダからのレスポンス
type Response struct {
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

// Provider AI プロバイダのインターフェース
type Provider interface {
	// Generate AI 応答を生成する
	Generate(ctx context.Context, req *Request) (*Response, error)

	// GetModel 使用中のモデル名を返す
	GetModel() string

	// GetTimeout リクエストタイムアウトを返す
	GetTimeout() time.Duration

	// Close 接続を閉じる
	Close() error
}
