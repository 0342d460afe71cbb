package plan

import (
	"fmt"

	"fridge-planner/internal/core/ai/service"
	"fridge-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 献立サービスの共通基盤
type Service struct {
	aiService *service.Service
}

// NewService 共通基盤を生成する
func NewService(aiService *service.Service) *Service {
	return &Service{
		aiService: aiService,
	}
}

// parseAIResponse AI 応答から JSON を取り出して構造体にパースする
func (s *Service) parseAIResponse(label, content string, v interface{}) error {
	if content == "" {
		return fmt.Errorf("empty AI response")
	}

	cleaned := common.ExtractJSONBlock(content)

	common.LogDebug("AI 応答内容",
		zap.String("label", label),
		zap.Int("ai_response_length", len(cleaned)),
		zap.String("ai_response_preview", preview(cleaned, 300)),
	)

	if err := common.ParseJSON(cleaned, v); err != nil {
		common.LogWarn("AI 応答のパースに失敗",
			zap.String("label", label),
			zap.Error(err),
		)
		return common.ErrAIResponseInvalid
	}
	return nil
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
