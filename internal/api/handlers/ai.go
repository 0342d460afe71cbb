package handlers

import (
	"net/http"

	"fridge-planner/internal/core/ai/service"
	"fridge-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// AIHandler AI ファサードへの素通しハンドラ（デバッグ用途）
type AIHandler struct {
	aiService *service.Service
}

// NewAIHandler AI ハンドラを生成する
func NewAIHandler(aiService *service.Service) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// HandlePrompt 任意のプロンプトをそのまま AI に投げて生の応答を返す
func (h *AIHandler) HandlePrompt(c *gin.Context) {
	var req struct {
		Prompt    string `json:"prompt" binding:"required"`
		ImageData string `json:"image_data"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Error(),
		})
		return
	}

	response, err := h.aiService.ProcessRequest(c.Request.Context(), req.Prompt, req.ImageData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":  response.Content,
		"cache_hit": response.CacheHit,
	})
}
