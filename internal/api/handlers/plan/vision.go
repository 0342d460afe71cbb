package plan

import (
	"net/http"

	planService "fridge-planner/internal/core/plan"

	"github.com/gin-gonic/gin"
)

// VisionHandler 冷蔵庫写真解析のハンドラ
type VisionHandler struct {
	visionSvc *planService.VisionService
}

// NewVisionHandler 画像解析ハンドラを生成する
func NewVisionHandler(visionSvc *planService.VisionService) *VisionHandler {
	return &VisionHandler{
		visionSvc: visionSvc,
	}
}

// HandleVision POST /api/v1/fridge/vision
// 画像は data URI・裸の base64・URL のいずれかを image フィールドで受け取る
func (h *VisionHandler) HandleVision(c *gin.Context) {
	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"result": []interface{}{},
			"error":  "画像ファイルが送信されていません。",
		})
		return
	}

	items, err := h.visionSvc.IdentifyFridge(c.Request.Context(), req.Image)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"result": []interface{}{},
			"error":  "解析結果の形式が不正でした。",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": items})
}
