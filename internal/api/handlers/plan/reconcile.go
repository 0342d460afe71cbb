package plan

import (
	"net/http"

	planService "fridge-planner/internal/core/plan"
	"fridge-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReconcileHandler 買い出し・消費リスト再計算のハンドラ
type ReconcileHandler struct {
	reconcileSvc *planService.ReconcileService
}

// NewReconcileHandler 再計算ハンドラを生成する
func NewReconcileHandler(reconcileSvc *planService.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{
		reconcileSvc: reconcileSvc,
	}
}

// HandleRecalculate POST /api/v1/plan/recalculate
func (h *ReconcileHandler) HandleRecalculate(c *gin.Context) {
	var req planService.RecalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	result, err := h.reconcileSvc.Recalculate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.LogInfo("再計算完了",
		zap.Int("shopping_lines", len(result.TotalShoppingList)),
		zap.Int("usage_lines", len(result.TotalFridgeUsage)),
	)

	c.JSON(http.StatusOK, gin.H{"result": result})
}
