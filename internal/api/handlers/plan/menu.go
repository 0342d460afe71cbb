package plan

import (
	"net/http"

	planService "fridge-planner/internal/core/plan"
	"fridge-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MenuHandler 献立生成・再生成のハンドラ
type MenuHandler struct {
	menuSvc *planService.MenuService
}

// NewMenuHandler 献立ハンドラを生成する
func NewMenuHandler(menuSvc *planService.MenuService) *MenuHandler {
	return &MenuHandler{
		menuSvc: menuSvc,
	}
}

// HandleGenerateMenu POST /api/v1/plan/menu
func (h *MenuHandler) HandleGenerateMenu(c *gin.Context) {
	var req planService.GenerateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredients data"})
		return
	}

	days, err := h.menuSvc.GenerateMenu(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.LogInfo("献立生成完了",
		zap.Int("days", len(days)),
		zap.Int("people", req.People),
	)

	c.JSON(http.StatusOK, gin.H{"result": days})
}

// HandleRegenerateMeal POST /api/v1/plan/meal/regenerate
func (h *MenuHandler) HandleRegenerateMeal(c *gin.Context) {
	var req planService.RegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	meal, err := h.menuSvc.RegenerateMeal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": meal})
}
