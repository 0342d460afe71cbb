package plan

import (
	"net/http"

	planService "fridge-planner/internal/core/plan"

	"github.com/gin-gonic/gin"
)

// RecipeHandler レシピ生成のハンドラ
type RecipeHandler struct {
	recipeSvc *planService.RecipeService
}

// NewRecipeHandler レシピハンドラを生成する
func NewRecipeHandler(recipeSvc *planService.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeSvc: recipeSvc,
	}
}

// HandleGenerateRecipe POST /api/v1/plan/recipe
func (h *RecipeHandler) HandleGenerateRecipe(c *gin.Context) {
	var req planService.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal name is required"})
		return
	}

	recipes, err := h.recipeSvc.GenerateRecipe(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": recipes})
}
