package plan

import (
	"net/http"

	"fridge-planner/internal/infrastructure/store"
	"fridge-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// MenuStoreHandler 保存済み献立 CRUD のハンドラ
type MenuStoreHandler struct {
	store store.MenuStore
}

// NewMenuStoreHandler 献立ストアハンドラを生成する
func NewMenuStoreHandler(s store.MenuStore) *MenuStoreHandler {
	return &MenuStoreHandler{
		store: s,
	}
}

// HandleSaveMenu POST /api/v1/plan/menus
func (h *MenuStoreHandler) HandleSaveMenu(c *gin.Context) {
	var req struct {
		Title string           `json:"title"`
		Days  []common.DayMenu `json:"days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu data"})
		return
	}

	menu := &store.SavedMenu{
		Title: req.Title,
		Days:  req.Days,
	}
	if err := h.store.Save(menu); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": menu})
}

// HandleListMenus GET /api/v1/plan/menus
func (h *MenuStoreHandler) HandleListMenus(c *gin.Context) {
	menus, err := h.store.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": menus})
}

// HandleGetMenu GET /api/v1/plan/menus/:id
func (h *MenuStoreHandler) HandleGetMenu(c *gin.Context) {
	menu, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": menu})
}

// HandleDeleteMenu DELETE /api/v1/plan/menus/:id
func (h *MenuStoreHandler) HandleDeleteMenu(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "deleted"})
}
