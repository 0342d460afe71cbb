package plan

import (
	"context"
	"strings"

	"fridge-planner/internal/core/ai/service"
	"fridge-planner/internal/core/pantry"
	"fridge-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// ReconcileService 買い出し・消費リスト再計算サービス
// 抽出は AI、変換と差分計算は pantry パッケージの決定的ロジックで行う
type ReconcileService struct {
	extraction *ExtractionService
}

// NewReconcileService 再計算サービスを生成する
func NewReconcileService(aiService *service.Service) *ReconcileService {
	return &ReconcileService{
		extraction: NewExtractionService(aiService),
	}
}

// RecalculateRequest 再計算リクエスト
type RecalculateRequest struct {
	Ingredients []common.FridgeItem `json:"ingredients" binding:"required"`
	MenuDays    []common.DayMenu    `json:"menuDays" binding:"required"`
	People      int                 `json:"people"`
}

// RecalculateResult 再計算結果（カテゴリ別に整形済み）
type RecalculateResult struct {
	TotalShoppingList []string `json:"total_shopping_list"`
	TotalFridgeUsage  []string `json:"total_fridge_usage"`
	Updates           []string `json:"updates"`
}

// Recalculate 献立全体の必要量と在庫を突き合わせ、買い出しと消費のリストを作る
func (s *ReconcileService) Recalculate(ctx context.Context, req RecalculateRequest) (*RecalculateResult, error) {
	extracted, err := s.extraction.ExtractItems(ctx, req.MenuDays, req.Ingredients)
	if err != nil {
		// 抽出に失敗しても全滅させず、献立の食材を丸ごと買い出し扱いで返す
		common.LogWarn("食材抽出に失敗、全量買い出しへフォールバック", zap.Error(err))
		return s.fallbackResult(req), nil
	}

	required := pantry.NormalizeAll(extracted.RequiredItems)
	fridge := pantry.NormalizeAll(extracted.FridgeItems)

	totalRequired := pantry.Aggregate(required)
	fridgeStock := pantry.Aggregate(fridge)

	result := pantry.Reconcile(totalRequired, fridgeStock)

	return &RecalculateResult{
		TotalShoppingList: pantry.FormatByCategory(result.ShoppingList),
		TotalFridgeUsage:  pantry.FormatByCategory(result.UsageList),
		Updates:           []string{},
	}, nil
}

// fallbackResult 献立に書かれた食材をそのまま正規化して買い出しリストにする
func (s *ReconcileService) fallbackResult(req RecalculateRequest) *RecalculateResult {
	var raw []pantry.RawItem
	for _, day := range req.MenuDays {
		for _, meal := range day.Meals {
			for _, line := range meal.Ingredients {
				raw = append(raw, splitIngredientLine(line))
			}
		}
	}

	items := pantry.Aggregate(pantry.NormalizeAll(raw))

	return &RecalculateResult{
		TotalShoppingList: pantry.FormatByCategory(items),
		TotalFridgeUsage:  []string{},
		Updates:           []string{},
	}
}

// splitIngredientLine 「食材名: 数量」形式の行を分解する
func splitIngredientLine(line string) pantry.RawItem {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return pantry.RawItem{
			Name:        strings.TrimSpace(line[:idx]),
			RawQuantity: strings.TrimSpace(line[idx+1:]),
		}
	}
	if idx := strings.Index(line, "："); idx >= 0 {
		return pantry.RawItem{
			Name:        strings.TrimSpace(line[:idx]),
			RawQuantity: strings.TrimSpace(line[idx+len("："):]),
		}
	}
	return pantry.RawItem{Name: strings.TrimSpace(line)}
}
