package plan

import (
	"context"
	"fmt"
	"strings"

	"fridge-planner/internal/core/ai/service"
	"fridge-planner/internal/core/pantry"
	"fridge-planner/internal/pkg/common"
)

// ExtractionService 献立と在庫から食材の生データを抽出するサービス
// AI には「抽出のみ」をさせ、変換や計算はすべてこちら側で行う
type ExtractionService struct {
	*Service
}

// NewExtractionService 抽出サービスを生成する
func NewExtractionService(aiService *service.Service) *ExtractionService {
	return &ExtractionService{
		Service: NewService(aiService),
	}
}

// ExtractedItems 抽出結果（未変換の生データ）
type ExtractedItems struct {
	RequiredItems []pantry.RawItem `json:"required_items"`
	FridgeItems   []pantry.RawItem `json:"fridge_items"`
}

// ExtractItems 献立の必要食材と冷蔵庫在庫を生データとして抜き出す
func (s *ExtractionService) ExtractItems(ctx context.Context, menuDays []common.DayMenu, ingredients []common.FridgeItem) (*ExtractedItems, error) {
	systemPrompt := `あなたは食材データの抽出エンジンです。
与えられた「献立」と「冷蔵庫の在庫」から、食材名と数量を**そのまま**抽出してください。

**重要なルール:**
1. **変換禁止**: 単位の変換や計算は一切しないでください
2. **生データ抽出**: 入力されたままの形式で出力してください
3. **名前の統一のみ行う**:
   - 「ウインナー」「フランクフルト」→「ソーセージ」
   - 「たまご」「玉子」→「卵」
   - 「人参」「にんじん」→「人参」

**出力フォーマット (JSONのみ):**
{
  "required_items": [
    { "name": "人参", "raw_quantity": "1本" },
    { "name": "ソーセージ", "raw_quantity": "4本" }
  ],
  "fridge_items": [
    { "name": "人参", "raw_quantity": "2本" },
    { "name": "ソーセージ", "raw_quantity": "1パック" }
  ]
}

**注意:**
- 献立の各メニューに書かれている食材を全てリストアップしてください
- 同じ食材が複数回出てきても、それぞれ別のエントリとして出力してください（後で集計します）
- 「適量」「少々」なども raw_quantity としてそのまま出力してください`

	userPrompt := fmt.Sprintf(`【冷蔵庫の在庫】
%s

【献立リスト】
%s

上記から食材データを抽出してください。変換は不要です。`,
		formatStockLines(ingredients), formatMenuSummary(menuDays))

	resp, err := s.aiService.ProcessRequest(ctx, systemPrompt+"\n\n"+userPrompt, "")
	if err != nil {
		return nil, fmt.Errorf("AI service error: %w", err)
	}

	var result ExtractedItems
	if err := s.parseAIResponse("plan/extract", resp.Content, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func formatStockLines(items []common.FridgeItem) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", item.Name, item.Quantity))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatMenuSummary トークン節約のため献立を料理名と食材だけに要約する
func formatMenuSummary(menuDays []common.DayMenu) string {
	type mealSummary struct {
		Name        string   `json:"name"`
		Ingredients []string `json:"ingredients"`
	}
	type daySummary struct {
		DayLabel string        `json:"day_label"`
		Meals    []mealSummary `json:"meals"`
	}

	summary := make([]daySummary, 0, len(menuDays))
	for _, day := range menuDays {
		ds := daySummary{DayLabel: day.DayLabel}
		for _, meal := range day.Meals {
			ds.Meals = append(ds.Meals, mealSummary{
				Name:        meal.Main,
				Ingredients: meal.Ingredients,
			})
		}
		summary = append(summary, ds)
	}

	out, err := common.ToJSON(summary)
	if err != nil {
		return "[]"
	}
	return out
}
