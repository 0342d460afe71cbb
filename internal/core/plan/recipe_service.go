package plan

import (
	"context"
	"fmt"
	"strings"

	"fridge-planner/internal/core/ai/service"
	"fridge-planner/internal/pkg/common"
)

// RecipeService レシピ生成サービス
type RecipeService struct {
	*Service
}

// NewRecipeService レシピ生成サービスを生成する
func NewRecipeService(aiService *service.Service) *RecipeService {
	return &RecipeService{
		Service: NewService(aiService),
	}
}

// RecipeRequest レシピ生成リクエスト
type RecipeRequest struct {
	MealName    string   `json:"mealName" binding:"required"`
	Side        string   `json:"side"`
	Soup        string   `json:"soup"`
	Ingredients []string `json:"ingredients"`
	People      int      `json:"people"`
}

// GenerateRecipe 主菜・副菜・汁物の作り方を生成する
func (s *RecipeService) GenerateRecipe(ctx context.Context, req RecipeRequest) (*common.RecipeSet, error) {
	if req.MealName == "" {
		return nil, common.NewValidationError("mealName is required")
	}
	if req.People <= 0 {
		req.People = 2
	}

	systemPrompt := `あなたはプロの料理研究家です。
指定された料理のレシピ（作り方）を分かりやすく説明してください。

**ルール:**
1. 手順は番号付きで、簡潔に書いてください。
2. 初心者でも分かるように、具体的な時間や火加減を記載してください。
3. コツやポイントがあれば教えてください。
4. **全ての料理に調理時間の目安を「約○分」の形式で記載してください。**

**出力フォーマット (JSONのみ):**
{
  "mainRecipe": {
    "name": "主菜名",
    "steps": [
      "1. 材料を切る。人参は乱切り、玉ねぎは薄切りにする。",
      "2. フライパンに油を熱し、中火で肉を炒める（3分）。"
    ],
    "tips": "肉は常温に戻してから調理すると柔らかく仕上がります。",
    "cookingTime": "約25分"
  },
  "sideRecipe": {
    "name": "副菜名",
    "steps": ["1. ...", "2. ..."],
    "cookingTime": "約10分"
  },
  "soupRecipe": {
    "name": "汁物名",
    "steps": ["1. ...", "2. ..."],
    "cookingTime": "約15分"
  }
}`

	side := req.Side
	if side == "" {
		side = "なし"
	}
	soup := req.Soup
	if soup == "" {
		soup = "なし"
	}

	userPrompt := fmt.Sprintf(`【作りたい献立】
- 主菜: %s
- 副菜: %s
- 汁物: %s

【使う材料】
%s

【人数】
%d人分

上記の献立のレシピを教えてください。`,
		req.MealName, side, soup, strings.Join(req.Ingredients, ", "), req.People)

	resp, err := s.aiService.ProcessRequest(ctx, systemPrompt+"\n\n"+userPrompt, "")
	if err != nil {
		return nil, fmt.Errorf("AI service error: %w", err)
	}

	var result common.RecipeSet
	if err := s.parseAIResponse("plan/recipe", resp.Content, &result); err != nil {
		return nil, err
	}
	if result.MainRecipe.Name == "" || len(result.MainRecipe.Steps) == 0 {
		return nil, fmt.Errorf("main recipe missing in AI response")
	}

	// 副菜・汁物を指定しなかった場合は応答からも落とす
	if req.Side == "" {
		result.SideRecipe = nil
	}
	if req.Soup == "" {
		result.SoupRecipe = nil
	}

	return &result, nil
}
