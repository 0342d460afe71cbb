package plan

import (
	"context"
	"fmt"
	"strings"

	"fridge-planner/internal/core/ai/service"
	"fridge-planner/internal/pkg/common"
)

// MenuService 複数日の献立生成サービス
type MenuService struct {
	*Service
}

// NewMenuService 献立生成サービスを生成する
func NewMenuService(aiService *service.Service) *MenuService {
	return &MenuService{
		Service: NewService(aiService),
	}
}

// GenerateMenuRequest 献立生成リクエスト
type GenerateMenuRequest struct {
	Ingredients []common.FridgeItem `json:"ingredients" binding:"required"`
	Days        int                 `json:"days"`
	People      int                 `json:"people"`
	MealTypes   []string            `json:"mealTypes"`
	Option      string              `json:"option"`
	Banned      []string            `json:"banned"`
}

// GenerateMenu 在庫消費フェーズとバランス補完フェーズの二段構成で献立を生成する
func (s *MenuService) GenerateMenu(ctx context.Context, req GenerateMenuRequest) ([]common.DayMenu, error) {
	if len(req.Ingredients) == 0 {
		return nil, common.NewValidationError("ingredients are required")
	}
	if req.Days <= 0 {
		req.Days = 3
	}
	if req.People <= 0 {
		req.People = 2
	}
	if len(req.MealTypes) == 0 {
		req.MealTypes = []string{common.MealDinner}
	}

	mealKeys := make([]string, len(req.MealTypes))
	for i, t := range req.MealTypes {
		mealKeys[i] = fmt.Sprintf("%q", t)
	}

	systemPrompt := buildMenuSystemPrompt(req.Days, req.People, strings.Join(mealKeys, ", "), req.Option, req.Banned)

	userPrompt := fmt.Sprintf(`【現在の冷蔵庫の在庫】
%s

【条件】
- 期間: %d日間
- 人数: %d人
- 必要な食事: %s

この条件で在庫シミュレーションを行いながら献立を作成してください。`,
		common.FormatFridgeItems(req.Ingredients), req.Days, req.People, strings.Join(req.MealTypes, ", "))

	resp, err := s.aiService.ProcessRequest(ctx, systemPrompt+"\n\n"+userPrompt, "")
	if err != nil {
		return nil, fmt.Errorf("AI service error: %w", err)
	}

	var result struct {
		Days []common.DayMenu `json:"days"`
	}
	if err := s.parseAIResponse("plan/menu", resp.Content, &result); err != nil {
		return nil, err
	}
	if len(result.Days) == 0 {
		return nil, fmt.Errorf("no days in AI response")
	}

	// 欠けたフィールドを補完する
	for i := range result.Days {
		if result.Days[i].DayLabel == "" {
			result.Days[i].DayLabel = fmt.Sprintf("%d日目", i+1)
		}
		for key, meal := range result.Days[i].Meals {
			if common.IsSnackType(key) {
				meal.Side = ""
				meal.Soup = ""
			}
			if meal.Ingredients == nil {
				meal.Ingredients = []string{}
			}
			result.Days[i].Meals[key] = meal
		}
	}

	return result.Days, nil
}

func buildMenuSystemPrompt(days, people int, mealKeysStr, option string, banned []string) string {
	var campRule string
	if option == "キャンプ飯" {
		campRule = `
**【キャンプ飯の特別ルール】**
キャンプらしい料理を提案してください：
- 焚き火・バーベキュー・スキレット・ダッチオーブン・ホットサンドメーカーで作れる料理
- 例: カレー、BBQ、ホイル焼き、スキレットパエリア、ホットサンド、焼き鳥、アヒージョ、燻製、チリコンカン、ジャンバラヤ、焼きマシュマロ、コーンバター
- ワイルドで豪快な料理を優先
- 洗い物が少なくて済む一品料理
- 缶詰や常温保存できる食材を活用
`
	}
	if option == "" {
		option = "バランス良く、食材を使い切る工夫"
	}

	return fmt.Sprintf(`あなたはプロの料理研究家兼フードロスアドバイザーです。
%d日分の献立を作成してください。
対象人数: %d名

**======================================**
**最優先目標: 冷蔵庫の食材を確実に使い切る**
**======================================**

この献立は【2つのフェーズ】で構成してください：

【フェーズ1: 在庫消費フェーズ】（最初の1〜2日間）
- 冷蔵庫にある食材を**積極的に使い切る**献立を考えてください
- 例: 大根1本あれば → 大根サラダ、豚バラ大根、味噌汁の具として複数回使用
- 1つの食材を複数の料理に分けて使うことを推奨
- このフェーズでは「冷蔵庫にあるもの」を中心に献立を組む

【フェーズ2: バランス補完フェーズ】（残りの日数）
- 冷蔵庫食材を使い切った後は、**栄養バランスと彩り**を重視
- **重要: フェーズ1で使った冷蔵庫食材とは異なる、新しい食材を提案してください**
- 買い物リストがシンプルになるよう、同じ新食材を複数日で使い回す
- バリエーション豊かな献立で飽きが来ないように工夫

**手順:**
1. まず冷蔵庫の在庫を確認し、何日分の献立が組めるか判断
2. フェーズ1で在庫を使い切る計画を立てる
3. フェーズ2で残りの日数をバランス良く埋める
4. それぞれの料理に**必要な食材をすべて**リストアップ（調味料含む）

**食材リストの書き方ルール:**
- 数量は「食材名: 数量単位」の形式で書いてください（例: 「玉ねぎ: 1個」「豚肉: 200g」）
- 調味料は「単位 + 数字」の順で書いてください（例: 「大さじ2」「小さじ1」、「2大さじ」は不可）
- 「残り全部」「適宜」「ひとつかみ」などの曖昧な表現は使わず、具体的な数量を書いてください
- 少量の場合は「少々」または「適量」を使用してください

**出力フォーマット (JSON形式のみ):**
{
  "days": [
    {
      "day_label": "1日目",
      "meals": {
        "breakfast": {
          "main": "主菜名", "side": "副菜名", "soup": "汁物名",
          "ingredients": ["鮭: 2切れ", "納豆: 2パック", "味噌: 大さじ2"]
        }
      }
    }
  ]
}

**重要:**
- JSONの配列数は必ず %d にすること。
- 指定された食事タイプ (%s) のみを生成すること。

**【間食・夜食の特別ルール】**
- 食事タイプが "snack"（間食）または "night_snack"（夜食）の場合：
  - **主菜 (main) のみ**を提案してください
  - 副菜 (side) と汁物 (soup) は**空文字 ""**で返してください
  - 軽食やおやつ、夜食に適したメニューを提案

**重視するスタイル/要望:** %s
%s
**禁止食材・料理リスト:**
以下の料理（またはそれに類似しすぎる料理）は提案しないでください（ユーザーの苦手・拒否リスト）:
%s`,
		days, people, days, mealKeysStr, option, campRule, strings.Join(banned, ", "))
}
