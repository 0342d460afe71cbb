package plan

import (
	"context"
	"fmt"
	"strings"

	"fridge-planner/internal/pkg/common"
)

// RegenerateRequest 1 食分の再生成リクエスト
type RegenerateRequest struct {
	Ingredients   []common.FridgeItem `json:"ingredients" binding:"required"`
	CurrentMenu   common.MealSet      `json:"currentMenu" binding:"required"`
	MealType      string              `json:"mealType"`
	ExistingMenus []string            `json:"existingMenus"`
	History       []string            `json:"history"`
	Banned        []string            `json:"banned"`
	Option        string              `json:"option"`
}

// 食事タイプ別の特別ルール
var mealTypeRules = map[string]string{
	common.MealBreakfast: `
**【朝食の特別ルール】**
- 朝にふさわしい料理を提案してください
- 準備時間が短く、手軽に食べられるもの
- 例: 卵料理、トースト、おにぎり、サラダ、味噌汁
`,
	common.MealLunch: `
**【昼食の特別ルール】**
- 昼にふさわしいボリュームのある料理を提案してください
- 午後の活力になるような献立
`,
	common.MealDinner: `
**【夕食の特別ルール】**
- 一日のメイン食事として、しっかりとした献立を提案してください
- 主菜・副菜・汁物のバランスを重視
`,
	common.MealSnack: `
**【おやつ・間食の特別ルール】**
- 軽いスナックやデザートを提案してください
- 軽食向きのメニュー（サンドイッチ、フルーツ、軽い麺類など）
`,
	common.MealNightSnack: `
**【夜食の特別ルール】**
- **軽めの夜食**を提案してください
- 消化に良く、寝る前に適した軽い料理
- 例: お茶漬け、うどん、雑炊、軽いスープ、サンドイッチ
- 重い料理や揚げ物は避けてください
`,
}

// RegenerateMeal 却下された 1 食分を同じ在庫で作り直す
func (s *MenuService) RegenerateMeal(ctx context.Context, req RegenerateRequest) (*common.RegeneratedMeal, error) {
	if len(req.Ingredients) == 0 || req.CurrentMenu.Main == "" {
		return nil, common.NewValidationError("ingredients and currentMenu are required")
	}

	systemPrompt := buildRegeneratePrompt(req)

	userPrompt := fmt.Sprintf(`【元の冷蔵庫の在庫リスト】
%s

※ ここから「他の食事確保分」を引いた残りで考えてください。

【現在の提案（却下）】
Main: %s
Side: %s
Soup: %s

代わりの献立を提案してください。`,
		common.FormatFridgeItems(req.Ingredients),
		req.CurrentMenu.Main, req.CurrentMenu.Side, req.CurrentMenu.Soup)

	resp, err := s.aiService.ProcessRequest(ctx, systemPrompt+"\n\n"+userPrompt, "")
	if err != nil {
		return nil, fmt.Errorf("AI service error: %w", err)
	}

	var result common.RegeneratedMeal
	if err := s.parseAIResponse("plan/regenerate", resp.Content, &result); err != nil {
		return nil, err
	}
	if result.Menu.Main == "" {
		return nil, fmt.Errorf("no main dish in AI response")
	}

	// 間食・夜食は主菜のみ
	if common.IsSnackType(req.MealType) {
		result.Menu.Side = ""
		result.Menu.Soup = ""
	}
	if result.Ingredients == nil {
		result.Ingredients = []string{}
	}

	return &result, nil
}

func buildRegeneratePrompt(req RegenerateRequest) string {
	isSnack := common.IsSnackType(req.MealType)

	var snackRule, outputFormat string
	if isSnack {
		snackRule = `
**【間食・夜食の特別ルール】**
- これは間食または夜食です。**主菜のみ**を提案してください。
- 副菜・汁物は不要です。
`
		outputFormat = `
   {
     "menu": {
       "main": "新・料理名"
     },
     "ingredients": ["食材A: 2個", "醤油: 大さじ2"]
   }
   - **注意**: 間食・夜食なので side と soup は**出力しないでください**
`
	} else {
		snackRule = `
**通常の食事**として、1食分（主菜・副菜・汁物）を再提案してください。
`
		outputFormat = `
   {
     "menu": {
       "main": "新・主菜名",
       "side": "新・副菜名",
       "soup": "新・汁物名"
     },
     "ingredients": ["食材A: 2個", "食材B: 1/4パック", "醤油: 大さじ2"]
   }
`
	}

	option := req.Option
	if option == "" {
		option = "バランス良く"
	}

	var campRule string
	if req.Option == "キャンプ飯" {
		campRule = `
**【キャンプ飯の特別ルール】**
キャンプらしい料理を提案してください：
- 焚き火・バーベキュー・スキレット・ダッチオーブン・ホットサンドメーカーで作れる料理
- ワイルドで豪快な料理を優先
- 洗い物が少なくて済む一品料理
`
	}

	return fmt.Sprintf(`あなたはプロの料理研究家です。
ユーザーは現在の提案された献立（%s）を気に入っていません。
**同じ食材リスト**を使って、**別の献立**を再提案してください。
%s
**考慮事項:**
1. **在庫の有効活用**:
   - これが現在の冷蔵庫在庫です。
   - すでに他の食事で確保されている食材もあります（後述）。
   - 可能であれば、**「残っている在庫」**を優先的に使ってください。
2. **バラエティ**: 他の日程の献立と被らないようにしてください。
3. **意外性**: 前回と同じような料理は避けてください。

**制約事項:**
1. **出力はJSON形式のみ**。
2. 以下の形式で出力:
%s
   - **重要**: 「ingredients」には、その料理を作るために必要な**すべての食材**をリストアップしてください。（在庫の有無は気にせず、必要なものを全て書いてください）
   - **数量の書き方**: 「大さじ2」「小さじ1」のように単位を先に書いてください（「2大さじ」は不可）
   - **曖昧な表現禁止**: 「残り全部」「適宜」「ひとつかみ」は使わず、具体的な数量を書いてください。少量の場合は「少々」か「適量」を使用。

3. **禁止**: 以下のリストにある料理（またはそれに類似しすぎる料理）は提案しないでください。

【現在のアクティブな献立(重複NG)】: %s
【今回見送った料理(一時的NG)】: %s
【苦手・禁止リスト(恒久的NG)】: %s

4. 前回のメニュー（%s）とも当然違うものを提案してください。

**重視するスタイル/要望:** %s
%s
%s`,
		req.MealType, snackRule, outputFormat,
		strings.Join(req.ExistingMenus, ", "),
		strings.Join(req.History, ", "),
		strings.Join(req.Banned, ", "),
		req.CurrentMenu.Main, option, campRule,
		mealTypeRules[req.MealType])
}
