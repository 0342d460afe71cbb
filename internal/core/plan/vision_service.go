package plan

import (
	"context"
	"fmt"

	"fridge-planner/internal/core/ai/service"
	"fridge-planner/internal/pkg/common"
)

// VisionService 冷蔵庫写真からの食材抽出サービス
type VisionService struct {
	*Service
}

// NewVisionService 画像解析サービスを生成する
func NewVisionService(aiService *service.Service) *VisionService {
	return &VisionService{
		Service: NewService(aiService),
	}
}

// IdentifyFridge 冷蔵庫の写真から食材名と数量のリストを抽出する
// 数量が読み取れない場合は「数量不明」が入る
func (s *VisionService) IdentifyFridge(ctx context.Context, imageData string) ([]common.FridgeItem, error) {
	if imageData == "" {
		return nil, common.NewValidationError("image data is required")
	}

	systemPrompt := `あなたは冷蔵庫の画像から「食材名」と「数量」のみを抽出する厳格なデータ入力マシーンです。
以下のルールを絶対に守ってください。

1. 出力は **JSON形式のみ** です。Markdownのコードブロックも不要です。
2. 以下のJSON構造で出力してください:
   [
     { "name": "食材名", "quantity": "数量" }
   ]
3. **禁止事項**:
   - 包装状態（「袋入り」「パック」など）は名前に入れない
   - ブランド名（「日本ハム」「サントリー」など）は含めない
   - 栄養素情報の記載禁止
   - 「冷蔵庫にあります」などの文章禁止
   - 推測によるコメント禁止
4. 数量が明確に見えない場合は "数量不明" としてください。
5. できるだけ一般的な名称（例：「シャウエッセン」→「ソーセージ」）に変換してください。
6. **単位のルール**（必ず守ること）:
   - 玉ねぎ、じゃがいも、トマト、りんご、みかん、卵 → 「個」を使う
   - にんじん、大根、ねぎ、きゅうり、ごぼう → 「本」を使う
   - キャベツ、レタス、白菜 → 「個」または「玉」を使う
   - 肉類 → 「g」または「パック」を使う
   - きのこ類（しめじ、えのき、まいたけ）→ 「パック」を使う
   - 豆腐 → 「丁」を使う
   - 牛乳、ジュース → 「本」または「パック」を使う

この画像の食材リストをJSONで出力せよ。`

	resp, err := s.aiService.ProcessRequest(ctx, systemPrompt, imageData)
	if err != nil {
		return nil, fmt.Errorf("AI service error: %w", err)
	}

	var items []common.FridgeItem
	if err := s.parseAIResponse("plan/vision", resp.Content, &items); err != nil {
		return nil, err
	}

	// 名前が空のエントリは落とす
	filtered := make([]common.FridgeItem, 0, len(items))
	for _, item := range items {
		if item.Name == "" {
			continue
		}
		if item.Quantity == "" {
			item.Quantity = "数量不明"
		}
		filtered = append(filtered, item)
	}

	return filtered, nil
}
