package pantry

import (
	"fmt"
	"strconv"
)

// vagueUnits 数量を表示しない単位
var vagueUnits = map[string]bool{"適量": true, "少々": true, "適宜": true}

// spoonUnits 単位が数量の前に来る単位（例: 大さじ1）
var spoonUnits = map[string]bool{"大さじ": true, "小さじ": true}

// FormatByCategory 分類ごとにグループ化して表示用の文字列リストを作る
// 非空の分類だけ固定順で「【分類】」ヘッダを出し、続けて各項目を 1 行ずつ並べる
func FormatByCategory(items []NormalizedItem) []string {
	grouped := make(map[Category][]NormalizedItem)
	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = CategoryOther
		}
		grouped[cat] = append(grouped[cat], item)
	}

	result := make([]string, 0, len(items)+len(grouped))
	for _, category := range categoryOrder {
		categoryItems, ok := grouped[category]
		if !ok {
			continue
		}
		result = append(result, fmt.Sprintf("【%s】", category))
		for _, item := range categoryItems {
			result = append(result, "  "+FormatItem(item))
		}
	}

	return result
}

// FormatItem 項目 1 件を表示用文字列にする
// 適量系は数量を出さず、さじ類は単位が先、それ以外は数量が先
func FormatItem(item NormalizedItem) string {
	switch {
	case vagueUnits[item.Unit]:
		return fmt.Sprintf("%s: %s", item.Name, item.Unit)
	case spoonUnits[item.Unit]:
		return fmt.Sprintf("%s: %s%s", item.Name, item.Unit, FormatAmount(item.Amount))
	default:
		return fmt.Sprintf("%s: %s%s", item.Name, FormatAmount(item.Amount), item.Unit)
	}
}

// FormatAmount 数量の表示（2 → "2"、0.5 → "0.5"、余計なゼロは付けない）
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
