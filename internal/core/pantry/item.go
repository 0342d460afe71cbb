package pantry

// RawItem 外部（AI 抽出・手入力）から渡される生データ
type RawItem struct {
	Name        string `json:"name"`
	RawQuantity string `json:"raw_quantity"`
}

// NormalizedItem 正規化済みの食材項目。以降の計算の基準になる
// Unit が「適量」のとき Amount は常に 0 で、量としての意味を持たない
type NormalizedItem struct {
	Name     string   `json:"name"`
	Amount   float64  `json:"amount"`
	Unit     string   `json:"unit"`
	Category Category `json:"category"`
}

// Normalize 生データ 1 件を正規化する。別名の統一 → 数量解析 → 基本単位への換算 → 分類
func Normalize(item RawItem) NormalizedItem {
	canonical := NormalizeName(item.Name)
	parsed := ParseQuantity(item.RawQuantity)
	amount, unit := ToBaseUnit(canonical, parsed.Amount, parsed.Unit)
	return NormalizedItem{
		Name:     canonical,
		Amount:   amount,
		Unit:     unit,
		Category: Classify(canonical),
	}
}

// NormalizeAll 一括正規化
func NormalizeAll(items []RawItem) []NormalizedItem {
	out := make([]NormalizedItem, 0, len(items))
	for _, item := range items {
		out = append(out, Normalize(item))
	}
	return out
}

// Aggregate (名前, 単位) をキーに数量を合計する
// 出力順は各キーの初出順。分類は初出の値を採用する
// 同名でも単位が違えば別項目のまま残し、単位をまたいだ加算はしない
func Aggregate(items []NormalizedItem) []NormalizedItem {
	type key struct {
		name string
		unit string
	}

	index := make(map[key]int, len(items))
	out := make([]NormalizedItem, 0, len(items))

	for _, item := range items {
		k := key{name: item.Name, unit: item.Unit}
		if i, ok := index[k]; ok {
			out[i].Amount += item.Amount
			continue
		}
		index[k] = len(out)
		out = append(out, item)
	}

	return out
}
