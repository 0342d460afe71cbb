package pantry

import (
	"regexp"
	"strconv"
	"strings"
)

// UnitToTaste 「適量」を表す番兵単位。数量不明や少量を示し、amount は常に 0
const UnitToTaste = "適量"

// 大さじ/小さじ は単位が数字の前に来る（例: 大さじ2, 小さじ1/2）
var (
	spoonPattern    = regexp.MustCompile(`^(大さじ|小さじ)([\d.]+(?:/\d+)?)$`)
	fractionPattern = regexp.MustCompile(`^(\d+)/(\d+)\s*(.*)$`)
	decimalPattern  = regexp.MustCompile(`^([\d.]+)\s*(.*)$`)
)

// vagueKeywords 曖昧な数量表現
var vagueKeywords = []string{"適量", "少々", "適宜"}

// ParsedQuantity 解析済みの数量
type ParsedQuantity struct {
	Amount float64
	Unit   string
}

// ParseQuantity 生の数量文字列を解析する
// 例: "1パック" → {1, パック}、"1/2本" → {0.5, 本}、"大さじ2" → {2, 大さじ}
// どんな入力でも必ず結果を返し、失敗しない
func ParseQuantity(raw string) ParsedQuantity {
	if raw == "" || raw == "数量不明" {
		return ParsedQuantity{Amount: 0, Unit: UnitToTaste}
	}

	// 大さじ/小さじ パターン
	if m := spoonPattern.FindStringSubmatch(raw); m != nil {
		return ParsedQuantity{Amount: parseNumber(m[2]), Unit: m[1]}
	}

	// 分数パターン: 1/2, 1/4 など
	if m := fractionPattern.FindStringSubmatch(raw); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		denom, _ := strconv.ParseFloat(m[2], 64)
		unit := m[3]
		if unit == "" {
			unit = "個"
		}
		return ParsedQuantity{Amount: num / denom, Unit: unit}
	}

	// 整数・小数パターン: 200g, 1.5パック など
	if m := decimalPattern.FindStringSubmatch(raw); m != nil {
		if amount, err := strconv.ParseFloat(m[1], 64); err == nil {
			unit := m[2]
			if unit == "" {
				unit = "個"
			}
			return ParsedQuantity{Amount: amount, Unit: unit}
		}
	}

	// 適量、少々など
	for _, kw := range vagueKeywords {
		if strings.Contains(raw, kw) {
			return ParsedQuantity{Amount: 0, Unit: UnitToTaste}
		}
	}

	// 解析できない場合は文字列全体を単位として扱う（例: "少量"）
	return ParsedQuantity{Amount: 1, Unit: raw}
}

// parseNumber 整数・小数・単純な分数（a/b）を解析する
func parseNumber(s string) float64 {
	if i := strings.Index(s, "/"); i >= 0 {
		num, _ := strconv.ParseFloat(s[:i], 64)
		denom, _ := strconv.ParseFloat(s[i+1:], 64)
		if denom == 0 {
			return 0
		}
		return num / denom
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
