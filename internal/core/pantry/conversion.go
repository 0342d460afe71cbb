package pantry

import "math"

// ConversionRule 食材 1 種類ぶんの単位換算規則
// Conversions は「単位 → 基本単位への倍率」、Aliases は別名の一覧
type ConversionRule struct {
	BaseUnit    string
	Conversions map[string]float64
	Aliases     []string
	Category    Category
}

// conversionTable 静的な換算表。起動後は読み取り専用
var conversionTable = map[string]ConversionRule{
	"ソーセージ": {
		BaseUnit:    "本",
		Conversions: map[string]float64{"パック": 5, "袋": 5},
		Aliases:     []string{"ウインナー", "フランクフルト", "ポークビッツ"},
		Category:    CategoryMeat,
	},
	"ベーコン": {
		BaseUnit:    "枚",
		Conversions: map[string]float64{"パック": 10},
		Category:    CategoryMeat,
	},
	"卵": {
		BaseUnit:    "個",
		Conversions: map[string]float64{"パック": 10},
		Aliases:     []string{"たまご", "玉子"},
		Category:    CategoryEgg,
	},
	"しめじ": {
		BaseUnit:    "パック",
		Conversions: map[string]float64{"袋": 1},
		Category:    CategoryMushroom,
	},
	"えのき": {
		BaseUnit:    "パック",
		Conversions: map[string]float64{"袋": 1},
		Aliases:     []string{"えのきだけ", "えのき茸"},
		Category:    CategoryMushroom,
	},
	"しいたけ": {
		BaseUnit:    "パック",
		Conversions: map[string]float64{"袋": 1, "個": 0.15}, // 約6-7個で1パック
		Aliases:     []string{"椎茸"},
		Category:    CategoryMushroom,
	},
	"もやし": {
		BaseUnit:    "パック",
		Conversions: map[string]float64{"袋": 1},
		Category:    CategoryVegetable,
	},
}

// nameAliasMap 別名 → 正規名。起動時に換算表から組み立てる
var nameAliasMap = map[string]string{}

func init() {
	for canonical, rule := range conversionTable {
		for _, alias := range rule.Aliases {
			nameAliasMap[alias] = canonical
		}
	}
}

// NormalizeName 食材の別名を正規名に統一する
// 別名登録が無ければそのまま返す。すでに正規名の入力には恒等
func NormalizeName(name string) string {
	if canonical, ok := nameAliasMap[name]; ok {
		return canonical
	}
	return name
}

// ToBaseUnit 数量をその食材の基本単位に換算する
// 例: ソーセージ 1パック → 5本
// 換算規則が無い・すでに基本単位・単位が未登録の場合はそのまま返す（緩く通し、エラーにしない）
func ToBaseUnit(name string, amount float64, unit string) (float64, string) {
	rule, ok := conversionTable[name]
	if !ok {
		return amount, unit
	}

	if unit == rule.BaseUnit {
		return amount, unit
	}

	if multiplier, ok := rule.Conversions[unit]; ok {
		return round2(amount * multiplier), rule.BaseUnit
	}

	return amount, unit
}

// round2 小数第 2 位に丸め、乗算の繰り返しによる浮動小数点誤差を抑える
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
