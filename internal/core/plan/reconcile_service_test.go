package plan

import (
	"reflect"
	"testing"

	"fridge-planner/internal/core/pantry"
	"fridge-planner/internal/pkg/common"
)

func TestSplitIngredientLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want pantry.RawItem
	}{
		{
			name: "半角コロン",
			line: "豚肉: 200g",
			want: pantry.RawItem{Name: "豚肉", RawQuantity: "200g"},
		},
		{
			name: "全角コロン",
			line: "人参：1本",
			want: pantry.RawItem{Name: "人参", RawQuantity: "1本"},
		},
		{
			name: "空白なし",
			line: "卵:2個",
			want: pantry.RawItem{Name: "卵", RawQuantity: "2個"},
		},
		{
			name: "区切りなし",
			line: "塩",
			want: pantry.RawItem{Name: "塩"},
		},
		{
			name: "前後の空白を除去",
			line: "  玉ねぎ : 1個 ",
			want: pantry.RawItem{Name: "玉ねぎ", RawQuantity: "1個"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitIngredientLine(tt.line)
			if got != tt.want {
				t.Errorf("splitIngredientLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFallbackResult(t *testing.T) {
	svc := &ReconcileService{}

	req := RecalculateRequest{
		Ingredients: []common.FridgeItem{{Name: "人参", Quantity: "2本"}},
		MenuDays: []common.DayMenu{
			{
				DayLabel: "1日目",
				Meals: map[string]common.MealSet{
					common.MealDinner: {
						Main:        "豚肉の生姜焼き",
						Ingredients: []string{"豚肉: 200g", "人参: 1本", "塩: 少々"},
					},
				},
			},
			{
				DayLabel: "2日目",
				Meals: map[string]common.MealSet{
					common.MealDinner: {
						Main:        "野菜炒め",
						Ingredients: []string{"人参: 1本"},
					},
				},
			},
		},
	}

	got := svc.fallbackResult(req)

	// 在庫は無視して、献立の食材全量がカテゴリ別の買い出しリストになる
	wantShopping := []string{
		"【野菜】",
		"  人参: 2本",
		"【肉類】",
		"  豚肉: 200g",
		"【調味料】",
		"  塩: 適量",
	}
	if !reflect.DeepEqual(got.TotalShoppingList, wantShopping) {
		t.Errorf("TotalShoppingList = %v, want %v", got.TotalShoppingList, wantShopping)
	}
	if len(got.TotalFridgeUsage) != 0 {
		t.Errorf("TotalFridgeUsage = %v, want empty", got.TotalFridgeUsage)
	}
	if got.Updates == nil || len(got.Updates) != 0 {
		t.Errorf("Updates = %v, want empty non-nil slice", got.Updates)
	}
}

func TestFormatStockLines(t *testing.T) {
	items := []common.FridgeItem{
		{Name: "人参", Quantity: "2本"},
		{Name: "卵", Quantity: "1パック"},
	}

	want := "- 人参: 2本\n- 卵: 1パック"
	if got := formatStockLines(items); got != want {
		t.Errorf("formatStockLines() = %q, want %q", got, want)
	}

	if got := formatStockLines(nil); got != "" {
		t.Errorf("formatStockLines(nil) = %q, want empty", got)
	}
}

func TestFormatMenuSummary(t *testing.T) {
	// meals は map なので、順序が揺れないよう 1 日 1 食にする
	menuDays := []common.DayMenu{
		{
			DayLabel: "1日目",
			Meals: map[string]common.MealSet{
				common.MealDinner: {
					Main:        "カレーライス",
					Side:        "サラダ",
					Ingredients: []string{"じゃがいも: 2個", "カレールー: 1箱"},
				},
			},
		},
	}

	got := formatMenuSummary(menuDays)
	want := `[{"day_label":"1日目","meals":[{"name":"カレーライス","ingredients":["じゃがいも: 2個","カレールー: 1箱"]}]}]`
	if got != want {
		t.Errorf("formatMenuSummary() = %s, want %s", got, want)
	}
}
