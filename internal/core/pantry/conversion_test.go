package pantry

import "testing"

func TestNormalizeName(t *testing.T) {
	t.Run("resolves alias to canonical name", func(t *testing.T) {
		if got := NormalizeName("ウインナー"); got != "ソーセージ" {
			t.Errorf("NormalizeName(ウインナー) = %q, want ソーセージ", got)
		}
		if got := NormalizeName("玉子"); got != "卵" {
			t.Errorf("NormalizeName(玉子) = %q, want 卵", got)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := NormalizeName("えのきだけ")
		twice := NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName not idempotent: %q then %q", once, twice)
		}
	})

	t.Run("returns unknown names unchanged", func(t *testing.T) {
		if got := NormalizeName("人参"); got != "人参" {
			t.Errorf("NormalizeName(人参) = %q, want 人参", got)
		}
	})
}

func TestToBaseUnit(t *testing.T) {
	t.Run("converts pack to base unit", func(t *testing.T) {
		amount, unit := ToBaseUnit("ソーセージ", 1, "パック")
		if amount != 5 || unit != "本" {
			t.Errorf("ToBaseUnit(ソーセージ, 1, パック) = (%v, %q), want (5, 本)", amount, unit)
		}
	})

	t.Run("keeps base unit unchanged", func(t *testing.T) {
		amount, unit := ToBaseUnit("ソーセージ", 3, "本")
		if amount != 3 || unit != "本" {
			t.Errorf("ToBaseUnit(ソーセージ, 3, 本) = (%v, %q), want (3, 本)", amount, unit)
		}
	})

	t.Run("passes through without rule", func(t *testing.T) {
		amount, unit := ToBaseUnit("人参", 2, "本")
		if amount != 2 || unit != "本" {
			t.Errorf("ToBaseUnit(人参, 2, 本) = (%v, %q), want (2, 本)", amount, unit)
		}
	})

	t.Run("passes through unregistered unit", func(t *testing.T) {
		amount, unit := ToBaseUnit("ソーセージ", 100, "g")
		if amount != 100 || unit != "g" {
			t.Errorf("ToBaseUnit(ソーセージ, 100, g) = (%v, %q), want (100, g)", amount, unit)
		}
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		amount, unit := ToBaseUnit("しいたけ", 7, "個")
		if amount != 1.05 || unit != "パック" {
			t.Errorf("ToBaseUnit(しいたけ, 7, 個) = (%v, %q), want (1.05, パック)", amount, unit)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"ソーセージ", CategoryMeat},      // 換算表由来
		{"卵", CategoryEgg},           // 換算表由来
		{"人参", CategoryVegetable},    // 分類表由来
		{"醤油", CategorySeasoning},    // 分類表由来
		{"豆腐", CategorySoy},          // 分類表由来
		{"謎の食材", CategoryOther},      // 未登録
		{"まいたけ", CategoryMushroom},   // 分類表由来
		{"スパゲッティ", CategoryGrain},    // 分類表由来
		{"サーモン", CategorySeafood},    // 分類表由来
		{"とろけるチーズ", CategoryDairy},   // 分類表由来
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
