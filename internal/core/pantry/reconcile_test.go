package pantry

import "testing"

func item(name string, amount float64, unit string, cat Category) NormalizedItem {
	return NormalizedItem{Name: name, Amount: amount, Unit: unit, Category: cat}
}

func TestReconcileFullCoverage(t *testing.T) {
	required := []NormalizedItem{item("人参", 2, "本", CategoryVegetable)}
	fridge := []NormalizedItem{item("人参", 3, "本", CategoryVegetable)}

	got := Reconcile(required, fridge)

	if len(got.ShoppingList) != 0 {
		t.Errorf("ShoppingList = %+v, want empty", got.ShoppingList)
	}
	if len(got.UsageList) != 1 || got.UsageList[0].Amount != 2 {
		t.Errorf("UsageList = %+v, want [人参 2本]", got.UsageList)
	}
}

func TestReconcilePartialCoverage(t *testing.T) {
	required := []NormalizedItem{item("人参", 2, "本", CategoryVegetable)}
	fridge := []NormalizedItem{item("人参", 1, "本", CategoryVegetable)}

	got := Reconcile(required, fridge)

	if len(got.UsageList) != 1 || got.UsageList[0].Amount != 1 {
		t.Errorf("UsageList = %+v, want [人参 1本]", got.UsageList)
	}
	if len(got.ShoppingList) != 1 || got.ShoppingList[0].Amount != 1 {
		t.Errorf("ShoppingList = %+v, want [人参 1本]", got.ShoppingList)
	}
}

func TestReconcileConservation(t *testing.T) {
	// 完全一致かつ在庫不足のとき、使用量＋買い出し量＝必要量になる
	required := []NormalizedItem{item("豚肉", 300, "g", CategoryMeat)}
	fridge := []NormalizedItem{item("豚肉", 120, "g", CategoryMeat)}

	got := Reconcile(required, fridge)

	var usage, shopping float64
	for _, u := range got.UsageList {
		usage += u.Amount
	}
	for _, s := range got.ShoppingList {
		shopping += s.Amount
	}
	if usage+shopping != 300 {
		t.Errorf("usage(%v) + shopping(%v) = %v, want 300", usage, shopping, usage+shopping)
	}
}

func TestReconcileExhaustedStock(t *testing.T) {
	// 同じ在庫を先の要求が使い切ると、後の要求は丸ごと買い出しへ
	required := []NormalizedItem{
		item("卵", 4, "個", CategoryEgg),
		item("卵", 3, "個", CategoryEgg),
	}
	fridge := []NormalizedItem{item("卵", 4, "個", CategoryEgg)}

	got := Reconcile(required, fridge)

	if len(got.UsageList) != 1 || got.UsageList[0].Amount != 4 {
		t.Errorf("UsageList = %+v, want [卵 4個]", got.UsageList)
	}
	if len(got.ShoppingList) != 1 || got.ShoppingList[0].Amount != 3 {
		t.Errorf("ShoppingList = %+v, want [卵 3個]", got.ShoppingList)
	}
}

func TestReconcileGreedyOrder(t *testing.T) {
	// 足りない在庫の取り合いは先に並んだ要求が勝つ
	required := []NormalizedItem{
		item("牛乳", 1, "本", CategoryDairy),
		item("牛乳", 1, "本", CategoryDairy),
	}
	fridge := []NormalizedItem{item("牛乳", 1, "本", CategoryDairy)}

	got := Reconcile(required, fridge)

	if len(got.UsageList) != 1 || got.UsageList[0].Amount != 1 {
		t.Errorf("UsageList = %+v, want [牛乳 1本]", got.UsageList)
	}
	if len(got.ShoppingList) != 1 || got.ShoppingList[0].Amount != 1 {
		t.Errorf("ShoppingList = %+v, want [牛乳 1本]", got.ShoppingList)
	}
}

func TestReconcileCrossUnitFallback(t *testing.T) {
	t.Run("claims whole stock lot and still lists requirement", func(t *testing.T) {
		required := []NormalizedItem{item("豚肉", 200, "g", CategoryMeat)}
		fridge := []NormalizedItem{item("豚肉", 1, "パック", CategoryMeat)}

		got := Reconcile(required, fridge)

		// 在庫側の単位で使用量が出る
		if len(got.UsageList) != 1 {
			t.Fatalf("UsageList = %+v, want one entry", got.UsageList)
		}
		if got.UsageList[0].Unit != "パック" || got.UsageList[0].Amount != 1 {
			t.Errorf("UsageList[0] = %+v, want 豚肉 1パック", got.UsageList[0])
		}
		// 単位が違い充足を保証できないため、要求もそのまま買い出しへ
		if len(got.ShoppingList) != 1 {
			t.Fatalf("ShoppingList = %+v, want one entry", got.ShoppingList)
		}
		if got.ShoppingList[0].Unit != "g" || got.ShoppingList[0].Amount != 200 {
			t.Errorf("ShoppingList[0] = %+v, want 豚肉 200g", got.ShoppingList[0])
		}
	})

	t.Run("second requirement finds the lot already consumed", func(t *testing.T) {
		required := []NormalizedItem{
			item("豚肉", 200, "g", CategoryMeat),
			item("豚肉", 100, "g", CategoryMeat),
		}
		fridge := []NormalizedItem{item("豚肉", 1, "パック", CategoryMeat)}

		got := Reconcile(required, fridge)

		if len(got.UsageList) != 1 {
			t.Errorf("UsageList = %+v, want single claimed lot", got.UsageList)
		}
		// 両方の要求が買い出しに載り、同一キーなので合算される
		if len(got.ShoppingList) != 1 || got.ShoppingList[0].Amount != 300 {
			t.Errorf("ShoppingList = %+v, want [豚肉 300g]", got.ShoppingList)
		}
	})
}

func TestReconcileNoMatch(t *testing.T) {
	t.Run("missing item goes to shopping list", func(t *testing.T) {
		required := []NormalizedItem{item("大根", 1, "本", CategoryVegetable)}

		got := Reconcile(required, nil)

		if len(got.ShoppingList) != 1 || got.ShoppingList[0].Name != "大根" {
			t.Errorf("ShoppingList = %+v, want [大根 1本]", got.ShoppingList)
		}
	})

	t.Run("to-taste requirement is dropped silently", func(t *testing.T) {
		required := []NormalizedItem{item("塩", 0, UnitToTaste, CategorySeasoning)}

		got := Reconcile(required, nil)

		if len(got.ShoppingList) != 0 {
			t.Errorf("ShoppingList = %+v, want empty", got.ShoppingList)
		}
		if len(got.UsageList) != 0 {
			t.Errorf("UsageList = %+v, want empty", got.UsageList)
		}
	})
}

func TestReconcileAggregatesDuplicateRequirements(t *testing.T) {
	// 別々のレシピ由来の同じ食材は出力側で合算される
	required := []NormalizedItem{
		item("玉ねぎ", 1, "個", CategoryVegetable),
		item("玉ねぎ", 2, "個", CategoryVegetable),
	}

	got := Reconcile(required, nil)

	if len(got.ShoppingList) != 1 || got.ShoppingList[0].Amount != 3 {
		t.Errorf("ShoppingList = %+v, want [玉ねぎ 3個]", got.ShoppingList)
	}
}

func TestReconcilePartialRoundsMissingAmount(t *testing.T) {
	required := []NormalizedItem{item("牛乳", 0.75, "本", CategoryDairy)}
	fridge := []NormalizedItem{item("牛乳", 0.5, "本", CategoryDairy)}

	got := Reconcile(required, fridge)

	if len(got.ShoppingList) != 1 || got.ShoppingList[0].Amount != 0.25 {
		t.Errorf("ShoppingList = %+v, want [牛乳 0.25本]", got.ShoppingList)
	}
}
