package pantry

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Run("alias plus pack conversion", func(t *testing.T) {
		got := Normalize(RawItem{Name: "ウインナー", RawQuantity: "1パック"})
		want := NormalizedItem{Name: "ソーセージ", Amount: 5, Unit: "本", Category: CategoryMeat}
		if got != want {
			t.Errorf("Normalize = %+v, want %+v", got, want)
		}
	})

	t.Run("plain vegetable", func(t *testing.T) {
		got := Normalize(RawItem{Name: "人参", RawQuantity: "1/2本"})
		want := NormalizedItem{Name: "人参", Amount: 0.5, Unit: "本", Category: CategoryVegetable}
		if got != want {
			t.Errorf("Normalize = %+v, want %+v", got, want)
		}
	})

	t.Run("vague quantity", func(t *testing.T) {
		got := Normalize(RawItem{Name: "塩", RawQuantity: "少々"})
		want := NormalizedItem{Name: "塩", Amount: 0, Unit: UnitToTaste, Category: CategorySeasoning}
		if got != want {
			t.Errorf("Normalize = %+v, want %+v", got, want)
		}
	})
}

func TestAggregate(t *testing.T) {
	t.Run("sums same name and unit", func(t *testing.T) {
		items := []NormalizedItem{
			{Name: "人参", Amount: 1, Unit: "本", Category: CategoryVegetable},
			{Name: "人参", Amount: 2, Unit: "本", Category: CategoryVegetable},
		}
		got := Aggregate(items)
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Amount != 3 {
			t.Errorf("Amount = %v, want 3", got[0].Amount)
		}
	})

	t.Run("keeps different units separate", func(t *testing.T) {
		items := []NormalizedItem{
			{Name: "豚肉", Amount: 200, Unit: "g", Category: CategoryMeat},
			{Name: "豚肉", Amount: 1, Unit: "パック", Category: CategoryMeat},
		}
		got := Aggregate(items)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
	})

	t.Run("preserves insertion order of first occurrence", func(t *testing.T) {
		items := []NormalizedItem{
			{Name: "玉ねぎ", Amount: 1, Unit: "個", Category: CategoryVegetable},
			{Name: "人参", Amount: 1, Unit: "本", Category: CategoryVegetable},
			{Name: "玉ねぎ", Amount: 2, Unit: "個", Category: CategoryVegetable},
		}
		got := Aggregate(items)
		if len(got) != 2 || got[0].Name != "玉ねぎ" || got[1].Name != "人参" {
			t.Errorf("order = %+v, want 玉ねぎ then 人参", got)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		items := []NormalizedItem{
			{Name: "人参", Amount: 1, Unit: "本", Category: CategoryVegetable},
			{Name: "人参", Amount: 2, Unit: "本", Category: CategoryVegetable},
			{Name: "卵", Amount: 3, Unit: "個", Category: CategoryEgg},
			{Name: "豚肉", Amount: 150, Unit: "g", Category: CategoryMeat},
			{Name: "卵", Amount: 2, Unit: "個", Category: CategoryEgg},
		}
		once := Aggregate(items)
		twice := Aggregate(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Aggregate not idempotent:\nonce  = %+v\ntwice = %+v", once, twice)
		}
	})
}
