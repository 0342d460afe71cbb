package pantry

import (
	"reflect"
	"testing"
)

func TestFormatItem(t *testing.T) {
	tests := []struct {
		name string
		item NormalizedItem
		want string
	}{
		{"normal unit", item("人参", 2, "本", CategoryVegetable), "人参: 2本"},
		{"decimal amount", item("牛乳", 0.5, "本", CategoryDairy), "牛乳: 0.5本"},
		{"spoon unit comes first", item("醤油", 2, "大さじ", CategorySeasoning), "醤油: 大さじ2"},
		{"fractional spoon", item("砂糖", 0.5, "小さじ", CategorySeasoning), "砂糖: 小さじ0.5"},
		{"vague unit hides amount", item("塩", 0, "適量", CategorySeasoning), "塩: 適量"},
		{"a little hides amount", item("こしょう", 0, "少々", CategorySeasoning), "こしょう: 少々"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatItem(tt.item); got != tt.want {
				t.Errorf("FormatItem = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatByCategory(t *testing.T) {
	t.Run("fixed category order regardless of input order", func(t *testing.T) {
		items := []NormalizedItem{
			item("醤油", 1, "大さじ", CategorySeasoning),
			item("人参", 2, "本", CategoryVegetable),
		}

		got := FormatByCategory(items)
		want := []string{
			"【野菜】",
			"  人参: 2本",
			"【調味料】",
			"  醤油: 大さじ1",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FormatByCategory = %#v, want %#v", got, want)
		}
	})

	t.Run("skips empty categories", func(t *testing.T) {
		items := []NormalizedItem{item("卵", 2, "個", CategoryEgg)}

		got := FormatByCategory(items)
		want := []string{"【卵】", "  卵: 2個"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FormatByCategory = %#v, want %#v", got, want)
		}
	})

	t.Run("unknown category falls back to other", func(t *testing.T) {
		items := []NormalizedItem{{Name: "謎の食材", Amount: 1, Unit: "個"}}

		got := FormatByCategory(items)
		want := []string{"【その他】", "  謎の食材: 1個"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FormatByCategory = %#v, want %#v", got, want)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := FormatByCategory(nil); len(got) != 0 {
			t.Errorf("FormatByCategory(nil) = %#v, want empty", got)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{0.5, "0.5"},
		{1.05, "1.05"},
		{200, "200"},
		{0.25, "0.25"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
