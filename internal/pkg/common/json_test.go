package common

import (
	"testing"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "コードブロック付き",
			raw:  "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "前後に文章あり",
			raw:  "はい、結果は以下です。\n{\"a\": 1}\nご確認ください。",
			want: `{"a": 1}`,
		},
		{
			name: "配列",
			raw:  "結果: [1, 2, 3] です",
			want: `[1, 2, 3]`,
		},
		{
			name: "配列がオブジェクトより先",
			raw:  `[{"a": 1}, {"b": 2}]`,
			want: `[{"a": 1}, {"b": 2}]`,
		},
		{
			name: "JSONなし",
			raw:  "すみません、わかりません",
			want: "すみません、わかりません",
		},
		{
			name: "素のJSON",
			raw:  `{"a": 1}`,
			want: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONBlock(tt.raw); got != tt.want {
				t.Errorf("ExtractJSONBlock(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestQuoteJSONKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "未クォートのキー",
			raw:  `{name: "卵", amount: 2}`,
			want: `{"name": "卵", "amount": 2}`,
		},
		{
			name: "クォート済みはそのまま",
			raw:  `{"name": "卵"}`,
			want: `{"name": "卵"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteJSONKeys(tt.raw); got != tt.want {
				t.Errorf("QuoteJSONKeys(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("正常系", func(t *testing.T) {
		var p payload
		if err := ParseJSON(`{"name": "卵"}`, &p); err != nil {
			t.Fatalf("ParseJSON() error = %v", err)
		}
		if p.Name != "卵" {
			t.Errorf("Name = %q, want 卵", p.Name)
		}
	})

	t.Run("末尾に余分なデータ", func(t *testing.T) {
		var p payload
		if err := ParseJSON(`{"name": "卵"} {"name": "塩"}`, &p); err == nil {
			t.Error("expected error for trailing JSON data")
		}
	})

	t.Run("未知フィールド禁止", func(t *testing.T) {
		var p payload
		if err := ParseJSONStrict(`{"name": "卵", "extra": 1}`, &p); err == nil {
			t.Error("expected error for unknown field")
		}
	})
}

func TestStringSliceToString(t *testing.T) {
	if got := StringSliceToString([]string{"卵", "塩"}); got != "卵、塩" {
		t.Errorf("StringSliceToString() = %q, want 卵、塩", got)
	}
	if got := StringSliceToString(nil); got != "" {
		t.Errorf("StringSliceToString(nil) = %q, want empty", got)
	}
}

func TestFormatFridgeItems(t *testing.T) {
	items := []FridgeItem{
		{Name: "人参", Quantity: "2本"},
		{Name: "卵", Quantity: "1パック"},
	}
	want := "- 人参 (2本)\n- 卵 (1パック)"
	if got := FormatFridgeItems(items); got != want {
		t.Errorf("FormatFridgeItems() = %q, want %q", got, want)
	}
}
