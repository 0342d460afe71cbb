package pantry

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		amount float64
		unit   string
	}{
		{"empty string", "", 0, "適量"},
		{"unknown quantity", "数量不明", 0, "適量"},
		{"tablespoon", "大さじ2", 2, "大さじ"},
		{"teaspoon fraction", "小さじ1/2", 0.5, "小さじ"},
		{"tablespoon decimal", "大さじ1.5", 1.5, "大さじ"},
		{"leading fraction with unit", "1/2本", 0.5, "本"},
		{"leading fraction without unit", "1/4", 0.25, "個"},
		{"integer with unit", "200g", 200, "g"},
		{"decimal with unit", "1.5パック", 1.5, "パック"},
		{"integer without unit", "3", 3, "個"},
		{"to taste", "適量", 0, "適量"},
		{"a little", "少々", 0, "適量"},
		{"as needed", "適宜", 0, "適量"},
		{"vague keyword inside text", "お好みで適量", 0, "適量"},
		{"bare word fallback", "少量", 1, "少量"},
		{"unparseable fallback", "ひとつかみ", 1, "ひとつかみ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuantity(tt.raw)
			if got.Amount != tt.amount {
				t.Errorf("ParseQuantity(%q).Amount = %v, want %v", tt.raw, got.Amount, tt.amount)
			}
			if got.Unit != tt.unit {
				t.Errorf("ParseQuantity(%q).Unit = %q, want %q", tt.raw, got.Unit, tt.unit)
			}
		})
	}
}

func TestParseQuantitySpoonMatchesWholeAndFraction(t *testing.T) {
	whole := ParseQuantity("大さじ1")
	frac := ParseQuantity("大さじ1/2")

	if whole.Unit != frac.Unit {
		t.Errorf("spoon unit mismatch: %q vs %q", whole.Unit, frac.Unit)
	}
	if frac.Amount != 0.5 {
		t.Errorf("fractional spoon amount = %v, want 0.5", frac.Amount)
	}
}
