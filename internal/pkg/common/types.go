package common

import (
	"fmt"
	"strings"
)

// FridgeItem 冷蔵庫の在庫 1 件（数量は自由記述のまま保持する）
type FridgeItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// MealSet 1 食分の献立（材料も食事単位で持つ）
type MealSet struct {
	Main               string   `json:"main"`
	Side               string   `json:"side"`
	Soup               string   `json:"soup"`
	Ingredients        []string `json:"ingredients"`
	IngredientsUsed    []string `json:"ingredients_used,omitempty"`
	IngredientsMissing []string `json:"ingredients_missing,omitempty"`
}

// DayMenu 1 日分の献立。meals のキーは食事タイプ
// ("breakfast", "lunch", "dinner", "snack", "night_snack")
type DayMenu struct {
	DayLabel string             `json:"day_label"`
	Meals    map[string]MealSet `json:"meals"`
}

// MealType 食事タイプの定数
const (
	MealBreakfast  = "breakfast"
	MealLunch      = "lunch"
	MealDinner     = "dinner"
	MealSnack      = "snack"
	MealNightSnack = "night_snack"
)

// IsSnackType 間食・夜食なら true（主菜のみ提案する食事タイプ）
func IsSnackType(mealType string) bool {
	return mealType == MealSnack || mealType == MealNightSnack
}

// RecipeDetail 1 品分のレシピ
type RecipeDetail struct {
	Name        string   `json:"name"`
	Steps       []string `json:"steps"`
	Tips        string   `json:"tips,omitempty"`
	CookingTime string   `json:"cookingTime"`
}

// RecipeSet 主菜・副菜・汁物のレシピ一式
type RecipeSet struct {
	MainRecipe RecipeDetail  `json:"mainRecipe"`
	SideRecipe *RecipeDetail `json:"sideRecipe,omitempty"`
	SoupRecipe *RecipeDetail `json:"soupRecipe,omitempty"`
}

// RegeneratedMeal 再生成された 1 食分の提案
type RegeneratedMeal struct {
	Menu        MealSet  `json:"menu"`
	Ingredients []string `json:"ingredients"`
}

// FormatFridgeItems 在庫リストをプロンプト用のテキストに整形する
func FormatFridgeItems(items []FridgeItem) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s (%s)\n", item.Name, item.Quantity))
	}
	return strings.TrimRight(sb.String(), "\n")
}
