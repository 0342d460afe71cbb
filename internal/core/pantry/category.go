package pantry

// Category 食材の分類（表示用。調味料は常に最後）
type Category string

const (
	CategoryVegetable Category = "野菜"
	CategoryMushroom  Category = "きのこ類"
	CategoryMeat      Category = "肉類"
	CategorySeafood   Category = "魚介類"
	CategoryDairy     Category = "乳製品"
	CategoryEgg       Category = "卵"
	CategorySoy       Category = "豆腐・大豆製品"
	CategoryGrain     Category = "穀物・麺類"
	CategoryOther     Category = "その他"
	CategorySeasoning Category = "調味料"
)

// categoryOrder 分類の固定表示順
var categoryOrder = []Category{
	CategoryVegetable,
	CategoryMushroom,
	CategoryMeat,
	CategorySeafood,
	CategoryDairy,
	CategoryEgg,
	CategorySoy,
	CategoryGrain,
	CategoryOther,
	CategorySeasoning,
}

// CategoryOrder 分類表示順のコピーを返す
func CategoryOrder() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Classify 食材の分類を求める
// 換算表に宣言された分類 → 分類表 → 既定の「その他」の順で引き、失敗しない
func Classify(name string) Category {
	if rule, ok := conversionTable[name]; ok {
		return rule.Category
	}
	if category, ok := categoryMap[name]; ok {
		return category
	}
	return CategoryOther
}

// categoryMap 単位換算は不要だが分類はしたい食材
var categoryMap = map[string]Category{
	// 野菜
	"じゃがいも": CategoryVegetable, "ジャガイモ": CategoryVegetable, "じゃが芋": CategoryVegetable, "馬鈴薯": CategoryVegetable,
	"人参": CategoryVegetable, "にんじん": CategoryVegetable, "ニンジン": CategoryVegetable,
	"玉ねぎ": CategoryVegetable, "たまねぎ": CategoryVegetable, "タマネギ": CategoryVegetable,
	"大根": CategoryVegetable, "だいこん": CategoryVegetable,
	"キャベツ": CategoryVegetable, "きゃべつ": CategoryVegetable,
	"白菜": CategoryVegetable, "はくさい": CategoryVegetable,
	"レタス": CategoryVegetable, "れたす": CategoryVegetable,
	"トマト": CategoryVegetable, "とまと": CategoryVegetable, "ミニトマト": CategoryVegetable,
	"きゅうり": CategoryVegetable, "キュウリ": CategoryVegetable, "胡瓜": CategoryVegetable,
	"なす": CategoryVegetable, "ナス": CategoryVegetable, "茄子": CategoryVegetable,
	"ピーマン": CategoryVegetable, "ぴーまん": CategoryVegetable, "パプリカ": CategoryVegetable,
	"ほうれん草": CategoryVegetable, "ホウレンソウ": CategoryVegetable, "ほうれんそう": CategoryVegetable,
	"小松菜": CategoryVegetable, "こまつな": CategoryVegetable,
	"ブロッコリー": CategoryVegetable, "ぶろっこりー": CategoryVegetable,
	"かぼちゃ": CategoryVegetable, "カボチャ": CategoryVegetable, "南瓜": CategoryVegetable,
	"ごぼう": CategoryVegetable, "ゴボウ": CategoryVegetable, "牛蒡": CategoryVegetable,
	"れんこん": CategoryVegetable, "レンコン": CategoryVegetable, "蓮根": CategoryVegetable,
	"ねぎ": CategoryVegetable, "ネギ": CategoryVegetable, "長ネギ": CategoryVegetable, "長ねぎ": CategoryVegetable,
	"青ネギ": CategoryVegetable, "万能ねぎ": CategoryVegetable,
	"ニラ": CategoryVegetable, "にら": CategoryVegetable, "韮": CategoryVegetable,
	"アスパラ": CategoryVegetable, "アスパラガス": CategoryVegetable,
	"さつまいも": CategoryVegetable, "サツマイモ": CategoryVegetable, "薩摩芋": CategoryVegetable,
	"里芋": CategoryVegetable, "さといも": CategoryVegetable,
	"にんにく": CategoryVegetable, "ニンニク": CategoryVegetable, "大蒜": CategoryVegetable,
	"生姜": CategoryVegetable, "しょうが": CategoryVegetable, "ショウガ": CategoryVegetable,
	"大葉": CategoryVegetable, "しそ": CategoryVegetable, "紫蘇": CategoryVegetable,
	"水菜": CategoryVegetable, "みずな": CategoryVegetable,
	"セロリ": CategoryVegetable, "せろり": CategoryVegetable,
	"オクラ": CategoryVegetable, "おくら": CategoryVegetable,
	"ズッキーニ": CategoryVegetable,
	"アボカド":  CategoryVegetable,

	// きのこ類
	"きのこ": CategoryMushroom, "キノコ": CategoryMushroom,
	"まいたけ": CategoryMushroom, "マイタケ": CategoryMushroom, "舞茸": CategoryMushroom,
	"エリンギ": CategoryMushroom, "えりんぎ": CategoryMushroom,
	"マッシュルーム": CategoryMushroom, "ましゅるーむ": CategoryMushroom,
	"なめこ": CategoryMushroom, "ナメコ": CategoryMushroom,
	"きくらげ": CategoryMushroom, "キクラゲ": CategoryMushroom, "木耳": CategoryMushroom,

	// 肉類
	"豚肉": CategoryMeat, "ぶたにく": CategoryMeat, "豚バラ": CategoryMeat, "豚ロース": CategoryMeat, "豚こま": CategoryMeat,
	"鶏肉": CategoryMeat, "とりにく": CategoryMeat, "鶏もも": CategoryMeat, "鶏モモ": CategoryMeat, "鶏もも肉": CategoryMeat,
	"鶏むね": CategoryMeat, "鶏むね肉": CategoryMeat, "鶏胸肉": CategoryMeat, "鶏ささみ": CategoryMeat, "ささみ": CategoryMeat,
	"牛肉": CategoryMeat, "ぎゅうにく": CategoryMeat, "牛バラ": CategoryMeat, "ビーフステーキ": CategoryMeat, "ステーキ": CategoryMeat, "ステーキ肉": CategoryMeat,
	"ひき肉": CategoryMeat, "挽き肉": CategoryMeat, "ミンチ": CategoryMeat, "ミンチ肉": CategoryMeat, "合挽き": CategoryMeat,
	"合いびき": CategoryMeat, "合挽き肉": CategoryMeat, "合びき肉": CategoryMeat, "豚ひき肉": CategoryMeat, "鶏ひき肉": CategoryMeat,
	"牛ひき肉": CategoryMeat, "牛豚合挽き": CategoryMeat,
	"ハム": CategoryMeat, "はむ": CategoryMeat,
	"手羽元": CategoryMeat, "手羽先": CategoryMeat,

	// 魚介類
	"鮭": CategorySeafood, "さけ": CategorySeafood, "サーモン": CategorySeafood,
	"さば": CategorySeafood, "サバ": CategorySeafood, "鯖": CategorySeafood,
	"まぐろ": CategorySeafood, "マグロ": CategorySeafood, "鮪": CategorySeafood,
	"えび": CategorySeafood, "エビ": CategorySeafood, "海老": CategorySeafood,
	"いか": CategorySeafood, "イカ": CategorySeafood, "烏賊": CategorySeafood,
	"たこ": CategorySeafood, "タコ": CategorySeafood, "蛸": CategorySeafood,
	"あさり": CategorySeafood, "アサリ": CategorySeafood, "浅蜊": CategorySeafood,
	"しじみ": CategorySeafood, "シジミ": CategorySeafood,
	"たら": CategorySeafood, "タラ": CategorySeafood, "鱈": CategorySeafood,
	"ぶり": CategorySeafood, "ブリ": CategorySeafood, "鰤": CategorySeafood,
	"あじ": CategorySeafood, "アジ": CategorySeafood, "鯵": CategorySeafood,
	"ちくわ": CategorySeafood, "竹輪": CategorySeafood,
	"かまぼこ": CategorySeafood, "蒲鉾": CategorySeafood,
	"かに": CategorySeafood, "カニ": CategorySeafood, "蟹": CategorySeafood, "カニカマ": CategorySeafood,
	"ツナ": CategorySeafood, "ツナ缶": CategorySeafood, "シーチキン": CategorySeafood,

	// 乳製品
	"牛乳": CategoryDairy, "ぎゅうにゅう": CategoryDairy, "ミルク": CategoryDairy,
	"チーズ": CategoryDairy, "ちーず": CategoryDairy, "スライスチーズ": CategoryDairy, "とろけるチーズ": CategoryDairy,
	"ピザ用チーズ": CategoryDairy, "モッツァレラチーズ": CategoryDairy, "クリームチーズ": CategoryDairy,
	"カマンベールチーズ": CategoryDairy, "チェダーチーズ": CategoryDairy,
	"バター": CategoryDairy, "ばたー": CategoryDairy,
	"ヨーグルト": CategoryDairy, "よーぐると": CategoryDairy,
	"生クリーム": CategoryDairy, "クリーム": CategoryDairy,

	// 豆腐・大豆製品
	"豆腐": CategorySoy, "とうふ": CategorySoy,
	"絹ごし豆腐": CategorySoy, "木綿豆腐": CategorySoy,
	"納豆": CategorySoy, "なっとう": CategorySoy,
	"油揚げ": CategorySoy, "あぶらあげ": CategorySoy,
	"厚揚げ": CategorySoy, "あつあげ": CategorySoy,
	"豆乳": CategorySoy, "とうにゅう": CategorySoy,
	"大豆": CategorySoy, "だいず": CategorySoy,
	"がんもどき": CategorySoy, "がんも": CategorySoy,
	"おから": CategorySoy,

	// 穀物・麺類
	"米": CategoryGrain, "こめ": CategoryGrain, "ご飯": CategoryGrain, "ごはん": CategoryGrain,
	"パン": CategoryGrain, "ぱん": CategoryGrain, "食パン": CategoryGrain, "フランスパン": CategoryGrain,
	"バゲット": CategoryGrain, "バンズ": CategoryGrain, "ハンバーガーバンズ": CategoryGrain,
	"うどん": CategoryGrain, "ウドン": CategoryGrain,
	"そば": CategoryGrain, "蕎麦": CategoryGrain,
	"パスタ": CategoryGrain, "スパゲッティ": CategoryGrain, "スパゲティ": CategoryGrain,
	"ラーメン": CategoryGrain, "中華麺": CategoryGrain,
	"そうめん": CategoryGrain, "素麺": CategoryGrain,
	"餅": CategoryGrain, "もち": CategoryGrain,
	"小麦粉": CategoryGrain, "薄力粉": CategoryGrain, "強力粉": CategoryGrain,
	"片栗粉": CategoryGrain,

	// 調味料
	"醤油": CategorySeasoning, "しょうゆ": CategorySeasoning, "しょう油": CategorySeasoning,
	"味噌": CategorySeasoning, "みそ": CategorySeasoning, "ミソ": CategorySeasoning,
	"塩": CategorySeasoning, "しお": CategorySeasoning,
	"砂糖": CategorySeasoning, "さとう": CategorySeasoning,
	"酢": CategorySeasoning, "す": CategorySeasoning, "お酢": CategorySeasoning,
	"みりん": CategorySeasoning, "ミリン": CategorySeasoning, "味醂": CategorySeasoning,
	"酒": CategorySeasoning, "料理酒": CategorySeasoning, "日本酒": CategorySeasoning,
	"油": CategorySeasoning, "サラダ油": CategorySeasoning, "ごま油": CategorySeasoning, "オリーブオイル": CategorySeasoning,
	"マヨネーズ": CategorySeasoning, "まよねーず": CategorySeasoning,
	"ケチャップ": CategorySeasoning, "けちゃっぷ": CategorySeasoning,
	"ソース": CategorySeasoning, "中濃ソース": CategorySeasoning, "ウスターソース": CategorySeasoning,
	"めんつゆ": CategorySeasoning, "麺つゆ": CategorySeasoning,
	"だし": CategorySeasoning, "出汁": CategorySeasoning, "顆粒だし": CategorySeasoning, "ほんだし": CategorySeasoning,
	"コンソメ": CategorySeasoning, "コンソメキューブ": CategorySeasoning, "顆粒コンソメ": CategorySeasoning,
	"鶏ガラスープ": CategorySeasoning, "鶏がらスープ": CategorySeasoning,
	"こしょう": CategorySeasoning, "コショウ": CategorySeasoning, "胡椒": CategorySeasoning,
	"わさび": CategorySeasoning, "からし": CategorySeasoning, "マスタード": CategorySeasoning,
	"ポン酢": CategorySeasoning, "ぽんず": CategorySeasoning,
	"オイスターソース": CategorySeasoning,
	"豆板醤": CategorySeasoning, "トウバンジャン": CategorySeasoning,
	"甜麺醤": CategorySeasoning, "テンメンジャン": CategorySeasoning,
	"カレー粉": CategorySeasoning, "カレールー": CategorySeasoning,
	"シチューの素": CategorySeasoning, "シチュールー": CategorySeasoning,
	"粉チーズ": CategorySeasoning, "パルメザンチーズ": CategorySeasoning,
	"バーベキューソース": CategorySeasoning, "BBQソース": CategorySeasoning,
	"白ワイン": CategorySeasoning, "赤ワイン": CategorySeasoning, "ワイン": CategorySeasoning,
	"オリーブ油": CategorySeasoning, "サフラン": CategorySeasoning,
}
