package pantry

// ReconcileResult 差分計算の結果
// ShoppingList は買い出しが必要な分、UsageList は冷蔵庫から使う分
type ReconcileResult struct {
	ShoppingList []NormalizedItem `json:"shopping_list"`
	UsageList    []NormalizedItem `json:"usage_list"`
}

// stockEntry 一回の差分計算の間だけ生きる在庫の作業コピー
type stockEntry struct {
	amount   float64
	unit     string
	category Category
}

type stockKey struct {
	name string
	unit string
}

// Reconcile 必要量と冷蔵庫在庫の差分を計算する
//
// 必要品目を渡された順に処理し、在庫を貪欲に割り当てる：
//  1. 名前＋単位の完全一致を優先。足りなければ一部使用＋不足分を買い出しへ
//  2. 単位違いの在庫しかない場合は名前一致で 1 エントリを使い切り扱いにし、
//     正確な差し引きができないため要求自体も買い出しリストへ載せる
//  3. 在庫が無ければ amount > 0 のものだけ買い出しへ（適量系は常に満たせる扱い）
//
// 両リストは最後に再集計して同一 (名前, 単位) の重複を合算する
func Reconcile(required, fridge []NormalizedItem) ReconcileResult {
	shoppingList := make([]NormalizedItem, 0, len(required))
	usageList := make([]NormalizedItem, 0, len(required))

	// 在庫の使用可能量を管理する作業コピー
	stock := make(map[stockKey]*stockEntry, len(fridge))
	// 名前だけでも引けるよう、名前 → キー列のインデックスを作る
	stockByName := make(map[string][]stockKey, len(fridge))

	for _, item := range fridge {
		k := stockKey{name: item.Name, unit: item.Unit}
		if entry, ok := stock[k]; ok {
			entry.amount += item.Amount
			continue
		}
		stock[k] = &stockEntry{amount: item.Amount, unit: item.Unit, category: item.Category}
		stockByName[item.Name] = append(stockByName[item.Name], k)
	}

	for _, req := range required {
		exact := stockKey{name: req.Name, unit: req.Unit}

		if entry, ok := stock[exact]; ok {
			// 1. 完全一致（名前＋単位）
			switch {
			case entry.amount >= req.Amount:
				usageList = append(usageList, req)
				entry.amount -= req.Amount
			case entry.amount > 0:
				usageList = append(usageList, NormalizedItem{
					Name:     req.Name,
					Amount:   entry.amount,
					Unit:     req.Unit,
					Category: req.Category,
				})
				shoppingList = append(shoppingList, NormalizedItem{
					Name:     req.Name,
					Amount:   round2(req.Amount - entry.amount),
					Unit:     req.Unit,
					Category: req.Category,
				})
				entry.amount = 0
			default:
				// 在庫はあったがすでに使い切っている
				shoppingList = append(shoppingList, req)
			}
			continue
		}

		if keys, ok := stockByName[req.Name]; ok {
			// 2. 名前のみ一致（単位違いのフォールバック）
			for _, k := range keys {
				entry := stock[k]
				if entry == nil || entry.amount <= 0 {
					continue
				}
				usageList = append(usageList, NormalizedItem{
					Name:     req.Name,
					Amount:   minFloat(entry.amount, req.Amount),
					Unit:     entry.unit,
					Category: entry.category,
				})
				// 単位が違い正確に差し引けないため、使い切り扱いにする
				entry.amount = 0
				break
			}

			// 充足を保証できないので、要求はそのまま買い出しリストにも載せる
			shoppingList = append(shoppingList, req)
			continue
		}

		// 3. 冷蔵庫にない場合
		if req.Amount > 0 {
			shoppingList = append(shoppingList, req)
		}
	}

	return ReconcileResult{
		ShoppingList: Aggregate(shoppingList),
		UsageList:    Aggregate(usageList),
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
