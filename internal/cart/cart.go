package cart

import "sync"

// Item はカート追加時点の商品コピー。
// 商品マスタが後から変わってもカート内の表示・金額は追加時点のまま。
type Item struct {
	ID       int64   `json:"id"`
	Brand    string  `json:"brand"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Line は商品1つ分の明細。同じ商品IDの明細はカート内に1つだけ。
type Line struct {
	Item     Item  `json:"item"`
	Quantity int64 `json:"quantity"`
}

// Snapshot はハンドラへ渡す読み取り専用ビュー。
// 集計値は取得のたびに計算する（キャッシュしない）。
type Snapshot struct {
	Lines     []Line  `json:"lines"`
	ItemCount int64   `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
	Total     float64 `json:"total"`
	Open      bool    `json:"open"`
}

// Cart は1セッション分の買い物かご。
// 状態はこの構造体だけが持ち、変更はメソッド経由に限る。
type Cart struct {
	mu    sync.Mutex
	lines []Line
	open  bool
}

func New() *Cart {
	return &Cart{}
}

// Add は商品を1点追加する。既に同じIDの明細があれば数量+1、無ければ末尾に追加。
// 失敗しない（上限なし）。
func (c *Cart) Add(item Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// Remove は該当IDの明細を削除する。無ければ何もしない（エラーにしない）。
func (c *Cart) Remove(itemID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(itemID)
}

func (c *Cart) removeLocked(itemID int64) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.Item.ID != itemID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// SetQuantity は数量を指定値に変更する。1未満はRemoveと同じ扱い。
// IDが存在しないときは何もしない（明細を新規に作らない）。
func (c *Cart) SetQuantity(itemID int64, quantity int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		c.removeLocked(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear は明細を全て空にする。注文確定後に呼ばれる。
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// SetOpen はカートパネルの開閉フラグ。表示用でロジックには影響しない。
func (c *Cart) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

// Snapshot は現在の明細・集計のコピーを返す。
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)

	var count int64
	var subtotal float64
	for _, l := range c.lines {
		count += l.Quantity
		subtotal += l.Item.Price * float64(l.Quantity)
	}

	return Snapshot{
		Lines:     lines,
		ItemCount: count,
		Subtotal:  subtotal,
		// 送料・税はまだ無いのでTotal==Subtotal
		Total: subtotal,
		Open:  c.open,
	}
}
