package usecase

import (
	"context"
	"net/http"

	"app/internal/cart"
)

// CartUsecase はセッションカートの操作。
// 商品の実体はカタログ（フォールバック込み）から引いてコピーを積む。
type CartUsecase struct {
	store   *cart.Store
	catalog *CatalogUsecase
}

func NewCartUsecase(store *cart.Store, catalog *CatalogUsecase) *CartUsecase {
	return &CartUsecase{store: store, catalog: catalog}
}

// Get は現在のカートを返す。トークンが無ければ新規カートを作る。
// 戻りの第2値は（新規発行され得る）セッショントークン。
func (u *CartUsecase) Get(ctx context.Context, token string) (cart.Snapshot, string, error) {
	c, token := u.store.GetOrCreate(token)
	return c.Snapshot(), token, nil
}

// AddItem は商品を1点カートに積む。同じ商品なら数量+1。
func (u *CartUsecase) AddItem(ctx context.Context, token string, perfumeID int64) (cart.Snapshot, string, error) {
	if perfumeID <= 0 {
		return cart.Snapshot{}, token, NewHTTPError(http.StatusBadRequest, "invalid perfume_id")
	}

	//カタログに出ている物しか積めない
	v, err := u.catalog.Get(ctx, perfumeID)
	if err != nil {
		if he, ok := AsHTTPError(err); ok && he.Status == http.StatusNotFound {
			return cart.Snapshot{}, token, NewHTTPError(http.StatusBadRequest, "invalid perfume_id")
		}
		return cart.Snapshot{}, token, err
	}

	c, token := u.store.GetOrCreate(token)
	c.Add(cart.Item{
		ID:       v.ID,
		Brand:    v.Brand,
		Name:     v.Name,
		Category: v.Category,
		Price:    v.Price,
	})
	return c.Snapshot(), token, nil
}

// SetQuantity は数量変更。1未満は削除扱い、未知のIDは黙って何もしない。
func (u *CartUsecase) SetQuantity(ctx context.Context, token string, perfumeID int64, quantity int64) (cart.Snapshot, string, error) {
	if perfumeID <= 0 {
		return cart.Snapshot{}, token, NewHTTPError(http.StatusBadRequest, "invalid perfume_id")
	}

	c, token := u.store.GetOrCreate(token)
	c.SetQuantity(perfumeID, quantity)
	return c.Snapshot(), token, nil
}

// RemoveItem は明細削除。無くてもエラーにしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, token string, perfumeID int64) (cart.Snapshot, string, error) {
	if perfumeID <= 0 {
		return cart.Snapshot{}, token, NewHTTPError(http.StatusBadRequest, "invalid perfume_id")
	}

	c, token := u.store.GetOrCreate(token)
	c.Remove(perfumeID)
	return c.Snapshot(), token, nil
}

// SetOpen はカートパネルの開閉フラグ。表示用。
func (u *CartUsecase) SetOpen(ctx context.Context, token string, open bool) (cart.Snapshot, string, error) {
	c, token := u.store.GetOrCreate(token)
	c.SetOpen(open)
	return c.Snapshot(), token, nil
}
