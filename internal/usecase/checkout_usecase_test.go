package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"app/internal/cart"
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type ChkOrderRepoMock struct{ mock.Mock }

func (m *ChkOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ChkOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	panic("not used in CheckoutUsecase tests")
}

func (m *ChkOrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	panic("not used in CheckoutUsecase tests")
}

func (m *ChkOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	panic("not used in CheckoutUsecase tests")
}

type ChkOrderItemRepoMock struct{ mock.Mock }

func (m *ChkOrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *ChkOrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	panic("not used in CheckoutUsecase tests")
}

// WithinTxをそのまま実行するTxManager。ヘッダと明細が同じfnの中で書かれることを見る。
type ChkTxManagerMock struct {
	orders *ChkOrderRepoMock
	items  *ChkOrderItemRepoMock
	err    error //Tx自体の失敗を再現
}

func (m *ChkTxManagerMock) Orders() repo.OrderRepository         { return m.orders }
func (m *ChkTxManagerMock) OrderItems() repo.OrderItemRepository { return m.items }

func (m *ChkTxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(m)
}

func newChkTx() *ChkTxManagerMock {
	return &ChkTxManagerMock{
		orders: new(ChkOrderRepoMock),
		items:  new(ChkOrderItemRepoMock),
	}
}

func validCheckoutInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		Name:        "Rami",
		Phone:       "+961 70 123 456",
		Address:     "Hamra Street 12",
		CityCountry: "Beirut, Lebanon",
	}
}

// 150×2 + 95 = 395のカートを積んだstoreを作る
func checkoutStore(t *testing.T) (*cart.Store, string, *cart.Cart) {
	t.Helper()

	store := cart.NewStore(time.Hour)
	c, token := store.GetOrCreate("")

	c.Add(cart.Item{ID: 1, Brand: "Dior", Name: "Sauvage", Category: "men", Price: 150})
	c.Add(cart.Item{ID: 1, Brand: "Dior", Name: "Sauvage", Category: "men", Price: 150})
	c.Add(cart.Item{ID: 2, Brand: "Dior", Name: "J'adore", Category: "women", Price: 95})

	return store, token, c
}

func TestCheckoutUsecase_Submit_EmptyCart(t *testing.T) {
	store := cart.NewStore(time.Hour)
	tx := newChkTx()
	uc := usecase.NewCheckoutUsecase(store, tx, "9613044467")

	_, token, err := uc.Submit(context.Background(), "", validCheckoutInput())
	assertHTTPError(t, err, http.StatusBadRequest, "cart empty")
	assert.NotEmpty(t, token)

	tx.orders.AssertNotCalled(t, "Create")
}

func TestCheckoutUsecase_Submit_MissingFields(t *testing.T) {
	cases := []struct {
		mutate  func(*usecase.CheckoutInput)
		message string
	}{
		{func(in *usecase.CheckoutInput) { in.Name = "  " }, "name required"},
		{func(in *usecase.CheckoutInput) { in.Phone = "" }, "phone required"},
		{func(in *usecase.CheckoutInput) { in.Address = "" }, "address required"},
		{func(in *usecase.CheckoutInput) { in.CityCountry = "" }, "city_country required"},
	}

	for _, tc := range cases {
		store, token, c := checkoutStore(t)
		tx := newChkTx()
		uc := usecase.NewCheckoutUsecase(store, tx, "9613044467")

		in := validCheckoutInput()
		tc.mutate(&in)

		_, _, err := uc.Submit(context.Background(), token, in)
		assertHTTPError(t, err, http.StatusBadRequest, tc.message)

		//検証エラーではDBに書かず、カートも残す
		tx.orders.AssertNotCalled(t, "Create")
		assert.Equal(t, 2, len(c.Snapshot().Lines))
	}
}

func TestCheckoutUsecase_Submit_Success(t *testing.T) {
	store, token, c := checkoutStore(t)
	tx := newChkTx()
	uc := usecase.NewCheckoutUsecase(store, tx, "9613044467")

	tx.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.CustomerName == "Rami" &&
			o.TotalPrice == 395 &&
			o.Status == model.OrderStatusNew
	})).Return(int64(42), nil)

	tx.items.On("CreateBulk", mock.Anything, int64(42), mock.MatchedBy(func(items []model.OrderItem) bool {
		if len(items) != 2 {
			return false
		}
		//明細金額は単価×数量
		return items[0].PerfumeName == "Sauvage" && items[0].Quantity == 2 && items[0].Price == 300 &&
			items[1].PerfumeName == "J'adore" && items[1].Quantity == 1 && items[1].Price == 95
	})).Return(nil)

	out, token2, err := uc.Submit(context.Background(), token, validCheckoutInput())
	assert.NoError(t, err)
	assert.Equal(t, token, token2)
	assert.Equal(t, int64(42), out.OrderID)

	//成功したらカートは空
	assert.Equal(t, 0, len(c.Snapshot().Lines))

	tx.orders.AssertExpectations(t)
	tx.items.AssertExpectations(t)
}

func TestCheckoutUsecase_Submit_MessageFormat(t *testing.T) {
	store, token, _ := checkoutStore(t)
	tx := newChkTx()
	uc := usecase.NewCheckoutUsecase(store, tx, "9613044467")

	tx.orders.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)
	tx.items.On("CreateBulk", mock.Anything, int64(1), mock.Anything).Return(nil)

	in := validCheckoutInput()
	in.Notes = "ring the bell"

	out, _, err := uc.Submit(context.Background(), token, in)
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Message, "New Order — Palace Perfumes\n\n"))
	assert.Contains(t, out.Message, "Name: Rami\n")
	assert.Contains(t, out.Message, "Phone: +961 70 123 456\n")
	assert.Contains(t, out.Message, "City/Country: Beirut, Lebanon\n")
	assert.Contains(t, out.Message, "• Sauvage x2 — $300\n")
	assert.Contains(t, out.Message, "• J'adore x1 — $95\n")
	assert.Contains(t, out.Message, "\nTotal: $395")
	assert.True(t, strings.HasSuffix(out.Message, "\nNotes: ring the bell"))
}

// notesが空なら行ごと出さない
func TestCheckoutUsecase_Submit_NoNotesLine(t *testing.T) {
	store, token, _ := checkoutStore(t)
	tx := newChkTx()
	uc := usecase.NewCheckoutUsecase(store, tx, "9613044467")

	tx.orders.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)
	tx.items.On("CreateBulk", mock.Anything, int64(1), mock.Anything).Return(nil)

	out, _, err := uc.Submit(context.Background(), token, validCheckoutInput())
	assert.NoError(t, err)
	assert.NotContains(t, out.Message, "Notes:")
	assert.True(t, strings.HasSuffix(out.Message, "Total: $395"))
}

func TestCheckoutUsecase_Submit_WhatsAppURL(t *testing.T) {
	store, token, _ := checkoutStore(t)
	tx := newChkTx()
	uc := usecase.NewCheckoutUsecase(store, tx, "9613044467")

	tx.orders.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)
	tx.items.On("CreateBulk", mock.Anything, int64(1), mock.Anything).Return(nil)

	out, _, err := uc.Submit(context.Background(), token, validCheckoutInput())
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.WhatsAppURL, "https://wa.me/9613044467?text="))
	//スペースは+ではなく%20
	assert.NotContains(t, out.WhatsAppURL, "+")
	assert.Contains(t, out.WhatsAppURL, "%20")
}

// ヘッダ書き込み失敗。カートは残す
func TestCheckoutUsecase_Submit_OrderCreateFails(t *testing.T) {
	store, token, c := checkoutStore(t)
	tx := newChkTx()
	uc := usecase.NewCheckoutUsecase(store, tx, "9613044467")

	tx.orders.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	_, _, err := uc.Submit(context.Background(), token, validCheckoutInput())
	assertHTTPError(t, err, http.StatusInternalServerError, "db error")

	assert.Equal(t, 2, len(c.Snapshot().Lines))
	tx.items.AssertNotCalled(t, "CreateBulk")
}

// 明細書き込み失敗。Txごと失敗扱いでカートは残す
func TestCheckoutUsecase_Submit_ItemsCreateFails(t *testing.T) {
	store, token, c := checkoutStore(t)
	tx := newChkTx()
	uc := usecase.NewCheckoutUsecase(store, tx, "9613044467")

	tx.orders.On("Create", mock.Anything, mock.Anything).Return(int64(7), nil)
	tx.items.On("CreateBulk", mock.Anything, int64(7), mock.Anything).Return(errors.New("db down"))

	_, _, err := uc.Submit(context.Background(), token, validCheckoutInput())
	assertHTTPError(t, err, http.StatusInternalServerError, "db error")

	assert.Equal(t, 2, len(c.Snapshot().Lines))
}

func TestCheckoutUsecase_Submit_TxBeginFails(t *testing.T) {
	store, token, c := checkoutStore(t)
	tx := newChkTx()
	tx.err = errors.New("begin failed")
	uc := usecase.NewCheckoutUsecase(store, tx, "9613044467")

	_, _, err := uc.Submit(context.Background(), token, validCheckoutInput())
	assert.Error(t, err)
	assert.Equal(t, 2, len(c.Snapshot().Lines))
}
