package usecase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"app/internal/cart"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CheckoutUsecase はカートを注文レコードとWhatsApp引き渡しリンクに変換する。
// 決済は行わない。送信確定は客がWhatsApp側で行う。
type CheckoutUsecase struct {
	store          *cart.Store
	tx             repo.TransactionManager
	whatsappNumber string
}

func NewCheckoutUsecase(store *cart.Store, tx repo.TransactionManager, whatsappNumber string) *CheckoutUsecase {
	return &CheckoutUsecase{
		store:          store,
		tx:             tx,
		whatsappNumber: whatsappNumber,
	}
}

type CheckoutInput struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	CityCountry string
	Notes       string
}

type CheckoutOutput struct {
	OrderID     int64  `json:"order_id"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// Submit は注文を確定する。
// ヘッダと明細は同一トランザクションで書く（片方だけ残さない）。
// 成功時のみカートを空にする。失敗時はカートを残して再送できるようにする。
func (u *CheckoutUsecase) Submit(ctx context.Context, token string, in CheckoutInput) (CheckoutOutput, string, error) {
	c, token := u.store.GetOrCreate(token)
	snap := c.Snapshot()

	if len(snap.Lines) == 0 {
		return CheckoutOutput{}, token, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	//必須項目（トリム後に空なら弾く）。DBには一切書かない
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	in.CityCountry = strings.TrimSpace(in.CityCountry)
	in.Notes = strings.TrimSpace(in.Notes)

	if in.Name == "" {
		return CheckoutOutput{}, token, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Phone == "" {
		return CheckoutOutput{}, token, NewHTTPError(http.StatusBadRequest, "phone required")
	}
	if in.Address == "" {
		return CheckoutOutput{}, token, NewHTTPError(http.StatusBadRequest, "address required")
	}
	if in.CityCountry == "" {
		return CheckoutOutput{}, token, NewHTTPError(http.StatusBadRequest, "city_country required")
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		id, err := r.Orders().Create(ctx, model.Order{
			CustomerName: in.Name,
			Phone:        in.Phone,
			Email:        in.Email,
			Address:      in.Address,
			CityCountry:  in.CityCountry,
			Notes:        in.Notes,
			TotalPrice:   snap.Total,
			Status:       model.OrderStatusNew,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items := make([]model.OrderItem, 0, len(snap.Lines))
		for _, l := range snap.Lines {
			perfumeID := l.Item.ID
			items = append(items, model.OrderItem{
				PerfumeID:   &perfumeID,
				PerfumeName: l.Item.Name,
				Category:    l.Item.Category,
				Quantity:    l.Quantity,
				//明細金額は単価×数量
				Price:     l.Item.Price * float64(l.Quantity),
				CreatedAt: now,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderID = id
		return nil
	})
	if err != nil {
		//カートはそのまま残す（客が再送できる）
		return CheckoutOutput{}, token, err
	}

	message := buildWhatsAppMessage(in, snap)
	out := CheckoutOutput{
		OrderID:     orderID,
		Message:     message,
		WhatsAppURL: "https://wa.me/" + u.whatsappNumber + "?text=" + encodeComponent(message),
	}

	c.Clear()
	return out, token, nil
}

// WhatsAppに渡す注文サマリ（平文）。URLに載せる前にencodeComponentを通す。
func buildWhatsAppMessage(in CheckoutInput, snap cart.Snapshot) string {
	var b strings.Builder

	b.WriteString("New Order — Palace Perfumes\n\n")
	b.WriteString("Name: " + in.Name + "\n")
	b.WriteString("Phone: " + in.Phone + "\n")
	b.WriteString("Address: " + in.Address + "\n")
	b.WriteString("City/Country: " + in.CityCountry + "\n\n")

	b.WriteString("Items:\n")
	for _, l := range snap.Lines {
		b.WriteString("• " + l.Item.Name + " x" + strconv.FormatInt(l.Quantity, 10) +
			" — $" + formatPrice(l.Item.Price*float64(l.Quantity)) + "\n")
	}

	b.WriteString("\nTotal: $" + formatPrice(snap.Total))
	if in.Notes != "" {
		b.WriteString("\nNotes: " + in.Notes)
	}
	return b.String()
}

// 金額表示。整数額は小数点を出さない（$150、$12.5）。
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// encodeURIComponent相当。QueryEscapeはスペースを+にするのでwa.me向けに%20へ直す。
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
