package handler

import (
	"net/http"
	"strconv"
	"time"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カートのセッショントークンを入れるcookie名
const cartCookieName = "cart_token"

// /cartのHTTP。セッションはcookieのトークンで引く。
type CartHandler struct {
	uc       *usecase.CartUsecase
	tokenTTL time.Duration
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, tokenTTL time.Duration) *CartHandler {
	return &CartHandler{uc: uc, tokenTTL: tokenTTL}
}

type AddCartItemRequest struct {
	PerfumeID int64 `json:"perfume_id"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type SetCartOpenRequest struct {
	Open bool `json:"open"`
}

// /cart配下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.getCart)
	e.POST("/cart/items", h.addItem)
	e.PATCH("/cart/items/:id", h.patchItem)
	e.DELETE("/cart/items/:id", h.deleteItem)
	e.POST("/cart/open", h.setOpen)
}

func (h *CartHandler) getCart(c echo.Context) error {
	snap, token, err := h.uc.Get(c.Request().Context(), readCartToken(c))
	if err != nil {
		return writeError(c, err)
	}

	h.writeCartToken(c, token)
	return c.JSON(http.StatusOK, snap)
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	snap, token, err := h.uc.AddItem(c.Request().Context(), readCartToken(c), req.PerfumeID)
	if err != nil {
		return writeError(c, err)
	}

	h.writeCartToken(c, token)
	return c.JSON(http.StatusOK, snap)
}

func (h *CartHandler) patchItem(c echo.Context) error {
	perfumeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	snap, token, err := h.uc.SetQuantity(c.Request().Context(), readCartToken(c), perfumeID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	h.writeCartToken(c, token)
	return c.JSON(http.StatusOK, snap)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	perfumeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	snap, token, err := h.uc.RemoveItem(c.Request().Context(), readCartToken(c), perfumeID)
	if err != nil {
		return writeError(c, err)
	}

	h.writeCartToken(c, token)
	return c.JSON(http.StatusOK, snap)
}

func (h *CartHandler) setOpen(c echo.Context) error {
	var req SetCartOpenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	snap, token, err := h.uc.SetOpen(c.Request().Context(), readCartToken(c), req.Open)
	if err != nil {
		return writeError(c, err)
	}

	h.writeCartToken(c, token)
	return c.JSON(http.StatusOK, snap)
}

func readCartToken(c echo.Context) string {
	ck, err := c.Cookie(cartCookieName)
	if err != nil {
		return ""
	}
	return ck.Value
}

// トークンをcookieに書き戻す（新規発行されている場合があるため毎回）。
func (h *CartHandler) writeCartToken(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
