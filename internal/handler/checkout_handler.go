package handler

import (
	"net/http"
	"time"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	uc       *usecase.CheckoutUsecase
	tokenTTL time.Duration
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase, tokenTTL time.Duration) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, tokenTTL: tokenTTL}
}

type CheckoutRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	CityCountry string `json:"city_country"`
	Notes       string `json:"notes"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.submit)
}

func (h *CheckoutHandler) submit(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, token, err := h.uc.Submit(c.Request().Context(), readCartToken(c), usecase.CheckoutInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		CityCountry: req.CityCountry,
		Notes:       req.Notes,
	})

	//トークンはエラー時も書き戻す（新規発行され得る）
	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
