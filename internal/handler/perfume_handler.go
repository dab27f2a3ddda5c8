package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /perfumes の公開API
type PerfumeHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewPerfumeHandler(uc *usecase.CatalogUsecase) *PerfumeHandler {
	return &PerfumeHandler{uc: uc}
}

// 公開カタログのルートを登録
func (h *PerfumeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/perfumes", h.list)
	e.GET("/perfumes/:id", h.detail)
}

func (h *PerfumeHandler) list(c echo.Context) error {
	// category（default all）
	category := c.QueryParam("category")

	out, err := h.uc.List(c.Request().Context(), category)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PerfumeHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}
