package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PerfumeUpsertRequest struct {
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	NotesTop    []string `json:"notes_top"`
	NotesMiddle []string `json:"notes_middle"`
	NotesBase   []string `json:"notes_base"`
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

// /admin/perfumes のHTTP
type AdminPerfumeHandler struct {
	uc *usecase.AdminPerfumeUsecase
}

// DI
func NewAdminPerfumeHandler(uc *usecase.AdminPerfumeUsecase) *AdminPerfumeHandler {
	return &AdminPerfumeHandler{uc: uc}
}

// adminの商品ルートを登録
func (h *AdminPerfumeHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/perfumes")

	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.PATCH("/:id/active", h.setActive)
	g.DELETE("/:id", h.delete)
}

func (h *AdminPerfumeHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminPerfumeHandler) create(c echo.Context) error {
	var req PerfumeUpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.Create(c.Request().Context(), toAdminPerfumeInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

func (h *AdminPerfumeHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req PerfumeUpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), id, toAdminPerfumeInput(req)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Perfume updated successfully"})
}

func (h *AdminPerfumeHandler) setActive(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.SetActive(c.Request().Context(), id, req.IsActive); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Perfume updated successfully"})
}

func (h *AdminPerfumeHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Perfume deleted successfully"})
}

func toAdminPerfumeInput(req PerfumeUpsertRequest) usecase.AdminPerfumeInput {
	return usecase.AdminPerfumeInput{
		Brand:       req.Brand,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		NotesTop:    req.NotesTop,
		NotesMiddle: req.NotesMiddle,
		NotesBase:   req.NotesBase,
	}
}
