package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/contact-messages のHTTP
type AdminContactHandler struct {
	uc *usecase.ContactUsecase
}

func NewAdminContactHandler(uc *usecase.ContactUsecase) *AdminContactHandler {
	return &AdminContactHandler{uc: uc}
}

func (h *AdminContactHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/contact-messages")

	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("", h.list)
	g.DELETE("/:id", h.delete)
}

func (h *AdminContactHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminContactHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Message deleted"})
}
