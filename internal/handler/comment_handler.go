package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	uc *usecase.CommentUsecase
}

func NewCommentHandler(uc *usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

type AddCommentRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Rating  *int   `json:"rating"`
}

func (h *CommentHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/comments", h.list)
	e.POST("/comments", h.add)
}

func (h *CommentHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommentHandler) add(c echo.Context) error {
	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Add(c.Request().Context(), usecase.CommentInput{
		Name:    req.Name,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Comment added"})
}
