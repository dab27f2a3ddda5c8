package server

import (
	"app/internal/config"

	"github.com/labstack/echo/v4"
)

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	// 公開ルート
	h.Perfume.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Contact.RegisterRoutes(e)
	h.Comment.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)

	// アップロード済み画像の配信
	e.Static("/uploads", cfg.UploadDir)

	// adminルート（JWT + ADMIN必須）
	h.AdminPerfume.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.AdminContact.RegisterRoutes(e, cfg)
	h.AdminComment.RegisterRoutes(e, cfg)
	h.Upload.RegisterRoutes(e, cfg)
}
