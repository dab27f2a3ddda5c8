package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// ルート登録に必要なHandler一式
type Handlers struct {
	Perfume      *handler.PerfumeHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Contact      *handler.ContactHandler
	Comment      *handler.CommentHandler
	Auth         *handler.AuthHandler
	AdminPerfume *handler.AdminPerfumeHandler
	AdminOrder   *handler.AdminOrderHandler
	AdminContact *handler.AdminContactHandler
	AdminComment *handler.AdminCommentHandler
	Upload       *handler.UploadHandler
}

func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// フロントのオリジンのみ許可。未設定なら全許可（開発用）。
	origins := []string{"*"}
	if cfg.FEURL != "" {
		origins = []string{cfg.FEURL}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowCredentials: cfg.FEURL != "",
	}))

	registerRoutes(e, cfg, h)

	return e
}

func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}
