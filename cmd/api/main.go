package main

import (
	"context"
	"log"

	"app/internal/cart"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無ければ環境変数だけで動かす
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(
		&model.Perfume{},
		&model.Order{},
		&model.OrderItem{},
		&model.ContactMessage{},
		&model.Comment{},
		&model.User{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	perfumeRepo := infraRepo.NewPerfumeGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	contactRepo := infraRepo.NewContactMessageGormRepository(gormDB)
	commentRepo := infraRepo.NewCommentGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//セッションカート
	cartStore := cart.NewStore(cfg.CartTTL)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(perfumeRepo)
	cartUC := usecase.NewCartUsecase(cartStore, catalogUC)
	checkoutUC := usecase.NewCheckoutUsecase(cartStore, txManager, cfg.WhatsAppNumber)
	contactUC := usecase.NewContactUsecase(contactRepo)
	commentUC := usecase.NewCommentUsecase(commentRepo)
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	adminPerfumeUC := usecase.NewAdminPerfumeUsecase(perfumeRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, orderItemRepo)
	uploadUC := usecase.NewUploadUsecase(cfg.UploadDir)

	//管理ユーザーのシード（ADMIN_EMAIL/ADMIN_PASSWORD未設定ならスキップ）
	if err := authUC.SeedAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	//Handler生成
	h := server.Handlers{
		Perfume:      handler.NewPerfumeHandler(catalogUC),
		Cart:         handler.NewCartHandler(cartUC, cfg.CartTTL),
		Checkout:     handler.NewCheckoutHandler(checkoutUC, cfg.CartTTL),
		Contact:      handler.NewContactHandler(contactUC),
		Comment:      handler.NewCommentHandler(commentUC),
		Auth:         handler.NewAuthHandler(authUC),
		AdminPerfume: handler.NewAdminPerfumeHandler(adminPerfumeUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
		AdminContact: handler.NewAdminContactHandler(contactUC),
		AdminComment: handler.NewAdminCommentHandler(commentUC),
		Upload:       handler.NewUploadHandler(uploadUC),
	}

	//Server起動
	e := server.New(cfg, h)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal(err)
	}
}
