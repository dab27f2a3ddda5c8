package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）

	WhatsAppNumber string        // 注文引き渡し先のWhatsApp番号（国番号付き、+なし）
	UploadDir      string        // 商品画像の保存先ディレクトリ
	CartTTL        time.Duration // カートセッションの有効期限

	AdminEmail    string // 起動時にシードする管理ユーザー
	AdminPassword string
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		GoEnv:          getenv("GO_ENV", "dev"),
		FEURL:          os.Getenv("FE_URL"),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "9613044467"),
		UploadDir:      getenv("UPLOAD_DIR", "./uploads"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}

	ttlMin, err := atoiDefault("CART_TTL_MINUTES", 240)
	if err != nil {
		return Config{}, err
	}
	cfg.CartTTL = time.Duration(ttlMin) * time.Minute

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
