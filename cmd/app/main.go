package main

import (
	"adwallet/internal/app"
	"adwallet/pkg/config"

	_ "adwallet/docs" // Swagger docs
)

// @title           Ad Wallet API
// @version         1.0
// @description     Ad catalog with per-click wallet rewards

// @contact.name   API Support

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}
	if cfg.JWTRefreshSecret == "your-refresh-secret-change-in-production" || cfg.JWTRefreshSecret == "" {
		panic("JWT_REFRESH_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
