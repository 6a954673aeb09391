package main

import (
	"context"
	"fmt"
	"time"

	"adwallet/pkg/cache"
	"adwallet/pkg/config"
	"adwallet/pkg/database"
	"adwallet/pkg/logger"
	"adwallet/pkg/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (skipping counter warmup)", err)
		redisClient = nil
	}

	if err := seedDatabase(db, redisClient, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, redisClient *redis.Client, log *logger.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Admin{
		Username: "admin",
		Email:    "admin@test.com",
		Password: string(hash),
		Role:     "admin",
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	log.Info("Seeded admin %s", admin.Email)

	testUsers := []struct {
		email    string
		username string
		balance  float64
	}{
		{"alice@test.com", "alice", 0},
		{"bob@test.com", "bob", 12.5},
		{"charlie@test.com", "charlie", 3},
	}

	for _, u := range testUsers {
		user := models.User{
			Username:      u.username,
			Email:         u.email,
			Password:      string(hash),
			Role:          models.RoleUser,
			WalletBalance: u.balance,
		}
		if err := db.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
		log.Info("Seeded user %s", user.Email)
	}

	testAds := []models.Ad{
		{
			Title:         "Summer Sale",
			Description:   "Half price on everything until the end of the month",
			MediaURL:      "https://cdn.example.com/ads/summer-sale.png",
			PricePerView:  0.01,
			PricePerClick: 0.5,
			IsActive:      true,
		},
		{
			Title:         "New App Launch",
			Description:   "Download the app and get a welcome bonus",
			MediaURL:      "https://cdn.example.com/ads/app-launch.mp4",
			PricePerView:  0.02,
			PricePerClick: 1.25,
			IsActive:      true,
		},
		{
			Title:         "Weekend Getaway",
			Description:   "Book two nights, stay three",
			MediaURL:      "https://cdn.example.com/ads/getaway.jpg",
			PricePerView:  0.005,
			PricePerClick: 0.75,
			IsActive:      true,
		},
	}

	for i := range testAds {
		if err := db.Where("title = ?", testAds[i].Title).FirstOrCreate(&testAds[i]).Error; err != nil {
			return fmt.Errorf("failed to seed ad %q: %w", testAds[i].Title, err)
		}
		log.Info("Seeded ad %q", testAds[i].Title)
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for i := range testAds {
			redisClient.Set(ctx, "ad:views:"+testAds[i].ID, testAds[i].TotalViews, 0)
			redisClient.Set(ctx, "ad:clicks:"+testAds[i].ID, testAds[i].TotalClicks, 0)
		}
		log.Info("Warmed redis counters for %d ads", len(testAds))
	}

	return nil
}
