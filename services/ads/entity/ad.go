package entity

import "time"

type Ad struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	MediaURL      string    `json:"mediaUrl"`
	PricePerView  float64   `json:"pricePerView"`
	PricePerClick float64   `json:"pricePerClick"`
	TotalViews    int64     `json:"totalViews"`
	TotalClicks   int64     `json:"totalClicks"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ClickResult is what a successful click returns: the clicking user's new
// balance and the ad's click total after the increment.
type ClickResult struct {
	WalletBalance float64 `json:"walletBalance"`
	TotalClicks   int64   `json:"totalClicks"`
}
