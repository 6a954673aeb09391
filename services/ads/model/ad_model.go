package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `gorm:"uniqueIndex;not null" json:"title"`
	Description   string    `gorm:"not null" json:"description"`
	MediaURL      string    `gorm:"type:varchar(500);not null" json:"mediaUrl"`
	PricePerView  float64   `gorm:"not null;default:0" json:"pricePerView"`
	PricePerClick float64   `gorm:"not null;default:0" json:"pricePerClick"`
	TotalViews    int64     `gorm:"default:0" json:"totalViews"`
	TotalClicks   int64     `gorm:"default:0" json:"totalClicks"`
	IsActive      bool      `gorm:"default:true" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (AdModel) TableName() string {
	return "ads"
}

func (a *AdModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
