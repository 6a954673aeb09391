package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string    `gorm:"type:uuid;not null;index" json:"userId"`
	AdID          *string   `gorm:"type:uuid;index" json:"adId,omitempty"`
	Type          string    `gorm:"type:varchar(20);not null" json:"type"`
	Amount        float64   `gorm:"not null" json:"amount"`
	BalanceBefore float64   `json:"balanceBefore"`
	BalanceAfter  float64   `json:"balanceAfter"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (TransactionModel) TableName() string {
	return "wallet_transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
