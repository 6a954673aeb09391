package entity

import "time"

type TransactionType string

const (
	TransactionTypeClickReward TransactionType = "click_reward"
	TransactionTypeAdjustment  TransactionType = "adjustment"
)

// WalletUpdate is the outcome of a balance mutation.
type WalletUpdate struct {
	WalletBalance float64 `json:"walletBalance"`
}

type Transaction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	AdID          string          `json:"adId,omitempty"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	BalanceBefore float64         `json:"balanceBefore"`
	BalanceAfter  float64         `json:"balanceAfter"`
	CreatedAt     time.Time       `json:"createdAt"`
}
