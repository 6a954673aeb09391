package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_BeforeCreate(t *testing.T) {
	user := &User{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
		Role:     RoleUser,
	}

	// BeforeCreate should set ID if empty
	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUser_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &User{
		ID:       existingID,
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, user.ID)
}

func TestUser_Defaults(t *testing.T) {
	user := &User{}
	assert.Equal(t, float64(0), user.WalletBalance)
	assert.Nil(t, user.RefreshToken)
}

func TestAdmin_BeforeCreate(t *testing.T) {
	admin := &Admin{
		Email:    "admin@example.com",
		Username: "boss",
		Password: "password",
	}

	err := admin.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, admin.ID)
}

func TestAd_BeforeCreate(t *testing.T) {
	ad := &Ad{
		Title:         "Test Ad",
		Description:   "A test ad",
		MediaURL:      "https://example.com/ad.png",
		PricePerView:  0.5,
		PricePerClick: 5,
	}

	err := ad.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, ad.ID)
	assert.Equal(t, int64(0), ad.TotalViews)
	assert.Equal(t, int64(0), ad.TotalClicks)
}

func TestAd_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-ad-id"
	ad := &Ad{
		ID:    existingID,
		Title: "Test Ad",
	}

	err := ad.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, ad.ID)
}

func TestWalletTransaction_BeforeCreate(t *testing.T) {
	adID := "ad-123"
	txn := &WalletTransaction{
		UserID:        "user-123",
		AdID:          &adID,
		Type:          TransactionTypeClickReward,
		Amount:        5,
		BalanceBefore: 0,
		BalanceAfter:  5,
	}

	err := txn.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, txn.ID)
}

func TestAllModels_CoversEveryTable(t *testing.T) {
	type tabler interface {
		TableName() string
	}

	tables := make([]string, 0)
	for _, m := range AllModels() {
		tables = append(tables, m.(tabler).TableName())
	}

	assert.Equal(t, []string{"users", "admins", "ads", "wallet_transactions"}, tables)
}
