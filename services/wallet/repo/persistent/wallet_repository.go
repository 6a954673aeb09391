package persistent

import (
	"errors"

	"adwallet/services/wallet/entity"
	"adwallet/services/wallet/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type WalletRepository interface {
	Credit(userID string, amount float64) (*entity.WalletUpdate, error)
	GetBalance(userID string) (float64, error)
	GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error)
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

// Credit applies amount (which may be negative) to the user's balance with a
// storage-level increment and writes a ledger row, both in one transaction.
// No lower bound is enforced on the balance.
func (r *walletRepository) Credit(userID string, amount float64) (*entity.WalletUpdate, error) {
	var update entity.WalletUpdate

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user struct {
			WalletBalance float64
		}
		if err := tx.Table("users").Select("wallet_balance").Where("id = ?", userID).Take(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		balanceBefore := user.WalletBalance

		if err := tx.Table("users").
			Where("id = ?", userID).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", amount)).Error; err != nil {
			return err
		}

		if err := tx.Table("users").Select("wallet_balance").Where("id = ?", userID).Take(&user).Error; err != nil {
			return err
		}

		transactionModel := &model.TransactionModel{
			ID:            uuid.New().String(),
			UserID:        userID,
			Type:          string(entity.TransactionTypeAdjustment),
			Amount:        amount,
			BalanceBefore: balanceBefore,
			BalanceAfter:  user.WalletBalance,
		}
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}

		update.WalletBalance = user.WalletBalance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &update, nil
}

func (r *walletRepository) GetBalance(userID string) (float64, error) {
	var user struct {
		WalletBalance float64
	}
	if err := r.db.Table("users").Select("wallet_balance").Where("id = ?", userID).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.WalletBalance, nil
}

func (r *walletRepository) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = ToTransactionEntity(&transactionModels[i])
	}
	return transactions, nil
}
