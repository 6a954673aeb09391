package persistent

import (
	"errors"

	"adwallet/pkg/models"
	"adwallet/services/ads/entity"
	"adwallet/services/ads/model"

	"gorm.io/gorm"
)

var (
	ErrAdNotFound   = errors.New("ad not found")
	ErrUserNotFound = errors.New("user not found")
)

type InteractionRepository interface {
	RecordView(adID string) (*entity.Ad, error)
	RecordClick(adID, userID string) (*entity.ClickResult, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// RecordView bumps the view counter with a storage-level increment so
// concurrent views never lose updates.
func (r *interactionRepository) RecordView(adID string) (*entity.Ad, error) {
	res := r.db.Model(&model.AdModel{}).
		Where("id = ?", adID).
		UpdateColumn("total_views", gorm.Expr("total_views + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAdNotFound
	}

	var adModel model.AdModel
	if err := r.db.Where("id = ?", adID).First(&adModel).Error; err != nil {
		return nil, err
	}
	return ToAdEntity(&adModel), nil
}

// RecordClick increments the ad's click counter and credits the user's
// wallet by the ad's pricePerClick inside a single transaction, writing a
// ledger row for the credit. Either both mutations land or neither does.
func (r *interactionRepository) RecordClick(adID, userID string) (*entity.ClickResult, error) {
	var result entity.ClickResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ad model.AdModel
		if err := tx.Where("id = ?", adID).First(&ad).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAdNotFound
			}
			return err
		}

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

		if err := tx.Model(&model.AdModel{}).
			Where("id = ?", adID).
			UpdateColumn("total_clicks", gorm.Expr("total_clicks + ?", 1)).Error; err != nil {
			return err
		}

		if err := tx.Table("users").
			Where("id = ?", userID).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", ad.PricePerClick)).Error; err != nil {
			return err
		}

		// Read back inside the transaction: the row locks taken by the
		// updates make these values exact under concurrency.
		if err := tx.Table("users").Select("wallet_balance").Where("id = ?", userID).Take(&user).Error; err != nil {
			return err
		}

		var clicked struct {
			TotalClicks int64
		}
		if err := tx.Table("ads").Select("total_clicks").Where("id = ?", adID).Take(&clicked).Error; err != nil {
			return err
		}

		ledgerRow := &models.WalletTransaction{
			UserID:        userID,
			AdID:          &adID,
			Type:          models.TransactionTypeClickReward,
			Amount:        ad.PricePerClick,
			BalanceBefore: balanceBefore,
			BalanceAfter:  user.WalletBalance,
		}
		if err := tx.Create(ledgerRow).Error; err != nil {
			return err
		}

		result.WalletBalance = user.WalletBalance
		result.TotalClicks = clicked.TotalClicks
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
