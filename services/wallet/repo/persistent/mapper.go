package persistent

import (
	"adwallet/services/wallet/entity"
	"adwallet/services/wallet/model"
)

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	adID := ""
	if m.AdID != nil {
		adID = *m.AdID
	}

	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		AdID:          adID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		CreatedAt:     m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	var adID *string
	if e.AdID != "" {
		adID = &e.AdID
	}

	return &model.TransactionModel{
		ID:            e.ID,
		UserID:        e.UserID,
		AdID:          adID,
		Type:          string(e.Type),
		Amount:        e.Amount,
		BalanceBefore: e.BalanceBefore,
		BalanceAfter:  e.BalanceAfter,
		CreatedAt:     e.CreatedAt,
	}
}
