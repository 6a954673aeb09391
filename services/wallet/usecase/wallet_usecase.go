package usecase

import (
	"errors"
	"fmt"

	"adwallet/pkg/logger"
	"adwallet/services/wallet/entity"
	"adwallet/services/wallet/repo/persistent"
)

type WalletUseCase interface {
	UpdateWallet(userID string, amount float64) (*entity.WalletUpdate, error)
	GetBalance(userID string) (float64, error)
	GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error)
}

type walletUseCase struct {
	walletRepo persistent.WalletRepository
	log        *logger.Logger
}

func NewWalletUseCase(walletRepo persistent.WalletRepository, log *logger.Logger) WalletUseCase {
	return &walletUseCase{
		walletRepo: walletRepo,
		log:        log,
	}
}

func (uc *walletUseCase) UpdateWallet(userID string, amount float64) (*entity.WalletUpdate, error) {
	update, err := uc.walletRepo.Credit(userID, amount)
	if err != nil {
		if errors.Is(err, persistent.ErrUserNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		uc.log.Error("failed to update wallet for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	uc.log.Info("wallet updated for user %s, amount %.2f, new balance %.2f", userID, amount, update.WalletBalance)
	return update, nil
}

func (uc *walletUseCase) GetBalance(userID string) (float64, error) {
	balance, err := uc.walletRepo.GetBalance(userID)
	if err != nil {
		if errors.Is(err, persistent.ErrUserNotFound) {
			return 0, fmt.Errorf("user not found")
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

func (uc *walletUseCase) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	if _, err := uc.walletRepo.GetBalance(userID); err != nil {
		if errors.Is(err, persistent.ErrUserNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	transactions, err := uc.walletRepo.GetTransactions(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}
