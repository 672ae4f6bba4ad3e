package services

import (
	"errors"

	"gorm.io/gorm"

	"goxu-service/internal/models"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWalletNotFound      = errors.New("wallet not found")
)

// HelperService owns the balance mutations every wallet command goes
// through. Both operations are single conditional UPDATEs so concurrent
// commands against the same wallet cannot interleave a read-modify-write.
type HelperService struct {
	DB *gorm.DB
}

func NewHelperService(db *gorm.DB) *HelperService {
	return &HelperService{DB: db}
}

// Credit adds amount to the user's balance inside tx.
func (s *HelperService) Credit(tx *gorm.DB, userID string, amount float64) error {
	res := tx.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

// Debit subtracts amount from the user's balance inside tx. Fails without
// touching the row when the balance does not cover the amount.
func (s *HelperService) Debit(tx *gorm.DB, userID string, amount float64) error {
	res := tx.Model(&models.Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

// Balance reads the current balance for a user.
func (s *HelperService) Balance(userID string) (float64, error) {
	var wallet models.Wallet
	if err := s.DB.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}
