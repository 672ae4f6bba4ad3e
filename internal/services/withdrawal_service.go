package services

import (
	"net/http"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/internal/realtime"
	"goxu-service/pkg/common"
)

type WithdrawalService struct {
	DB     *gorm.DB
	Helper *HelperService
	Hub    *realtime.Hub
}

func NewWithdrawalService(db *gorm.DB, helper *HelperService, hub *realtime.Hub) *WithdrawalService {
	return &WithdrawalService{DB: db, Helper: helper, Hub: hub}
}

type WithdrawDTO struct {
	UserID string
	Amount float64
}

// RequestWithdrawal creates a PENDING withdrawal and holds the amount by
// debiting the balance immediately; a rejected request refunds it. The
// payout goes to the bank info on the user's profile, so a user without
// bank info is turned away before any row is written.
func (s *WithdrawalService) RequestWithdrawal(data WithdrawDTO) (interface{}, error) {
	if data.Amount <= 0 {
		return common.NewErrorResponse(MsgInvalidAmount, nil, http.StatusBadRequest), nil
	}

	var user models.User
	if err := s.DB.First(&user, "id = ?", data.UserID).Error; err != nil {
		return common.NewErrorResponse(MsgWalletNotFound, nil, http.StatusNotFound), nil
	}
	if !user.HasBankInfo() {
		return common.NewErrorResponse(MsgMissingBankInfo, nil, http.StatusBadRequest), nil
	}

	trx := models.WalletTransaction{
		TransactionNo: common.GenerateTrxNo(),
		SenderID:      data.UserID,
		Amount:        data.Amount,
		Type:          models.TrxWithdraw,
		Status:        models.StatusPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Helper.Debit(tx, data.UserID, data.Amount); err != nil {
			return err
		}
		return tx.Create(&trx).Error
	})
	if err == ErrInsufficientBalance {
		return common.NewErrorResponse(MsgInsufficientFunds, nil, http.StatusBadRequest), nil
	}
	if err != nil {
		return nil, err
	}

	s.Hub.Invalidate([]string{data.UserID},
		realtime.KeyWalletTransactions, realtime.KeyWalletBalance)

	return common.NewSuccessResponse(trx, "Yêu cầu rút Goxu đã được ghi nhận"), nil
}
