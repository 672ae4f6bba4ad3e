package services

import (
	"net/http"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/internal/realtime"
	"goxu-service/pkg/common"
)

type TransferService struct {
	DB     *gorm.DB
	Helper *HelperService
	Hub    *realtime.Hub
}

func NewTransferService(db *gorm.DB, helper *HelperService, hub *realtime.Hub) *TransferService {
	return &TransferService{DB: db, Helper: helper, Hub: hub}
}

type TransferDTO struct {
	SenderID   string
	ReceiverID string
	Amount     float64
}

// Transfer moves Goxu between wallets. There is no pending window: the
// debit, credit and ledger row commit together or not at all. The receiver
// must be an active partner and not the sender; client-side filtering of
// the recipient list is a convenience only, this is the authoritative check.
func (s *TransferService) Transfer(data TransferDTO) (interface{}, error) {
	if data.ReceiverID == "" {
		return common.NewErrorResponse(MsgMissingReceiver, nil, http.StatusBadRequest), nil
	}
	if data.Amount <= 0 {
		return common.NewErrorResponse(MsgInvalidAmount, nil, http.StatusBadRequest), nil
	}
	if data.ReceiverID == data.SenderID {
		return common.NewErrorResponse(MsgSelfTransfer, nil, http.StatusBadRequest), nil
	}

	var receiver models.User
	err := s.DB.First(&receiver, "id = ?", data.ReceiverID).Error
	if err != nil || !receiver.Active || receiver.Role != models.RolePartner {
		return common.NewErrorResponse(MsgInvalidReceiver, nil, http.StatusBadRequest), nil
	}

	trx := models.WalletTransaction{
		TransactionNo: common.GenerateTrxNo(),
		SenderID:      data.SenderID,
		ReceiverID:    &data.ReceiverID,
		Amount:        data.Amount,
		Type:          models.TrxTransfer,
		Status:        models.StatusSuccess,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Helper.Debit(tx, data.SenderID, data.Amount); err != nil {
			return err
		}
		if err := s.Helper.Credit(tx, data.ReceiverID, data.Amount); err != nil {
			return err
		}
		return tx.Create(&trx).Error
	})
	if err == ErrInsufficientBalance {
		return common.NewErrorResponse(MsgInsufficientFunds, nil, http.StatusBadRequest), nil
	}
	if err == ErrWalletNotFound {
		return common.NewErrorResponse(MsgInvalidReceiver, nil, http.StatusBadRequest), nil
	}
	if err != nil {
		return nil, err
	}

	s.Hub.Invalidate([]string{data.SenderID, data.ReceiverID},
		realtime.KeyWalletTransactions, realtime.KeyWalletBalance)

	return common.NewSuccessResponse(trx, "Chuyển Goxu thành công"), nil
}
