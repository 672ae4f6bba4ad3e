package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/internal/realtime"
	"goxu-service/pkg/common"
)

// Deposit bounds, in Goxu.
const (
	DepositMin = 10
	DepositMax = 1_000_000
)

const TypeWalletReceipt = "wallet:receipt"

type ReceiptPayload struct {
	TransactionID int    `json:"transactionId"`
	BillPath      string `json:"billPath"`
}

// DepositService handles both deposit flavors the platform supports:
// self-service with a transfer receipt (stays PENDING until an admin
// reconciles it against the bank statement) and a direct admin credit.
type DepositService struct {
	DB       *gorm.DB
	Helper   *HelperService
	Client   *asynq.Client
	Hub      *realtime.Hub
	validate *validator.Validate
}

func NewDepositService(db *gorm.DB, helper *HelperService, client *asynq.Client, hub *realtime.Hub) *DepositService {
	return &DepositService{
		DB:       db,
		Helper:   helper,
		Client:   client,
		Hub:      hub,
		validate: validator.New(),
	}
}

type DepositDTO struct {
	UserID string  `validate:"required"`
	Amount float64 `validate:"required,gte=10,lte=1000000"`
	// Stored path of the uploaded transfer receipt, empty when none.
	Bill string
}

func (s *DepositService) RequestDeposit(data DepositDTO) (interface{}, error) {
	if err := s.validate.Struct(data); err != nil {
		return common.NewErrorResponse(MsgDepositOutOfRange, nil, http.StatusBadRequest), nil
	}

	var wallet models.Wallet
	if err := s.DB.Where("user_id = ?", data.UserID).First(&wallet).Error; err != nil {
		return common.NewErrorResponse(MsgWalletNotFound, nil, http.StatusNotFound), nil
	}

	trx := models.WalletTransaction{
		TransactionNo: common.GenerateTrxNo(),
		SenderID:      data.UserID,
		Amount:        data.Amount,
		Type:          models.TrxDeposit,
		Status:        models.StatusPending,
	}
	if data.Bill != "" {
		trx.Bill = &data.Bill
	}

	if err := s.DB.Create(&trx).Error; err != nil {
		return nil, err
	}

	if data.Bill != "" {
		s.enqueueReceipt(trx.ID, data.Bill)
	}

	s.Hub.Invalidate([]string{data.UserID}, realtime.KeyWalletTransactions)

	return common.NewSuccessResponse(map[string]interface{}{
		"transaction": trx,
		"vndAmount":   int64(data.Amount * models.GoxuToVND),
	}, "Yêu cầu nạp Goxu đã được ghi nhận"), nil
}

type AdminDepositDTO struct {
	EmployeeID string  `validate:"required"`
	UserID     string  `validate:"required"`
	Amount     float64 `validate:"required,gt=0"`
}

// AdminDeposit credits a user directly. Unlike the self-service flow there
// is no receipt and no pending window; the row is born SUCCESS with the
// acting admin recorded as resolver.
func (s *DepositService) AdminDeposit(data AdminDepositDTO) (interface{}, error) {
	if err := s.validate.Struct(data); err != nil {
		return common.NewErrorResponse(MsgInvalidAmount, nil, http.StatusBadRequest), nil
	}

	trx := models.WalletTransaction{
		TransactionNo: common.GenerateTrxNo(),
		SenderID:      data.UserID,
		Amount:        data.Amount,
		Type:          models.TrxDeposit,
		Status:        models.StatusSuccess,
		EmployeeID:    &data.EmployeeID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Helper.Credit(tx, data.UserID, data.Amount); err != nil {
			return err
		}
		return tx.Create(&trx).Error
	})
	if err == ErrWalletNotFound {
		return common.NewErrorResponse(MsgWalletNotFound, nil, http.StatusNotFound), nil
	}
	if err != nil {
		return nil, err
	}

	s.Hub.Invalidate([]string{data.UserID},
		realtime.KeyWalletTransactions, realtime.KeyWalletBalance)

	return common.NewSuccessResponse(trx, "Nạp Goxu thành công"), nil
}

func (s *DepositService) enqueueReceipt(trxID int, billPath string) {
	if s.Client == nil {
		return
	}

	payload, err := json.Marshal(ReceiptPayload{TransactionID: trxID, BillPath: billPath})
	if err != nil {
		return
	}

	task := asynq.NewTask(TypeWalletReceipt, payload)
	if _, err := s.Client.Enqueue(task, asynq.TaskID(fmt.Sprintf("receipt:%d", trxID))); err != nil {
		// The receipt checksum is bookkeeping; the deposit request itself
		// already succeeded.
		return
	}
}
