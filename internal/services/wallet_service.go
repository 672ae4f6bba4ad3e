package services

import (
	"net/http"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/internal/realtime"
	"goxu-service/pkg/common"
)

// WalletService serves the wallet read side plus the admin resolution
// command, the only path that changes a transaction's status.
type WalletService struct {
	DB     *gorm.DB
	Helper *HelperService
	Hub    *realtime.Hub
}

func NewWalletService(db *gorm.DB, helper *HelperService, hub *realtime.Hub) *WalletService {
	return &WalletService{DB: db, Helper: helper, Hub: hub}
}

type ListWalletsDTO struct {
	Page   int
	Limit  int
	Search string
}

func (s *WalletService) ListWallets(data ListWalletsDTO) (common.PaginationResult, error) {
	page, limit := common.NormalizePage(data.Page, data.Limit)
	offset := (page - 1) * limit

	query := s.DB.Model(&models.Wallet{})
	if data.Search != "" {
		query = query.Where("username LIKE ?", "%"+data.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var wallets []models.Wallet
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&wallets).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(wallets, total, page, limit, ""), nil
}

type ListTransactionsDTO struct {
	ViewerID string
	Page     int
	Limit    int
	Search   string
	FromDate string
	ToDate   string
	// Admin listing sees every user's transactions.
	All bool
}

// TransactionView augments a ledger row with the debit/credit label derived
// for the viewing user. The label is never stored.
type TransactionView struct {
	models.WalletTransaction
	Direction string `json:"direction"`
}

func (s *WalletService) ListTransactions(data ListTransactionsDTO) (common.PaginationResult, error) {
	page, limit := common.NormalizePage(data.Page, data.Limit)
	offset := (page - 1) * limit

	query := s.DB.Model(&models.WalletTransaction{})
	if !data.All {
		query = query.Where("sender_id = ? OR receiver_id = ?", data.ViewerID, data.ViewerID)
	}
	if data.Search != "" {
		query = query.Where("transaction_no LIKE ?", "%"+data.Search+"%")
	}
	if data.FromDate != "" {
		query = query.Where("DATE(created_at) >= ?", data.FromDate)
	}
	if data.ToDate != "" {
		query = query.Where("DATE(created_at) <= ?", data.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var transactions []models.WalletTransaction
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&transactions).Error; err != nil {
		return common.PaginationResult{}, err
	}

	views := make([]TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, TransactionView{
			WalletTransaction: t,
			Direction:         models.Direction(t, data.ViewerID),
		})
	}

	return common.PaginateResponse(views, total, page, limit, ""), nil
}

func (s *WalletService) GetBalance(userID string) (interface{}, error) {
	balance, err := s.Helper.Balance(userID)
	if err != nil {
		return common.NewErrorResponse(MsgWalletNotFound, nil, http.StatusNotFound), nil
	}
	return common.NewSuccessResponse(map[string]interface{}{"balance": balance}, ""), nil
}

type ResolveTransactionDTO struct {
	EmployeeID    string
	TransactionID int
	Accept        bool
	Reason        string
}

// ResolveTransaction moves a PENDING transaction to SUCCESS or FALSE and
// applies the balance effect. A row that is no longer PENDING is left
// untouched: the status update is conditional, so two admins racing on the
// same row cannot both win.
func (s *WalletService) ResolveTransaction(data ResolveTransactionDTO) (interface{}, error) {
	var trx models.WalletTransaction
	if err := s.DB.First(&trx, data.TransactionID).Error; err != nil {
		return common.NewErrorResponse(MsgTrxNotFound, nil, http.StatusNotFound), nil
	}
	if trx.Status != models.StatusPending {
		return common.NewErrorResponse(MsgAlreadyResolved, nil, http.StatusBadRequest), nil
	}

	newStatus := models.StatusFalse
	if data.Accept {
		newStatus = models.StatusSuccess
	}

	updates := map[string]interface{}{
		"status":      newStatus,
		"employee_id": data.EmployeeID,
	}
	if data.Reason != "" {
		updates["reason"] = data.Reason
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WalletTransaction{}).
			Where("id = ? AND status = ?", trx.ID, models.StatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Deposits credit on acceptance. Withdrawals were debited when
		// requested, so acceptance keeps the hold and rejection refunds it.
		switch {
		case data.Accept && trx.Type == models.TrxDeposit:
			return s.Helper.Credit(tx, trx.SenderID, trx.Amount)
		case !data.Accept && trx.Type == models.TrxWithdraw:
			return s.Helper.Credit(tx, trx.SenderID, trx.Amount)
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return common.NewErrorResponse(MsgAlreadyResolved, nil, http.StatusBadRequest), nil
	}
	if err != nil {
		return nil, err
	}

	s.Hub.Invalidate([]string{trx.SenderID},
		realtime.KeyWalletTransactions, realtime.KeyWalletBalance)

	s.DB.First(&trx, trx.ID)
	return common.NewSuccessResponse(trx, "Giao dịch đã được cập nhật"), nil
}
