package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

func seedUserWithBank(t *testing.T, db *gorm.DB, role string, balance float64) models.User {
	t.Helper()
	user := seedUser(t, db, role, balance)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"bank_name":         "Vietcombank",
		"bank_account_no":   "0123456789",
		"bank_account_name": "NGUYEN VAN A",
	}).Error)
	user.BankName = "Vietcombank"
	user.BankAccountNo = "0123456789"
	return user
}

func TestWithdrawRequiresBankInfo(t *testing.T) {
	db := newTestDB(t)
	svc := NewWithdrawalService(db, NewHelperService(db), nil)
	user := seedUser(t, db, models.RolePartner, 500)

	result, err := svc.RequestWithdrawal(WithdrawDTO{UserID: user.ID, Amount: 100})
	require.NoError(t, err)

	resp, ok := result.(common.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, MsgMissingBankInfo, resp.Message)

	var count int64
	require.NoError(t, db.Model(&models.WalletTransaction{}).Count(&count).Error)
	assert.Zero(t, count, "no ledger row before bank info is on file")
	assert.Equal(t, 500.0, balanceOf(t, db, user.ID))
}

func TestWithdrawHoldsBalanceImmediately(t *testing.T) {
	db := newTestDB(t)
	svc := NewWithdrawalService(db, NewHelperService(db), nil)
	user := seedUserWithBank(t, db, models.RolePartner, 500)

	result, err := svc.RequestWithdrawal(WithdrawDTO{UserID: user.ID, Amount: 120})
	require.NoError(t, err)

	resp, ok := result.(common.SuccessResponse)
	require.True(t, ok)

	trx := resp.Data.(models.WalletTransaction)
	assert.Equal(t, models.StatusPending, trx.Status)
	assert.Equal(t, models.TrxWithdraw, trx.Type)

	assert.Equal(t, 380.0, balanceOf(t, db, user.ID),
		"pending withdrawal holds the amount")
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	svc := NewWithdrawalService(db, NewHelperService(db), nil)
	user := seedUserWithBank(t, db, models.RolePartner, 50)

	result, err := svc.RequestWithdrawal(WithdrawDTO{UserID: user.ID, Amount: 100})
	require.NoError(t, err)

	resp, ok := result.(common.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, MsgInsufficientFunds, resp.Message)
	assert.Equal(t, 50.0, balanceOf(t, db, user.ID))
}

func TestWithdrawInvalidAmount(t *testing.T) {
	db := newTestDB(t)
	svc := NewWithdrawalService(db, NewHelperService(db), nil)
	user := seedUserWithBank(t, db, models.RolePartner, 50)

	for _, amount := range []float64{0, -10} {
		result, err := svc.RequestWithdrawal(WithdrawDTO{UserID: user.ID, Amount: amount})
		require.NoError(t, err)

		resp, ok := result.(common.ErrorResponse)
		require.True(t, ok)
		assert.Equal(t, MsgInvalidAmount, resp.Message)
	}
}

func TestRejectedWithdrawalRefundsHold(t *testing.T) {
	db := newTestDB(t)
	helper := NewHelperService(db)
	withdrawSvc := NewWithdrawalService(db, helper, nil)
	walletSvc := NewWalletService(db, helper, nil)
	admin := seedUser(t, db, models.RoleAdmin, 0)
	user := seedUserWithBank(t, db, models.RolePartner, 500)

	result, err := withdrawSvc.RequestWithdrawal(WithdrawDTO{UserID: user.ID, Amount: 200})
	require.NoError(t, err)
	trx := result.(common.SuccessResponse).Data.(models.WalletTransaction)
	require.Equal(t, 300.0, balanceOf(t, db, user.ID))

	reject, err := walletSvc.ResolveTransaction(ResolveTransactionDTO{
		EmployeeID:    admin.ID,
		TransactionID: trx.ID,
		Accept:        false,
		Reason:        "Sai thông tin chuyển khoản",
	})
	require.NoError(t, err)
	resp, ok := reject.(common.SuccessResponse)
	require.True(t, ok)

	resolved := resp.Data.(models.WalletTransaction)
	assert.Equal(t, models.StatusFalse, resolved.Status)
	require.NotNil(t, resolved.Reason)
	assert.Equal(t, "Sai thông tin chuyển khoản", *resolved.Reason)

	assert.Equal(t, 500.0, balanceOf(t, db, user.ID), "rejection refunds the hold")
}

func TestAcceptedWithdrawalKeepsHold(t *testing.T) {
	db := newTestDB(t)
	helper := NewHelperService(db)
	withdrawSvc := NewWithdrawalService(db, helper, nil)
	walletSvc := NewWalletService(db, helper, nil)
	admin := seedUser(t, db, models.RoleAdmin, 0)
	user := seedUserWithBank(t, db, models.RolePartner, 500)

	result, err := withdrawSvc.RequestWithdrawal(WithdrawDTO{UserID: user.ID, Amount: 200})
	require.NoError(t, err)
	trx := result.(common.SuccessResponse).Data.(models.WalletTransaction)

	accept, err := walletSvc.ResolveTransaction(ResolveTransactionDTO{
		EmployeeID:    admin.ID,
		TransactionID: trx.ID,
		Accept:        true,
	})
	require.NoError(t, err)
	resolved := accept.(common.SuccessResponse).Data.(models.WalletTransaction)
	assert.Equal(t, models.StatusSuccess, resolved.Status)

	assert.Equal(t, 300.0, balanceOf(t, db, user.ID), "acceptance keeps the hold")
}
