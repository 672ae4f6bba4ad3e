package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"goxu-service/internal/models"
	"goxu-service/internal/services"
)

func newTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Wallet{}, &models.WalletTransaction{},
		&models.ArchivedTransaction{}, &models.Bank{}, &models.CompanyBankAccount{},
		&models.TripRequest{}, &models.Contract{}, &models.SupportTicket{},
		&models.Notification{}, &models.ChatMessage{},
	))

	helper := services.NewHelperService(db)
	notify := services.NewNotificationService(db, nil, nil)

	h := &Handler{
		Auth:      &services.AuthService{DB: db, Secret: "test-secret"},
		Users:     services.NewUserService(db),
		Wallet:    services.NewWalletService(db, helper, nil),
		Deposit:   services.NewDepositService(db, helper, nil, nil),
		Withdraw:  services.NewWithdrawalService(db, helper, nil),
		Transfers: services.NewTransferService(db, helper, nil),
		VietQR:    services.NewVietQRService(db),
		Banks:     services.NewBankService(db),
		Trips:     services.NewTripService(db, helper, nil, notify),
		Contract:  services.NewContractService(db, notify),
		Support:   services.NewSupportService(db, notify),
		Notify:    notify,
		Chat:      services.NewChatService(db, nil),
		UploadDir: t.TempDir(),
	}
	return h, db
}

func registerAndLogin(t *testing.T, r *gin.Engine, username, role string) string {
	t.Helper()

	body, _ := json.Marshal(gin.H{
		"username":  username,
		"password":  "matkhau123",
		"full_name": "Người dùng " + username,
		"role":      role,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body, _ = json.Marshal(gin.H{"username": username, "password": "matkhau123"})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestRouterRejectsUnauthenticated(t *testing.T) {
	h, _ := newTestHandler(t)
	r := h.Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/wallets/balance", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterGuardsAdminRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	r := h.Router()
	token := registerAndLogin(t, r, "taixe01", models.RolePartner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/wallets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Bạn không có quyền thực hiện thao tác này")
}

func TestDepositEndpointMultipart(t *testing.T) {
	h, db := newTestHandler(t)
	r := h.Router()
	token := registerAndLogin(t, r, "taixe01", models.RolePartner)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("amount", "500"))
	part, err := mw.CreateFormFile("bill", "bill.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("receipt bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wallets/deposit", &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"vndAmount":%d`, 500_000))

	var trx models.WalletTransaction
	require.NoError(t, db.First(&trx).Error)
	assert.Equal(t, models.StatusPending, trx.Status)
	require.NotNil(t, trx.Bill)
	assert.FileExists(t, *trx.Bill)
}

func TestDepositEndpointRejectsBadAmount(t *testing.T) {
	h, _ := newTestHandler(t)
	r := h.Router()
	token := registerAndLogin(t, r, "taixe01", models.RolePartner)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("amount", "5"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wallets/deposit", &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgDepositOutOfRange)
}

func TestWithdrawEndpointRequiresBankInfo(t *testing.T) {
	h, db := newTestHandler(t)
	r := h.Router()
	token := registerAndLogin(t, r, "taixe01", models.RolePartner)

	require.NoError(t, db.Model(&models.Wallet{}).
		Where("username = ?", "taixe01").
		Update("balance", 1000).Error)

	body, _ := json.Marshal(gin.H{"amount": 100})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wallets/withdraw", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgMissingBankInfo)

	// After the user records bank info the same request goes through.
	bank, _ := json.Marshal(gin.H{"bankName": "Vietcombank", "bankAccountNo": "0123456789"})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/users/bank-info", bytes.NewReader(bank))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/wallets/withdraw", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
