package services

import (
	"errors"
	"os"
	"strings"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

// VietQRService builds scannable bank-transfer QR codes through the VietQR
// generation API. The QR shown next to the deposit form is informational:
// the deposit command submits the form amount, and reconciliation against
// the actual bank statement happens in the admin resolution flow.
type VietQRService struct {
	DB      *gorm.DB
	BaseURL string
}

func NewVietQRService(db *gorm.DB) *VietQRService {
	baseURL := os.Getenv("VIETQR_URL")
	if baseURL == "" {
		baseURL = "https://api.vietqr.io"
	}
	return &VietQRService{DB: db, BaseURL: baseURL}
}

var ErrQRGeneration = errors.New("vietqr generation failed")

// ActiveAccount resolves the active company beneficiary account and its
// bank record.
func (s *VietQRService) ActiveAccount() (*models.CompanyBankAccount, *models.Bank, error) {
	var account models.CompanyBankAccount
	if err := s.DB.Where("is_active = ?", true).Order("id").First(&account).Error; err != nil {
		return nil, nil, err
	}

	var bank models.Bank
	if err := s.DB.First(&bank, account.BankID).Error; err != nil {
		return nil, nil, err
	}
	return &account, &bank, nil
}

// GenerateDepositQR returns the qrDataURL for a deposit of the given Goxu
// amount, or "" without calling out when the amount is not positive or any
// beneficiary field is missing. The QR amount is the VND equivalent.
func (s *VietQRService) GenerateDepositQR(username string, amount float64) (string, error) {
	if amount <= 0 {
		return "", nil
	}

	account, bank, err := s.ActiveAccount()
	if err != nil {
		return "", nil
	}
	if account.AccountNo == "" || account.AccountName == "" || bank.Bin == "" {
		return "", nil
	}

	memo := strings.ReplaceAll(account.Content, "{username}", username)
	payload := map[string]interface{}{
		"accountNo":   account.AccountNo,
		"accountName": account.AccountName,
		"acqId":       bank.Bin,
		"amount":      int64(amount * models.GoxuToVND),
		"addInfo":     memo,
		"format":      "text",
		"template":    "compact",
	}

	resp, err := common.Post(s.BaseURL+"/v2/generate", payload, nil)
	if err != nil {
		return "", err
	}

	respMap, ok := resp.(map[string]interface{})
	if !ok {
		return "", ErrQRGeneration
	}
	dataMap, ok := respMap["data"].(map[string]interface{})
	if !ok {
		return "", ErrQRGeneration
	}
	qrDataURL, ok := dataMap["qrDataURL"].(string)
	if !ok || qrDataURL == "" {
		return "", ErrQRGeneration
	}
	return qrDataURL, nil
}
