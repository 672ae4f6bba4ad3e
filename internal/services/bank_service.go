package services

import (
	"net/http"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

type BankService struct {
	DB *gorm.DB
}

func NewBankService(db *gorm.DB) *BankService {
	return &BankService{DB: db}
}

// ListBanks returns the full bank directory. Clients treat this as static
// reference data and cache it for the session.
func (s *BankService) ListBanks() (common.SuccessResponse, error) {
	var banks []models.Bank
	if err := s.DB.Order("short_name").Find(&banks).Error; err != nil {
		return common.SuccessResponse{}, err
	}
	return common.NewSuccessResponse(banks, ""), nil
}

// CompanyAccountView joins the beneficiary account with its bank record so
// clients never have to match bank display strings themselves.
type CompanyAccountView struct {
	models.CompanyBankAccount
	Bank models.Bank `json:"bank"`
}

func (s *BankService) ListCompanyAccounts() (common.SuccessResponse, error) {
	var accounts []models.CompanyBankAccount
	if err := s.DB.Order("id").Find(&accounts).Error; err != nil {
		return common.SuccessResponse{}, err
	}

	views := make([]CompanyAccountView, 0, len(accounts))
	for _, a := range accounts {
		var bank models.Bank
		s.DB.First(&bank, a.BankID)
		views = append(views, CompanyAccountView{CompanyBankAccount: a, Bank: bank})
	}
	return common.NewSuccessResponse(views, ""), nil
}

func (s *BankService) ActiveCompanyAccount() (interface{}, error) {
	var account models.CompanyBankAccount
	if err := s.DB.Where("is_active = ?", true).Order("id").First(&account).Error; err != nil {
		return common.NewErrorResponse("Chưa có tài khoản ngân hàng nhận tiền", nil, http.StatusNotFound), nil
	}

	var bank models.Bank
	if err := s.DB.First(&bank, account.BankID).Error; err != nil {
		return common.NewErrorResponse("", nil, http.StatusInternalServerError), nil
	}

	return common.NewSuccessResponse(CompanyAccountView{CompanyBankAccount: account, Bank: bank}, ""), nil
}

type SaveCompanyAccountDTO struct {
	ID          int
	BankID      int
	AccountName string
	AccountNo   string
	Content     string
	IsActive    bool
}

// SaveCompanyAccount creates or updates a beneficiary account. Activating
// one deactivates the rest so the deposit flow always resolves exactly one.
func (s *BankService) SaveCompanyAccount(data SaveCompanyAccountDTO) (interface{}, error) {
	var bank models.Bank
	if err := s.DB.First(&bank, data.BankID).Error; err != nil {
		return common.NewErrorResponse("Ngân hàng không hợp lệ", nil, http.StatusBadRequest), nil
	}

	account := models.CompanyBankAccount{
		ID:          data.ID,
		BankID:      data.BankID,
		AccountName: data.AccountName,
		AccountNo:   data.AccountNo,
		Content:     data.Content,
		IsActive:    data.IsActive,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if data.IsActive {
			if err := tx.Model(&models.CompanyBankAccount{}).
				Where("is_active = ?", true).
				UpdateColumn("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(&account).Error
	})
	if err != nil {
		return nil, err
	}

	return common.NewSuccessResponse(account, "Đã lưu tài khoản ngân hàng"), nil
}
