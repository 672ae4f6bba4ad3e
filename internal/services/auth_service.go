package services

import (
	"net/http"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"goxu-service/internal/auth"
	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

const tokenTTL = 24 * time.Hour

// AuthService issues session tokens. The signing secret is injected at
// construction so nothing in the request path reads process-global state.
type AuthService struct {
	DB     *gorm.DB
	Secret string
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db, Secret: os.Getenv("JWT_SECRET")}
}

type RegisterDTO struct {
	Username string
	Password string
	FullName string
	Phone    string
	Role     string
}

// Register creates the user and their empty wallet together.
func (s *AuthService) Register(data RegisterDTO) (interface{}, error) {
	switch data.Role {
	case models.RolePartner, models.RoleCustomer, models.RoleIntroducer:
	default:
		return common.NewErrorResponse("Vai trò không hợp lệ", nil, http.StatusBadRequest), nil
	}

	var count int64
	s.DB.Model(&models.User{}).Where("username = ?", data.Username).Count(&count)
	if count > 0 {
		return common.NewErrorResponse(MsgUsernameTaken, nil, http.StatusBadRequest), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     data.Username,
		PasswordHash: string(hash),
		FullName:     data.FullName,
		Phone:        data.Phone,
		Role:         data.Role,
		Active:       true,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		wallet := models.Wallet{UserID: user.ID, Username: user.Username}
		return tx.Create(&wallet).Error
	})
	if err != nil {
		return nil, err
	}

	return common.NewSuccessResponse(user, "Đăng ký thành công"), nil
}

type LoginDTO struct {
	Username string
	Password string
}

func (s *AuthService) Login(data LoginDTO) (interface{}, error) {
	var user models.User
	if err := s.DB.Where("username = ?", data.Username).First(&user).Error; err != nil {
		return common.NewErrorResponse(MsgBadCredentials, nil, http.StatusUnauthorized), nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(data.Password)); err != nil {
		return common.NewErrorResponse(MsgBadCredentials, nil, http.StatusUnauthorized), nil
	}
	if !user.Active {
		return common.NewErrorResponse("Tài khoản đã bị khoá", nil, http.StatusUnauthorized), nil
	}

	token, err := auth.GenerateToken(s.Secret, user.ID, user.Role, tokenTTL)
	if err != nil {
		return nil, err
	}

	return common.NewSuccessResponse(map[string]interface{}{
		"token": token,
		"user":  user,
	}, "Đăng nhập thành công"), nil
}

type UpdateBankInfoDTO struct {
	UserID        string
	BankName      string
	BankAccountNo string
	BankAccount   string
}

// UpdateBankInfo records the withdrawal destination on the user's profile.
func (s *AuthService) UpdateBankInfo(data UpdateBankInfoDTO) (interface{}, error) {
	if data.BankName == "" || data.BankAccountNo == "" {
		return common.NewErrorResponse(MsgMissingBankInfo, nil, http.StatusBadRequest), nil
	}

	res := s.DB.Model(&models.User{}).Where("id = ?", data.UserID).Updates(map[string]interface{}{
		"bank_name":         data.BankName,
		"bank_account_no":   data.BankAccountNo,
		"bank_account_name": data.BankAccount,
	})
	if res.Error != nil {
		return nil, res.Error
	}

	return common.NewSuccessResponse(nil, "Đã cập nhật thông tin ngân hàng"), nil
}
