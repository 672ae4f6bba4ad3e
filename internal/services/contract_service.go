package services

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"
	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

type ContractService struct {
	DB     *gorm.DB
	Notify *NotificationService
}

func NewContractService(db *gorm.DB, notify *NotificationService) *ContractService {
	return &ContractService{DB: db, Notify: notify}
}

type CreateContractDTO struct {
	UserID  string
	Title   string
	Content string
}

func (s *ContractService) CreateContract(data CreateContractDTO) (interface{}, error) {
	if data.Title == "" {
		return common.NewErrorResponse("Tiêu đề hợp đồng không được để trống", nil, http.StatusBadRequest), nil
	}

	contract := models.Contract{
		UserID:  data.UserID,
		Title:   data.Title,
		Content: data.Content,
		Status:  models.ContractDraft,
	}
	if err := s.DB.Create(&contract).Error; err != nil {
		return nil, err
	}

	s.Notify.Dispatch(data.UserID, "Hợp đồng mới", "Bạn có một hợp đồng mới đang chờ ký")
	return common.NewSuccessResponse(contract, "Đã tạo hợp đồng"), nil
}

func (s *ContractService) ListContracts(userID string, page, limit int) (common.PaginationResult, error) {
	page, limit = common.NormalizePage(page, limit)
	offset := (page - 1) * limit

	query := s.DB.Model(&models.Contract{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var contracts []models.Contract
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&contracts).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(contracts, total, page, limit, ""), nil
}

// Sign moves the caller's DRAFT contract to SIGNED, once.
func (s *ContractService) Sign(userID string, contractID int) (interface{}, error) {
	now := time.Now()
	res := s.DB.Model(&models.Contract{}).
		Where("id = ? AND user_id = ? AND status = ?", contractID, userID, models.ContractDraft).
		Updates(map[string]interface{}{"status": models.ContractSigned, "signed_at": now})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return common.NewErrorResponse("Hợp đồng không hợp lệ hoặc đã được ký", nil, http.StatusBadRequest), nil
	}

	return common.NewSuccessResponse(nil, "Đã ký hợp đồng"), nil
}

// RenderPDF produces the printable contract document.
func (s *ContractService) RenderPDF(userID string, contractID int, isAdmin bool) ([]byte, string, error) {
	var contract models.Contract
	if err := s.DB.First(&contract, contractID).Error; err != nil {
		return nil, "", err
	}
	if !isAdmin && contract.UserID != userID {
		return nil, "", gorm.ErrRecordNotFound
	}

	var user models.User
	s.DB.First(&user, "id = ?", contract.UserID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(contract.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "GOXU - HOP DONG")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("So hop dong : GX-CT-%d", contract.ID),
		fmt.Sprintf("Ben ky      : %s (%s)", user.FullName, user.Username),
		fmt.Sprintf("Trang thai  : %s", contract.Status),
		fmt.Sprintf("Ngay tao    : %s", contract.CreatedAt.Format("2006-01-02")),
	}
	if contract.SignedAt != nil {
		lines = append(lines, fmt.Sprintf("Ngay ky     : %s", contract.SignedAt.Format("2006-01-02 15:04")))
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, contract.Title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, contract.Content, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CONTRACT_%d.pdf", contract.ID)
	return buf.Bytes(), filename, nil
}
