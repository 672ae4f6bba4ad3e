package services

import (
	"net/http"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

// UserService serves the read-mostly user projections the dashboard binds
// its partner / service-point / recipient pickers to.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type ListUsersDTO struct {
	Role      string
	Search    string
	ExcludeID string
	Page      int
	Limit     int
}

func (s *UserService) ListUsers(data ListUsersDTO) (common.PaginationResult, error) {
	page, limit := common.NormalizePage(data.Page, data.Limit)
	offset := (page - 1) * limit

	query := s.DB.Model(&models.User{}).Where("active = ?", true)
	if data.Role != "" {
		query = query.Where("role = ?", data.Role)
	}
	if data.ExcludeID != "" {
		query = query.Where("id != ?", data.ExcludeID)
	}
	if data.Search != "" {
		like := "%" + data.Search + "%"
		query = query.Where("username LIKE ? OR full_name LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var users []models.User
	if err := query.Order("username").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(users, total, page, limit, ""), nil
}

// UserView carries the display coordinates the live map renders. Lat/lng
// are parsed from the stored location string, never written back.
type UserView struct {
	models.User
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

func (s *UserService) GetUser(id string) (interface{}, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		return common.NewErrorResponse("Không tìm thấy người dùng", nil, http.StatusNotFound), nil
	}

	view := UserView{User: user}
	if lat, lng, err := models.ParseLocation(user.Location); err == nil {
		view.Lat = &lat
		view.Lng = &lng
	}

	return common.NewSuccessResponse(view, ""), nil
}
