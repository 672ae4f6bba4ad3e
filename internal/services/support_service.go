package services

import (
	"net/http"
	"strings"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

type SupportService struct {
	DB     *gorm.DB
	Notify *NotificationService
}

func NewSupportService(db *gorm.DB, notify *NotificationService) *SupportService {
	return &SupportService{DB: db, Notify: notify}
}

type CreateTicketDTO struct {
	UserID  string
	Subject string
	Content string
}

func (s *SupportService) CreateTicket(data CreateTicketDTO) (interface{}, error) {
	if strings.TrimSpace(data.Subject) == "" || strings.TrimSpace(data.Content) == "" {
		return common.NewErrorResponse("Vui lòng nhập đầy đủ nội dung", nil, http.StatusBadRequest), nil
	}

	ticket := models.SupportTicket{
		UserID:  data.UserID,
		Subject: data.Subject,
		Content: data.Content,
		Status:  models.TicketOpen,
	}
	if err := s.DB.Create(&ticket).Error; err != nil {
		return nil, err
	}

	return common.NewSuccessResponse(ticket, "Đã gửi yêu cầu hỗ trợ"), nil
}

type ListTicketsDTO struct {
	UserID string
	Page   int
	Limit  int
	// Admin listing sees all tickets.
	All bool
}

func (s *SupportService) ListTickets(data ListTicketsDTO) (common.PaginationResult, error) {
	page, limit := common.NormalizePage(data.Page, data.Limit)
	offset := (page - 1) * limit

	query := s.DB.Model(&models.SupportTicket{})
	if !data.All {
		query = query.Where("user_id = ?", data.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var tickets []models.SupportTicket
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tickets).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(tickets, total, page, limit, ""), nil
}

type ReplyTicketDTO struct {
	TicketID int
	Reply    string
}

// Reply resolves an open ticket with the admin's answer and notifies the
// requester.
func (s *SupportService) Reply(data ReplyTicketDTO) (interface{}, error) {
	var ticket models.SupportTicket
	if err := s.DB.First(&ticket, data.TicketID).Error; err != nil {
		return common.NewErrorResponse("Không tìm thấy yêu cầu hỗ trợ", nil, http.StatusNotFound), nil
	}

	res := s.DB.Model(&models.SupportTicket{}).
		Where("id = ? AND status = ?", data.TicketID, models.TicketOpen).
		Updates(map[string]interface{}{"status": models.TicketResolved, "reply": data.Reply})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return common.NewErrorResponse("Yêu cầu đã được xử lý", nil, http.StatusBadRequest), nil
	}

	s.Notify.Dispatch(ticket.UserID, "Phản hồi hỗ trợ", "Yêu cầu hỗ trợ của bạn đã được trả lời")
	return common.NewSuccessResponse(nil, "Đã trả lời yêu cầu hỗ trợ"), nil
}
