package services

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/internal/realtime"
	"goxu-service/pkg/common"
)

const TypeNotifyDispatch = "notify:dispatch"

type NotifyPayload struct {
	UserID string `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type NotificationService struct {
	DB     *gorm.DB
	Client *asynq.Client
	Hub    *realtime.Hub
}

func NewNotificationService(db *gorm.DB, client *asynq.Client, hub *realtime.Hub) *NotificationService {
	return &NotificationService{DB: db, Client: client, Hub: hub}
}

// Dispatch queues a notification for the user. Persistence happens in the
// worker; without a queue client (tests, single-binary deployments) the row
// is written inline instead. Either way delivery is fire-and-forget.
func (s *NotificationService) Dispatch(userID, title, body string) {
	s.Hub.Invalidate([]string{userID}, realtime.KeyNotifications)

	if s.Client == nil {
		s.persist(NotifyPayload{UserID: userID, Title: title, Body: body})
		return
	}

	payload, err := json.Marshal(NotifyPayload{UserID: userID, Title: title, Body: body})
	if err != nil {
		return
	}
	if _, err := s.Client.Enqueue(asynq.NewTask(TypeNotifyDispatch, payload)); err != nil {
		log.Printf("notify enqueue failed: %v", err)
	}
}

func (s *NotificationService) persist(p NotifyPayload) {
	n := models.Notification{UserID: p.UserID, Title: p.Title, Body: p.Body}
	if err := s.DB.Create(&n).Error; err != nil {
		log.Printf("notify persist failed: %v", err)
	}
}

type ListNotificationsDTO struct {
	UserID string
	Page   int
	Limit  int
	Unread bool
}

func (s *NotificationService) ListNotifications(data ListNotificationsDTO) (common.PaginationResult, error) {
	page, limit := common.NormalizePage(data.Page, data.Limit)
	offset := (page - 1) * limit

	query := s.DB.Model(&models.Notification{}).Where("user_id = ?", data.UserID)
	if data.Unread {
		query = query.Where("read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(notifications, total, page, limit, ""), nil
}

func (s *NotificationService) MarkRead(userID string, id int) (interface{}, error) {
	res := s.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumn("read", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return common.NewErrorResponse("Không tìm thấy thông báo", nil, http.StatusNotFound), nil
	}

	s.Hub.Invalidate([]string{userID}, realtime.KeyNotifications)
	return common.NewSuccessResponse(nil, "Đã đánh dấu đã đọc"), nil
}
