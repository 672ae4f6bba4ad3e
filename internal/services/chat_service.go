package services

import (
	"net/http"
	"strings"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/internal/realtime"
	"goxu-service/pkg/common"
)

// ChatService persists direct messages and pushes the socket events the
// dashboard maps to chat-query invalidation.
type ChatService struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewChatService(db *gorm.DB, hub *realtime.Hub) *ChatService {
	return &ChatService{DB: db, Hub: hub}
}

// RoomID derives a stable direct-message room id from the two member ids.
func RoomID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}

type SendMessageDTO struct {
	SenderID    string
	RecipientID string
	Content     string
}

func (s *ChatService) SendMessage(data SendMessageDTO) (interface{}, error) {
	if data.RecipientID == "" || strings.TrimSpace(data.Content) == "" {
		return common.NewErrorResponse("Nội dung tin nhắn không hợp lệ", nil, http.StatusBadRequest), nil
	}

	msg := models.ChatMessage{
		RoomID:   RoomID(data.SenderID, data.RecipientID),
		SenderID: data.SenderID,
		Content:  data.Content,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}

	s.Hub.Notify([]string{data.RecipientID}, realtime.Event{
		Type:    realtime.EventChatNewMessage,
		Keys:    []string{realtime.KeyChat},
		Payload: msg,
	})

	return common.NewSuccessResponse(msg, ""), nil
}

type ListMessagesDTO struct {
	UserID string
	PeerID string
	Page   int
	Limit  int
}

func (s *ChatService) ListMessages(data ListMessagesDTO) (common.PaginationResult, error) {
	page, limit := common.NormalizePage(data.Page, data.Limit)
	offset := (page - 1) * limit

	room := RoomID(data.UserID, data.PeerID)
	query := s.DB.Model(&models.ChatMessage{}).Where("room_id = ?", room)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var messages []models.ChatMessage
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(messages, total, page, limit, ""), nil
}

// MarkSeen marks every message the peer sent in the room as read and tells
// the peer their messages were seen.
func (s *ChatService) MarkSeen(userID, peerID string) (interface{}, error) {
	room := RoomID(userID, peerID)
	res := s.DB.Model(&models.ChatMessage{}).
		Where("room_id = ? AND sender_id = ? AND read = ?", room, peerID, false).
		UpdateColumn("read", true)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected > 0 {
		s.Hub.Notify([]string{peerID}, realtime.Event{
			Type:    realtime.EventChatSeen,
			Keys:    []string{realtime.KeyChat},
			Payload: map[string]string{"roomId": room, "seenBy": userID},
		})
	}

	return common.NewSuccessResponse(map[string]int64{"updated": res.RowsAffected}, ""), nil
}
