package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

func TestCreateTicketValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupportService(db, NewNotificationService(db, nil, nil))
	user := seedUser(t, db, models.RolePartner, 0)

	for _, dto := range []CreateTicketDTO{
		{UserID: user.ID, Subject: "", Content: "nội dung"},
		{UserID: user.ID, Subject: "chủ đề", Content: "  "},
	} {
		result, err := svc.CreateTicket(dto)
		require.NoError(t, err)
		_, ok := result.(common.ErrorResponse)
		assert.True(t, ok)
	}
}

func TestTicketLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupportService(db, NewNotificationService(db, nil, nil))
	user := seedUser(t, db, models.RolePartner, 0)

	created, err := svc.CreateTicket(CreateTicketDTO{
		UserID:  user.ID,
		Subject: "Không rút được Goxu",
		Content: "Tôi đã yêu cầu rút từ hôm qua nhưng chưa thấy xử lý.",
	})
	require.NoError(t, err)
	ticket := created.(common.SuccessResponse).Data.(models.SupportTicket)
	assert.Equal(t, models.TicketOpen, ticket.Status)

	result, err := svc.Reply(ReplyTicketDTO{
		TicketID: ticket.ID,
		Reply:    "Yêu cầu của bạn đã được xử lý.",
	})
	require.NoError(t, err)
	_, ok := result.(common.SuccessResponse)
	require.True(t, ok)

	var stored models.SupportTicket
	require.NoError(t, db.First(&stored, ticket.ID).Error)
	assert.Equal(t, models.TicketResolved, stored.Status)
	assert.Equal(t, "Yêu cầu của bạn đã được xử lý.", stored.Reply)

	// The requester gets a notification.
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// A resolved ticket cannot be replied to again.
	again, err := svc.Reply(ReplyTicketDTO{TicketID: ticket.ID, Reply: "khác"})
	require.NoError(t, err)
	_, ok = again.(common.ErrorResponse)
	assert.True(t, ok)
}

func TestListTicketsScope(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupportService(db, NewNotificationService(db, nil, nil))
	alice := seedUser(t, db, models.RolePartner, 0)
	bob := seedUser(t, db, models.RolePartner, 0)

	for _, u := range []string{alice.ID, alice.ID, bob.ID} {
		_, err := svc.CreateTicket(CreateTicketDTO{UserID: u, Subject: "chủ đề", Content: "nội dung"})
		require.NoError(t, err)
	}

	mine, err := svc.ListTickets(ListTicketsDTO{UserID: alice.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.Count)

	all, err := svc.ListTickets(ListTicketsDTO{All: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Count)
}
