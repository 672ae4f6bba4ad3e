package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

func TestDispatchPersistsInlineWithoutQueue(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, nil, nil)
	user := seedUser(t, db, models.RolePartner, 0)

	svc.Dispatch(user.ID, "Nạp Goxu", "Yêu cầu nạp của bạn đã được duyệt")

	var n models.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&n).Error)
	assert.Equal(t, "Nạp Goxu", n.Title)
	assert.False(t, n.Read)
}

func TestListNotificationsUnreadFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, nil, nil)
	user := seedUser(t, db, models.RolePartner, 0)

	svc.Dispatch(user.ID, "Một", "")
	svc.Dispatch(user.ID, "Hai", "")

	all, err := svc.ListNotifications(ListNotificationsDTO{UserID: user.ID})
	require.NoError(t, err)
	require.Equal(t, int64(2), all.Count)

	first := all.Data.([]models.Notification)[0]
	result, err := svc.MarkRead(user.ID, first.ID)
	require.NoError(t, err)
	_, ok := result.(common.SuccessResponse)
	require.True(t, ok)

	unread, err := svc.ListNotifications(ListNotificationsDTO{UserID: user.ID, Unread: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread.Count)
}

func TestMarkReadIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, nil, nil)
	owner := seedUser(t, db, models.RolePartner, 0)
	other := seedUser(t, db, models.RolePartner, 0)

	svc.Dispatch(owner.ID, "Thông báo", "")

	var n models.Notification
	require.NoError(t, db.Where("user_id = ?", owner.ID).First(&n).Error)

	result, err := svc.MarkRead(other.ID, n.ID)
	require.NoError(t, err)
	_, ok := result.(common.ErrorResponse)
	assert.True(t, ok, "a notification can only be marked by its owner")
}
