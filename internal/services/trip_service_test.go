package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

func newTripService(db *gorm.DB) *TripService {
	return NewTripService(db, NewHelperService(db), nil, NewNotificationService(db, nil, nil))
}

func seedServicePoint(t *testing.T, db *gorm.DB, rewardRate float64) models.User {
	t.Helper()
	sp := seedUser(t, db, models.RoleCustomer, 0)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", sp.ID).
		Update("reward_rate", rewardRate).Error)
	sp.RewardRate = rewardRate
	return sp
}

func TestCreateTripFreezesRewardRate(t *testing.T) {
	db := newTestDB(t)
	svc := newTripService(db)
	partner := seedUser(t, db, models.RolePartner, 0)
	sp := seedServicePoint(t, db, 5)

	result, err := svc.CreateTrip(CreateTripDTO{
		PartnerID:      partner.ID,
		ServicePointID: sp.ID,
		GuestCount:     4,
	})
	require.NoError(t, err)

	resp, ok := result.(common.SuccessResponse)
	require.True(t, ok)

	trip := resp.Data.(models.TripRequest)
	assert.Equal(t, models.TripPending, trip.Status)
	assert.Equal(t, 5.0, trip.RewardSnapshot)

	// Later rate changes must not affect the open request.
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", sp.ID).
		Update("reward_rate", 50).Error)
	var stored models.TripRequest
	require.NoError(t, db.First(&stored, trip.ID).Error)
	assert.Equal(t, 5.0, stored.RewardSnapshot)
}

func TestCreateTripRejectsInvalidServicePoint(t *testing.T) {
	db := newTestDB(t)
	svc := newTripService(db)
	partner := seedUser(t, db, models.RolePartner, 0)
	otherPartner := seedUser(t, db, models.RolePartner, 0)
	inactive := seedServicePoint(t, db, 5)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", inactive.ID).
		Update("active", false).Error)

	for _, spID := range []string{"missing", otherPartner.ID, inactive.ID} {
		result, err := svc.CreateTrip(CreateTripDTO{
			PartnerID:      partner.ID,
			ServicePointID: spID,
			GuestCount:     2,
		})
		require.NoError(t, err)
		assert.Equal(t, MsgInvalidServicePt, errMessage(t, result))
	}
}

func TestTripTransitionsAreOwnerGuarded(t *testing.T) {
	db := newTestDB(t)
	svc := newTripService(db)
	partner := seedUser(t, db, models.RolePartner, 0)
	sp := seedServicePoint(t, db, 5)
	stranger := seedUser(t, db, models.RoleCustomer, 0)

	created, err := svc.CreateTrip(CreateTripDTO{
		PartnerID:      partner.ID,
		ServicePointID: sp.ID,
		GuestCount:     2,
	})
	require.NoError(t, err)
	trip := created.(common.SuccessResponse).Data.(models.TripRequest)

	// A different service point cannot act on the request.
	result, err := svc.Confirm(stranger.ID, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, MsgInvalidTripState, errMessage(t, result))

	// The addressed service point can.
	confirmed, err := svc.Confirm(sp.ID, trip.ID)
	require.NoError(t, err)
	got := confirmed.(common.SuccessResponse).Data.(models.TripRequest)
	assert.Equal(t, models.TripConfirmed, got.Status)

	// Once confirmed, the partner can no longer cancel.
	cancel, err := svc.Cancel(partner.ID, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, MsgInvalidTripState, errMessage(t, cancel))
}

func TestCancelPendingTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newTripService(db)
	partner := seedUser(t, db, models.RolePartner, 0)
	sp := seedServicePoint(t, db, 5)

	created, err := svc.CreateTrip(CreateTripDTO{
		PartnerID:      partner.ID,
		ServicePointID: sp.ID,
		GuestCount:     2,
	})
	require.NoError(t, err)
	trip := created.(common.SuccessResponse).Data.(models.TripRequest)

	cancelled, err := svc.Cancel(partner.ID, trip.ID)
	require.NoError(t, err)
	got := cancelled.(common.SuccessResponse).Data.(models.TripRequest)
	assert.Equal(t, models.TripCancelled, got.Status)

	// A cancelled request cannot be confirmed afterwards.
	confirm, err := svc.Confirm(sp.ID, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, MsgInvalidTripState, errMessage(t, confirm))
}

func TestConfirmArrivalCreditsReward(t *testing.T) {
	db := newTestDB(t)
	svc := newTripService(db)
	partner := seedUser(t, db, models.RolePartner, 10)
	sp := seedServicePoint(t, db, 5)

	created, err := svc.CreateTrip(CreateTripDTO{
		PartnerID:      partner.ID,
		ServicePointID: sp.ID,
		GuestCount:     4,
	})
	require.NoError(t, err)
	trip := created.(common.SuccessResponse).Data.(models.TripRequest)

	// Arrival before confirmation is rejected.
	early, err := svc.ConfirmArrival(ArrivalDTO{
		ServicePointID:   sp.ID,
		TripID:           trip.ID,
		ActualGuestCount: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, MsgInvalidTripState, errMessage(t, early))

	_, err = svc.Confirm(sp.ID, trip.ID)
	require.NoError(t, err)

	arrived, err := svc.ConfirmArrival(ArrivalDTO{
		ServicePointID:   sp.ID,
		TripID:           trip.ID,
		ActualGuestCount: 3,
	})
	require.NoError(t, err)
	got := arrived.(common.SuccessResponse).Data.(models.TripRequest)
	assert.Equal(t, models.TripArrived, got.Status)
	require.NotNil(t, got.ActualGuestCount)
	assert.Equal(t, 3, *got.ActualGuestCount)
	require.NotNil(t, got.ArrivalTime)

	// Reward is snapshot rate times actual guests, not the requested count.
	assert.Equal(t, 25.0, balanceOf(t, db, partner.ID))

	var reward models.WalletTransaction
	require.NoError(t, db.Where("sender_id = ? AND type = ?", partner.ID, models.TrxDeposit).
		First(&reward).Error)
	assert.Equal(t, models.StatusSuccess, reward.Status)
	assert.Equal(t, 15.0, reward.Amount)

	// A second arrival confirmation must not credit again.
	again, err := svc.ConfirmArrival(ArrivalDTO{
		ServicePointID:   sp.ID,
		TripID:           trip.ID,
		ActualGuestCount: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, MsgInvalidTripState, errMessage(t, again))
	assert.Equal(t, 25.0, balanceOf(t, db, partner.ID))
}

func TestListTripsScopedByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newTripService(db)
	partner := seedUser(t, db, models.RolePartner, 0)
	other := seedUser(t, db, models.RolePartner, 0)
	sp := seedServicePoint(t, db, 5)

	for _, p := range []string{partner.ID, partner.ID, other.ID} {
		_, err := svc.CreateTrip(CreateTripDTO{
			PartnerID:      p,
			ServicePointID: sp.ID,
			GuestCount:     1,
		})
		require.NoError(t, err)
	}

	mine, err := svc.ListTrips(ListTripsDTO{UserID: partner.ID, Role: models.RolePartner})
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.Count)

	atPoint, err := svc.ListTrips(ListTripsDTO{UserID: sp.ID, Role: models.RoleCustomer})
	require.NoError(t, err)
	assert.Equal(t, int64(3), atPoint.Count)

	admin, err := svc.ListTrips(ListTripsDTO{UserID: "any", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(3), admin.Count)
}
