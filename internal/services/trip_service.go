package services

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/internal/realtime"
	"goxu-service/pkg/common"
)

// TripService owns every trip-request status transition. Clients never
// compute a transition locally; they only invoke these commands.
type TripService struct {
	DB     *gorm.DB
	Helper *HelperService
	Hub    *realtime.Hub
	Notify *NotificationService
}

func NewTripService(db *gorm.DB, helper *HelperService, hub *realtime.Hub, notify *NotificationService) *TripService {
	return &TripService{DB: db, Helper: helper, Hub: hub, Notify: notify}
}

type CreateTripDTO struct {
	PartnerID      string
	ServicePointID string
	GuestCount     int
}

// CreateTrip opens a PENDING request and freezes the service point's
// per-guest reward rate into the row.
func (s *TripService) CreateTrip(data CreateTripDTO) (interface{}, error) {
	if data.GuestCount <= 0 {
		return common.NewErrorResponse(MsgInvalidAmount, nil, http.StatusBadRequest), nil
	}

	var servicePoint models.User
	err := s.DB.First(&servicePoint, "id = ?", data.ServicePointID).Error
	if err != nil || !servicePoint.Active || servicePoint.Role != models.RoleCustomer {
		return common.NewErrorResponse(MsgInvalidServicePt, nil, http.StatusBadRequest), nil
	}

	trip := models.TripRequest{
		PartnerID:      data.PartnerID,
		ServicePointID: data.ServicePointID,
		GuestCount:     data.GuestCount,
		Status:         models.TripPending,
		RewardSnapshot: servicePoint.RewardRate,
	}
	if err := s.DB.Create(&trip).Error; err != nil {
		return nil, err
	}

	s.Notify.Dispatch(data.ServicePointID, "Yêu cầu chuyến mới",
		"Bạn có một yêu cầu chuyến mới đang chờ xác nhận")
	s.Hub.Invalidate([]string{data.PartnerID, data.ServicePointID}, realtime.KeyTrips)

	return common.NewSuccessResponse(trip, "Đã tạo yêu cầu chuyến"), nil
}

type ListTripsDTO struct {
	UserID string
	Role   string
	Status string
	Page   int
	Limit  int
}

func (s *TripService) ListTrips(data ListTripsDTO) (common.PaginationResult, error) {
	page, limit := common.NormalizePage(data.Page, data.Limit)
	offset := (page - 1) * limit

	query := s.DB.Model(&models.TripRequest{})
	switch data.Role {
	case models.RolePartner, models.RoleIntroducer:
		query = query.Where("partner_id = ?", data.UserID)
	case models.RoleCustomer:
		query = query.Where("service_point_id = ?", data.UserID)
	}
	if data.Status != "" {
		query = query.Where("status = ?", data.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var trips []models.TripRequest
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&trips).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(trips, total, page, limit, ""), nil
}

// Confirm moves a PENDING request to CONFIRMED. Only the addressed service
// point may confirm.
func (s *TripService) Confirm(servicePointID string, tripID int) (interface{}, error) {
	return s.transition(tripID, models.TripPending, models.TripConfirmed,
		"service_point_id", servicePointID, "Đã xác nhận chuyến")
}

// Reject moves a PENDING request to REJECTED.
func (s *TripService) Reject(servicePointID string, tripID int) (interface{}, error) {
	return s.transition(tripID, models.TripPending, models.TripRejected,
		"service_point_id", servicePointID, "Đã từ chối chuyến")
}

// Cancel moves a PENDING request to CANCELLED. Only the requesting partner
// may cancel, and only before the service point has acted.
func (s *TripService) Cancel(partnerID string, tripID int) (interface{}, error) {
	return s.transition(tripID, models.TripPending, models.TripCancelled,
		"partner_id", partnerID, "Đã huỷ chuyến")
}

type ArrivalDTO struct {
	ServicePointID   string
	TripID           int
	ActualGuestCount int
}

// ConfirmArrival completes a CONFIRMED trip: it records the headcount and
// arrival time, then credits the partner reward_snapshot × actual guests.
// The reward lands as a settled deposit in the partner's ledger.
func (s *TripService) ConfirmArrival(data ArrivalDTO) (interface{}, error) {
	if data.ActualGuestCount <= 0 {
		return common.NewErrorResponse(MsgInvalidAmount, nil, http.StatusBadRequest), nil
	}

	var trip models.TripRequest
	if err := s.DB.First(&trip, data.TripID).Error; err != nil {
		return common.NewErrorResponse(MsgTripNotFound, nil, http.StatusNotFound), nil
	}
	if trip.ServicePointID != data.ServicePointID {
		return common.NewErrorResponse(MsgTripNotFound, nil, http.StatusNotFound), nil
	}
	if trip.Status != models.TripConfirmed {
		return common.NewErrorResponse(MsgInvalidTripState, nil, http.StatusBadRequest), nil
	}

	now := time.Now()
	reward := trip.RewardSnapshot * float64(data.ActualGuestCount)
	rewardTrx := models.WalletTransaction{
		TransactionNo: common.GenerateTrxNo(),
		SenderID:      trip.PartnerID,
		Amount:        reward,
		Type:          models.TrxDeposit,
		Status:        models.StatusSuccess,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.TripRequest{}).
			Where("id = ? AND status = ?", trip.ID, models.TripConfirmed).
			Updates(map[string]interface{}{
				"status":             models.TripArrived,
				"actual_guest_count": data.ActualGuestCount,
				"arrival_time":       now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if reward <= 0 {
			return nil
		}
		if err := s.Helper.Credit(tx, trip.PartnerID, reward); err != nil {
			return err
		}
		return tx.Create(&rewardTrx).Error
	})
	if err == gorm.ErrRecordNotFound {
		return common.NewErrorResponse(MsgInvalidTripState, nil, http.StatusBadRequest), nil
	}
	if err != nil {
		return nil, err
	}

	s.Notify.Dispatch(trip.PartnerID, "Khách đã đến",
		"Chuyến của bạn đã hoàn tất và điểm thưởng đã được cộng")
	s.Hub.Invalidate([]string{trip.PartnerID},
		realtime.KeyTrips, realtime.KeyWalletBalance, realtime.KeyWalletTransactions)
	s.Hub.Invalidate([]string{trip.ServicePointID}, realtime.KeyTrips)

	s.DB.First(&trip, trip.ID)
	return common.NewSuccessResponse(trip, "Đã xác nhận khách đến"), nil
}

// transition applies a guarded single-step status change owned by ownerID
// through ownerCol. The WHERE clause carries both the expected status and
// the owner, so a stale or foreign command affects zero rows.
func (s *TripService) transition(tripID int, from, to, ownerCol, ownerID, message string) (interface{}, error) {
	var trip models.TripRequest
	if err := s.DB.First(&trip, tripID).Error; err != nil {
		return common.NewErrorResponse(MsgTripNotFound, nil, http.StatusNotFound), nil
	}

	res := s.DB.Model(&models.TripRequest{}).
		Where("id = ? AND status = ? AND "+ownerCol+" = ?", tripID, from, ownerID).
		UpdateColumn("status", to)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return common.NewErrorResponse(MsgInvalidTripState, nil, http.StatusBadRequest), nil
	}

	s.Hub.Invalidate([]string{trip.PartnerID, trip.ServicePointID}, realtime.KeyTrips)

	s.DB.First(&trip, tripID)
	return common.NewSuccessResponse(trip, message), nil
}
