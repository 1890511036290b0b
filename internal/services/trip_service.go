package services

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"tripforge/internal/models/domain_models"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

const dateKeyFormat = "2006-01-02"

// Zero-padded 24-hour HH:MM. Times inside the grid utilities clamp instead
// of failing; the service boundary is where malformed input gets rejected.
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type TripServiceInterface interface {
	CreateSession(ctx context.Context) (*response_models.SessionCreatedResponse, error)
	GetTripState(ctx context.Context, sessionID string) (*response_models.TripStateResponse, error)
	ResetSession(ctx context.Context, sessionID string) (*response_models.TripStateResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SetTripDates(ctx context.Context, sessionID string, dates []string) (*response_models.TripStateResponse, error)
	SetSelectedDay(ctx context.Context, sessionID string, date string) (*response_models.TripStateResponse, error)
	UpdateTimeSlot(ctx context.Context, sessionID, date, slotID string, item *domain_models.ScheduleItem) (*response_models.TripStateResponse, error)
	AddItemToSchedule(ctx context.Context, sessionID, date, slotID string, item domain_models.ScheduleItem, startTime, endTime string) (*response_models.TripStateResponse, error)
	RemoveItemFromSchedule(ctx context.Context, sessionID, date, slotID string) (*response_models.TripStateResponse, error)

	UpdateTripMetadata(ctx context.Context, req request_models.UpdateTripMetadataRequest) (*response_models.TripStateResponse, error)
	BookAccommodation(ctx context.Context, req request_models.BookAccommodationRequest) (*response_models.TripStateResponse, error)
	RemoveAccommodation(ctx context.Context, sessionID, bookingID string) (*response_models.TripStateResponse, error)
}

// TripService is the state manager for TripCreationState: every operation is
// a transition applied to completion under the session store's lock, so the
// aggregate behaves like a single-threaded reducer even under concurrent
// requests. Operations touching an unknown day leave the state unchanged and
// surface ErrDayNotFound rather than silently dropping the action.
type TripService struct {
	sessions    repositories.TripSessionRepository
	suggestions repositories.SuggestionRepository
}

func NewTripService(
	sessions repositories.TripSessionRepository,
	suggestions repositories.SuggestionRepository,
) TripServiceInterface {
	return &TripService{
		sessions:    sessions,
		suggestions: suggestions,
	}
}

func (t *TripService) CreateSession(ctx context.Context) (*response_models.SessionCreatedResponse, error) {
	state, err := t.sessions.Create(ctx)
	if err != nil {
		return nil, err
	}

	return &response_models.SessionCreatedResponse{
		SessionID: state.SessionID,
		CreatedAt: state.CreatedAt,
	}, nil
}

func (t *TripService) GetTripState(ctx context.Context, sessionID string) (*response_models.TripStateResponse, error) {
	state, err := t.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, utils.ErrSessionNotFound
	}

	return response_models.BuildTripStateResponse(state), nil
}

func (t *TripService) ResetSession(ctx context.Context, sessionID string) (*response_models.TripStateResponse, error) {
	return t.mutate(ctx, sessionID, func(state *domain_models.TripCreationState) error {
		state.ResetInPlace()
		return nil
	})
}

func (t *TripService) DeleteSession(ctx context.Context, sessionID string) error {
	return t.sessions.Delete(ctx, sessionID)
}

// SetTripDates rebuilds every day schedule from the default grid. This is a
// full replace: customizations are discarded even for dates that remain in
// the new range.
func (t *TripService) SetTripDates(ctx context.Context, sessionID string, dates []string) (*response_models.TripStateResponse, error) {
	for _, date := range dates {
		if !isValidDateKey(date) {
			return nil, utils.ErrInvalidDateFormat
		}
	}

	return t.mutate(ctx, sessionID, func(state *domain_models.TripCreationState) error {
		state.TripDates = append([]string(nil), dates...)
		state.DailySchedules = make(map[string]*domain_models.DaySchedule, len(dates))
		for _, date := range dates {
			state.DailySchedules[date] = domain_models.NewDaySchedule(date)
		}

		if len(dates) > 0 {
			state.SelectedDay = dates[0]
		} else {
			state.SelectedDay = ""
		}
		return nil
	})
}

// SetSelectedDay is a plain field update. Membership in the trip dates is
// deliberately not checked: the calendar UI may highlight a day before its
// schedule exists.
func (t *TripService) SetSelectedDay(ctx context.Context, sessionID string, date string) (*response_models.TripStateResponse, error) {
	if !isValidDateKey(date) {
		return nil, utils.ErrInvalidDateFormat
	}

	return t.mutate(ctx, sessionID, func(state *domain_models.TripCreationState) error {
		state.SelectedDay = date
		return nil
	})
}

// UpdateTimeSlot swaps the item attached to an existing slot and recomputes
// its kind: activity while an item is attached, free once cleared.
func (t *TripService) UpdateTimeSlot(ctx context.Context, sessionID, date, slotID string, item *domain_models.ScheduleItem) (*response_models.TripStateResponse, error) {
	return t.mutate(ctx, sessionID, func(state *domain_models.TripCreationState) error {
		day, ok := state.DailySchedules[date]
		if !ok {
			return utils.ErrDayNotFound
		}

		slot := day.FindSlot(slotID)
		if slot == nil {
			return utils.ErrSlotNotFound
		}

		if item != nil {
			copied := *item
			slot.Item = &copied
			slot.Kind = domain_models.SlotKindActivity
		} else {
			slot.Item = nil
			slot.Kind = domain_models.SlotKindFree
		}
		return nil
	})
}

// AddItemToSchedule places an item on the day grid. Re-adding with the same
// slot id replaces the previous block instead of duplicating it, and the
// day's slots are re-sorted so the ascending start-time invariant holds.
func (t *TripService) AddItemToSchedule(ctx context.Context, sessionID, date, slotID string, item domain_models.ScheduleItem, startTime, endTime string) (*response_models.TripStateResponse, error) {
	if !clockPattern.MatchString(startTime) || !clockPattern.MatchString(endTime) {
		return nil, utils.ErrInvalidTimeFormat
	}
	if !item.Kind.IsValid() {
		return nil, utils.ErrInvalidInput
	}

	if slotID == "" {
		slotID = uuid.New().String()
	}

	return t.mutate(ctx, sessionID, func(state *domain_models.TripCreationState) error {
		day, ok := state.DailySchedules[date]
		if !ok {
			return utils.ErrDayNotFound
		}

		day.RemoveSlot(slotID)

		kind := domain_models.SlotKindActivity
		if item.Kind == domain_models.ItemKindRestaurant {
			kind = domain_models.SlotKindMeal
		}

		copied := item
		day.Slots = append(day.Slots, domain_models.TimeSlot{
			ID:              slotID,
			StartTime:       startTime,
			EndTime:         endTime,
			Kind:            kind,
			Item:            &copied,
			IsEditable:      true,
			DurationMinutes: utils.CalculateDuration(startTime, endTime),
		})
		day.SortSlots()
		return nil
	})
}

// RemoveItemFromSchedule clears a block. Default hourly slots revert to free
// grid slots; user-added blocks are removed from the day entirely.
func (t *TripService) RemoveItemFromSchedule(ctx context.Context, sessionID, date, slotID string) (*response_models.TripStateResponse, error) {
	return t.mutate(ctx, sessionID, func(state *domain_models.TripCreationState) error {
		day, ok := state.DailySchedules[date]
		if !ok {
			return utils.ErrDayNotFound
		}

		slot := day.FindSlot(slotID)
		if slot == nil {
			return utils.ErrSlotNotFound
		}

		if isDefaultSlotID(slotID) {
			slot.Item = nil
			slot.Kind = domain_models.SlotKindFree
			return nil
		}

		day.RemoveSlot(slotID)
		return nil
	})
}

func (t *TripService) UpdateTripMetadata(ctx context.Context, req request_models.UpdateTripMetadataRequest) (*response_models.TripStateResponse, error) {
	if req.GroupSize != nil && *req.GroupSize < 0 {
		return nil, utils.ErrInvalidInput
	}

	return t.mutate(ctx, req.SessionID, func(state *domain_models.TripCreationState) error {
		if req.TripType != nil {
			state.TripType = *req.TripType
		}
		if req.Destination != nil {
			state.Destination = *req.Destination
		}
		if req.GroupSize != nil {
			state.GroupSize = *req.GroupSize
		}
		if req.Members != nil {
			members := make([]domain_models.TripMember, 0, len(req.Members))
			for _, m := range req.Members {
				members = append(members, domain_models.TripMember{Name: m.Name, Email: m.Email})
			}
			state.Members = members
		}
		return nil
	})
}

// BookAccommodation pins a catalog hotel to a date range. When a slot id is
// supplied the matching slot on the check-in day is re-tagged accommodation
// with the hotel attached.
func (t *TripService) BookAccommodation(ctx context.Context, req request_models.BookAccommodationRequest) (*response_models.TripStateResponse, error) {
	if !isValidDateKey(req.CheckInDate) || !isValidDateKey(req.CheckOutDate) {
		return nil, utils.ErrInvalidDateFormat
	}
	if req.CheckOutDate <= req.CheckInDate {
		return nil, utils.ErrInvalidInput
	}

	hotel, err := t.suggestions.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, utils.ErrSuggestionNotFound
	}
	if hotel.Kind != domain_models.ItemKindHotel {
		return nil, utils.ErrInvalidInput
	}

	return t.mutate(ctx, req.SessionID, func(state *domain_models.TripCreationState) error {
		if req.SlotID != "" {
			day, ok := state.DailySchedules[req.CheckInDate]
			if !ok {
				return utils.ErrDayNotFound
			}
			slot := day.FindSlot(req.SlotID)
			if slot == nil {
				return utils.ErrSlotNotFound
			}
			copied := *hotel
			slot.Item = &copied
			slot.Kind = domain_models.SlotKindAccommodation
		}

		state.Accommodations = append(state.Accommodations, domain_models.AccommodationBooking{
			ID:           uuid.New().String(),
			Hotel:        *hotel,
			CheckInDate:  req.CheckInDate,
			CheckOutDate: req.CheckOutDate,
		})
		return nil
	})
}

// RemoveAccommodation drops a booking and reverts any slot still carrying
// that hotel back to a free slot.
func (t *TripService) RemoveAccommodation(ctx context.Context, sessionID, bookingID string) (*response_models.TripStateResponse, error) {
	return t.mutate(ctx, sessionID, func(state *domain_models.TripCreationState) error {
		idx := -1
		for i, booking := range state.Accommodations {
			if booking.ID == bookingID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return utils.ErrBookingNotFound
		}

		hotelID := state.Accommodations[idx].Hotel.ID
		state.Accommodations = append(state.Accommodations[:idx], state.Accommodations[idx+1:]...)

		for _, day := range state.DailySchedules {
			for i := range day.Slots {
				slot := &day.Slots[i]
				if slot.Kind == domain_models.SlotKindAccommodation && slot.Item != nil && slot.Item.ID == hotelID {
					slot.Item = nil
					slot.Kind = domain_models.SlotKindFree
				}
			}
		}
		return nil
	})
}

// mutate applies one transition under the store lock and returns a response
// built from a post-transition snapshot, so the payload can never alias state
// another request is about to change.
func (t *TripService) mutate(ctx context.Context, sessionID string, transition func(*domain_models.TripCreationState) error) (*response_models.TripStateResponse, error) {
	var snapshot *domain_models.TripCreationState

	err := t.sessions.Update(ctx, sessionID, func(state *domain_models.TripCreationState) error {
		if err := transition(state); err != nil {
			return err
		}
		snapshot = state.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response_models.BuildTripStateResponse(snapshot), nil
}

func isValidDateKey(date string) bool {
	parsed, err := time.Parse(dateKeyFormat, date)
	if err != nil {
		return false
	}
	// time.Parse accepts some sloppy inputs; require the canonical key back.
	return parsed.Format(dateKeyFormat) == date
}

func isDefaultSlotID(slotID string) bool {
	return len(slotID) > 5 && slotID[:5] == "slot-"
}
