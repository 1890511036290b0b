package domain_models

import "time"

// TripMember is one invited traveller in the planning group. Purely metadata;
// scheduling never consults the member list.
type TripMember struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// AccommodationBooking pins a hotel to a date range of the trip. The hotel
// record is copied in, same ownership rule as slot items.
type AccommodationBooking struct {
	ID           string       `json:"id"`
	Hotel        ScheduleItem `json:"hotel"`
	CheckInDate  string       `json:"check_in_date"`  // "YYYY-MM-DD"
	CheckOutDate string       `json:"check_out_date"` // "YYYY-MM-DD"
}

// TripCreationState is the aggregate the itinerary builder works on. One
// instance exists per planning session; it is created empty, mutated only
// through TripService operations and dies with the session. Nothing here is
// ever persisted.
type TripCreationState struct {
	SessionID   string `json:"session_id"`
	TripType    string `json:"trip_type,omitempty"`
	Destination string `json:"destination,omitempty"`
	GroupSize   int    `json:"group_size,omitempty"`

	Members        []TripMember            `json:"members,omitempty"`
	TripDates      []string                `json:"trip_dates"`
	DailySchedules map[string]*DaySchedule `json:"daily_schedules"`
	SelectedDay    string                  `json:"selected_day,omitempty"`
	Accommodations []AccommodationBooking  `json:"accommodations,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// NewTripCreationState returns the empty initial state for a fresh session.
func NewTripCreationState(sessionID string) *TripCreationState {
	now := time.Now().Unix()
	return &TripCreationState{
		SessionID:      sessionID,
		TripDates:      []string{},
		DailySchedules: make(map[string]*DaySchedule),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ResetInPlace restores the initial empty state while keeping the session id
// and creation timestamp.
func (s *TripCreationState) ResetInPlace() {
	fresh := NewTripCreationState(s.SessionID)
	fresh.CreatedAt = s.CreatedAt
	*s = *fresh
}

// Touch bumps the modification timestamp after a state transition.
func (s *TripCreationState) Touch() {
	s.UpdatedAt = time.Now().Unix()
}

// Clone deep-copies the whole aggregate. Read paths hand out clones so a
// snapshot can never observe a concurrent mutation mid-flight.
func (s *TripCreationState) Clone() *TripCreationState {
	out := *s

	out.Members = append([]TripMember(nil), s.Members...)
	out.TripDates = append([]string(nil), s.TripDates...)
	out.Accommodations = append([]AccommodationBooking(nil), s.Accommodations...)

	out.DailySchedules = make(map[string]*DaySchedule, len(s.DailySchedules))
	for date, day := range s.DailySchedules {
		out.DailySchedules[date] = day.Clone()
	}

	return &out
}
