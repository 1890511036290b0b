package response_models

import "tripforge/internal/models/domain_models"

// Top-level payload returned to the schedule-builder frontend.
type TripStateResponse struct {
	SessionID   string `json:"session_id"`
	TripType    string `json:"trip_type,omitempty"`
	Destination string `json:"destination,omitempty"`
	GroupSize   int    `json:"group_size,omitempty"`

	Members     []domain_models.TripMember `json:"members,omitempty"`
	TripDates   []string                   `json:"trip_dates"`
	SelectedDay string                     `json:"selected_day,omitempty"`

	// Quick stats for the dashboard header
	TotalDays       int `json:"total_days"`
	TotalActivities int `json:"total_activities"`

	Days           []DayScheduleResponse                `json:"days"`
	Accommodations []domain_models.AccommodationBooking `json:"accommodations,omitempty"`

	UpdatedAt int64 `json:"updated_at"`
}

// One day column of the calendar grid.
type DayScheduleResponse struct {
	Date  string             `json:"date"`
	Slots []TimeSlotResponse `json:"slots"`
}

// One block in a day column. DisplayTime is presentation sugar; the grid math
// always uses the 24-hour strings.
type TimeSlotResponse struct {
	ID              string                      `json:"id"`
	StartTime       string                      `json:"start_time"`
	EndTime         string                      `json:"end_time"`
	DisplayTime     string                      `json:"display_time"`
	Kind            string                      `json:"kind"`
	DurationMinutes int                         `json:"duration_minutes"`
	IsEditable      bool                        `json:"is_editable"`
	Item            *domain_models.ScheduleItem `json:"item,omitempty"`
}

type SessionCreatedResponse struct {
	SessionID string `json:"session_id"`
	CreatedAt int64  `json:"created_at"`
}
