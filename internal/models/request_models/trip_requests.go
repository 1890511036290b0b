package request_models

import "tripforge/internal/models/domain_models"

// ScheduleItemPayload mirrors domain_models.ScheduleItem at the API boundary.
type ScheduleItemPayload struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind" binding:"required,oneof=place restaurant hotel"`
	Title           string  `json:"title" binding:"required"`
	Rating          float64 `json:"rating"`
	Thumbnail       string  `json:"thumbnail"`
	DistanceKM      float64 `json:"distance_km"`
	PriceLevel      int     `json:"price_level"`
	Description     string  `json:"description"`
	DefaultDuration int     `json:"default_duration_minutes"`
	Category        string  `json:"category"`
	Cuisine         string  `json:"cuisine"`
	Stars           int     `json:"stars"`
	Location        string  `json:"location"`
}

func (p *ScheduleItemPayload) ToDomain() *domain_models.ScheduleItem {
	if p == nil {
		return nil
	}
	return &domain_models.ScheduleItem{
		ID:              p.ID,
		Kind:            domain_models.ItemKind(p.Kind),
		Title:           p.Title,
		Rating:          p.Rating,
		Thumbnail:       p.Thumbnail,
		DistanceKM:      p.DistanceKM,
		PriceLevel:      p.PriceLevel,
		Description:     p.Description,
		DefaultDuration: p.DefaultDuration,
		Category:        p.Category,
		Cuisine:         p.Cuisine,
		Stars:           p.Stars,
		Location:        p.Location,
	}
}

type SetTripDatesRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	// Ordered YYYY-MM-DD keys; an empty list clears the itinerary.
	Dates []string `json:"dates"`
}

type SelectDayRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

type UpdateTimeSlotRequest struct {
	SessionID string               `json:"session_id" binding:"required"`
	Date      string               `json:"date" binding:"required"`
	SlotID    string               `json:"slot_id" binding:"required"`
	Item      *ScheduleItemPayload `json:"item"` // nil clears the slot back to free
}

type AddItemToScheduleRequest struct {
	SessionID string              `json:"session_id" binding:"required"`
	Date      string              `json:"date" binding:"required"`
	SlotID    string              `json:"slot_id"` // generated when empty
	Item      ScheduleItemPayload `json:"item" binding:"required"`
	StartTime string              `json:"start_time" binding:"required"`
	EndTime   string              `json:"end_time" binding:"required"`
}

type RemoveItemFromScheduleRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	SlotID    string `json:"slot_id" binding:"required"`
}

type TripMemberPayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type UpdateTripMetadataRequest struct {
	SessionID   string              `json:"session_id" binding:"required"`
	TripType    *string             `json:"trip_type"`
	Destination *string             `json:"destination"`
	GroupSize   *int                `json:"group_size"`
	Members     []TripMemberPayload `json:"members"`
}

type BookAccommodationRequest struct {
	SessionID    string `json:"session_id" binding:"required"`
	HotelID      string `json:"hotel_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	// Optional slot on the check-in day to re-tag as accommodation.
	SlotID string `json:"slot_id"`
}

type RemoveAccommodationRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	BookingID string `json:"booking_id" binding:"required"`
}
