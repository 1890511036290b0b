package response_models

import (
	"tripforge/internal/models/domain_models"
	"tripforge/pkg/utils"
)

// BuildTripStateResponse flattens the aggregate into the shape the frontend
// renders: days in trip-date order, slots in start-time order, plus the quick
// stats for the header.
func BuildTripStateResponse(state *domain_models.TripCreationState) *TripStateResponse {
	out := &TripStateResponse{
		SessionID:      state.SessionID,
		TripType:       state.TripType,
		Destination:    state.Destination,
		GroupSize:      state.GroupSize,
		Members:        state.Members,
		TripDates:      state.TripDates,
		SelectedDay:    state.SelectedDay,
		TotalDays:      len(state.TripDates),
		Accommodations: state.Accommodations,
		Days:           make([]DayScheduleResponse, 0, len(state.TripDates)),
		UpdatedAt:      state.UpdatedAt,
	}

	for _, date := range state.TripDates {
		day, ok := state.DailySchedules[date]
		if !ok {
			continue
		}

		dayOut := DayScheduleResponse{
			Date:  day.Date,
			Slots: make([]TimeSlotResponse, 0, len(day.Slots)),
		}

		for _, slot := range day.Slots {
			if slot.Item != nil {
				out.TotalActivities++
			}

			dayOut.Slots = append(dayOut.Slots, TimeSlotResponse{
				ID:              slot.ID,
				StartTime:       slot.StartTime,
				EndTime:         slot.EndTime,
				DisplayTime:     utils.FormatTimeRange(slot.StartTime, slot.EndTime),
				Kind:            string(slot.Kind),
				DurationMinutes: slot.DurationMinutes,
				IsEditable:      slot.IsEditable,
				Item:            slot.Item,
			})
		}

		out.Days = append(out.Days, dayOut)
	}

	return out
}
