package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/models/domain_models"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

func newTestService(t *testing.T) (TripServiceInterface, string) {
	t.Helper()

	svc := NewTripService(
		repositories.NewTripSessionRepository(time.Hour),
		repositories.NewSuggestionRepository(),
	)

	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	return svc, session.SessionID
}

func findSlot(t *testing.T, day response_models.DayScheduleResponse, slotID string) *response_models.TimeSlotResponse {
	t.Helper()
	for i := range day.Slots {
		if day.Slots[i].ID == slotID {
			return &day.Slots[i]
		}
	}
	return nil
}

func placeItem(id, title string) domain_models.ScheduleItem {
	return domain_models.ScheduleItem{ID: id, Kind: domain_models.ItemKindPlace, Title: title}
}

func TestSetTripDatesBuildsFreshSchedules(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	state, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01", "2025-01-02"})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, state.TripDates)
	assert.Equal(t, "2025-01-01", state.SelectedDay)
	assert.Equal(t, 2, state.TotalDays)
	require.Len(t, state.Days, 2)
	assert.Len(t, state.Days[0].Slots, 18)
	assert.Len(t, state.Days[1].Slots, 18)
	assert.Equal(t, 0, state.TotalActivities)
}

func TestSetTripDatesEmptyClearsSelection(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	state, err := svc.SetTripDates(ctx, sid, nil)
	require.NoError(t, err)

	assert.Empty(t, state.TripDates)
	assert.Empty(t, state.SelectedDay)
	assert.Empty(t, state.Days)
}

func TestSetTripDatesRejectsMalformedKeys(t *testing.T) {
	svc, sid := newTestService(t)

	_, err := svc.SetTripDates(context.Background(), sid, []string{"2025-1-1"})
	assert.ErrorIs(t, err, utils.ErrInvalidDateFormat)

	_, err = svc.SetTripDates(context.Background(), sid, []string{"01/01/2025"})
	assert.ErrorIs(t, err, utils.ErrInvalidDateFormat)
}

func TestSetTripDatesIsFullReplace(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	_, err = svc.AddItemToSchedule(ctx, sid, "2025-01-01", "blk-1", placeItem("p1", "Museum"), "09:00", "10:30")
	require.NoError(t, err)

	// Re-setting the same range rebuilds the day from the default grid;
	// the customization is deliberately discarded.
	state, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	assert.Len(t, state.Days[0].Slots, 18)
	assert.Nil(t, findSlot(t, state.Days[0], "blk-1"))
	assert.Equal(t, 0, state.TotalActivities)
}

func TestSetSelectedDaySkipsMembershipCheck(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	// The calendar may highlight a day whose schedule does not exist yet.
	state, err := svc.SetSelectedDay(ctx, sid, "2025-06-06")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-06", state.SelectedDay)
}

func TestAddItemToScheduleReplacesSameSlotID(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	_, err = svc.AddItemToSchedule(ctx, sid, "2025-01-01", "blk-1", placeItem("p1", "Museum"), "09:00", "10:30")
	require.NoError(t, err)

	state, err := svc.AddItemToSchedule(ctx, sid, "2025-01-01", "blk-1", placeItem("p2", "Beach"), "09:30", "11:00")
	require.NoError(t, err)

	// Idempotent replace: still exactly one block with that id, bearing the
	// second item.
	require.Len(t, state.Days[0].Slots, 19)
	matches := 0
	for _, slot := range state.Days[0].Slots {
		if slot.ID == "blk-1" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)

	slot := findSlot(t, state.Days[0], "blk-1")
	require.NotNil(t, slot)
	assert.Equal(t, "Beach", slot.Item.Title)
	assert.Equal(t, "09:30", slot.StartTime)
	assert.Equal(t, 90, slot.DurationMinutes)
}

func TestAddItemToScheduleKeepsSlotsSorted(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	for _, add := range []struct{ id, start, end string }{
		{"blk-a", "09:00", "10:00"},
		{"blk-b", "07:00", "08:00"},
		{"blk-c", "14:00", "15:00"},
	} {
		_, err = svc.AddItemToSchedule(ctx, sid, "2025-01-01", add.id, placeItem(add.id, add.id), add.start, add.end)
		require.NoError(t, err)
	}

	state, err := svc.GetTripState(ctx, sid)
	require.NoError(t, err)

	slots := state.Days[0].Slots
	for i := 1; i < len(slots); i++ {
		assert.LessOrEqual(t,
			utils.ParseClock(slots[i-1].StartTime),
			utils.ParseClock(slots[i].StartTime),
			"slots out of order at %d", i)
	}

	// The user blocks land in 07:00, 09:00, 14:00 order.
	var order []string
	for _, slot := range slots {
		if slot.ID == "blk-a" || slot.ID == "blk-b" || slot.ID == "blk-c" {
			order = append(order, slot.ID)
		}
	}
	assert.Equal(t, []string{"blk-b", "blk-a", "blk-c"}, order)
}

func TestAddItemToScheduleRestaurantBecomesMeal(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	item := domain_models.ScheduleItem{ID: "r1", Kind: domain_models.ItemKindRestaurant, Title: "Madame Lan"}
	state, err := svc.AddItemToSchedule(ctx, sid, "2025-01-01", "blk-lunch", item, "12:00", "13:30")
	require.NoError(t, err)

	slot := findSlot(t, state.Days[0], "blk-lunch")
	require.NotNil(t, slot)
	assert.Equal(t, string(domain_models.SlotKindMeal), slot.Kind)
}

func TestAddItemToScheduleGeneratesSlotIDWhenMissing(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	state, err := svc.AddItemToSchedule(ctx, sid, "2025-01-01", "", placeItem("p1", "Museum"), "09:00", "10:00")
	require.NoError(t, err)

	require.Len(t, state.Days[0].Slots, 19)
}

func TestAddItemToScheduleUnknownDayLeavesStateUnchanged(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	before, err := svc.GetTripState(ctx, sid)
	require.NoError(t, err)

	_, err = svc.AddItemToSchedule(ctx, sid, "2025-03-05", "blk-1", placeItem("p1", "Museum"), "09:00", "10:00")
	assert.ErrorIs(t, err, utils.ErrDayNotFound)

	after, err := svc.GetTripState(ctx, sid)
	require.NoError(t, err)

	assert.Equal(t, before.TripDates, after.TripDates)
	require.Len(t, after.Days, 1)
	assert.Len(t, after.Days[0].Slots, 18)
	assert.Equal(t, 0, after.TotalActivities)
}

func TestAddItemToScheduleRejectsMalformedTimes(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	_, err = svc.AddItemToSchedule(ctx, sid, "2025-01-01", "blk-1", placeItem("p1", "Museum"), "9:00", "10:00")
	assert.ErrorIs(t, err, utils.ErrInvalidTimeFormat)

	_, err = svc.AddItemToSchedule(ctx, sid, "2025-01-01", "blk-1", placeItem("p1", "Museum"), "09:00", "24:00")
	assert.ErrorIs(t, err, utils.ErrInvalidTimeFormat)
}

func TestUpdateTimeSlotAttachAndClear(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	item := placeItem("p1", "Museum")
	state, err := svc.UpdateTimeSlot(ctx, sid, "2025-01-01", "slot-9", &item)
	require.NoError(t, err)

	slot := findSlot(t, state.Days[0], "slot-9")
	require.NotNil(t, slot)
	assert.Equal(t, string(domain_models.SlotKindActivity), slot.Kind)
	require.NotNil(t, slot.Item)
	assert.Equal(t, "Museum", slot.Item.Title)
	assert.Equal(t, 1, state.TotalActivities)

	state, err = svc.UpdateTimeSlot(ctx, sid, "2025-01-01", "slot-9", nil)
	require.NoError(t, err)

	slot = findSlot(t, state.Days[0], "slot-9")
	require.NotNil(t, slot)
	assert.Equal(t, string(domain_models.SlotKindFree), slot.Kind)
	assert.Nil(t, slot.Item)
}

func TestUpdateTimeSlotUnknownTargets(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	item := placeItem("p1", "Museum")

	_, err = svc.UpdateTimeSlot(ctx, sid, "2024-12-31", "slot-9", &item)
	assert.ErrorIs(t, err, utils.ErrDayNotFound)

	_, err = svc.UpdateTimeSlot(ctx, sid, "2025-01-01", "nope", &item)
	assert.ErrorIs(t, err, utils.ErrSlotNotFound)
}

func TestRemoveItemFromSchedule(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)

	item := placeItem("p1", "Museum")
	_, err = svc.UpdateTimeSlot(ctx, sid, "2025-01-01", "slot-9", &item)
	require.NoError(t, err)
	_, err = svc.AddItemToSchedule(ctx, sid, "2025-01-01", "blk-1", placeItem("p2", "Beach"), "15:00", "16:00")
	require.NoError(t, err)

	// Default grid slots revert to free.
	state, err := svc.RemoveItemFromSchedule(ctx, sid, "2025-01-01", "slot-9")
	require.NoError(t, err)
	slot := findSlot(t, state.Days[0], "slot-9")
	require.NotNil(t, slot)
	assert.Equal(t, string(domain_models.SlotKindFree), slot.Kind)
	assert.Nil(t, slot.Item)

	// User-added blocks disappear from the day.
	state, err = svc.RemoveItemFromSchedule(ctx, sid, "2025-01-01", "blk-1")
	require.NoError(t, err)
	assert.Nil(t, findSlot(t, state.Days[0], "blk-1"))
	assert.Len(t, state.Days[0].Slots, 18)

	_, err = svc.RemoveItemFromSchedule(ctx, sid, "2025-01-01", "blk-1")
	assert.ErrorIs(t, err, utils.ErrSlotNotFound)
}

func TestUpdateTripMetadata(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	tripType := "friends"
	destination := "Da Nang"
	groupSize := 4

	state, err := svc.UpdateTripMetadata(ctx, request_models.UpdateTripMetadataRequest{
		SessionID:   sid,
		TripType:    &tripType,
		Destination: &destination,
		GroupSize:   &groupSize,
		Members: []request_models.TripMemberPayload{
			{Name: "An", Email: "an@example.com"},
			{Name: "Binh"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "friends", state.TripType)
	assert.Equal(t, "Da Nang", state.Destination)
	assert.Equal(t, 4, state.GroupSize)
	require.Len(t, state.Members, 2)
	assert.Equal(t, "An", state.Members[0].Name)

	negative := -1
	_, err = svc.UpdateTripMetadata(ctx, request_models.UpdateTripMetadataRequest{
		SessionID: sid,
		GroupSize: &negative,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestBookAndRemoveAccommodation(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01", "2025-01-02"})
	require.NoError(t, err)

	state, err := svc.BookAccommodation(ctx, request_models.BookAccommodationRequest{
		SessionID:    sid,
		HotelID:      "hotel-furama",
		CheckInDate:  "2025-01-01",
		CheckOutDate: "2025-01-02",
		SlotID:       "slot-22",
	})
	require.NoError(t, err)

	require.Len(t, state.Accommodations, 1)
	booking := state.Accommodations[0]
	assert.Equal(t, "Furama Resort", booking.Hotel.Title)

	slot := findSlot(t, state.Days[0], "slot-22")
	require.NotNil(t, slot)
	assert.Equal(t, string(domain_models.SlotKindAccommodation), slot.Kind)

	state, err = svc.RemoveAccommodation(ctx, sid, booking.ID)
	require.NoError(t, err)

	assert.Empty(t, state.Accommodations)
	slot = findSlot(t, state.Days[0], "slot-22")
	require.NotNil(t, slot)
	assert.Equal(t, string(domain_models.SlotKindFree), slot.Kind)

	_, err = svc.RemoveAccommodation(ctx, sid, booking.ID)
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
}

func TestBookAccommodationValidation(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01", "2025-01-02"})
	require.NoError(t, err)

	_, err = svc.BookAccommodation(ctx, request_models.BookAccommodationRequest{
		SessionID: sid, HotelID: "hotel-furama",
		CheckInDate: "2025-01-02", CheckOutDate: "2025-01-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.BookAccommodation(ctx, request_models.BookAccommodationRequest{
		SessionID: sid, HotelID: "place-dragon-bridge",
		CheckInDate: "2025-01-01", CheckOutDate: "2025-01-02",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.BookAccommodation(ctx, request_models.BookAccommodationRequest{
		SessionID: sid, HotelID: "hotel-unknown",
		CheckInDate: "2025-01-01", CheckOutDate: "2025-01-02",
	})
	assert.ErrorIs(t, err, utils.ErrSuggestionNotFound)
}

func TestResetSessionRestoresInitialState(t *testing.T) {
	svc, sid := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetTripDates(ctx, sid, []string{"2025-01-01"})
	require.NoError(t, err)
	_, err = svc.AddItemToSchedule(ctx, sid, "2025-01-01", "blk-1", placeItem("p1", "Museum"), "09:00", "10:00")
	require.NoError(t, err)

	state, err := svc.ResetSession(ctx, sid)
	require.NoError(t, err)

	assert.Equal(t, sid, state.SessionID)
	assert.Empty(t, state.TripDates)
	assert.Empty(t, state.Days)
	assert.Empty(t, state.SelectedDay)
}

func TestOperationsOnMissingSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetTripState(ctx, "ghost")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	_, err = svc.SetTripDates(ctx, "ghost", []string{"2025-01-01"})
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	err = svc.DeleteSession(ctx, "ghost")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
