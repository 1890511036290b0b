package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/models/request_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateSession godoc
// @Summary Start a planning session
// @Description Create an empty trip-creation session and return its id
// @Tags Trip
// @Produce json
// @Success 201 {object} response_models.SessionCreatedResponse
// @Router /sessions [post]
func (t *TripController) CreateSession(c *gin.Context) {
	session, err := t.tripService.CreateSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, session, "Trip session created")
}

// GetTripState godoc
// @Summary Get the full itinerary state
// @Tags Trip
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.TripStateResponse
// @Failure 404 {object} utils.APIResponse
// @Router /sessions/{sessionId} [get]
func (t *TripController) GetTripState(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	state, err := t.tripService.GetTripState(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Trip state fetched successfully")
}

func (t *TripController) ResetSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	state, err := t.tripService.ResetSession(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Trip session reset")
}

func (t *TripController) DeleteSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	if err := t.tripService.DeleteSession(c.Request.Context(), sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip session deleted")
}

// SetTripDates godoc
// @Summary Set the trip date range
// @Description Replace the trip dates and rebuild every day schedule from the default grid
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SetTripDatesRequest true "Session ID and ordered YYYY-MM-DD dates"
// @Success 200 {object} response_models.TripStateResponse
// @Router /trips/set-trip-dates [post]
func (t *TripController) SetTripDates(c *gin.Context) {
	var req request_models.SetTripDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "SessionID is required")
		return
	}

	state, err := t.tripService.SetTripDates(c.Request.Context(), req.SessionID, req.Dates)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Trip dates updated")
}

func (t *TripController) SelectDay(c *gin.Context) {
	var req request_models.SelectDayRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.Date == "" {
		utils.RespondError(c, http.StatusBadRequest, "SessionID and Date are required")
		return
	}

	state, err := t.tripService.SetSelectedDay(c.Request.Context(), req.SessionID, req.Date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Selected day updated")
}

// UpdateTimeSlot godoc
// @Summary Attach or clear the item on an existing slot
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.UpdateTimeSlotRequest true "Session ID, date, slot id, optional item"
// @Success 200 {object} response_models.TripStateResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/update-time-slot [post]
func (t *TripController) UpdateTimeSlot(c *gin.Context) {
	var req request_models.UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.Date == "" || req.SlotID == "" {
		utils.RespondError(c, http.StatusBadRequest, "SessionID, Date and SlotID are required")
		return
	}

	state, err := t.tripService.UpdateTimeSlot(c.Request.Context(), req.SessionID, req.Date, req.SlotID, req.Item.ToDomain())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Time slot updated")
}

// AddItemToSchedule godoc
// @Summary Place an item onto a day schedule
// @Description Commit a drag/drop of a suggestion onto the calendar grid. Re-sending the same slot id replaces the existing block.
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.AddItemToScheduleRequest true "Session ID, date, item and HH:MM start/end"
// @Success 200 {object} response_models.TripStateResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/add-item-to-schedule [post]
func (t *TripController) AddItemToSchedule(c *gin.Context) {
	var req request_models.AddItemToScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.Date == "" {
		utils.RespondError(c, http.StatusBadRequest, "SessionID, Date, Item and StartTime/EndTime are required")
		return
	}

	state, err := t.tripService.AddItemToSchedule(
		c.Request.Context(),
		req.SessionID,
		req.Date,
		req.SlotID,
		*req.Item.ToDomain(),
		req.StartTime,
		req.EndTime,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Item added to schedule")
}

func (t *TripController) RemoveItemFromSchedule(c *gin.Context) {
	var req request_models.RemoveItemFromScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.Date == "" || req.SlotID == "" {
		utils.RespondError(c, http.StatusBadRequest, "SessionID, Date and SlotID are required")
		return
	}

	state, err := t.tripService.RemoveItemFromSchedule(c.Request.Context(), req.SessionID, req.Date, req.SlotID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Item removed from schedule")
}

func (t *TripController) UpdateTripMetadata(c *gin.Context) {
	var req request_models.UpdateTripMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "SessionID is required")
		return
	}

	state, err := t.tripService.UpdateTripMetadata(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Trip details updated")
}

func (t *TripController) BookAccommodation(c *gin.Context) {
	var req request_models.BookAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.HotelID == "" {
		utils.RespondError(c, http.StatusBadRequest, "SessionID, HotelID and check-in/check-out dates are required")
		return
	}

	state, err := t.tripService.BookAccommodation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Accommodation booked")
}

func (t *TripController) RemoveAccommodation(c *gin.Context) {
	var req request_models.RemoveAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.BookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "SessionID and BookingID are required")
		return
	}

	state, err := t.tripService.RemoveAccommodation(c.Request.Context(), req.SessionID, req.BookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Accommodation removed")
}
