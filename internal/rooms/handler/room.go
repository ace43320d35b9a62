package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/rooms/service"
	"roomly/internal/rooms/validator"
	apperrors "roomly/pkg/errors"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type RoomHandler struct {
	service   service.BookingService
	validator *validator.BookingValidator
	log       *logger.Logger
}

func NewRoomHandler(svc service.BookingService, v *validator.BookingValidator, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service:   svc,
		validator: v,
		log:       log,
	}
}

type BookRoomResponse struct {
	Booked    bool   `json:"booked"`
	RoomID    string `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CancelBookingResponse struct {
	Cancelled bool   `json:"cancelled"`
	BookingID string `json:"booking_id"`
}

// roomResponse exposes the room together with its held bookings; the model
// keeps the booking set private.
type roomResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Bookings []*model.Booking `json:"bookings"`
}

func toRoomResponse(room *model.Room) roomResponse {
	return roomResponse{
		ID:       room.ID,
		Name:     room.Name,
		Bookings: room.Bookings(),
	}
}

func (h *RoomHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Book", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.validator.ValidateBookRoom(&req); err != nil {
		h.log.Warn("Booking request validation failed", "error", err)
		if writeErr := httputil.WriteError(w, apperrors.Validation("Invalid booking request", map[string]any{"error": err.Error()})); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Book", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	booked, err := h.service.BookRoom(r.Context(), req.RoomID, req.StartTime, req.EndTime)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Book", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	resp := BookRoomResponse{
		Booked:    booked,
		RoomID:    req.RoomID,
		StartTime: req.StartTime.Format(time.RFC3339),
		EndTime:   req.EndTime.Format(time.RFC3339),
	}

	// An unavailable room is a normal outcome, not an error.
	if !booked {
		if writeErr := httputil.WriteJSON(w, http.StatusOK, httputil.SuccessResponse{Data: resp}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Book", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, resp); err != nil {
		h.log.Error("failed to write created response", "handler", "Book", "operation", "WriteCreated", "error", err)
	}
}

func (h *RoomHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	cancelled, err := h.service.CancelBooking(r.Context(), bookingID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if !cancelled {
		if writeErr := httputil.WriteError(w, apperrors.NotFoundWithID("Booking", bookingID)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, CancelBookingResponse{
		Cancelled: true,
		BookingID: bookingID,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "Cancel", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) Available(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	startTime, err := parseTimeParam(query.Get("start_time"))
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid start_time parameter: %v", err))); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Available", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	endTime, err := parseTimeParam(query.Get("end_time"))
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid end_time parameter: %v", err))); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Available", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	rooms, err := h.service.GetAvailableRooms(r.Context(), startTime, endTime)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Available", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	out := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}

	if err := httputil.WriteSuccess(w, out); err != nil {
		h.log.Error("failed to write success response", "handler", "Available", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.validator.ValidateCreateRoom(&req); err != nil {
		h.log.Warn("Room creation validation failed", "error", err)
		if writeErr := httputil.WriteError(w, apperrors.Validation("Invalid room request", map[string]any{"error": err.Error()})); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	room, err := h.service.CreateRoom(r.Context(), req.Name)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, toRoomResponse(room)); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	room, err := h.service.GetRoom(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, toRoomResponse(room)); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	out := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}

	if err := httputil.WriteSuccess(w, out); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		// Zero time; the service reports the missing parameter.
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Book)
	router.DELETE("/api/v1/bookings/id/:id", h.Cancel)
	router.GET("/api/v1/rooms", h.GetAll)
	router.POST("/api/v1/rooms", h.Create)
	router.GET("/api/v1/rooms/available", h.Available)
	router.GET("/api/v1/rooms/id/:id", h.GetByID)
}
