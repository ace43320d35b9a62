package validator

import (
	"errors"
	"strings"
	"testing"
	"time"

	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewBookingValidator(log)
}

func TestValidateBookRoom_Valid(t *testing.T) {
	v := newTestValidator()
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	err := v.ValidateBookRoom(&model.BookRoomRequest{
		RoomID:    "room1",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateBookRoom_MissingFields(t *testing.T) {
	v := newTestValidator()
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		req   *model.BookRoomRequest
		field string
	}{
		{"missing room id", &model.BookRoomRequest{StartTime: start, EndTime: start.Add(time.Hour)}, "RoomID"},
		{"missing start time", &model.BookRoomRequest{RoomID: "r1", EndTime: start}, "StartTime"},
		{"missing end time", &model.BookRoomRequest{RoomID: "r1", StartTime: start}, "EndTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBookRoom(tt.req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to mention %s, got %s", tt.field, err.Error())
			}
		})
	}
}

func TestValidateBookRoom_EndBeforeStart(t *testing.T) {
	v := newTestValidator()
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	err := v.ValidateBookRoom(&model.BookRoomRequest{
		RoomID:    "room1",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "EndTime must be after StartTime") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestValidateCreateRoom(t *testing.T) {
	v := newTestValidator()

	if err := v.ValidateCreateRoom(&model.CreateRoomRequest{Name: "Board Room"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := v.ValidateCreateRoom(&model.CreateRoomRequest{}); err == nil {
		t.Error("expected a validation error for missing name")
	}

	if err := v.ValidateCreateRoom(&model.CreateRoomRequest{Name: "x"}); err == nil {
		t.Error("expected a validation error for too-short name")
	}
}
