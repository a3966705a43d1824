package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hearthbound/armory/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgInventoryNotFoundError = "Inventory not found"
	ErrMsgItemNotFoundError      = "Item not found"

	ErrMsgOverCapacityError      = "That would exceed your carrying capacity"
	ErrMsgUnknownProfessionError = "Unknown profession"

	ErrMsgSlotEmptyError        = "That slot is empty"
	ErrMsgSlotOccupiedError     = "That slot is occupied"
	ErrMsgSlotEquippedError     = "Unequip the item first"
	ErrMsgInvalidPositionError  = "Invalid slot position"
	ErrMsgNotEnoughItemsError   = "Not enough items in that slot"
	ErrMsgAlreadyEquippedError  = "That item is already equipped"
	ErrMsgEquipSlotTakenError   = "That equipment slot is already occupied"
	ErrMsgEquipSlotEmptyError   = "Nothing is equipped in that slot"
	ErrMsgWrongSlotError        = "That item cannot go in that equipment slot"
	ErrMsgRequirementsError     = "You do not meet the requirements for that item"
	ErrMsgNotYourInventoryError = "You cannot act on another character's inventory"
	ErrMsgBadInputError         = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Callers get a status code plus a message safe to show verbatim.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrInventoryNotFound):
		return http.StatusNotFound, ErrMsgInventoryNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInsufficientCapacity):
		return http.StatusConflict, ErrMsgOverCapacityError
	case errors.Is(err, domain.ErrUnknownProfession):
		return http.StatusBadRequest, ErrMsgUnknownProfessionError
	case errors.Is(err, domain.ErrSlotEmpty):
		return http.StatusConflict, ErrMsgSlotEmptyError
	case errors.Is(err, domain.ErrSlotOccupied):
		return http.StatusConflict, ErrMsgSlotOccupiedError
	case errors.Is(err, domain.ErrSlotEquipped):
		return http.StatusConflict, ErrMsgSlotEquippedError
	case errors.Is(err, domain.ErrInvalidPosition):
		return http.StatusBadRequest, ErrMsgInvalidPositionError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusConflict, ErrMsgNotEnoughItemsError
	case errors.Is(err, domain.ErrAlreadyEquipped):
		return http.StatusConflict, ErrMsgAlreadyEquippedError
	case errors.Is(err, domain.ErrEquipmentSlotOccupied):
		return http.StatusConflict, ErrMsgEquipSlotTakenError
	case errors.Is(err, domain.ErrEquipmentSlotEmpty):
		return http.StatusConflict, ErrMsgEquipSlotEmptyError
	case errors.Is(err, domain.ErrIncompatibleSlot):
		return http.StatusConflict, ErrMsgWrongSlotError
	case errors.Is(err, domain.ErrRequirementsNotMet):
		return http.StatusForbidden, ErrMsgRequirementsError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ErrMsgNotYourInventoryError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgBadInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
