package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Not-found errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgInventoryNotFound = "inventory not found"
	ErrMsgItemNotFound      = "item not found"

	// Capacity errors
	ErrMsgInsufficientCapacity = "insufficient capacity"
	ErrMsgUnknownProfession    = "unknown profession"

	// Slot state errors
	ErrMsgSlotEmpty            = "slot is empty"
	ErrMsgSlotOccupied         = "slot is occupied"
	ErrMsgSlotEquipped         = "slot is equipped"
	ErrMsgInvalidPosition      = "invalid slot position"
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Equipment state errors
	ErrMsgAlreadyEquipped       = "item is already equipped"
	ErrMsgEquipmentSlotOccupied = "equipment slot is occupied"
	ErrMsgEquipmentSlotEmpty    = "equipment slot is empty"
	ErrMsgIncompatibleSlot      = "item is not compatible with equipment slot"
	ErrMsgRequirementsNotMet    = "usage requirements not met"

	// Caller errors
	ErrMsgUnauthorized = "caller does not own the target inventory"
	ErrMsgInvalidInput = "invalid input"

	// Database/system errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context.
var (
	// Not-found errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrInventoryNotFound = errors.New(ErrMsgInventoryNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)

	// Capacity errors
	ErrInsufficientCapacity = errors.New(ErrMsgInsufficientCapacity)
	ErrUnknownProfession    = errors.New(ErrMsgUnknownProfession)

	// Slot state errors
	ErrSlotEmpty            = errors.New(ErrMsgSlotEmpty)
	ErrSlotOccupied         = errors.New(ErrMsgSlotOccupied)
	ErrSlotEquipped         = errors.New(ErrMsgSlotEquipped)
	ErrInvalidPosition      = errors.New(ErrMsgInvalidPosition)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	// Equipment state errors
	ErrAlreadyEquipped       = errors.New(ErrMsgAlreadyEquipped)
	ErrEquipmentSlotOccupied = errors.New(ErrMsgEquipmentSlotOccupied)
	ErrEquipmentSlotEmpty    = errors.New(ErrMsgEquipmentSlotEmpty)
	ErrIncompatibleSlot      = errors.New(ErrMsgIncompatibleSlot)
	ErrRequirementsNotMet    = errors.New(ErrMsgRequirementsNotMet)

	// Caller errors
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/system errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
