package handler

// Error message constants for HTTP handlers
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query/path parameters
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Inventory operations
	ErrMsgAddItemFailed      = "Failed to add item"
	ErrMsgRemoveItemFailed   = "Failed to remove item"
	ErrMsgMoveItemFailed     = "Failed to move item"
	ErrMsgGetInventoryFailed = "Failed to get inventory"

	// Equipment operations
	ErrMsgEquipItemFailed   = "Failed to equip item"
	ErrMsgUnequipItemFailed = "Failed to unequip item"

	// Identity
	ErrMsgNoIdentity        = "Missing or invalid session token"
	ErrMsgCharacterMismatch = "Character does not belong to this session"
)
