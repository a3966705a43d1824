package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hearthbound/armory/internal/character"
	"github.com/hearthbound/armory/internal/domain"
	"github.com/hearthbound/armory/internal/inventory"
	"github.com/hearthbound/armory/internal/logger"
)

// requireCharacter pulls the authenticated character from the request context,
// writing a 401 when the identity middleware did not run or rejected the token.
func requireCharacter(w http.ResponseWriter, r *http.Request) (domain.Character, bool) {
	ch, ok := character.FromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("Request without identity")
		respondError(w, http.StatusUnauthorized, ErrMsgNoIdentity)
		return domain.Character{}, false
	}
	return ch, true
}

// checkOwnership rejects requests whose payload names a different character
// than the authenticated one. An empty characterID defaults to the caller.
func checkOwnership(w http.ResponseWriter, r *http.Request, ch domain.Character, characterID string) bool {
	if characterID != "" && characterID != ch.ID {
		logger.FromContext(r.Context()).Warn("Cross-character request rejected",
			"authenticated", ch.ID, "requested", characterID)
		respondError(w, http.StatusForbidden, ErrMsgNotYourInventoryError)
		return false
	}
	return true
}

// HandleGetInventory returns the caller's inventory, creating it on first access
// @Summary Get inventory
// @Description Get the authenticated character's inventory view
// @Tags inventory
// @Produce json
// @Success 200 {object} inventory.View
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ch, ok := requireCharacter(w, r)
		if !ok {
			return
		}

		view, err := svc.GetInventory(r.Context(), ch)
		if err != nil {
			log.Error("Failed to get inventory", "error", err, "characterID", ch.ID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

type AddItemRequest struct {
	CharacterID string `json:"character_id" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
	ItemID      string `json:"item_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Quantity    int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleAddItem adds items to the caller's inventory
// @Summary Add item to inventory
// @Description Pick up a quantity of an item, stacking where possible
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item details"
// @Success 200 {object} inventory.View
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Capacity exceeded"
// @Failure 500 {object} ErrorResponse
// @Router /inventory/add [post]
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ch, ok := requireCharacter(w, r)
		if !ok {
			return
		}

		var req AddItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode add item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}
		if !checkOwnership(w, r, ch, req.CharacterID) {
			return
		}

		log.Debug("Add item request", "characterID", ch.ID, "itemID", req.ItemID, "quantity", req.Quantity)

		view, err := svc.AddItem(r.Context(), ch, req.ItemID, req.Quantity)
		if err != nil {
			log.Error("Failed to add item", "error", err, "characterID", ch.ID, "itemID", req.ItemID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

type RemoveItemRequest struct {
	CharacterID string `json:"character_id" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
	Position    int    `json:"position" validate:"min=1"`
	Quantity    int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleRemoveItem drops items from a slot in the caller's inventory
// @Summary Remove item from inventory
// @Description Drop a quantity of the item held at a slot position
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body RemoveItemRequest true "Removal details"
// @Success 200 {object} inventory.View
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slot empty, equipped, or short"
// @Failure 500 {object} ErrorResponse
// @Router /inventory/remove [post]
func HandleRemoveItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ch, ok := requireCharacter(w, r)
		if !ok {
			return
		}

		var req RemoveItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode remove item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}
		if !checkOwnership(w, r, ch, req.CharacterID) {
			return
		}

		log.Debug("Remove item request", "characterID", ch.ID, "position", req.Position, "quantity", req.Quantity)

		view, err := svc.RemoveItem(r.Context(), ch, req.Position, req.Quantity)
		if err != nil {
			log.Error("Failed to remove item", "error", err, "characterID", ch.ID, "position", req.Position)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

type MoveItemRequest struct {
	CharacterID  string `json:"character_id" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
	FromPosition int    `json:"from_position" validate:"min=1"`
	ToPosition   int    `json:"to_position" validate:"min=1"`
}

// HandleMoveItem relocates or merges a slot within the caller's inventory
// @Summary Move item between slots
// @Description Relocate a slot's contents, merging compatible stacks
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body MoveItemRequest true "Move details"
// @Success 200 {object} inventory.View
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Destination occupied"
// @Failure 500 {object} ErrorResponse
// @Router /inventory/move [post]
func HandleMoveItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ch, ok := requireCharacter(w, r)
		if !ok {
			return
		}

		var req MoveItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode move item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}
		if !checkOwnership(w, r, ch, req.CharacterID) {
			return
		}

		log.Debug("Move item request", "characterID", ch.ID, "from", req.FromPosition, "to", req.ToPosition)

		view, err := svc.MoveItem(r.Context(), ch, req.FromPosition, req.ToPosition)
		if err != nil {
			log.Error("Failed to move item", "error", err, "characterID", ch.ID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

type EquipRequest struct {
	CharacterID   string `json:"character_id" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
	Position      int    `json:"position" validate:"min=1"`
	EquipmentSlot string `json:"equipment_slot" validate:"required,equipment_slot"`
}

// HandleEquip equips the item at a slot position
// @Summary Equip item
// @Description Wear the item at a slot position under an equipment-slot type
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body EquipRequest true "Equip details"
// @Success 200 {object} inventory.View
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Requirements not met"
// @Failure 409 {object} ErrorResponse "Equipment slot occupied"
// @Failure 500 {object} ErrorResponse
// @Router /inventory/equip [post]
func HandleEquip(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ch, ok := requireCharacter(w, r)
		if !ok {
			return
		}

		var req EquipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode equip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}
		if !checkOwnership(w, r, ch, req.CharacterID) {
			return
		}

		log.Debug("Equip request", "characterID", ch.ID, "position", req.Position, "equipmentSlot", req.EquipmentSlot)

		view, err := svc.Equip(r.Context(), ch, req.Position, domain.EquipmentSlot(req.EquipmentSlot))
		if err != nil {
			log.Error("Failed to equip item", "error", err, "characterID", ch.ID, "position", req.Position)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

type UnequipRequest struct {
	CharacterID   string `json:"character_id" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
	EquipmentSlot string `json:"equipment_slot" validate:"required,equipment_slot"`
}

// HandleUnequip clears an equipment-slot type
// @Summary Unequip item
// @Description Return the equipped item in a slot type to plain carried state
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body UnequipRequest true "Unequip details"
// @Success 200 {object} inventory.View
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Equipment slot empty"
// @Failure 500 {object} ErrorResponse
// @Router /inventory/unequip [post]
func HandleUnequip(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ch, ok := requireCharacter(w, r)
		if !ok {
			return
		}

		var req UnequipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode unequip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}
		if !checkOwnership(w, r, ch, req.CharacterID) {
			return
		}

		log.Debug("Unequip request", "characterID", ch.ID, "equipmentSlot", req.EquipmentSlot)

		view, err := svc.Unequip(r.Context(), ch, domain.EquipmentSlot(req.EquipmentSlot))
		if err != nil {
			log.Error("Failed to unequip item", "error", err, "characterID", ch.ID, "equipmentSlot", req.EquipmentSlot)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}
