package handler

import (
	"net/http"

	"github.com/mossvale/WildkeeperBot_Go/internal/adventure"
	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
	"github.com/mossvale/WildkeeperBot_Go/internal/encounter"
	"github.com/mossvale/WildkeeperBot_Go/internal/logger"
)

type AdventureHandler struct {
	service adventure.Service
}

func NewAdventureHandler(service adventure.Service) *AdventureHandler {
	return &AdventureHandler{service: service}
}

// ResolveActionRequest represents a final-value resolution request
type ResolveActionRequest struct {
	CharacterID   string  `json:"character_id" validate:"required"`
	DiceRoll      float64 `json:"dice_roll"`
	Mode          string  `json:"mode" validate:"required,resolvemode"`
	ActionContext string  `json:"action_context" validate:"required,actioncontext"`
}

// HandleResolve handles final-value resolution requests
func (h *AdventureHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Resolve action"); err != nil {
		return
	}

	result, err := h.service.ResolveAction(r.Context(), req.CharacterID, req.DiceRoll,
		domain.ResolveMode(req.Mode), domain.ActionContext(req.ActionContext))
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgResolveFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// FleeRequest represents a flee resolution request
type FleeRequest struct {
	CharacterID       string `json:"character_id" validate:"required"`
	MonsterTier       int    `json:"monster_tier" validate:"required,min=1,max=10"`
	AdvantageAttempts int    `json:"advantage_attempts" validate:"min=0,max=10"`
}

// HandleFlee handles flee attempt requests
func (h *AdventureHandler) HandleFlee(w http.ResponseWriter, r *http.Request) {
	var req FleeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Attempt flee"); err != nil {
		return
	}

	outcome, err := h.service.AttemptFlee(r.Context(), req.CharacterID, req.MonsterTier, req.AdvantageAttempts)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgFleeFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// HandleEncounter handles encounter roll requests. The mode query parameter
// selects the probability table; it defaults to the standard table.
func (h *AdventureHandler) HandleEncounter(w http.ResponseWriter, r *http.Request) {
	mode := encounter.ModeStandard
	if raw := r.URL.Query().Get("mode"); raw != "" {
		switch encounter.Mode(raw) {
		case encounter.ModeStandard, encounter.ModeBloodMoon, encounter.ModeExploration:
			mode = encounter.Mode(raw)
		default:
			respondError(w, http.StatusBadRequest, ErrMsgInvalidEncounter)
			return
		}
	}

	result, err := h.service.RollEncounter(r.Context(), mode)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgEncounterFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ExploreResponse represents an exploration roll response
type ExploreResponse struct {
	Found   bool            `json:"found"`
	Monster *domain.Monster `json:"monster,omitempty"`
}

// HandleExplore handles exploration encounter requests
func (h *AdventureHandler) HandleExplore(w http.ResponseWriter, r *http.Request) {
	monster, err := h.service.ExploreEncounter(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgExploreFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, ExploreResponse{
		Found:   monster != nil,
		Monster: monster,
	})
}

// LootPoolRequest represents a loot pool build request
type LootPoolRequest struct {
	CharacterID string  `json:"character_id" validate:"required"`
	FinalValue  float64 `json:"final_value" validate:"min=0,max=100"`
}

// LootPoolResponse represents a loot pool build response
type LootPoolResponse struct {
	PoolSize int           `json:"pool_size"`
	Items    []domain.Item `json:"items"`
}

// HandleLootPool handles loot pool build requests
func (h *AdventureHandler) HandleLootPool(w http.ResponseWriter, r *http.Request) {
	var req LootPoolRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Build loot pool"); err != nil {
		return
	}

	pool, err := h.service.BuildLootPool(r.Context(), req.CharacterID, req.FinalValue)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgLootPoolFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, LootPoolResponse{
		PoolSize: len(pool),
		Items:    pool,
	})
}
