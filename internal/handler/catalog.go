package handler

import (
	"net/http"

	"github.com/mossvale/WildkeeperBot_Go/internal/catalog"
	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
	"github.com/mossvale/WildkeeperBot_Go/internal/logger"
)

// CatalogHandler exposes read access to the item and monster catalogs plus a
// cache reload hook for content updates.
type CatalogHandler struct {
	service catalog.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(service catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ItemsResponse represents an item catalog response
type ItemsResponse struct {
	Count int           `json:"count"`
	Items []domain.Item `json:"items"`
}

// HandleItems lists loot candidates. The job query parameter narrows the
// listing to candidates flagged for that job.
func (h *CatalogHandler) HandleItems(w http.ResponseWriter, r *http.Request) {
	var items []domain.Item
	var err error

	if job := r.URL.Query().Get("job"); job != "" {
		items, err = h.service.ItemsForJob(r.Context(), job)
	} else {
		items, err = h.service.Items(r.Context())
	}
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgCatalogFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, ItemsResponse{Count: len(items), Items: items})
}

// MonstersResponse represents a monster catalog response
type MonstersResponse struct {
	Count    int              `json:"count"`
	Monsters []domain.Monster `json:"monsters"`
}

// HandleMonsters lists encounter candidates. The region query parameter
// narrows the listing to that region.
func (h *CatalogHandler) HandleMonsters(w http.ResponseWriter, r *http.Request) {
	var monsters []domain.Monster
	var err error

	if region := r.URL.Query().Get("region"); region != "" {
		monsters, err = h.service.MonstersForRegion(r.Context(), region)
	} else {
		monsters, err = h.service.Monsters(r.Context())
	}
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgCatalogFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, MonstersResponse{Count: len(monsters), Monsters: monsters})
}

// HandleReload drops the cached catalog after a content change so the next
// read goes back to the repository.
func (h *CatalogHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	h.service.Invalidate()
	logger.FromContext(r.Context()).Info(LogMsgCatalogReloaded)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCatalogReloaded})
}
