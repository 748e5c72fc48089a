package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algeria-ecosystem/ecosystem/internal/cache"
	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	"github.com/algeria-ecosystem/ecosystem/internal/http/response"
	"github.com/algeria-ecosystem/ecosystem/internal/listing"
	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
	"github.com/algeria-ecosystem/ecosystem/internal/services"
)

// getEntitiesRequest deliberately has no status field: the public path serves
// approved rows only, so a caller-supplied status would either be redundant or
// a way to read unmoderated rows.
type getEntitiesRequest struct {
	Task           string  `json:"task"`
	EntityTypeSlug string  `json:"entityTypeSlug"`
	SearchQuery    *string `json:"searchQuery"`
	FilterType     string  `json:"filterType"`
	FilterValue    string  `json:"filterValue"`
	SortOrder      string  `json:"sortOrder"`
	Page           *int    `json:"page"`
}

// getEntities serves the public listing read. The public path only ever sees
// approved rows, whatever status the caller asked for. Without presenter
// parameters the full joined set is returned and paging happens downstream;
// with them, the presenter runs here and a paged envelope comes back.
func (h *GatewayHandler) getEntities(c *gin.Context, body []byte) {
	var req getEntitiesRequest
	if err := decode(body, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}

	params := map[string]any{"entityTypeSlug": req.EntityTypeSlug}
	rows, ok := cachedEntities(h.queries, TaskGetEntities, params)
	if !ok {
		var err error
		rows, err = h.listing.GetEntities(c.Request.Context(), nil, req.EntityTypeSlug, domain.StatusApproved)
		if err != nil {
			h.log.Error("get-entities failed", "error", err, "entityTypeSlug", req.EntityTypeSlug)
			response.RespondError(c, response.StatusFromError(err), err)
			return
		}
		h.queries.Set(TaskGetEntities, params, rows)
	}

	if !wantsPresenter(req) {
		response.RespondOK(c, rows)
		return
	}

	state := listing.State{
		FilterAxis:  listing.FilterAxis(req.FilterType),
		FilterValue: req.FilterValue,
		SortOrder:   listing.SortOrder(req.SortOrder),
		Page:        1,
	}
	if req.SearchQuery != nil {
		state.SearchQuery = *req.SearchQuery
	}
	if req.SortOrder == "" {
		state.SortOrder = listing.SortDesc
	}
	if req.Page != nil {
		state.Page = *req.Page
	}
	response.RespondOK(c, listing.Apply(rows, state))
}

func wantsPresenter(req getEntitiesRequest) bool {
	return req.SearchQuery != nil || req.FilterValue != "" || req.SortOrder != "" || req.Page != nil
}

// getEntity serves the public detail page: one approved row addressed by its
// slug. Pending and rejected rows 404 like rows that never existed.
func (h *GatewayHandler) getEntity(c *gin.Context, body []byte) {
	slug := c.Query("slug")
	if slug == "" {
		var req struct {
			Slug string `json:"slug"`
		}
		if err := decode(body, &req); err != nil {
			response.RespondError(c, http.StatusBadRequest, err)
			return
		}
		slug = req.Slug
	}

	params := map[string]any{"slug": slug}
	if v, ok := h.queries.Get(TaskGetEntity, params); ok {
		response.RespondOK(c, v)
		return
	}

	entity, err := h.listing.GetEntityBySlug(c.Request.Context(), nil, slug)
	if err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	h.queries.Set(TaskGetEntity, params, entity)
	response.RespondOK(c, entity)
}

func (h *GatewayHandler) submitEntity(c *gin.Context, body []byte) {
	var in services.SubmitEntityInput
	if err := decode(body, &in); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entity, err := h.submission.Submit(c.Request.Context(), nil, in)
	if err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}

	h.invalidateEntityReads()
	response.RespondOK(c, entity)
}

func (h *GatewayHandler) getLookups(c *gin.Context) {
	table := c.Query("table")
	if !domain.ValidLookupTable(table) {
		// Rejected before any store access.
		response.RespondError(c, http.StatusBadRequest, pkgerrors.ErrInvalidTable)
		return
	}

	params := map[string]any{"table": table}
	if rows, ok := h.queries.Get(TaskGetLookups, params); ok {
		response.RespondOK(c, rows)
		return
	}

	rows, err := h.listing.GetLookups(c.Request.Context(), nil, table)
	if err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	h.queries.Set(TaskGetLookups, params, rows)
	response.RespondOK(c, rows)
}

func cachedEntities(q *cache.QueryCache, task string, params map[string]any) ([]*domain.Entity, bool) {
	v, ok := q.Get(task, params)
	if !ok {
		return nil, false
	}
	rows, ok := v.([]*domain.Entity)
	return rows, ok
}
