package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	"github.com/algeria-ecosystem/ecosystem/internal/http/response"
	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
	"github.com/algeria-ecosystem/ecosystem/internal/services"
)

func (h *GatewayHandler) handleAdmin(c *gin.Context, task string, body []byte) {
	switch task {
	case TaskAdminGetEntities:
		h.adminGetEntities(c)
	case TaskAdminUpsertEntity:
		h.adminUpsertEntity(c, body)
	case TaskAdminApproveEntity:
		h.adminSetStatus(c, body, domain.StatusApproved)
	case TaskAdminRejectEntity:
		h.adminSetStatus(c, body, domain.StatusRejected)
	case TaskAdminDeleteEntity:
		h.adminDeleteEntity(c, body)
	case TaskAdminListTable:
		h.adminListTable(c, body)
	case TaskAdminUpsertTable:
		h.adminUpsertTable(c, body)
	case TaskAdminDeleteTable:
		h.adminDeleteTable(c, body)
	case TaskAdminGetStats:
		h.adminGetStats(c)
	}
}

func (h *GatewayHandler) adminLogin(c *gin.Context, body []byte) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(body, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	response.RespondOK(c, gin.H{"token": token})
}

func (h *GatewayHandler) adminGetEntities(c *gin.Context) {
	rows, err := h.moderation.ListEntities(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("admin-get-entities failed", "error", err)
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	response.RespondOK(c, rows)
}

func (h *GatewayHandler) adminUpsertEntity(c *gin.Context, body []byte) {
	var in services.AdminEntityInput
	if err := decode(body, &in); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	entity, err := h.moderation.UpsertEntity(c.Request.Context(), nil, in)
	if err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	h.invalidateEntityReads()
	response.RespondOK(c, gin.H{"success": true, "entity": entity})
}

func (h *GatewayHandler) adminSetStatus(c *gin.Context, body []byte, status string) {
	id, err := decodeID(body)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if status == domain.StatusApproved {
		err = h.moderation.ApproveEntity(c.Request.Context(), nil, id)
	} else {
		err = h.moderation.RejectEntity(c.Request.Context(), nil, id)
	}
	if err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	h.invalidateEntityReads()
	response.RespondOK(c, gin.H{"success": true})
}

func (h *GatewayHandler) adminDeleteEntity(c *gin.Context, body []byte) {
	id, err := decodeID(body)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.moderation.DeleteEntity(c.Request.Context(), nil, id); err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	h.invalidateEntityReads()
	response.RespondOK(c, gin.H{"success": true})
}

func (h *GatewayHandler) adminListTable(c *gin.Context, body []byte) {
	var req struct {
		Table string `json:"table"`
	}
	if err := decode(body, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	rows, err := h.lookup.ListTable(c.Request.Context(), nil, req.Table)
	if err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	response.RespondOK(c, rows)
}

func (h *GatewayHandler) adminUpsertTable(c *gin.Context, body []byte) {
	var req struct {
		Table string         `json:"table"`
		Data  map[string]any `json:"data"`
	}
	if err := decode(body, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	row, err := h.lookup.UpsertTable(c.Request.Context(), nil, req.Table, req.Data)
	if err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	h.invalidateLookupReads()
	response.RespondOK(c, gin.H{"success": true, "row": row})
}

func (h *GatewayHandler) adminDeleteTable(c *gin.Context, body []byte) {
	var req struct {
		Table string    `json:"table"`
		ID    uuid.UUID `json:"id"`
	}
	if err := decode(body, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.lookup.DeleteTable(c.Request.Context(), nil, req.Table, req.ID); err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	h.invalidateLookupReads()
	response.RespondOK(c, gin.H{"success": true})
}

func (h *GatewayHandler) adminGetStats(c *gin.Context) {
	stats, err := h.moderation.Stats(c.Request.Context())
	if err != nil {
		response.RespondError(c, response.StatusFromError(err), err)
		return
	}
	response.RespondOK(c, stats)
}

func (h *GatewayHandler) invalidateEntityReads() {
	h.queries.InvalidateTask(TaskGetEntities)
	h.queries.InvalidateTask(TaskGetEntity)
	h.queries.InvalidateTask(TaskAdminGetEntities)
}

func (h *GatewayHandler) invalidateLookupReads() {
	h.queries.InvalidateTask(TaskGetLookups)
	h.queries.InvalidateTask(TaskAdminListTable)
}

func decodeID(body []byte) (uuid.UUID, error) {
	var req struct {
		ID uuid.UUID `json:"id"`
	}
	if err := decode(body, &req); err != nil {
		return uuid.Nil, err
	}
	if req.ID == uuid.Nil {
		return uuid.Nil, pkgerrors.ErrInvalidArgument
	}
	return req.ID, nil
}
