package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/algeria-ecosystem/ecosystem/internal/cache"
	"github.com/algeria-ecosystem/ecosystem/internal/http/response"
	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
	"github.com/algeria-ecosystem/ecosystem/internal/services"
)

// Task names understood by the gateway. The task travels as a query parameter
// on GETs and as a body field on POSTs.
const (
	TaskGetEntities  = "get-entities"
	TaskGetEntity    = "get-entity"
	TaskSubmitEntity = "submit-entity"
	TaskGetLookups   = "get-lookups"

	TaskAdminLogin         = "admin-login"
	TaskAdminGetEntities   = "admin-get-entities"
	TaskAdminUpsertEntity  = "admin-upsert-entity"
	TaskAdminApproveEntity = "admin-approve-entity"
	TaskAdminRejectEntity  = "admin-reject-entity"
	TaskAdminDeleteEntity  = "admin-delete-entity"
	TaskAdminListTable     = "admin-list-table"
	TaskAdminUpsertTable   = "admin-upsert-table"
	TaskAdminDeleteTable   = "admin-delete-table"
	TaskAdminGetStats      = "admin-get-stats"
)

// GatewayHandler is the single request-routing boundary between clients and
// the data stores: one endpoint, a task name, one store operation per task.
type GatewayHandler struct {
	log        *logger.Logger
	auth       services.AuthService
	listing    services.ListingService
	submission services.SubmissionService
	moderation services.ModerationService
	lookup     services.LookupService
	queries    *cache.QueryCache
}

func NewGatewayHandler(
	log *logger.Logger,
	auth services.AuthService,
	listing services.ListingService,
	submission services.SubmissionService,
	moderation services.ModerationService,
	lookup services.LookupService,
	queries *cache.QueryCache,
) *GatewayHandler {
	return &GatewayHandler{
		log:        log.With("handler", "GatewayHandler"),
		auth:       auth,
		listing:    listing,
		submission: submission,
		moderation: moderation,
		lookup:     lookup,
		queries:    queries,
	}
}

func (h *GatewayHandler) Handle(c *gin.Context) {
	body, task := h.readTask(c)

	switch task {
	case TaskGetEntities:
		h.getEntities(c, body)
	case TaskGetEntity:
		h.getEntity(c, body)
	case TaskSubmitEntity:
		h.submitEntity(c, body)
	case TaskGetLookups:
		h.getLookups(c)
	case TaskAdminLogin:
		h.adminLogin(c, body)
	case TaskAdminGetEntities, TaskAdminUpsertEntity, TaskAdminApproveEntity,
		TaskAdminRejectEntity, TaskAdminDeleteEntity, TaskAdminListTable,
		TaskAdminUpsertTable, TaskAdminDeleteTable, TaskAdminGetStats:
		// The credential is resolved before any store access; no admin task
		// runs unauthenticated.
		if !h.requireAdmin(c) {
			return
		}
		h.handleAdmin(c, task, body)
	default:
		response.RespondError(c, http.StatusNotFound, pkgerrors.ErrNotFound)
	}
}

// readTask pulls the task name from the query string or, for POSTs, from the
// JSON body, and returns the raw body for task-specific decoding.
func (h *GatewayHandler) readTask(c *gin.Context) ([]byte, string) {
	task := c.Query("task")

	var body []byte
	if c.Request.Method == http.MethodPost || c.Request.Method == http.MethodPut {
		body, _ = io.ReadAll(c.Request.Body)
	}
	if task == "" && len(body) > 0 {
		var probe struct {
			Task string `json:"task"`
		}
		if err := json.Unmarshal(body, &probe); err == nil {
			task = probe.Task
		}
	}
	return body, task
}

func (h *GatewayHandler) requireAdmin(c *gin.Context) bool {
	ctx, err := h.auth.SetContextFromToken(c.Request.Context(), extractBearer(c))
	if err != nil {
		response.RespondError(c, http.StatusUnauthorized, err)
		return false
	}
	c.Request = c.Request.WithContext(ctx)
	return true
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return c.Query("token")
}

func decode[T any](body []byte, into *T) error {
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, into)
}
