package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/algeria-ecosystem/ecosystem/internal/cache"
	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/entities"
	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/lookups"
	"github.com/algeria-ecosystem/ecosystem/internal/data/repos/testutil"
	"github.com/algeria-ecosystem/ecosystem/internal/domain"
	"github.com/algeria-ecosystem/ecosystem/internal/services"
)

const (
	testAdminEmail    = "admin@example.dz"
	testAdminPassword = "s3cret"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)

	entityRepo := entities.NewEntityRepo(db, log)
	linkRepo := entities.NewEntityLinkRepo(db, log)
	lookupRepo := lookups.NewLookupRepo(db, log)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	gateway := NewGatewayHandler(
		log,
		services.NewAuthService(log, "test-signing-key", time.Hour, testAdminEmail, string(hash)),
		services.NewListingService(db, log, entityRepo, lookupRepo),
		services.NewSubmissionService(db, log, entityRepo, linkRepo, lookupRepo),
		services.NewModerationService(db, log, entityRepo, linkRepo, lookupRepo),
		services.NewLookupService(db, log, lookupRepo),
		cache.New(),
	)

	r := gin.New()
	r.GET("/api", gateway.Handle)
	r.POST("/api", gateway.Handle)
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, payload map[string]any, token string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := postJSON(t, r, map[string]any{
		"task":     TaskAdminLogin,
		"email":    testAdminEmail,
		"password": testAdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestUnknownTaskIs404(t *testing.T) {
	r, _ := newTestRouter(t)

	w := getPath(t, r, "/api?task=no-such-task")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = getPath(t, r, "/api")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminTasksRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, map[string]any{"task": TaskAdminGetEntities}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, map[string]any{"task": TaskAdminGetEntities}, "garbage-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, map[string]any{
		"task":     TaskAdminLogin,
		"email":    testAdminEmail,
		"password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitEntityForcesPending(t *testing.T) {
	r, db := newTestRouter(t)

	var startupType domain.EntityType
	require.NoError(t, db.Where("slug = ?", domain.TypeStartup).First(&startupType).Error)

	w := postJSON(t, r, map[string]any{
		"task":    TaskSubmitEntity,
		"name":    "Gateway Startup",
		"type_id": startupType.ID.String(),
		"status":  domain.StatusApproved,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got domain.Entity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, domain.StatusPending, got.Status)

	t.Cleanup(func() {
		db.Where("id = ?", got.ID).Delete(&domain.Entity{})
	})
}

func TestSubmitEntityValidationIs400(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, map[string]any{
		"task": TaskSubmitEntity,
		"name": "x",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEntityBySlugOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)
	token := loginToken(t, r)

	var startupType domain.EntityType
	require.NoError(t, db.Where("slug = ?", domain.TypeStartup).First(&startupType).Error)

	w := postJSON(t, r, map[string]any{
		"task":    TaskAdminUpsertEntity,
		"name":    "Detail Page Startup",
		"type_id": startupType.ID.String(),
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		Entity domain.Entity `json:"entity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	t.Cleanup(func() {
		db.Where("id = ?", created.Entity.ID).Delete(&domain.Entity{})
	})

	w = getPath(t, r, "/api?task=get-entity&slug="+created.Entity.Slug)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got domain.Entity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, created.Entity.ID, got.ID)

	w = getPath(t, r, "/api?task=get-entity&slug=no-such-slug")
	require.Equal(t, http.StatusNotFound, w.Code)

	// A pending submission is not reachable through the detail read.
	w = postJSON(t, r, map[string]any{
		"task":    TaskSubmitEntity,
		"name":    "Pending Detail Startup",
		"type_id": startupType.ID.String(),
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var submitted domain.Entity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	t.Cleanup(func() {
		db.Where("id = ?", submitted.ID).Delete(&domain.Entity{})
	})

	w = getPath(t, r, "/api?task=get-entity&slug="+submitted.Slug)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLookupsRejectsUnknownTable(t *testing.T) {
	r, _ := newTestRouter(t)

	w := getPath(t, r, "/api?task=get-lookups&table=entities")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Error)
}

func TestGetLookupsReturnsAllowedTable(t *testing.T) {
	r, _ := newTestRouter(t)

	w := getPath(t, r, "/api?task=get-lookups&table=wilayas")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []domain.Wilaya
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 58)
}

func TestModerationFlowOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)
	token := loginToken(t, r)

	var startupType domain.EntityType
	require.NoError(t, db.Where("slug = ?", domain.TypeStartup).First(&startupType).Error)

	// Submit publicly, then approve through the console.
	w := postJSON(t, r, map[string]any{
		"task":    TaskSubmitEntity,
		"name":    "Flow Startup",
		"type_id": startupType.ID.String(),
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var submitted domain.Entity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	t.Cleanup(func() {
		db.Where("id = ?", submitted.ID).Delete(&domain.Entity{})
	})

	// Prime the public listing cache while the row is still pending.
	w = getPath(t, r, "/api?task=get-entities")
	require.Equal(t, http.StatusOK, w.Code)
	var publicRows []domain.Entity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &publicRows))
	for _, e := range publicRows {
		require.NotEqual(t, submitted.ID, e.ID, "pending row leaked into public listing")
	}

	w = postJSON(t, r, map[string]any{
		"task": TaskAdminApproveEntity,
		"id":   submitted.ID.String(),
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored domain.Entity
	require.NoError(t, db.Where("id = ?", submitted.ID).First(&stored).Error)
	require.Equal(t, domain.StatusApproved, stored.Status)

	// Approval invalidated the cached listing, so the row shows up now.
	w = getPath(t, r, "/api?task=get-entities")
	require.Equal(t, http.StatusOK, w.Code)
	publicRows = publicRows[:0]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &publicRows))
	found := false
	for _, e := range publicRows {
		if e.ID == submitted.ID {
			found = true
		}
	}
	require.True(t, found, "approved row missing from refreshed public listing")

	// Reject flips it back out of the public set.
	w = postJSON(t, r, map[string]any{
		"task": TaskAdminRejectEntity,
		"id":   submitted.ID.String(),
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, db.Where("id = ?", submitted.ID).First(&stored).Error)
	require.Equal(t, domain.StatusRejected, stored.Status)

	// Delete removes the row outright.
	w = postJSON(t, r, map[string]any{
		"task": TaskAdminDeleteEntity,
		"id":   submitted.ID.String(),
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var count int64
	require.NoError(t, db.Model(&domain.Entity{}).Where("id = ?", submitted.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestAdminTableCRUDOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)
	token := loginToken(t, r)

	w := postJSON(t, r, map[string]any{
		"task":  TaskAdminUpsertTable,
		"table": domain.TableCategories,
		"data":  map[string]any{"slug": "gateway-cat", "name": "Gateway Category"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created domain.Category
	require.NoError(t, db.Where("slug = ?", "gateway-cat").First(&created).Error)
	t.Cleanup(func() {
		db.Where("id = ?", created.ID).Delete(&domain.Category{})
	})

	w = postJSON(t, r, map[string]any{
		"task":  TaskAdminListTable,
		"table": domain.TableCategories,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, map[string]any{
		"task":  TaskAdminUpsertTable,
		"table": "entities",
		"data":  map[string]any{"name": "nope"},
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, map[string]any{
		"task":  TaskAdminDeleteTable,
		"table": domain.TableCategories,
		"id":    created.ID.String(),
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&domain.Category{}).Where("id = ?", created.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestAdminGetStatsOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)
	token := loginToken(t, r)

	w := postJSON(t, r, map[string]any{"task": TaskAdminGetStats}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats services.DirectoryStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, int64(58), stats.LookupCounts[domain.TableWilayas])
}
