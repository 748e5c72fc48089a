package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
)

// ErrorEnvelope is the wire shape for every handled failure: the underlying
// message, nothing remapped.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: msg})
}

// StatusFromError maps the sentinel taxonomy onto the gateway's status codes:
// 401 unauthorized, 404 not found, 400 for everything else handled.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, pkgerrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, pkgerrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
