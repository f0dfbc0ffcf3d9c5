package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/TallerTurnos01/taller-scheduler/internal/httperr"
)

func TestWriteRegisterError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"email duplicado", httperr.ErrBusiness("email_already_exists"), http.StatusBadRequest, "email_already_exists"},
		{"dominio inválido", httperr.ErrBusiness("invalid_email_domain"), http.StatusBadRequest, "invalid_email_domain"},
		{"error genérico", errors.New("db caída"), http.StatusInternalServerError, "failed_to_create_user"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeRegisterError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}
