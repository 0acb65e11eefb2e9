package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laqus/deskguard-api/internal/domain"
)

func respondWith(t *testing.T, err error) *http.Response {
	t.Helper()
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, e := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, e)
	return resp
}

// Un error no reconocido es fallo interno: 500 con mensaje genérico, el
// detalle queda solo en el log.
func TestRespondError_FalloDeStore_NoFiltraDetalle(t *testing.T) {
	resp := respondWith(t, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.NotContains(t, string(body), "10.0.0.5",
		"el detalle del fallo no debe llegar al cliente")
}

// Los sentinela del dominio conservan su mapeo HTTP.
func TestRespondError_MapeoDeSentinelas(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{domain.ErrScopeUnresolved, http.StatusPreconditionFailed, "SCOPE_UNRESOLVED"},
	}
	for _, tc := range cases {
		resp := respondWith(t, tc.err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.code)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(body), tc.code)
	}
}
