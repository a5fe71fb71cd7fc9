package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expansion/infra/token"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, maker token.Maker, auth string) (*httptest.ResponseRecorder, *token.Payload) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/plans", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()

	var seen *token.Payload
	h := CheckAuthorization(maker)(func(c echo.Context) error {
		seen = GetPayloadToken(c)
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, seen
}

func TestCheckAuthorization(t *testing.T) {
	maker, err := token.NewPasetoMaker("12345678901234567890123456789012")
	require.NoError(t, err)
	editor, _, err := maker.CreateToken("ops", token.RoleEditor, time.Minute)
	require.NoError(t, err)
	viewer, _, err := maker.CreateToken("bi", token.RoleViewer, time.Minute)
	require.NoError(t, err)

	rec, _ := run(t, maker, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = run(t, maker, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = run(t, maker, "Bearer "+viewer)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, payload := run(t, maker, "Bearer "+editor)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, payload)
	assert.Equal(t, "ops", payload.Subject)
}
