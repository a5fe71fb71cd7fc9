package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expansion/infra/token"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) (*Service, token.Maker) {
	t.Helper()
	maker, err := token.NewPasetoMaker("12345678901234567890123456789012")
	require.NoError(t, err)
	return NewAuthService(maker, "editor-key", "viewer-key", zap.NewNop()), maker
}

func TestIssueTokenRoles(t *testing.T) {
	svc, maker := newService(t)

	res, err := svc.IssueTokenService(context.Background(), RequestToken{ClientID: "ops", APIKey: "editor-key"})
	require.NoError(t, err)
	assert.Equal(t, token.RoleEditor, res.Role)

	payload, err := maker.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "ops", payload.Subject)

	res, err = svc.IssueTokenService(context.Background(), RequestToken{ClientID: "bi", APIKey: "viewer-key"})
	require.NoError(t, err)
	assert.Equal(t, token.RoleViewer, res.Role)

	_, err = svc.IssueTokenService(context.Background(), RequestToken{ClientID: "x", APIKey: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUnsetKeyNeverMatches(t *testing.T) {
	maker, err := token.NewPasetoMaker("12345678901234567890123456789012")
	require.NoError(t, err)
	svc := NewAuthService(maker, "editor-key", "", zap.NewNop())

	_, err = svc.IssueTokenService(context.Background(), RequestToken{ClientID: "x", APIKey: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssueTokenHandler(t *testing.T) {
	svc, _ := newService(t)
	h := NewAuthHandler(svc)
	e := echo.New()

	cases := []struct {
		body string
		code int
	}{
		{`{"client_id":"ops","api_key":"editor-key"}`, http.StatusOK},
		{`{"client_id":"ops","api_key":"wrong"}`, http.StatusUnauthorized},
		{`{"client_id":"ops"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tc.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, h.IssueTokenHandler(e.NewContext(req, rec)))
		assert.Equal(t, tc.code, rec.Code, tc.body)
	}
}
