package middleware

import (
	"errors"
	"net/http"
	"strings"

	"expansion/infra/token"
	"expansion/pkg/envelope"
	"github.com/labstack/echo/v4"
)

const PayloadKey = "token_payload"

var errForbidden = errors.New("token sem permissão de escrita")

// CheckAuthorization requires a valid bearer token with write permission.
func CheckAuthorization(maker token.Maker) echo.MiddlewareFunc {
	return func(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bearerToken := c.Request().Header.Get("Authorization")
			tokenStr := strings.TrimSpace(strings.TrimPrefix(bearerToken, "Bearer "))
			if tokenStr == "" {
				return envelope.Fail(c, http.StatusUnauthorized, token.ErrInvalidToken)
			}

			tokenPayload, err := maker.VerifyToken(tokenStr)
			if err != nil {
				return envelope.Fail(c, http.StatusUnauthorized, err)
			}
			if !tokenPayload.CanWrite() {
				return envelope.Fail(c, http.StatusForbidden, errForbidden)
			}

			c.Set(PayloadKey, tokenPayload)
			return handlerFunc(c)
		}
	}
}

// GetPayloadToken returns the payload CheckAuthorization stored, or nil.
func GetPayloadToken(c echo.Context) *token.Payload {
	payload, _ := c.Get(PayloadKey).(*token.Payload)
	return payload
}
