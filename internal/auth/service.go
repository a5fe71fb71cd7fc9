package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"expansion/infra/token"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("credenciais inválidas")

type InterfaceService interface {
	IssueTokenService(ctx context.Context, request RequestToken) (ResponseToken, error)
}

type Service struct {
	maker     token.Maker
	editorKey string
	viewerKey string
	log       *zap.Logger
}

func NewAuthService(maker token.Maker, editorKey, viewerKey string, log *zap.Logger) *Service {
	return &Service{maker: maker, editorKey: editorKey, viewerKey: viewerKey, log: log}
}

func (s *Service) IssueTokenService(ctx context.Context, request RequestToken) (ResponseToken, error) {
	role := s.roleFor(request.APIKey)
	if role == "" {
		s.log.Warn("tentativa de autenticação recusada", zap.String("client_id", request.ClientID))
		return ResponseToken{}, ErrInvalidCredentials
	}

	tok, payload, err := s.maker.CreateToken(request.ClientID, role, TokenDuration)
	if err != nil {
		return ResponseToken{}, err
	}

	s.log.Info("token emitido", zap.String("client_id", request.ClientID), zap.String("role", role))
	return ResponseToken{Token: tok, Role: role, ExpiresAt: payload.ExpiredAt}, nil
}

// roleFor compares in constant time. An unset key never matches.
func (s *Service) roleFor(key string) string {
	if matches(key, s.editorKey) {
		return token.RoleEditor
	}
	if matches(key, s.viewerKey) {
		return token.RoleViewer
	}
	return ""
}

func matches(given, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(want)) == 1
}
