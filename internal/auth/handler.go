package auth

import (
	"errors"
	"net/http"

	"expansion/pkg/envelope"
	"expansion/validation"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewAuthHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// IssueTokenHandler godoc
// @Summary Emite um token de acesso.
// @Description Troca uma chave de API por um token PASETO usado nas rotas de escrita.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RequestToken true "Credenciais"
// @Success 200 {object} envelope.Response "Token emitido"
// @Failure 400 {object} envelope.Response "Requisição inválida"
// @Failure 401 {object} envelope.Response "Credenciais inválidas"
// @Router /auth/token [post]
func (h *Handler) IssueTokenHandler(c echo.Context) error {
	var request RequestToken
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := validation.Validate(request); err != nil {
		return envelope.Error(c, err)
	}

	result, err := h.InterfaceService.IssueTokenService(c.Request().Context(), request)
	if errors.Is(err, ErrInvalidCredentials) {
		return envelope.Fail(c, http.StatusUnauthorized, err)
	}
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}
