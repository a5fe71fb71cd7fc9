package chat

import (
	"net/http"

	"expansion/pkg/envelope"
	"expansion/validation"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewChatHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ChatHandler godoc
// @Summary Pergunta ao assistente de expansão.
// @Description Envia a pergunta e o resumo das 50 cidades mais populosas ao modelo de linguagem.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Pergunta"
// @Success 200 {object} envelope.Response "Resposta"
// @Failure 400 {object} envelope.Response "Requisição inválida"
// @Failure 502 {object} envelope.Response "Falha no modelo"
// @Router /api/chat [post]
// @Security ApiKeyAuth
func (p *Handler) ChatHandler(c echo.Context) error {
	var request ChatRequest
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := validation.Validate(request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}

	result, err := p.InterfaceService.ChatService(c.Request().Context(), request)
	if err != nil {
		return envelope.Fail(c, http.StatusBadGateway, err)
	}
	return envelope.OK(c, result)
}
