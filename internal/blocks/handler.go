package blocks

import (
	"net/http"

	"expansion/pkg/envelope"
	"expansion/validation"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewBlockHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ListBlocksHandler godoc
// @Summary Lista os blocos de mercado.
// @Tags Blocks
// @Produce json
// @Success 200 {object} envelope.Response "Blocos"
// @Router /api/blocks [get]
func (p *Handler) ListBlocksHandler(c echo.Context) error {
	result, err := p.InterfaceService.ListBlocksService(c.Request().Context())
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// ReplaceBlocksHandler godoc
// @Summary Substitui todos os blocos de mercado.
// @Description A ordem enviada é a ordem de exibição. Cada cidade pode estar em um bloco só.
// @Tags Blocks
// @Accept json
// @Produce json
// @Param request body ReplaceBlocksRequest true "Blocos"
// @Success 200 {object} envelope.Response
// @Failure 400 {object} envelope.Response "Requisição inválida"
// @Failure 409 {object} envelope.Response "Cidade em mais de um bloco"
// @Router /api/blocks [put]
// @Security ApiKeyAuth
func (p *Handler) ReplaceBlocksHandler(c echo.Context) error {
	var request ReplaceBlocksRequest
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := validation.Validate(request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := p.InterfaceService.ReplaceBlocksService(c.Request().Context(), request.Blocks); err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, nil)
}
