package report

import (
	"errors"
	"net/http"

	"expansion/pkg/envelope"
	bucket "expansion/pkg/s3"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewReportHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ExportHandler godoc
// @Summary Exporta um snapshot do painel.
// @Description Grava cidades, planos e blocos em JSON no bucket S3 configurado.
// @Tags Reports
// @Produce json
// @Success 200 {object} envelope.Response "Snapshot exportado"
// @Failure 503 {object} envelope.Response "Armazenamento não configurado"
// @Failure 500 {object} envelope.Response "Erro interno"
// @Router /api/reports/export [post]
// @Security ApiKeyAuth
func (h *Handler) ExportHandler(c echo.Context) error {
	result, err := h.InterfaceService.ExportService(c.Request().Context())
	if errors.Is(err, bucket.ErrNotConfigured) {
		return envelope.Fail(c, http.StatusServiceUnavailable, err)
	}
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}
