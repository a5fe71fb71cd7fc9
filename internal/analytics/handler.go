package analytics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"expansion/internal/domain"
	"expansion/pkg/envelope"
	"expansion/validation"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
	now              func() time.Time
}

func NewAnalyticsHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService: InterfaceService, now: time.Now}
}

// RidesHandler godoc
// @Summary Corridas realizadas por mês.
// @Description Lê o banco de análise. Sem from/to, retorna os últimos seis meses.
// @Tags Analytics
// @Produce json
// @Param id path int true "Código IBGE"
// @Param from query string false "Mês inicial (YYYY-MM)"
// @Param to query string false "Mês final (YYYY-MM)"
// @Success 200 {object} envelope.Response "Corridas por mês"
// @Failure 400 {object} envelope.Response "Mês inválido"
// @Failure 503 {object} envelope.Response "Banco de análise indisponível"
// @Router /api/analytics/cities/{id}/rides [get]
func (p *Handler) RidesHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}

	to := domain.MonthKeyOf(p.now().UTC())
	if raw := c.QueryParam("to"); raw != "" {
		if to, err = domain.ParseMonthKey(raw); err != nil {
			return envelope.Error(c, err)
		}
	}
	from := domain.MonthKeyOf(to.Time().AddDate(0, -5, 0))
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = domain.ParseMonthKey(raw); err != nil {
			return envelope.Error(c, err)
		}
	}
	if domain.MonthsBetween(from, to) < 0 {
		return envelope.Fail(c, http.StatusBadRequest, fmt.Errorf("%w: from depois de to", domain.ErrInvalidMonthKey))
	}

	result, err := p.InterfaceService.RidesService(c.Request().Context(), id, from, to)
	if errors.Is(err, ErrDisabled) {
		return envelope.Fail(c, http.StatusServiceUnavailable, err)
	}
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}
