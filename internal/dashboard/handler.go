package dashboard

import (
	"errors"
	"net/http"
	"time"

	"expansion/internal/domain"
	"expansion/pkg/envelope"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
	now              func() time.Time
}

func NewDashboardHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService: InterfaceService, now: time.Now}
}

// GetDashboardHandler godoc
// @Summary Obter Dashboard.
// @Description Contagem de cidades por status, receita potencial ativa, médias estaduais e totais mensais dos planos.
// @Tags Dashboard
// @Produce json
// @Param start query string false "Mês inicial (YYYY-MM), padrão: 11 meses atrás"
// @Param end query string false "Mês final (YYYY-MM), padrão: mês atual"
// @Success 200 {object} envelope.Response "Informações do Dashboard"
// @Failure 400 {object} envelope.Response "Requisição Inválida"
// @Failure 500 {object} envelope.Response "Erro Interno do Servidor"
// @Router /api/dashboard [get]
func (p *Handler) GetDashboardHandler(c echo.Context) error {
	current := domain.MonthKeyOf(p.now().UTC())
	end, err := monthParam(c, "end", current)
	if err != nil {
		return envelope.Error(c, err)
	}
	start, err := monthParam(c, "start", domain.MonthKeyOf(end.Time().AddDate(0, -11, 0)))
	if err != nil {
		return envelope.Error(c, err)
	}
	if start > end {
		return envelope.Fail(c, http.StatusBadRequest, errors.New("mês inicial depois do mês final"))
	}

	result, err := p.InterfaceService.GetDashboardService(c.Request().Context(), start, end)
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

func monthParam(c echo.Context, name string, fallback domain.MonthKey) (domain.MonthKey, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return domain.ParseMonthKey(raw)
}
