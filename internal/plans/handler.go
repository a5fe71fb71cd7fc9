package plans

import (
	"net/http"

	"expansion/internal/domain"
	"expansion/pkg/envelope"
	"expansion/validation"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewPlanHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ListPlansHandler godoc
// @Summary Lista os planos de expansão.
// @Tags Plans
// @Produce json
// @Success 200 {object} envelope.Response "Planos"
// @Router /api/plans [get]
func (p *Handler) ListPlansHandler(c echo.Context) error {
	result, err := p.InterfaceService.ListPlansService(c.Request().Context())
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// CreatePlanHandler godoc
// @Summary Cria o plano de uma cidade.
// @Description Grava o cabeçalho do plano; fases e resultados são gravados à parte.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body CreatePlanRequest true "Plano"
// @Success 201 {object} envelope.Response "Plano criado"
// @Failure 400 {object} envelope.Response "Requisição inválida"
// @Failure 404 {object} envelope.Response "Cidade não encontrada"
// @Router /api/plans [post]
// @Security ApiKeyAuth
func (p *Handler) CreatePlanHandler(c echo.Context) error {
	var request CreatePlanRequest
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := validation.Validate(request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}

	result, err := p.InterfaceService.CreatePlanService(c.Request().Context(), request)
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.Created(c, result)
}

// DeletePlanHandler godoc
// @Summary Exclui o plano de uma cidade.
// @Tags Plans
// @Param cityId path int true "Código IBGE"
// @Success 200 {object} envelope.Response
// @Router /api/plans/{cityId} [delete]
// @Security ApiKeyAuth
func (p *Handler) DeletePlanHandler(c echo.Context) error {
	id, err := planCityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := p.InterfaceService.DeletePlanService(c.Request().Context(), id); err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, nil)
}

// GetResultsHandler godoc
// @Summary Resultados mensais do plano.
// @Description Os custos reais substituem os custos efetivos; os anteriores viram projeção.
// @Tags Plans
// @Produce json
// @Param cityId path int true "Código IBGE"
// @Success 200 {object} envelope.Response "Resultados por mês"
// @Router /api/plans/{cityId}/results [get]
func (p *Handler) GetResultsHandler(c echo.Context) error {
	id, err := planCityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	result, err := p.InterfaceService.GetResultsService(c.Request().Context(), id)
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// SaveResultsHandler godoc
// @Summary Grava resultados mensais.
// @Tags Plans
// @Accept json
// @Produce json
// @Param cityId path int true "Código IBGE"
// @Param request body ResultsRequest true "Resultados"
// @Success 200 {object} envelope.Response
// @Failure 400 {object} envelope.Response "Mês inválido"
// @Router /api/plans/{cityId}/results [put]
// @Security ApiKeyAuth
func (p *Handler) SaveResultsHandler(c echo.Context) error {
	id, err := planCityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	var request ResultsRequest
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := validation.ValidateMonthKeys(request.Results); err != nil {
		return envelope.Error(c, err)
	}
	if err := p.InterfaceService.SaveResultsService(c.Request().Context(), id, request.Results); err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, nil)
}

// DeleteResultsHandler godoc
// @Summary Exclui resultados e custos reais do plano.
// @Tags Plans
// @Param cityId path int true "Código IBGE"
// @Success 200 {object} envelope.Response
// @Router /api/plans/{cityId}/results [delete]
// @Security ApiKeyAuth
func (p *Handler) DeleteResultsHandler(c echo.Context) error {
	id, err := planCityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := p.InterfaceService.DeleteResultsService(c.Request().Context(), id); err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, nil)
}

// GetRealCostsHandler godoc
// @Summary Custos reais registrados do plano.
// @Tags Plans
// @Produce json
// @Param cityId path int true "Código IBGE"
// @Success 200 {object} envelope.Response "Custos por mês"
// @Router /api/plans/{cityId}/real-costs [get]
func (p *Handler) GetRealCostsHandler(c echo.Context) error {
	id, err := planCityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	result, err := p.InterfaceService.GetRealCostsService(c.Request().Context(), id)
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// SaveRealCostsHandler godoc
// @Summary Grava custos reais.
// @Tags Plans
// @Accept json
// @Produce json
// @Param cityId path int true "Código IBGE"
// @Param request body RealCostsRequest true "Custos reais"
// @Success 200 {object} envelope.Response
// @Router /api/plans/{cityId}/real-costs [put]
// @Security ApiKeyAuth
func (p *Handler) SaveRealCostsHandler(c echo.Context) error {
	id, err := planCityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	var request RealCostsRequest
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := validation.ValidateMonthKeys(request.RealCosts); err != nil {
		return envelope.Error(c, err)
	}
	if err := p.InterfaceService.SaveRealCostsService(c.Request().Context(), id, request.RealCosts); err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, nil)
}

// GetDetailsHandler godoc
// @Summary Fases e ações do plano.
// @Description Retorna data nulo quando o plano ainda não tem fases gravadas.
// @Tags Plans
// @Produce json
// @Param cityId path int true "Código IBGE"
// @Success 200 {object} envelope.Response "Fases"
// @Router /api/plans/{cityId}/details [get]
func (p *Handler) GetDetailsHandler(c echo.Context) error {
	id, err := planCityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	result, err := p.InterfaceService.GetDetailsService(c.Request().Context(), id)
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// SaveDetailsHandler godoc
// @Summary Grava fases e ações do plano.
// @Tags Plans
// @Accept json
// @Produce json
// @Param cityId path int true "Código IBGE"
// @Param request body DetailsRequest true "Fases"
// @Success 200 {object} envelope.Response
// @Router /api/plans/{cityId}/details [put]
// @Security ApiKeyAuth
func (p *Handler) SaveDetailsHandler(c echo.Context) error {
	id, err := planCityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	var request DetailsRequest
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := p.InterfaceService.SaveDetailsService(c.Request().Context(), id, request.Phases); err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, nil)
}

// SummaryHandler godoc
// @Summary Resumo financeiro do plano.
// @Description Receita, custo, margem e atingimento da meta gradual por mês.
// @Tags Plans
// @Produce json
// @Param cityId path int true "Código IBGE"
// @Success 200 {object} envelope.Response "Resumo"
// @Failure 404 {object} envelope.Response "Plano não encontrado"
// @Router /api/plans/{cityId}/summary [get]
func (p *Handler) SummaryHandler(c echo.Context) error {
	id, err := planCityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	result, err := p.InterfaceService.SummaryService(c.Request().Context(), id)
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

func planCityID(c echo.Context) (int64, error) {
	id, err := validation.ParseStringToInt64(c.Param("cityId"))
	if err != nil || id <= 0 {
		return 0, domain.ErrCityNotFound
	}
	return id, nil
}
